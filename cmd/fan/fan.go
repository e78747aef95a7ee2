package fan

import (
	"github.com/spf13/cobra"
	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/fans"
	"github.com/svanherk/casefan/internal/ui"
)

var Command = &cobra.Command{
	Use:              "fan",
	Short:            "Fan related commands",
	Long:             ``,
	TraverseChildren: true,
}

func getFan() (fans.Fan, error) {
	configuration.DetectConfigFile()
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.Fatal("Config validation error: %v", err)
	}

	return fans.NewFan(configuration.CurrentConfig.Fan)
}
