package sensor

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/svanherk/casefan/internal/configuration"
	"github.com/svanherk/casefan/internal/sensors"
	"github.com/svanherk/casefan/internal/ui"
)

var Command = &cobra.Command{
	Use:   "sensor",
	Short: "Print the current CPU temperature in degrees celsius",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		sensor, err := getSensor()
		if err != nil {
			return err
		}

		value, err := sensor.GetValue()
		if err != nil {
			return err
		}
		fmt.Printf("%.2f", value)
		return nil
	},
}

func getSensor() (sensors.Sensor, error) {
	configuration.DetectConfigFile()
	configuration.LoadConfig()
	err := configuration.Validate()
	if err != nil {
		ui.Fatal("Config validation error: %v", err)
	}

	return sensors.NewSensor(configuration.CurrentConfig.Sensor)
}
