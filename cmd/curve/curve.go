package curve

import (
	"github.com/spf13/cobra"
)

var Command = &cobra.Command{
	Use:              "curve",
	Short:            "Fan curve related commands",
	Long:             ``,
	TraverseChildren: true,
}
