package fan

import (
	"fmt"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var speedCmd = &cobra.Command{
	Use:   "speed",
	Short: "Print the speed value currently set on the fan controller ([0..255])",
	Long:  ``,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		pterm.DisableOutput()

		fan, err := getFan()
		if err != nil {
			return err
		}
		defer func() {
			_ = fan.Close()
		}()

		speed, err := fan.GetSpeed()
		if err != nil {
			return err
		}
		fmt.Printf("%d", speed)
		return nil
	},
}

func init() {
	Command.AddCommand(speedCmd)
}
