package fan

import (
	"strconv"

	"github.com/spf13/cobra"
)

var setSpeedCmd = &cobra.Command{
	Use:   "setSpeed",
	Short: "Set the speed of the fan to the given value ([0..255])",
	Long:  ``,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		speed, err := strconv.Atoi(args[0])
		if err != nil {
			return err
		}

		fan, err := getFan()
		if err != nil {
			return err
		}
		defer func() {
			_ = fan.Close()
		}()

		return fan.SetSpeed(speed)
	},
}

func init() {
	Command.AddCommand(setSpeedCmd)
}
