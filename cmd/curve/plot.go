package curve

import (
	"bytes"
	"fmt"

	"github.com/guptarohit/asciigraph"
	"github.com/mgutz/ansi"
	"github.com/spf13/cobra"
	"github.com/svanherk/casefan/cmd/global"
	"github.com/svanherk/casefan/internal/curve"
	"github.com/svanherk/casefan/internal/ui"
	"github.com/tomlazar/table"
)

const (
	plotMinTemp = 30
	plotMaxTemp = 90
)

var plotCmd = &cobra.Command{
	Use:   "plot",
	Short: "Print the fan curve to console",
	RunE: func(cmd *cobra.Command, args []string) error {
		tab := table.Table{
			Headers: []string{"Off below", "Low until", "Full above", "Low floor"},
			Rows: [][]string{
				{
					fmt.Sprintf("%.1f°C", curve.OffTemp),
					fmt.Sprintf("%.1f°C", curve.MinTemp),
					fmt.Sprintf("%.1f°C", curve.MaxTemp),
					fmt.Sprintf("%.0f%%", curve.FanLow*100),
				},
			},
		}
		var buf bytes.Buffer
		tableErr := tab.WriteTable(&buf, &table.Config{
			ShowIndex:       false,
			Color:           !global.NoColor,
			AlternateColors: true,
			TitleColorCode:  ansi.ColorCode("white+buf"),
			AltColorCodes: []string{
				ansi.ColorCode("white"),
				ansi.ColorCode("white:236"),
			},
		})
		if tableErr != nil {
			return tableErr
		}
		ui.Printfln(buf.String())

		values := make([]float64, 0, plotMaxTemp-plotMinTemp+1)
		for temp := plotMinTemp; temp <= plotMaxTemp; temp++ {
			values = append(values, float64(curve.Speed(float64(temp))))
		}

		caption := fmt.Sprintf("speed / temperature (%d°C..%d°C)", plotMinTemp, plotMaxTemp)
		graph := asciigraph.Plot(values, asciigraph.Height(15), asciigraph.Width(100), asciigraph.Caption(caption))
		ui.Printfln(graph)

		return nil
	},
}

func init() {
	Command.AddCommand(plotCmd)
}
