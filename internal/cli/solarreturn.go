package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/chart"
	"astrochart/ephem"
)

var solarReturnCmd = &cobra.Command{
	Use:   "solar-return",
	Short: "Chart for the Sun's return to its natal longitude",
	RunE:  runSolarReturn,
}

func init() {
	solarReturnCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	solarReturnCmd.Flags().Int("year", 0, "return year (default: current year)")
	_ = solarReturnCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(solarReturnCmd)
}

func runSolarReturn(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	natal, birth, err := natalChart(cmd, p)
	if err != nil {
		return err
	}
	year, _ := cmd.Flags().GetInt("year")
	if year == 0 {
		year = time.Now().Year()
	}

	natalSun := natal.Positions[chart.Sun].Longitude
	anniversary := time.Date(year, birth.Month(), birth.Day(), 12, 0, 0, 0, birth.Location())
	ret, err := p.SolarReturn(natalSun, anniversary)
	if err != nil {
		return err
	}

	lat, lon, err := site()
	if err != nil {
		return err
	}
	rc, err := p.Chart(ephem.JD(ret), lat, lon)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Solar return: %s\n\n", ret.Format("2006-01-02 15:04 MST"))
	writePositions(out, rc)
	if rc.Houses != nil {
		fmt.Fprintln(out)
		writeHouses(out, rc.Houses)
	}
	return nil
}
