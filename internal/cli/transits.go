package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/chart"
	"astrochart/ephem"
)

var transitsCmd = &cobra.Command{
	Use:   "transits",
	Short: "Current transits to the natal chart, with a forecast",
	RunE:  runTransits,
}

func init() {
	transitsCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	transitsCmd.Flags().Int("months", 6, "forecast window in months")
	_ = transitsCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(transitsCmd)
}

func runTransits(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	natal, _, err := natalChart(cmd, p)
	if err != nil {
		return err
	}
	lat, lon, err := site()
	if err != nil {
		return err
	}
	now := time.Now()
	current, err := p.Chart(ephem.JD(now), lat, lon)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current transits, tightest first:")
	for _, t := range chart.Transits(current, natal, chart.AspectTable) {
		house := ""
		if t.NatalHouse != 0 {
			house = fmt.Sprintf(", natal house %d", t.NatalHouse)
		}
		fmt.Fprintf(out, "  transiting %s %s natal %s (orb %.1f deg%s)\n",
			t.Transiting, t.Type, t.Natal, t.Orb, house)
	}

	months, _ := cmd.Flags().GetInt("months")
	hits, err := p.Forecast(natal, now, months)
	if err != nil {
		return err
	}
	if len(hits) > 0 {
		fmt.Fprintf(out, "\nExact transits over the next %d months:\n", months)
		for _, h := range hits {
			fmt.Fprintf(out, "  %s: %s %s natal %s",
				h.Date.Format("2006-01-02"), h.Transiting, h.Type, h.Natal)
			if h.House != 0 {
				fmt.Fprintf(out, " (house %d)", h.House)
			}
			fmt.Fprintln(out)
		}
	}
	return nil
}
