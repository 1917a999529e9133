package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/chart"
	"astrochart/ephem"
)

var dailyCmd = &cobra.Command{
	Use:   "daily",
	Short: "Today's horoscope against your natal chart",
	RunE:  runDaily,
}

func init() {
	dailyCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	_ = dailyCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(dailyCmd)
}

func runDaily(cmd *cobra.Command, args []string) error {
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

	natalSun := natal.Positions[chart.Sun].Sign
	fmt.Fprintln(out, generator().Daily(current, natalSun))

	fmt.Fprintf(out, "\nPlanetary hour: %s\n", chart.PlanetaryHour(now))

	voc, err := p.VoidOfCourse(now)
	if err != nil {
		return err
	}
	if voc.Void {
		fmt.Fprintln(out, "The Moon is void of course.")
		if !voc.LastAspect.IsZero() {
			fmt.Fprintf(out, "Last aspect: %s\n", voc.LastAspect.Format("15:04 MST"))
		}
	} else {
		fmt.Fprintln(out, "The Moon is not void of course.")
	}
	if !voc.NextSignChange.IsZero() {
		fmt.Fprintf(out, "Moon enters the next sign at %s\n",
			voc.NextSignChange.Format("15:04 MST on Jan 2"))
	}
	return nil
}
