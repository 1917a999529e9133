package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/astorb"
	"astrochart/chart"
	"astrochart/ephem"
)

var natalCmd = &cobra.Command{
	Use:   "natal",
	Short: "Compute a natal chart with its full reading",
	RunE:  runNatal,
}

func init() {
	natalCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	_ = natalCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(natalCmd)
}

// natalChart builds the chart for the --birth flag at the resolved
// site.
func natalChart(cmd *cobra.Command, p *ephem.Provider) (*chart.Chart, time.Time, error) {
	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := parseTime(birthStr)
	if err != nil {
		return nil, time.Time{}, err
	}
	lat, lon, err := site()
	if err != nil {
		return nil, time.Time{}, err
	}
	c, err := p.Chart(ephem.JD(birth), lat, lon)
	if err != nil {
		return nil, time.Time{}, err
	}
	return c, birth, nil
}

func runNatal(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	natal, birth, err := natalChart(cmd, p)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Positions")
	writePositions(out, natal)
	fmt.Fprintln(out)

	if natal.Houses != nil {
		fmt.Fprintln(out, "Houses")
		writeHouses(out, natal.Houses)
		fmt.Fprintln(out)
	}

	fmt.Fprintln(out, "Aspects")
	writeAspects(out, natal)
	fmt.Fprintln(out)

	gen := generator()
	fmt.Fprintln(out, gen.Natal(natal, time.Now()))

	if phase, angle, ok := natal.LunarPhase(); ok {
		fmt.Fprintf(out, "\nLunar phase at birth: %s (%.1f deg)\n", phase, angle)
	}

	if sun, ok := natal.Longitude(chart.Sun); ok {
		s := gen.Sabian(sun)
		fmt.Fprintf(out, "\nSabian symbol for your Sun: %s\n%s\n", s.Symbol, s.Interpretation)
	}

	if contacts := natal.StarContacts(gen.Stars()); len(contacts) > 0 {
		fmt.Fprintln(out, "\nFixed star conjunctions:")
		for _, sc := range contacts {
			fmt.Fprintf(out, "  %s conjunct %s (orb %.2f deg)\n", sc.Star, sc.Point, sc.Orb)
		}
	}

	if a, err := catalog().Chiron(ephem.JD(birth)); err == nil {
		fmt.Fprintln(out)
		fmt.Fprintln(out, gen.Chiron(a.Sign, a.SignDeg))
	} else if !errors.Is(err, astorb.ErrNotFound) {
		log.Warn().Err(err).Msg("skipping Chiron reading")
	}
	return nil
}
