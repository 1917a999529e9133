package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"astrochart/astorb"
	"astrochart/ephem"
)

var asteroidCmd = &cobra.Command{
	Use:   "asteroid",
	Short: "Asteroid placements from the astorb catalog",
	RunE:  runAsteroid,
}

func init() {
	asteroidCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	asteroidCmd.Flags().String("search", "", "search the catalog by name instead")
	asteroidCmd.Flags().String("theme", "", "thematic scan against the natal chart: "+strings.Join(astorb.ThemeNames(), ", "))
	_ = asteroidCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(asteroidCmd)
}

func runAsteroid(cmd *cobra.Command, args []string) error {
	cat := catalog()
	out := cmd.OutOrStdout()

	if term, _ := cmd.Flags().GetString("search"); term != "" {
		matches, err := cat.Search(term, 10)
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			fmt.Fprintf(out, "no asteroids matching %q\n", term)
			return nil
		}
		for _, m := range matches {
			fmt.Fprintf(out, "%6d  %s\n", m.Number, m.Name)
		}
		return nil
	}

	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := parseTime(birthStr)
	if err != nil {
		return err
	}
	jd := ephem.JD(birth)

	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		p, err := provider()
		if err != nil {
			return err
		}
		lat, lon, err := site()
		if err != nil {
			return err
		}
		natal, err := p.Chart(jd, lat, lon)
		if err != nil {
			return err
		}
		hits, err := cat.ThematicScan(theme, jd, natal)
		if err != nil {
			return err
		}
		if len(hits) == 0 {
			fmt.Fprintf(out, "no %s asteroids conjunct your natal bodies\n", theme)
			return nil
		}
		for _, h := range hits {
			fmt.Fprintf(out, "%s (%d) conjunct natal %s (orb %.1f deg)\n",
				h.Asteroid.Name, h.Asteroid.Number, h.Natal, h.Orb)
		}
		return nil
	}

	majors, err := cat.MajorAsteroids(jd)
	if err != nil {
		return err
	}
	if len(majors) == 0 {
		return fmt.Errorf("no asteroid data; is %s present?", cfg.AstorbPath)
	}
	for _, a := range majors {
		fmt.Fprintf(out, "%-8s %-12s %s\n", a.Name, a.Sign, fmtDeg(a.SignDeg))
	}
	return nil
}
