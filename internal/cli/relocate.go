package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"astrochart/chart"
	"astrochart/ephem"
)

var relocateCmd = &cobra.Command{
	Use:   "relocate",
	Short: "Natal chart rehoused at new coordinates",
	Long: `Relocate keeps the natal planetary positions and recomputes the
house cusps for a new place, showing how the chart manifests there.`,
	RunE: runRelocate,
}

func init() {
	relocateCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	relocateCmd.Flags().Float64("new-lat", 0, "new latitude in degrees")
	relocateCmd.Flags().Float64("new-lon", 0, "new longitude in degrees, east positive")
	relocateCmd.Flags().String("new-location", "", "new place name to geocode")
	_ = relocateCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(relocateCmd)
}

func runRelocate(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := parseTime(birthStr)
	if err != nil {
		return err
	}

	lat, _ := cmd.Flags().GetFloat64("new-lat")
	lon, _ := cmd.Flags().GetFloat64("new-lon")
	if name, _ := cmd.Flags().GetString("new-location"); name != "" {
		place, err := Geocode(name)
		if err != nil {
			return err
		}
		lat, lon = place.Lat, place.Lon
	}

	jd := ephem.JD(birth)
	positions, err := p.Positions(jd)
	if err != nil {
		return err
	}
	relocated := chart.New(positions, ephem.Houses(jd, lat, lon))
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Relocated chart at %.4f, %.4f\n\n", lat, lon)
	writePositions(out, relocated)
	fmt.Fprintln(out)
	writeHouses(out, relocated.Houses)
	return nil
}
