package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/chart"
	"astrochart/ephem"
	"astrochart/zodiac"
)

var compatCmd = &cobra.Command{
	Use:   "compat",
	Short: "Sun sign compatibility analysis",
	RunE:  runCompat,
}

func init() {
	compatCmd.Flags().String("sign", "", "your sun sign")
	compatCmd.Flags().String("partner-sign", "", "partner's sun sign")
	_ = compatCmd.MarkFlagRequired("sign")
	_ = compatCmd.MarkFlagRequired("partner-sign")
	rootCmd.AddCommand(compatCmd)
}

func runCompat(cmd *cobra.Command, args []string) error {
	signStr, _ := cmd.Flags().GetString("sign")
	partnerStr, _ := cmd.Flags().GetString("partner-sign")

	sign, ok := zodiac.SignFromName(signStr)
	if !ok {
		return fmt.Errorf("unknown sign %q", signStr)
	}
	partner, ok := zodiac.SignFromName(partnerStr)
	if !ok {
		return fmt.Errorf("unknown sign %q", partnerStr)
	}

	// The current sky colors the reading with retrograde notes; it is
	// optional, so a missing ephemeris does not block this command.
	var current *chart.Chart
	if p, err := provider(); err == nil {
		lat, lon, err := site()
		if err != nil {
			return err
		}
		if current, err = p.Chart(ephem.JD(time.Now()), lat, lon); err != nil {
			return err
		}
	}

	fmt.Fprintln(cmd.OutOrStdout(), generator().Compatibility(sign, partner, current))
	return nil
}
