package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"astrochart/ephem"
)

var synastryCmd = &cobra.Command{
	Use:   "synastry",
	Short: "Interaspects between two natal charts",
	RunE:  runSynastry,
}

func init() {
	synastryCmd.Flags().String("birth", "", "first birth time, \"2006-01-02 15:04\" in --tz")
	synastryCmd.Flags().String("partner-birth", "", "second birth time")
	synastryCmd.Flags().String("name", "A", "first person's name")
	synastryCmd.Flags().String("partner-name", "B", "second person's name")
	_ = synastryCmd.MarkFlagRequired("birth")
	_ = synastryCmd.MarkFlagRequired("partner-birth")
	rootCmd.AddCommand(synastryCmd)
}

func runSynastry(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	lat, lon, err := site()
	if err != nil {
		return err
	}

	birthStr, _ := cmd.Flags().GetString("birth")
	partnerStr, _ := cmd.Flags().GetString("partner-birth")

	birth, err := parseTime(birthStr)
	if err != nil {
		return err
	}
	partner, err := parseTime(partnerStr)
	if err != nil {
		return err
	}

	a, err := p.Chart(ephem.JD(birth), lat, lon)
	if err != nil {
		return err
	}
	b, err := p.Chart(ephem.JD(partner), lat, lon)
	if err != nil {
		return err
	}

	nameA, _ := cmd.Flags().GetString("name")
	nameB, _ := cmd.Flags().GetString("partner-name")
	fmt.Fprintln(cmd.OutOrStdout(), generator().Synastry(a, b, nameA, nameB))
	return nil
}
