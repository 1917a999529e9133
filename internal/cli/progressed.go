package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"astrochart/ephem"
)

var progressedCmd = &cobra.Command{
	Use:   "progressed",
	Short: "Secondary progressions: one day after birth per year of life",
	RunE:  runProgressed,
}

func init() {
	progressedCmd.Flags().String("birth", "", "birth time, \"2006-01-02 15:04\" in --tz")
	progressedCmd.Flags().String("date", "", "target date, \"2006-01-02 15:04\" (default: now)")
	_ = progressedCmd.MarkFlagRequired("birth")
	rootCmd.AddCommand(progressedCmd)
}

func runProgressed(cmd *cobra.Command, args []string) error {
	p, err := provider()
	if err != nil {
		return err
	}
	birthStr, _ := cmd.Flags().GetString("birth")
	birth, err := parseTime(birthStr)
	if err != nil {
		return err
	}
	target := time.Now()
	if dateStr, _ := cmd.Flags().GetString("date"); dateStr != "" {
		if target, err = parseTime(dateStr); err != nil {
			return err
		}
	}

	birthJD := ephem.JD(birth)
	targetJD := ephem.JD(target)
	progJD := ephem.ProgressedJD(birthJD, targetJD)
	age := (targetJD - birthJD) / 365.25

	positions, err := p.Positions(progJD)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Age %.1f years; progressed date %s\n\n",
		age, ephem.Time(progJD).Format("2006-01-02"))
	for _, pos := range positions {
		retro := ""
		if pos.Retrograde {
			retro = " R"
		}
		fmt.Fprintf(out, "%-8s %-12s %10s%s\n", pos.Body, pos.Sign, fmtDeg(pos.SignDeg), retro)
	}
	return nil
}
