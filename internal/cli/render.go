package cli

import (
	"fmt"
	"io"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"astrochart/chart"
	"astrochart/zodiac"
)

// fmtDeg renders degrees within a sign in sexagesimal form.
func fmtDeg(deg float64) string {
	return fmt.Sprintf("%v", sexa.FmtAngle(unit.AngleFromDeg(deg)))
}

// writePositions prints a chart's body table.
func writePositions(w io.Writer, c *chart.Chart) {
	for _, b := range c.Bodies {
		p := c.Positions[b]
		retro := ""
		if p.Retrograde {
			retro = " R"
		}
		if h, err := c.HouseOf(b); err == nil {
			fmt.Fprintf(w, "%-8s %-12s %10s  house %2d%s\n", b, p.Sign, fmtDeg(p.SignDeg), h, retro)
		} else {
			fmt.Fprintf(w, "%-8s %-12s %10s%s\n", b, p.Sign, fmtDeg(p.SignDeg), retro)
		}
	}
}

// writeHouses prints the cusp table with the angles.
func writeHouses(w io.Writer, h *chart.HouseSystem) {
	fmt.Fprintf(w, "Ascendant  %-12s %s\n", zodiac.SignFromLongitude(h.Ascendant), fmtDeg(zodiac.DegreesIntoSign(h.Ascendant)))
	fmt.Fprintf(w, "Midheaven  %-12s %s\n", zodiac.SignFromLongitude(h.Midheaven), fmtDeg(zodiac.DegreesIntoSign(h.Midheaven)))
	for i := 1; i <= 12; i++ {
		c := h.Cusps[i]
		fmt.Fprintf(w, "House %2d   %-12s %s\n", i, zodiac.SignFromLongitude(c), fmtDeg(zodiac.DegreesIntoSign(c)))
	}
}

// writeAspects prints a chart's internal aspects.
func writeAspects(w io.Writer, c *chart.Chart) {
	for _, a := range c.Aspects() {
		fmt.Fprintf(w, "%-8s %-12s %-8s  orb %.1f\n", a.A, a.Type, a.B, a.Orb)
	}
}
