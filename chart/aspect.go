package chart

import "astrochart/zodiac"

// AspectType names one of the five major aspects.
type AspectType string

const (
	Conjunction AspectType = "conjunction"
	Opposition  AspectType = "opposition"
	Trine       AspectType = "trine"
	Square      AspectType = "square"
	Sextile     AspectType = "sextile"
)

// AspectSpec is one row of the aspect table: a target angle and the orb
// within which a separation still counts as that aspect.
type AspectSpec struct {
	Type  AspectType
	Angle float64
	Orb   float64
}

// AspectTable lists the major aspects in classification order.  A pair
// is tested against rows in this order and the first match wins, so a
// pair classifies as at most one aspect even where orbs could overlap.
var AspectTable = []AspectSpec{
	{Conjunction, 0, 8},
	{Opposition, 180, 8},
	{Trine, 120, 8},
	{Square, 90, 8},
	{Sextile, 60, 6},
}

// TightAspectTable is the 1-degree-orb table used for exactness scans
// such as upcoming-transit prediction.  Sextiles are omitted there.
var TightAspectTable = []AspectSpec{
	{Conjunction, 0, 1},
	{Opposition, 180, 1},
	{Trine, 120, 1},
	{Square, 90, 1},
}

// Aspect is a classified angular relationship between two bodies.
// The pair is unordered; A precedes B in chart order.
type Aspect struct {
	A, B  Body
	Type  AspectType
	Angle float64 // actual separation, degrees
	Orb   float64 // distance from the exact angle
}

// Classify tests a separation against a table, first match wins.
func Classify(sep float64, table []AspectSpec) (AspectSpec, bool) {
	for _, spec := range table {
		if d := sep - spec.Angle; -spec.Orb <= d && d <= spec.Orb {
			return spec, true
		}
	}
	return AspectSpec{}, false
}

// Aspects classifies every unordered pair of chart bodies against the
// major aspect table.  Fewer than two bodies yields an empty set.
func (c *Chart) Aspects() []Aspect {
	var out []Aspect
	for i, a := range c.Bodies {
		for _, b := range c.Bodies[i+1:] {
			sep := zodiac.Separation(c.Positions[a].Longitude, c.Positions[b].Longitude)
			if spec, ok := Classify(sep, AspectTable); ok {
				out = append(out, Aspect{
					A:     a,
					B:     b,
					Type:  spec.Type,
					Angle: sep,
					Orb:   absf(sep - spec.Angle),
				})
			}
		}
	}
	return out
}

// inAspect probes a single pair for a specific angle within an orb.
// Pattern detection calls this directly; unlike Aspects it carries no
// first-match exclusivity between aspect types.
func (c *Chart) inAspect(a, b Body, angle, orb float64) bool {
	sep := zodiac.Separation(c.Positions[a].Longitude, c.Positions[b].Longitude)
	d := sep - angle
	return -orb <= d && d <= orb
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
