package chart

import (
	"sort"
	"strings"

	"astrochart/zodiac"
)

// PatternType names a multi-body chart configuration.
type PatternType string

const (
	GrandTrine PatternType = "grand_trine"
	GrandCross PatternType = "grand_cross"
	TSquare    PatternType = "t_square"
	Stellium   PatternType = "stellium"
	Yod        PatternType = "yod"
)

// Pattern is a detected chart configuration.  Bodies lists the
// participants; Apex is set for the pointed patterns (T-Square, Yod),
// Sign for stelliums, Element for grand trines.
type Pattern struct {
	Type    PatternType
	Bodies  []Body
	Apex    Body
	Sign    zodiac.Sign
	Element zodiac.Element
}

const (
	quincunx    = 150.0
	quincunxOrb = 3.0
)

// Patterns runs the full combinatorial pattern scan over the chart.
// Each search enumerates body combinations and probes exact angles with
// inAspect; configurations reachable from several entry points are
// deduplicated by their canonical (sorted) body set.  Exhaustive nested
// iteration is fine at chart size (at most ~13 bodies).
func (c *Chart) Patterns() []Pattern {
	var out []Pattern
	out = append(out, c.grandTrines()...)
	out = append(out, c.grandCrosses()...)
	out = append(out, c.tSquares()...)
	out = append(out, c.stelliums()...)
	out = append(out, c.yods()...)
	return out
}

// canonical builds a dedupe key from an unordered body set.
func canonical(bodies ...Body) string {
	names := make([]string, len(bodies))
	for i, b := range bodies {
		names[i] = string(b)
	}
	sort.Strings(names)
	return strings.Join(names, "|")
}

// grandTrines finds triples mutually in trine.  The dominant element is
// the mode of the three signs' elements, ties going to the earlier
// element in zodiac.Elements order.
func (c *Chart) grandTrines() []Pattern {
	var out []Pattern
	bs := c.Bodies
	for i, p1 := range bs {
		for j := i + 1; j < len(bs); j++ {
			p2 := bs[j]
			if !c.inAspect(p1, p2, 120, 8) {
				continue
			}
			for _, p3 := range bs[j+1:] {
				if c.inAspect(p2, p3, 120, 8) && c.inAspect(p1, p3, 120, 8) {
					out = append(out, Pattern{
						Type:    GrandTrine,
						Bodies:  []Body{p1, p2, p3},
						Element: c.dominantElement(p1, p2, p3),
					})
				}
			}
		}
	}
	return out
}

func (c *Chart) dominantElement(bodies ...Body) zodiac.Element {
	counts := map[zodiac.Element]int{}
	for _, b := range bodies {
		counts[c.Positions[b].Sign.Element()]++
	}
	best := zodiac.Elements[0]
	for _, e := range zodiac.Elements {
		if counts[e] > counts[best] {
			best = e
		}
	}
	return best
}

// grandCrosses finds four bodies forming two oppositions linked by
// squares: A-B opposed, A-C and B-D square, C-D opposed.
func (c *Chart) grandCrosses() []Pattern {
	var out []Pattern
	seen := map[string]bool{}
	bs := c.Bodies
	for i, p1 := range bs {
		for _, p2 := range bs[i+1:] {
			if !c.inAspect(p1, p2, 180, 8) {
				continue
			}
			for _, p3 := range bs {
				if p3 == p1 || p3 == p2 || !c.inAspect(p1, p3, 90, 8) {
					continue
				}
				for _, p4 := range bs {
					if p4 == p1 || p4 == p2 || p4 == p3 {
						continue
					}
					if !c.inAspect(p2, p4, 90, 8) || !c.inAspect(p3, p4, 180, 8) {
						continue
					}
					key := canonical(p1, p2, p3, p4)
					if seen[key] {
						continue
					}
					seen[key] = true
					out = append(out, Pattern{
						Type:   GrandCross,
						Bodies: []Body{p1, p2, p3, p4},
					})
				}
			}
		}
	}
	return out
}

// tSquares finds opposed pairs both square a third apex body.
func (c *Chart) tSquares() []Pattern {
	var out []Pattern
	seen := map[string]bool{}
	bs := c.Bodies
	for i, p1 := range bs {
		for _, p2 := range bs[i+1:] {
			if !c.inAspect(p1, p2, 180, 8) {
				continue
			}
			for _, apex := range bs {
				if apex == p1 || apex == p2 {
					continue
				}
				if !c.inAspect(p1, apex, 90, 8) || !c.inAspect(p2, apex, 90, 8) {
					continue
				}
				key := canonical(p1, p2, apex)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, Pattern{
					Type:   TSquare,
					Bodies: []Body{p1, p2},
					Apex:   apex,
				})
			}
		}
	}
	return out
}

// stelliums reports each sign holding three or more bodies, once per
// sign.
func (c *Chart) stelliums() []Pattern {
	bySign := map[zodiac.Sign][]Body{}
	for _, b := range c.Bodies {
		s := c.Positions[b].Sign
		bySign[s] = append(bySign[s], b)
	}
	var out []Pattern
	for s := zodiac.Aries; s <= zodiac.Pisces; s++ {
		if bodies := bySign[s]; len(bodies) >= 3 {
			out = append(out, Pattern{
				Type:   Stellium,
				Bodies: bodies,
				Sign:   s,
			})
		}
	}
	return out
}

// yods finds sextile pairs both quincunx a third apex body.  The tight
// quincunx orb keeps this pattern rare, as it should be.
func (c *Chart) yods() []Pattern {
	var out []Pattern
	seen := map[string]bool{}
	bs := c.Bodies
	for i, p1 := range bs {
		for _, p2 := range bs[i+1:] {
			if !c.inAspect(p1, p2, 60, 6) {
				continue
			}
			for _, apex := range bs {
				if apex == p1 || apex == p2 {
					continue
				}
				if !c.inAspect(p1, apex, quincunx, quincunxOrb) ||
					!c.inAspect(p2, apex, quincunx, quincunxOrb) {
					continue
				}
				key := canonical(p1, p2, apex)
				if seen[key] {
					continue
				}
				seen[key] = true
				out = append(out, Pattern{
					Type:   Yod,
					Bodies: []Body{p1, p2},
					Apex:   apex,
				})
			}
		}
	}
	return out
}
