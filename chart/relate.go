package chart

import (
	"sort"

	"astrochart/zodiac"
)

// Transit is an aspect from a transiting body to a natal body, with the
// natal house receiving the transit.
type Transit struct {
	Transiting Body
	Natal      Body
	Type       AspectType
	Angle      float64
	Orb        float64
	NatalHouse int // 0 when the natal chart has no usable houses
}

// Transits classifies every transiting/natal pair against the given
// aspect table and returns matches sorted tightest orb first.
func Transits(current, natal *Chart, table []AspectSpec) []Transit {
	var out []Transit
	for _, tb := range current.Bodies {
		for _, nb := range natal.Bodies {
			sep := zodiac.Separation(current.Positions[tb].Longitude, natal.Positions[nb].Longitude)
			spec, ok := Classify(sep, table)
			if !ok {
				continue
			}
			house, err := natal.HouseOf(nb)
			if err != nil {
				house = 0
			}
			out = append(out, Transit{
				Transiting: tb,
				Natal:      nb,
				Type:       spec.Type,
				Angle:      sep,
				Orb:        absf(sep - spec.Angle),
				NatalHouse: house,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orb < out[j].Orb })
	return out
}

// Interaspect is an aspect between one person's body and another's.
type Interaspect struct {
	A, B      Body // A from the first chart, B from the second
	Type      AspectType
	Angle     float64
	Orb       float64
	Important bool
}

// importantPairs are the synastry combinations traditionally given the
// most weight.
var importantPairs = map[[2]Body]bool{
	{Sun, Moon}: true, {Moon, Sun}: true,
	{Venus, Mars}: true, {Mars, Venus}: true,
	{Sun, Venus}: true, {Venus, Sun}: true,
	{Moon, Venus}: true, {Venus, Moon}: true,
}

// Synastry classifies every cross-chart pair against the major aspect
// table, sorted tightest orb first.
func Synastry(a, b *Chart) []Interaspect {
	var out []Interaspect
	for _, ab := range a.Bodies {
		for _, bb := range b.Bodies {
			sep := zodiac.Separation(a.Positions[ab].Longitude, b.Positions[bb].Longitude)
			spec, ok := Classify(sep, AspectTable)
			if !ok {
				continue
			}
			out = append(out, Interaspect{
				A:         ab,
				B:         bb,
				Type:      spec.Type,
				Angle:     sep,
				Orb:       absf(sep - spec.Angle),
				Important: importantPairs[[2]Body{ab, bb}],
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Orb < out[j].Orb })
	return out
}

// FixedStar is a star position given as a sign and degrees into it, the
// form the star catalog uses.
type FixedStar struct {
	Name   string
	Sign   zodiac.Sign
	Degree float64
}

// Longitude is the star's absolute ecliptic longitude.
func (s FixedStar) Longitude() float64 {
	return float64(s.Sign)*30 + s.Degree
}

// StarContact is a fixed star conjunct a chart body or angle.
type StarContact struct {
	Star  string
	Point string // body name, "Ascendant", or "Midheaven"
	Orb   float64
}

const starOrb = 1.0

// StarContacts scans the chart's bodies and angles for conjunctions to
// the given stars within a one-degree orb.
func (c *Chart) StarContacts(stars []FixedStar) []StarContact {
	var out []StarContact
	check := func(point string, lon float64) {
		for _, s := range stars {
			if d := zodiac.Separation(lon, s.Longitude()); d <= starOrb {
				out = append(out, StarContact{Star: s.Name, Point: point, Orb: d})
			}
		}
	}
	for _, b := range c.Bodies {
		check(string(b), c.Positions[b].Longitude)
	}
	if c.Houses != nil {
		check("Ascendant", c.Houses.Ascendant)
		check("Midheaven", c.Houses.Midheaven)
	}
	return out
}
