// Package chart implements the geometric core of chart interpretation:
// placements of bodies in signs and houses, pairwise aspects, multi-body
// chart patterns, elemental and modality balances, and chart dominance.
//
// A Chart is a pure value: a set of body positions for one moment, with
// an optional house system.  All derivations are recomputed on demand
// from it; nothing here mutates a chart after construction.
package chart

import (
	"errors"

	"astrochart/zodiac"
)

// Body identifies a planet, luminary, or minor body by name.
type Body string

const (
	Sun     Body = "Sun"
	Moon    Body = "Moon"
	Mercury Body = "Mercury"
	Venus   Body = "Venus"
	Mars    Body = "Mars"
	Jupiter Body = "Jupiter"
	Saturn  Body = "Saturn"
	Uranus  Body = "Uranus"
	Neptune Body = "Neptune"
	Pluto   Body = "Pluto"
)

// Planets is the standard ten-body set in traditional order.  Iteration
// order matters: scans and tie-breaks follow it.
var Planets = []Body{
	Sun, Moon, Mercury, Venus, Mars,
	Jupiter, Saturn, Uranus, Neptune, Pluto,
}

// Position is a body's state at one moment.  Derived fields are fixed by
// the longitude and speed at construction.
type Position struct {
	Body       Body
	Longitude  float64 // ecliptic degrees, [0,360)
	Speed      float64 // degrees per day; negative while retrograde
	Sign       zodiac.Sign
	SignDeg    float64 // degrees into sign, [0,30)
	Retrograde bool
}

// NewPosition builds a Position from a raw longitude and daily speed.
func NewPosition(b Body, lon, speed float64) Position {
	lon = zodiac.Normalize(lon)
	return Position{
		Body:       b,
		Longitude:  lon,
		Speed:      speed,
		Sign:       zodiac.SignFromLongitude(lon),
		SignDeg:    zodiac.DegreesIntoSign(lon),
		Retrograde: speed < 0,
	}
}

// ErrNoHouse is returned when no cusp interval contains a longitude.
// With twelve well-formed cusps this cannot happen; it flags a
// degenerate house system rather than silently filing the body in
// house 1.
var ErrNoHouse = errors.New("chart: no house contains longitude")

// HouseSystem is twelve cusp longitudes plus the chart angles, computed
// once per birth moment and location.  Cusps index by house number;
// Cusps[0] is unused.
type HouseSystem struct {
	Cusps     [13]float64
	Ascendant float64
	Midheaven float64
}

// House returns the house (1..12) containing the given longitude.
// House n spans from cusp n counter-clockwise to cusp n+1, wrapping
// through 0 degrees when the cusps straddle it.
func (h *HouseSystem) House(lon float64) (int, error) {
	lon = zodiac.Normalize(lon)
	for n := 1; n <= 12; n++ {
		cur := zodiac.Normalize(h.Cusps[n])
		nxt := zodiac.Normalize(h.Cusps[n%12+1])
		if cur < nxt {
			if cur <= lon && lon < nxt {
				return n, nil
			}
		} else if lon >= cur || lon < nxt {
			return n, nil
		}
	}
	return 0, ErrNoHouse
}

// AscendantSign returns the rising sign.
func (h *HouseSystem) AscendantSign() zodiac.Sign {
	return zodiac.SignFromLongitude(h.Ascendant)
}

// Chart is a body set for one moment.  Bodies fixes iteration order for
// every scan over the chart.
type Chart struct {
	Bodies    []Body
	Positions map[Body]Position
	Houses    *HouseSystem
}

// New builds a chart from positions, preserving their order.
func New(positions []Position, houses *HouseSystem) *Chart {
	c := &Chart{
		Bodies:    make([]Body, len(positions)),
		Positions: make(map[Body]Position, len(positions)),
		Houses:    houses,
	}
	for i, p := range positions {
		c.Bodies[i] = p.Body
		c.Positions[p.Body] = p
	}
	return c
}

// Longitude returns a body's longitude and whether it is present.
func (c *Chart) Longitude(b Body) (float64, bool) {
	p, ok := c.Positions[b]
	return p.Longitude, ok
}

// HouseOf locates a body in the chart's houses.  Returns ErrNoHouse for
// degenerate cusps and when the chart has no house system.
func (c *Chart) HouseOf(b Body) (int, error) {
	if c.Houses == nil {
		return 0, ErrNoHouse
	}
	p, ok := c.Positions[b]
	if !ok {
		return 0, ErrNoHouse
	}
	return c.Houses.House(p.Longitude)
}

// Retrogrades returns the retrograde bodies in chart order.  The Sun and
// Moon never show retrograde motion and are skipped.
func (c *Chart) Retrogrades() []Body {
	var r []Body
	for _, b := range c.Bodies {
		if b == Sun || b == Moon {
			continue
		}
		if c.Positions[b].Retrograde {
			r = append(r, b)
		}
	}
	return r
}
