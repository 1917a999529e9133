// Package ephem computes geocentric ecliptic positions and house cusps
// from the VSOP87 planetary theory and the ELP lunar theory, as
// implemented by the meeus library.
package ephem

import (
	"fmt"
	"math"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/planetposition"
	"github.com/soniakeys/meeus/v3/pluto"

	"astrochart/chart"
	"astrochart/zodiac"
)

// speedStep is the half-interval, in days, of the symmetric difference
// used to estimate daily motion.
const speedStep = 0.5

// vsop87 maps bodies to planetposition planet constants.  Sun, Moon and
// Pluto are handled separately.
var vsop87 = map[chart.Body]int{
	chart.Mercury: planetposition.Mercury,
	chart.Venus:   planetposition.Venus,
	chart.Mars:    planetposition.Mars,
	chart.Jupiter: planetposition.Jupiter,
	chart.Saturn:  planetposition.Saturn,
	chart.Uranus:  planetposition.Uranus,
	chart.Neptune: planetposition.Neptune,
}

// Provider computes positions from VSOP87 data files on disk.
type Provider struct {
	earth   *planetposition.V87Planet
	planets map[chart.Body]*planetposition.V87Planet
}

// NewProvider loads the VSOP87 data files from dir.
func NewProvider(dir string) (*Provider, error) {
	earth, err := planetposition.LoadPlanetPath(planetposition.Earth, dir)
	if err != nil {
		return nil, fmt.Errorf("ephem: loading Earth: %w", err)
	}
	p := &Provider{
		earth:   earth,
		planets: make(map[chart.Body]*planetposition.V87Planet, len(vsop87)),
	}
	for b, n := range vsop87 {
		v, err := planetposition.LoadPlanetPath(n, dir)
		if err != nil {
			return nil, fmt.Errorf("ephem: loading %s: %w", b, err)
		}
		p.planets[b] = v
	}
	return p, nil
}

// Longitude returns the geocentric ecliptic longitude of a body in
// degrees at the given Julian date.
func (p *Provider) Longitude(b chart.Body, jd float64) (float64, error) {
	switch b {
	case chart.Sun:
		l, _, _ := p.earth.Position(jd)
		return zodiac.Normalize(l.Deg() + 180), nil
	case chart.Moon:
		l, _, _ := moonposition.Position(jd)
		return zodiac.Normalize(l.Deg()), nil
	case chart.Pluto:
		l, bb, r := pluto.Heliocentric(jd)
		return p.geocentric(jd, l.Rad(), bb.Rad(), r), nil
	}
	v, ok := p.planets[b]
	if !ok {
		return 0, fmt.Errorf("ephem: no ephemeris for %s", b)
	}
	l, bb, r := v.Position(jd)
	return p.geocentric(jd, l.Rad(), bb.Rad(), r), nil
}

// geocentric converts heliocentric spherical coordinates to a
// geocentric ecliptic longitude in degrees by differencing rectangular
// position vectors with the Earth's.
func (p *Provider) geocentric(jd, l, b, r float64) float64 {
	x, y := rect(l, b, r)
	el, eb, er := p.earth.Position(jd)
	ex, ey := rect(el.Rad(), eb.Rad(), er)
	return zodiac.Normalize(math.Atan2(y-ey, x-ex) * 180 / math.Pi)
}

func rect(l, b, r float64) (x, y float64) {
	sl, cl := math.Sincos(l)
	cb := math.Cos(b)
	return r * cb * cl, r * cb * sl
}

// Position returns a body's position with its daily motion estimated by
// symmetric difference.
func (p *Provider) Position(b chart.Body, jd float64) (chart.Position, error) {
	lon, err := p.Longitude(b, jd)
	if err != nil {
		return chart.Position{}, err
	}
	before, err := p.Longitude(b, jd-speedStep)
	if err != nil {
		return chart.Position{}, err
	}
	after, err := p.Longitude(b, jd+speedStep)
	if err != nil {
		return chart.Position{}, err
	}
	speed := zodiac.Normalize(after-before+180) - 180
	return chart.NewPosition(b, lon, speed), nil
}

// Positions returns positions for all ten bodies in chart order.
func (p *Provider) Positions(jd float64) ([]chart.Position, error) {
	out := make([]chart.Position, 0, len(chart.Planets))
	for _, b := range chart.Planets {
		pos, err := p.Position(b, jd)
		if err != nil {
			return nil, err
		}
		out = append(out, pos)
	}
	return out, nil
}

// Chart computes a full chart, positions and houses, for an instant and
// a geographic location.  Latitude and east longitude are in degrees.
func (p *Provider) Chart(jd, lat, lon float64) (*chart.Chart, error) {
	positions, err := p.Positions(jd)
	if err != nil {
		return nil, err
	}
	return chart.New(positions, Houses(jd, lat, lon)), nil
}

// JD converts a civil time to a Julian date.
func JD(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// Time converts a Julian date back to civil time in UTC.
func Time(jd float64) time.Time {
	return julian.JDToTime(jd).UTC()
}
