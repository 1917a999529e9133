package astorb

import (
	"errors"
	"sort"

	"astrochart/chart"
	"astrochart/zodiac"
)

// Asteroid is a named catalog body with its computed ecliptic
// longitude.
type Asteroid struct {
	Number    int
	Name      string
	Longitude float64
	Sign      zodiac.Sign
	SignDeg   float64
}

// Major lists the big six asteroids in traditional order.
var Major = []struct {
	Name   string
	Number int
}{
	{"Ceres", 1},
	{"Pallas", 2},
	{"Juno", 3},
	{"Vesta", 4},
	{"Psyche", 16},
	{"Eros", 433},
}

// chironNumber is Chiron's minor planet designation.
const chironNumber = 2060

// Themes groups asteroids by reading theme.
var Themes = map[string]map[int]string{
	"love_and_romance":     {433: "Eros", 763: "Cupido", 1221: "Amor", 447: "Valentine", 80: "Sappho", 1388: "Aphrodite"},
	"career_and_success":   {19: "Fortuna", 151: "Abundantia"},
	"spiritual_and_karmic": {3811: "Karma", 128: "Nemesis", 896: "Sphinx"},
	"healing":              {10: "Hygiea", 2878: "Panacea"},
	"creative_arts":        {7: "Iris", 22: "Kalliope", 27: "Euterpe", 62: "Erato", 81: "Terpsichore"},
}

// ThemeNames returns the available themes sorted.
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for n := range Themes {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// at computes one asteroid's position.  A missing catalog entry is
// ErrNotFound so scans can skip it; a propagation failure is returned
// as-is.
func (c *Catalog) at(number int, name string, jd float64) (Asteroid, error) {
	e, err := c.Find(number)
	if err != nil {
		return Asteroid{}, err
	}
	lon, err := e.Elements.LongitudeAt(jd)
	if err != nil {
		return Asteroid{}, err
	}
	return Asteroid{
		Number:    number,
		Name:      name,
		Longitude: lon,
		Sign:      zodiac.SignFromLongitude(lon),
		SignDeg:   zodiac.DegreesIntoSign(lon),
	}, nil
}

// Chiron computes Chiron's position at a Julian date.  Catalogs that
// omit entry 2060 yield ErrNotFound; callers skip the reading rather
// than fail the chart.
func (c *Catalog) Chiron(jd float64) (Asteroid, error) {
	return c.at(chironNumber, "Chiron", jd)
}

// MajorAsteroids computes the big six positions at a Julian date.
// Bodies absent from the catalog are skipped; a propagation failure is
// an error.
func (c *Catalog) MajorAsteroids(jd float64) ([]Asteroid, error) {
	out := make([]Asteroid, 0, len(Major))
	for _, m := range Major {
		a, err := c.at(m.Number, m.Name, jd)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, nil
}

// conjunctionOrb is the orb for asteroid-to-natal contacts.
const conjunctionOrb = 3.0

// ThemeHit is a thematic asteroid conjunct a natal body.
type ThemeHit struct {
	Asteroid Asteroid
	Natal    chart.Body
	Orb      float64
}

// ThematicScan computes each asteroid in a theme and reports
// conjunctions to natal bodies within a three degree orb.  An unknown
// theme yields no hits.
func (c *Catalog) ThematicScan(theme string, jd float64, natal *chart.Chart) ([]ThemeHit, error) {
	group, ok := Themes[theme]
	if !ok {
		return nil, nil
	}
	numbers := make([]int, 0, len(group))
	for n := range group {
		numbers = append(numbers, n)
	}
	sort.Ints(numbers)

	var out []ThemeHit
	for _, n := range numbers {
		a, err := c.at(n, group[n], jd)
		if errors.Is(err, ErrNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}
		for _, b := range natal.Bodies {
			if d := zodiac.Separation(a.Longitude, natal.Positions[b].Longitude); d <= conjunctionOrb {
				out = append(out, ThemeHit{Asteroid: a, Natal: b, Orb: d})
			}
		}
	}
	return out, nil
}
