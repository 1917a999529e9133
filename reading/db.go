// Package reading assembles interpretive text from chart findings and
// a JSON content database.
package reading

import (
	"encoding/json"
	"fmt"
	"os"

	"astrochart/chart"
	"astrochart/zodiac"
)

// Database is the interpretive content store.  Every lookup has a
// neutral fallback, so a partial or missing database degrades to
// generic text rather than failing.
type Database struct {
	SunSignThemes       map[string][]string `json:"sun_sign_themes"`
	MoonSignInfluences  map[string]string   `json:"moon_sign_influences"`
	ElementCombinations map[string]string   `json:"element_combinations"`
	HouseDailyFocus     map[string]string   `json:"house_daily_focus"`
	GeneralWisdom       []string            `json:"general_wisdom"`
	NatalChart          NatalContent        `json:"natal_chart"`
	Compatibility       CompatContent       `json:"compatibility"`
}

// NatalContent holds the natal-chart interpretation subtree.
type NatalContent struct {
	RisingSign      map[string]string            `json:"rising_sign"`
	PlanetInSign    map[string]string            `json:"planet_in_sign"`
	NatalRetrograde map[string]string            `json:"natal_retrograde"`
	Aspects         map[string]map[string]string `json:"aspect_interpretations"`
	ChartPatterns   map[string]PatternContent    `json:"chart_patterns"`
	Elements        map[string]LevelContent      `json:"elements"`
	Modalities      map[string]LevelContent      `json:"modalities"`
	DominantPlanet  map[string]string            `json:"dominant_planet"`
	PlanetaryHours  map[string]string            `json:"planetary_hours"`
	LunarPhases     map[string]PhaseContent      `json:"lunar_phases"`
	FixedStars      StarContent                  `json:"fixed_stars"`
	SabianSymbols   SabianContent                `json:"sabian_symbols"`
	VoidOfCourse    AdviceContent                `json:"void_of_course_moon"`
	SolarReturn     map[string]string            `json:"solar_return"`
	Progressions    map[string]string            `json:"progressions"`
	Chiron          ChironContent                `json:"chiron"`
}

// CompatContent holds the compatibility subtree.
type CompatContent struct {
	ElementDynamics map[string]string   `json:"element_dynamics"`
	Patterns        []string            `json:"universal_relationship_patterns"`
	Advice          map[string][]string `json:"compatibility_advice"`
	TransitNotes    map[string][]string `json:"transit_influences_on_relationships"`
}

// PatternContent describes one chart pattern type.
type PatternContent struct {
	Description    string `json:"description"`
	Interpretation string `json:"interpretation"`
}

// LevelContent carries keywords plus per-level text keyed High,
// Balanced or Low.
type LevelContent struct {
	Keywords string `json:"keywords"`
	High     string `json:"high"`
	Balanced string `json:"balanced"`
	Low      string `json:"low"`
}

// PhaseContent describes one lunar phase.
type PhaseContent struct {
	Name           string `json:"name"`
	Interpretation string `json:"interpretation"`
}

// StarContent is the fixed star catalog with its preamble.
type StarContent struct {
	Description string              `json:"description"`
	Stars       map[string]StarInfo `json:"stars"`
}

// StarInfo is one catalog star: its sign, degrees into the sign, and
// meaning.
type StarInfo struct {
	Sign      string  `json:"sign"`
	Longitude float64 `json:"longitude"`
	Meaning   string  `json:"meaning"`
}

// SabianContent maps absolute degree numbers, as strings, to symbols.
type SabianContent struct {
	Description string                  `json:"description"`
	Symbols     map[string]SabianSymbol `json:"symbols"`
}

// SabianSymbol is the image for one zodiac degree.
type SabianSymbol struct {
	Sign           string `json:"sign"`
	Degree         int    `json:"degree"`
	Symbol         string `json:"symbol"`
	Interpretation string `json:"interpretation"`
}

// ChironContent pairs the Chiron preamble with per-sign text.
type ChironContent struct {
	Description string            `json:"description"`
	InSign      map[string]string `json:"chiron_in_sign"`
}

// AdviceContent pairs a description with advice text.
type AdviceContent struct {
	Description string `json:"description"`
	Advice      string `json:"advice"`
}

// Load reads a content database from a JSON file.
func Load(path string) (*Database, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	var db Database
	if err := json.Unmarshal(data, &db); err != nil {
		return nil, fmt.Errorf("reading: parsing %s: %w", path, err)
	}
	return &db, nil
}

// Default is the built-in minimal database used when no file is
// available.
func Default() *Database {
	return &Database{
		GeneralWisdom: []string{
			"Trust the cosmic flow",
			"The stars incline, they do not compel",
		},
	}
}

// Level selects the text for a balance level.
func (l LevelContent) Level(level chart.BalanceLevel) string {
	switch level {
	case chart.High:
		return l.High
	case chart.Low:
		return l.Low
	}
	return l.Balanced
}

// FixedStarList converts the catalog to chart form for the contact
// scan.  Stars with unknown sign names are dropped.
func (db *Database) FixedStarList() []chart.FixedStar {
	out := make([]chart.FixedStar, 0, len(db.NatalChart.FixedStars.Stars))
	for name, info := range db.NatalChart.FixedStars.Stars {
		sign, ok := zodiac.SignFromName(info.Sign)
		if !ok {
			continue
		}
		out = append(out, chart.FixedStar{Name: name, Sign: sign, Degree: info.Longitude})
	}
	return out
}
