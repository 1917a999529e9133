package reading_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrochart/chart"
	"astrochart/reading"
	"astrochart/zodiac"
)

const dbJSON = `{
	"sun_sign_themes": {"Aries": ["Bold moves pay off", "Initiative opens doors"]},
	"moon_sign_influences": {"Cancer": "deepening your emotional tides"},
	"element_combinations": {"Fire_Water": "steam and intensity"},
	"house_daily_focus": {"1": "putting you front and center"},
	"general_wisdom": ["Trust the process", "The stars incline"],
	"natal_chart": {
		"rising_sign": {"Leo": "You lead with warmth."},
		"planet_in_sign": {"Sun_Aries": "You charge ahead."},
		"elements": {"Fire": {"keywords": "passion, drive", "high": "Fire dominates you."}},
		"fixed_stars": {"stars": {"Regulus": {"sign": "Leo", "longitude": 29.8, "meaning": "royal star"}}},
		"sabian_symbols": {"symbols": {"1": {"sign": "Aries", "degree": 1, "symbol": "A woman rises out of water", "interpretation": "Emergence."}}},
		"chiron": {"description": "The wounded healer.", "chiron_in_sign": {"Libra": "Wounds around partnership become gifts of diplomacy."}}
	},
	"compatibility": {
		"element_dynamics": {"Fire_Fire": "Double fire burns bright."},
		"universal_relationship_patterns": ["Listen first", "Grow together", "Respect space", "Share dreams"],
		"compatibility_advice": {"harmonious": ["Lean into the ease."]},
		"transit_influences_on_relationships": {"venus_retrograde": ["Old flames resurface."]}
	}
}`

func loadDB(t *testing.T) *reading.Database {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	require.NoError(t, os.WriteFile(path, []byte(dbJSON), 0644))
	db, err := reading.Load(path)
	require.NoError(t, err)
	return db
}

func testChart(positions map[chart.Body]float64, houses *chart.HouseSystem) *chart.Chart {
	var ps []chart.Position
	for _, b := range chart.Planets {
		if lon, ok := positions[b]; ok {
			ps = append(ps, chart.NewPosition(b, lon, 1))
		}
	}
	return chart.New(ps, houses)
}

func TestLoadMissing(t *testing.T) {
	_, err := reading.Load(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestDaily(t *testing.T) {
	c := testChart(map[chart.Body]float64{
		chart.Sun:  5,  // Aries
		chart.Moon: 95, // Cancer
	}, nil)
	g := reading.NewGenerator(loadDB(t), 1)
	out := g.Daily(c, zodiac.Aries)

	assert.Contains(t, out, "With the Sun in Aries")
	assert.Contains(t, out, "The Moon in Cancer is deepening your emotional tides")
	assert.Contains(t, out, "steam and intensity")
	// No houses on this chart, so no house emphasis line.
	assert.NotContains(t, out, "cosmic emphasis")
}

func TestDailyDeterministic(t *testing.T) {
	c := testChart(map[chart.Body]float64{chart.Sun: 5, chart.Moon: 95}, nil)
	db := loadDB(t)
	a := reading.NewGenerator(db, 7).Daily(c, zodiac.Aries)
	b := reading.NewGenerator(db, 7).Daily(c, zodiac.Aries)
	assert.Equal(t, a, b)
}

func TestDailyFallbackDatabase(t *testing.T) {
	c := testChart(map[chart.Body]float64{chart.Sun: 5, chart.Moon: 95}, nil)
	g := reading.NewGenerator(nil, 1)
	out := g.Daily(c, zodiac.Aries)
	assert.Contains(t, out, "cosmic energies are at work")
	assert.Contains(t, out, "creating a unique energetic blend")
}

func TestNatal(t *testing.T) {
	houses := &chart.HouseSystem{Ascendant: 125, Midheaven: 35}
	for i := 1; i <= 12; i++ {
		houses.Cusps[i] = zodiac.Normalize(125 + float64(i-1)*30)
	}
	c := testChart(map[chart.Body]float64{
		chart.Sun:     5,
		chart.Moon:    95,
		chart.Mercury: 10,
		chart.Venus:   125,
		chart.Mars:    245,
	}, houses)

	out := reading.NewGenerator(loadDB(t), 1).Natal(c, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	assert.Contains(t, out, "Rising Sign (Ascendant): Leo")
	assert.Contains(t, out, "You lead with warmth.")
	assert.Contains(t, out, "You charge ahead.")
	assert.Contains(t, out, "Grand Trine in Fire: Sun, Venus, Mars")
	assert.Contains(t, out, "Elemental Balance:")
	assert.Contains(t, out, "Chart Ruler:")
	assert.Contains(t, out, "Current Planetary Hour:")
}

func TestNatalAspectOrdering(t *testing.T) {
	// Chart order pairs the Sun-Moon sextile before the Sun-Mercury
	// conjunction; presentation reranks conjunctions first.
	c := testChart(map[chart.Body]float64{
		chart.Sun:     0,
		chart.Moon:    60,
		chart.Mercury: 0,
	}, nil)

	out := reading.NewGenerator(loadDB(t), 1).Natal(c, time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC))

	conj := strings.Index(out, "Sun conjunction Mercury")
	sext := strings.Index(out, "Sun sextile Moon")
	require.NotEqual(t, -1, conj)
	require.NotEqual(t, -1, sext)
	assert.Less(t, conj, sext)
}

func TestChiron(t *testing.T) {
	gen := reading.NewGenerator(loadDB(t), 1)

	out := gen.Chiron(zodiac.Libra, 5.2)
	assert.Contains(t, out, "CHIRON - YOUR WOUND AND HEALING GIFT")
	assert.Contains(t, out, "The wounded healer.")
	assert.Contains(t, out, "Chiron in Libra (5.2 deg)")
	assert.Contains(t, out, "gifts of diplomacy")

	// A sign the database does not cover falls back to generic text.
	out = gen.Chiron(zodiac.Aries, 12.0)
	assert.Contains(t, out, "unique wound and healing gift")
}

func TestCompatibility(t *testing.T) {
	// Venus retrograde in the current sky.
	current := chart.New([]chart.Position{
		chart.NewPosition(chart.Venus, 40, -0.3),
	}, nil)

	out := reading.NewGenerator(loadDB(t), 1).Compatibility(zodiac.Aries, zodiac.Leo, current)

	assert.Contains(t, out, "Aries (Fire) and Leo (Fire)")
	assert.Contains(t, out, "Double fire burns bright.")
	assert.Contains(t, out, "Lean into the ease.")
	assert.Contains(t, out, "Venus Retrograde: Old flames resurface.")
	// Three of the four patterns are sampled.
	assert.Equal(t, 3, strings.Count(out, "\n- ")-1)
}

func TestSynastry(t *testing.T) {
	a := testChart(map[chart.Body]float64{chart.Sun: 15}, nil)
	b := testChart(map[chart.Body]float64{chart.Moon: 17}, nil)

	out := reading.NewGenerator(loadDB(t), 1).Synastry(a, b, "Ana", "Ben")
	assert.Contains(t, out, "Ana's Sun conjunction Ben's Moon")
	assert.Contains(t, out, "[key pairing]")
}

func TestSabian(t *testing.T) {
	g := reading.NewGenerator(loadDB(t), 1)

	s := g.Sabian(0.4) // first degree of Aries
	assert.Equal(t, "A woman rises out of water", s.Symbol)

	s = g.Sabian(42.7) // no entry, falls back
	assert.Equal(t, "Taurus", s.Sign)
	assert.Equal(t, 13, s.Degree)
}

func TestFixedStarList(t *testing.T) {
	stars := loadDB(t).FixedStarList()
	require.Len(t, stars, 1)
	assert.Equal(t, "Regulus", stars[0].Name)
	assert.InDelta(t, 149.8, stars[0].Longitude(), 1e-9)
}
