package chart_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrochart/chart"
)

func TestLunarPhase(t *testing.T) {
	cases := []struct {
		sun, moon float64
		want      chart.LunarPhase
	}{
		{0, 0, chart.NewMoon},
		{0, 44.9, chart.NewMoon},
		{0, 45, chart.CrescentMoon},
		{0, 90, chart.FirstQuarter},
		{0, 135, chart.GibbousMoon},
		{0, 180, chart.FullMoon},
		{0, 225, chart.Disseminating},
		{0, 270, chart.LastQuarter},
		{0, 315, chart.BalsamicMoon},
		{350, 10, chart.NewMoon}, // wraps through 0
	}
	for _, c := range cases {
		ch := chartAt(map[chart.Body]float64{chart.Sun: c.sun, chart.Moon: c.moon})
		phase, angle, ok := ch.LunarPhase()
		require.True(t, ok)
		assert.Equal(t, c.want, phase, "sun %v moon %v", c.sun, c.moon)
		assert.GreaterOrEqual(t, angle, 0.0)
		assert.Less(t, angle, 360.0)
	}
}

func TestLunarPhaseMissingLuminary(t *testing.T) {
	ch := chartAt(map[chart.Body]float64{chart.Sun: 0})
	_, _, ok := ch.LunarPhase()
	assert.False(t, ok)
}

func TestPlanetaryHour(t *testing.T) {
	// 2026-08-30 is a Sunday; the first hour belongs to the Sun and the
	// sequence then follows the Chaldean order.
	sunday := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, chart.Sun, chart.PlanetaryHour(sunday))
	assert.Equal(t, chart.Venus, chart.PlanetaryHour(sunday.Add(time.Hour)))
	assert.Equal(t, chart.Mercury, chart.PlanetaryHour(sunday.Add(2*time.Hour)))
	assert.Equal(t, chart.Moon, chart.PlanetaryHour(sunday.Add(3*time.Hour)))
	assert.Equal(t, chart.Saturn, chart.PlanetaryHour(sunday.Add(4*time.Hour)))

	// Saturday starts with Saturn.
	saturday := time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, chart.Saturn, chart.PlanetaryHour(saturday))

	// The cycle repeats every seven hours.
	assert.Equal(t, chart.Sun, chart.PlanetaryHour(sunday.Add(7*time.Hour)))
}
