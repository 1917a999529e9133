package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrochart/chart"
)

func chartAt(lons map[chart.Body]float64) *chart.Chart {
	var ps []chart.Position
	for _, b := range chart.Planets {
		if lon, ok := lons[b]; ok {
			ps = append(ps, chart.NewPosition(b, lon, 1))
		}
	}
	return chart.New(ps, nil)
}

func TestAspectClassification(t *testing.T) {
	cases := []struct {
		name   string
		a, b   float64
		want   chart.AspectType
		wantOK bool
	}{
		{"trine", 10, 130, chart.Trine, true},
		{"opposition within orb", 10, 191, chart.Opposition, true},
		{"no aspect at 9 degrees", 10, 19, "", false},
		{"conjunction", 100, 104, chart.Conjunction, true},
		{"square", 5, 98, chart.Square, true},
		{"sextile at 6 orb edge", 0, 66, chart.Sextile, true},
		{"sextile just outside orb", 0, 66.5, "", false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ch := chartAt(map[chart.Body]float64{chart.Sun: c.a, chart.Moon: c.b})
			got := ch.Aspects()
			if !c.wantOK {
				assert.Empty(t, got)
				return
			}
			require.Len(t, got, 1)
			assert.Equal(t, c.want, got[0].Type)
			assert.Equal(t, chart.Sun, got[0].A)
			assert.Equal(t, chart.Moon, got[0].B)
		})
	}
}

// A pair classifies as at most one aspect even at separations where two
// orbs could mathematically overlap; the table order decides.
func TestAspectFirstMatchWins(t *testing.T) {
	ch := chartAt(map[chart.Body]float64{chart.Sun: 0, chart.Moon: 172.5})
	got := ch.Aspects()
	require.Len(t, got, 1)
	assert.Equal(t, chart.Opposition, got[0].Type)
}

func TestAspectsDegenerateInput(t *testing.T) {
	assert.Empty(t, chartAt(nil).Aspects())
	assert.Empty(t, chartAt(map[chart.Body]float64{chart.Sun: 10}).Aspects())
}

func TestAspectOrb(t *testing.T) {
	ch := chartAt(map[chart.Body]float64{chart.Sun: 10, chart.Moon: 127})
	got := ch.Aspects()
	require.Len(t, got, 1)
	assert.InDelta(t, 117, got[0].Angle, 1e-12)
	assert.InDelta(t, 3, got[0].Orb, 1e-12)
}
