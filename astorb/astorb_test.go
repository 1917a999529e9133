package astorb_test

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"astrochart/astorb"
	"astrochart/chart"
	"astrochart/orbit"
)

// synthLine builds a minimal fixed-width astorb record with the fields
// the parser reads placed in their catalog columns.
func synthLine(num int, name string, ecc, a, epoch, m, argPeri, node, incl float64) string {
	b := []byte(fmt.Sprintf("%200s", ""))
	put := func(lo, hi int, s string) {
		copy(b[lo:hi], fmt.Sprintf("%*s", hi-lo, s))
	}
	put(0, 6, fmt.Sprintf("%d", num))
	copy(b[7:25], name)
	put(70, 79, fmt.Sprintf("%.6f", ecc))
	put(92, 103, fmt.Sprintf("%.6f", a))
	put(106, 115, fmt.Sprintf("%.0f", epoch))
	put(115, 125, fmt.Sprintf("%.4f", m))
	put(125, 135, fmt.Sprintf("%.4f", argPeri))
	put(135, 145, fmt.Sprintf("%.4f", node))
	put(145, 155, fmt.Sprintf("%.4f", incl))
	return string(b)
}

func writeCatalog(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "astorb.dat")
	data := ""
	for _, l := range lines {
		data += l + "\n"
	}
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))
	return path
}

func TestParseEntry(t *testing.T) {
	line := synthLine(1, "Ceres", 0.078, 2.767, 20200531, 162.6866, 73.738, 80.308, 10.588)
	e, err := astorb.ParseEntry(line)
	require.NoError(t, err)
	assert.Equal(t, 1, e.Number)
	assert.Equal(t, "Ceres", e.Name)
	assert.InDelta(t, 0.078, e.Elements.Eccentricity, 1e-9)
	assert.InDelta(t, 2.767, e.Elements.SemiMajorAxis, 1e-9)
	assert.InDelta(t, 162.6866, e.Elements.MeanAnomaly, 1e-9)
	assert.InDelta(t, 73.738, e.Elements.ArgPerihelion, 1e-9)
	assert.InDelta(t, 80.308, e.Elements.Node, 1e-9)
	assert.InDelta(t, 10.588, e.Elements.Inclination, 1e-9)
	// Packed 2020-05-31 resolves to its Julian date.
	assert.InDelta(t, 2459000.5, e.Elements.EpochJD, 1e-6)
}

func TestParseEntryEpochPassthrough(t *testing.T) {
	// An epoch already given as a JD is used as-is.
	line := synthLine(42, "Test", 0.1, 2.5, 2451545, 0, 0, 0, 0)
	e, err := astorb.ParseEntry(line)
	require.NoError(t, err)
	assert.InDelta(t, 2451545, e.Elements.EpochJD, 1e-9)
}

func TestParseEntryShortLine(t *testing.T) {
	_, err := astorb.ParseEntry("     1 Ceres")
	assert.Error(t, err)
}

func TestFind(t *testing.T) {
	path := writeCatalog(t,
		synthLine(1, "Ceres", 0.078, 2.767, 2451545, 10, 20, 30, 10.5),
		synthLine(2, "Pallas", 0.230, 2.770, 2451545, 40, 50, 60, 34.8),
		synthLine(433, "Eros", 0.223, 1.458, 2451545, 70, 80, 90, 10.8),
	)
	cat := astorb.New(path)

	e, err := cat.Find(433)
	require.NoError(t, err)
	assert.Equal(t, "Eros", e.Name)
	assert.InDelta(t, 1.458, e.Elements.SemiMajorAxis, 1e-9)

	_, err = cat.Find(99999)
	assert.ErrorIs(t, err, astorb.ErrNotFound)
}

func TestFindMissingFile(t *testing.T) {
	cat := astorb.New(filepath.Join(t.TempDir(), "nope.dat"))
	_, err := cat.Find(1)
	assert.ErrorIs(t, err, astorb.ErrNotFound)
}

func TestSearch(t *testing.T) {
	path := writeCatalog(t,
		synthLine(1, "Ceres", 0.078, 2.767, 2451545, 10, 20, 30, 10.5),
		synthLine(2, "Pallas", 0.230, 2.770, 2451545, 40, 50, 60, 34.8),
		synthLine(1221, "Amor", 0.435, 1.919, 2451545, 70, 80, 90, 11.9),
	)
	cat := astorb.New(path)

	got, err := cat.Search("pal", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 2, got[0].Number)

	got, err = cat.Search("a", 2)
	require.NoError(t, err)
	assert.Len(t, got, 2) // limit respected

	got, err = cat.Search("zzz", 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMajorAsteroids(t *testing.T) {
	// Circular zero-inclination orbits with the query date as epoch:
	// the longitude is just M + argPeri + node.
	path := writeCatalog(t,
		synthLine(1, "Ceres", 0, 2.767, 2451545, 10, 20, 30, 0),
		synthLine(4, "Vesta", 0, 2.362, 2451545, 40, 50, 60, 0),
	)
	got, err := astorb.New(path).MajorAsteroids(2451545)
	require.NoError(t, err)
	require.Len(t, got, 2) // the other four are absent and skipped
	assert.Equal(t, "Ceres", got[0].Name)
	assert.InDelta(t, 60, got[0].Longitude, 1e-6)
	assert.Equal(t, "Vesta", got[1].Name)
	assert.InDelta(t, 150, got[1].Longitude, 1e-6)
}

func TestChiron(t *testing.T) {
	path := writeCatalog(t,
		synthLine(2060, "Chiron", 0, 13.7, 2451545, 105, 50, 30, 0), // longitude 185
	)
	a, err := astorb.New(path).Chiron(2451545)
	require.NoError(t, err)
	assert.Equal(t, 2060, a.Number)
	assert.Equal(t, "Chiron", a.Name)
	assert.InDelta(t, 185, a.Longitude, 1e-6)
	assert.Equal(t, "Libra", a.Sign.String())
	assert.InDelta(t, 5, a.SignDeg, 1e-6)
}

func TestChironAbsent(t *testing.T) {
	path := writeCatalog(t,
		synthLine(1, "Ceres", 0.078, 2.767, 2451545, 10, 20, 30, 10.5),
	)
	_, err := astorb.New(path).Chiron(2451545)
	assert.ErrorIs(t, err, astorb.ErrNotFound)
}

func TestThematicScan(t *testing.T) {
	path := writeCatalog(t,
		synthLine(433, "Eros", 0, 1.458, 2451545, 10, 20, 30, 0), // longitude 60
		synthLine(1221, "Amor", 0, 1.919, 2451545, 100, 0, 0, 0), // longitude 100
	)
	cat := astorb.New(path)

	natal := chart.New([]chart.Position{
		chart.NewPosition(chart.Sun, 58, 1),    // 2 degrees from Eros
		chart.NewPosition(chart.Moon, 200, 13), // out of orb for both
	}, nil)

	hits, err := cat.ThematicScan("love_and_romance", 2451545, natal)
	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "Eros", hits[0].Asteroid.Name)
	assert.Equal(t, chart.Sun, hits[0].Natal)
	assert.InDelta(t, 2, hits[0].Orb, 1e-6)

	hits, err = cat.ThematicScan("no_such_theme", 2451545, natal)
	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestThematicScanPropagationError(t *testing.T) {
	// A near-parabolic orbit with a tiny mean anomaly defeats the Kepler
	// iteration; the scan reports the failure instead of hiding it.
	path := writeCatalog(t,
		synthLine(433, "Eros", 0.999, 1.458, 2451545, 0.2865, 20, 30, 0),
	)
	natal := chart.New([]chart.Position{
		chart.NewPosition(chart.Sun, 58, 1),
	}, nil)

	hits, err := astorb.New(path).ThematicScan("love_and_romance", 2451545, natal)
	assert.ErrorIs(t, err, orbit.ErrNoConvergence)
	assert.Empty(t, hits)
}

func TestScanSkipsNoise(t *testing.T) {
	path := writeCatalog(t,
		"header noise",
		synthLine(4, "Vesta", 0.089, 2.362, 2451545, 10, 20, 30, 7.1),
	)
	e, err := astorb.New(path).Find(4)
	require.NoError(t, err)
	assert.Equal(t, "Vesta", e.Name)
}
