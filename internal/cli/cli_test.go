package cli

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	viper.Reset()
	c := loadConfig()
	assert.Equal(t, "ephe", c.EphemerisDir)
	assert.Equal(t, "ephe/astorb.dat", c.AstorbPath)
	assert.Equal(t, "horoscope_database.json", c.DatabasePath)
	assert.Equal(t, "UTC", c.Timezone)
	assert.Zero(t, c.Seed)
}

func TestParseTime(t *testing.T) {
	cfg.Timezone = "UTC"
	ts, err := parseTime("1990-06-15 08:30")
	require.NoError(t, err)
	assert.Equal(t, 1990, ts.Year())
	assert.Equal(t, 8, ts.Hour())

	_, err = parseTime("not a time")
	assert.Error(t, err)

	cfg.Timezone = "No/Such_Zone"
	_, err = parseTime("1990-06-15 08:30")
	assert.Error(t, err)
	cfg.Timezone = "UTC"
}

func TestGeocode(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		w.Write([]byte(`[{"display_name":"London, UK","lat":"51.5072","lon":"-0.1276"}]`))
	}))
	defer srv.Close()

	old := nominatimURL
	nominatimURL = srv.URL
	defer func() { nominatimURL = old }()

	place, err := Geocode("London")
	require.NoError(t, err)
	assert.Equal(t, "London, UK", place.DisplayName)
	assert.InDelta(t, 51.5072, place.Lat, 1e-9)
	assert.InDelta(t, -0.1276, place.Lon, 1e-9)
}

func TestGeocodeNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	old := nominatimURL
	nominatimURL = srv.URL
	defer func() { nominatimURL = old }()

	_, err := Geocode("Atlantis")
	assert.ErrorContains(t, err, "no match")
}

func TestCommandsRegistered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{
		"natal", "daily", "transits", "solar-return",
		"progressed", "relocate", "synastry", "compat", "asteroid",
	} {
		assert.True(t, names[want], want)
	}
}
