// Package cli implements the astrochart command line interface.
package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"astrochart/astorb"
	"astrochart/ephem"
	"astrochart/reading"
)

var (
	cfg Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "astrochart",
	Short: "Astrological chart calculator",
	Long: `Astrochart computes natal charts, daily horoscopes, transits,
solar returns, progressions, relocations, synastry, and asteroid
placements from VSOP87 ephemeris data and the Lowell astorb catalog.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default .astrochart.yaml)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().Float64("lat", 0, "latitude in degrees, north positive")
	rootCmd.PersistentFlags().Float64("lon", 0, "longitude in degrees, east positive")
	rootCmd.PersistentFlags().String("location", "", "place name to geocode instead of --lat/--lon")
	rootCmd.PersistentFlags().String("tz", "", "IANA time zone for input times")

	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("latitude", rootCmd.PersistentFlags().Lookup("lat"))
	_ = viper.BindPFlag("longitude", rootCmd.PersistentFlags().Lookup("lon"))
	_ = viper.BindPFlag("timezone", rootCmd.PersistentFlags().Lookup("tz"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.Flags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".astrochart")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("ASTROCHART")
	viper.AutomaticEnv()

	// A missing config file is fine; defaults apply.
	_ = viper.ReadInConfig()

	cfg = loadConfig()

	level := zerolog.WarnLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(level).With().Timestamp().Logger()
}

// provider loads the VSOP87 ephemeris configured for this run.
func provider() (*ephem.Provider, error) {
	log.Debug().Str("dir", cfg.EphemerisDir).Msg("loading ephemeris")
	p, err := ephem.NewProvider(cfg.EphemerisDir)
	if err != nil {
		return nil, fmt.Errorf("ephemeris data not found in %s: %w", cfg.EphemerisDir, err)
	}
	return p, nil
}

// catalog opens the asteroid catalog configured for this run.
func catalog() *astorb.Catalog {
	return astorb.New(cfg.AstorbPath)
}

// generator loads the content database, falling back to the built-in
// minimum when the file is absent.
func generator() *reading.Generator {
	db, err := reading.Load(cfg.DatabasePath)
	if err != nil {
		log.Debug().Err(err).Msg("content database unavailable, using fallback")
		db = reading.Default()
	}
	return reading.NewGenerator(db, cfg.Seed)
}

// site resolves the observation site from --location or --lat/--lon.
func site() (lat, lon float64, err error) {
	if name, _ := rootCmd.Flags().GetString("location"); name != "" {
		place, err := Geocode(name)
		if err != nil {
			return 0, 0, err
		}
		log.Debug().Str("place", place.DisplayName).
			Float64("lat", place.Lat).Float64("lon", place.Lon).Msg("geocoded")
		return place.Lat, place.Lon, nil
	}
	return cfg.Latitude, cfg.Longitude, nil
}

// parseTime interprets a "2006-01-02 15:04" string in the configured
// time zone.
func parseTime(s string) (time.Time, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return time.Time{}, fmt.Errorf("unknown time zone %q: %w", cfg.Timezone, err)
	}
	t, err := time.ParseInLocation("2006-01-02 15:04", s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("time must be given as \"2006-01-02 15:04\": %w", err)
	}
	return t, nil
}
