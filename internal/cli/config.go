package cli

import "github.com/spf13/viper"

// Config holds runtime configuration.  Values come from
// .astrochart.yaml, ASTROCHART_* env vars, and flags.
type Config struct {
	EphemerisDir string  `mapstructure:"ephemeris_dir"`
	AstorbPath   string  `mapstructure:"astorb_path"`
	DatabasePath string  `mapstructure:"database_path"`
	Latitude     float64 `mapstructure:"latitude"`
	Longitude    float64 `mapstructure:"longitude"`
	Timezone     string  `mapstructure:"timezone"`
	Seed         uint64  `mapstructure:"seed"`
	Verbose      bool    `mapstructure:"verbose"`
}

// loadConfig reads configuration from viper, applying defaults for
// anything not set by file, environment, or flags.
func loadConfig() Config {
	viper.SetDefault("ephemeris_dir", "ephe")
	viper.SetDefault("astorb_path", "ephe/astorb.dat")
	viper.SetDefault("database_path", "horoscope_database.json")
	viper.SetDefault("latitude", 0.0)
	viper.SetDefault("longitude", 0.0)
	viper.SetDefault("timezone", "UTC")
	viper.SetDefault("seed", 0)
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
