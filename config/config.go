package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"weather-cli/internal/weather"
)

// Config holds the settings for one invocation. Precedence is
// flag > environment > default; there is no config file.
type Config struct {
	APIKey       string        `mapstructure:"api_key"`
	Units        string        `mapstructure:"units"`
	BaseURL      string        `mapstructure:"base_url"`
	Timeout      time.Duration `mapstructure:"timeout"`
	ForecastDays int           `mapstructure:"forecast_days"`
}

// Load resolves settings from the given flag set, the environment
// (OPENWEATHER_API_KEY, including via an optional .env file), and
// defaults. Loading has no side effects beyond reading; callers decide
// what to report about demo mode.
func Load(flags *pflag.FlagSet) (*Config, error) {
	// .env is optional; a missing file is not an error.
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("units", string(weather.Metric))
	v.SetDefault("base_url", weather.DefaultBaseURL)
	v.SetDefault("timeout", "10s")
	v.SetDefault("forecast_days", 5)

	v.BindEnv("api_key", "OPENWEATHER_API_KEY")
	v.BindEnv("base_url", "OPENWEATHER_BASE_URL")

	if flags != nil {
		if f := flags.Lookup("api-key"); f != nil {
			v.BindPFlag("api_key", f)
		}
		if f := flags.Lookup("units"); f != nil {
			v.BindPFlag("units", f)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to resolve settings: %w", err)
	}

	if cfg.Units != string(weather.Metric) && cfg.Units != string(weather.Imperial) {
		return nil, fmt.Errorf("invalid units %q: must be %q or %q", cfg.Units, weather.Metric, weather.Imperial)
	}
	return &cfg, nil
}

// Demo reports whether the tool runs without a credential, serving
// fixed sample data instead of live requests.
func (c *Config) Demo() bool {
	return c.APIKey == ""
}
