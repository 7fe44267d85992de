package config_test

import (
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"

	"weather-cli/config"
	"weather-cli/internal/weather"
)

func testFlags() *pflag.FlagSet {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.StringP("api-key", "k", "", "")
	flags.StringP("units", "u", "metric", "")
	return flags
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "")
	t.Setenv("OPENWEATHER_BASE_URL", "")

	cfg, err := config.Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Units != string(weather.Metric) {
		t.Errorf("expected metric default, got %q", cfg.Units)
	}
	if cfg.BaseURL != weather.DefaultBaseURL {
		t.Errorf("unexpected base URL %q", cfg.BaseURL)
	}
	if cfg.Timeout != 10*time.Second {
		t.Errorf("expected 10s timeout, got %s", cfg.Timeout)
	}
	if cfg.ForecastDays != 5 {
		t.Errorf("expected 5 forecast days, got %d", cfg.ForecastDays)
	}
	if !cfg.Demo() {
		t.Error("expected demo mode without a key")
	}
}

func TestLoadKeyFromEnv(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")

	cfg, err := config.Load(testFlags())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "env-key" {
		t.Errorf("expected key from environment, got %q", cfg.APIKey)
	}
	if cfg.Demo() {
		t.Error("expected live mode with a key")
	}
}

func TestLoadFlagOverridesEnv(t *testing.T) {
	t.Setenv("OPENWEATHER_API_KEY", "env-key")

	flags := testFlags()
	if err := flags.Set("api-key", "flag-key"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.APIKey != "flag-key" {
		t.Errorf("expected flag to win over environment, got %q", cfg.APIKey)
	}
}

func TestLoadUnitsFromFlag(t *testing.T) {
	flags := testFlags()
	if err := flags.Set("units", "imperial"); err != nil {
		t.Fatal(err)
	}

	cfg, err := config.Load(flags)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Units != string(weather.Imperial) {
		t.Errorf("expected imperial units, got %q", cfg.Units)
	}
}

func TestLoadRejectsInvalidUnits(t *testing.T) {
	flags := testFlags()
	if err := flags.Set("units", "kelvin"); err != nil {
		t.Fatal(err)
	}

	if _, err := config.Load(flags); err == nil {
		t.Fatal("expected error for invalid units")
	} else if !strings.Contains(err.Error(), "kelvin") {
		t.Errorf("expected rejected value in error, got %q", err)
	}
}
