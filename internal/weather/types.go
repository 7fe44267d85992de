package weather

import (
	"context"
	"time"
)

// Provider produces weather data for a named city. Implementations
// return errors as values; nothing panics across this boundary.
type Provider interface {
	FetchCurrent(ctx context.Context, city string) (*Observation, error)
	FetchForecast(ctx context.Context, city string, days int) (*Forecast, error)
}

// Units selects the unit system requested from the provider. It only
// decides which labels appear next to values; the numbers themselves
// are whatever the provider returned for the requested system.
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// TempUnit returns the temperature suffix for the unit system.
func (u Units) TempUnit() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// SpeedUnit returns the wind speed suffix for the unit system.
func (u Units) SpeedUnit() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}

// Observation is a single current-conditions record for a city.
// Optional provider fields (country, wind direction, visibility) are
// resolved to zero values during parsing; the renderer substitutes
// placeholders. Records are not mutated after construction.
type Observation struct {
	City        string  `json:"city"`
	Country     string  `json:"country,omitempty"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Pressure    int     `json:"pressure"` // hPa
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	WindSpeed   float64 `json:"wind_speed"`
	WindDeg     int     `json:"wind_deg,omitempty"`
	Visibility  int     `json:"visibility,omitempty"` // meters, 0 when not reported
	Demo        bool    `json:"demo,omitempty"`
}

// ForecastEntry is one 3-hour forecast slot.
type ForecastEntry struct {
	Timestamp   time.Time `json:"timestamp"`
	Temperature float64   `json:"temperature"`
	Humidity    int       `json:"humidity"`
	Condition   string    `json:"condition"`
	Description string    `json:"description"`
}

// Forecast is an ordered multi-day forecast for a city. Entries are
// chronological, 8 slots per day in the live case.
type Forecast struct {
	City    string          `json:"city"`
	Country string          `json:"country,omitempty"`
	Entries []ForecastEntry `json:"entries"`
	Demo    bool            `json:"demo,omitempty"`
}

// NewProvider selects the live OpenWeatherMap client when an API key
// is configured and the canned demo provider otherwise. A live-mode
// failure is reported as is, never masked with demo data.
func NewProvider(apiKey, baseURL string, units Units, timeout time.Duration) Provider {
	if apiKey == "" {
		return NewDemoProvider()
	}
	return NewOpenWeatherClient(apiKey, baseURL, units, timeout)
}
