package weather

import (
	"context"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// DemoProvider returns fixed sample data so the tool still works when
// no API key is configured. Output is deterministic: the same inputs
// always yield identical records, tagged with the Demo flag.
type DemoProvider struct{}

func NewDemoProvider() *DemoProvider {
	return &DemoProvider{}
}

var demoBase = time.Date(2024, time.September, 22, 0, 0, 0, 0, time.UTC)

var demoDays = []struct {
	condition   string
	description string
	temp        float64
	humidity    int
}{
	{"Sunny", "sunny", 25.0, 60},
	{"Clouds", "partly cloudy", 23.0, 70},
	{"Rain", "light rain", 19.5, 82},
	{"Clear", "clear sky", 24.0, 55},
	{"Clouds", "scattered clouds", 21.5, 68},
}

func (p *DemoProvider) FetchCurrent(ctx context.Context, city string) (*Observation, error) {
	return &Observation{
		City:        titleCase(city),
		Country:     "DEMO",
		Temperature: 22.5,
		FeelsLike:   24.1,
		Humidity:    65,
		Pressure:    1013,
		Condition:   "Clear",
		Description: "clear sky",
		WindSpeed:   3.2,
		WindDeg:     180,
		Visibility:  10000,
		Demo:        true,
	}, nil
}

// FetchForecast synthesizes days*8 slots at a 3-hour cadence from a
// fixed base date, cycling a small condition table per day.
func (p *DemoProvider) FetchForecast(ctx context.Context, city string, days int) (*Forecast, error) {
	if days <= 0 {
		days = 5
	}
	fc := &Forecast{
		City:    titleCase(city),
		Country: "DEMO",
		Demo:    true,
	}
	for i := 0; i < days*slotsPerDay; i++ {
		day := demoDays[(i/slotsPerDay)%len(demoDays)]
		fc.Entries = append(fc.Entries, ForecastEntry{
			Timestamp:   demoBase.Add(time.Duration(i) * 3 * time.Hour),
			Temperature: day.temp,
			Humidity:    day.humidity,
			Condition:   day.condition,
			Description: day.description,
		})
	}
	return fc, nil
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
