package weather_test

import (
	"context"
	"reflect"
	"testing"
	"time"

	"weather-cli/internal/weather"
)

func TestDemoFetchCurrentDeterministic(t *testing.T) {
	p := weather.NewDemoProvider()
	ctx := context.Background()

	first, err := p.FetchCurrent(ctx, "paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.FetchCurrent(ctx, "paris")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("expected identical records, got %+v and %+v", first, second)
	}
	if !first.Demo {
		t.Error("expected demo provenance flag")
	}
	if first.City != "Paris" {
		t.Errorf("expected title-cased city, got %q", first.City)
	}
	if first.Temperature != 22.5 || first.Humidity != 65 {
		t.Errorf("unexpected sample values: %+v", first)
	}
}

func TestDemoFetchForecast(t *testing.T) {
	p := weather.NewDemoProvider()
	ctx := context.Background()

	first, err := p.FetchForecast(ctx, "new york", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := p.FetchForecast(ctx, "new york", 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Error("expected identical forecasts across calls")
	}
	if !first.Demo {
		t.Error("expected demo provenance flag")
	}
	if first.City != "New York" {
		t.Errorf("expected title-cased city, got %q", first.City)
	}
	if len(first.Entries) != 40 {
		t.Fatalf("expected 40 entries for 5 days, got %d", len(first.Entries))
	}

	if step := first.Entries[1].Timestamp.Sub(first.Entries[0].Timestamp); step != 3*time.Hour {
		t.Errorf("expected 3-hour cadence, got %s", step)
	}
	// Every day carries a noon slot for the representative selection.
	for day := 0; day < 5; day++ {
		noon := first.Entries[day*8+4].Timestamp
		if noon.Hour() != 12 {
			t.Errorf("day %d: expected noon slot, got %s", day, noon)
		}
	}
}

func TestNewProviderSelection(t *testing.T) {
	if _, ok := weather.NewProvider("", "", weather.Metric, 0).(*weather.DemoProvider); !ok {
		t.Error("expected demo provider without an API key")
	}
	if _, ok := weather.NewProvider("some-key", "", weather.Metric, 0).(*weather.OpenWeatherClient); !ok {
		t.Error("expected live client with an API key")
	}
}
