// Package render turns weather records into terminal output. The unit
// labels come from the requested unit system; numeric values are shown
// as the provider returned them.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"weather-cli/internal/weather"
)

const (
	maxEntries = 40 // bounds grouping to ~5 days of 3-hour slots
	maxDays    = 5
	noonSlot   = "12:00:00"

	placeholder = "N/A"
	demoNotice  = "🔧 DEMO MODE - Using sample data"
)

// report is an ordered list of lines under a titled rule. Keeping the
// structure explicit keeps the formatters testable without pinning
// every punctuation choice in one template string.
type report struct {
	title string
	width int
	lines []string
}

func newReport(title string, width int) *report {
	return &report{title: title, width: width}
}

func (r *report) add(format string, args ...any) {
	r.lines = append(r.lines, fmt.Sprintf(format, args...))
}

func (r *report) String() string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(r.title)
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", r.width))
	b.WriteString("\n")
	for _, line := range r.lines {
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// FormatCurrent renders a current-conditions record. When err is
// non-nil the output is a single error line carrying its message.
func FormatCurrent(obs *weather.Observation, err error, units weather.Units) string {
	if err != nil {
		return errorLine(err)
	}

	r := newReport(fmt.Sprintf("🌤️  Current Weather for %s, %s", obs.City, orPlaceholder(obs.Country)), 50)
	r.add("🌡️  Temperature: %s%s (feels like %s%s)",
		number(obs.Temperature), units.TempUnit(), number(obs.FeelsLike), units.TempUnit())
	r.add("☁️  Condition: %s", titleCase(obs.Description))
	r.add("💧 Humidity: %d%%", obs.Humidity)
	r.add("🔽 Pressure: %d hPa", obs.Pressure)
	r.add("💨 Wind: %s %s", number(obs.WindSpeed), units.SpeedUnit())
	r.add("👁️  Visibility: %s meters", visibility(obs.Visibility))
	if obs.Demo {
		r.add(demoNotice)
	}
	return r.String()
}

// FormatForecast renders one block per calendar day, at most five days,
// each summarized by its representative entry. When err is non-nil the
// output is a single error line carrying its message.
func FormatForecast(fc *weather.Forecast, err error, units weather.Units) string {
	if err != nil {
		return errorLine(err)
	}

	r := newReport(fmt.Sprintf("📅 5-Day Weather Forecast for %s, %s", fc.City, orPlaceholder(fc.Country)), 60)
	if fc.Demo {
		r.add(demoNotice)
	}
	for _, day := range groupByDay(fc.Entries) {
		rep := day.representative()
		r.add("")
		r.add("📆 %s, %s", day.entries[0].Timestamp.Format("Monday"), day.date)
		r.add("   🌡️  %s%s", number(rep.Temperature), units.TempUnit())
		r.add("   ☁️  %s", titleCase(rep.Description))
		r.add("   💧 %d%% humidity", rep.Humidity)
	}
	return r.String()
}

type dayGroup struct {
	date    string // YYYY-MM-DD
	entries []weather.ForecastEntry
}

// groupByDay partitions entries into per-date buckets, preserving the
// order in which each date is first encountered. At most maxEntries
// entries are considered and at most maxDays buckets are returned.
func groupByDay(entries []weather.ForecastEntry) []dayGroup {
	if len(entries) > maxEntries {
		entries = entries[:maxEntries]
	}

	var groups []dayGroup
	index := make(map[string]int)
	for _, e := range entries {
		date := e.Timestamp.Format("2006-01-02")
		i, ok := index[date]
		if !ok {
			i = len(groups)
			index[date] = i
			groups = append(groups, dayGroup{date: date})
		}
		groups[i].entries = append(groups[i].entries, e)
	}

	if len(groups) > maxDays {
		groups = groups[:maxDays]
	}
	return groups
}

// representative picks the first noon entry of the day, falling back
// to the bucket's first entry when no noon slot exists.
func (g dayGroup) representative() weather.ForecastEntry {
	for _, e := range g.entries {
		if e.Timestamp.Format("15:04:05") == noonSlot {
			return e
		}
	}
	return g.entries[0]
}

func errorLine(err error) string {
	return fmt.Sprintf("❌ Error: %v", err)
}

func orPlaceholder(s string) string {
	if s == "" {
		return placeholder
	}
	return s
}

func visibility(meters int) string {
	if meters <= 0 {
		return placeholder
	}
	return strconv.Itoa(meters)
}

// number formats a float without trailing zeros (22.5, not 22.50).
func number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func titleCase(s string) string {
	return cases.Title(language.English).String(s)
}
