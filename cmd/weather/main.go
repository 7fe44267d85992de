package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"weather-cli/config"
	"weather-cli/internal/render"
	"weather-cli/internal/weather"

	"github.com/spf13/cobra"
)

var (
	forecast bool
	units    string
	apiKey   string
	verbose  bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err := newRootCmd().ExecuteContext(ctx)
	if ctx.Err() != nil || errors.Is(err, context.Canceled) {
		fmt.Println("\n👋 Goodbye!")
		os.Exit(0)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "❌ Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "weather <city>",
		Short: "Get weather information from the command line",
		Long: "Fetch current conditions or a 5-day forecast for a city from OpenWeatherMap.\n" +
			"Without an API key the tool runs in demo mode with sample data.",
		Example: `  weather London
  weather "New York" --forecast
  weather Tokyo --units imperial
  weather Paris --api-key YOUR_API_KEY`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	cmd.Flags().BoolVarP(&forecast, "forecast", "f", false, "show 5-day forecast instead of current weather")
	cmd.Flags().StringVarP(&units, "units", "u", "metric", "temperature units (metric or imperial)")
	cmd.Flags().StringVarP(&apiKey, "api-key", "k", "", "OpenWeatherMap API key")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	city := strings.Join(args, " ")

	cfg, err := config.Load(cmd.Flags())
	if err != nil {
		return err
	}

	if cfg.Demo() {
		fmt.Fprintln(os.Stderr, "⚠️  Warning: No API key provided. Using demo mode with sample data.")
		fmt.Fprintln(os.Stderr, "   Get a free key at https://openweathermap.org/api and set")
		fmt.Fprintln(os.Stderr, "   OPENWEATHER_API_KEY or pass --api-key.")
	}

	u := weather.Units(cfg.Units)
	provider := weather.NewProvider(cfg.APIKey, cfg.BaseURL, u, cfg.Timeout)

	if verbose {
		log.Printf("Fetching weather for %q (units=%s, forecast=%v, demo=%v)", city, u, forecast, cfg.Demo())
	}

	var output string
	if forecast {
		fc, err := provider.FetchForecast(cmd.Context(), city, cfg.ForecastDays)
		if cmd.Context().Err() != nil {
			return context.Canceled
		}
		output = render.FormatForecast(fc, err, u)
	} else {
		obs, err := provider.FetchCurrent(cmd.Context(), city)
		if cmd.Context().Err() != nil {
			return context.Canceled
		}
		output = render.FormatCurrent(obs, err, u)
	}

	fmt.Println(output)
	return nil
}
