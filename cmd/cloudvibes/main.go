package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/evanhutnik/cloudvibes-service/internal/config"
	"github.com/evanhutnik/cloudvibes-service/internal/locale"
	"github.com/evanhutnik/cloudvibes-service/internal/service"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	var envFile string
	root := &cobra.Command{
		Use:           "cloudvibes",
		Short:         "Current weather and forecasts from OpenWeatherMap with an Open-Meteo fallback",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded before reading the environment")

	setup := func() (config.Config, *zap.SugaredLogger, error) {
		cfg, err := config.Load(envFile)
		if err != nil {
			return cfg, nil, err
		}
		logger, err := newLogger(cfg)
		if err != nil {
			return cfg, nil, err
		}
		return cfg, logger, nil
	}

	root.AddCommand(newServeCommand(setup), newWeatherCommand(setup), newSearchCommand(setup))
	return root
}

type setupFunc func() (config.Config, *zap.SugaredLogger, error)

func newServeCommand(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			if !cfg.PrimaryConfigured() {
				logger.Warn("openweather_apikey not set, using Open-Meteo only and city lookup is disabled")
			}
			return service.FromConfig(cfg, logger).Start(cmd.Context(), cfg.HTTPAddr)
		},
	}
}

func newWeatherCommand(setup setupFunc) *cobra.Command {
	var lat, lon float64
	var city string

	cmd := &cobra.Command{
		Use:   "weather",
		Short: "Print current weather for coordinates or a city as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			latSet, lonSet := cmd.Flags().Changed("lat"), cmd.Flags().Changed("lon")
			if city == "" && !(latSet && lonSet) {
				return errors.New("either --city or both --lat and --lon are required")
			}

			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			wc := service.NewWeatherClient(cfg, logger)
			if city != "" {
				return printJSON(cmd, wc.GetCurrentWeatherByCity(cmd.Context(), city))
			}
			resp := wc.GetCurrentWeatherByCoordinates(cmd.Context(), lat, lon)
			if resp.Success {
				info := locale.FromCoordinates(wc.Directory(), lat, lon, resp.Data.Location.Timezone)
				unit := info.TemperatureUnit()
				logger.Infow("current conditions",
					"temperature", locale.FormatTemperature(resp.Data.Current.Temperature, unit),
					"wind", locale.FormatWindSpeed(resp.Data.Current.WindSpeed, windUnit(unit)),
					"direction", locale.WindDirection(resp.Data.Current.WindDirection),
					"uv", locale.UVLevel(resp.Data.Current.UVIndex))
			}
			return printJSON(cmd, resp)
		},
	}
	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude")
	cmd.Flags().StringVar(&city, "city", "", "city name (requires openweather_apikey)")
	return cmd
}

func newSearchCommand(setup setupFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search known and remote locations",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			wc := service.NewWeatherClient(cfg, logger)
			return printJSON(cmd, wc.SearchLocations(cmd.Context(), args[0]))
		},
	}
}

func windUnit(u locale.TemperatureUnit) locale.WindUnit {
	if u == locale.Fahrenheit {
		return locale.Mph
	}
	return locale.Kmh
}

func newLogger(cfg config.Config) (*zap.SugaredLogger, error) {
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "error building logger")
	}
	return logger.Sugar(), nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
