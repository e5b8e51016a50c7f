package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/evanhutnik/cloudvibes-service/internal/openmeteo"
	"github.com/evanhutnik/cloudvibes-service/internal/openweather"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

type Config struct {
	OpenWeatherApiKey  string
	OpenWeatherBaseUrl string
	OpenWeatherGeoUrl  string
	// Free tier allows 60 calls a minute.
	OpenWeatherRPS   float64
	OpenWeatherBurst int

	OpenMeteoBaseUrl string

	RedisAddress string
	DisableRedis bool

	HTTPAddr string
	LogLevel zapcore.Level
}

// Load reads .env files into the environment, if they exist, and then the
// environment itself. With no arguments ./.env is tried.
func Load(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil && !os.IsNotExist(errors.Cause(err)) {
		return Config{}, errors.Wrap(err, "error loading .env")
	}
	return LoadFromEnv()
}

func LoadFromEnv() (Config, error) {
	rps, err := parseFloat("openweather_rps", "1")
	if err != nil {
		return Config{}, err
	}
	if rps <= 0 {
		return Config{}, errors.Errorf("invalid openweather_rps %v (must be positive)", rps)
	}

	burstStr := envOr("openweather_burst", "5")
	burst, err := strconv.Atoi(burstStr)
	if err != nil || burst < 1 {
		return Config{}, errors.Errorf("invalid openweather_burst %q (must be a positive integer)", burstStr)
	}

	var disableRedis bool
	if s := env("disable_redis"); s != "" {
		disableRedis, err = strconv.ParseBool(s)
		if err != nil {
			return Config{}, errors.Errorf("invalid disable_redis %q", s)
		}
	}

	level, err := parseLogLevel(envOr("log_level", "info"))
	if err != nil {
		return Config{}, err
	}

	return Config{
		OpenWeatherApiKey:  env("openweather_apikey"),
		OpenWeatherBaseUrl: envOr("openweather_baseurl", openweather.DefaultBaseUrl),
		OpenWeatherGeoUrl:  envOr("openweather_geourl", openweather.DefaultGeoUrl),
		OpenWeatherRPS:     rps,
		OpenWeatherBurst:   burst,
		OpenMeteoBaseUrl:   envOr("openmeteo_baseurl", openmeteo.DefaultBaseUrl),
		RedisAddress:       envOr("redis_address", "localhost:6379"),
		DisableRedis:       disableRedis,
		HTTPAddr:           envOr("http_addr", ":8080"),
		LogLevel:           level,
	}, nil
}

// PrimaryConfigured reports whether the OpenWeatherMap key is usable.
func (c Config) PrimaryConfigured() bool {
	return openweather.Configured(c.OpenWeatherApiKey)
}

func env(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func envOr(key string, def string) string {
	if v := env(key); v != "" {
		return v
	}
	return def
}

func parseFloat(key string, def string) (float64, error) {
	s := envOr(key, def)
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errors.Errorf("invalid %v %q", key, s)
	}
	return v, nil
}

func parseLogLevel(s string) (zapcore.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return zapcore.DebugLevel, nil
	case "info":
		return zapcore.InfoLevel, nil
	case "warn", "warning":
		return zapcore.WarnLevel, nil
	case "error":
		return zapcore.ErrorLevel, nil
	default:
		return zapcore.InfoLevel, errors.Errorf("invalid log_level %q (allowed: debug, info, warn, error)", s)
	}
}
