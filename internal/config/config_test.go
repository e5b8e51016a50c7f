package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evanhutnik/cloudvibes-service/internal/openmeteo"
	"github.com/evanhutnik/cloudvibes-service/internal/openweather"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

var keys = []string{
	"openweather_apikey", "openweather_baseurl", "openweather_geourl", "openweather_rps",
	"openweather_burst", "openmeteo_baseurl", "redis_address", "disable_redis", "http_addr", "log_level",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoadFromEnv_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "", cfg.OpenWeatherApiKey)
	assert.False(t, cfg.PrimaryConfigured())
	assert.Equal(t, openweather.DefaultBaseUrl, cfg.OpenWeatherBaseUrl)
	assert.Equal(t, openweather.DefaultGeoUrl, cfg.OpenWeatherGeoUrl)
	assert.Equal(t, 1.0, cfg.OpenWeatherRPS)
	assert.Equal(t, 5, cfg.OpenWeatherBurst)
	assert.Equal(t, openmeteo.DefaultBaseUrl, cfg.OpenMeteoBaseUrl)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress)
	assert.False(t, cfg.DisableRedis)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, zapcore.InfoLevel, cfg.LogLevel)
}

func TestLoadFromEnv_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("openweather_apikey", "  abc123 ")
	t.Setenv("openweather_rps", "0.5")
	t.Setenv("openweather_burst", "2")
	t.Setenv("disable_redis", "true")
	t.Setenv("http_addr", ":9000")
	t.Setenv("log_level", "WARN")

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "abc123", cfg.OpenWeatherApiKey)
	assert.True(t, cfg.PrimaryConfigured())
	assert.Equal(t, 0.5, cfg.OpenWeatherRPS)
	assert.Equal(t, 2, cfg.OpenWeatherBurst)
	assert.True(t, cfg.DisableRedis)
	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
}

func TestLoadFromEnv_Placeholder(t *testing.T) {
	clearEnv(t)
	t.Setenv("openweather_apikey", openweather.PlaceholderKey)

	cfg, err := LoadFromEnv()
	require.NoError(t, err)
	assert.False(t, cfg.PrimaryConfigured())
}

func TestLoadFromEnv_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"openweather_rps", "fast"},
		{"openweather_rps", "0"},
		{"openweather_burst", "0"},
		{"openweather_burst", "x"},
		{"disable_redis", "sometimes"},
		{"log_level", "verbose"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(tt.key, tt.value)
			_, err := LoadFromEnv()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already set
	require.NoError(t, os.Unsetenv("openweather_apikey"))
	require.NoError(t, os.Unsetenv("http_addr"))
	t.Cleanup(func() {
		_ = os.Unsetenv("openweather_apikey")
		_ = os.Unsetenv("http_addr")
	})

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("openweather_apikey=fromfile\nhttp_addr=:7000\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "fromfile", cfg.OpenWeatherApiKey)
	assert.Equal(t, ":7000", cfg.HTTPAddr)
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	clearEnv(t)

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.NoError(t, err)
}
