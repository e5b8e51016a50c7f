package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/common"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

const (
	// Results are reused for five minutes, matching the consumer's stale time.
	bucketSeconds = 300
	keyTTL        = 10 * time.Minute
	radiusKm      = 10
)

// Lookup is the coordinate lookup being cached.
type Lookup interface {
	GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) types.WeatherResponse
}

type WeatherOption func(*WeatherCache)

// WeatherCache serves a lookup from a redis geo set of recent results. Any
// result within 10 km fetched in the current five minute bucket is a hit.
type WeatherCache struct {
	next     Lookup
	rc       *redis.Client
	disabled bool
	now      func() time.Time

	Logger *zap.SugaredLogger
}

func RedisOption(rc *redis.Client) WeatherOption {
	return func(w *WeatherCache) {
		w.rc = rc
	}
}

func DisabledOption(disabled bool) WeatherOption {
	return func(w *WeatherCache) {
		w.disabled = disabled
	}
}

func ClockOption(now func() time.Time) WeatherOption {
	return func(w *WeatherCache) {
		w.now = now
	}
}

func LoggerOption(l *zap.SugaredLogger) WeatherOption {
	return func(w *WeatherCache) {
		w.Logger = l
	}
}

func NewWeatherCache(next Lookup, opts ...WeatherOption) *WeatherCache {
	w := &WeatherCache{next: next, now: time.Now}
	for _, opt := range opts {
		opt(w)
	}

	if w.next == nil {
		panic("Missing lookup in weather cache")
	}
	if w.rc == nil && !w.disabled {
		panic("Missing redis client in weather cache")
	}
	if w.Logger == nil {
		w.Logger = zap.NewNop().Sugar()
	}
	return w
}

func (w *WeatherCache) GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) types.WeatherResponse {
	if w.disabled {
		return w.next.GetCurrentWeatherByCoordinates(ctx, lat, lon)
	}

	key := bucketKey(w.now())
	if data, ok := w.get(ctx, key, lat, lon); ok {
		return types.WeatherOK(*data)
	}

	resp := w.next.GetCurrentWeatherByCoordinates(ctx, lat, lon)
	if resp.Success && resp.Data != nil {
		w.put(ctx, key, lat, lon, resp.Data)
	}
	return resp
}

func (w *WeatherCache) get(ctx context.Context, key string, lat float64, lon float64) (*types.WeatherData, bool) {
	locations, err := w.rc.GeoRadius(ctx, key, lon, lat, &redis.GeoRadiusQuery{
		Radius:    radiusKm,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     1,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		common.LoggerFrom(ctx, w.Logger).Errorf("Redis error when fetching GeoRadius for (%v, %v): %v", lat, lon, err.Error())
		return nil, false
	}
	if len(locations) == 0 {
		return nil, false
	}

	var data types.WeatherData
	if err = json.Unmarshal([]byte(locations[0].Name), &data); err != nil {
		common.LoggerFrom(ctx, w.Logger).Errorf("Error unmarshalling redis weather for (%v, %v): %v", lat, lon, err.Error())
		return nil, false
	}
	return &data, true
}

func (w *WeatherCache) put(ctx context.Context, key string, lat float64, lon float64, data *types.WeatherData) {
	member, err := json.Marshal(data)
	if err != nil {
		common.LoggerFrom(ctx, w.Logger).Errorf("Error marshalling weather for (%v, %v): %v", lat, lon, err.Error())
		return
	}

	_, err = w.rc.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.GeoAdd(ctx, key, &redis.GeoLocation{
			Name:      string(member),
			Longitude: lon,
			Latitude:  lat,
		})
		pipe.Expire(ctx, key, keyTTL)
		return nil
	})
	if err != nil {
		common.LoggerFrom(ctx, w.Logger).Errorf("Redis error when storing weather for (%v, %v): %v", lat, lon, err.Error())
	}
}

func bucketKey(t time.Time) string {
	return "weather:" + strconv.FormatInt(t.Unix()/bucketSeconds, 10)
}
