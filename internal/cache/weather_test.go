package cache

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingLookup struct {
	calls int32
	fail  bool
}

func (c *countingLookup) GetCurrentWeatherByCoordinates(_ context.Context, lat float64, lon float64) types.WeatherResponse {
	n := atomic.AddInt32(&c.calls, 1)
	if c.fail {
		return types.WeatherFailed(types.CodeAPIError, "down")
	}
	return types.WeatherOK(types.WeatherData{
		Current:  types.CurrentWeather{Temperature: float64(n)},
		Forecast: []types.ForecastDay{},
		Location: types.Location{Name: "Somewhere", Latitude: lat, Longitude: lon},
	})
}

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	return mr, rc
}

func TestWeatherCache_HitWithinRadius(t *testing.T) {
	_, rc := newRedis(t)
	next := &countingLookup{}
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	wc := NewWeatherCache(next, RedisOption(rc), ClockOption(func() time.Time { return now }))
	ctx := context.Background()

	first := wc.GetCurrentWeatherByCoordinates(ctx, 51.5074, -0.1278)
	require.True(t, first.Success)

	// about 2 km away
	second := wc.GetCurrentWeatherByCoordinates(ctx, 51.52, -0.10)
	require.True(t, second.Success)
	assert.Equal(t, int32(1), atomic.LoadInt32(&next.calls))
	assert.Equal(t, 1.0, second.Data.Current.Temperature)
	assert.Equal(t, "Somewhere", second.Data.Location.Name)

	// Paris is outside the radius
	wc.GetCurrentWeatherByCoordinates(ctx, 48.8566, 2.3522)
	assert.Equal(t, int32(2), atomic.LoadInt32(&next.calls))
}

func TestWeatherCache_NewBucketMisses(t *testing.T) {
	_, rc := newRedis(t)
	next := &countingLookup{}
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	wc := NewWeatherCache(next, RedisOption(rc), ClockOption(func() time.Time { return now }))
	ctx := context.Background()

	wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)
	now = now.Add(5 * time.Minute)
	resp := wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)

	assert.Equal(t, int32(2), atomic.LoadInt32(&next.calls))
	assert.Equal(t, 2.0, resp.Data.Current.Temperature)
}

func TestWeatherCache_KeyExpires(t *testing.T) {
	mr, rc := newRedis(t)
	now := time.Date(2025, 1, 15, 12, 0, 0, 0, time.UTC)
	wc := NewWeatherCache(&countingLookup{}, RedisOption(rc), ClockOption(func() time.Time { return now }))

	wc.GetCurrentWeatherByCoordinates(context.Background(), 10, 10)
	key := bucketKey(now)
	assert.True(t, mr.Exists(key))
	assert.Equal(t, keyTTL, mr.TTL(key))

	mr.FastForward(keyTTL + time.Second)
	assert.False(t, mr.Exists(key))
}

func TestWeatherCache_FailuresNotCached(t *testing.T) {
	mr, rc := newRedis(t)
	next := &countingLookup{fail: true}
	wc := NewWeatherCache(next, RedisOption(rc))
	ctx := context.Background()

	resp := wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)
	assert.False(t, resp.Success)
	wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)

	assert.Equal(t, int32(2), atomic.LoadInt32(&next.calls))
	assert.Empty(t, mr.Keys())
}

func TestWeatherCache_RedisDownBypasses(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()
	rc := redis.NewClient(&redis.Options{Addr: addr, MaxRetries: -1})
	defer rc.Close()
	next := &countingLookup{}
	wc := NewWeatherCache(next, RedisOption(rc))

	resp := wc.GetCurrentWeatherByCoordinates(context.Background(), 10, 10)
	assert.True(t, resp.Success)
	assert.Equal(t, int32(1), atomic.LoadInt32(&next.calls))
}

func TestWeatherCache_Disabled(t *testing.T) {
	next := &countingLookup{}
	wc := NewWeatherCache(next, DisabledOption(true))
	ctx := context.Background()

	wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)
	wc.GetCurrentWeatherByCoordinates(ctx, 10, 10)
	assert.Equal(t, int32(2), atomic.LoadInt32(&next.calls))
}

func TestNewWeatherCache_Panics(t *testing.T) {
	assert.Panics(t, func() { NewWeatherCache(nil, DisabledOption(true)) })
	assert.Panics(t, func() { NewWeatherCache(&countingLookup{}) })
}

func TestBucketKey(t *testing.T) {
	assert.Equal(t, "weather:5787156", bucketKey(time.Unix(1736146800, 0)))
	assert.Equal(t, bucketKey(time.Unix(1736146800, 0)), bucketKey(time.Unix(1736146800+299, 0)))
}
