package cache

import (
	"context"
	"testing"

	"github.com/evanhutnik/cloudvibes-service/internal/locale"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreferences_Defaults(t *testing.T) {
	_, rc := newRedis(t)
	store := NewPreferenceStore(rc)

	prefs, err := store.Get(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
	assert.Equal(t, locale.Celsius, prefs.Units.Temperature)
	assert.Equal(t, Prompt, prefs.LocationPermission)
	assert.NotNil(t, prefs.SavedLocations)
}

func TestPreferences_SetUnitsMerges(t *testing.T) {
	_, rc := newRedis(t)
	store := NewPreferenceStore(rc)
	ctx := context.Background()

	_, err := store.SetUnits(ctx, "u1", Units{Temperature: locale.Fahrenheit})
	require.NoError(t, err)
	prefs, err := store.SetUnits(ctx, "u1", Units{Wind: locale.Mph})
	require.NoError(t, err)

	assert.Equal(t, Units{Temperature: locale.Fahrenheit, Wind: locale.Mph, Pressure: locale.HPa}, prefs.Units)

	got, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, prefs, got)
}

func TestPreferences_InvalidValues(t *testing.T) {
	_, rc := newRedis(t)
	store := NewPreferenceStore(rc)
	ctx := context.Background()

	_, err := store.SetUnits(ctx, "u1", Units{Pressure: "mmHg"})
	require.Error(t, err)
	assert.Equal(t, ErrInvalidPreference, errors.Cause(err))

	_, err = store.SetLocationPermission(ctx, "u1", "maybe")
	require.Error(t, err)
	assert.Equal(t, ErrInvalidPreference, errors.Cause(err))

	prefs, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, DefaultPreferences(), prefs)
}

func TestPreferences_SavedLocations(t *testing.T) {
	_, rc := newRedis(t)
	store := NewPreferenceStore(rc)
	ctx := context.Background()

	london := types.Location{Name: "London", Country: "GB", Latitude: 51.5074, Longitude: -0.1278}
	paris := types.Location{Name: "Paris", Country: "FR", Latitude: 48.8566, Longitude: 2.3522}

	_, err := store.AddSavedLocation(ctx, "u1", london)
	require.NoError(t, err)
	_, err = store.AddSavedLocation(ctx, "u1", paris)
	require.NoError(t, err)
	// same coordinates under another name
	prefs, err := store.AddSavedLocation(ctx, "u1", types.Location{Name: "Londres", Latitude: 51.5074, Longitude: -0.1278})
	require.NoError(t, err)
	require.Len(t, prefs.SavedLocations, 2)
	assert.Equal(t, "London", prefs.SavedLocations[0].Name)

	assert.Equal(t, "51.5074--0.1278", LocationID(london))
	prefs, err = store.RemoveSavedLocation(ctx, "u1", LocationID(london))
	require.NoError(t, err)
	require.Len(t, prefs.SavedLocations, 1)
	assert.Equal(t, "Paris", prefs.SavedLocations[0].Name)

	prefs, err = store.RemoveSavedLocation(ctx, "u1", "0-0")
	require.NoError(t, err)
	assert.Len(t, prefs.SavedLocations, 1)
}

func TestPreferences_PermissionAndLastSearch(t *testing.T) {
	_, rc := newRedis(t)
	store := NewPreferenceStore(rc)
	ctx := context.Background()

	_, err := store.SetLocationPermission(ctx, "u1", Granted)
	require.NoError(t, err)
	_, err = store.SetLastSearch(ctx, "u1", "tokyo")
	require.NoError(t, err)

	prefs, err := store.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, Granted, prefs.LocationPermission)
	assert.Equal(t, "tokyo", prefs.LastSearch)

	other, err := store.Get(ctx, "u2")
	require.NoError(t, err)
	assert.Equal(t, Prompt, other.LocationPermission)
}
