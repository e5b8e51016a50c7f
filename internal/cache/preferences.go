package cache

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/evanhutnik/cloudvibes-service/internal/locale"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// ErrInvalidPreference is the cause of every rejected preference value.
var ErrInvalidPreference = errors.New("invalid preference")

type Permission string

const (
	Granted Permission = "granted"
	Denied  Permission = "denied"
	Prompt  Permission = "prompt"
)

type Units struct {
	Temperature locale.TemperatureUnit `json:"temperature"`
	Wind        locale.WindUnit        `json:"wind"`
	Pressure    locale.PressureUnit    `json:"pressure"`
}

type Preferences struct {
	Units              Units            `json:"units"`
	SavedLocations     []types.Location `json:"savedLocations"`
	LocationPermission Permission       `json:"locationPermission"`
	LastSearch         string           `json:"lastSearch,omitempty"`
}

func DefaultPreferences() Preferences {
	return Preferences{
		Units: Units{
			Temperature: locale.Celsius,
			Wind:        locale.Kmh,
			Pressure:    locale.HPa,
		},
		SavedLocations:     []types.Location{},
		LocationPermission: Prompt,
	}
}

// LocationID identifies a saved location by its coordinates.
func LocationID(l types.Location) string {
	return strconv.FormatFloat(l.Latitude, 'f', -1, 64) + "-" + strconv.FormatFloat(l.Longitude, 'f', -1, 64)
}

// PreferenceStore keeps one JSON document per user in redis.
type PreferenceStore struct {
	rc *redis.Client
}

func NewPreferenceStore(rc *redis.Client) *PreferenceStore {
	if rc == nil {
		panic("Missing redis client in preference store")
	}
	return &PreferenceStore{rc: rc}
}

// Get returns the stored preferences, or the defaults for an unknown user.
func (p *PreferenceStore) Get(ctx context.Context, user string) (Preferences, error) {
	raw, err := p.rc.Get(ctx, prefsKey(user)).Bytes()
	if err == redis.Nil {
		return DefaultPreferences(), nil
	} else if err != nil {
		return Preferences{}, errors.Wrapf(err, "error reading preferences for %v", user)
	}

	prefs := DefaultPreferences()
	if err = json.Unmarshal(raw, &prefs); err != nil {
		return Preferences{}, errors.Wrapf(err, "error unmarshalling preferences for %v", user)
	}
	if prefs.SavedLocations == nil {
		prefs.SavedLocations = []types.Location{}
	}
	return prefs, nil
}

// SetUnits overwrites only the non-empty fields of units.
func (p *PreferenceStore) SetUnits(ctx context.Context, user string, units Units) (Preferences, error) {
	return p.update(ctx, user, func(prefs *Preferences) error {
		if units.Temperature != "" {
			if units.Temperature != locale.Celsius && units.Temperature != locale.Fahrenheit {
				return errors.Wrapf(ErrInvalidPreference, "unknown temperature unit %q", units.Temperature)
			}
			prefs.Units.Temperature = units.Temperature
		}
		if units.Wind != "" {
			if units.Wind != locale.Kmh && units.Wind != locale.Mph {
				return errors.Wrapf(ErrInvalidPreference, "unknown wind unit %q", units.Wind)
			}
			prefs.Units.Wind = units.Wind
		}
		if units.Pressure != "" {
			if units.Pressure != locale.HPa && units.Pressure != locale.InHg {
				return errors.Wrapf(ErrInvalidPreference, "unknown pressure unit %q", units.Pressure)
			}
			prefs.Units.Pressure = units.Pressure
		}
		return nil
	})
}

// AddSavedLocation appends loc unless a location with the same coordinates is saved.
func (p *PreferenceStore) AddSavedLocation(ctx context.Context, user string, loc types.Location) (Preferences, error) {
	return p.update(ctx, user, func(prefs *Preferences) error {
		for _, saved := range prefs.SavedLocations {
			if saved.Coordinates() == loc.Coordinates() {
				return nil
			}
		}
		prefs.SavedLocations = append(prefs.SavedLocations, loc)
		return nil
	})
}

// RemoveSavedLocation drops every saved location whose LocationID is id.
func (p *PreferenceStore) RemoveSavedLocation(ctx context.Context, user string, id string) (Preferences, error) {
	return p.update(ctx, user, func(prefs *Preferences) error {
		kept := make([]types.Location, 0, len(prefs.SavedLocations))
		for _, saved := range prefs.SavedLocations {
			if LocationID(saved) != id {
				kept = append(kept, saved)
			}
		}
		prefs.SavedLocations = kept
		return nil
	})
}

func (p *PreferenceStore) SetLocationPermission(ctx context.Context, user string, perm Permission) (Preferences, error) {
	return p.update(ctx, user, func(prefs *Preferences) error {
		switch perm {
		case Granted, Denied, Prompt:
			prefs.LocationPermission = perm
			return nil
		}
		return errors.Wrapf(ErrInvalidPreference, "unknown location permission %q", perm)
	})
}

func (p *PreferenceStore) SetLastSearch(ctx context.Context, user string, query string) (Preferences, error) {
	return p.update(ctx, user, func(prefs *Preferences) error {
		prefs.LastSearch = query
		return nil
	})
}

// update applies fn inside a WATCH transaction so concurrent writers for the
// same user do not lose each other's changes.
func (p *PreferenceStore) update(ctx context.Context, user string, fn func(*Preferences) error) (Preferences, error) {
	key := prefsKey(user)
	var result Preferences

	txf := func(tx *redis.Tx) error {
		prefs := DefaultPreferences()
		raw, err := tx.Get(ctx, key).Bytes()
		if err != nil && err != redis.Nil {
			return errors.Wrapf(err, "error reading preferences for %v", user)
		}
		if err == nil {
			if err = json.Unmarshal(raw, &prefs); err != nil {
				return errors.Wrapf(err, "error unmarshalling preferences for %v", user)
			}
		}
		if prefs.SavedLocations == nil {
			prefs.SavedLocations = []types.Location{}
		}

		if err = fn(&prefs); err != nil {
			return err
		}
		out, err := json.Marshal(prefs)
		if err != nil {
			return errors.Wrap(err, "error marshalling preferences")
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, out, 0)
			return nil
		})
		result = prefs
		return err
	}

	for i := 0; i < 3; i++ {
		err := p.rc.Watch(ctx, txf, key)
		if err == redis.TxFailedErr {
			continue
		}
		return result, err
	}
	return Preferences{}, errors.Errorf("preferences for %v changed concurrently", user)
}

func prefsKey(user string) string {
	return "prefs:" + user
}
