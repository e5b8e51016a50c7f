package locale

import (
	"fmt"
	"math"
	"strings"

	"github.com/evanhutnik/cloudvibes-service/internal/cities"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
)

type TemperatureUnit string

type WindUnit string

type PressureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"

	Kmh WindUnit = "kmh"
	Mph WindUnit = "mph"

	HPa  PressureUnit = "hPa"
	InHg PressureUnit = "inHg"

	kmhToMph  = 0.621371
	hPaToInHg = 0.02953

	// Directory cities farther than this are not used to name coordinates.
	nearestCityKm = 50.0
)

var fahrenheitCountries = map[string]struct{}{
	"US": {}, "USA": {}, "UNITED STATES": {},
	"BS": {}, "BAHAMAS": {},
	"BZ": {}, "BELIZE": {},
	"KY": {}, "CAYMAN ISLANDS": {},
	"PW": {}, "PALAU": {},
}

var usStates = map[string]struct{}{
	"AL": {}, "AK": {}, "AZ": {}, "AR": {}, "CA": {}, "CO": {}, "CT": {}, "DE": {}, "FL": {}, "GA": {},
	"HI": {}, "ID": {}, "IL": {}, "IN": {}, "IA": {}, "KS": {}, "KY": {}, "LA": {}, "ME": {}, "MD": {},
	"MA": {}, "MI": {}, "MN": {}, "MS": {}, "MO": {}, "MT": {}, "NE": {}, "NV": {}, "NH": {}, "NJ": {},
	"NM": {}, "NY": {}, "NC": {}, "ND": {}, "OH": {}, "OK": {}, "OR": {}, "PA": {}, "RI": {}, "SC": {},
	"SD": {}, "TN": {}, "TX": {}, "UT": {}, "VT": {}, "VA": {}, "WA": {}, "WV": {}, "WI": {}, "WY": {},
	"PR": {}, "VI": {}, "GU": {}, "AS": {},
}

// Info is what location detection knows about where a user is.
type Info struct {
	Country        string  `json:"country"`
	CountryCode    string  `json:"countryCode"`
	Region         string  `json:"region"`
	City           string  `json:"city"`
	UsesFahrenheit bool    `json:"usesFahrenheit"`
	Timezone       string  `json:"timezone"`
	Latitude       float64 `json:"latitude,omitempty"`
	Longitude      float64 `json:"longitude,omitempty"`
}

func (i Info) TemperatureUnit() TemperatureUnit {
	if i.UsesFahrenheit {
		return Fahrenheit
	}
	return Celsius
}

var timezones = map[string]Info{
	"America/New_York":    {Country: "United States", CountryCode: "US", Region: "New York", UsesFahrenheit: true},
	"America/Los_Angeles": {Country: "United States", CountryCode: "US", Region: "California", UsesFahrenheit: true},
	"America/Chicago":     {Country: "United States", CountryCode: "US", Region: "Illinois", UsesFahrenheit: true},
	"America/Denver":      {Country: "United States", CountryCode: "US", Region: "Colorado", UsesFahrenheit: true},
	"America/Toronto":     {Country: "Canada", CountryCode: "CA", Region: "Ontario"},
	"Europe/London":       {Country: "United Kingdom", CountryCode: "GB", Region: "England"},
	"Europe/Paris":        {Country: "France", CountryCode: "FR", Region: "Île-de-France"},
	"Europe/Berlin":       {Country: "Germany", CountryCode: "DE", Region: "Berlin"},
	"Asia/Tokyo":          {Country: "Japan", CountryCode: "JP", Region: "Tokyo"},
	"Asia/Shanghai":       {Country: "China", CountryCode: "CN", Region: "Shanghai"},
	"Australia/Sydney":    {Country: "Australia", CountryCode: "AU", Region: "New South Wales"},
}

// UsesFahrenheit reports whether a country code or name, or a US state or
// territory region code, conventionally uses Fahrenheit.
func UsesFahrenheit(countryCode string, region string) bool {
	if countryCode == "" {
		return false
	}
	code := strings.ToUpper(countryCode)
	if _, ok := fahrenheitCountries[code]; ok {
		return true
	}
	_, ok := usStates[strings.ToUpper(region)]
	return ok
}

// IsUSCoordinates is a rough bounding-box test covering the continental US,
// Alaska and Hawaii.
func IsUSCoordinates(lat float64, lon float64) bool {
	return (lat >= 25 && lat <= 49 && lon >= -125 && lon <= -66) ||
		(lat >= 54 && lat <= 71 && lon >= -179 && lon <= -129) ||
		(lat >= 18 && lat <= 29 && lon >= -179 && lon <= -154)
}

// FromTimezone maps a handful of common IANA zones onto a country and region.
func FromTimezone(tz string) (Info, bool) {
	info, ok := timezones[tz]
	if !ok {
		return Info{}, false
	}
	info.Timezone = tz
	return info, true
}

// FromCoordinates names coordinates after the nearest directory city when one
// lies within 50 km. Otherwise only the US bounding boxes are consulted.
func FromCoordinates(dir *cities.Directory, lat float64, lon float64, tz string) Info {
	info := Info{
		Country:        "Unknown",
		City:           "Current Location",
		UsesFahrenheit: IsUSCoordinates(lat, lon),
		Timezone:       tz,
		Latitude:       lat,
		Longitude:      lon,
	}
	if dir == nil {
		return info
	}
	c, km, ok := dir.Nearest(lat, lon)
	if !ok || km > nearestCityKm {
		return info
	}
	info.Country = c.Country
	info.CountryCode = c.Country
	info.Region = c.Region
	info.City = c.Name
	info.UsesFahrenheit = UsesFahrenheit(c.Country, c.Region)
	return info
}

// DefaultLocation is used when every detection method has failed.
func DefaultLocation() types.Location {
	return types.Location{
		Name:      "New York",
		Country:   "US",
		Region:    "New York",
		Latitude:  40.7128,
		Longitude: -74.0060,
		Timezone:  "America/New_York",
	}
}

func ConvertTemperature(temp float64, from TemperatureUnit, to TemperatureUnit) float64 {
	switch {
	case from == to:
		return temp
	case from == Celsius && to == Fahrenheit:
		return temp*9/5 + 32
	case from == Fahrenheit && to == Celsius:
		return (temp - 32) * 5 / 9
	}
	return temp
}

// FormatTemperature renders a Celsius reading in the requested unit.
func FormatTemperature(celsius float64, unit TemperatureUnit) string {
	if unit == Fahrenheit {
		return fmt.Sprintf("%d°F", round(ConvertTemperature(celsius, Celsius, Fahrenheit)))
	}
	return fmt.Sprintf("%d°C", round(celsius))
}

// FormatWindSpeed renders a km/h reading in the requested unit.
func FormatWindSpeed(kmh float64, unit WindUnit) string {
	if unit == Mph {
		return fmt.Sprintf("%d mph", round(kmh*kmhToMph))
	}
	return fmt.Sprintf("%d km/h", round(kmh))
}

// FormatPressure renders an hPa reading in the requested unit.
func FormatPressure(hPa float64, unit PressureUnit) string {
	if unit == InHg {
		return fmt.Sprintf("%.2f inHg", hPa*hPaToInHg)
	}
	return fmt.Sprintf("%d hPa", round(hPa))
}

var compass = []string{"N", "NNE", "NE", "ENE", "E", "ESE", "SE", "SSE", "S", "SSW", "SW", "WSW", "W", "WNW", "NW", "NNW"}

// WindDirection maps degrees onto a 16-point compass label.
func WindDirection(degrees float64) string {
	i := round(degrees/22.5) % 16
	if i < 0 {
		i += 16
	}
	return compass[i]
}

func UVLevel(uv float64) string {
	switch {
	case uv <= 2:
		return "Low"
	case uv <= 5:
		return "Moderate"
	case uv <= 7:
		return "High"
	case uv <= 10:
		return "Very High"
	default:
		return "Extreme"
	}
}

// round rounds halves up, so -2.5 becomes -2.
func round(v float64) int {
	return int(math.Floor(v + 0.5))
}
