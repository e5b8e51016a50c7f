package openmeteo

import (
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/pkg/errors"
)

const (
	// The provider returns no place name; naming is left to the caller.
	PlaceholderName = "Current Location"

	defaultVisibilityKm = 10
)

// Translate converts a combined forecast response into WeatherData. Values are
// already metric. lat and lon are the requested coordinates, not the grid cell
// the provider snapped to.
func Translate(resp *Response, lat float64, lon float64, now time.Time) (types.WeatherData, error) {
	if resp == nil || resp.Current == nil {
		return types.WeatherData{}, errors.New("open-meteo response has no current block")
	}

	tz := resp.Timezone
	if tz == "" {
		tz = "UTC"
	}

	c := resp.Current
	cw := types.CurrentWeather{
		Temperature:   c.Temperature,
		FeelsLike:     c.ApparentTemperature,
		Condition:     Condition(c.WeatherCode),
		Description:   Description(c.WeatherCode),
		Icon:          Icon(c.WeatherCode, c.IsDay == 1),
		Humidity:      c.RelativeHumidity,
		Pressure:      c.PressureMsl,
		WindSpeed:     c.WindSpeed,
		WindDirection: c.WindDirection,
		WindGust:      c.WindGusts,
		Visibility:    defaultVisibilityKm,
		UVIndex:       0,
		CloudCover:    c.CloudCover,
		DewPoint:      0,
		Timestamp:     types.Timestamp(now),
	}

	return types.WeatherData{
		Current:  cw,
		Forecast: dailyForecast(resp.Daily),
		Location: types.Location{
			Name:      PlaceholderName,
			Country:   "",
			Latitude:  lat,
			Longitude: lon,
			Timezone:  tz,
			LocalTime: types.Timestamp(now),
		},
	}, nil
}

// dailyForecast zips the parallel daily arrays by index. Short or null entries
// become zero values.
func dailyForecast(d *Daily) []types.ForecastDay {
	if d == nil {
		return []types.ForecastDay{}
	}

	days := make([]types.ForecastDay, 0, len(d.Time))
	for i, date := range d.Time {
		code := intAt(d.WeatherCode, i)
		days = append(days, types.ForecastDay{
			Date: date,
			Temperature: types.TemperatureRange{
				Min: floatAt(d.TemperatureMin, i),
				Max: floatAt(d.TemperatureMax, i),
			},
			Condition:     Condition(code),
			Description:   Description(code),
			Icon:          Icon(code, true),
			Humidity:      0,
			WindSpeed:     floatAt(d.WindSpeedMax, i),
			WindDirection: floatAt(d.WindDirectionDominant, i),
			Precipitation: types.Precipitation{
				Probability: floatAt(d.PrecipitationProbabilityMax, i),
				Amount:      floatAt(d.PrecipitationSum, i),
			},
			UVIndex: floatAt(d.UVIndexMax, i),
			Sunrise: stringAt(d.Sunrise, i),
			Sunset:  stringAt(d.Sunset, i),
		})
	}
	return days
}

func floatAt(vals []*float64, i int) float64 {
	if i >= len(vals) || vals[i] == nil {
		return 0
	}
	return *vals[i]
}

func intAt(vals []*int, i int) int {
	if i >= len(vals) || vals[i] == nil {
		return 0
	}
	return *vals[i]
}

func stringAt(vals []*string, i int) string {
	if i >= len(vals) || vals[i] == nil {
		return ""
	}
	return *vals[i]
}
