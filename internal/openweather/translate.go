package openweather

import (
	"fmt"
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/pkg/errors"
)

const (
	msToKmh = 3.6

	// Visibility reported when the upstream omits it, in km.
	defaultVisibilityKm = 10
	maxForecastDays     = 5
)

// Translate converts the current-conditions and forecast payloads into WeatherData.
// now stamps the result; the upstream observation time is not used.
func Translate(current *CurrentResponse, forecast *ForecastResponse, now time.Time) (types.WeatherData, error) {
	if current == nil || forecast == nil {
		return types.WeatherData{}, errors.New("missing openweather payload")
	}
	if len(current.Weather) == 0 {
		return types.WeatherData{}, errors.New("openweather current response has no weather conditions")
	}

	days, err := groupForecastByDay(forecast.List)
	if err != nil {
		return types.WeatherData{}, err
	}

	cond := current.Weather[0]
	cw := types.CurrentWeather{
		Temperature:   current.Main.Temp,
		FeelsLike:     current.Main.FeelsLike,
		Condition:     cond.Main,
		Description:   cond.Description,
		Icon:          cond.Icon,
		Humidity:      current.Main.Humidity,
		Pressure:      current.Main.Pressure,
		WindSpeed:     current.Wind.Speed * msToKmh,
		WindDirection: current.Wind.Deg,
		Visibility:    defaultVisibilityKm,
		// not available on the free tier
		UVIndex:    0,
		CloudCover: current.Clouds.All,
		DewPoint:   0,
		Timestamp:  types.Timestamp(now),
	}
	if current.Wind.Gust != nil && *current.Wind.Gust != 0 {
		gust := *current.Wind.Gust * msToKmh
		cw.WindGust = &gust
	}
	if current.Visibility != nil && *current.Visibility != 0 {
		cw.Visibility = *current.Visibility / 1000
	}

	return types.WeatherData{
		Current:  cw,
		Forecast: days,
		Location: types.Location{
			Name:      current.Name,
			Country:   current.Sys.Country,
			Latitude:  current.Coord.Lat,
			Longitude: current.Coord.Lon,
			Timezone:  zoneName(current.Timezone),
			LocalTime: types.Timestamp(now),
		},
	}, nil
}

// groupForecastByDay buckets 3-hour entries by their UTC calendar date, in order of
// first appearance, keeping at most maxForecastDays days. Entries close to local
// midnight can land on the neighbouring day for locations far from UTC.
func groupForecastByDay(list []ForecastItem) ([]types.ForecastDay, error) {
	var order []string
	byDate := map[string][]ForecastItem{}
	for _, item := range list {
		if len(item.Weather) == 0 {
			return nil, errors.Errorf("openweather forecast entry %d has no weather conditions", item.Dt)
		}
		date := time.Unix(item.Dt, 0).UTC().Format("2006-01-02")
		if _, ok := byDate[date]; !ok {
			order = append(order, date)
		}
		byDate[date] = append(byDate[date], item)
	}
	if len(order) > maxForecastDays {
		order = order[:maxForecastDays]
	}

	days := make([]types.ForecastDay, 0, len(order))
	for _, date := range order {
		items := byDate[date]
		first := items[0]

		day := types.ForecastDay{
			Date:          date,
			Temperature:   types.TemperatureRange{Min: first.Main.Temp, Max: first.Main.Temp},
			Condition:     first.Weather[0].Main,
			Description:   first.Weather[0].Description,
			Icon:          first.Weather[0].Icon,
			Humidity:      first.Main.Humidity,
			WindSpeed:     first.Wind.Speed * msToKmh,
			WindDirection: first.Wind.Deg,
		}
		for _, item := range items {
			if item.Main.Temp < day.Temperature.Min {
				day.Temperature.Min = item.Main.Temp
			}
			if item.Main.Temp > day.Temperature.Max {
				day.Temperature.Max = item.Main.Temp
			}
			if p := item.Pop * 100; p > day.Precipitation.Probability {
				day.Precipitation.Probability = p
			}
			if item.Rain != nil {
				day.Precipitation.Amount += item.Rain.ThreeHour
			}
		}
		days = append(days, day)
	}
	return days, nil
}

// zoneName turns a whole-hour UTC offset into its Etc/GMT zone. Etc zones use
// inverted signs, so +3600 is Etc/GMT-1.
func zoneName(offsetSeconds int) string {
	if offsetSeconds == 0 || offsetSeconds%3600 != 0 {
		return "UTC"
	}
	hours := offsetSeconds / 3600
	if hours > 0 {
		return fmt.Sprintf("Etc/GMT-%d", hours)
	}
	return fmt.Sprintf("Etc/GMT+%d", -hours)
}
