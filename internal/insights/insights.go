package insights

import (
	"strconv"

	"github.com/evanhutnik/cloudvibes-service/internal/types"
)

type Severity string

const (
	Info    Severity = "info"
	Success Severity = "success"
	Warning Severity = "warning"
	Danger  Severity = "danger"
)

const MaxInsights = 6

type Insight struct {
	Kind        string   `json:"kind"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    Severity `json:"severity"`
	Action      string   `json:"action"`
}

type rule func(data types.WeatherData) (Insight, bool)

// Rules run in order; the first MaxInsights that fire are kept.
var rules = []rule{
	temperature,
	rain,
	wind,
	uv,
	humidity,
	visibility,
	trend,
	outdoors,
}

// Generate derives advice from simple thresholds on the current conditions and
// the start of the forecast. It returns at most MaxInsights entries.
func Generate(data types.WeatherData) []Insight {
	out := make([]Insight, 0, MaxInsights)
	for _, r := range rules {
		if len(out) == MaxInsights {
			break
		}
		if in, ok := r(data); ok {
			out = append(out, in)
		}
	}
	return out
}

func temperature(data types.WeatherData) (Insight, bool) {
	t := data.Current.Temperature
	switch {
	case t > 25:
		return Insight{
			Kind:        "hot",
			Title:       "Hot Weather Alert",
			Description: "Stay hydrated and seek shade during peak hours (11 AM - 4 PM)",
			Severity:    Warning,
			Action:      "Drink water regularly",
		}, true
	case t < 5:
		return Insight{
			Kind:        "cold",
			Title:       "Cold Weather Advisory",
			Description: "Dress warmly and protect exposed skin from frostbite",
			Severity:    Info,
			Action:      "Layer up and wear gloves",
		}, true
	}
	return Insight{}, false
}

func rain(data types.WeatherData) (Insight, bool) {
	if len(data.Forecast) == 0 {
		return Insight{}, false
	}
	p := data.Forecast[0].Precipitation.Probability
	if p <= 70 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "rain",
		Title:       "Rain Expected",
		Description: strconv.FormatFloat(p, 'f', -1, 64) + "% chance of rain today",
		Severity:    Warning,
		Action:      "Bring an umbrella",
	}, true
}

func wind(data types.WeatherData) (Insight, bool) {
	if data.Current.WindSpeed <= 30 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "wind",
		Title:       "Windy Conditions",
		Description: "Strong winds may affect outdoor activities and driving",
		Severity:    Warning,
		Action:      "Secure loose objects",
	}, true
}

func uv(data types.WeatherData) (Insight, bool) {
	if data.Current.UVIndex <= 6 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "uv",
		Title:       "High UV Index",
		Description: "UV radiation is high. Use sunscreen and protective clothing",
		Severity:    Danger,
		Action:      "Apply SPF 30+ sunscreen",
	}, true
}

func humidity(data types.WeatherData) (Insight, bool) {
	if data.Current.Humidity <= 80 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "humidity",
		Title:       "High Humidity",
		Description: "It may feel warmer than the actual temperature",
		Severity:    Info,
		Action:      "Stay cool and dry",
	}, true
}

func visibility(data types.WeatherData) (Insight, bool) {
	if data.Current.Visibility >= 5 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "visibility",
		Title:       "Poor Visibility",
		Description: "Fog or haze may affect driving conditions",
		Severity:    Warning,
		Action:      "Drive carefully with lights on",
	}, true
}

// trend compares the average high of the next three days with the current
// temperature.
func trend(data types.WeatherData) (Insight, bool) {
	if len(data.Forecast) <= 3 {
		return Insight{}, false
	}
	var sum float64
	for _, d := range data.Forecast[1:4] {
		sum += d.Temperature.Max
	}
	avg := sum / 3
	t := data.Current.Temperature

	switch {
	case avg > t+5:
		return Insight{
			Kind:        "warming",
			Title:       "Temperature Rising",
			Description: "Expect warmer weather in the coming days",
			Severity:    Info,
			Action:      "Plan for lighter clothing",
		}, true
	case avg < t-5:
		return Insight{
			Kind:        "cooling",
			Title:       "Temperature Dropping",
			Description: "Cooler weather ahead, plan accordingly",
			Severity:    Info,
			Action:      "Prepare warmer clothing",
		}, true
	}
	return Insight{}, false
}

func outdoors(data types.WeatherData) (Insight, bool) {
	c := data.Current
	if len(data.Forecast) == 0 {
		return Insight{}, false
	}
	if c.Temperature <= 15 || c.Temperature >= 28 ||
		data.Forecast[0].Precipitation.Probability >= 30 || c.WindSpeed >= 20 {
		return Insight{}, false
	}
	return Insight{
		Kind:        "outdoors",
		Title:       "Perfect Outdoor Weather",
		Description: "Great conditions for outdoor activities and exercise",
		Severity:    Success,
		Action:      "Enjoy the outdoors!",
	}, true
}
