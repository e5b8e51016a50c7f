package openmeteo

// Condition maps a WMO weather code onto a short condition category.
func Condition(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 3:
		return "Partly Cloudy"
	case code <= 48:
		return "Foggy"
	case code <= 57:
		return "Drizzle"
	case code <= 67:
		return "Rain"
	case code <= 77:
		return "Snow"
	case code <= 82:
		return "Showers"
	case code <= 86:
		return "Snow Showers"
	case code <= 99:
		return "Thunderstorm"
	default:
		return "Unknown"
	}
}

var descriptions = map[int]string{
	0:  "Clear sky",
	1:  "Mainly clear",
	2:  "Partly cloudy",
	3:  "Overcast",
	45: "Fog",
	48: "Depositing rime fog",
	51: "Light drizzle",
	53: "Moderate drizzle",
	55: "Dense drizzle",
	56: "Light freezing drizzle",
	57: "Dense freezing drizzle",
	61: "Slight rain",
	63: "Moderate rain",
	65: "Heavy rain",
	66: "Light freezing rain",
	67: "Heavy freezing rain",
	71: "Slight snow fall",
	73: "Moderate snow fall",
	75: "Heavy snow fall",
	77: "Snow grains",
	80: "Slight rain showers",
	81: "Moderate rain showers",
	82: "Violent rain showers",
	85: "Slight snow showers",
	86: "Heavy snow showers",
	95: "Thunderstorm",
	96: "Thunderstorm with slight hail",
	99: "Thunderstorm with heavy hail",
}

func Description(code int) string {
	if d, ok := descriptions[code]; ok {
		return d
	}
	return "Unknown weather condition"
}

// Only clear and partly cloudy skies have distinct night icons.
var icons = map[int]string{
	3:  "04d",
	45: "50d",
	48: "50d",
	51: "09d",
	53: "09d",
	55: "09d",
	56: "09d",
	57: "09d",
	61: "10d",
	63: "10d",
	65: "10d",
	66: "10d",
	67: "10d",
	71: "13d",
	73: "13d",
	75: "13d",
	77: "13d",
	80: "09d",
	81: "09d",
	82: "09d",
	85: "13d",
	86: "13d",
	95: "11d",
	96: "11d",
	99: "11d",
}

// Icon maps a WMO code and day/night flag onto an icon identifier.
func Icon(code int, isDay bool) string {
	switch code {
	case 0:
		return dayNight("01", isDay)
	case 1, 2:
		return dayNight("02", isDay)
	}
	if icon, ok := icons[code]; ok {
		return icon
	}
	return "01d"
}

func dayNight(prefix string, isDay bool) string {
	if isDay {
		return prefix + "d"
	}
	return prefix + "n"
}
