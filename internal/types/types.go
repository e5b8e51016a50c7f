package types

import "time"

// Error codes surfaced to consumers of the weather client.
const (
	CodeAPIError       = "API_ERROR"
	CodeCityNotFound   = "CITY_NOT_FOUND"
	CodeNoGeocoding    = "NO_GEOCODING"
	CodeGeocodingError = "GEOCODING_ERROR"
	CodeSearchError    = "SEARCH_ERROR"
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Location struct {
	Name      string  `json:"name"`
	Country   string  `json:"country"`
	Region    string  `json:"region,omitempty"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
	LocalTime string  `json:"localTime"`
}

// Coordinates returns the only identity a Location has.
func (l Location) Coordinates() Coordinates {
	return Coordinates{Latitude: l.Latitude, Longitude: l.Longitude}
}

type CurrentWeather struct {
	Temperature   float64  `json:"temperature"`
	FeelsLike     float64  `json:"feelsLike"`
	Condition     string   `json:"condition"`
	Description   string   `json:"description"`
	Icon          string   `json:"icon"`
	Humidity      float64  `json:"humidity"`
	Pressure      float64  `json:"pressure"`
	WindSpeed     float64  `json:"windSpeed"` // km/h
	WindDirection float64  `json:"windDirection"`
	WindGust      *float64 `json:"windGust,omitempty"` // km/h
	Visibility    float64  `json:"visibility"`         // km
	UVIndex       float64  `json:"uvIndex"`
	CloudCover    float64  `json:"cloudCover"`
	DewPoint      float64  `json:"dewPoint"`
	Timestamp     string   `json:"timestamp"`
}

type TemperatureRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type Precipitation struct {
	Probability float64 `json:"probability"` // 0-100
	Amount      float64 `json:"amount"`      // mm
}

type ForecastDay struct {
	Date          string           `json:"date"`
	Temperature   TemperatureRange `json:"temperature"`
	Condition     string           `json:"condition"`
	Description   string           `json:"description"`
	Icon          string           `json:"icon"`
	Humidity      float64          `json:"humidity"`
	WindSpeed     float64          `json:"windSpeed"` // km/h
	WindDirection float64          `json:"windDirection"`
	Precipitation Precipitation    `json:"precipitation"`
	UVIndex       float64          `json:"uvIndex"`
	Sunrise       string           `json:"sunrise"`
	Sunset        string           `json:"sunset"`
}

type WeatherAlert struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Severity    string   `json:"severity"`
	Start       string   `json:"start"`
	End         string   `json:"end"`
	Areas       []string `json:"areas"`
}

// WeatherData is the provider-independent result of a weather lookup.
// Forecast is never nil.
type WeatherData struct {
	Current  CurrentWeather `json:"current"`
	Forecast []ForecastDay  `json:"forecast"`
	Location Location       `json:"location"`
	Alerts   []WeatherAlert `json:"alerts,omitempty"`
}

type SearchLocation struct {
	Name       string  `json:"name"`
	Country    string  `json:"country"`
	Region     string  `json:"region,omitempty"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
	Population int     `json:"population,omitempty"`
	Flag       string  `json:"flag,omitempty"`
}

// Key identifies a search result for de-duplication.
func (s SearchLocation) Key() string {
	return s.Name + "-" + s.Country
}

type CodeError struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"message"`
}

func (c CodeError) Error() string {
	return c.Message
}

type WeatherResponse struct {
	Success bool         `json:"success"`
	Data    *WeatherData `json:"data,omitempty"`
	Error   *CodeError   `json:"error,omitempty"`
}

type SearchResponse struct {
	Success bool             `json:"success"`
	Data    []SearchLocation `json:"data"`
	Error   *CodeError       `json:"error,omitempty"`
}

func WeatherOK(data WeatherData) WeatherResponse {
	return WeatherResponse{Success: true, Data: &data}
}

func WeatherFailed(code, msg string) WeatherResponse {
	return WeatherResponse{Error: &CodeError{Code: code, Message: msg}}
}

func SearchOK(data []SearchLocation) SearchResponse {
	if data == nil {
		data = []SearchLocation{}
	}
	return SearchResponse{Success: true, Data: data}
}

func SearchFailed(code, msg string) SearchResponse {
	return SearchResponse{Error: &CodeError{Code: code, Message: msg}}
}

// Timestamp renders t the way every timestamp in the model is rendered:
// UTC, millisecond precision, ISO-8601.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05.000Z")
}
