package openmeteo

type Current struct {
	Time                string   `json:"time"`
	Temperature         float64  `json:"temperature_2m"`
	RelativeHumidity    float64  `json:"relative_humidity_2m"`
	ApparentTemperature float64  `json:"apparent_temperature"`
	IsDay               int      `json:"is_day"`
	Precipitation       float64  `json:"precipitation"`
	Rain                float64  `json:"rain"`
	Showers             float64  `json:"showers"`
	Snowfall            float64  `json:"snowfall"`
	WeatherCode         int      `json:"weather_code"`
	CloudCover          float64  `json:"cloud_cover"`
	PressureMsl         float64  `json:"pressure_msl"`
	SurfacePressure     float64  `json:"surface_pressure"`
	WindSpeed           float64  `json:"wind_speed_10m"`
	WindDirection       float64  `json:"wind_direction_10m"`
	WindGusts           *float64 `json:"wind_gusts_10m"`
}

type Hourly struct {
	Time                     []string   `json:"time"`
	Temperature              []*float64 `json:"temperature_2m"`
	RelativeHumidity         []*float64 `json:"relative_humidity_2m"`
	PrecipitationProbability []*float64 `json:"precipitation_probability"`
	WeatherCode              []*int     `json:"weather_code"`
	Visibility               []*float64 `json:"visibility"`
	WindSpeed                []*float64 `json:"wind_speed_10m"`
}

// Daily holds parallel per-field arrays; any element may be null.
type Daily struct {
	Time                        []string   `json:"time"`
	WeatherCode                 []*int     `json:"weather_code"`
	TemperatureMax              []*float64 `json:"temperature_2m_max"`
	TemperatureMin              []*float64 `json:"temperature_2m_min"`
	Sunrise                     []*string  `json:"sunrise"`
	Sunset                      []*string  `json:"sunset"`
	UVIndexMax                  []*float64 `json:"uv_index_max"`
	PrecipitationSum            []*float64 `json:"precipitation_sum"`
	PrecipitationProbabilityMax []*float64 `json:"precipitation_probability_max"`
	WindSpeedMax                []*float64 `json:"wind_speed_10m_max"`
	WindDirectionDominant       []*float64 `json:"wind_direction_10m_dominant"`
}

type Response struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Timezone  string   `json:"timezone"`
	Current   *Current `json:"current"`
	Hourly    *Hourly  `json:"hourly"`
	Daily     *Daily   `json:"daily"`
}
