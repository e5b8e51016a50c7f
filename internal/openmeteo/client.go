package openmeteo

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/common"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/pkg/errors"
)

const (
	name = "open-meteo"

	DefaultBaseUrl = "https://api.open-meteo.com/v1"
	forecastDays   = "14"
)

var (
	currentFields = "temperature_2m,relative_humidity_2m,apparent_temperature,is_day,precipitation,rain,showers,snowfall," +
		"weather_code,cloud_cover,pressure_msl,surface_pressure,wind_speed_10m,wind_direction_10m,wind_gusts_10m"
	hourlyFields = "temperature_2m,relative_humidity_2m,apparent_temperature,precipitation_probability,precipitation,rain," +
		"showers,snowfall,snow_depth,weather_code,pressure_msl,surface_pressure,cloud_cover,visibility," +
		"wind_speed_10m,wind_direction_10m,wind_gusts_10m"
	dailyFields = "weather_code,temperature_2m_max,temperature_2m_min,apparent_temperature_max,apparent_temperature_min," +
		"sunrise,sunset,daylight_duration,sunshine_duration,uv_index_max,uv_index_clear_sky_max,precipitation_sum," +
		"rain_sum,showers_sum,snowfall_sum,precipitation_hours,precipitation_probability_max,wind_speed_10m_max," +
		"wind_gusts_10m_max,wind_direction_10m_dominant"
)

type ClientOption func(*Client)

type Client struct {
	baseUrl string
	doer    common.Doer
}

func BaseUrlOption(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

func DoerOption(doer common.Doer) ClientOption {
	return func(c *Client) {
		c.doer = doer
	}
}

func New(opts ...ClientOption) *Client {
	c := &Client{baseUrl: DefaultBaseUrl}
	for _, opt := range opts {
		opt(c)
	}

	if c.baseUrl == "" {
		panic("Missing baseUrl in open-meteo client")
	}
	return c
}

func (c *Client) Name() string {
	return name
}

// Weather issues one combined current/hourly/daily request and translates it.
func (c *Client) Weather(ctx context.Context, lat float64, lon float64) (types.WeatherData, error) {
	respObj, err := c.Forecast(ctx, lat, lon)
	if err != nil {
		return types.WeatherData{}, err
	}
	return Translate(respObj, lat, lon, time.Now())
}

func (c *Client) Forecast(ctx context.Context, lat float64, lon float64) (*Response, error) {
	req, err := url.Parse(c.baseUrl + "/forecast")
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse open-meteo url %s", c.baseUrl)
	}

	q := req.Query()
	q.Add("latitude", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Add("longitude", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Add("current", currentFields)
	q.Add("hourly", hourlyFields)
	q.Add("daily", dailyFields)
	q.Add("timezone", "auto")
	q.Add("forecast_days", forecastDays)
	req.RawQuery = q.Encode()

	body, err := common.Get(ctx, c.doer, req.String(), name)
	if err != nil {
		return nil, err
	}

	var respObj Response
	if err = json.Unmarshal(body, &respObj); err != nil {
		return nil, errors.Wrapf(err, "error unmarshalling response from %v", name)
	}
	return &respObj, nil
}
