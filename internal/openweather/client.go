package openweather

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/cities"
	"github.com/evanhutnik/cloudvibes-service/internal/common"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const (
	name = "openweather"

	// PlaceholderKey is the sample credential shipped in example env files.
	PlaceholderKey = "your_openweathermap_api_key_here"
	DefaultBaseUrl = "https://api.openweathermap.org/data/2.5"
	DefaultGeoUrl  = "http://api.openweathermap.org/geo/1.0"
)

// Configured reports whether apiKey is a usable credential.
func Configured(apiKey string) bool {
	return apiKey != "" && apiKey != PlaceholderKey
}

type ClientOption func(*Client)

type Client struct {
	apiKey  string
	baseUrl string
	geoUrl  string
	doer    common.Doer
}

func ApiKeyOption(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

func BaseUrlOption(baseUrl string) ClientOption {
	return func(c *Client) {
		c.baseUrl = baseUrl
	}
}

func GeoUrlOption(geoUrl string) ClientOption {
	return func(c *Client) {
		c.geoUrl = geoUrl
	}
}

func DoerOption(doer common.Doer) ClientOption {
	return func(c *Client) {
		c.doer = doer
	}
}

func New(opts ...ClientOption) *Client {
	c := &Client{
		baseUrl: DefaultBaseUrl,
		geoUrl:  DefaultGeoUrl,
	}
	for _, opt := range opts {
		opt(c)
	}

	if !Configured(c.apiKey) {
		panic("Missing apikey in openweather client")
	}
	if c.baseUrl == "" {
		panic("Missing baseUrl in openweather client")
	}
	if c.geoUrl == "" {
		panic("Missing geoUrl in openweather client")
	}
	return c
}

func (c *Client) Name() string {
	return name
}

// Weather fetches current conditions and the 3-hourly forecast concurrently.
// Either call failing fails the whole lookup.
func (c *Client) Weather(ctx context.Context, lat float64, lon float64) (types.WeatherData, error) {
	var current *CurrentResponse
	var forecast *ForecastResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		current, err = c.Current(gctx, lat, lon)
		return err
	})
	g.Go(func() error {
		var err error
		forecast, err = c.Forecast(gctx, lat, lon)
		return err
	})
	if err := g.Wait(); err != nil {
		return types.WeatherData{}, err
	}

	return Translate(current, forecast, time.Now())
}

func (c *Client) Current(ctx context.Context, lat float64, lon float64) (*CurrentResponse, error) {
	var respObj CurrentResponse
	if err := c.getJSON(ctx, c.baseUrl+"/weather", c.coordQuery(lat, lon), &respObj); err != nil {
		return nil, err
	}
	return &respObj, nil
}

func (c *Client) Forecast(ctx context.Context, lat float64, lon float64) (*ForecastResponse, error) {
	var respObj ForecastResponse
	if err := c.getJSON(ctx, c.baseUrl+"/forecast", c.coordQuery(lat, lon), &respObj); err != nil {
		return nil, err
	}
	return &respObj, nil
}

// GeoCode resolves a city name to at most one location. An empty slice means no match.
func (c *Client) GeoCode(ctx context.Context, city string) ([]types.SearchLocation, error) {
	q := url.Values{}
	q.Add("q", city)
	q.Add("limit", "1")
	q.Add("appid", c.apiKey)

	var respObj []GeoCodeResult
	if err := c.getJSON(ctx, c.geoUrl+"/direct", q, &respObj); err != nil {
		return nil, err
	}

	locations := make([]types.SearchLocation, 0, len(respObj))
	for _, r := range respObj {
		locations = append(locations, types.SearchLocation{
			Name:      r.Name,
			Country:   r.Country,
			Region:    r.State,
			Latitude:  r.Lat,
			Longitude: r.Lon,
		})
	}
	return locations, nil
}

// Find runs a free-text city search, returning up to five matches.
func (c *Client) Find(ctx context.Context, query string) ([]types.SearchLocation, error) {
	q := url.Values{}
	q.Add("q", query)
	q.Add("limit", "5")
	q.Add("appid", c.apiKey)

	var respObj FindResponse
	if err := c.getJSON(ctx, c.baseUrl+"/find", q, &respObj); err != nil {
		return nil, err
	}

	locations := make([]types.SearchLocation, 0, len(respObj.List))
	for _, item := range respObj.List {
		locations = append(locations, types.SearchLocation{
			Name:       item.Name,
			Country:    item.Sys.Country,
			Region:     item.State,
			Latitude:   item.Coord.Lat,
			Longitude:  item.Coord.Lon,
			Population: item.Population,
			Flag:       cities.CountryFlag(item.Sys.Country),
		})
	}
	return locations, nil
}

func (c *Client) coordQuery(lat float64, lon float64) url.Values {
	q := url.Values{}
	q.Add("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Add("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Add("appid", c.apiKey)
	q.Add("units", "metric")
	return q
}

func (c *Client) getJSON(ctx context.Context, endpoint string, q url.Values, v interface{}) error {
	req, err := url.Parse(endpoint)
	if err != nil {
		return errors.Wrapf(err, "failed to parse openweather url %s", endpoint)
	}
	req.RawQuery = q.Encode()

	body, err := common.Get(ctx, c.doer, req.String(), name)
	if err != nil {
		return err
	}
	if err = json.Unmarshal(body, v); err != nil {
		return errors.Wrapf(err, "error unmarshalling response from %v", name)
	}
	return nil
}
