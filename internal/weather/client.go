package weather

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/evanhutnik/cloudvibes-service/internal/cities"
	"github.com/evanhutnik/cloudvibes-service/internal/common"
	"github.com/evanhutnik/cloudvibes-service/internal/openmeteo"
	ow "github.com/evanhutnik/cloudvibes-service/internal/openweather"
	"github.com/evanhutnik/cloudvibes-service/internal/types"
	"go.uber.org/zap"
)

const (
	minQueryLength   = 2
	localSearchLimit = 8
	// Remote augmentation only runs below this many local results, and the
	// merged list never grows past it.
	remoteSearchCeiling = 5
)

const (
	msgFetchFailed     = "Failed to fetch weather data. Please try again."
	msgCityNotFound    = "City not found. Please check the spelling and try again."
	msgNoGeocoding     = "Geocoding service not available"
	msgGeocodingFailed = "Failed to geocode city"
	msgSearchFailed    = "Failed to search locations. Please try again."
)

// Source produces WeatherData for a coordinate pair.
type Source interface {
	Name() string
	Weather(ctx context.Context, lat float64, lon float64) (types.WeatherData, error)
}

// Geocoder resolves a city name. An empty result means no match.
type Geocoder interface {
	GeoCode(ctx context.Context, city string) ([]types.SearchLocation, error)
}

// Finder is the remote location search used to augment local results.
type Finder interface {
	Find(ctx context.Context, query string) ([]types.SearchLocation, error)
}

type ClientOption func(*Client)

// Client applies the primary/fallback provider policy. Primary, geocoder and
// finder are only set when a usable primary credential was supplied.
type Client struct {
	primary   Source
	fallback  Source
	geocoder  Geocoder
	finder    Finder
	directory *cities.Directory

	Logger *zap.SugaredLogger
}

// CredentialOption wires the OpenWeatherMap provider for weather, geocoding and
// search when apiKey is set and is not the placeholder. Otherwise it is a no-op.
func CredentialOption(apiKey string, opts ...ow.ClientOption) ClientOption {
	return func(c *Client) {
		if !ow.Configured(apiKey) {
			return
		}
		owc := ow.New(append([]ow.ClientOption{ow.ApiKeyOption(apiKey)}, opts...)...)
		c.primary = owc
		c.geocoder = owc
		c.finder = owc
	}
}

func PrimaryOption(s Source) ClientOption {
	return func(c *Client) {
		c.primary = s
	}
}

func FallbackOption(s Source) ClientOption {
	return func(c *Client) {
		c.fallback = s
	}
}

func GeocoderOption(g Geocoder) ClientOption {
	return func(c *Client) {
		c.geocoder = g
	}
}

func FinderOption(f Finder) ClientOption {
	return func(c *Client) {
		c.finder = f
	}
}

func DirectoryOption(d *cities.Directory) ClientOption {
	return func(c *Client) {
		c.directory = d
	}
}

func LoggerOption(l *zap.SugaredLogger) ClientOption {
	return func(c *Client) {
		c.Logger = l
	}
}

func New(opts ...ClientOption) *Client {
	c := &Client{}
	for _, opt := range opts {
		opt(c)
	}

	if c.fallback == nil {
		c.fallback = openmeteo.New()
	}
	if c.directory == nil {
		c.directory = cities.Default()
	}
	if c.Logger == nil {
		c.Logger = zap.NewNop().Sugar()
	}
	return c
}

func (c *Client) logger(ctx context.Context) *zap.SugaredLogger {
	return common.LoggerFrom(ctx, c.Logger)
}

// HasPrimary reports whether a primary provider is wired.
func (c *Client) HasPrimary() bool {
	return c.primary != nil
}

func (c *Client) Directory() *cities.Directory {
	return c.directory
}

// GetCurrentWeatherByCoordinates tries the primary provider when one is wired and
// falls back to the secondary provider on any failure. Only a failure of the
// secondary provider is reported, as API_ERROR.
func (c *Client) GetCurrentWeatherByCoordinates(ctx context.Context, lat float64, lon float64) types.WeatherResponse {
	if c.primary != nil {
		data, err := c.primary.Weather(ctx, lat, lon)
		if err == nil {
			return types.WeatherOK(data)
		}
		c.logger(ctx).Warnw("primary weather provider failed, falling back",
			"provider", c.primary.Name(), "lat", lat, "lon", lon, "error", err.Error())
	}

	data, err := c.fallback.Weather(ctx, lat, lon)
	if err != nil {
		c.logger(ctx).Errorw(err.Error(),
			"provider", c.fallback.Name(), "lat", lat, "lon", lon, "action", "Weather")
		return types.WeatherFailed(types.CodeAPIError, msgFetchFailed)
	}
	return types.WeatherOK(data)
}

// GetCurrentWeatherByCity geocodes city through the primary provider and then
// delegates to GetCurrentWeatherByCoordinates. There is no keyless geocoding.
func (c *Client) GetCurrentWeatherByCity(ctx context.Context, city string) types.WeatherResponse {
	loc, codeErr := c.geoCode(ctx, city)
	if codeErr != nil {
		return types.WeatherResponse{Error: codeErr}
	}
	return c.GetCurrentWeatherByCoordinates(ctx, loc.Latitude, loc.Longitude)
}

func (c *Client) geoCode(ctx context.Context, city string) (*types.SearchLocation, *types.CodeError) {
	if c.geocoder == nil {
		return nil, &types.CodeError{Code: types.CodeNoGeocoding, Message: msgNoGeocoding}
	}
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, &types.CodeError{Code: types.CodeCityNotFound, Message: msgCityNotFound}
	}

	locs, err := c.geocoder.GeoCode(ctx, city)
	if err != nil {
		c.logger(ctx).Errorw(err.Error(),
			"city", city, "action", "GeoCode")
		return nil, &types.CodeError{Code: types.CodeGeocodingError, Message: msgGeocodingFailed}
	} else if len(locs) == 0 {
		return nil, &types.CodeError{Code: types.CodeCityNotFound, Message: msgCityNotFound}
	}
	return &locs[0], nil
}

// SearchLocations ranks the local directory and, when it yields fewer than five
// matches and a finder is wired, tops the list up from the remote search.
// Remote failures are logged and the local matches are returned.
func (c *Client) SearchLocations(ctx context.Context, query string) types.SearchResponse {
	if strings.TrimSpace(query) == "" || utf8.RuneCountInString(query) < minQueryLength {
		return types.SearchOK(nil)
	}
	if err := ctx.Err(); err != nil {
		c.logger(ctx).Errorw(err.Error(), "query", query, "action", "SearchLocations")
		return types.SearchFailed(types.CodeSearchError, msgSearchFailed)
	}

	local := c.directory.Search(query, localSearchLimit)
	locations := make([]types.SearchLocation, 0, len(local))
	for _, city := range local {
		locations = append(locations, cities.ToSearchLocation(city))
	}

	if c.finder != nil && len(locations) < remoteSearchCeiling {
		remote, err := c.finder.Find(ctx, query)
		if err != nil {
			c.logger(ctx).Warnw("remote location search failed, using local results only",
				"query", query, "error", err.Error())
		} else {
			locations = merge(locations, remote, remoteSearchCeiling)
		}
	}
	return types.SearchOK(locations)
}

// merge appends remote results whose name-country key is not already present,
// stopping once the list holds max entries.
func merge(local []types.SearchLocation, remote []types.SearchLocation, max int) []types.SearchLocation {
	seen := make(map[string]struct{}, len(local)+len(remote))
	for _, loc := range local {
		seen[loc.Key()] = struct{}{}
	}
	for _, loc := range remote {
		if len(local) >= max {
			break
		}
		if _, ok := seen[loc.Key()]; ok {
			continue
		}
		seen[loc.Key()] = struct{}{}
		local = append(local, loc)
	}
	return local
}
