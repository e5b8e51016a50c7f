package service

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/evanhutnik/cloudvibes-service/internal/cache"
	"github.com/evanhutnik/cloudvibes-service/internal/cities"
	"github.com/evanhutnik/cloudvibes-service/internal/common"
	"github.com/evanhutnik/cloudvibes-service/internal/config"
	"github.com/evanhutnik/cloudvibes-service/internal/insights"
	"github.com/evanhutnik/cloudvibes-service/internal/locale"
	"github.com/evanhutnik/cloudvibes-service/internal/openmeteo"
	ow "github.com/evanhutnik/cloudvibes-service/internal/openweather"
	t "github.com/evanhutnik/cloudvibes-service/internal/types"
	"github.com/evanhutnik/cloudvibes-service/internal/weather"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	// Retries around a failed weather lookup, on top of the first attempt.
	defaultRetries = 2
	searchLimit    = 8
)

type InsightsResponse struct {
	Success  bool               `json:"success"`
	Data     []insights.Insight `json:"data,omitempty"`
	Location *t.Location        `json:"location,omitempty"`
	Error    *t.CodeError       `json:"error,omitempty"`
}

type PreferencesResponse struct {
	Success bool               `json:"success"`
	Data    *cache.Preferences `json:"data,omitempty"`
	Error   *t.CodeError       `json:"error,omitempty"`
}

// PreferencesUpdate is the POST body for /preferences. Absent fields are left alone.
type PreferencesUpdate struct {
	Units              *cache.Units      `json:"units,omitempty"`
	LocationPermission *cache.Permission `json:"locationPermission,omitempty"`
	SavedLocation      *t.Location       `json:"savedLocation,omitempty"`
	LastSearch         *string           `json:"lastSearch,omitempty"`
}

// CodeError carries an HTTP status for request-level failures.
type CodeError struct {
	code int
	msg  string
}

func (c CodeError) Error() string {
	return c.msg
}

type ServiceOption func(*Service)

type Service struct {
	wc      *weather.Client
	lookup  cache.Lookup
	prefs   *cache.PreferenceStore
	retries int

	Logger *zap.SugaredLogger
}

func WeatherClientOption(wc *weather.Client) ServiceOption {
	return func(s *Service) {
		s.wc = wc
	}
}

// LookupOption replaces the coordinate lookup, typically with a cache.WeatherCache.
func LookupOption(l cache.Lookup) ServiceOption {
	return func(s *Service) {
		s.lookup = l
	}
}

func PreferencesOption(p *cache.PreferenceStore) ServiceOption {
	return func(s *Service) {
		s.prefs = p
	}
}

func RetriesOption(retries int) ServiceOption {
	return func(s *Service) {
		s.retries = retries
	}
}

func LoggerOption(l *zap.SugaredLogger) ServiceOption {
	return func(s *Service) {
		s.Logger = l
	}
}

func New(opts ...ServiceOption) *Service {
	s := &Service{retries: defaultRetries}
	for _, opt := range opts {
		opt(s)
	}

	if s.wc == nil {
		panic("Missing weather client in service")
	}
	if s.lookup == nil {
		s.lookup = s.wc
	}
	if s.Logger == nil {
		s.Logger = zap.NewNop().Sugar()
	}
	return s
}

// FromConfig wires the providers, the redis cache and the preference store.
func FromConfig(cfg config.Config, logger *zap.SugaredLogger) *Service {
	wc := NewWeatherClient(cfg, logger)
	opts := []ServiceOption{
		WeatherClientOption(wc),
		LoggerOption(logger),
	}

	if !cfg.DisableRedis {
		rc := redis.NewClient(&redis.Options{
			Addr: cfg.RedisAddress,
		})
		opts = append(opts,
			LookupOption(cache.NewWeatherCache(wc, cache.RedisOption(rc), cache.LoggerOption(logger))),
			PreferencesOption(cache.NewPreferenceStore(rc)),
		)
	}
	return New(opts...)
}

// NewWeatherClient builds the weather client from cfg. The primary provider is
// rate limited and only wired when its key is usable.
func NewWeatherClient(cfg config.Config, logger *zap.SugaredLogger) *weather.Client {
	return weather.New(
		weather.CredentialOption(cfg.OpenWeatherApiKey,
			ow.BaseUrlOption(cfg.OpenWeatherBaseUrl),
			ow.GeoUrlOption(cfg.OpenWeatherGeoUrl),
			ow.DoerOption(common.NewRateLimitedDoer(http.DefaultClient, cfg.OpenWeatherRPS, cfg.OpenWeatherBurst)),
		),
		weather.FallbackOption(openmeteo.New(openmeteo.BaseUrlOption(cfg.OpenMeteoBaseUrl))),
		weather.LoggerOption(logger),
	)
}

func (s *Service) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/weather", s.WeatherHandler)
	mux.HandleFunc("/search", s.SearchHandler)
	mux.HandleFunc("/insights", s.InsightsHandler)
	mux.HandleFunc("/preferences", s.PreferencesHandler)
	return mux
}

// Start serves until ctx is done.
func (s *Service) Start(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.Logger.Infow("listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "http server stopped")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func (s *Service) WeatherHandler(w http.ResponseWriter, r *http.Request) {
	ctx, logger := s.requestLogger(w, r)
	resp, err := s.Weather(ctx, r, logger)
	if err != nil {
		s.writeError(w, err, t.WeatherResponse{Error: &t.CodeError{Message: err.Error()}})
		return
	}
	s.writeResponse(w, statusFor(resp.Error), resp)
}

func (s *Service) SearchHandler(w http.ResponseWriter, r *http.Request) {
	ctx, logger := s.requestLogger(w, r)
	resp := s.Search(ctx, r, logger)
	s.writeResponse(w, statusFor(resp.Error), resp)
}

func (s *Service) InsightsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, logger := s.requestLogger(w, r)
	wr, err := s.Weather(ctx, r, logger)
	if err != nil {
		s.writeError(w, err, InsightsResponse{Error: &t.CodeError{Message: err.Error()}})
		return
	}
	if !wr.Success {
		s.writeResponse(w, statusFor(wr.Error), InsightsResponse{Error: wr.Error})
		return
	}
	s.writeResponse(w, http.StatusOK, InsightsResponse{
		Success:  true,
		Data:     insights.Generate(*wr.Data),
		Location: &wr.Data.Location,
	})
}

func (s *Service) PreferencesHandler(w http.ResponseWriter, r *http.Request) {
	ctx, logger := s.requestLogger(w, r)
	prefs, err := s.Preferences(ctx, r)
	if err != nil {
		if _, ok := err.(CodeError); !ok {
			logger.Errorw(err.Error(), "action", "Preferences")
			err = CodeError{code: http.StatusInternalServerError, msg: "Internal error updating preferences."}
		}
		s.writeError(w, err, PreferencesResponse{Error: &t.CodeError{Message: err.Error()}})
		return
	}
	s.writeResponse(w, http.StatusOK, PreferencesResponse{Success: true, Data: &prefs})
}

// Weather resolves the request to a lookup by city or by coordinates and retries
// failures that another attempt could fix.
func (s *Service) Weather(ctx context.Context, r *http.Request, logger *zap.SugaredLogger) (t.WeatherResponse, error) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	var lat, lon float64
	if city == "" {
		var err error
		lat, lon, err = parseCoordinates(r)
		if err != nil {
			return t.WeatherResponse{}, err
		}
	}

	var resp t.WeatherResponse
	attempts := common.Retry(ctx, s.retries+1, func() bool {
		if city != "" {
			resp = s.wc.GetCurrentWeatherByCity(ctx, city)
		} else {
			resp = s.lookup.GetCurrentWeatherByCoordinates(ctx, lat, lon)
		}
		return resp.Success || !retryable(resp.Error)
	})
	if attempts > 1 {
		logger.Warnw("weather lookup retried", "attempts", attempts, "success", resp.Success)
	}

	if resp.Success && resp.Data.Location.Name == openmeteo.PlaceholderName {
		s.nameLocation(&resp.Data.Location)
	}
	return resp, nil
}

// nameLocation fills in a placeholder location from the nearest known city.
func (s *Service) nameLocation(loc *t.Location) {
	info := locale.FromCoordinates(s.wc.Directory(), loc.Latitude, loc.Longitude, loc.Timezone)
	if info.CountryCode == "" {
		return
	}
	loc.Name = info.City
	loc.Country = info.CountryCode
	loc.Region = info.Region
}

func (s *Service) Search(ctx context.Context, r *http.Request, logger *zap.SugaredLogger) t.SearchResponse {
	q := r.URL.Query()
	query := q.Get("q")

	var resp t.SearchResponse
	if enhanced, _ := strconv.ParseBool(q.Get("enhanced")); enhanced {
		var locs []t.SearchLocation
		for _, c := range s.wc.Directory().SearchEnhanced(query, searchLimit) {
			locs = append(locs, cities.ToSearchLocation(c))
		}
		resp = t.SearchOK(locs)
	} else {
		resp = s.wc.SearchLocations(ctx, query)
	}

	if user := q.Get("user"); user != "" && s.prefs != nil && resp.Success {
		if _, err := s.prefs.SetLastSearch(ctx, user, query); err != nil {
			logger.Warnw("failed to record last search", "user", user, "error", err.Error())
		}
	}
	return resp
}

func (s *Service) Preferences(ctx context.Context, r *http.Request) (cache.Preferences, error) {
	if s.prefs == nil {
		return cache.Preferences{}, CodeError{code: http.StatusServiceUnavailable, msg: "Preferences are unavailable."}
	}
	user := r.URL.Query().Get("user")
	if user == "" {
		return cache.Preferences{}, CodeError{code: http.StatusBadRequest, msg: "Missing 'user' query parameter in request"}
	}

	switch r.Method {
	case http.MethodGet:
		return s.prefs.Get(ctx, user)
	case http.MethodDelete:
		id := r.URL.Query().Get("id")
		if id == "" {
			return cache.Preferences{}, CodeError{code: http.StatusBadRequest, msg: "Missing 'id' query parameter in request"}
		}
		return s.prefs.RemoveSavedLocation(ctx, user, id)
	case http.MethodPost:
		return s.updatePreferences(ctx, r, user)
	default:
		return cache.Preferences{}, CodeError{code: http.StatusMethodNotAllowed, msg: "Method not allowed"}
	}
}

func (s *Service) updatePreferences(ctx context.Context, r *http.Request, user string) (cache.Preferences, error) {
	var upd PreferencesUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		return cache.Preferences{}, CodeError{code: http.StatusBadRequest, msg: "Malformed preferences body"}
	}

	prefs, err := s.prefs.Get(ctx, user)
	if err != nil {
		return prefs, err
	}
	if upd.Units != nil {
		if prefs, err = s.prefs.SetUnits(ctx, user, *upd.Units); err != nil {
			return prefs, invalid(err)
		}
	}
	if upd.LocationPermission != nil {
		if prefs, err = s.prefs.SetLocationPermission(ctx, user, *upd.LocationPermission); err != nil {
			return prefs, invalid(err)
		}
	}
	if upd.SavedLocation != nil {
		if prefs, err = s.prefs.AddSavedLocation(ctx, user, *upd.SavedLocation); err != nil {
			return prefs, err
		}
	}
	if upd.LastSearch != nil {
		if prefs, err = s.prefs.SetLastSearch(ctx, user, *upd.LastSearch); err != nil {
			return prefs, err
		}
	}
	return prefs, nil
}

func invalid(err error) error {
	if errors.Cause(err) == cache.ErrInvalidPreference {
		return CodeError{code: http.StatusBadRequest, msg: err.Error()}
	}
	return err
}

func parseCoordinates(r *http.Request) (float64, float64, error) {
	q := r.URL.Query()
	if q.Get("lat") == "" || q.Get("lon") == "" {
		return 0, 0, CodeError{code: http.StatusBadRequest, msg: "Missing 'city' or 'lat' and 'lon' query parameters in request"}
	}
	lat, err := strconv.ParseFloat(q.Get("lat"), 64)
	if err != nil || lat < -90 || lat > 90 {
		return 0, 0, CodeError{code: http.StatusBadRequest, msg: "'lat' parameter must be a number between -90 and 90"}
	}
	lon, err := strconv.ParseFloat(q.Get("lon"), 64)
	if err != nil || lon < -180 || lon > 180 {
		return 0, 0, CodeError{code: http.StatusBadRequest, msg: "'lon' parameter must be a number between -180 and 180"}
	}
	return lat, lon, nil
}

// retryable is false for outcomes a second attempt cannot change.
func retryable(e *t.CodeError) bool {
	if e == nil {
		return true
	}
	switch e.Code {
	case t.CodeCityNotFound, t.CodeNoGeocoding:
		return false
	}
	return true
}

func statusFor(e *t.CodeError) int {
	if e == nil {
		return http.StatusOK
	}
	switch e.Code {
	case t.CodeCityNotFound:
		return http.StatusNotFound
	case t.CodeNoGeocoding:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// requestLogger tags the request with an id. The returned context carries the
// tagged logger for the weather client and cache.
func (s *Service) requestLogger(w http.ResponseWriter, r *http.Request) (context.Context, *zap.SugaredLogger) {
	reqID := r.Header.Get("X-Request-Id")
	if reqID == "" {
		reqID = uuid.NewString()
	}
	w.Header().Set("X-Request-Id", reqID)
	logger := s.Logger.With("requestId", reqID, "path", r.URL.Path)
	return common.WithLogger(r.Context(), logger), logger
}

func (s *Service) writeError(w http.ResponseWriter, err error, body interface{}) {
	codeErr, ok := err.(CodeError)
	if ok {
		s.writeResponse(w, codeErr.code, body)
	} else {
		w.WriteHeader(500)
		io.WriteString(w, "Internal server error")
	}
}

func (s *Service) writeResponse(w http.ResponseWriter, status int, body interface{}) {
	bodyBytes, _ := json.Marshal(body)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	io.WriteString(w, string(bodyBytes[:]))
}
