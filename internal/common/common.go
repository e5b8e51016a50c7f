package common

import (
	"context"
	"io"
	"net/http"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Doer is the subset of *http.Client the upstream clients need.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Get performs a single GET attempt and returns the body of a 2xx response.
// Upstream clients do not retry; retry is left to the caller of the weather client.
func Get(ctx context.Context, doer Doer, reqUrl string, name string) ([]byte, error) {
	if doer == nil {
		doer = http.DefaultClient
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqUrl, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to build %v request", name)
	}

	resp, err := doer.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "error on %v api request", name)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.Errorf("error code %d returned from %v", resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrapf(err, "error reading %v response body", name)
	}
	return body, nil
}

// RateLimitedDoer waits on a token bucket before every request.
type RateLimitedDoer struct {
	doer    Doer
	limiter *rate.Limiter
}

// NewRateLimitedDoer allows rps requests per second with the given burst.
func NewRateLimitedDoer(doer Doer, rps float64, burst int) *RateLimitedDoer {
	if doer == nil {
		doer = http.DefaultClient
	}
	return &RateLimitedDoer{
		doer:    doer,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
	}
}

func (r *RateLimitedDoer) Do(req *http.Request) (*http.Response, error) {
	if err := r.limiter.Wait(req.Context()); err != nil {
		return nil, errors.Wrap(err, "rate limit wait canceled")
	}
	return r.doer.Do(req)
}

var _ Doer = (*RateLimitedDoer)(nil)

// Retry calls fn until it reports success or attempts run out.
// It returns the number of calls made.
func Retry(ctx context.Context, attempts int, fn func() bool) int {
	calls := 0
	for attempts > 0 {
		calls++
		if fn() {
			return calls
		}
		attempts--
		if ctx.Err() != nil {
			return calls
		}
	}
	return calls
}

type loggerKey struct{}

// WithLogger attaches a request-scoped logger to ctx.
func WithLogger(ctx context.Context, l *zap.SugaredLogger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

// LoggerFrom returns the logger attached by WithLogger, or fallback.
func LoggerFrom(ctx context.Context, fallback *zap.SugaredLogger) *zap.SugaredLogger {
	if l, ok := ctx.Value(loggerKey{}).(*zap.SugaredLogger); ok && l != nil {
		return l
	}
	return fallback
}
