// Package http provides the HTTP-based page fetcher, the sitemap probe,
// and the API server.
package http

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/fwojciec/unifero"
)

// DefaultAttemptTimeout is the default per-attempt timeout for HTTP requests.
const DefaultAttemptTimeout = 10 * time.Second

// DefaultUserAgent identifies the crawler to origin servers.
const DefaultUserAgent = "Mozilla/5.0 (compatible; unifero/1.0)"

// maxBodyBytes caps how much of a response body is read. Pages larger than
// this are truncated rather than rejected.
const maxBodyBytes = 10 << 20 // 10 MB

// Ensure Fetcher implements unifero.Fetcher at compile time.
var _ unifero.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves page bytes over HTTP with bounded retries.
//
// One logical Fetch issues up to len(delays)+1 attempts. Connection-level
// failures and HTTP 5xx responses are retried with backoff; HTTP 4xx and
// per-attempt timeouts are terminal. The whole operation is additionally
// bounded by an overall deadline so one slow page cannot stall a crawl.
type Fetcher struct {
	client    *http.Client
	timeout   time.Duration
	delays    []time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithClient sets the shared HTTP client (connection pool). The pool is a
// process-scoped resource; sharing one client across fetchers reuses
// connections but carries no correctness obligation.
func WithClient(client *http.Client) Option {
	return func(f *Fetcher) {
		f.client = client
	}
}

// WithTimeout sets the per-attempt timeout.
// Defaults to DefaultAttemptTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithRetryDelays sets the backoff schedule between attempts. The number of
// attempts is len(delays)+1. Useful for testing without real delays.
func WithRetryDelays(delays []time.Duration) Option {
	return func(f *Fetcher) {
		f.delays = delays
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout:   DefaultAttemptTimeout,
		delays:    DefaultRetryDelays(),
		userAgent: DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.client == nil {
		f.client = &http.Client{}
	}
	return f
}

// Budget returns the overall wall-clock bound for one logical fetch:
// attempt timeout times the attempt count, plus the total backoff.
func (f *Fetcher) Budget() time.Duration {
	budget := f.timeout * time.Duration(len(f.delays)+1)
	for _, d := range f.delays {
		budget += d
	}
	return budget
}

// Fetch issues one logical GET with retries, following redirects.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*unifero.FetchResult, error) {
	ctx, cancel := context.WithTimeout(ctx, f.Budget())
	defer cancel()

	var lastErr error
	for attempt := range len(f.delays) + 1 {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, unifero.Errorf(unifero.ETIMEOUT, "timeout after %ds", int(f.Budget().Seconds()))
			case <-time.After(f.delays[attempt-1]):
			}
		}

		result, outcome, err := f.attempt(ctx, url)
		switch outcome {
		case outcomeSuccess:
			return result, nil
		case outcomeTerminal:
			return nil, err
		case outcomeRetryable:
			lastErr = err
		}
	}

	return nil, lastErr
}

// attempt performs a single GET and classifies its result.
func (f *Fetcher) attempt(ctx context.Context, url string) (*unifero.FetchResult, attemptOutcome, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(attemptCtx, http.MethodGet, url, nil)
	if err != nil {
		return nil, outcomeTerminal, unifero.Errorf(unifero.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, outcomeTerminal, unifero.Errorf(unifero.ETIMEOUT, "timeout after %ds", int(f.timeout.Seconds()))
		}
		return nil, outcomeRetryable, unifero.Errorf(unifero.ENETWORK, "network error: %v", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 500:
		return nil, outcomeRetryable, unifero.Errorf(unifero.EHTTP, "HTTP %d", resp.StatusCode)
	case resp.StatusCode >= 300:
		// Redirects have already been followed by the client; anything
		// still outside the 2xx range is terminal.
		return nil, outcomeTerminal, unifero.Errorf(unifero.EHTTP, "HTTP %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		if isTimeout(err) {
			return nil, outcomeTerminal, unifero.Errorf(unifero.ETIMEOUT, "timeout after %ds", int(f.timeout.Seconds()))
		}
		return nil, outcomeRetryable, unifero.Errorf(unifero.ENETWORK, "network error: %v", err)
	}

	return &unifero.FetchResult{
		FinalURL:    resp.Request.URL.String(),
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, outcomeSuccess, nil
}

// Close releases resources. The connection pool may be shared, so only
// idle connections are dropped.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

// isTimeout reports whether an error represents an exhausted deadline.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
