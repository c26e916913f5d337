package unifero

import "context"

// FetchResult holds a successfully fetched page.
type FetchResult struct {
	// FinalURL is the URL after following redirects.
	FinalURL string

	// StatusCode is the terminal HTTP status code (always 2xx here;
	// non-2xx responses surface as errors instead).
	StatusCode int

	// ContentType is the value of the Content-Type response header.
	ContentType string

	// Body is the raw response body.
	Body []byte
}

// Fetcher retrieves raw page bytes from URLs.
//
// Failed fetches return an *Error whose code classifies the cause:
// ETIMEOUT for exhausted deadlines, ENETWORK for connection-level failures,
// EHTTP for terminal non-2xx responses. Retry behavior is an implementation
// concern; callers see only the final outcome.
type Fetcher interface {
	// Fetch issues one logical GET, following redirects.
	// The context bounds the whole operation including any retries.
	Fetch(ctx context.Context, url string) (*FetchResult, error)

	// Close releases the underlying connection pool.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
