package unifero

import "context"

// URLFrontier manages the crawl queue of discovered-but-not-yet-visited
// URLs with deduplication. URLs are normalized on Push; a URL is marked
// seen when pushed, before it is ever popped, so the same page can never
// be enqueued twice.
type URLFrontier interface {
	// Push adds a URL to the frontier in FIFO (discovery) order.
	// Returns false if the URL has already been seen or is invalid.
	Push(url string) bool

	// Pop returns the next URL in discovery order.
	// Returns false if the frontier is empty.
	Pop() (string, bool)

	// Len returns the number of URLs pending visit.
	Len() int

	// Seen returns true if the URL has been pushed at any point.
	Seen(url string) bool
}

// DomainLimiter provides per-domain rate limiting.
type DomainLimiter interface {
	// Wait blocks until the rate limit allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
