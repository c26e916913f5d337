package crawl

import (
	"sync"

	"github.com/fwojciec/unifero"
	"github.com/fwojciec/unifero/bloom"
)

// Frontier sizing. The Bloom filter is a fast pre-filter; an exact set
// confirms positives so a false positive can never drop a page.
const (
	frontierExpectedURLs      = 10000
	frontierFalsePositiveRate = 0.01
)

// Compile-time interface verification.
var _ unifero.URLFrontier = (*Frontier)(nil)

// Frontier is an in-memory FIFO crawl queue with deduplication. URLs come
// out in the order they were pushed, which makes a crawl breadth-first by
// discovery order. It is safe for concurrent use by multiple goroutines,
// though a single crawl owns its frontier exclusively.
type Frontier struct {
	mu     sync.Mutex
	filter *bloom.Filter
	seen   map[string]bool
	queue  []string
}

// NewFrontier creates an empty Frontier.
func NewFrontier() *Frontier {
	return &Frontier{
		filter: bloom.NewFilter(frontierExpectedURLs, frontierFalsePositiveRate),
		seen:   make(map[string]bool),
	}
}

// Push adds a URL to the back of the queue. URLs are normalized first, so
// variants differing only in fragment, case, default port or trailing slash
// count as one page. Returns false for duplicates and unparseable URLs.
func (f *Frontier) Push(rawURL string) bool {
	normalized, err := unifero.NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if f.filter.Test(normalized) && f.seen[normalized] {
		return false
	}
	f.filter.Add(normalized)
	f.seen[normalized] = true
	f.queue = append(f.queue, normalized)
	return true
}

// Pop returns the next URL in discovery order.
// The bool result is false if the frontier is empty.
func (f *Frontier) Pop() (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if len(f.queue) == 0 {
		return "", false
	}
	next := f.queue[0]
	f.queue = f.queue[1:]
	return next, true
}

// Len returns the number of URLs pending visit.
func (f *Frontier) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.queue)
}

// Seen returns true if the URL has been pushed at any point, including
// URLs already popped and visited.
func (f *Frontier) Seen(rawURL string) bool {
	normalized, err := unifero.NormalizeURL(rawURL)
	if err != nil {
		return false
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	return f.filter.Test(normalized) && f.seen[normalized]
}
