package unifero

import "context"

// SearchHit is one candidate result returned by a search provider.
type SearchHit struct {
	URL     string
	Title   string
	Snippet string
}

// Searcher turns a query string into an ordered list of candidate URLs.
// Implementations hide the provider's query and parse details.
type Searcher interface {
	// Search returns up to limit hits for the query, in provider order.
	// Returns EUNAVAILABLE when the provider cannot be reached at all.
	Search(ctx context.Context, query string, limit int) ([]SearchHit, error)
}
