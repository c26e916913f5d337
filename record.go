package unifero

import "context"

// Limit and cap defaults. Limits outside [1, MaxLimit] are clamped,
// not rejected.
const (
	DefaultLimit      = 5
	MaxLimit          = 10
	DefaultSnippetLen = 300
	DefaultContentLen = 2000
)

// ClampLimit normalizes a requested result limit: non-positive values fall
// back to DefaultLimit and values above MaxLimit are capped.
func ClampLimit(limit int) int {
	if limit <= 0 {
		return DefaultLimit
	}
	if limit > MaxLimit {
		return MaxLimit
	}
	return limit
}

// PageRecord is the externally visible per-page result. Its JSON shape is
// the compatibility-bearing wire format.
//
// Exactly one of two states holds: Fetched is true (Title/Content may still
// be absent if extraction yielded nothing), or Fetched is false and Error
// carries a short human-readable cause.
type PageRecord struct {
	URL        string `json:"url"`
	Title      string `json:"title,omitempty"`
	Snippet    string `json:"snippet,omitempty"` // search mode only
	Content    string `json:"content,omitempty"` // present iff content was requested and extracted
	FaviconURL string `json:"favicon,omitempty"`
	OGImageURL string `json:"og_image,omitempty"`
	Fetched    bool   `json:"fetched"`
	Error      string `json:"error,omitempty"`
}

// SearchRequest describes a search-mode invocation.
type SearchRequest struct {
	Query      string `json:"query"`
	Limit      int    `json:"limit"`
	SnippetLen int    `json:"snippet_len"`
	ContentLen int    `json:"content_len"`
}

// Validate returns an error if the request cannot be executed.
func (r *SearchRequest) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "'query' is required for search mode")
	}
	return nil
}

// Normalize applies defaults and clamps limits in place.
func (r *SearchRequest) Normalize() {
	r.Limit = ClampLimit(r.Limit)
	if r.SnippetLen <= 0 {
		r.SnippetLen = DefaultSnippetLen
	}
	if r.ContentLen <= 0 {
		r.ContentLen = DefaultContentLen
	}
}

// DocsRequest describes a docs crawl invocation.
type DocsRequest struct {
	URL            string `json:"url"`
	Limit          int    `json:"limit"`
	IncludeContent bool   `json:"include_content"`
	ContentLen     int    `json:"content_limit"`
}

// Validate returns an error if the request cannot be executed.
func (r *DocsRequest) Validate() error {
	if r.URL == "" {
		return Errorf(EINVALID, "'url' is required for docs mode")
	}
	if _, err := NormalizeURL(r.URL); err != nil {
		return Errorf(EINVALID, "invalid base URL: %v", err)
	}
	return nil
}

// Normalize applies defaults and clamps limits in place.
func (r *DocsRequest) Normalize() {
	r.Limit = ClampLimit(r.Limit)
	if r.ContentLen <= 0 {
		r.ContentLen = DefaultContentLen
	}
}

// SearchResponse is the search-mode envelope.
type SearchResponse struct {
	Mode    string        `json:"mode"`
	Query   string        `json:"query"`
	Results []*PageRecord `json:"results"`
}

// DocsResponse is the docs-mode envelope.
type DocsResponse struct {
	Mode    string        `json:"mode"`
	BaseURL string        `json:"base_url"`
	Results []*PageRecord `json:"results"`
}

// Service is the engine's caller-facing surface. Both calls are synchronous
// and block until the complete result list is assembled or the budget is
// exhausted. Per-page failures do not fail the call; they surface as records
// with Fetched=false (partial-success semantics).
type Service interface {
	// Search runs a web search and returns a cleaned rendition of each hit.
	// Returns EINVALID for a missing query, EUNAVAILABLE when the search
	// provider yields nothing at all.
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)

	// Docs crawls a bounded set of same-site pages starting at req.URL.
	// The first result always corresponds to the requested base URL.
	Docs(ctx context.Context, req *DocsRequest) (*DocsResponse, error)
}
