// Package duckduckgo implements web search against the DuckDuckGo HTML
// endpoint, which serves results without requiring JavaScript.
package duckduckgo

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unifero"
)

// DefaultEndpoint is the no-JavaScript search endpoint.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

const userAgent = "Mozilla/5.0 (compatible; unifero/1.0)"

// Ensure Searcher implements unifero.Searcher at compile time.
var _ unifero.Searcher = (*Searcher)(nil)

// Searcher queries DuckDuckGo's HTML interface and parses the result list.
type Searcher struct {
	client   *http.Client
	endpoint string
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithClient sets the shared HTTP client.
func WithClient(client *http.Client) Option {
	return func(s *Searcher) {
		s.client = client
	}
}

// WithEndpoint overrides the search endpoint. Used in tests.
func WithEndpoint(endpoint string) Option {
	return func(s *Searcher) {
		s.endpoint = endpoint
	}
}

// NewSearcher creates a new Searcher.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		endpoint: DefaultEndpoint,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.client == nil {
		s.client = http.DefaultClient
	}
	return s
}

// Search returns up to limit hits for the query, in provider order.
// Returns EUNAVAILABLE when the endpoint cannot be reached or responds
// with a non-200 status.
func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]unifero.SearchHit, error) {
	if limit <= 0 {
		return nil, nil
	}

	reqURL := s.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, unifero.Errorf(unifero.EINVALID, "invalid search query: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, unifero.Errorf(unifero.EUNAVAILABLE, "search provider unreachable: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, unifero.Errorf(unifero.EUNAVAILABLE, "search provider returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, unifero.Errorf(unifero.EUNAVAILABLE, "search provider returned unparseable HTML")
	}

	return parseResults(doc, limit), nil
}

// parseResults walks the result blocks in page order.
func parseResults(doc *goquery.Document, limit int) []unifero.SearchHit {
	seen := make(map[string]bool)
	var hits []unifero.SearchHit

	doc.Find(".result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok {
			return true
		}

		target := UnwrapRedirect(href)
		if target == "" || seen[target] {
			return true
		}
		seen[target] = true

		hits = append(hits, unifero.SearchHit{
			URL:     target,
			Title:   strings.TrimSpace(anchor.Text()),
			Snippet: strings.TrimSpace(sel.Find(".result__snippet").First().Text()),
		})
		return len(hits) < limit
	})

	// Older markup variants link results directly.
	if len(hits) < limit {
		doc.Find("a.result-link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
			href, ok := sel.Attr("href")
			if !ok {
				return true
			}
			target := UnwrapRedirect(href)
			if target == "" || seen[target] {
				return true
			}
			seen[target] = true
			hits = append(hits, unifero.SearchHit{
				URL:   target,
				Title: strings.TrimSpace(sel.Text()),
			})
			return len(hits) < limit
		})
	}

	return hits
}

// UnwrapRedirect resolves DuckDuckGo's redirect wrapper links of the form
// /l/?uddg=<encoded-url> to their targets. Direct http(s) links pass
// through; protocol-relative links get an https scheme; anything else
// (javascript:, fragments) yields "".
func UnwrapRedirect(href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") || strings.HasPrefix(strings.ToLower(href), "javascript:") {
		return ""
	}

	if strings.HasPrefix(href, "//") {
		href = "https:" + href
	}

	parsed, err := url.Parse(href)
	if err != nil {
		return ""
	}

	if target := parsed.Query().Get("uddg"); target != "" {
		return target
	}

	if parsed.Scheme == "http" || parsed.Scheme == "https" {
		return href
	}
	return ""
}
