// Package crawl provides the content-extraction and bounded-crawl engine:
// search-mode orchestration and breadth-first same-site crawling, built on
// the domain interfaces for fetching, extraction and link discovery.
package crawl

import (
	"context"
	"net/url"

	"github.com/fwojciec/unifero"
)

// Ensure Engine implements unifero.Service at compile time.
var _ unifero.Service = (*Engine)(nil)

// Engine coordinates fetching, extraction and link discovery for both
// request modes. Pages are processed one at a time, in frontier order;
// the caller blocks until the complete result list is assembled. Each
// invocation owns its crawl state; nothing is shared across invocations
// except the injected collaborators, which are safe for concurrent reuse.
type Engine struct {
	Fetcher   unifero.Fetcher
	Extractor unifero.Extractor
	Fallback  unifero.Extractor // optional, tried when Extractor comes up empty
	Converter unifero.Converter
	Links     unifero.LinkExtractor
	Searcher  unifero.Searcher
	Sitemaps  unifero.SitemapService // optional frontier fallback
	Limiter   unifero.DomainLimiter  // optional politeness pacing
}

// Search runs a web search and returns a cleaned rendition of each hit.
// Per-hit fetch failures surface as records with Fetched=false; the call
// itself fails only for invalid input or a fully unavailable provider.
func (e *Engine) Search(ctx context.Context, req *unifero.SearchRequest) (*unifero.SearchResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r := *req
	r.Normalize()

	hits, err := e.Searcher.Search(ctx, r.Query, r.Limit)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		return nil, unifero.Errorf(unifero.EUNAVAILABLE, "no search results obtained for %q", r.Query)
	}

	results := make([]*unifero.PageRecord, 0, len(hits))
	for _, hit := range hits {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		results = append(results, e.searchRecord(ctx, hit, &r))
	}

	return &unifero.SearchResponse{
		Mode:    "search",
		Query:   r.Query,
		Results: results,
	}, nil
}

// searchRecord fetches and extracts one search hit. Provider metadata
// (title, snippet) survives even when the fetch fails.
func (e *Engine) searchRecord(ctx context.Context, hit unifero.SearchHit, req *unifero.SearchRequest) *unifero.PageRecord {
	record := &unifero.PageRecord{
		URL:     hit.URL,
		Title:   hit.Title,
		Snippet: truncateRunes(hit.Snippet, req.SnippetLen),
	}

	e.wait(ctx, hit.URL)

	fetched, err := e.Fetcher.Fetch(ctx, hit.URL)
	if err != nil {
		record.Error = unifero.ErrorMessage(err)
		return record
	}

	content, err := e.pageContent(fetched, req.ContentLen)
	if err != nil {
		record.Error = unifero.ErrorMessage(err)
		return record
	}

	record.Fetched = true
	record.Content = content.Content
	record.FaviconURL = content.FaviconURL
	record.OGImageURL = content.OGImageURL
	if content.Title != "" {
		record.Title = content.Title
	}
	if record.Snippet == "" {
		record.Snippet = truncateRunes(content.Content, req.SnippetLen)
	}
	return record
}

// Docs crawls a bounded set of same-site pages starting at req.URL.
//
// The crawl is breadth-first by discovery order: links are enqueued as
// they appear in each document. A failed page still occupies a result
// slot, so the crawl can never expand past its budget chasing failures.
// The first result always corresponds to the requested base URL.
func (e *Engine) Docs(ctx context.Context, req *unifero.DocsRequest) (*unifero.DocsResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r := *req
	r.Normalize()

	baseNorm, err := unifero.NormalizeURL(r.URL)
	if err != nil {
		return nil, err
	}
	base, err := url.Parse(baseNorm)
	if err != nil {
		return nil, unifero.Errorf(unifero.EINVALID, "invalid base URL: %v", err)
	}

	frontier := NewFrontier()
	frontier.Push(baseNorm)

	var results []*unifero.PageRecord
	budget := r.Limit
	sitemapTried := false

	for budget > 0 {
		pageURL, ok := frontier.Pop()
		if !ok {
			// The frontier ran dry with budget to spare; see if a
			// sitemap can seed more same-host pages.
			if sitemapTried || !e.discoverFromSitemap(ctx, baseNorm, base, frontier) {
				break
			}
			sitemapTried = true
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, links := e.visit(ctx, pageURL, &r)
		results = append(results, record)
		budget--

		for _, link := range links {
			if unifero.SameHost(base, link) {
				frontier.Push(link)
			}
		}
	}

	results = baseFirst(ctx, e, results, baseNorm, &r)

	return &unifero.DocsResponse{
		Mode:    "docs",
		BaseURL: r.URL,
		Results: results,
	}, nil
}

// visit fetches one page and returns its record plus any discovered links.
// The record's URL is the queued (pre-redirect) URL, so crawl ordering and
// the base-first invariant are stated in terms the caller asked about.
func (e *Engine) visit(ctx context.Context, pageURL string, req *unifero.DocsRequest) (*unifero.PageRecord, []string) {
	e.wait(ctx, pageURL)

	fetched, err := e.Fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return &unifero.PageRecord{URL: pageURL, Error: unifero.ErrorMessage(err)}, nil
	}

	links, err := e.Links.ExtractLinks(string(fetched.Body), fetched.FinalURL)
	if err != nil {
		links = nil // an unparseable page contributes no links
	}

	record := &unifero.PageRecord{URL: pageURL, Fetched: true}
	if !req.IncludeContent {
		return record, links
	}

	content, err := e.pageContent(fetched, req.ContentLen)
	if err != nil {
		return &unifero.PageRecord{URL: pageURL, Error: unifero.ErrorMessage(err)}, links
	}

	record.Title = content.Title
	record.Content = content.Content
	record.FaviconURL = content.FaviconURL
	record.OGImageURL = content.OGImageURL
	return record, links
}

// discoverFromSitemap pushes same-host sitemap URLs onto the frontier.
// Returns true if it added at least one new URL.
func (e *Engine) discoverFromSitemap(ctx context.Context, baseNorm string, base *url.URL, frontier *Frontier) bool {
	if e.Sitemaps == nil {
		return false
	}
	urls, err := e.Sitemaps.DiscoverURLs(ctx, baseNorm)
	if err != nil {
		return false
	}

	added := false
	for _, u := range urls {
		if unifero.SameHost(base, u) && frontier.Push(u) {
			added = true
		}
	}
	return added
}

// baseFirst enforces the results[0] invariant: the first record must
// normalize-equal the requested base URL. The crawl seeds its frontier
// with the base, so this usually holds already; the repair path covers
// the remaining cases by moving or force-inserting a base record,
// trimming the tail to stay within the limit.
func baseFirst(ctx context.Context, e *Engine, results []*unifero.PageRecord, baseNorm string, req *unifero.DocsRequest) []*unifero.PageRecord {
	if len(results) > 0 && unifero.NormalizeEqual(results[0].URL, baseNorm) {
		return results
	}

	for i, record := range results {
		if unifero.NormalizeEqual(record.URL, baseNorm) {
			moved := results[i]
			results = append(results[:i], results[i+1:]...)
			return append([]*unifero.PageRecord{moved}, results...)
		}
	}

	record, _ := e.visit(ctx, baseNorm, req)
	results = append([]*unifero.PageRecord{record}, results...)
	if len(results) > req.Limit {
		results = results[:req.Limit]
	}
	return results
}

// wait applies per-domain pacing when a limiter is configured.
func (e *Engine) wait(ctx context.Context, rawURL string) {
	if e.Limiter == nil {
		return
	}
	if u, err := url.Parse(rawURL); err == nil {
		_ = e.Limiter.Wait(ctx, u.Host)
	}
}

// truncateRunes caps a string at max characters.
func truncateRunes(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
