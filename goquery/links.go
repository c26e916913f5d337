package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/unifero"
)

// Ensure LinkExtractor implements unifero.LinkExtractor at compile time.
var _ unifero.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor discovers same-host links in document order. Document order
// is what makes the crawl breadth-first by discovery: links are enqueued in
// the order a reader would encounter them.
type LinkExtractor struct{}

// NewLinkExtractor creates a new LinkExtractor.
func NewLinkExtractor() *LinkExtractor {
	return &LinkExtractor{}
}

// ExtractLinks parses HTML and returns normalized same-host links in
// document order, deduplicated by first occurrence. Links on other hosts
// (including subdomains) are dropped.
func (e *LinkExtractor) ExtractLinks(rawHTML string, baseURL string) ([]string, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, unifero.Errorf(unifero.EINVALID, "invalid base URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, unifero.Errorf(unifero.EPARSE, "failed to parse page HTML")
	}

	seen := make(map[string]bool)
	var links []string

	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, ok := sel.Attr("href")
		if !ok || href == "" {
			return
		}

		resolved := resolveRef(base, href)
		if resolved == "" {
			return
		}
		if !unifero.SameHost(base, resolved) {
			return
		}

		normalized, err := unifero.NormalizeURL(resolved)
		if err != nil {
			return
		}
		if !seen[normalized] {
			seen[normalized] = true
			links = append(links, normalized)
		}
	})

	return links, nil
}
