package unifero

import "context"

// SitemapService discovers same-site URLs from a site's sitemap. The crawl
// engine consults it only when a base page yields no same-host links, so a
// single-page entry point can still seed a useful frontier.
type SitemapService interface {
	// DiscoverURLs returns URLs declared in the site's sitemap, in
	// document order. It checks robots.txt for sitemap directives, then
	// falls back to /sitemap.xml. Returns an empty slice (not an error)
	// when the site has no sitemap.
	DiscoverURLs(ctx context.Context, baseURL string) ([]string, error)
}
