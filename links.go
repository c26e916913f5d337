package unifero

// LinkExtractor discovers crawlable links in a fetched page.
type LinkExtractor interface {
	// ExtractLinks returns the normalized same-host links found in the
	// HTML, in document order, deduplicated by first occurrence.
	// Relative references are resolved against baseURL.
	ExtractLinks(html string, baseURL string) ([]string, error)
}
