package unifero

// ExtractResult holds the extracted content and metadata from an HTML page.
type ExtractResult struct {
	// Title is the page title: the first <title> element if present,
	// else the first heading. Empty when neither exists.
	Title string

	// ContentHTML is the main content as clean HTML.
	// Boilerplate (nav, header, footer, sidebar, scripts) has been removed.
	ContentHTML string

	// FaviconURL is the resolved URL of the page icon, if declared.
	FaviconURL string

	// OGImageURL is the resolved Open Graph (or twitter:image) preview
	// image URL, if declared. Never fabricated.
	OGImageURL string
}

// Extractor extracts main content and metadata from HTML pages.
//
// Extraction is a pure function of its inputs: identical bytes and base URL
// produce identical results. The baseURL (typically the post-redirect URL)
// is used to resolve relative favicon and image references.
type Extractor interface {
	// Extract processes raw HTML and returns the main content.
	// An unparseable document yields an EPARSE error; a parsed document
	// with no selectable content yields an empty ContentHTML, not an error.
	Extract(html string, baseURL string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	// Fenced code blocks are preserved with best-effort language tags.
	Convert(html string) (string, error)
}

// PageContent is the fully assembled textual rendition of a page:
// extracted, converted to Markdown, and truncated to the caller's cap.
type PageContent struct {
	Title      string
	Content    string // Markdown; length <= the requested cap
	FaviconURL string
	OGImageURL string
}
