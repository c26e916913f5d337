// Package trafilatura provides a readability-style fallback extractor used
// when selector-based extraction finds no usable content.
package trafilatura

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/fwojciec/unifero"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements unifero.Extractor at compile time.
var _ unifero.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The baseURL
// helps trafilatura resolve relative references and fill its metadata.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*unifero.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, unifero.Errorf(unifero.EPARSE, "failed to parse page HTML")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}
	if parsed, err := url.Parse(baseURL); err == nil && parsed.IsAbs() {
		opts.OriginalURL = parsed
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, unifero.Errorf(unifero.EPARSE, "failed to parse page HTML")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &unifero.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
		OGImageURL:  result.Metadata.Image,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}
