package mock

import "github.com/fwojciec/unifero"

var _ unifero.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of unifero.Extractor.
type Extractor struct {
	ExtractFn func(html string, baseURL string) (*unifero.ExtractResult, error)
}

func (e *Extractor) Extract(html string, baseURL string) (*unifero.ExtractResult, error) {
	return e.ExtractFn(html, baseURL)
}

var _ unifero.Converter = (*Converter)(nil)

// Converter is a mock implementation of unifero.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

var _ unifero.LinkExtractor = (*LinkExtractor)(nil)

// LinkExtractor is a mock implementation of unifero.LinkExtractor.
type LinkExtractor struct {
	ExtractLinksFn func(html string, baseURL string) ([]string, error)
}

func (l *LinkExtractor) ExtractLinks(html string, baseURL string) ([]string, error) {
	return l.ExtractLinksFn(html, baseURL)
}
