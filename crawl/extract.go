package crawl

import (
	"strings"

	"github.com/fwojciec/unifero"
	"github.com/fwojciec/unifero/htmltomarkdown"
)

// minContentChars is the threshold below which extracted content counts as
// unusable. Pages that parse but yield less than this are almost always
// client-rendered shells.
const minContentChars = 80

// pageContent runs the full extraction pipeline on fetched bytes:
// select main content, convert to Markdown, promote bare section labels to
// headings, and truncate to the cap without breaking a code fence.
//
// When the primary extractor yields too little, the fallback extractor is
// tried before giving up with EEMPTY.
func (e *Engine) pageContent(fetched *unifero.FetchResult, contentCap int) (*unifero.PageContent, error) {
	rawHTML := string(fetched.Body)

	result, err := e.Extractor.Extract(rawHTML, fetched.FinalURL)
	if err != nil {
		return nil, err
	}

	markdown, err := e.toMarkdown(result.ContentHTML)
	if err != nil {
		return nil, err
	}

	if countChars(markdown) < minContentChars && e.Fallback != nil {
		if fallback, err := e.Fallback.Extract(rawHTML, fetched.FinalURL); err == nil {
			if md, err := e.toMarkdown(fallback.ContentHTML); err == nil && countChars(md) > countChars(markdown) {
				markdown = md
				if result.Title == "" {
					result.Title = fallback.Title
				}
				if result.OGImageURL == "" {
					result.OGImageURL = fallback.OGImageURL
				}
			}
		}
	}

	if countChars(markdown) < minContentChars {
		return nil, unifero.Errorf(unifero.EEMPTY, "no usable content found - page may be client-rendered")
	}

	return &unifero.PageContent{
		Title:      result.Title,
		Content:    htmltomarkdown.Truncate(markdown, contentCap),
		FaviconURL: result.FaviconURL,
		OGImageURL: result.OGImageURL,
	}, nil
}

// toMarkdown converts extracted content HTML into cleaned-up Markdown.
// Empty input converts to the empty string, not an error.
func (e *Engine) toMarkdown(contentHTML string) (string, error) {
	if strings.TrimSpace(contentHTML) == "" {
		return "", nil
	}
	markdown, err := e.Converter.Convert(contentHTML)
	if err != nil {
		return "", unifero.Errorf(unifero.EPARSE, "failed to parse page HTML")
	}
	return htmltomarkdown.PromoteHeadings(strings.TrimSpace(markdown)), nil
}

func countChars(s string) int {
	return len([]rune(s))
}
