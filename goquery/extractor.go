// Package goquery provides CSS-selector based implementations of content
// extraction and link discovery.
package goquery

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"github.com/dyatlov/go-opengraph/opengraph"
	"github.com/fwojciec/unifero"
	"golang.org/x/net/html"
)

// Ensure Extractor implements unifero.Extractor at compile time.
var _ unifero.Extractor = (*Extractor)(nil)

// boilerplateSelector matches subtrees that never contribute page content.
const boilerplateSelector = "script, style, noscript, svg, nav, header, footer, aside"

// contentSelectors are tried in order when the document has no <article>.
// First match wins, which keeps selection deterministic for a fixed input.
var contentSelectors = []string{
	"main",
	"[role=main]",
	"#content",
	".content",
	".documentation",
	".markdown-body",
}

// Extractor extracts main content and metadata from HTML using CSS
// selectors. It is a pure function of its inputs: the document is re-parsed
// on every call and nothing is shared between calls.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content plus metadata.
//
// Main-content selection prefers the first <article>; else the first match
// among a fixed list of common content containers; else the <body> with
// boilerplate landmarks removed. Boilerplate may leak through on poorly
// structured pages; that is a stated limitation of the heuristic.
func (e *Extractor) Extract(rawHTML string, baseURL string) (*unifero.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, unifero.Errorf(unifero.EPARSE, "failed to parse page HTML")
	}

	base, err := url.Parse(baseURL)
	if err != nil {
		base = nil
	}

	result := &unifero.ExtractResult{
		Title:      extractTitle(doc),
		FaviconURL: extractFavicon(doc, base),
		OGImageURL: extractOGImage(doc, rawHTML, base),
	}

	content := selectContent(doc)
	if content == nil {
		return result, nil
	}

	content.Find(boilerplateSelector).Remove()
	normalizeCodeBlocks(content)
	dropDuplicateInlineCode(content)

	contentHTML, err := renderSelection(content)
	if err != nil {
		return nil, unifero.Errorf(unifero.EPARSE, "failed to render extracted content")
	}
	result.ContentHTML = contentHTML

	return result, nil
}

// extractTitle returns the first <title> element's text, falling back to
// the first heading.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return collapseWhitespace(title)
	}
	return collapseWhitespace(strings.TrimSpace(doc.Find("h1, h2, h3, h4, h5, h6").First().Text()))
}

// extractFavicon returns the resolved URL of the first <link> whose rel
// names an icon.
func extractFavicon(doc *goquery.Document, base *url.URL) string {
	var favicon string
	doc.Find("link[href]").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, ok := sel.Attr("rel")
		if !ok || !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}
		href, _ := sel.Attr("href")
		if resolved := resolveRef(base, href); resolved != "" {
			favicon = resolved
			return false
		}
		return true
	})
	return favicon
}

// extractOGImage returns the Open Graph preview image, with twitter:image
// as fallback. Never fabricated: absent metadata yields an empty string.
func extractOGImage(doc *goquery.Document, rawHTML string, base *url.URL) string {
	og := opengraph.NewOpenGraph()
	if err := og.ProcessHTML(strings.NewReader(rawHTML)); err == nil && len(og.Images) > 0 {
		img := og.Images[0]
		src := img.SecureURL
		if src == "" {
			src = img.URL
		}
		if resolved := resolveRef(base, src); resolved != "" {
			return resolved
		}
	}

	var image string
	doc.Find(`meta[property="twitter:image"], meta[name="twitter:image"]`).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		content, ok := sel.Attr("content")
		if !ok {
			return true
		}
		if resolved := resolveRef(base, content); resolved != "" {
			image = resolved
			return false
		}
		return true
	})
	return image
}

// selectContent picks the main-content container.
func selectContent(doc *goquery.Document) *goquery.Selection {
	if article := doc.Find("article").First(); article.Length() > 0 {
		return article
	}
	for _, selector := range contentSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			return sel
		}
	}
	if body := doc.Find("body").First(); body.Length() > 0 {
		return body
	}
	return nil
}

// normalizeCodeBlocks copies language-* class hints from <pre> elements to
// their <code> children so the Markdown converter can tag fences, and wraps
// bare <pre> text in a <code> element.
func normalizeCodeBlocks(sel *goquery.Selection) {
	sel.Find("pre").Each(func(_ int, pre *goquery.Selection) {
		lang := languageClass(pre)

		code := pre.ChildrenFiltered("code")
		if code.Length() == 0 {
			inner, err := pre.Html()
			if err != nil {
				return
			}
			pre.SetHtml("<code>" + inner + "</code>")
			code = pre.ChildrenFiltered("code")
		}

		if lang != "" && languageClass(code) == "" {
			code.AddClass("language-" + lang)
		}
	})
}

// languageClass returns the language named by a class attribute following
// the language-xxx (or lang-xxx) convention, or "".
func languageClass(sel *goquery.Selection) string {
	class, ok := sel.Attr("class")
	if !ok {
		return ""
	}
	for _, c := range strings.Fields(class) {
		if lang, ok := strings.CutPrefix(c, "language-"); ok {
			return lang
		}
		if lang, ok := strings.CutPrefix(c, "lang-"); ok {
			return lang
		}
	}
	return ""
}

// dropDuplicateInlineCode removes <code> elements outside <pre> whose text
// duplicates an existing code block, so the same snippet is not emitted
// twice. Comparison is by digest of the whitespace-normalized text.
func dropDuplicateInlineCode(sel *goquery.Selection) {
	seen := make(map[uint64]bool)
	sel.Find("pre code").Each(func(_ int, code *goquery.Selection) {
		seen[codeDigest(code.Text())] = true
	})

	sel.Find("code").Each(func(_ int, code *goquery.Selection) {
		if code.ParentsFiltered("pre").Length() > 0 {
			return
		}
		if seen[codeDigest(code.Text())] {
			code.Remove()
		}
	})
}

func codeDigest(text string) uint64 {
	return xxhash.Sum64String(collapseWhitespace(strings.TrimSpace(text)))
}

// renderSelection converts the selected nodes back to an HTML string.
func renderSelection(sel *goquery.Selection) (string, error) {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", err
		}
	}
	return buf.String(), nil
}

// collapseWhitespace normalizes runs of whitespace to single spaces.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// resolveRef resolves href against base, handling protocol-relative URLs.
// Returns "" for javascript:, mailto: and fragment-only links.
func resolveRef(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return ""
	}
	lower := strings.ToLower(href)
	if strings.HasPrefix(lower, "javascript:") || strings.HasPrefix(lower, "mailto:") || strings.HasPrefix(lower, "tel:") || strings.HasPrefix(lower, "data:") {
		return ""
	}

	if strings.HasPrefix(href, "//") {
		scheme := "https"
		if base != nil && base.Scheme != "" {
			scheme = base.Scheme
		}
		href = scheme + ":" + href
	}

	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	if ref.IsAbs() {
		if ref.Scheme != "http" && ref.Scheme != "https" {
			return ""
		}
		return ref.String()
	}
	if base == nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
