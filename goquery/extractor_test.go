package goquery_test

import (
	"testing"

	"github.com/fwojciec/unifero/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractor_Extract_PrefersArticle(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><head><title>Guide</title></head><body>
<nav>site nav</nav>
<article><h1>Getting Started</h1><p>Install the tool.</p></article>
<div id="content">secondary container</div>
<footer>copyright</footer>
</body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com/docs")

	require.NoError(t, err)
	assert.Equal(t, "Guide", result.Title)
	assert.Contains(t, result.ContentHTML, "Getting Started")
	assert.Contains(t, result.ContentHTML, "Install the tool.")
	assert.NotContains(t, result.ContentHTML, "site nav")
	assert.NotContains(t, result.ContentHTML, "secondary container")
}

func TestExtractor_Extract_ContentSelectorFallback(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body>
<div class="content"><p>class container</p></div>
<main><p>main container</p></main>
</body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	// main precedes .content in the selector order regardless of document position
	assert.Contains(t, result.ContentHTML, "main container")
	assert.NotContains(t, result.ContentHTML, "class container")
}

func TestExtractor_Extract_BodyFallbackStripsBoilerplate(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body>
<header>top bar</header>
<nav>menu</nav>
<p>the actual text</p>
<script>var x = 1;</script>
<footer>bottom</footer>
</body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "the actual text")
	assert.NotContains(t, result.ContentHTML, "top bar")
	assert.NotContains(t, result.ContentHTML, "menu")
	assert.NotContains(t, result.ContentHTML, "var x = 1")
	assert.NotContains(t, result.ContentHTML, "bottom")
}

func TestExtractor_Extract_TitleFallsBackToHeading(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body><article><h1>Only   Heading</h1><p>text</p></article></body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	assert.Equal(t, "Only Heading", result.Title)
}

func TestExtractor_Extract_Favicon(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><head>
<link rel="stylesheet" href="/style.css">
<link rel="shortcut icon" href="/favicon.ico">
</head><body><p>x</p></body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com/docs/page")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com/favicon.ico", result.FaviconURL)
}

func TestExtractor_Extract_OGImage(t *testing.T) {
	t.Parallel()

	t.Run("opengraph meta", func(t *testing.T) {
		t.Parallel()
		rawHTML := `<html><head>
<meta property="og:image" content="https://cdn.example.com/preview.png">
</head><body><p>x</p></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(rawHTML, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/preview.png", result.OGImageURL)
	})

	t.Run("twitter fallback", func(t *testing.T) {
		t.Parallel()
		rawHTML := `<html><head>
<meta name="twitter:image" content="/img/card.png">
</head><body><p>x</p></body></html>`

		e := goquery.NewExtractor()
		result, err := e.Extract(rawHTML, "https://example.com")

		require.NoError(t, err)
		assert.Equal(t, "https://example.com/img/card.png", result.OGImageURL)
	})

	t.Run("absent yields empty", func(t *testing.T) {
		t.Parallel()
		e := goquery.NewExtractor()
		result, err := e.Extract("<html><body><p>x</p></body></html>", "https://example.com")

		require.NoError(t, err)
		assert.Empty(t, result.OGImageURL)
	})
}

func TestExtractor_Extract_CodeBlockLanguageHint(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body><article>
<pre class="language-go"><code>fmt.Println("hi")</code></pre>
</article></body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, `language-go`)
}

func TestExtractor_Extract_BarePreWrappedInCode(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body><article>
<pre>go install example.com/tool@latest</pre>
</article></body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	assert.Contains(t, result.ContentHTML, "<code>")
	assert.Contains(t, result.ContentHTML, "go install example.com/tool@latest")
}

func TestExtractor_Extract_DropsDuplicateInlineCode(t *testing.T) {
	t.Parallel()

	rawHTML := `<html><body><article>
<pre><code>func main() { run() }</code></pre>
<p>Call <code>func main() { run() }</code> to start, or use <code>run</code> directly.</p>
</article></body></html>`

	e := goquery.NewExtractor()
	result, err := e.Extract(rawHTML, "https://example.com")

	require.NoError(t, err)
	// the block survives, the duplicating inline copy does not
	assert.Contains(t, result.ContentHTML, "<pre><code>func main() { run() }</code></pre>")
	assert.NotContains(t, result.ContentHTML, "<p>Call <code>")
	assert.Contains(t, result.ContentHTML, "<code>run</code>")
}
