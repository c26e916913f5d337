package duckduckgo_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/fwojciec/unifero"
	"github.com/fwojciec/unifero/duckduckgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const resultsPage = `<html><body>
<div class="result">
  <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc%2F">Go Documentation</a>
  <a class="result__snippet" href="#">The official Go docs.</a>
</div>
<div class="result">
  <a class="result__a" href="https://pkg.go.dev/testing">testing package</a>
  <a class="result__snippet" href="#">Package testing provides support.</a>
</div>
<div class="result">
  <a class="result__a" href="https://pkg.go.dev/testing">testing package (dup)</a>
</div>
<div class="result">
  <a class="result__a" href="https://example.com/third">Third Result</a>
</div>
</body></html>`

func newSearchServer(t *testing.T, handler http.HandlerFunc) *duckduckgo.Searcher {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return duckduckgo.NewSearcher(
		duckduckgo.WithClient(srv.Client()),
		duckduckgo.WithEndpoint(srv.URL+"/html/"),
	)
}

func TestSearcher_Search(t *testing.T) {
	t.Parallel()

	var gotQuery atomic.Value
	s := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		gotQuery.Store(r.URL.Query().Get("q"))
		_, _ = w.Write([]byte(resultsPage))
	})

	hits, err := s.Search(context.Background(), "go testing docs", 10)

	require.NoError(t, err)
	assert.Equal(t, "go testing docs", gotQuery.Load())

	require.Len(t, hits, 3, "duplicate URLs are collapsed")
	assert.Equal(t, "https://go.dev/doc/", hits[0].URL)
	assert.Equal(t, "Go Documentation", hits[0].Title)
	assert.Equal(t, "The official Go docs.", hits[0].Snippet)
	assert.Equal(t, "https://pkg.go.dev/testing", hits[1].URL)
	assert.Equal(t, "https://example.com/third", hits[2].URL)
}

func TestSearcher_Search_RespectsLimit(t *testing.T) {
	t.Parallel()

	s := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(resultsPage))
	})

	hits, err := s.Search(context.Background(), "go", 1)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "https://go.dev/doc/", hits[0].URL)
}

func TestSearcher_Search_ZeroLimit(t *testing.T) {
	t.Parallel()

	s := duckduckgo.NewSearcher()
	hits, err := s.Search(context.Background(), "go", 0)

	require.NoError(t, err)
	assert.Empty(t, hits)
}

func TestSearcher_Search_LegacyMarkup(t *testing.T) {
	t.Parallel()

	page := `<html><body>
<a class="result-link" href="https://go.dev/tour">A Tour of Go</a>
</body></html>`

	s := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	})

	hits, err := s.Search(context.Background(), "go tour", 5)

	require.NoError(t, err)
	require.Len(t, hits, 1)
	assert.Equal(t, "https://go.dev/tour", hits[0].URL)
	assert.Equal(t, "A Tour of Go", hits[0].Title)
}

func TestSearcher_Search_ProviderError(t *testing.T) {
	t.Parallel()

	s := newSearchServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	_, err := s.Search(context.Background(), "go", 5)

	require.Error(t, err)
	assert.Equal(t, unifero.EUNAVAILABLE, unifero.ErrorCode(err))
}

func TestSearcher_Search_ProviderUnreachable(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	endpoint := srv.URL + "/html/"
	srv.Close()

	s := duckduckgo.NewSearcher(duckduckgo.WithEndpoint(endpoint))
	_, err := s.Search(context.Background(), "go", 5)

	require.Error(t, err)
	assert.Equal(t, unifero.EUNAVAILABLE, unifero.ErrorCode(err))
}

func TestUnwrapRedirect(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"uddg wrapper", "/l/?uddg=https%3A%2F%2Fgo.dev%2Fdoc%2F", "https://go.dev/doc/"},
		{"protocol-relative wrapper", "//duckduckgo.com/l/?uddg=https%3A%2F%2Fgo.dev%2F", "https://go.dev/"},
		{"direct https", "https://example.com/page", "https://example.com/page"},
		{"direct http", "http://example.com/page", "http://example.com/page"},
		{"protocol-relative direct", "//example.com/page", "https://example.com/page"},
		{"javascript", "javascript:void(0)", ""},
		{"fragment", "#results", ""},
		{"empty", "", ""},
		{"relative path", "/settings", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, duckduckgo.UnwrapRedirect(tt.in))
		})
	}
}
