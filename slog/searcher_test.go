package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/unifero"
	"github.com/fwojciec/unifero/mock"
	uniferoslog "github.com/fwojciec/unifero/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingSearcher_Search(t *testing.T) {
	t.Parallel()

	t.Run("logs query and hit count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, limit int) ([]unifero.SearchHit, error) {
				return []unifero.SearchHit{
					{URL: "https://go.dev/doc", Title: "Go Docs"},
					{URL: "https://go.dev/tour", Title: "Go Tour"},
				}, nil
			},
		}

		searcher := uniferoslog.NewLoggingSearcher(inner, logger)
		hits, err := searcher.Search(context.Background(), "go documentation", 5)

		require.NoError(t, err)
		assert.Len(t, hits, 2)
		output := buf.String()
		assert.Contains(t, output, "search")
		assert.Contains(t, output, `query="go documentation"`)
		assert.Contains(t, output, "hits=2")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Searcher{
			SearchFn: func(ctx context.Context, query string, limit int) ([]unifero.SearchHit, error) {
				return nil, unifero.Errorf(unifero.EUNAVAILABLE, "search provider returned HTTP 503")
			},
		}

		searcher := uniferoslog.NewLoggingSearcher(inner, logger)
		_, err := searcher.Search(context.Background(), "go", 5)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "hits=0")
		assert.Contains(t, output, "unavailable")
	})
}

func TestLoggingSitemapService_DiscoverURLs(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.SitemapService{
		DiscoverURLsFn: func(ctx context.Context, baseURL string) ([]string, error) {
			return []string{"https://example.com/docs/a"}, nil
		},
	}

	svc := uniferoslog.NewLoggingSitemapService(inner, logger)
	urls, err := svc.DiscoverURLs(context.Background(), "https://example.com/docs")

	require.NoError(t, err)
	assert.Len(t, urls, 1)
	output := buf.String()
	assert.Contains(t, output, "sitemap discovery")
	assert.Contains(t, output, "url=https://example.com/docs")
	assert.Contains(t, output, "count=1")
}
