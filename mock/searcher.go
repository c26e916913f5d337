package mock

import (
	"context"

	"github.com/fwojciec/unifero"
)

var _ unifero.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of unifero.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]unifero.SearchHit, error)
}

func (s *Searcher) Search(ctx context.Context, query string, limit int) ([]unifero.SearchHit, error) {
	return s.SearchFn(ctx, query, limit)
}

var _ unifero.SitemapService = (*SitemapService)(nil)

// SitemapService is a mock implementation of unifero.SitemapService.
type SitemapService struct {
	DiscoverURLsFn func(ctx context.Context, baseURL string) ([]string, error)
}

func (s *SitemapService) DiscoverURLs(ctx context.Context, baseURL string) ([]string, error) {
	return s.DiscoverURLsFn(ctx, baseURL)
}
