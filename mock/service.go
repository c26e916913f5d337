package mock

import (
	"context"

	"github.com/fwojciec/unifero"
)

var _ unifero.Service = (*Service)(nil)

// Service is a mock implementation of unifero.Service.
type Service struct {
	SearchFn func(ctx context.Context, req *unifero.SearchRequest) (*unifero.SearchResponse, error)
	DocsFn   func(ctx context.Context, req *unifero.DocsRequest) (*unifero.DocsResponse, error)
}

func (s *Service) Search(ctx context.Context, req *unifero.SearchRequest) (*unifero.SearchResponse, error) {
	return s.SearchFn(ctx, req)
}

func (s *Service) Docs(ctx context.Context, req *unifero.DocsRequest) (*unifero.DocsResponse, error) {
	return s.DocsFn(ctx, req)
}
