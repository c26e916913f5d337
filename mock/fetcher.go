// Package mock provides function-field mock implementations of the domain
// interfaces for testing.
package mock

import (
	"context"

	"github.com/fwojciec/unifero"
)

var _ unifero.Fetcher = (*Fetcher)(nil)

// Fetcher is a mock implementation of unifero.Fetcher.
type Fetcher struct {
	FetchFn func(ctx context.Context, url string) (*unifero.FetchResult, error)
	CloseFn func() error
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (*unifero.FetchResult, error) {
	return f.FetchFn(ctx, url)
}

func (f *Fetcher) Close() error {
	if f.CloseFn == nil {
		return nil
	}
	return f.CloseFn()
}
