package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/unifero"
)

// Ensure LoggingSearcher implements unifero.Searcher.
var _ unifero.Searcher = (*LoggingSearcher)(nil)

// LoggingSearcher wraps a Searcher with per-query logging.
type LoggingSearcher struct {
	next   unifero.Searcher
	logger *slog.Logger
}

// NewLoggingSearcher creates a new LoggingSearcher.
func NewLoggingSearcher(next unifero.Searcher, logger *slog.Logger) *LoggingSearcher {
	return &LoggingSearcher{next: next, logger: logger}
}

// Search delegates to the wrapped searcher and logs the outcome.
func (s *LoggingSearcher) Search(ctx context.Context, query string, limit int) (hits []unifero.SearchHit, err error) {
	defer func(begin time.Time) {
		s.logger.Info("search",
			"query", query,
			"hits", len(hits),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Search(ctx, query, limit)
}
