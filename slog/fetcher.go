// Package slog provides logging decorators for articlemd services using
// the standard structured logger. Each decorated call logs one line with
// its duration and error.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlemd"
)

// Ensure LoggingFetcher implements articlemd.Fetcher.
var _ articlemd.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   articlemd.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next articlemd.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (page *articlemd.RawPage, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", url}
		if page != nil {
			attrs = append(attrs, "final", page.URL, "bytes", len(page.HTML))
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		f.logger.Info("fetch", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
