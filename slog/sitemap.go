package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/articlemd"
)

// Ensure LoggingSitemapService implements articlemd.SitemapService.
var _ articlemd.SitemapService = (*LoggingSitemapService)(nil)

// LoggingSitemapService wraps a SitemapService with debug logging.
type LoggingSitemapService struct {
	next   articlemd.SitemapService
	logger *slog.Logger
}

// NewLoggingSitemapService creates a new LoggingSitemapService.
func NewLoggingSitemapService(next articlemd.SitemapService, logger *slog.Logger) *LoggingSitemapService {
	return &LoggingSitemapService{next: next, logger: logger}
}

// DiscoverURLs delegates to the wrapped service and logs the operation.
func (s *LoggingSitemapService) DiscoverURLs(ctx context.Context, baseURL string, filter *articlemd.URLFilter) (urls []string, err error) {
	defer func(begin time.Time) {
		attrs := []any{"url", baseURL, "count", len(urls)}
		if filter != nil && !filter.ModifiedSince.IsZero() {
			attrs = append(attrs, "since", filter.ModifiedSince.Format(time.DateOnly))
		}
		s.logger.Info("sitemap discovery", append(attrs,
			"duration", time.Since(begin),
			"err", err,
		)...)
	}(time.Now())
	return s.next.DiscoverURLs(ctx, baseURL, filter)
}
