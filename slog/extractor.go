package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/articlemd"
)

// Ensure LoggingArticleExtractor implements articlemd.ArticleExtractor.
var _ articlemd.ArticleExtractor = (*LoggingArticleExtractor)(nil)

// LoggingArticleExtractor wraps an ArticleExtractor with debug logging.
type LoggingArticleExtractor struct {
	next   articlemd.ArticleExtractor
	logger *slog.Logger
}

// NewLoggingArticleExtractor creates a new LoggingArticleExtractor.
func NewLoggingArticleExtractor(next articlemd.ArticleExtractor, logger *slog.Logger) *LoggingArticleExtractor {
	return &LoggingArticleExtractor{next: next, logger: logger}
}

// ExtractArticle delegates to the wrapped extractor and logs the operation.
func (e *LoggingArticleExtractor) ExtractArticle(rawHTML string, baseURL string) (doc *articlemd.ExtractedDocument, err error) {
	defer func(begin time.Time) {
		var words int
		var title string
		if doc != nil {
			words = articlemd.WordCount(doc.Content)
			title = doc.Title
		}
		e.logger.Info("extract",
			"url", baseURL,
			"title", title,
			"words", words,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractArticle(rawHTML, baseURL)
}
