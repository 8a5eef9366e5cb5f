package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/articlemd"
)

// Ensure LoggingClassifier implements articlemd.Classifier.
var _ articlemd.Classifier = (*LoggingClassifier)(nil)

// LoggingClassifier wraps a Classifier with debug logging.
type LoggingClassifier struct {
	next      articlemd.Classifier
	logger    *slog.Logger
	threshold float64
}

// NewLoggingClassifier creates a new LoggingClassifier. Blocks scoring at or
// above threshold are reported as likely content.
func NewLoggingClassifier(next articlemd.Classifier, threshold float64, logger *slog.Logger) *LoggingClassifier {
	return &LoggingClassifier{next: next, logger: logger, threshold: threshold}
}

// Score delegates to the wrapped classifier and logs the operation.
func (c *LoggingClassifier) Score(blocks []articlemd.Block) (probs []float64, err error) {
	defer func(begin time.Time) {
		var likely int
		for _, p := range probs {
			if p >= c.threshold {
				likely++
			}
		}
		c.logger.Info("classify",
			"blocks", len(blocks),
			"likely", likely,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Score(blocks)
}
