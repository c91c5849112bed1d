package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pageoverlap"
)

// Ensure LoggingMatcher implements pageoverlap.Matcher.
var _ pageoverlap.Matcher = (*LoggingMatcher)(nil)

// LoggingMatcher wraps a Matcher with debug logging.
type LoggingMatcher struct {
	next   pageoverlap.Matcher
	logger *slog.Logger
}

// NewLoggingMatcher creates a new LoggingMatcher.
func NewLoggingMatcher(next pageoverlap.Matcher, logger *slog.Logger) *LoggingMatcher {
	return &LoggingMatcher{next: next, logger: logger}
}

// MatchingBlocks delegates to the wrapped matcher and logs the block count.
func (m *LoggingMatcher) MatchingBlocks(a, b *pageoverlap.Document) (blocks []pageoverlap.Block, err error) {
	defer func(begin time.Time) {
		m.logger.Info("matching blocks",
			"a", docPath(a),
			"b", docPath(b),
			"count", len(blocks),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return m.next.MatchingBlocks(a, b)
}

func docPath(d *pageoverlap.Document) string {
	if d == nil {
		return ""
	}
	return d.Path
}
