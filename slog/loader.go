// Package slog provides logging decorators for pageoverlap services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pageoverlap"
)

// Ensure LoggingLoader implements pageoverlap.DocumentLoader.
var _ pageoverlap.DocumentLoader = (*LoggingLoader)(nil)

// LoggingLoader wraps a DocumentLoader with debug logging.
type LoggingLoader struct {
	next   pageoverlap.DocumentLoader
	logger *slog.Logger
}

// NewLoggingLoader creates a new LoggingLoader.
func NewLoggingLoader(next pageoverlap.DocumentLoader, logger *slog.Logger) *LoggingLoader {
	return &LoggingLoader{next: next, logger: logger}
}

// LoadDocument delegates to the wrapped loader and logs the operation.
func (l *LoggingLoader) LoadDocument(ctx context.Context, path string) (doc *pageoverlap.Document, err error) {
	defer func(begin time.Time) {
		attrs := []any{"path", path, "duration", time.Since(begin)}
		if doc != nil {
			attrs = append(attrs, "chars", doc.Len(), "hash", doc.ContentHash, "title", doc.Title)
		}
		attrs = append(attrs, "err", err)
		l.logger.Info("load document", attrs...)
	}(time.Now())
	return l.next.LoadDocument(ctx, path)
}
