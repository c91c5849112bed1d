package mock

import (
	"context"

	"github.com/fwojciec/pageoverlap"
)

var _ pageoverlap.DocumentLoader = (*DocumentLoader)(nil)

// DocumentLoader is a mock implementation of pageoverlap.DocumentLoader.
type DocumentLoader struct {
	LoadDocumentFn func(ctx context.Context, path string) (*pageoverlap.Document, error)
}

func (l *DocumentLoader) LoadDocument(ctx context.Context, path string) (*pageoverlap.Document, error) {
	return l.LoadDocumentFn(ctx, path)
}
