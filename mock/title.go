package mock

import "github.com/fwojciec/pageoverlap"

var _ pageoverlap.TitleExtractor = (*TitleExtractor)(nil)

// TitleExtractor is a mock implementation of pageoverlap.TitleExtractor.
type TitleExtractor struct {
	ExtractTitleFn func(html string) (string, error)
}

func (e *TitleExtractor) ExtractTitle(html string) (string, error) {
	return e.ExtractTitleFn(html)
}
