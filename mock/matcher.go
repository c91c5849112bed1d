package mock

import "github.com/fwojciec/pageoverlap"

var _ pageoverlap.Matcher = (*Matcher)(nil)

// Matcher is a mock implementation of pageoverlap.Matcher.
type Matcher struct {
	MatchingBlocksFn func(a, b *pageoverlap.Document) ([]pageoverlap.Block, error)
}

func (m *Matcher) MatchingBlocks(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
	return m.MatchingBlocksFn(a, b)
}
