// Package difflib discovers matching blocks with pmezard/go-difflib.
package difflib

import (
	"github.com/fwojciec/pageoverlap"
	"github.com/pmezard/go-difflib/difflib"
)

// Ensure Matcher implements pageoverlap.Matcher at compile time.
var _ pageoverlap.Matcher = (*Matcher)(nil)

// Matcher wraps difflib.SequenceMatcher over the characters of two documents.
// Autojunk is disabled and no element is treated as junk, so frequent
// characters such as spaces and angle brackets still take part in matches.
type Matcher struct{}

// NewMatcher creates a new Matcher.
func NewMatcher() *Matcher {
	return &Matcher{}
}

// MatchingBlocks returns the matching blocks of a and b, ending with the
// zero-size sentinel block at (len(a), len(b)). Identical documents are
// answered directly with one full-length block.
func (m *Matcher) MatchingBlocks(a, b *pageoverlap.Document) ([]pageoverlap.Block, error) {
	if a == nil || b == nil {
		return nil, pageoverlap.Errorf(pageoverlap.EINVALID, "two documents required")
	}

	if a.Content == b.Content {
		n := a.Len()
		if n == 0 {
			return []pageoverlap.Block{{}}, nil
		}
		return []pageoverlap.Block{
			{A: 0, B: 0, Size: n},
			{A: n, B: n, Size: 0},
		}, nil
	}

	sm := difflib.NewMatcherWithJunk(chars(a.Content), chars(b.Content), false, nil)
	matches := sm.GetMatchingBlocks()

	blocks := make([]pageoverlap.Block, 0, len(matches))
	for _, match := range matches {
		blocks = append(blocks, pageoverlap.Block{A: match.A, B: match.B, Size: match.Size})
	}
	return blocks, nil
}

// chars splits s into one element per character.
func chars(s string) []string {
	out := make([]string, 0, len(s))
	for _, r := range s {
		out = append(out, string(r))
	}
	return out
}
