package pageoverlap

// MinBlockSize is the reporting threshold. Only blocks strictly longer than
// this many characters are reported.
const MinBlockSize = 100

// Block is a run of identical characters found at offset A in the first
// document and offset B in the second.
type Block struct {
	A    int `json:"a"`
	B    int `json:"b"`
	Size int `json:"size"`
}

// EndA returns the exclusive end offset of the block in the first document.
func (b Block) EndA() int { return b.A + b.Size }

// EndB returns the exclusive end offset of the block in the second document.
func (b Block) EndB() int { return b.B + b.Size }

// Matcher discovers matching blocks between two documents.
type Matcher interface {
	// MatchingBlocks returns the blocks shared by a and b ordered by
	// ascending offset in both documents. Blocks never overlap within
	// either document. A trailing zero-size block may be present.
	MatchingBlocks(a, b *Document) ([]Block, error)
}

// FilterBlocks returns the blocks whose size is strictly greater than
// minSize, preserving order.
func FilterBlocks(blocks []Block, minSize int) []Block {
	var kept []Block
	for _, b := range blocks {
		if b.Size > minSize {
			kept = append(kept, b)
		}
	}
	return kept
}
