package pageoverlap

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// SnippetLimit caps the number of characters previewed for a block.
const SnippetLimit = 400

// Separator is printed after every reported block.
var Separator = strings.Repeat("-", 80)

// FormatHeader formats the summary line for the index-th block (1-based).
func FormatHeader(index int, a, b *Document, blk Block) string {
	return fmt.Sprintf("Block %d: %s [%d:%d] <-> %s [%d:%d] (size %d)",
		index, a.Name(), blk.A, blk.EndA(), b.Name(), blk.B, blk.EndB(), blk.Size)
}

// Snippet returns a preview of the block's text as it appears in doc.
// At most SnippetLimit characters are taken and every newline becomes a
// single space, so the preview always fits on one line.
func Snippet(doc *Document, blk Block) string {
	snippet := substring(doc.Content, blk.A, min(blk.Size, SnippetLimit))
	snippet = strings.ReplaceAll(snippet, "\n", " ")
	return substring(snippet, 0, SnippetLimit)
}

// substring returns up to n characters of s starting at character offset start.
func substring(s string, start, n int) string {
	if start < 0 || n <= 0 {
		return ""
	}
	i := advance(s, 0, start)
	return s[i:advance(s, i, n)]
}

// advance returns the byte offset n characters past byte offset i,
// stopping at the end of s.
func advance(s string, i, n int) int {
	for ; n > 0 && i < len(s); n-- {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
	}
	return i
}

// Printer writes a report of matching blocks.
type Printer interface {
	// PrintBlocks writes every block in order. Output for earlier blocks
	// is written before later blocks are formatted.
	PrintBlocks(w io.Writer, a, b *Document, blocks []Block) error
}
