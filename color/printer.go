// Package color prints overlap reports, optionally highlighted with fatih/color.
package color

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/fwojciec/pageoverlap"
)

// Ensure Printer implements pageoverlap.Printer at compile time.
var _ pageoverlap.Printer = (*Printer)(nil)

// Printer writes one record per block: header, snippet, separator.
// With Enabled false the output is plain text.
type Printer struct {
	header    *color.Color
	separator *color.Color
}

// NewPrinter creates a new Printer. enabled forces highlighting on or off
// regardless of the process-wide color.NoColor setting.
func NewPrinter(enabled bool) *Printer {
	p := &Printer{
		header:    color.New(color.FgCyan, color.Bold),
		separator: color.New(color.Faint),
	}
	if enabled {
		p.header.EnableColor()
		p.separator.EnableColor()
	} else {
		p.header.DisableColor()
		p.separator.DisableColor()
	}
	return p
}

// PrintBlocks writes every block in order, stopping at the first write error.
func (p *Printer) PrintBlocks(w io.Writer, a, b *pageoverlap.Document, blocks []pageoverlap.Block) error {
	for i, blk := range blocks {
		if _, err := fmt.Fprintln(w, p.header.Sprint(pageoverlap.FormatHeader(i+1, a, b, blk))); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, pageoverlap.Snippet(a, blk)); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w, p.separator.Sprint(pageoverlap.Separator)); err != nil {
			return err
		}
	}
	return nil
}
