package mock

import (
	"io"

	"github.com/fwojciec/pageoverlap"
)

var _ pageoverlap.Printer = (*Printer)(nil)

// Printer is a mock implementation of pageoverlap.Printer.
type Printer struct {
	PrintBlocksFn func(w io.Writer, a, b *pageoverlap.Document, blocks []pageoverlap.Block) error
}

func (p *Printer) PrintBlocks(w io.Writer, a, b *pageoverlap.Document, blocks []pageoverlap.Block) error {
	return p.PrintBlocksFn(w, a, b, blocks)
}
