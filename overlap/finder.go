// Package overlap provides the overlap finding workflow.
// It coordinates loading both pages, discovering matching blocks, applying
// the reporting threshold and printing the report.
package overlap

import (
	"context"
	"io"

	"github.com/fwojciec/pageoverlap"
)

// Source names a page to compare and the label it is reported under.
type Source struct {
	Path  string
	Label string
}

// Finder orchestrates a comparison of two pages.
type Finder struct {
	Loader  pageoverlap.DocumentLoader
	Matcher pageoverlap.Matcher
	Printer pageoverlap.Printer
}

// Result holds the outcome of a comparison.
type Result struct {
	A      *pageoverlap.Document
	B      *pageoverlap.Document
	Blocks []pageoverlap.Block
}

// Find loads both sources and returns the blocks longer than
// pageoverlap.MinBlockSize. The first source is loaded before the second;
// a failure on the first means the second is never read.
func (f *Finder) Find(ctx context.Context, first, second Source) (*Result, error) {
	a, err := f.load(ctx, first)
	if err != nil {
		return nil, err
	}

	b, err := f.load(ctx, second)
	if err != nil {
		return nil, err
	}

	blocks, err := f.Matcher.MatchingBlocks(a, b)
	if err != nil {
		return nil, err
	}

	return &Result{
		A:      a,
		B:      b,
		Blocks: pageoverlap.FilterBlocks(blocks, pageoverlap.MinBlockSize),
	}, nil
}

// Run finds the overlapping blocks and prints them to w.
func (f *Finder) Run(ctx context.Context, w io.Writer, first, second Source) (*Result, error) {
	result, err := f.Find(ctx, first, second)
	if err != nil {
		return nil, err
	}

	if err := f.Printer.PrintBlocks(w, result.A, result.B, result.Blocks); err != nil {
		return result, err
	}
	return result, nil
}

func (f *Finder) load(ctx context.Context, src Source) (*pageoverlap.Document, error) {
	doc, err := f.Loader.LoadDocument(ctx, src.Path)
	if err != nil {
		return nil, err
	}
	doc.Label = src.Label
	return doc, nil
}
