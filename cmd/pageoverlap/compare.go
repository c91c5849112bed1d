package main

import (
	"context"
	"io"

	"github.com/fwojciec/pageoverlap/overlap"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Finder *overlap.Finder
}

// CompareCmd compares two pages and prints their overlapping blocks.
type CompareCmd struct {
	First  overlap.Source
	Second overlap.Source
}

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	_, err := deps.Finder.Run(deps.Ctx, deps.Stdout, c.First, c.Second)
	return err
}
