package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/fs"
	"github.com/fwojciec/pagegraph/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Scanner *scan.Scanner
	Table   pagegraph.PageTableWriter
}

// ScanCmd scans a directory and writes its page table.
type ScanCmd struct {
	Source string
	Output string
}

// Run executes the scan command. No table is written when the directory
// holds no pages.
func (c *ScanCmd) Run(deps *Dependencies) error {
	records, err := deps.Scanner.Scan(deps.Ctx, c.Source)
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No HTML pages found")
		return nil
	}

	err = fs.WriteFile(c.Output, func(w io.Writer) error {
		return deps.Table.WritePageTable(w, records)
	})
	if err != nil {
		return fmt.Errorf("failed to write page table: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Scanned %d HTML pages\n", len(records))
	return nil
}
