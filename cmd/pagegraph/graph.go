package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fwojciec/pagegraph"
	"github.com/fwojciec/pagegraph/fs"
	"github.com/fwojciec/pagegraph/scan"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Table   pagegraph.PageTableReader
	Builder *scan.Builder
	Encoder pagegraph.GraphEncoder

	// Store is optional.
	Store pagegraph.GraphStore
}

// GraphCmd builds the link graph and writes it to a file.
type GraphCmd struct {
	Source string
	Table  string
	Output string
}

// Run executes the graph command. When a store is configured, the graph
// file is written only if the store saves the graph too.
func (c *GraphCmd) Run(deps *Dependencies) error {
	records, err := c.readTable(deps.Table)
	if err != nil {
		return err
	}

	a, err := deps.Builder.Build(deps.Ctx, c.Source, records)
	if err != nil {
		return err
	}

	out, err := fs.CreateOutputFile(c.Output)
	if err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}
	if err := a.Export(deps.Encoder, out); err != nil {
		_ = out.Abort()
		return fmt.Errorf("failed to write graph: %w", err)
	}

	g := a.Graph()
	if deps.Store != nil {
		if err := deps.Store.SaveGraph(deps.Ctx, g); err != nil {
			_ = out.Abort()
			return fmt.Errorf("failed to save graph: %w", err)
		}
	}

	if err := out.Commit(); err != nil {
		return fmt.Errorf("failed to write graph: %w", err)
	}

	fmt.Fprintf(deps.Stdout, "Nodes: %d\n", g.NodeCount())
	fmt.Fprintf(deps.Stdout, "Edges: %d\n", g.EdgeCount())
	return nil
}

func (c *GraphCmd) readTable(table pagegraph.PageTableReader) ([]*pagegraph.PageRecord, error) {
	f, err := os.Open(c.Table)
	if os.IsNotExist(err) {
		return nil, pagegraph.Errorf(pagegraph.ENOTFOUND, "page table %q not found", c.Table)
	} else if err != nil {
		return nil, fmt.Errorf("failed to open page table: %w", err)
	}
	defer f.Close()

	records, err := table.ReadPageTable(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read page table %q: %w", c.Table, err)
	}
	return records, nil
}
