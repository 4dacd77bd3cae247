package main_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"path/filepath"
	"testing"

	"github.com/fwojciec/pagegraph"
	main "github.com/fwojciec/pagegraph/cmd/pagescan"
	"github.com/fwojciec/pagegraph/mock"
	"github.com/fwojciec/pagegraph/scan"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanCmd_Run(t *testing.T) {
	t.Parallel()

	walker := &mock.PageWalker{
		WalkFn: func(ctx context.Context, root string) ([]pagegraph.PageFile, error) {
			return []pagegraph.PageFile{{Path: "/site/index.html", Filename: "index"}}, nil
		},
	}
	scanner := &scan.Scanner{
		Walker: walker,
		Pages: &mock.PageSource{
			ReadPageFn: func(string) (string, error) { return "", nil },
		},
		Extractor: &mock.MetadataExtractor{
			ExtractMetadataFn: func(string) (*pagegraph.PageMetadata, error) {
				return &pagegraph.PageMetadata{Title: "Home"}, nil
			},
		},
	}

	t.Run("passes scanned records to the table writer", func(t *testing.T) {
		t.Parallel()

		var written []*pagegraph.PageRecord
		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Scanner: scanner,
			Table: &mock.PageTableWriter{
				WritePageTableFn: func(w io.Writer, records []*pagegraph.PageRecord) error {
					written = records
					return nil
				},
			},
		}

		cmd := &main.ScanCmd{Source: "/site", Output: filepath.Join(t.TempDir(), "pages.csv")}
		err := cmd.Run(deps)

		require.NoError(t, err)
		assert.Equal(t, []*pagegraph.PageRecord{{Filename: "index", Title: "Home"}}, written)
		assert.Equal(t, "Scanned 1 HTML pages\n", stdout.String())
	})

	t.Run("leaves no file when the writer fails", func(t *testing.T) {
		t.Parallel()

		output := filepath.Join(t.TempDir(), "pages.csv")
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  &bytes.Buffer{},
			Scanner: scanner,
			Table: &mock.PageTableWriter{
				WritePageTableFn: func(io.Writer, []*pagegraph.PageRecord) error {
					return errors.New("disk full")
				},
			},
		}

		cmd := &main.ScanCmd{Source: "/site", Output: output}
		err := cmd.Run(deps)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "disk full")
		assert.NoFileExists(t, output)
	})
}
