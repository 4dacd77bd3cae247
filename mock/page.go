package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pagegraph"
)

// Compile-time interface verification.
var (
	_ pagegraph.PageWalker        = (*PageWalker)(nil)
	_ pagegraph.PageSource        = (*PageSource)(nil)
	_ pagegraph.MetadataExtractor = (*MetadataExtractor)(nil)
	_ pagegraph.PageTableWriter   = (*PageTableWriter)(nil)
	_ pagegraph.PageTableReader   = (*PageTableReader)(nil)
)

// PageWalker is a mock implementation of pagegraph.PageWalker.
type PageWalker struct {
	WalkFn func(ctx context.Context, root string) ([]pagegraph.PageFile, error)
}

func (w *PageWalker) Walk(ctx context.Context, root string) ([]pagegraph.PageFile, error) {
	return w.WalkFn(ctx, root)
}

// PageSource is a mock implementation of pagegraph.PageSource.
type PageSource struct {
	LocatePageFn func(root, dir, filename string) (string, bool)
	ReadPageFn   func(path string) (string, error)
}

func (s *PageSource) LocatePage(root, dir, filename string) (string, bool) {
	return s.LocatePageFn(root, dir, filename)
}

func (s *PageSource) ReadPage(path string) (string, error) {
	return s.ReadPageFn(path)
}

// MetadataExtractor is a mock implementation of pagegraph.MetadataExtractor.
type MetadataExtractor struct {
	ExtractMetadataFn func(html string) (*pagegraph.PageMetadata, error)
}

func (e *MetadataExtractor) ExtractMetadata(html string) (*pagegraph.PageMetadata, error) {
	return e.ExtractMetadataFn(html)
}

// PageTableWriter is a mock implementation of pagegraph.PageTableWriter.
type PageTableWriter struct {
	WritePageTableFn func(w io.Writer, records []*pagegraph.PageRecord) error
}

func (t *PageTableWriter) WritePageTable(w io.Writer, records []*pagegraph.PageRecord) error {
	return t.WritePageTableFn(w, records)
}

// PageTableReader is a mock implementation of pagegraph.PageTableReader.
type PageTableReader struct {
	ReadPageTableFn func(r io.Reader) ([]*pagegraph.PageRecord, error)
}

func (t *PageTableReader) ReadPageTable(r io.Reader) ([]*pagegraph.PageRecord, error) {
	return t.ReadPageTableFn(r)
}
