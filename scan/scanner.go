// Package scan orchestrates the two passes over an HTML corpus: the
// metadata scan that produces page records, and the graph build that
// turns those records and the pages' links into a page graph.
package scan

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pagegraph"
)

// Scanner extracts the metadata of every page of a corpus.
type Scanner struct {
	Walker    pagegraph.PageWalker
	Pages     pagegraph.PageSource
	Extractor pagegraph.MetadataExtractor
	Logger    *slog.Logger
}

// Scan walks root and returns one record per HTML page, in walk order.
// A page that cannot be read or parsed is logged and recorded with empty
// metadata. Only a failure to walk root, or cancellation, is returned.
func (s *Scanner) Scan(ctx context.Context, root string) ([]*pagegraph.PageRecord, error) {
	files, err := s.Walker.Walk(ctx, root)
	if err != nil {
		return nil, err
	}

	records := make([]*pagegraph.PageRecord, 0, len(files))
	for _, f := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		records = append(records, pagegraph.NewPageRecord(f, s.metadata(f.Path)))
	}
	return records, nil
}

func (s *Scanner) metadata(path string) pagegraph.PageMetadata {
	logger := loggerOrDiscard(s.Logger)

	html, err := s.Pages.ReadPage(path)
	if err != nil {
		logger.Warn("failed to read page", "path", path, "err", err)
		return pagegraph.PageMetadata{}
	}

	meta, err := s.Extractor.ExtractMetadata(html)
	if err != nil {
		logger.Warn("failed to extract metadata", "path", path, "err", err)
		return pagegraph.PageMetadata{}
	}
	return *meta
}

func loggerOrDiscard(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return logger
}
