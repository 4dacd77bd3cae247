package mock

import (
	"context"
	"io"

	"github.com/fwojciec/pagegraph"
)

// Compile-time interface verification.
var (
	_ pagegraph.AnchorExtractor = (*AnchorExtractor)(nil)
	_ pagegraph.GraphEncoder    = (*GraphEncoder)(nil)
	_ pagegraph.GraphStore      = (*GraphStore)(nil)
)

// AnchorExtractor is a mock implementation of pagegraph.AnchorExtractor.
type AnchorExtractor struct {
	ExtractAnchorsFn func(html string) ([]pagegraph.Anchor, error)
}

func (e *AnchorExtractor) ExtractAnchors(html string) ([]pagegraph.Anchor, error) {
	return e.ExtractAnchorsFn(html)
}

// GraphEncoder is a mock implementation of pagegraph.GraphEncoder.
type GraphEncoder struct {
	EncodeGraphFn func(w io.Writer, g *pagegraph.Graph) error
}

func (e *GraphEncoder) EncodeGraph(w io.Writer, g *pagegraph.Graph) error {
	return e.EncodeGraphFn(w, g)
}

// GraphStore is a mock implementation of pagegraph.GraphStore.
type GraphStore struct {
	SaveGraphFn func(ctx context.Context, g *pagegraph.Graph) error
	LoadGraphFn func(ctx context.Context) (*pagegraph.Graph, error)
}

func (s *GraphStore) SaveGraph(ctx context.Context, g *pagegraph.Graph) error {
	return s.SaveGraphFn(ctx, g)
}

func (s *GraphStore) LoadGraph(ctx context.Context) (*pagegraph.Graph, error) {
	return s.LoadGraphFn(ctx)
}
