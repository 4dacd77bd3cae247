package scan

import (
	"context"
	"log/slog"

	"github.com/fwojciec/pagegraph"
)

// Builder builds the link graph of a corpus from its page records.
type Builder struct {
	Pages   pagegraph.PageSource
	Anchors pagegraph.AnchorExtractor
	Policy  pagegraph.EdgePolicy
	Logger  *slog.Logger
}

// Build loads a node per record and an edge per resolved link between
// known pages. Pages are read from root. The returned assembler is ready
// to export.
func (b *Builder) Build(ctx context.Context, root string, records []*pagegraph.PageRecord) (*Assembler, error) {
	a := NewAssembler(b.Policy)
	if err := a.LoadNodes(records); err != nil {
		return nil, err
	}

	err := a.LoadEdges(func(r *pagegraph.PageRecord) ([]pagegraph.Link, error) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		path, ok := b.Pages.LocatePage(root, r.RelativeDir, r.Filename)
		if !ok {
			b.logger().Debug("source page not found", "page", r.ID())
			return nil, nil
		}
		return b.ExtractLinks(path, r.RelativeDir), nil
	})
	if err != nil {
		return nil, err
	}
	return a, nil
}

// ExtractLinks returns the resolved links of the page at path, whose
// relative directory is currentDir. Links that cannot name a page are
// left out. A page that cannot be read or parsed yields no links.
func (b *Builder) ExtractLinks(path, currentDir string) []pagegraph.Link {
	logger := b.logger()

	html, err := b.Pages.ReadPage(path)
	if err != nil {
		logger.Warn("failed to read page", "path", path, "err", err)
		return nil
	}

	anchors, err := b.Anchors.ExtractAnchors(html)
	if err != nil {
		logger.Warn("failed to extract links", "path", path, "err", err)
		return nil
	}

	var links []pagegraph.Link
	for _, anchor := range anchors {
		if err := pagegraph.ValidateHref(anchor.Href); err != nil {
			logger.Warn("malformed link", "path", path, "err", err)
			continue
		}
		target, ok := pagegraph.NormalizeLink(currentDir, anchor.Href)
		if !ok {
			continue
		}
		links = append(links, pagegraph.Link{Target: target, Text: anchor.Text})
	}
	return links
}

func (b *Builder) logger() *slog.Logger {
	return loggerOrDiscard(b.Logger)
}
