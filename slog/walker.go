package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/pagegraph"
)

// Ensure LoggingWalker implements pagegraph.PageWalker.
var _ pagegraph.PageWalker = (*LoggingWalker)(nil)

// LoggingWalker wraps a PageWalker with debug logging.
type LoggingWalker struct {
	next   pagegraph.PageWalker
	logger *slog.Logger
}

// NewLoggingWalker creates a new LoggingWalker.
func NewLoggingWalker(next pagegraph.PageWalker, logger *slog.Logger) *LoggingWalker {
	return &LoggingWalker{next: next, logger: logger}
}

// Walk delegates to the wrapped walker and logs the operation.
func (w *LoggingWalker) Walk(ctx context.Context, root string) (files []pagegraph.PageFile, err error) {
	defer func(begin time.Time) {
		w.logger.Debug("walk",
			"root", root,
			"count", len(files),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return w.next.Walk(ctx, root)
}
