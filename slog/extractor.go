// Package slog decorates pagegraph services with structured logging.
package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/pagegraph"
)

// Ensure the decorators implement their interfaces.
var (
	_ pagegraph.MetadataExtractor = (*LoggingMetadataExtractor)(nil)
	_ pagegraph.AnchorExtractor   = (*LoggingAnchorExtractor)(nil)
)

// LoggingMetadataExtractor wraps a MetadataExtractor with debug logging.
type LoggingMetadataExtractor struct {
	next   pagegraph.MetadataExtractor
	logger *slog.Logger
}

// NewLoggingMetadataExtractor creates a new LoggingMetadataExtractor.
func NewLoggingMetadataExtractor(next pagegraph.MetadataExtractor, logger *slog.Logger) *LoggingMetadataExtractor {
	return &LoggingMetadataExtractor{next: next, logger: logger}
}

// ExtractMetadata delegates to the wrapped extractor and logs the operation.
func (e *LoggingMetadataExtractor) ExtractMetadata(html string) (meta *pagegraph.PageMetadata, err error) {
	defer func(begin time.Time) {
		var title string
		if meta != nil {
			title = meta.Title
		}
		e.logger.Debug("metadata extraction",
			"bytes", len(html),
			"title", title,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractMetadata(html)
}

// LoggingAnchorExtractor wraps an AnchorExtractor with debug logging.
type LoggingAnchorExtractor struct {
	next   pagegraph.AnchorExtractor
	logger *slog.Logger
}

// NewLoggingAnchorExtractor creates a new LoggingAnchorExtractor.
func NewLoggingAnchorExtractor(next pagegraph.AnchorExtractor, logger *slog.Logger) *LoggingAnchorExtractor {
	return &LoggingAnchorExtractor{next: next, logger: logger}
}

// ExtractAnchors delegates to the wrapped extractor and logs the operation.
func (e *LoggingAnchorExtractor) ExtractAnchors(html string) (anchors []pagegraph.Anchor, err error) {
	defer func(begin time.Time) {
		e.logger.Debug("anchor extraction",
			"bytes", len(html),
			"count", len(anchors),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractAnchors(html)
}
