// Package pagegraph builds a link graph from a static HTML corpus.
// It scans a directory of HTML pages, exports per-page metadata to a
// page table, and resolves anchors between pages into a directed graph
// keyed by page identifiers.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, sqlite/, etree/).
package pagegraph
