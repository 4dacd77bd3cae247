// Package json serializes page graphs as JSON documents.
package json

import (
	"encoding/json"
	"io"

	"github.com/fwojciec/pagegraph"
)

// Ensure GraphEncoder implements pagegraph.GraphEncoder at compile time.
var _ pagegraph.GraphEncoder = (*GraphEncoder)(nil)

// document is the serialized form of a graph.
type document struct {
	Nodes []pagegraph.Node `json:"nodes"`
	Edges []pagegraph.Edge `json:"edges"`
}

// GraphEncoder writes a graph as an indented JSON document with a "nodes"
// and an "edges" collection.
type GraphEncoder struct {
	// Indent is the indentation unit. Empty produces compact output.
	Indent string
}

// NewGraphEncoder creates a GraphEncoder indenting with two spaces.
func NewGraphEncoder() *GraphEncoder {
	return &GraphEncoder{Indent: "  "}
}

// EncodeGraph writes g to w as UTF-8 JSON. HTML characters in identifiers
// and labels are written literally.
func (e *GraphEncoder) EncodeGraph(w io.Writer, g *pagegraph.Graph) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if e.Indent != "" {
		enc.SetIndent("", e.Indent)
	}
	return enc.Encode(document{
		Nodes: g.Nodes(),
		Edges: g.Edges(),
	})
}

// DecodeGraph reads a graph written by EncodeGraph. Edges are kept as
// stored, so the returned graph uses pagegraph.EdgePolicyAll.
// Returns EINVALID if the document is malformed or an edge references an
// unknown node.
func DecodeGraph(r io.Reader) (*pagegraph.Graph, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, pagegraph.Errorf(pagegraph.EINVALID, "malformed graph document: %v", err)
	}

	g := pagegraph.NewGraph(pagegraph.EdgePolicyAll)
	for _, n := range doc.Nodes {
		g.AddNode(n.ID)
	}
	for _, e := range doc.Edges {
		if err := g.AddEdge(e.Source, e.Target, e.Relationship); err != nil {
			return nil, pagegraph.Errorf(pagegraph.EINVALID, "invalid graph document: %s", pagegraph.ErrorMessage(err))
		}
	}
	return g, nil
}
