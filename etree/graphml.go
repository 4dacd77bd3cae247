// Package etree serializes page graphs as GraphML using beevik/etree.
package etree

import (
	"fmt"
	"io"

	"github.com/beevik/etree"
	"github.com/fwojciec/pagegraph"
)

// Ensure GraphMLEncoder implements pagegraph.GraphEncoder at compile time.
var _ pagegraph.GraphEncoder = (*GraphMLEncoder)(nil)

// GraphMLNamespace is the XML namespace of GraphML documents.
const GraphMLNamespace = "http://graphml.graphdrawing.org/xmlns"

// relationshipKey is the GraphML data key holding edge labels.
const relationshipKey = "relationship"

// GraphMLEncoder writes a graph as a directed GraphML document.
type GraphMLEncoder struct {
	// Indent is the number of spaces per nesting level.
	Indent int
}

// NewGraphMLEncoder creates a GraphMLEncoder indenting with two spaces.
func NewGraphMLEncoder() *GraphMLEncoder {
	return &GraphMLEncoder{Indent: 2}
}

// EncodeGraph writes g to w. Edge labels are stored as "relationship" data.
func (e *GraphMLEncoder) EncodeGraph(w io.Writer, g *pagegraph.Graph) error {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("graphml")
	root.CreateAttr("xmlns", GraphMLNamespace)

	key := root.CreateElement("key")
	key.CreateAttr("id", relationshipKey)
	key.CreateAttr("for", "edge")
	key.CreateAttr("attr.name", relationshipKey)
	key.CreateAttr("attr.type", "string")

	graph := root.CreateElement("graph")
	graph.CreateAttr("id", "pages")
	graph.CreateAttr("edgedefault", "directed")

	for _, n := range g.Nodes() {
		node := graph.CreateElement("node")
		node.CreateAttr("id", n.ID)
	}

	for i, edge := range g.Edges() {
		el := graph.CreateElement("edge")
		el.CreateAttr("id", fmt.Sprintf("e%d", i))
		el.CreateAttr("source", edge.Source)
		el.CreateAttr("target", edge.Target)

		data := el.CreateElement("data")
		data.CreateAttr("key", relationshipKey)
		data.SetText(edge.Relationship)
	}

	doc.Indent(e.Indent)
	_, err := doc.WriteTo(w)
	return err
}
