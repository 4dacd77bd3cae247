package scan

import (
	"io"

	"github.com/fwojciec/pagegraph"
)

type assemblerState int

const (
	stateEmpty assemblerState = iota
	stateNodesLoaded
	stateEdgesLoaded
	stateExported
)

func (s assemblerState) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateNodesLoaded:
		return "nodes loaded"
	case stateEdgesLoaded:
		return "edges loaded"
	case stateExported:
		return "exported"
	default:
		return "unknown"
	}
}

// LinksFunc returns the resolved outbound links of a page.
type LinksFunc func(record *pagegraph.PageRecord) ([]pagegraph.Link, error)

// Assembler builds a page graph in three steps: nodes are loaded from
// page records, edges are loaded from each page's links, and the graph is
// exported. Calling a step out of order returns EINVALID.
type Assembler struct {
	graph   *pagegraph.Graph
	records []*pagegraph.PageRecord
	index   map[string]int
	state   assemblerState
}

// NewAssembler returns an empty assembler whose graph resolves repeated
// links with policy.
func NewAssembler(policy pagegraph.EdgePolicy) *Assembler {
	return &Assembler{
		graph: pagegraph.NewGraph(policy),
		index: make(map[string]int),
	}
}

// LoadNodes registers one node per distinct page identifier, in record
// order. When records share an identifier, the last record is used to
// resolve links but the node keeps its first position.
func (a *Assembler) LoadNodes(records []*pagegraph.PageRecord) error {
	if err := a.expect(stateEmpty, "load nodes"); err != nil {
		return err
	}

	for _, r := range records {
		id := r.ID()
		if idx, ok := a.index[id]; ok {
			a.records[idx] = r
			continue
		}
		a.graph.AddNode(id)
		a.index[id] = len(a.records)
		a.records = append(a.records, r)
	}

	a.state = stateNodesLoaded
	return nil
}

// LoadEdges asks linksOf for the links of every node, in load order, and
// adds an edge for each link whose target is a known node. Links to
// unknown pages are dropped. An error from linksOf aborts the load.
func (a *Assembler) LoadEdges(linksOf LinksFunc) error {
	if err := a.expect(stateNodesLoaded, "load edges"); err != nil {
		return err
	}

	for _, r := range a.records {
		links, err := linksOf(r)
		if err != nil {
			return err
		}

		source := r.ID()
		for _, link := range links {
			if !a.graph.HasNode(link.Target) {
				continue
			}
			if err := a.graph.AddEdge(source, link.Target, link.Text); err != nil {
				return err
			}
		}
	}

	a.state = stateEdgesLoaded
	return nil
}

// Export writes the graph to w with enc. A graph can be exported once.
func (a *Assembler) Export(enc pagegraph.GraphEncoder, w io.Writer) error {
	if err := a.expect(stateEdgesLoaded, "export"); err != nil {
		return err
	}

	if err := enc.EncodeGraph(w, a.graph); err != nil {
		return err
	}

	a.state = stateExported
	return nil
}

// Graph returns the graph assembled so far.
func (a *Assembler) Graph() *pagegraph.Graph {
	return a.graph
}

func (a *Assembler) expect(want assemblerState, op string) error {
	if a.state != want {
		return pagegraph.Errorf(pagegraph.EINVALID, "cannot %s: graph is %s", op, a.state)
	}
	return nil
}
