package pagegraph

import (
	"context"
	"io"
)

// Node is a page of the graph.
type Node struct {
	ID string `json:"id"`
}

// Edge is a directed link from one page to another, labeled with the
// anchor text.
type Edge struct {
	Source       string `json:"source"`
	Target       string `json:"target"`
	Relationship string `json:"relationship"`
}

// EdgePolicy decides what happens when a page links to the same target
// more than once.
type EdgePolicy string

// Edge policies.
const (
	// EdgePolicyLast keeps one edge per ordered pair; a later anchor
	// overwrites the label but the edge keeps its original position.
	EdgePolicyLast EdgePolicy = "last"

	// EdgePolicyFirst keeps one edge per ordered pair with the label of
	// the first anchor.
	EdgePolicyFirst EdgePolicy = "first"

	// EdgePolicyAll keeps a parallel edge for every distinct label.
	EdgePolicyAll EdgePolicy = "all"
)

// ParseEdgePolicy parses a policy name. The empty string selects
// EdgePolicyLast.
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch p := EdgePolicy(s); p {
	case "":
		return EdgePolicyLast, nil
	case EdgePolicyLast, EdgePolicyFirst, EdgePolicyAll:
		return p, nil
	default:
		return "", Errorf(EINVALID, "unknown edge policy %q", s)
	}
}

type edgeKey struct {
	source       string
	target       string
	relationship string
}

// Graph is a directed graph of pages. Nodes and edges keep insertion order.
// Every edge endpoint is a node of the graph.
type Graph struct {
	policy    EdgePolicy
	nodes     []Node
	nodeIndex map[string]struct{}
	edges     []Edge
	edgeIndex map[edgeKey]int
}

// NewGraph returns an empty graph that resolves repeated links with policy.
// An empty policy selects EdgePolicyLast.
func NewGraph(policy EdgePolicy) *Graph {
	if policy == "" {
		policy = EdgePolicyLast
	}
	return &Graph{
		policy:    policy,
		nodeIndex: make(map[string]struct{}),
		edgeIndex: make(map[edgeKey]int),
	}
}

// Policy returns the edge policy of the graph.
func (g *Graph) Policy() EdgePolicy {
	return g.policy
}

// AddNode adds a node. Returns false if the node already exists.
func (g *Graph) AddNode(id string) bool {
	if _, ok := g.nodeIndex[id]; ok {
		return false
	}
	g.nodeIndex[id] = struct{}{}
	g.nodes = append(g.nodes, Node{ID: id})
	return true
}

// HasNode reports whether id is a node of the graph.
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodeIndex[id]
	return ok
}

// AddEdge adds a directed edge from source to target.
// Returns ENOTFOUND, and leaves the graph unchanged, if either endpoint
// is not a node.
func (g *Graph) AddEdge(source, target, relationship string) error {
	if !g.HasNode(source) {
		return Errorf(ENOTFOUND, "edge source %q is not a node", source)
	}
	if !g.HasNode(target) {
		return Errorf(ENOTFOUND, "edge target %q is not a node", target)
	}

	key := edgeKey{source: source, target: target}
	if g.policy == EdgePolicyAll {
		key.relationship = relationship
	}

	if idx, ok := g.edgeIndex[key]; ok {
		if g.policy == EdgePolicyLast {
			g.edges[idx].Relationship = relationship
		}
		return nil
	}

	g.edgeIndex[key] = len(g.edges)
	g.edges = append(g.edges, Edge{Source: source, Target: target, Relationship: relationship})
	return nil
}

// Nodes returns a copy of the nodes in insertion order.
func (g *Graph) Nodes() []Node {
	return append([]Node{}, g.nodes...)
}

// Edges returns a copy of the edges in insertion order.
func (g *Graph) Edges() []Edge {
	return append([]Edge{}, g.edges...)
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.nodes)
}

// EdgeCount returns the number of edges.
func (g *Graph) EdgeCount() int {
	return len(g.edges)
}

// GraphEncoder serializes a graph.
type GraphEncoder interface {
	EncodeGraph(w io.Writer, g *Graph) error
}

// GraphStore persists a graph.
type GraphStore interface {
	// SaveGraph replaces the stored graph with g.
	SaveGraph(ctx context.Context, g *Graph) error

	// LoadGraph returns the stored graph with every stored edge.
	LoadGraph(ctx context.Context) (*Graph, error)
}
