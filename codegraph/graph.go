package codegraph

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	graphlib "github.com/dominikbraun/graph"
)

// NodeKind classifies graph nodes for styling and identity.
type NodeKind string

const (
	NodeFile     NodeKind = "file"
	NodeModule   NodeKind = "module"
	NodeFunction NodeKind = "function"
)

// EdgeKind classifies graph edges.
type EdgeKind string

const (
	EdgeDefines  EdgeKind = "defines"
	EdgeImports  EdgeKind = "imports"
	EdgeDeclares EdgeKind = "declares"
	EdgeCalls    EdgeKind = "calls"
)

const edgeKindAttribute = "kind"

// NodeID is the identity of a graph node: two facts referring to the same
// (kind, qualified name) pair always denote the same node.
type NodeID struct {
	Kind NodeKind
	Name string
}

// Hash returns the stable string form of the identity, e.g. "module:pkg.sub".
func (id NodeID) Hash() string {
	return string(id.Kind) + ":" + id.Name
}

// ParseNodeID parses the string form produced by Hash.
func ParseNodeID(hash string) (NodeID, bool) {
	kind, name, found := strings.Cut(hash, ":")
	if !found || name == "" {
		return NodeID{}, false
	}
	switch NodeKind(kind) {
	case NodeFile, NodeModule, NodeFunction:
		return NodeID{Kind: NodeKind(kind), Name: name}, true
	}
	return NodeID{}, false
}

// Node is a graph vertex with a display label for renderers.
type Node struct {
	ID    NodeID
	Label string
}

// Edge is a directed, typed graph edge.
type Edge struct {
	From NodeID
	To   NodeID
	Kind EdgeKind
}

// Graph is a directed graph of files, modules and functions. Duplicate edges
// between the same pair of nodes are dropped; the first registered edge wins.
type Graph struct {
	g graphlib.Graph[string, Node]
}

func nodeHash(n Node) string {
	return n.ID.Hash()
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{g: graphlib.New(nodeHash, graphlib.Directed())}
}

// AddNode adds a node, keeping the existing node if the identity is already
// present.
func (g *Graph) AddNode(n Node) error {
	err := g.g.AddVertex(n)
	if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return fmt.Errorf("failed to add node %s: %w", n.ID.Hash(), err)
	}
	return nil
}

// EnsureNode adds a placeholder node for an identity referenced before its
// declaring fact set was processed. The label is derived from the qualified
// name alone: function nodes show the trailing component, everything else the
// full name.
func (g *Graph) EnsureNode(id NodeID) error {
	label := id.Name
	if id.Kind == NodeFunction {
		if i := strings.LastIndex(label, "."); i >= 0 {
			label = label[i+1:]
		}
	}
	return g.AddNode(Node{ID: id, Label: label})
}

// AddEdge adds a typed edge between two existing nodes. A duplicate edge
// between the same pair is silently dropped.
func (g *Graph) AddEdge(from, to NodeID, kind EdgeKind) error {
	err := g.g.AddEdge(from.Hash(), to.Hash(), graphlib.EdgeAttribute(edgeKindAttribute, string(kind)))
	if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
		return fmt.Errorf("failed to add %s edge %s -> %s: %w", kind, from.Hash(), to.Hash(), err)
	}
	return nil
}

// HasNode reports whether the identity exists in the graph.
func (g *Graph) HasNode(id NodeID) bool {
	_, err := g.g.Vertex(id.Hash())
	return err == nil
}

// Node returns the node stored for the identity.
func (g *Graph) Node(id NodeID) (Node, bool) {
	n, err := g.g.Vertex(id.Hash())
	if err != nil {
		return Node{}, false
	}
	return n, true
}

// Remove deletes a node and every edge incident to it.
func (g *Graph) Remove(id NodeID) error {
	hash := id.Hash()

	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("failed to read adjacency map: %w", err)
	}
	predecessors, err := g.g.PredecessorMap()
	if err != nil {
		return fmt.Errorf("failed to read predecessor map: %w", err)
	}

	for target := range adjacency[hash] {
		if err := g.g.RemoveEdge(hash, target); err != nil {
			return fmt.Errorf("failed to remove edge %s -> %s: %w", hash, target, err)
		}
	}
	for source := range predecessors[hash] {
		if source == hash {
			continue
		}
		if err := g.g.RemoveEdge(source, hash); err != nil {
			return fmt.Errorf("failed to remove edge %s -> %s: %w", source, hash, err)
		}
	}

	if err := g.g.RemoveVertex(hash); err != nil {
		return fmt.Errorf("failed to remove node %s: %w", hash, err)
	}
	return nil
}

// Order returns the number of nodes.
func (g *Graph) Order() (int, error) {
	return g.g.Order()
}

// Size returns the number of edges.
func (g *Graph) Size() (int, error) {
	return g.g.Size()
}

// Snapshot is the read-only renderer contract: nodes and edges in a
// deterministic order, independent of insertion order.
type Snapshot struct {
	Nodes []Node
	Edges []Edge
}

// Snapshot returns the current graph contents sorted by identity.
func (g *Graph) Snapshot() (Snapshot, error) {
	adjacency, err := g.g.AdjacencyMap()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read adjacency map: %w", err)
	}

	nodes := make([]Node, 0, len(adjacency))
	for hash := range adjacency {
		node, err := g.g.Vertex(hash)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to read node %s: %w", hash, err)
		}
		nodes = append(nodes, node)
	}
	sort.Slice(nodes, func(i, j int) bool {
		return nodes[i].ID.Hash() < nodes[j].ID.Hash()
	})

	rawEdges, err := g.g.Edges()
	if err != nil {
		return Snapshot{}, fmt.Errorf("failed to read edges: %w", err)
	}

	edges := make([]Edge, 0, len(rawEdges))
	for _, raw := range rawEdges {
		from, ok := ParseNodeID(raw.Source)
		if !ok {
			return Snapshot{}, fmt.Errorf("malformed node identity %q", raw.Source)
		}
		to, ok := ParseNodeID(raw.Target)
		if !ok {
			return Snapshot{}, fmt.Errorf("malformed node identity %q", raw.Target)
		}
		edges = append(edges, Edge{
			From: from,
			To:   to,
			Kind: EdgeKind(raw.Properties.Attributes[edgeKindAttribute]),
		})
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From.Hash() != edges[j].From.Hash() {
			return edges[i].From.Hash() < edges[j].From.Hash()
		}
		return edges[i].To.Hash() < edges[j].To.Hash()
	})

	return Snapshot{Nodes: nodes, Edges: edges}, nil
}
