package formatters

import (
	"encoding/json"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

// JSONFormatter formats graph snapshots as JSON.
type JSONFormatter struct{}

type jsonGraphOutput struct {
	Label string          `json:"label,omitempty"`
	Nodes []jsonGraphNode `json:"nodes"`
	Edges []jsonGraphEdge `json:"edges"`
}

type jsonGraphNode struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

type jsonGraphEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
	Kind string `json:"kind"`
}

// Format converts a graph snapshot to indented JSON. Nodes and edges keep
// the snapshot's deterministic order.
func (f *JSONFormatter) Format(snapshot codegraph.Snapshot, opts FormatOptions) (string, error) {
	nodes := make([]jsonGraphNode, 0, len(snapshot.Nodes))
	for _, node := range snapshot.Nodes {
		nodes = append(nodes, jsonGraphNode{
			ID:    node.ID.Hash(),
			Kind:  string(node.ID.Kind),
			Name:  node.ID.Name,
			Label: node.Label,
		})
	}

	edges := make([]jsonGraphEdge, 0, len(snapshot.Edges))
	for _, edge := range snapshot.Edges {
		edges = append(edges, jsonGraphEdge{
			From: edge.From.Hash(),
			To:   edge.To.Hash(),
			Kind: string(edge.Kind),
		})
	}

	output := jsonGraphOutput{
		Label: opts.Label,
		Nodes: nodes,
		Edges: edges,
	}

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
