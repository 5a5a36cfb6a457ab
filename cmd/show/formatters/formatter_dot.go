package formatters

import (
	"fmt"
	"strings"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

// DOTFormatter formats graph snapshots as Graphviz DOT.
type DOTFormatter struct{}

// Format converts a graph snapshot to Graphviz DOT, styling nodes by kind:
// files and modules are boxes, functions ellipses.
func (f *DOTFormatter) Format(snapshot codegraph.Snapshot, opts FormatOptions) (string, error) {
	var sb strings.Builder
	sb.WriteString("digraph blueprint {\n")
	sb.WriteString("  rankdir=LR;\n")

	if opts.Label != "" {
		sb.WriteString(fmt.Sprintf("  label=%q;\n", opts.Label))
		sb.WriteString("  labelloc=t;\n")
		sb.WriteString("  labeljust=l;\n")
		sb.WriteString("  fontsize=10;\n")
		sb.WriteString("  fontname=Courier;\n")
	}
	sb.WriteString("\n")

	for _, node := range snapshot.Nodes {
		sb.WriteString(fmt.Sprintf("  %q [label=%q, %s];\n",
			node.ID.Hash(), node.Label, nodeStyle(node.ID.Kind)))
	}
	sb.WriteString("\n")

	for _, edge := range snapshot.Edges {
		sb.WriteString(fmt.Sprintf("  %q -> %q [%s];\n",
			edge.From.Hash(), edge.To.Hash(), edgeStyle(edge.Kind)))
	}

	sb.WriteString("}\n")
	return sb.String(), nil
}

func nodeStyle(kind codegraph.NodeKind) string {
	switch kind {
	case codegraph.NodeFile:
		return `shape=box, style=filled, fillcolor="#F1C40F", color="#B7950B"`
	case codegraph.NodeModule:
		return `shape=box, style=filled, fillcolor="#4A90E2", color="#1F78B4", penwidth=2`
	case codegraph.NodeFunction:
		return `shape=ellipse, style=filled, fillcolor="#F5F5F5", color="#CCCCCC"`
	}
	return "shape=box"
}

func edgeStyle(kind codegraph.EdgeKind) string {
	switch kind {
	case codegraph.EdgeDefines, codegraph.EdgeImports:
		return `color="#888888"`
	case codegraph.EdgeDeclares:
		return `color="#888888", style=dashed`
	case codegraph.EdgeCalls:
		return `color="#666666"`
	}
	return `color="#888888"`
}
