package codegraph

import (
	"path/filepath"
	"strings"
)

// Build merges per-file fact sets into one graph. The fact sets must be
// complete before merging starts: a call site in one file may reference a
// function declared in a file that has not been merged yet, in which case a
// placeholder node is created from the qualified name alone and later merges
// reuse it. After Build returns, every edge's endpoints exist as nodes.
//
// Fact sets may be supplied in any order; the resulting graph is identical.
func Build(facts []FileFacts) (*Graph, error) {
	g := New()

	for _, f := range facts {
		fileID := NodeID{Kind: NodeFile, Name: f.Module}
		if err := g.AddNode(Node{ID: fileID, Label: filepath.Base(f.Path)}); err != nil {
			return nil, err
		}

		moduleID := NodeID{Kind: NodeModule, Name: f.Module}
		if err := g.AddNode(Node{ID: moduleID, Label: f.Module}); err != nil {
			return nil, err
		}
		if err := g.AddEdge(fileID, moduleID, EdgeDefines); err != nil {
			return nil, err
		}

		for _, imported := range f.Imports {
			target := NodeID{Kind: NodeModule, Name: imported}
			if err := g.AddNode(Node{ID: target, Label: imported}); err != nil {
				return nil, err
			}
			if err := g.AddEdge(moduleID, target, EdgeImports); err != nil {
				return nil, err
			}
		}

		for _, qualified := range f.Functions {
			fn := NodeID{Kind: NodeFunction, Name: qualified}
			if err := g.AddNode(Node{ID: fn, Label: simpleName(qualified)}); err != nil {
				return nil, err
			}
			if err := g.AddEdge(moduleID, fn, EdgeDeclares); err != nil {
				return nil, err
			}
		}

		for _, call := range f.Calls {
			if err := g.EnsureNode(call.Caller); err != nil {
				return nil, err
			}
			if err := g.EnsureNode(call.Callee); err != nil {
				return nil, err
			}
			if err := g.AddEdge(call.Caller, call.Callee, EdgeCalls); err != nil {
				return nil, err
			}
		}
	}

	return g, nil
}

func simpleName(qualified string) string {
	if i := strings.LastIndex(qualified, "."); i >= 0 {
		return qualified[i+1:]
	}
	return qualified
}
