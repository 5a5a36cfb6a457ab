package codegraph

// Call records one resolved call site: both endpoints are fully qualified.
// The caller is either a function node or, for module-level code, the
// enclosing module node itself.
type Call struct {
	Caller NodeID
	Callee NodeID
}

// FileFacts is the local fact set one file's analysis produces. Facts are
// self-contained: merging them into the shared graph needs no other per-file
// state, which is what keeps the analysis pass order-independent.
type FileFacts struct {
	// Path is the analyzed file's path as supplied by the enumerator.
	Path string
	// Module is the file's qualified module name.
	Module string
	// Imports lists imported intra-package module names, deduplicated, in
	// the order they were first seen.
	Imports []string
	// Functions lists the qualified names of functions the file defines.
	// Within a module a simple name maps to its most recently visited
	// definition, so two methods sharing a name contribute one entry.
	Functions []string
	// Calls lists resolved call sites in traversal order.
	Calls []Call
}
