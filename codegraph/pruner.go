package codegraph

import "sort"

// defaultIgnoreModules are well-known external modules that clutter the
// visualization when a tracked name collides with them.
var defaultIgnoreModules = []string{
	"logging",
	"os",
	"sys",
	"timeit",
	"pytz",
	"datetime",
	"numpy",
	"traceback",
}

// DefaultIgnoreModules returns the built-in ignore list.
func DefaultIgnoreModules() []string {
	return append([]string(nil), defaultIgnoreModules...)
}

// IgnoreSet holds module names excluded from the final graph.
type IgnoreSet map[string]bool

// NewIgnoreSet builds an ignore set from module names.
func NewIgnoreSet(names ...string) IgnoreSet {
	set := make(IgnoreSet, len(names))
	for _, name := range names {
		if name != "" {
			set[name] = true
		}
	}
	return set
}

// Matches reports whether a qualified name is an ignored module or lives
// under one (exact match or dotted-prefix match).
func (s IgnoreSet) Matches(name string) bool {
	if s[name] {
		return true
	}
	for ignored := range s {
		if len(name) > len(ignored) && name[:len(ignored)] == ignored && name[len(ignored)] == '.' {
			return true
		}
	}
	return false
}

// Prune removes every node whose qualified name matches the ignore set,
// along with all edges incident to the removed nodes. No other nodes are
// touched; pruning an already pruned graph changes nothing.
func Prune(g *Graph, ignore IgnoreSet) error {
	if len(ignore) == 0 {
		return nil
	}

	snapshot, err := g.Snapshot()
	if err != nil {
		return err
	}

	var doomed []NodeID
	for _, node := range snapshot.Nodes {
		if ignore.Matches(node.ID.Name) {
			doomed = append(doomed, node.ID)
		}
	}
	sort.Slice(doomed, func(i, j int) bool {
		return doomed[i].Hash() < doomed[j].Hash()
	})

	for _, id := range doomed {
		if err := g.Remove(id); err != nil {
			return err
		}
	}
	return nil
}
