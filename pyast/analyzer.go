package pyast

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
)

// Analyze parses one file and extracts its local fact set: intra-package
// imports, alias table, function definitions and resolved call sites.
// Resolution is purely lexical; only names under rootPackage are tracked.
// The alias table is scoped to the file and discarded when Analyze returns.
func Analyze(path, moduleName, rootPackage string, source []byte) (codegraph.FileFacts, error) {
	tree, err := parse(path, source)
	if err != nil {
		return codegraph.FileFacts{}, err
	}
	defer tree.Close()

	a := &analyzer{
		src:         source,
		module:      moduleName,
		rootPackage: rootPackage,
		importSeen:  make(map[string]bool),
		aliases:     make(map[string]string),
		funcDefs:    make(map[string]string),
	}
	a.walk(tree.RootNode(), "", "")

	functions := make([]string, 0, len(a.funcOrder))
	for _, simple := range a.funcOrder {
		functions = append(functions, a.funcDefs[simple])
	}

	return codegraph.FileFacts{
		Path:      path,
		Module:    moduleName,
		Imports:   a.imports,
		Functions: functions,
		Calls:     a.calls,
	}, nil
}

// analyzer accumulates one file's facts. Traversal context (the enclosing
// function and class) is threaded through walk as arguments so it restores
// itself on the way out of nested definitions.
type analyzer struct {
	src         []byte
	module      string
	rootPackage string

	imports    []string
	importSeen map[string]bool
	aliases    map[string]string
	funcDefs   map[string]string
	funcOrder  []string
	calls      []codegraph.Call
}

func (a *analyzer) walk(n *sitter.Node, currentFn, currentClass string) {
	switch n.Type() {
	case "import_statement":
		a.visitImport(n)

	case "import_from_statement", "future_import_statement":
		a.visitImportFrom(n)

	case "class_definition":
		if name := fieldText(n, "name", a.src); name != "" {
			a.walkChildren(n, currentFn, name)
			return
		}

	case "function_definition":
		if name := fieldText(n, "name", a.src); name != "" {
			qualified := a.module + "." + name
			if currentClass != "" {
				qualified = a.module + "." + currentClass + "." + name
			}
			a.defineFunction(name, qualified)
			a.walkChildren(n, qualified, currentClass)
			return
		}

	case "call":
		a.visitCall(n, currentFn)
	}

	a.walkChildren(n, currentFn, currentClass)
}

func (a *analyzer) walkChildren(n *sitter.Node, currentFn, currentClass string) {
	for i := 0; i < int(n.ChildCount()); i++ {
		if child := n.Child(i); child != nil {
			a.walk(child, currentFn, currentClass)
		}
	}
}

// defineFunction registers a definition under its simple name. A later
// definition with the same simple name overwrites the earlier one, so bare
// calls resolve to the most recently visited definition.
func (a *analyzer) defineFunction(simple, qualified string) {
	if _, exists := a.funcDefs[simple]; !exists {
		a.funcOrder = append(a.funcOrder, simple)
	}
	a.funcDefs[simple] = qualified
}

func (a *analyzer) addImport(module string) {
	if module == "" || a.importSeen[module] {
		return
	}
	a.importSeen[module] = true
	a.imports = append(a.imports, module)
}

// visitImport handles "import a.b" and "import a.b as c".
func (a *analyzer) visitImport(n *sitter.Node) {
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}

		var full, bound string
		switch child.Type() {
		case "dotted_name", "identifier":
			full = text(child, a.src)
			bound = full
		case "aliased_import":
			full = fieldText(child, "name", a.src)
			bound = fieldText(child, "alias", a.src)
			if bound == "" {
				bound = full
			}
		default:
			continue
		}

		if full == "" {
			continue
		}
		a.aliases[bound] = full
		if strings.HasPrefix(full, a.rootPackage) {
			a.addImport(full)
		}
	}
}

// visitImportFrom handles "from x import y" statements. Leading dots resolve
// relative to the current module by trimming that many trailing components.
// A wildcard import cannot be resolved statically and contributes nothing.
func (a *analyzer) visitImportFrom(n *sitter.Node) {
	module := ""
	seenImportKeyword := false

	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "import" {
			seenImportKeyword = true
			continue
		}

		if !seenImportKeyword {
			switch child.Type() {
			case "relative_import":
				module = a.resolveRelativeImport(child)
			case "dotted_name":
				module = text(child, a.src)
			}
			continue
		}

		var name, bound string
		switch child.Type() {
		case "wildcard_import":
			continue
		case "dotted_name", "identifier":
			name = text(child, a.src)
			bound = name
		case "aliased_import":
			name = fieldText(child, "name", a.src)
			bound = fieldText(child, "alias", a.src)
			if bound == "" {
				bound = name
			}
		default:
			continue
		}

		if name == "" {
			continue
		}
		full := name
		if module != "" {
			full = module + "." + name
		}
		a.aliases[bound] = full
		if strings.HasPrefix(full, a.rootPackage) {
			a.addImport(module)
		}
	}
}

// resolveRelativeImport turns ".sub" / ".." into a qualified module name
// anchored at the current module.
func (a *analyzer) resolveRelativeImport(n *sitter.Node) string {
	level := 0
	suffix := ""
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "import_prefix":
			level += strings.Count(text(child, a.src), ".")
		case "dotted_name":
			suffix = text(child, a.src)
		}
	}

	parent := trimModuleComponents(a.module, level)
	if suffix == "" {
		return parent
	}
	return parent + "." + suffix
}

// trimModuleComponents drops the last level dotted components, keeping at
// least the leading one.
func trimModuleComponents(module string, level int) string {
	parts := strings.Split(module, ".")
	keep := len(parts) - level
	if keep < 1 {
		keep = 1
	}
	return strings.Join(parts[:keep], ".")
}

// visitCall resolves a call expression to a qualified callee, when the
// target is statically resolvable:
//
//   - a bare name defined earlier in this file resolves to that function;
//   - a bare name aliased to an intra-package target resolves to a function
//     (dotted target) or module (plain target);
//   - an attribute access on an aliased bare name resolves to
//     <alias-target>.<attribute>.
//
// Anything else is left out of the graph.
func (a *analyzer) visitCall(n *sitter.Node, currentFn string) {
	fn := n.ChildByFieldName("function")
	if fn == nil {
		return
	}

	var callee *codegraph.NodeID
	switch fn.Type() {
	case "identifier":
		name := text(fn, a.src)
		if qualified, ok := a.funcDefs[name]; ok {
			callee = &codegraph.NodeID{Kind: codegraph.NodeFunction, Name: qualified}
		} else if full, ok := a.aliases[name]; ok && strings.HasPrefix(full, a.rootPackage) {
			if strings.Contains(full, ".") {
				callee = &codegraph.NodeID{Kind: codegraph.NodeFunction, Name: full}
			} else {
				callee = &codegraph.NodeID{Kind: codegraph.NodeModule, Name: full}
			}
		}

	case "attribute":
		object := fn.ChildByFieldName("object")
		attribute := fn.ChildByFieldName("attribute")
		if object == nil || attribute == nil || object.Type() != "identifier" {
			return
		}
		if full, ok := a.aliases[text(object, a.src)]; ok && strings.HasPrefix(full, a.rootPackage) {
			callee = &codegraph.NodeID{
				Kind: codegraph.NodeFunction,
				Name: full + "." + text(attribute, a.src),
			}
		}
	}

	if callee == nil {
		return
	}

	caller := codegraph.NodeID{Kind: codegraph.NodeModule, Name: a.module}
	if currentFn != "" {
		caller = codegraph.NodeID{Kind: codegraph.NodeFunction, Name: currentFn}
	}
	a.calls = append(a.calls, codegraph.Call{Caller: caller, Callee: *callee})
}

func text(n *sitter.Node, src []byte) string {
	return strings.TrimSpace(n.Content(src))
}

func fieldText(n *sitter.Node, field string, src []byte) string {
	child := n.ChildByFieldName(field)
	if child == nil {
		return ""
	}
	return text(child, src)
}
