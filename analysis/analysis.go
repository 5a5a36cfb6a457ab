// Package analysis wires the scan pipeline: enumerate Python files under a
// root, analyze each file independently, merge the fact sets into one graph,
// and prune ignored modules.
package analysis

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/LegacyCodeHQ/blueprint/codegraph"
	"github.com/LegacyCodeHQ/blueprint/pyast"
	"github.com/LegacyCodeHQ/blueprint/source"
)

// Config carries every setting the pipeline needs. Components receive it
// explicitly; there is no package-level state to configure.
type Config struct {
	// Root is the absolute path of the analyzed package root.
	Root string
	// RootPackage is the package's own name, the prefix of every qualified
	// name the analysis tracks.
	RootPackage string
	// Ignore is the set of module names pruned from the final graph.
	Ignore codegraph.IgnoreSet
	// SkipParseErrors isolates a syntax error to its file instead of
	// aborting the whole run.
	SkipParseErrors bool
	// ContentReader supplies file bytes; defaults to the filesystem.
	ContentReader source.ContentReader
}

// NewConfig validates root and derives the remaining settings: the root
// package name is the root directory's own base name, and the ignore set is
// the built-in list plus extraIgnores.
func NewConfig(root string, extraIgnores []string) (Config, error) {
	absRoot, err := source.ValidateRoot(root)
	if err != nil {
		return Config{}, err
	}

	ignore := codegraph.DefaultIgnoreModules()
	ignore = append(ignore, extraIgnores...)

	return Config{
		Root:          absRoot,
		RootPackage:   filepath.Base(absRoot),
		Ignore:        codegraph.NewIgnoreSet(ignore...),
		ContentReader: source.FilesystemContentReader(),
	}, nil
}

// Run executes the full pipeline and returns the pruned graph.
func Run(cfg Config) (*codegraph.Graph, error) {
	files, err := source.ListPythonFiles(cfg.Root)
	if err != nil {
		return nil, err
	}

	facts, err := AnalyzeFiles(files, cfg)
	if err != nil {
		return nil, err
	}

	graph, err := codegraph.Build(facts)
	if err != nil {
		return nil, err
	}

	if err := codegraph.Prune(graph, cfg.Ignore); err != nil {
		return nil, err
	}

	return graph, nil
}

// AnalyzeFiles runs the per-file analysis pass. Each file's analysis is
// independent and side-effect-free outside its own fact set, so the returned
// facts do not depend on file order. A file that fails to parse aborts the
// pass unless cfg.SkipParseErrors is set, in which case it is skipped with a
// warning.
func AnalyzeFiles(files []string, cfg Config) ([]codegraph.FileFacts, error) {
	reader := cfg.ContentReader
	if reader == nil {
		reader = source.FilesystemContentReader()
	}

	facts := make([]codegraph.FileFacts, 0, len(files))
	for _, file := range files {
		content, err := reader(file)
		if err != nil {
			return nil, err
		}

		moduleName, err := codegraph.ModuleName(file, cfg.Root, cfg.RootPackage)
		if err != nil {
			return nil, err
		}

		fileFacts, err := pyast.Analyze(file, moduleName, cfg.RootPackage, content)
		if err != nil {
			var parseErr *pyast.ParseError
			if cfg.SkipParseErrors && errors.As(err, &parseErr) {
				slog.Warn("skipping file with syntax errors", "path", file)
				continue
			}
			return nil, fmt.Errorf("analysis failed for %s: %w", file, err)
		}

		facts = append(facts, fileFacts)
	}

	return facts, nil
}
