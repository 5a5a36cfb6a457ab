package source

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// ErrRootNotFound reports a root directory that does not exist.
var ErrRootNotFound = errors.New("root directory does not exist")

// ErrNotADirectory reports a root path that is not a directory.
var ErrNotADirectory = errors.New("root path is not a directory")

var skippedDirs = map[string]bool{
	".git":          true,
	".hg":           true,
	".idea":         true,
	".mypy_cache":   true,
	".pytest_cache": true,
	".tox":          true,
	".venv":         true,
	".vscode":       true,
	"__pycache__":   true,
	"node_modules":  true,
	"venv":          true,
}

// ValidateRoot checks that root exists and is a directory, returning its
// absolute path. Failures here are usage errors reported before any
// analysis begins.
func ValidateRoot(root string) (string, error) {
	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", fmt.Errorf("failed to resolve root path %s: %w", root, err)
	}

	info, err := os.Stat(absRoot)
	if os.IsNotExist(err) {
		return "", fmt.Errorf("%w: %s", ErrRootNotFound, absRoot)
	}
	if err != nil {
		return "", fmt.Errorf("failed to stat root path %s: %w", absRoot, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, absRoot)
	}

	return absRoot, nil
}

// ListPythonFiles returns every .py file under root, sorted, skipping
// well-known tool and cache directories.
func ListPythonFiles(root string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != root && skippedDirs[d.Name()] {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) == ".py" {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan %s: %w", root, err)
	}

	sort.Strings(files)
	return files, nil
}
