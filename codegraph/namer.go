package codegraph

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ModuleName maps a file path under rootDir to its dotted qualified module
// name, prefixed with the root package name. It is a pure function of its
// arguments; a path outside rootDir is a usage error.
func ModuleName(path, rootDir, rootPackage string) (string, error) {
	rel, err := filepath.Rel(rootDir, path)
	if err != nil {
		return "", fmt.Errorf("failed to relativize %s against %s: %w", path, rootDir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("path %s is outside the package root %s", path, rootDir)
	}

	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	parts := strings.Split(filepath.ToSlash(rel), "/")

	return rootPackage + "." + strings.Join(parts, "."), nil
}
