package pyast

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// ParseError reports source that does not parse as valid Python.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("failed to parse %s: %v", e.Path, e.Err)
	}
	return fmt.Sprintf("%s contains syntax errors", e.Path)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// parse parses Python source into a tree-sitter syntax tree. The caller owns
// the returned tree and must Close it.
func parse(path string, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if tree.RootNode().HasError() {
		tree.Close()
		return nil, &ParseError{Path: path}
	}

	return tree, nil
}
