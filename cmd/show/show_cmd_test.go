package show

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupPackage(t *testing.T) string {
	t.Helper()

	parent := t.TempDir()
	root := filepath.Join(parent, "app")
	require.NoError(t, os.Mkdir(root, 0o755))

	mainSrc := `import app.util as util

def run():
    util.helper()

run()
`
	utilSrc := `def helper():
    pass
`
	require.NoError(t, os.WriteFile(filepath.Join(root, "main.py"), []byte(mainSrc), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "util.py"), []byte(utilSrc), 0o644))
	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestShowCommand_DOTOnStdout(t *testing.T) {
	root := setupPackage(t)

	output, err := runCommand(t, "-r", root, "-f", "dot")

	require.NoError(t, err)
	assert.Contains(t, output, "digraph blueprint {")
	assert.Contains(t, output, `"file:app.main" -> "module:app.main"`)
	assert.Contains(t, output, `"module:app.main" -> "module:app.util"`)
	assert.Contains(t, output, `"function:app.main.run" -> "function:app.util.helper"`)
}

func TestShowCommand_JSONToFile(t *testing.T) {
	root := setupPackage(t)
	outputPath := filepath.Join(t.TempDir(), "graph.json")

	output, err := runCommand(t, "-r", root, "-f", "json", "-o", outputPath)

	require.NoError(t, err)
	assert.Contains(t, output, "Saved graph to "+outputPath)

	data, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"label": "app"`)
	assert.Contains(t, string(data), `"function:app.util.helper"`)
}

func TestShowCommand_HTMLDefaultsNextToRoot(t *testing.T) {
	root := setupPackage(t)

	output, err := runCommand(t, "-r", root)

	require.NoError(t, err)
	expected := filepath.Join(root, "blueprint_graph.html")
	assert.Contains(t, output, "Saved graph to "+expected)

	data, err := os.ReadFile(expected)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"module:app.util"`)
}

func TestShowCommand_IgnoreFlagPrunesModules(t *testing.T) {
	root := setupPackage(t)

	output, err := runCommand(t, "-r", root, "-f", "dot", "--ignore", "app.util")

	require.NoError(t, err)
	assert.NotContains(t, output, "app.util")
	assert.Contains(t, output, `"module:app.main"`)
}

func TestShowCommand_StrictFailsOnParseError(t *testing.T) {
	root := setupPackage(t)
	require.NoError(t, os.WriteFile(
		filepath.Join(root, "broken.py"),
		[]byte("def incomplete(:\n"),
		0o644,
	))

	_, lenientErr := runCommand(t, "-r", root, "-f", "dot")
	require.NoError(t, lenientErr)

	_, strictErr := runCommand(t, "-r", root, "-f", "dot", "--strict")
	require.Error(t, strictErr)
	assert.Contains(t, strictErr.Error(), "broken.py")
}

func TestShowCommand_RejectsUnknownFormat(t *testing.T) {
	root := setupPackage(t)

	_, err := runCommand(t, "-r", root, "-f", "yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "yaml")
}

func TestShowCommand_RejectsMissingRoot(t *testing.T) {
	_, err := runCommand(t, "-r", filepath.Join(t.TempDir(), "missing"))

	require.Error(t, err)
}
