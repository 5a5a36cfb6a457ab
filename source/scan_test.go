package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestListPythonFiles(t *testing.T) {
	tmpDir := t.TempDir()
	writeFile(t, filepath.Join(tmpDir, "main.py"), "")
	writeFile(t, filepath.Join(tmpDir, "sub", "util.py"), "")
	writeFile(t, filepath.Join(tmpDir, "README.md"), "")
	writeFile(t, filepath.Join(tmpDir, "__pycache__", "main.cpython-312.pyc"), "")
	writeFile(t, filepath.Join(tmpDir, "__pycache__", "stale.py"), "")
	writeFile(t, filepath.Join(tmpDir, ".venv", "lib", "site.py"), "")

	files, err := ListPythonFiles(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "main.py"),
		filepath.Join(tmpDir, "sub", "util.py"),
	}, files)
}

func TestListPythonFiles_EmptyTree(t *testing.T) {
	files, err := ListPythonFiles(t.TempDir())

	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestValidateRoot(t *testing.T) {
	tmpDir := t.TempDir()

	absRoot, err := ValidateRoot(tmpDir)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(absRoot))
}

func TestValidateRoot_Missing(t *testing.T) {
	_, err := ValidateRoot(filepath.Join(t.TempDir(), "nope"))

	assert.ErrorIs(t, err, ErrRootNotFound)
}

func TestValidateRoot_NotADirectory(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "main.py")
	writeFile(t, file, "")

	_, err := ValidateRoot(file)

	assert.ErrorIs(t, err, ErrNotADirectory)
}

func TestFilesystemContentReader(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "main.py")
	writeFile(t, file, "import os\n")

	reader := FilesystemContentReader()

	content, err := reader(file)
	require.NoError(t, err)
	assert.Equal(t, "import os\n", string(content))

	_, err = reader(filepath.Join(tmpDir, "missing.py"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing.py")
}
