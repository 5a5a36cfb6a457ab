package source

import (
	"fmt"
	"os"
)

// ContentReader reads file content given a file path. The indirection lets
// callers control where bytes come from (filesystem, test fixtures, etc.).
type ContentReader func(filePath string) ([]byte, error)

// FilesystemContentReader returns a ContentReader backed by the local
// filesystem. An unreadable file is fatal to the run, so the error carries
// the offending path.
func FilesystemContentReader() ContentReader {
	return func(filePath string) ([]byte, error) {
		content, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", filePath, err)
		}
		return content, nil
	}
}
