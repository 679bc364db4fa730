// Package report writes the artifacts of a render: the document itself, the
// labels JSON, checksums and the run log.
package report

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// WriteFile writes data to path, creating parent directories.
func WriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil && dir != "." {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteJSON writes value as indented JSON with a trailing newline.
func WriteJSON(path string, value interface{}) error {
	b, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return WriteFile(path, append(b, '\n'))
}
