package layoutgen

import (
	"crypto/sha256"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
)

func fileSHA256(path string) (string, []byte, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", nil, err
	}
	h := sha256.Sum256(b)
	return hex.EncodeToString(h[:]), b, nil
}

// absPath normalizes a user supplied path; empty stays empty.
func absPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", nil
	}
	return filepath.Abs(p)
}
