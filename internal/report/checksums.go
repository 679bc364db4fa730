package report

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Checksum is one line of a checksums file.
type Checksum struct {
	SHA256 string
	Name   string
}

// WriteChecksums writes a sha256sum-compatible file covering artifactPaths.
// Names are relative to the directory of checksumsPath so that
// `sha256sum -c` can be run from there. Entries are sorted by name.
func WriteChecksums(checksumsPath string, artifactPaths []string) error {
	sums, err := Checksums(filepath.Dir(checksumsPath), artifactPaths)
	if err != nil {
		return err
	}
	var b strings.Builder
	for _, s := range sums {
		fmt.Fprintf(&b, "%s  %s\n", s.SHA256, s.Name)
	}
	return WriteFile(checksumsPath, []byte(b.String()))
}

// Checksums hashes every non-blank path and names it relative to base.
// Paths outside base keep their base name.
func Checksums(base string, artifactPaths []string) ([]Checksum, error) {
	out := make([]Checksum, 0, len(artifactPaths))
	for _, p := range artifactPaths {
		if strings.TrimSpace(p) == "" {
			continue
		}
		sum, err := hashFile(p)
		if err != nil {
			return nil, fmt.Errorf("checksum read failed for %s: %w", p, err)
		}
		out = append(out, Checksum{SHA256: sum, Name: relName(base, p)})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func relName(base, p string) string {
	rel, err := filepath.Rel(base, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return filepath.Base(p)
	}
	return filepath.ToSlash(rel)
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
