package imaging

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// Discover returns the source photos under dir matched by include and not by
// exclude. Backups and generated variants are always skipped. Paths are
// joined to dir and sorted.
func Discover(dir string, include, exclude []string) ([]string, error) {
	if len(include) == 0 {
		include = []string{"**/*.webp"}
	}
	fsys := os.DirFS(dir)

	seen := make(map[string]bool)
	var out []string
	for _, pattern := range include {
		if !doublestar.ValidatePattern(pattern) {
			return nil, fmt.Errorf("invalid include pattern %q", pattern)
		}
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("globbing %q: %w", pattern, err)
		}
		for _, m := range matches {
			if seen[m] || IsBackup(m) || IsVariant(m) || excluded(m, exclude) {
				continue
			}
			seen[m] = true
			out = append(out, filepath.Join(dir, filepath.FromSlash(m)))
		}
	}
	sort.Strings(out)
	return out, nil
}

func excluded(rel string, patterns []string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func fileSize(path string) (int64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, err
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%s: %w", path, fs.ErrInvalid)
	}
	return info.Size(), nil
}
