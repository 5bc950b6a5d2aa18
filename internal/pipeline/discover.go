package pipeline

import (
	"io/fs"
	"path/filepath"
	"strings"
)

// losslessExtensions are the standalone formats picked up in phase
// two. WAV sources are only converted through CUE sheets.
var losslessExtensions = map[string]struct{}{
	".flac": {},
	".ape":  {},
}

// discoverCueSheets walks root and returns every CUE sheet in lexical
// order.
func discoverCueSheets(root string) ([]string, error) {
	return discover(root, func(path string) bool {
		return strings.EqualFold(filepath.Ext(path), ".cue")
	})
}

// discoverStandalone walks root and returns every lossless audio file
// whose canonical path is not in claimed.
func discoverStandalone(root string, claimed map[string]struct{}) ([]string, error) {
	return discover(root, func(path string) bool {
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := losslessExtensions[ext]; !ok {
			return false
		}
		_, taken := claimed[canonicalPath(path)]
		return !taken
	})
}

func discover(root string, keep func(string) bool) ([]string, error) {
	var paths []string
	err := filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			if entry != nil && entry.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if keep(path) {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}

// canonicalPath resolves path to an absolute, symlink-free form so
// claimed-set membership is immune to relative/absolute mismatches.
func canonicalPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return filepath.Clean(path)
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}
