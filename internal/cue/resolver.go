package cue

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"cuepress/internal/services"
	"cuepress/internal/textutil"
)

// siblingExtensions are tried against the CUE basename before the
// sheet's own FILE directive is consulted, in priority order.
var siblingExtensions = []string{".flac", ".ape", ".wav"}

var fileDirective = regexp.MustCompile(`(?i)^\s*FILE\s+"([^"]+)"\s+(WAVE|APE|FLAC)\s*$`)

// ResolveAudio returns the on-disk audio file backing the CUE sheet.
// Same-basename siblings win over the sheet's FILE directive; a
// directive path is resolved relative to the sheet's directory unless
// absolute. Returns an error wrapping services.ErrNotFound when no
// candidate exists on disk.
func ResolveAudio(cuePath string) (string, error) {
	base := strings.TrimSuffix(cuePath, filepath.Ext(cuePath))
	for _, ext := range siblingExtensions {
		candidate := base + ext
		if isRegularFile(candidate) {
			return candidate, nil
		}
	}

	text, err := textutil.DecodeFile(cuePath)
	if err != nil {
		return "", services.Wrap(services.ErrNotFound, "cue", "resolve audio", "read sheet", err)
	}
	for _, line := range strings.Split(text, "\n") {
		m := fileDirective.FindStringSubmatch(strings.TrimRight(line, "\r"))
		if m == nil {
			continue
		}
		candidate := m[1]
		if !filepath.IsAbs(candidate) {
			candidate = filepath.Join(filepath.Dir(cuePath), candidate)
		}
		if isRegularFile(candidate) {
			return candidate, nil
		}
		// Only the first FILE directive is authoritative.
		break
	}
	return "", services.Wrap(services.ErrNotFound, "cue", "resolve audio", "no audio candidate on disk for "+cuePath, nil)
}

// WriteNormalizedCopy decodes the sheet at cuePath and writes a UTF-8
// copy to dst. The source file is never modified.
func WriteNormalizedCopy(cuePath, dst string) error {
	text, err := textutil.DecodeFile(cuePath)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, []byte(text), 0o644)
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
