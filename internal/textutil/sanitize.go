package textutil

import (
	"strings"
	"unicode"
)

// SanitizeFileName strips characters that are unsafe in file names on
// common filesystems: `< > : " | ? *`, path separators, and control
// characters. Runs of whitespace collapse to a single space and the
// edges are trimmed. Non-ASCII letters pass through unchanged so
// titles stay readable in their original script.
func SanitizeFileName(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	pendingSpace := false
	for _, r := range name {
		switch {
		case r == '<' || r == '>' || r == ':' || r == '"' || r == '|' || r == '?' || r == '*':
		case r == '/' || r == '\\':
		case r < 0x20 || r == 0x7f:
		case unicode.IsSpace(r):
			pendingSpace = true
		default:
			if pendingSpace && b.Len() > 0 {
				b.WriteByte(' ')
			}
			pendingSpace = false
			b.WriteRune(r)
		}
	}
	return b.String()
}
