// Package shntool wraps the shnsplit CLI, the CUE-aware splitter that
// cuts a whole-album audio stream into numbered per-track files at the
// breakpoints the sheet declares.
package shntool
