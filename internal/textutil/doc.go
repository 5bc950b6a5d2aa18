// Package textutil provides text processing utilities for filename
// sanitization and legacy character-set decoding.
//
// The primary use cases are:
//   - Sanitizing track and album titles for safe filesystem use while
//     keeping non-ASCII letters readable in their original script.
//   - Decoding CUE sheet text authored in legacy single-byte encodings
//     into UTF-8 without ever failing outright.
package textutil
