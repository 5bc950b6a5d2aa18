package textutil

import (
	"bytes"
	"os"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// DecodeText converts raw CUE sheet bytes to UTF-8 text. Valid UTF-8
// input is returned unchanged. Windows-1252 is tried next since it
// covers the bulk of legacy ripper output, but it leaves five byte
// values undefined; input using any of them falls through to
// ISO-8859-1, which defines all 256 bytes and so always yields text.
//
// The function is pure: it builds fresh decoders per call and never
// touches the source file.
func DecodeText(raw []byte) string {
	if utf8.Valid(raw) {
		return string(raw)
	}
	if decoded, err := charmap.Windows1252.NewDecoder().Bytes(raw); err == nil && !bytes.ContainsRune(decoded, utf8.RuneError) {
		return string(decoded)
	}
	decoded, _ := charmap.ISO8859_1.NewDecoder().Bytes(raw)
	return string(decoded)
}

// DecodeFile reads path and decodes its contents with DecodeText.
func DecodeFile(path string) (string, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return DecodeText(raw), nil
}
