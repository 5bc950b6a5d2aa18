package cue

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cuepress/internal/services"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestResolveAudioSiblingPriority(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	writeFile(t, cuePath, `FILE "other.wav" WAVE`)
	writeFile(t, filepath.Join(dir, "album.ape"), "ape")
	writeFile(t, filepath.Join(dir, "album.flac"), "flac")

	got, err := ResolveAudio(cuePath)
	if err != nil {
		t.Fatalf("ResolveAudio: %v", err)
	}
	if got != filepath.Join(dir, "album.flac") {
		t.Errorf("ResolveAudio = %q, want flac sibling preferred over ape", got)
	}
}

func TestResolveAudioFileDirective(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	writeFile(t, cuePath, "REM COMMENT test\nFILE \"CDImage.flac\" WAVE\n  TRACK 01 AUDIO\n")
	writeFile(t, filepath.Join(dir, "CDImage.flac"), "flac")

	got, err := ResolveAudio(cuePath)
	if err != nil {
		t.Fatalf("ResolveAudio: %v", err)
	}
	if got != filepath.Join(dir, "CDImage.flac") {
		t.Errorf("ResolveAudio = %q, want CDImage.flac", got)
	}
}

func TestResolveAudioAbsoluteDirective(t *testing.T) {
	audioDir := t.TempDir()
	audioPath := filepath.Join(audioDir, "image.wav")
	writeFile(t, audioPath, "wav")

	cueDir := t.TempDir()
	cuePath := filepath.Join(cueDir, "album.cue")
	writeFile(t, cuePath, "FILE \""+audioPath+"\" WAVE\n")

	got, err := ResolveAudio(cuePath)
	if err != nil {
		t.Fatalf("ResolveAudio: %v", err)
	}
	if got != audioPath {
		t.Errorf("ResolveAudio = %q, want %q", got, audioPath)
	}
}

func TestResolveAudioNotFound(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	writeFile(t, cuePath, `FILE "missing.flac" WAVE`)

	_, err := ResolveAudio(cuePath)
	if !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestResolveAudioOnlyFirstDirective(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	writeFile(t, cuePath, "FILE \"gone.flac\" WAVE\nFILE \"present.flac\" WAVE\n")
	writeFile(t, filepath.Join(dir, "present.flac"), "flac")

	if _, err := ResolveAudio(cuePath); !errors.Is(err, services.ErrNotFound) {
		t.Fatalf("expected ErrNotFound for dead first directive, got %v", err)
	}
}

func TestResolveAudioLegacyEncodedDirective(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	// "Télé.flac" with the é as a single Windows-1252 byte.
	raw := append([]byte(`FILE "T`), 0xe9)
	raw = append(raw, []byte("l\xe9.flac\" WAVE\n")...)
	if err := os.WriteFile(cuePath, raw, 0o644); err != nil {
		t.Fatalf("write cue: %v", err)
	}
	writeFile(t, filepath.Join(dir, "Télé.flac"), "flac")

	got, err := ResolveAudio(cuePath)
	if err != nil {
		t.Fatalf("ResolveAudio: %v", err)
	}
	if filepath.Base(got) != "Télé.flac" {
		t.Errorf("ResolveAudio = %q, want decoded directive name", got)
	}
}

func TestWriteNormalizedCopy(t *testing.T) {
	dir := t.TempDir()
	cuePath := filepath.Join(dir, "album.cue")
	raw := []byte("TITLE \"Caf\xe9\"\n")
	if err := os.WriteFile(cuePath, raw, 0o644); err != nil {
		t.Fatalf("write cue: %v", err)
	}

	dst := filepath.Join(dir, "normalized.cue")
	if err := WriteNormalizedCopy(cuePath, dst); err != nil {
		t.Fatalf("WriteNormalizedCopy: %v", err)
	}
	out, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read normalized: %v", err)
	}
	if !strings.Contains(string(out), "Café") {
		t.Errorf("normalized copy = %q, want UTF-8 Café", out)
	}
	// Source stays byte-identical.
	src, _ := os.ReadFile(cuePath)
	if string(src) != string(raw) {
		t.Error("source cue was modified")
	}
}
