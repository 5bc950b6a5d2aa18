package cueprint

import (
	"context"
	"errors"
	"testing"
)

type stubExecutor struct {
	args   [][]string
	output string
	err    error
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	s.args = append(s.args, args)
	return s.err
}

func (s *stubExecutor) Output(ctx context.Context, binary string, args []string) (string, error) {
	s.args = append(s.args, args)
	return s.output, s.err
}

func TestNewRequiresBinary(t *testing.T) {
	if _, err := New("  "); err == nil {
		t.Fatal("expected error for empty binary")
	}
}

func TestTrackCount(t *testing.T) {
	stub := &stubExecutor{output: "12\n"}
	client, err := New("cueprint", WithExecutor(stub))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got := client.TrackCount(context.Background(), "/music/album.cue")
	if got != 12 {
		t.Fatalf("TrackCount = %d, want 12", got)
	}
	want := []string{"-d", "%N", "/music/album.cue"}
	if len(stub.args) != 1 {
		t.Fatalf("expected one invocation, got %d", len(stub.args))
	}
	for i, arg := range want {
		if stub.args[0][i] != arg {
			t.Errorf("arg %d = %q, want %q", i, stub.args[0][i], arg)
		}
	}
}

func TestTrackCountFailures(t *testing.T) {
	tests := []struct {
		name string
		stub *stubExecutor
	}{
		{"tool error", &stubExecutor{err: errors.New("exit status 1")}},
		{"garbage output", &stubExecutor{output: "not a number"}},
		{"negative", &stubExecutor{output: "-3"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := New("cueprint", WithExecutor(tt.stub))
			if err != nil {
				t.Fatalf("New: %v", err)
			}
			if got := client.TrackCount(context.Background(), "x.cue"); got != 0 {
				t.Errorf("TrackCount = %d, want 0", got)
			}
		})
	}
}

func TestTrackFieldTrack(t *testing.T) {
	stub := &stubExecutor{output: "Intro\n"}
	client, _ := New("cueprint", WithExecutor(stub))

	got := client.TrackField(context.Background(), "album.cue", 1, FieldTitle)
	if got != "Intro" {
		t.Fatalf("TrackField = %q, want Intro", got)
	}
	args := stub.args[0]
	if args[0] != "-n" || args[1] != "1" || args[2] != "-t" || args[3] != "%t" {
		t.Errorf("unexpected track args %v", args)
	}
}

func TestTrackFieldDisc(t *testing.T) {
	stub := &stubExecutor{output: "Various Artists"}
	client, _ := New("cueprint", WithExecutor(stub))

	got := client.TrackField(context.Background(), "album.cue", 0, FieldPerformer)
	if got != "Various Artists" {
		t.Fatalf("TrackField = %q, want Various Artists", got)
	}
	args := stub.args[0]
	if args[0] != "-d" || args[1] != "%P" {
		t.Errorf("unexpected disc args %v", args)
	}
}

func TestTrackFieldDegradesToEmpty(t *testing.T) {
	client, _ := New("cueprint", WithExecutor(&stubExecutor{err: errors.New("boom")}))
	if got := client.TrackField(context.Background(), "album.cue", 2, FieldPerformer); got != "" {
		t.Errorf("TrackField on failure = %q, want empty", got)
	}
	// Genre has no per-track directive.
	client2, _ := New("cueprint", WithExecutor(&stubExecutor{output: "x"}))
	if got := client2.TrackField(context.Background(), "album.cue", 2, FieldGenre); got != "" {
		t.Errorf("TrackField unknown track field = %q, want empty", got)
	}
}
