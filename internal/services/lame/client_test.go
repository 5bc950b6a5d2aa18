package lame

import (
	"context"
	"errors"
	"slices"
	"testing"

	"cuepress/internal/services"
)

type stubExecutor struct {
	args []string
	err  error
}

func (s *stubExecutor) Run(ctx context.Context, binary string, args []string, onOutput func(string)) error {
	s.args = args
	return s.err
}

func (s *stubExecutor) Output(ctx context.Context, binary string, args []string) (string, error) {
	return "", errors.New("unexpected Output call")
}

func TestEncodeFullTags(t *testing.T) {
	stub := &stubExecutor{}
	client, err := New("lame", WithExecutor(stub))
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	tags := TrackTags{
		Artist:      "Miles Davis",
		Album:       "Kind of Blue",
		Title:       "So What",
		Genre:       "Jazz",
		Disc:        "1",
		Track:       1,
		TotalTracks: 5,
	}
	if err := client.Encode(context.Background(), "/w/split-track01.wav", "/out/01 - So What.mp3", tags); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	want := []string{
		"--quiet", "-V0",
		"--tt", "So What",
		"--ta", "Miles Davis",
		"--tl", "Kind of Blue",
		"--tg", "Jazz",
		"--tn", "1/5",
		"--tv", "TPOS=1",
		"/w/split-track01.wav", "/out/01 - So What.mp3",
	}
	if !slices.Equal(stub.args, want) {
		t.Errorf("args = %v, want %v", stub.args, want)
	}
}

func TestEncodeOmitsEmptyTags(t *testing.T) {
	stub := &stubExecutor{}
	client, _ := New("lame", WithExecutor(stub))

	if err := client.Encode(context.Background(), "in.flac", "out.mp3", TrackTags{Artist: "Nick Drake"}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	want := []string{"--quiet", "-V0", "--ta", "Nick Drake", "in.flac", "out.mp3"}
	if !slices.Equal(stub.args, want) {
		t.Errorf("args = %v, want %v", stub.args, want)
	}
}

func TestEncodeTrackWithoutTotal(t *testing.T) {
	stub := &stubExecutor{}
	client, _ := New("lame", WithExecutor(stub))

	if err := client.Encode(context.Background(), "in.wav", "out.mp3", TrackTags{Track: 7}); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !slices.Contains(stub.args, "7") {
		t.Errorf("expected bare track number in args %v", stub.args)
	}
}

func TestEncodeFailure(t *testing.T) {
	client, _ := New("lame", WithExecutor(&stubExecutor{err: errors.New("exit status 1")}))
	err := client.Encode(context.Background(), "in.wav", "out.mp3", TrackTags{})
	if !errors.Is(err, services.ErrExternalTool) {
		t.Fatalf("expected ErrExternalTool, got %v", err)
	}
}
