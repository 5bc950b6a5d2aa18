package history

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestRecordAndListRuns(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	started := time.Date(2026, 5, 12, 20, 0, 0, 0, time.UTC)
	first, err := store.RecordRun(ctx, Run{
		StartedAt:  started,
		FinishedAt: started.Add(4 * time.Minute),
		Root:       "/music/rips",
		OutputDir:  "/music/mp3",
		Succeeded:  14,
		Failed:     0,
	}, nil)
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	second, err := store.RecordRun(ctx, Run{
		StartedAt:  started.Add(time.Hour),
		FinishedAt: started.Add(time.Hour + time.Minute),
		Root:       "/music/rips",
		OutputDir:  "/music/mp3",
		Succeeded:  2,
		Failed:     1,
	}, []Failure{{Source: "/music/rips/broken.cue", Detail: "no audio candidate on disk"}})
	if err != nil {
		t.Fatalf("RecordRun second: %v", err)
	}
	if second <= first {
		t.Fatalf("run ids not increasing: %d then %d", first, second)
	}

	runs, err := store.RecentRuns(ctx, 10)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %d", len(runs))
	}
	if runs[0].ID != second {
		t.Errorf("newest run first expected, got id %d", runs[0].ID)
	}
	if runs[0].Succeeded != 2 || runs[0].Failed != 1 {
		t.Errorf("unexpected counts %+v", runs[0])
	}
	if !runs[1].StartedAt.Equal(started) {
		t.Errorf("started_at round trip = %v, want %v", runs[1].StartedAt, started)
	}
}

func TestRecentRunsLimit(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()
	for i := 0; i < 5; i++ {
		if _, err := store.RecordRun(ctx, Run{StartedAt: now, FinishedAt: now, Root: "/a", OutputDir: "/b"}, nil); err != nil {
			t.Fatalf("RecordRun %d: %v", i, err)
		}
	}
	runs, err := store.RecentRuns(ctx, 3)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 3 {
		t.Errorf("limit ignored: got %d runs", len(runs))
	}
}

func TestRunFailures(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()
	now := time.Now()

	id, err := store.RecordRun(ctx, Run{StartedAt: now, FinishedAt: now, Root: "/a", OutputDir: "/b", Failed: 2}, []Failure{
		{Source: "/a/x.cue", Detail: "zero tracks"},
		{Source: "/a/y.flac", Detail: "encoder exit status 1"},
	})
	if err != nil {
		t.Fatalf("RecordRun: %v", err)
	}

	failures, err := store.RunFailures(ctx, id)
	if err != nil {
		t.Fatalf("RunFailures: %v", err)
	}
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d", len(failures))
	}
	if failures[0].Source != "/a/x.cue" || failures[1].Detail != "encoder exit status 1" {
		t.Errorf("unexpected failures %+v", failures)
	}
	if failures[0].RunID != id {
		t.Errorf("run id = %d, want %d", failures[0].RunID, id)
	}
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	now := time.Now()
	if _, err := store.RecordRun(context.Background(), Run{StartedAt: now, FinishedAt: now, Root: "/a", OutputDir: "/b", Succeeded: 1}, nil); err != nil {
		t.Fatalf("RecordRun: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	runs, err := reopened.RecentRuns(context.Background(), 1)
	if err != nil {
		t.Fatalf("RecentRuns: %v", err)
	}
	if len(runs) != 1 || runs[0].Succeeded != 1 {
		t.Errorf("data lost across reopen: %+v", runs)
	}
}
