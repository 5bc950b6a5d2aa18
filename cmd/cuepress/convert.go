package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"cuepress/internal/config"
	"cuepress/internal/deps"
	"cuepress/internal/history"
	"cuepress/internal/logging"
	"cuepress/internal/pipeline"
	"cuepress/internal/services/cueprint"
	"cuepress/internal/services/ffmpeg"
	"cuepress/internal/services/lame"
	"cuepress/internal/services/shntool"
)

const timeRounding = 100 * time.Millisecond

var (
	successMark = color.New(color.FgGreen)
	failureMark = color.New(color.FgRed)
)

func runConvert(cmd *cobra.Command, flags *rootFlags, root string) error {
	cfg, _, err := loadConfig(cmd, flags)
	if err != nil {
		return err
	}
	if cfg.Tags.Artist == "" {
		return errors.New("artist is required: pass --artist or set tags.artist in the config")
	}

	statuses := deps.CheckBinaries(deps.Requirements(cfg))
	if missing := deps.MissingRequired(statuses); len(missing) > 0 {
		return fmt.Errorf("missing required tools: %s (see 'cuepress deps')", strings.Join(missing, ", "))
	}

	if err := cfg.EnsureDirectories(); err != nil {
		return err
	}

	logger, err := logging.NewFromConfig(cfg)
	if err != nil {
		return err
	}

	lock := flock.New(cfg.LockPath())
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another cuepress run is active (lock %s)", cfg.LockPath())
	}
	defer func() { _ = lock.Unlock() }()

	tools, err := buildTools(cfg)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var printMu sync.Mutex
	p := pipeline.New(cfg, logger, tools, pipeline.WithOnResult(func(result pipeline.Result) {
		printMu.Lock()
		defer printMu.Unlock()
		if result.Err != nil {
			failureMark.Fprintf(out, "✘ %s\n", result.Job.Source)
			return
		}
		successMark.Fprintf(out, "✔ %s\n", result.Job.Destination)
	}))

	summary, err := p.Run(cmd.Context(), root)
	if err != nil {
		return err
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, renderSummary(summary))

	if err := recordHistory(cfg, summary); err != nil {
		logger.Warn("failed to record run history", logging.Error(err))
	}

	// Per-item failures are surfaced in the summary; the process still
	// exits zero so batch callers can distinguish fatal setup problems
	// from partial conversion failures.
	return nil
}

func buildTools(cfg *config.Config) (pipeline.Tools, error) {
	encoder, err := lame.New(cfg.Tools.Lame)
	if err != nil {
		return pipeline.Tools{}, err
	}
	splitter, err := shntool.New(cfg.Tools.Shnsplit)
	if err != nil {
		return pipeline.Tools{}, err
	}
	decoder, err := ffmpeg.New(cfg.Tools.FFmpeg)
	if err != nil {
		return pipeline.Tools{}, err
	}
	metadata, err := cueprint.New(cfg.Tools.Cueprint)
	if err != nil {
		return pipeline.Tools{}, err
	}
	return pipeline.Tools{
		Encoder:  encoder,
		Splitter: splitter,
		Decoder:  decoder,
		Metadata: metadata,
	}, nil
}

func renderSummary(summary *pipeline.Summary) string {
	rows := [][]string{
		{"Succeeded", fmt.Sprintf("%d", summary.Succeeded)},
		{"Failed", fmt.Sprintf("%d", summary.Failed)},
		{"Duration", summary.FinishedAt.Sub(summary.StartedAt).Round(timeRounding).String()},
		{"Output", summary.OutputDir},
	}
	return renderTable([]string{"Result", "Value"}, rows)
}

func recordHistory(cfg *config.Config, summary *pipeline.Summary) error {
	store, err := history.Open(cfg.HistoryDBPath())
	if err != nil {
		return err
	}
	defer store.Close()

	failures := make([]history.Failure, 0, len(summary.Failures))
	for _, failure := range summary.Failures {
		failures = append(failures, history.Failure{Source: failure.Source, Detail: failure.Detail})
	}
	_, err = store.RecordRun(context.Background(), history.Run{
		StartedAt:  summary.StartedAt,
		FinishedAt: summary.FinishedAt,
		Root:       summary.Root,
		OutputDir:  summary.OutputDir,
		Succeeded:  summary.Succeeded,
		Failed:     summary.Failed,
	}, failures)
	return err
}
