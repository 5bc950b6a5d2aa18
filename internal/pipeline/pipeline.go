package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"cuepress/internal/config"
	"cuepress/internal/cue"
	"cuepress/internal/logging"
	"cuepress/internal/services/cueprint"
	"cuepress/internal/services/lame"
)

// Encoder converts one audio segment to the target format.
type Encoder interface {
	Encode(ctx context.Context, src, dst string, tags lame.TrackTags) error
}

// Splitter cuts a whole-album stream into per-track files in workDir.
type Splitter interface {
	Split(ctx context.Context, cuePath, audioPath, workDir string) error
}

// Decoder converts a compressed lossless source to WAV.
type Decoder interface {
	Decode(ctx context.Context, src, dst string) error
}

// MetadataReader extracts track counts and fields from a CUE sheet.
type MetadataReader interface {
	TrackCount(ctx context.Context, cuePath string) int
	TrackField(ctx context.Context, cuePath string, index int, field cueprint.Field) string
}

// Tools bundles the external collaborators the pipeline drives.
type Tools struct {
	Encoder  Encoder
	Splitter Splitter
	Decoder  Decoder
	Metadata MetadataReader
}

// Summary reports the outcome of a completed run.
type Summary struct {
	Root       string
	OutputDir  string
	StartedAt  time.Time
	FinishedAt time.Time
	Succeeded  int64
	Failed     int64
	Failures   []FailureDetail
}

// Option configures the pipeline.
type Option func(*Pipeline)

// WithOnResult registers an observer invoked as each job completes.
// The callback may run concurrently from worker goroutines.
func WithOnResult(fn func(Result)) Option {
	return func(p *Pipeline) {
		p.onResult = fn
	}
}

// Pipeline orchestrates discovery, splitting, and conversion.
type Pipeline struct {
	logger      *slog.Logger
	tools       Tools
	outputDir   string
	parallelism int
	tags        config.Tags

	counters Counters
	onResult func(Result)

	mu       sync.Mutex
	failures []FailureDetail
}

// New constructs a pipeline from the validated configuration.
func New(cfg *config.Config, logger *slog.Logger, tools Tools, opts ...Option) *Pipeline {
	p := &Pipeline{
		logger:      logger,
		tools:       tools,
		outputDir:   cfg.Output.Dir,
		parallelism: cfg.Output.Parallelism,
		tags:        cfg.Tags,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run converts every CUE-described album and standalone lossless file
// under root. Only an unusable working or output directory returns an
// error; all per-sheet and per-file failures are counted and the run
// continues.
func (p *Pipeline) Run(ctx context.Context, root string) (*Summary, error) {
	started := time.Now()
	root, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolve scan root: %w", err)
	}

	claimed := make(map[string]struct{})

	sheets, err := discoverCueSheets(root)
	if err != nil {
		return nil, fmt.Errorf("scan for cue sheets: %w", err)
	}
	p.logger.Info("phase 1: cue sheets", logging.Int("count", len(sheets)))
	for _, cuePath := range sheets {
		if err := p.processSheet(ctx, root, cuePath, claimed); err != nil {
			return nil, err
		}
	}

	standalone, err := discoverStandalone(root, claimed)
	if err != nil {
		return nil, fmt.Errorf("scan for standalone files: %w", err)
	}
	p.logger.Info("phase 2: standalone files", logging.Int("count", len(standalone)))
	jobs, err := p.standaloneJobs(root, standalone)
	if err != nil {
		return nil, err
	}
	p.runJobs(ctx, jobs)

	succeeded, failed := p.counters.Snapshot()
	return &Summary{
		Root:       root,
		OutputDir:  p.outputDir,
		StartedAt:  started,
		FinishedAt: time.Now(),
		Succeeded:  succeeded,
		Failed:     failed,
		Failures:   p.failureList(),
	}, nil
}

// processSheet converts one CUE-described album. The returned error is
// non-nil only for run-fatal conditions (unusable work or output
// directory); everything else is counted and skipped.
func (p *Pipeline) processSheet(ctx context.Context, root, cuePath string, claimed map[string]struct{}) error {
	logger := p.logger.With(logging.String("cue", cuePath))

	audioPath, err := cue.ResolveAudio(cuePath)
	if err != nil {
		p.sheetFailure(logger, cuePath, err.Error())
		return nil
	}
	// Claim before phase 2 ever scans, so the album image is never
	// also converted standalone.
	claimed[canonicalPath(audioPath)] = struct{}{}

	workDir := filepath.Join(os.TempDir(), "cuepress-"+uuid.NewString())
	if err := os.MkdirAll(workDir, 0o755); err != nil {
		return fmt.Errorf("create work directory: %w", err)
	}
	defer os.RemoveAll(workDir)

	normalizedCue := filepath.Join(workDir, "sheet.cue")
	if err := cue.WriteNormalizedCopy(cuePath, normalizedCue); err != nil {
		p.sheetFailure(logger, cuePath, "normalize sheet: "+err.Error())
		return nil
	}

	total := p.tools.Metadata.TrackCount(ctx, normalizedCue)
	if total == 0 {
		p.sheetFailure(logger, cuePath, "no resolvable tracks")
		return nil
	}
	logger.Info("splitting album", logging.String("audio", audioPath), logging.Int("tracks", total))

	splitSource := audioPath
	if strings.EqualFold(filepath.Ext(audioPath), ".ape") {
		decoded := filepath.Join(workDir, "decoded.wav")
		if err := p.tools.Decoder.Decode(ctx, audioPath, decoded); err != nil {
			p.sheetFailure(logger, cuePath, err.Error())
			return nil
		}
		splitSource = decoded
	}

	if err := p.tools.Splitter.Split(ctx, normalizedCue, splitSource, workDir); err != nil {
		p.sheetFailure(logger, cuePath, err.Error())
		return nil
	}

	jobs, err := p.trackJobs(ctx, root, cuePath, normalizedCue, workDir, total, logger)
	if err != nil {
		return err
	}
	p.runJobs(ctx, jobs)
	return nil
}

// trackJobs builds one job per split output, resolving metadata
// sequentially off the conversion path. A missing split file is a
// counted per-track failure, never a silent loss.
func (p *Pipeline) trackJobs(ctx context.Context, root, cuePath, normalizedCue, workDir string, total int, logger *slog.Logger) ([]Job, error) {
	destDir, err := p.destinationDir(root, filepath.Dir(cuePath))
	if err != nil {
		return nil, err
	}

	discPerformer := p.tools.Metadata.TrackField(ctx, normalizedCue, 0, cueprint.FieldPerformer)
	discTitle := p.tools.Metadata.TrackField(ctx, normalizedCue, 0, cueprint.FieldTitle)
	discGenre := p.tools.Metadata.TrackField(ctx, normalizedCue, 0, cueprint.FieldGenre)

	jobs := make([]Job, 0, total)
	for number := 1; number <= total; number++ {
		source := filepath.Join(workDir, splitTrackName(number))
		if _, err := os.Stat(source); err != nil {
			logger.Warn("split output missing", logging.Int("track", number))
			p.counters.Failure()
			p.recordFailure(cuePath, fmt.Sprintf("track %02d: split output missing", number))
			continue
		}

		title := p.tools.Metadata.TrackField(ctx, normalizedCue, number, cueprint.FieldTitle)
		artist := p.tags.Artist
		if artist == "" {
			artist = p.tools.Metadata.TrackField(ctx, normalizedCue, number, cueprint.FieldPerformer)
		}
		if artist == "" {
			artist = discPerformer
		}
		album := p.tags.Album
		if album == "" {
			album = discTitle
		}
		genre := p.tags.Genre
		if genre == "" {
			genre = discGenre
		}

		jobs = append(jobs, Job{
			Source:      source,
			Destination: filepath.Join(destDir, trackFileName(number, title)),
			Tags: lame.TrackTags{
				Artist:      artist,
				Album:       album,
				Title:       title,
				Genre:       genre,
				Disc:        p.tags.Disc,
				Track:       number,
				TotalTracks: total,
			},
		})
	}
	return jobs, nil
}

// standaloneJobs builds one single-track job per unclaimed lossless
// file, mirroring the relative subdirectory under the output root.
func (p *Pipeline) standaloneJobs(root string, files []string) ([]Job, error) {
	jobs := make([]Job, 0, len(files))
	for _, file := range files {
		destDir, err := p.destinationDir(root, filepath.Dir(file))
		if err != nil {
			return nil, err
		}
		base := strings.TrimSuffix(filepath.Base(file), filepath.Ext(file))
		jobs = append(jobs, Job{
			Source:      file,
			Destination: filepath.Join(destDir, standaloneFileName(base)),
			Tags: lame.TrackTags{
				Artist: p.tags.Artist,
				Album:  p.tags.Album,
				Title:  base,
				Genre:  p.tags.Genre,
				Disc:   p.tags.Disc,
			},
		})
	}
	return jobs, nil
}

// destinationDir maps a source directory to its mirror under the
// output root and creates it. Creation failure is run-fatal.
func (p *Pipeline) destinationDir(root, sourceDir string) (string, error) {
	rel, err := filepath.Rel(root, sourceDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = "."
	}
	destDir := filepath.Join(p.outputDir, rel)
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	return destDir, nil
}

func (p *Pipeline) sheetFailure(logger *slog.Logger, cuePath, detail string) {
	logger.Warn("skipping cue sheet", logging.String("reason", detail))
	p.counters.Failure()
	p.recordFailure(cuePath, detail)
}

func (p *Pipeline) recordFailure(source, detail string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures = append(p.failures, FailureDetail{Source: source, Detail: detail})
}

func (p *Pipeline) failureList() []FailureDetail {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]FailureDetail, len(p.failures))
	copy(out, p.failures)
	return out
}

func (p *Pipeline) emit(result Result) {
	if p.onResult != nil {
		p.onResult(result)
	}
}
