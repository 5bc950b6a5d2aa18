package config

import "runtime"

const (
	defaultOutputDir = "mp3"
	defaultStateDir  = "~/.local/share/cuepress"
	defaultLogFormat = "console"
	defaultLogLevel  = "info"

	defaultLameBinary     = "lame"
	defaultShnsplitBinary = "shnsplit"
	defaultCueprintBinary = "cueprint"
	defaultFFmpegBinary   = "ffmpeg"
)

// Default returns a Config populated with repository defaults.
// Parallelism defaults to one worker per CPU core; values of zero or
// below are clamped to sequential execution by the pipeline.
func Default() Config {
	return Config{
		Output: Output{
			Dir:         defaultOutputDir,
			Parallelism: runtime.NumCPU(),
		},
		Tools: Tools{
			Lame:     defaultLameBinary,
			Shnsplit: defaultShnsplitBinary,
			Cueprint: defaultCueprintBinary,
			FFmpeg:   defaultFFmpegBinary,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		StateDir: defaultStateDir,
	}
}
