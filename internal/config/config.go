package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Tags contains default metadata applied to converted tracks. The
// artist is required at run time but may come from either this file or
// the --artist flag.
type Tags struct {
	Artist string `toml:"artist"`
	Album  string `toml:"album"`
	Genre  string `toml:"genre"`
	Disc   string `toml:"disc"`
}

// Output contains destination and concurrency settings.
type Output struct {
	Dir         string `toml:"dir"`
	Parallelism int    `toml:"parallelism"`
}

// Tools contains the external binary names, overridable for
// nonstandard installations.
type Tools struct {
	Lame     string `toml:"lame"`
	Shnsplit string `toml:"shnsplit"`
	Cueprint string `toml:"cueprint"`
	FFmpeg   string `toml:"ffmpeg"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for cuepress.
type Config struct {
	Tags     Tags    `toml:"tags"`
	Output   Output  `toml:"output"`
	Tools    Tools   `toml:"tools"`
	Logging  Logging `toml:"logging"`
	StateDir string  `toml:"state_dir"`
}

// SampleConfig returns the embedded sample configuration text.
func SampleConfig() string {
	return sampleConfig
}

// DefaultConfigPath returns the absolute path to the default
// configuration file location.
func DefaultConfigPath() (string, error) {
	return expandPath("~/.config/cuepress/config.toml")
}

// Load locates, parses, and validates a configuration file. The
// returned config has all path fields expanded and normalized. The
// second result is the resolved path, the third whether a file was
// actually read.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, "", false, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		expanded, err := expandPath(path)
		if err != nil {
			return "", false, err
		}
		_, err = os.Stat(expanded)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return expanded, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return expanded, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}

	projectPath, err := filepath.Abs("cuepress.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}

func (c *Config) normalize() error {
	var err error
	if c.Output.Dir, err = expandPath(c.Output.Dir); err != nil {
		return err
	}
	if c.StateDir, err = expandPath(c.StateDir); err != nil {
		return err
	}
	c.Tags.Artist = strings.TrimSpace(c.Tags.Artist)
	c.Tags.Album = strings.TrimSpace(c.Tags.Album)
	c.Tags.Genre = strings.TrimSpace(c.Tags.Genre)
	c.Tags.Disc = strings.TrimSpace(c.Tags.Disc)
	return nil
}

// EnsureDirectories creates the output root and state directory.
// Failure here is fatal for the run: an unwritable output root means
// no conversion can land anywhere.
func (c *Config) EnsureDirectories() error {
	for _, dir := range []string{c.Output.Dir, c.StateDir} {
		if strings.TrimSpace(dir) == "" {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create directory %q: %w", dir, err)
		}
	}
	return nil
}

// HistoryDBPath returns the run-history database location.
func (c *Config) HistoryDBPath() string {
	return filepath.Join(c.StateDir, "history.db")
}

// LockPath returns the single-run lock file location.
func (c *Config) LockPath() string {
	return filepath.Join(c.StateDir, "cuepress.lock")
}

func expandPath(pathValue string) (string, error) {
	if pathValue == "" {
		return pathValue, nil
	}
	if strings.HasPrefix(pathValue, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home directory: %w", err)
		}
		if pathValue == "~" {
			pathValue = home
		} else if len(pathValue) > 1 && (pathValue[1] == '/' || pathValue[1] == '\\') {
			pathValue = filepath.Join(home, pathValue[2:])
		}
	}
	cleaned := filepath.Clean(pathValue)
	absolute, err := filepath.Abs(cleaned)
	if err != nil {
		return "", fmt.Errorf("resolve absolute path for %q: %w", cleaned, err)
	}
	return absolute, nil
}
