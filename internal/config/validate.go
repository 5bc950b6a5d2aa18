package config

import (
	"errors"
	"fmt"
	"strings"
)

// Validate ensures the configuration is usable. The required artist is
// checked separately at run time since it may arrive via flag.
func (c *Config) Validate() error {
	if err := c.validateOutput(); err != nil {
		return err
	}
	if err := c.validateTools(); err != nil {
		return err
	}
	if err := c.validateLogging(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateOutput() error {
	if strings.TrimSpace(c.Output.Dir) == "" {
		return errors.New("output.dir must be set")
	}
	if c.Output.Parallelism < 0 {
		return errors.New("output.parallelism must be zero or positive")
	}
	return nil
}

func (c *Config) validateTools() error {
	tools := map[string]string{
		"tools.lame":     c.Tools.Lame,
		"tools.shnsplit": c.Tools.Shnsplit,
		"tools.cueprint": c.Tools.Cueprint,
		"tools.ffmpeg":   c.Tools.FFmpeg,
	}
	for key, value := range tools {
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
