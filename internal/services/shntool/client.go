package shntool

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuepress/internal/services"
)

// trackPattern is the shnsplit output naming pattern; %n expands to the
// zero-padded track number.
const trackPattern = "split-track%n"

// TrackFileName returns the split output file name shnsplit produces
// for the 1-based track number.
func TrackFileName(number int) string {
	return fmt.Sprintf("split-track%02d.wav", number)
}

// Option configures the client.
type Option func(*Client)

// WithExecutor injects a custom executor (primarily for tests).
func WithExecutor(exec services.Executor) Option {
	return func(c *Client) {
		if exec != nil {
			c.exec = exec
		}
	}
}

// Client wraps shnsplit CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs a shnsplit client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("shnsplit binary required")
	}
	client := &Client{binary: binary, exec: services.CommandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Split cuts audioPath into per-track WAV files in workDir using the
// breakpoints from cuePath. Outputs are named split-trackNN.wav with
// NN numbered from 01; callers check for each expected index since a
// zero-length trailing track may be dropped by the tool.
func (c *Client) Split(ctx context.Context, cuePath, audioPath, workDir string) error {
	if cuePath == "" || audioPath == "" {
		return errors.New("cue path and audio path required")
	}
	if workDir == "" {
		return errors.New("work directory required")
	}
	args := []string{"-f", cuePath, "-o", "wav", "-d", workDir, "-t", trackPattern, audioPath}
	if err := c.exec.Run(ctx, c.binary, args, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "shnsplit", "split tracks", "", err)
	}
	return nil
}
