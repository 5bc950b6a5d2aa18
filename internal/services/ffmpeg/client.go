package ffmpeg

import (
	"context"
	"errors"
	"strings"

	"cuepress/internal/services"
)

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

// Client wraps ffmpeg CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs an ffmpeg client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("ffmpeg binary required")
	}
	client := &Client{binary: binary, exec: services.CommandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Decode converts src to an uncompressed WAV at dst, overwriting any
// existing file.
func (c *Client) Decode(ctx context.Context, src, dst string) error {
	if src == "" || dst == "" {
		return errors.New("source and destination required")
	}
	args := []string{"-y", "-hide_banner", "-loglevel", "error", "-i", src, dst}
	if err := c.exec.Run(ctx, c.binary, args, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "ffmpeg", "decode", src, err)
	}
	return nil
}
