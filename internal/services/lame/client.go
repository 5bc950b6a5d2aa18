package lame

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cuepress/internal/services"
)

// TrackTags holds the metadata embedded into an encoded file. Empty
// fields are omitted from the encoder invocation.
type TrackTags struct {
	Artist      string
	Album       string
	Title       string
	Genre       string
	Disc        string
	Track       int
	TotalTracks int
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

// Client wraps lame CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs a lame client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("lame binary required")
	}
	client := &Client{binary: binary, exec: services.CommandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// Encode converts src to an MP3 at dst using -V0 variable bitrate,
// overwriting any existing destination. A nonzero exit leaves whatever
// partial output the encoder produced in place for the caller to
// inspect.
func (c *Client) Encode(ctx context.Context, src, dst string, tags TrackTags) error {
	if src == "" || dst == "" {
		return errors.New("source and destination required")
	}
	args := []string{"--quiet", "-V0"}
	if tags.Title != "" {
		args = append(args, "--tt", tags.Title)
	}
	if tags.Artist != "" {
		args = append(args, "--ta", tags.Artist)
	}
	if tags.Album != "" {
		args = append(args, "--tl", tags.Album)
	}
	if tags.Genre != "" {
		args = append(args, "--tg", tags.Genre)
	}
	if tags.Track > 0 {
		number := fmt.Sprintf("%d", tags.Track)
		if tags.TotalTracks > 0 {
			number = fmt.Sprintf("%d/%d", tags.Track, tags.TotalTracks)
		}
		args = append(args, "--tn", number)
	}
	if tags.Disc != "" {
		args = append(args, "--tv", "TPOS="+tags.Disc)
	}
	args = append(args, src, dst)

	if err := c.exec.Run(ctx, c.binary, args, nil); err != nil {
		return services.Wrap(services.ErrExternalTool, "lame", "encode", dst, err)
	}
	return nil
}
