package cueprint

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"cuepress/internal/services"
)

// Field selects one metadata value from a CUE sheet.
type Field string

const (
	FieldTitle     Field = "title"
	FieldPerformer Field = "performer"
	FieldGenre     Field = "genre"
)

// discTemplates map fields to cueprint disc-mode format directives.
var discTemplates = map[Field]string{
	FieldTitle:     "%T",
	FieldPerformer: "%P",
	FieldGenre:     "%G",
}

// trackTemplates map fields to cueprint track-mode format directives.
var trackTemplates = map[Field]string{
	FieldTitle:     "%t",
	FieldPerformer: "%p",
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

// Client wraps cueprint CLI interactions.
type Client struct {
	binary string
	exec   services.Executor
}

// New constructs a cueprint client.
func New(binary string, opts ...Option) (*Client, error) {
	binary = strings.TrimSpace(binary)
	if binary == "" {
		return nil, errors.New("cueprint binary required")
	}
	client := &Client{binary: binary, exec: services.CommandExecutor{}}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// TrackCount returns the number of tracks declared by the CUE sheet.
// Any extraction failure reports zero tracks; the caller treats that
// as a recoverable per-sheet condition.
func (c *Client) TrackCount(ctx context.Context, cuePath string) int {
	out, err := c.exec.Output(ctx, c.binary, []string{"-d", "%N", cuePath})
	if err != nil {
		return 0
	}
	count, err := strconv.Atoi(strings.TrimSpace(out))
	if err != nil || count < 0 {
		return 0
	}
	return count
}

// TrackField extracts one metadata field for the 1-based track index.
// Index 0 selects the disc-level value. Failures and unknown fields
// degrade to the empty string.
func (c *Client) TrackField(ctx context.Context, cuePath string, index int, field Field) string {
	var args []string
	if index == 0 {
		template, ok := discTemplates[field]
		if !ok {
			return ""
		}
		args = []string{"-d", template, cuePath}
	} else {
		template, ok := trackTemplates[field]
		if !ok {
			return ""
		}
		args = []string{"-n", strconv.Itoa(index), "-t", template, cuePath}
	}
	out, err := c.exec.Output(ctx, c.binary, args)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(out)
}
