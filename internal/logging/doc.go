// Package logging constructs the application slog.Logger with either a
// human-oriented console handler or a JSON handler. Console color is
// enabled only when the target is a terminal.
package logging
