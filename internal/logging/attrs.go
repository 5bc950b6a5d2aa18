package logging

import "log/slog"

type Attr = slog.Attr

func String(key, value string) Attr { return slog.String(key, value) }

func Int(key string, value int) Attr { return slog.Int(key, value) }

func Int64(key string, value int64) Attr { return slog.Int64(key, value) }

// Error standardizes the attribute key used for errors across the
// codebase.
func Error(err error) Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.String("error", err.Error())
}
