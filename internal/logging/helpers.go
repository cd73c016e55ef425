package logging

import "log/slog"

// The helpers below tolerate a nil logger so pipeline components can be
// constructed bare (tests mostly do) without guarding every log call.

// Info logs an info message when a logger is configured.
func Info(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Info(msg, args...)
	}
}

// Warn logs a warning when a logger is configured.
func Warn(logger *slog.Logger, msg string, args ...any) {
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

// Error logs an error message when a logger is configured, attaching the
// cause under FieldError so failure diagnostics stay searchable by one key.
func Error(logger *slog.Logger, msg string, err error, args ...any) {
	if logger == nil {
		return
	}
	logger.Error(msg, withError(err, args)...)
}

func withError(err error, args []any) []any {
	if err == nil {
		return args
	}
	return append(args, slog.String(FieldError, err.Error()))
}
