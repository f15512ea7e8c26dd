// Package slogx provides slog attribute helpers shared across the module.
package slogx

import "log/slog"

// KeyLoggerName is the attribute key identifying which component produced a
// log record.
const KeyLoggerName = "logger"

// Error returns a slog.Attr representing the provided error. The attribute
// key is "error" and the value is the error's message.
func Error(err error) slog.Attr {
	return slog.String("error", err.Error())
}

// LoggerName returns the attribute that names a component's logger, for use
// with Logger.With:
//
//	log := slog.Default().With(slogx.LoggerName("broker"))
func LoggerName(name string) slog.Attr {
	return slog.String(KeyLoggerName, name)
}
