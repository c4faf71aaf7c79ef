// Package logger provides structured logging functionality for the application.
//
// It utilizes Go's standard library log/slog package to implement structured
// text or JSON logging with configurable log levels. All log output goes to
// stderr so stdout stays reserved for result summaries.
package logger
