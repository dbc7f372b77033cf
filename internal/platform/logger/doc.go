// Package logger configures the process-wide slog JSON logger and moves
// request-scoped loggers through context.Context, so every line written
// while serving a request carries the same trace_id.
package logger
