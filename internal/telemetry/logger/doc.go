// Package logger provides structured logging for CKit tooling.
//
// It wraps log/slog with JSON output by default, a process-wide
// adjustable level, and context propagation of the soak run ID so every
// line produced during a run can be correlated.
package logger
