// Package slogobs implements observability.Provider on top of the standard
// library's log/slog, providing lightweight tracing, metrics, and structured
// logging without external backends.
package slogobs
