// Package observability defines the tracing, metrics, and structured-logging
// abstractions used across the service. Implementations are carried through
// context so providers and handlers can enrich spans without depending on a
// concrete backend. See the slogobs subpackage for the slog-based default.
package observability
