// Package utils contains small internal helpers shared across the provider
// implementations: a generic JSON-over-HTTP POST helper and string utilities.
package utils
