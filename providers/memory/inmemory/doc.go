// Package inmemory provides a concurrency-safe, slice-backed implementation
// of the memory.Provider conversation store.
package inmemory
