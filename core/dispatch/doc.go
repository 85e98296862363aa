// Package dispatch routes a conversation to one of the four supported LLM
// providers and folds every failure mode into a value-typed Result. The
// provider set is closed: unknown identifiers are rejected before any
// adapter is constructed, and adapter errors never escape as raw errors.
package dispatch
