// Package ai defines the provider-agnostic conversation model and the
// Provider contract that every vendor adapter implements. A conversation is
// an ordered slice of [Message]; adapters translate it into each vendor's
// wire format and normalize the reply back into a [ChatResponse].
package ai
