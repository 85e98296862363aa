// Package openai implements [ai.Provider] against the OpenAI Chat Completions
// API. The wire format is shared by several other vendors; use [NewCompatible]
// to target an OpenAI-compatible endpoint such as Groq.
package openai
