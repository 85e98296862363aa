// Package groq implements [ai.Provider] for Groq's hosted inference API.
// Groq advertises OpenAI compatibility, so the provider is a configured
// instance of the openai package pointed at Groq's endpoint.
package groq
