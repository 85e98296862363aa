// Package gemini implements [ai.Provider] against Google's Gemini
// generateContent API. Conversations are encoded in chat-history form: every
// turn except the last becomes a history entry (user -> "user", anything
// else -> "model") and the final user message is appended as the new turn.
package gemini
