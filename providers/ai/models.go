package ai

/*
	##### PROVIDER INPUT #####
*/

// ChatRequest represents a request to send a chat conversation to a provider.
type ChatRequest struct {
	Model            string            `json:"model,omitempty"`             // Model name or identifier; opaque to this system, validated by the vendor
	Messages         []Message         `json:"messages"`                    // All messages in the conversation, in chronological order
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"` // Optional generation configuration
}

// Message represents a single turn in a conversation. Messages are treated as
// immutable once created; conversations tolerate consecutive same-role turns.
type Message struct {
	Role    MessageRole `json:"role"`
	Content string      `json:"content,omitempty"`
}

// GenerationConfig carries the per-call sampling parameters. Temperature is a
// pointer so an explicit 0 (fully deterministic sampling) can be told apart
// from "unset"; adapters forward a non-nil value as-is and omit a nil one so
// the vendor's own default applies. A zero MaxTokens likewise means "vendor
// default".
type GenerationConfig struct {
	Temperature *float64 `json:"temperature,omitempty"` // Sampling temperature [0..2]. Higher => more random; lower => more deterministic.
	MaxTokens   int      `json:"max_tokens,omitempty"`  // Maximum tokens for the response [1..4000]
}

/*
	##### PROVIDER OUTPUT #####
*/

// Usage reports token consumption for a single completed request.
type Usage struct {
	PromptTokens     int `json:"prompt_tokens,omitempty"`
	CompletionTokens int `json:"completion_tokens,omitempty"`
	TotalTokens      int `json:"total_tokens,omitempty"`
}

// ChatResponse represents the normalized response from a chat completion.
type ChatResponse struct {
	Id           string `json:"id"`
	Model        string `json:"model"`
	Object       string `json:"object"`
	Created      int64  `json:"created"`
	Content      string `json:"content"`
	FinishReason string `json:"finish_reason,omitempty"`
	Usage        *Usage `json:"usage,omitempty"`
}

/*
	##### ENUMS #####
*/

// MessageRole represents the role of a message; compatible with string
type MessageRole string

const (
	RoleSystem    MessageRole = "system"    // System instructions/configuration
	RoleUser      MessageRole = "user"      // End-user message
	RoleAssistant MessageRole = "assistant" // Model response
)
