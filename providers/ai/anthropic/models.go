package anthropic

/*
	MESSAGES API - INPUT
*/

// anthropicRequest represents the /messages request format.
type anthropicRequest struct {
	Model       string             `json:"model"`
	Messages    []anthropicMessage `json:"messages"`
	MaxTokens   int                `json:"max_tokens"` // Mandatory; Anthropic rejects requests without it
	Temperature *float64           `json:"temperature,omitempty"`
}

// anthropicMessage is a single conversation turn. Content is a plain string
// here; Anthropic also accepts content-block arrays, but text-only chat does
// not need them.
type anthropicMessage struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

/*
	MESSAGES API - OUTPUT
*/

// anthropicResponse represents the /messages response format.
type anthropicResponse struct {
	ID         string                 `json:"id"`
	Type       string                 `json:"type"`
	Role       string                 `json:"role"`
	Content    []responseContentBlock `json:"content"`
	Model      string                 `json:"model"`
	StopReason string                 `json:"stop_reason,omitempty"`
	Usage      anthropicUsage         `json:"usage"`
}

// responseContentBlock is one entry of the response content array. Only text
// blocks are produced for plain chat; unknown types are skipped during
// conversion for forward compatibility.
type responseContentBlock struct {
	Type string `json:"type"`
	Text string `json:"text,omitempty"`
}

type anthropicUsage struct {
	InputTokens  int `json:"input_tokens"`
	OutputTokens int `json:"output_tokens"`
}
