package groq

import (
	"os"

	"github.com/veebee17/my-llm-project1/providers/ai"
	"github.com/veebee17/my-llm-project1/providers/ai/openai"
)

const defaultBaseURL = "https://api.groq.com/openai/v1"

// New returns a Groq provider initialized from environment variables. It
// reads GROQ_API_KEY for authentication and GROQ_API_BASE_URL for the
// endpoint base (defaulting to https://api.groq.com/openai/v1 when unset).
// The returned provider speaks the OpenAI chat-completions wire format.
func New() ai.Provider {
	baseURL := os.Getenv("GROQ_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return openai.NewCompatible("groq", "GROQ_API_KEY", baseURL)
}
