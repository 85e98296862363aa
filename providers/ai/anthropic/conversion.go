package anthropic

import (
	"strings"
	"time"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

// defaultMaxTokens is applied when the caller supplies no max_tokens value.
// Anthropic requires the field on every request.
const defaultMaxTokens = 4096

// requestToAnthropic converts an ai.ChatRequest into an anthropicRequest
// ready to POST to the Messages API. Message order and roles pass through
// unchanged; system messages are folded into user turns so they are never
// silently dropped (the chat surface does not use a separate system field).
func requestToAnthropic(request ai.ChatRequest) anthropicRequest {
	req := anthropicRequest{
		Model:     request.Model,
		Messages:  buildMessages(request.Messages),
		MaxTokens: defaultMaxTokens,
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature != nil {
			temp := *cfg.Temperature
			req.Temperature = &temp
		}
		if cfg.MaxTokens > 0 {
			req.MaxTokens = cfg.MaxTokens
		}
	}

	return req
}

// buildMessages converts a slice of ai.Message into Anthropic message
// objects. Roles map directly; a system role becomes a user turn.
func buildMessages(messages []ai.Message) []anthropicMessage {
	result := make([]anthropicMessage, 0, len(messages))

	for _, msg := range messages {
		role := "user"
		if msg.Role == ai.RoleAssistant {
			role = "assistant"
		}
		result = append(result, anthropicMessage{
			Role:    role,
			Content: msg.Content,
		})
	}

	return result
}

// anthropicToGeneric converts a Messages API response to the provider-agnostic
// ai.ChatResponse format. Multiple text blocks are joined with newlines into a
// single Content string; unknown block types are silently skipped for
// forward-compatibility with future Anthropic content types.
func anthropicToGeneric(response anthropicResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      response.ID,
		Model:   response.Model,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	var textParts []string
	for _, block := range response.Content {
		if block.Type == "text" {
			textParts = append(textParts, block.Text)
		}
	}

	result.Content = strings.Join(textParts, "\n")
	result.FinishReason = mapStopReason(response.StopReason)
	result.Usage = &ai.Usage{
		PromptTokens:     response.Usage.InputTokens,
		CompletionTokens: response.Usage.OutputTokens,
		TotalTokens:      response.Usage.InputTokens + response.Usage.OutputTokens,
	}

	return result
}

// mapStopReason converts an Anthropic stop_reason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapStopReason(stopReason string) string {
	switch stopReason {
	case "end_turn", "stop_sequence":
		return "stop"
	case "max_tokens":
		return "length"
	default:
		return "stop"
	}
}
