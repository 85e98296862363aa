package gemini

import (
	"fmt"
	"strings"
	"time"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

// requestToGemini converts an ai.ChatRequest to a generateContentRequest.
// The conversation is encoded in chat-history form: all but the last message
// become history entries and the last message is appended as the new turn.
func requestToGemini(request ai.ChatRequest) generateContentRequest {
	req := generateContentRequest{
		Contents:         buildChatHistory(request.Messages),
		GenerationConfig: buildGenerationConfig(request.GenerationConfig),
	}

	if len(request.Messages) > 0 {
		req.Contents = append(req.Contents, content{
			Role:  "user",
			Parts: []part{{Text: latestTurnText(request.Messages)}},
		})
	}

	return req
}

// buildChatHistory maps every message except the last to a Gemini history
// entry. Role mapping: user -> "user", anything else -> "model"; content is
// wrapped as a single-part list. Returns an empty slice for conversations of
// one message or fewer.
func buildChatHistory(messages []ai.Message) []content {
	if len(messages) < 2 {
		return []content{}
	}

	history := make([]content, 0, len(messages)-1)
	for _, msg := range messages[:len(messages)-1] {
		role := "model"
		if msg.Role == ai.RoleUser {
			role = "user"
		}
		history = append(history, content{
			Role:  role,
			Parts: []part{{Text: msg.Content}},
		})
	}
	return history
}

// latestTurnText returns the content of the final message, which is sent as
// the new turn of the chat. Empty when the conversation is empty.
func latestTurnText(messages []ai.Message) string {
	if len(messages) == 0 {
		return ""
	}
	return messages[len(messages)-1].Content
}

// buildGenerationConfig maps the generic generation parameters onto Gemini's
// generationConfig. Nil in, nil out so the field is omitted on the wire.
func buildGenerationConfig(cfg *ai.GenerationConfig) *generationConfig {
	if cfg == nil {
		return nil
	}

	out := &generationConfig{}
	if cfg.Temperature != nil {
		temp := *cfg.Temperature
		out.Temperature = &temp
	}
	if cfg.MaxTokens > 0 {
		maxTokens := cfg.MaxTokens
		out.MaxOutputTokens = &maxTokens
	}
	if out.Temperature == nil && out.MaxOutputTokens == nil {
		return nil
	}
	return out
}

// geminiToGeneric converts a generateContent response to the provider-agnostic
// ai.ChatResponse format. Text parts of candidate 0 are joined; a blocked
// prompt yields empty content with the block reason as finish reason.
func geminiToGeneric(response generateContentResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      fmt.Sprintf("gemini-%d", time.Now().UnixNano()),
		Model:   response.ModelVersion,
		Object:  "chat.completion",
		Created: time.Now().Unix(),
	}

	if len(response.Candidates) > 0 {
		cand := response.Candidates[0]

		if cand.Content != nil {
			var textParts []string
			for _, p := range cand.Content.Parts {
				if p.Text != "" {
					textParts = append(textParts, p.Text)
				}
			}
			result.Content = strings.Join(textParts, "\n")
		}
		result.FinishReason = mapFinishReason(cand.FinishReason)
	} else if response.PromptFeedback != nil && response.PromptFeedback.BlockReason != "" {
		result.FinishReason = "content_filter"
	}

	if response.UsageMetadata != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.UsageMetadata.PromptTokenCount,
			CompletionTokens: response.UsageMetadata.CandidatesTokenCount,
			TotalTokens:      response.UsageMetadata.TotalTokenCount,
		}
	}

	return result
}

// mapFinishReason converts a Gemini finishReason value to the canonical
// finish_reason string used by ai.ChatResponse.
func mapFinishReason(reason string) string {
	switch reason {
	case "STOP":
		return "stop"
	case "MAX_TOKENS":
		return "length"
	case "SAFETY", "RECITATION", "BLOCKLIST", "PROHIBITED_CONTENT":
		return "content_filter"
	default:
		return strings.ToLower(reason)
	}
}
