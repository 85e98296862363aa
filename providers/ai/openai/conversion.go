package openai

import (
	"fmt"
	"time"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

// requestFromGeneric converts an ai.ChatRequest to the chat-completions wire
// format. Roles pass through unchanged and message order is preserved. Unset
// GenerationConfig fields are omitted on the wire so the vendor's own
// defaults apply; an explicit temperature of 0 is forwarded, not dropped.
func requestFromGeneric(request ai.ChatRequest) chatCompletionRequest {
	req := chatCompletionRequest{
		Model:    request.Model,
		Messages: make([]chatMessage, 0, len(request.Messages)),
	}

	for _, msg := range request.Messages {
		req.Messages = append(req.Messages, chatMessage{
			Role:    string(msg.Role),
			Content: msg.Content,
		})
	}

	if cfg := request.GenerationConfig; cfg != nil {
		if cfg.Temperature != nil {
			temp := *cfg.Temperature
			req.Temperature = &temp
		}
		if cfg.MaxTokens > 0 {
			maxTokens := cfg.MaxTokens
			req.MaxTokens = &maxTokens
		}
	}

	return req
}

// responseToGeneric converts a chat-completions response to the
// provider-agnostic ai.ChatResponse. The first choice's message content is
// extracted; a refusal takes its place when the model declined to answer.
func responseToGeneric(response chatCompletionResponse) *ai.ChatResponse {
	result := &ai.ChatResponse{
		Id:      response.ID,
		Model:   response.Model,
		Object:  response.Object,
		Created: response.Created,
	}
	if result.Object == "" {
		result.Object = "chat.completion"
	}
	if result.Created == 0 {
		result.Created = time.Now().Unix()
	}

	if len(response.Choices) > 0 {
		choice := response.Choices[0]
		result.Content = choice.Message.Content
		result.FinishReason = choice.FinishReason
		if result.Content == "" && choice.Message.Refusal != "" {
			result.Content = choice.Message.Refusal
		}
	}

	if response.Usage != nil {
		result.Usage = &ai.Usage{
			PromptTokens:     response.Usage.PromptTokens,
			CompletionTokens: response.Usage.CompletionTokens,
			TotalTokens:      response.Usage.TotalTokens,
		}
	}

	return result
}

// validateResponse reports an error for structurally empty responses so the
// caller never has to guard against a zero-choice body.
func validateResponse(response *chatCompletionResponse) error {
	if response == nil {
		return fmt.Errorf("empty response body")
	}
	if len(response.Choices) == 0 {
		return fmt.Errorf("no choices in response")
	}
	return nil
}
