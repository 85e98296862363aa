package openai

import (
	"testing"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

func TestRequestFromGenericPreservesOrderAndRoles(t *testing.T) {
	req := requestFromGeneric(ai.ChatRequest{
		Model: "gpt-4o-mini",
		Messages: []ai.Message{
			{Role: ai.RoleSystem, Content: "be brief"},
			{Role: ai.RoleUser, Content: "hi"},
			{Role: ai.RoleAssistant, Content: "hello"},
		},
	})

	want := []chatMessage{
		{Role: "system", Content: "be brief"},
		{Role: "user", Content: "hi"},
		{Role: "assistant", Content: "hello"},
	}
	if len(req.Messages) != len(want) {
		t.Fatalf("messages = %d, want %d", len(req.Messages), len(want))
	}
	for i, m := range want {
		if req.Messages[i] != m {
			t.Errorf("message[%d] = %+v, want %+v", i, req.Messages[i], m)
		}
	}
}

func TestRequestFromGenericOmitsZeroConfig(t *testing.T) {
	req := requestFromGeneric(ai.ChatRequest{
		Model:            "gpt-4o",
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{},
	})
	if req.Temperature != nil {
		t.Errorf("Temperature = %v, want nil for zero config", *req.Temperature)
	}
	if req.MaxTokens != nil {
		t.Errorf("MaxTokens = %v, want nil for zero config", *req.MaxTokens)
	}
}

func TestRequestFromGenericForwardsExplicitZeroTemperature(t *testing.T) {
	zero := 0.0
	req := requestFromGeneric(ai.ChatRequest{
		Model:            "gpt-4o",
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{Temperature: &zero, MaxTokens: 100},
	})
	if req.Temperature == nil || *req.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0 on the wire", req.Temperature)
	}
}

func TestResponseToGenericRefusalFallback(t *testing.T) {
	resp := responseToGeneric(chatCompletionResponse{
		ID: "chatcmpl-1",
		Choices: []chatChoice{{
			Message:      chatChoiceMessage{Refusal: "I cannot help with that"},
			FinishReason: "stop",
		}},
	})
	if resp.Content != "I cannot help with that" {
		t.Errorf("Content = %q, want refusal text", resp.Content)
	}
}

func TestValidateResponse(t *testing.T) {
	if err := validateResponse(nil); err == nil {
		t.Error("expected error for nil response")
	}
	if err := validateResponse(&chatCompletionResponse{}); err == nil {
		t.Error("expected error for response without choices")
	}
	ok := &chatCompletionResponse{Choices: []chatChoice{{}}}
	if err := validateResponse(ok); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
