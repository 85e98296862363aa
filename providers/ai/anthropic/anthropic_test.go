package anthropic

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

func TestSendMessage(t *testing.T) {
	var gotHeaders http.Header
	var gotBody anthropicRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotHeaders = r.Header.Clone()
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(anthropicResponse{
			ID:    "msg_123",
			Model: "claude-sonnet-4-20250514",
			Content: []responseContentBlock{
				{Type: "text", Text: "First paragraph."},
				{Type: "text", Text: "Second paragraph."},
			},
			StopReason: "end_turn",
			Usage:      anthropicUsage{InputTokens: 12, OutputTokens: 8},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("anthropic-key").WithBaseURL(server.URL)
	temperature := 0.5
	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model: "claude-sonnet-4-20250514",
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: "hi"},
			{Role: ai.RoleAssistant, Content: "hello"},
			{Role: ai.RoleUser, Content: "tell me more"},
		},
		GenerationConfig: &ai.GenerationConfig{Temperature: &temperature, MaxTokens: 512},
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if got := gotHeaders.Get("x-api-key"); got != "anthropic-key" {
		t.Errorf("x-api-key = %q, want anthropic-key", got)
	}
	if got := gotHeaders.Get("anthropic-version"); got != anthropicVersion {
		t.Errorf("anthropic-version = %q, want %q", got, anthropicVersion)
	}
	if got := gotHeaders.Get("Authorization"); got != "" {
		t.Errorf("Authorization = %q, want empty (Anthropic uses x-api-key)", got)
	}

	if gotBody.MaxTokens != 512 {
		t.Errorf("max_tokens = %d, want 512", gotBody.MaxTokens)
	}
	if len(gotBody.Messages) != 3 {
		t.Fatalf("wire messages = %d, want 3", len(gotBody.Messages))
	}
	if gotBody.Messages[1].Role != "assistant" {
		t.Errorf("message[1].Role = %q, want assistant", gotBody.Messages[1].Role)
	}

	if resp.Content != "First paragraph.\nSecond paragraph." {
		t.Errorf("Content = %q, want joined text blocks", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("FinishReason = %q, want stop", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 20 {
		t.Errorf("Usage not mapped: %+v", resp.Usage)
	}
}

func TestSendMessageDefaultMaxTokens(t *testing.T) {
	var gotBody anthropicRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		_ = json.NewEncoder(w).Encode(anthropicResponse{
			ID:      "msg_124",
			Content: []responseContentBlock{{Type: "text", Text: "ok"}},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("anthropic-key").WithBaseURL(server.URL)
	if _, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "claude-3-5-haiku-20241022",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	}); err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	// max_tokens is mandatory on the Messages API, so the request must carry
	// the default when the caller supplied none.
	if gotBody.MaxTokens != defaultMaxTokens {
		t.Errorf("max_tokens = %d, want default %d", gotBody.MaxTokens, defaultMaxTokens)
	}
}

func TestSendMessageMissingKey(t *testing.T) {
	t.Setenv("ANTHROPIC_API_KEY", "")

	_, err := New().SendMessage(context.Background(), ai.ChatRequest{
		Model:    "claude-sonnet-4-20250514",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "ANTHROPIC_API_KEY is not set") {
		t.Errorf("error = %q, want mention of ANTHROPIC_API_KEY", err)
	}
}

func TestSendMessageNoContentBlocks(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(anthropicResponse{ID: "msg_125"})
	}))
	defer server.Close()

	provider := New().WithAPIKey("anthropic-key").WithBaseURL(server.URL)
	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "claude-sonnet-4-20250514",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for response without content blocks")
	}
	if !strings.Contains(err.Error(), "no content blocks") {
		t.Errorf("error = %q, want mention of missing content blocks", err)
	}
}
