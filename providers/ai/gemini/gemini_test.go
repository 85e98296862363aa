package gemini

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
	var gotPath, gotKey, gotAuth string
	var gotBody generateContentRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decoding request body: %v", err)
		}
		_ = json.NewEncoder(w).Encode(generateContentResponse{
			Candidates: []candidate{{
				Content: &content{
					Role:  "model",
					Parts: []part{{Text: "I am fine, thanks."}},
				},
				FinishReason: "STOP",
			}},
			UsageMetadata: &usageMetadata{PromptTokenCount: 9, CandidatesTokenCount: 6, TotalTokenCount: 15},
			ModelVersion:  "gemini-2.5-flash",
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("google-key").WithBaseURL(server.URL)
	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model: "gemini-2.5-flash",
		Messages: []ai.Message{
			{Role: ai.RoleUser, Content: "hi"},
			{Role: ai.RoleAssistant, Content: "hello"},
			{Role: ai.RoleUser, Content: "how are you"},
		},
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}

	if gotPath != "/models/gemini-2.5-flash:generateContent" {
		t.Errorf("request path = %q, want model-scoped generateContent", gotPath)
	}
	if gotKey != "google-key" {
		t.Errorf("x-goog-api-key = %q, want google-key", gotKey)
	}
	if gotAuth != "" {
		t.Errorf("Authorization = %q, want empty (Gemini uses x-goog-api-key)", gotAuth)
	}
	if len(gotBody.Contents) != 3 {
		t.Errorf("wire contents = %d, want 3", len(gotBody.Contents))
	}

	if resp.Content != "I am fine, thanks." {
		t.Errorf("Content = %q, want candidate text", resp.Content)
	}
	if resp.FinishReason != "stop" {
		t.Errorf("FinishReason = %q, want stop", resp.FinishReason)
	}
	if resp.Usage == nil || resp.Usage.TotalTokens != 15 {
		t.Errorf("Usage not mapped: %+v", resp.Usage)
	}
}

func TestSendMessageMissingKey(t *testing.T) {
	t.Setenv("GOOGLE_API_KEY", "")

	_, err := New().SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gemini-2.5-flash",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for missing API key")
	}
	if !strings.Contains(err.Error(), "GOOGLE_API_KEY is not set") {
		t.Errorf("error = %q, want mention of GOOGLE_API_KEY", err)
	}
}

func TestSendMessageNoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse{})
	}))
	defer server.Close()

	provider := New().WithAPIKey("google-key").WithBaseURL(server.URL)
	_, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gemini-2.5-flash",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error for response without candidates")
	}
	if !strings.Contains(err.Error(), "no candidates") {
		t.Errorf("error = %q, want mention of missing candidates", err)
	}
}

func TestSendMessageBlockedPrompt(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(generateContentResponse{
			PromptFeedback: &promptFeedback{BlockReason: "SAFETY"},
		})
	}))
	defer server.Close()

	provider := New().WithAPIKey("google-key").WithBaseURL(server.URL)
	resp, err := provider.SendMessage(context.Background(), ai.ChatRequest{
		Model:    "gemini-2.5-flash",
		Messages: []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
	})
	if err != nil {
		t.Fatalf("SendMessage returned error: %v", err)
	}
	if resp.FinishReason != "content_filter" {
		t.Errorf("FinishReason = %q, want content_filter", resp.FinishReason)
	}
	if resp.Content != "" {
		t.Errorf("Content = %q, want empty for blocked prompt", resp.Content)
	}
}
