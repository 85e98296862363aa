package dispatch

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/veebee17/my-llm-project1/core/config"
	"github.com/veebee17/my-llm-project1/providers/ai"
)

// fakeAdapter lets tests script adapter behavior per call.
type fakeAdapter struct {
	send func(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error)
}

func (f *fakeAdapter) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	return f.send(ctx, request)
}

func (f *fakeAdapter) WithAPIKey(string) ai.Provider { return f }
func (f *fakeAdapter) WithBaseURL(string) ai.Provider { return f }
func (f *fakeAdapter) WithHttpClient(*http.Client) ai.Provider { return f }

func fixedFactory(adapter ai.Provider) AdapterFactory {
	return func(ProviderID) ai.Provider { return adapter }
}

func TestSendSuccess(t *testing.T) {
	var gotRequest ai.ChatRequest
	dispatcher := NewWithFactory(fixedFactory(&fakeAdapter{
		send: func(_ context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
			gotRequest = request
			return &ai.ChatResponse{Content: "normalized text"}, nil
		},
	}))

	history := []ai.Message{
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
	}
	temperature := 0.7
	result := dispatcher.Send(context.Background(), "openai", "gpt-4o",
		ai.GenerationConfig{Temperature: &temperature, MaxTokens: 1000}, history)

	if !result.Ok() {
		t.Fatalf("Send failed: %+v", result.Err)
	}
	if result.Text != "normalized text" {
		t.Errorf("Text = %q, want normalized text", result.Text)
	}
	if gotRequest.Model != "gpt-4o" {
		t.Errorf("adapter received model %q, want gpt-4o", gotRequest.Model)
	}
	if len(gotRequest.Messages) != 2 {
		t.Errorf("adapter received %d messages, want 2", len(gotRequest.Messages))
	}
	if gotRequest.GenerationConfig == nil || gotRequest.GenerationConfig.MaxTokens != 1000 {
		t.Errorf("generation config not forwarded: %+v", gotRequest.GenerationConfig)
	}
}

func TestSendInvalidProvider(t *testing.T) {
	factoryCalled := false
	dispatcher := NewWithFactory(func(ProviderID) ai.Provider {
		factoryCalled = true
		return nil
	})

	result := dispatcher.Send(context.Background(), "not-a-real-provider", "any-model",
		ai.GenerationConfig{}, nil)

	if result.Ok() {
		t.Fatal("expected failure for unknown provider")
	}
	if result.Err.Message != "Invalid provider" {
		t.Errorf("message = %q, want exactly %q", result.Err.Message, "Invalid provider")
	}
	if factoryCalled {
		t.Error("factory must not be invoked for an unknown provider")
	}
}

func TestSendAdapterErrorIsPrefixed(t *testing.T) {
	dispatcher := NewWithFactory(fixedFactory(&fakeAdapter{
		send: func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
			return nil, fmt.Errorf("connection refused")
		},
	}))

	cases := map[string]string{
		"openai":    "OpenAI Error: connection refused",
		"anthropic": "Anthropic Error: connection refused",
		"google":    "Google Error: connection refused",
		"groq":      "Groq Error: connection refused",
	}
	for provider, want := range cases {
		result := dispatcher.Send(context.Background(), provider, "m", ai.GenerationConfig{}, nil)
		if result.Ok() {
			t.Fatalf("%s: expected failure", provider)
		}
		if result.Err.Message != want {
			t.Errorf("%s: message = %q, want %q", provider, result.Err.Message, want)
		}
	}
}

func TestSendNeverPanics(t *testing.T) {
	dispatcher := NewWithFactory(fixedFactory(&fakeAdapter{
		send: func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
			panic("adapter blew up")
		},
	}))

	result := dispatcher.Send(context.Background(), "groq", "llama-3.1-8b-instant",
		ai.GenerationConfig{}, nil)

	if result.Ok() {
		t.Fatal("expected failure from panicking adapter")
	}
	if !strings.Contains(result.Err.Message, "adapter blew up") {
		t.Errorf("message = %q, want the panic value folded in", result.Err.Message)
	}
}

func TestSendNilResponse(t *testing.T) {
	dispatcher := NewWithFactory(fixedFactory(&fakeAdapter{
		send: func(context.Context, ai.ChatRequest) (*ai.ChatResponse, error) {
			return nil, nil
		},
	}))

	result := dispatcher.Send(context.Background(), "openai", "gpt-4o", ai.GenerationConfig{}, nil)
	if result.Ok() {
		t.Fatal("expected failure for nil adapter response")
	}
	if !strings.Contains(result.Err.Message, "empty response") {
		t.Errorf("message = %q, want mention of empty response", result.Err.Message)
	}
}

// With no credentials configured, the default wiring must fail before any
// network call and name the provider in the diagnostic.
func TestSendMissingCredential(t *testing.T) {
	for _, key := range []string{
		config.KeyOpenAI, config.KeyAnthropic, config.KeyGoogle, config.KeyGroq,
	} {
		t.Setenv(key, "")
	}

	dispatcher := New(config.NewResolver())
	for _, id := range AllProviders {
		result := dispatcher.Send(context.Background(), string(id), "any-model",
			ai.GenerationConfig{}, []ai.Message{{Role: ai.RoleUser, Content: "hi"}})
		if result.Ok() {
			t.Fatalf("%s: expected failure without credentials", id)
		}
		if !strings.Contains(result.Err.Message, id.DisplayName()) {
			t.Errorf("%s: message = %q, want it to contain %q", id, result.Err.Message, id.DisplayName())
		}
	}
}

func TestParseProviderID(t *testing.T) {
	for _, id := range AllProviders {
		got, ok := ParseProviderID(string(id))
		if !ok || got != id {
			t.Errorf("ParseProviderID(%q) = %q, %v", id, got, ok)
		}
	}
	if _, ok := ParseProviderID("OpenAI"); ok {
		t.Error("ParseProviderID must be case-sensitive")
	}
	if _, ok := ParseProviderID(""); ok {
		t.Error("ParseProviderID must reject the empty string")
	}
}
