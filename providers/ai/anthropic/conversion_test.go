package anthropic

import (
	"testing"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

func TestBuildMessagesFoldsSystemIntoUser(t *testing.T) {
	msgs := buildMessages([]ai.Message{
		{Role: ai.RoleSystem, Content: "be brief"},
		{Role: ai.RoleUser, Content: "hi"},
		{Role: ai.RoleAssistant, Content: "hello"},
	})
	if len(msgs) != 3 {
		t.Fatalf("messages = %d, want 3", len(msgs))
	}
	if msgs[0].Role != "user" {
		t.Errorf("system turn mapped to %q, want user", msgs[0].Role)
	}
	if msgs[2].Role != "assistant" {
		t.Errorf("assistant turn mapped to %q, want assistant", msgs[2].Role)
	}
}

func TestMapStopReason(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"end_turn", "stop"},
		{"stop_sequence", "stop"},
		{"max_tokens", "length"},
		{"something_new", "stop"},
	}
	for _, c := range cases {
		if got := mapStopReason(c.in); got != c.want {
			t.Errorf("mapStopReason(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestRequestToAnthropicTemperature(t *testing.T) {
	temperature := 0.3
	req := requestToAnthropic(ai.ChatRequest{
		Model:            "claude-sonnet-4-20250514",
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{Temperature: &temperature},
	})
	if req.Temperature == nil || *req.Temperature != 0.3 {
		t.Errorf("Temperature = %v, want 0.3", req.Temperature)
	}
	if req.MaxTokens != defaultMaxTokens {
		t.Errorf("MaxTokens = %d, want default %d", req.MaxTokens, defaultMaxTokens)
	}
}

func TestRequestToAnthropicForwardsExplicitZeroTemperature(t *testing.T) {
	zero := 0.0
	req := requestToAnthropic(ai.ChatRequest{
		Model:            "claude-sonnet-4-20250514",
		Messages:         []ai.Message{{Role: ai.RoleUser, Content: "hi"}},
		GenerationConfig: &ai.GenerationConfig{Temperature: &zero, MaxTokens: 100},
	})
	if req.Temperature == nil || *req.Temperature != 0 {
		t.Errorf("Temperature = %v, want explicit 0 on the wire", req.Temperature)
	}
}
