package dispatch

import (
	"context"
	"fmt"

	"github.com/veebee17/my-llm-project1/core/config"
	"github.com/veebee17/my-llm-project1/providers/ai"
	"github.com/veebee17/my-llm-project1/providers/ai/anthropic"
	"github.com/veebee17/my-llm-project1/providers/ai/gemini"
	"github.com/veebee17/my-llm-project1/providers/ai/groq"
	"github.com/veebee17/my-llm-project1/providers/ai/openai"
	"github.com/veebee17/my-llm-project1/providers/observability"
)

// invalidProviderMessage is the exact failure text for unrecognized provider
// identifiers. Callers surface it verbatim.
const invalidProviderMessage = "Invalid provider"

// AdapterFactory builds an adapter for a validated provider id. The default
// factory constructs the real vendor adapters with a freshly resolved
// credential; tests inject fakes through [NewWithFactory].
type AdapterFactory func(id ProviderID) ai.Provider

// Dispatcher routes chat requests to the adapter selected by provider id.
// It holds no mutable state and is safe for concurrent use; credentials are
// resolved fresh on every call so rotated keys take effect immediately.
type Dispatcher struct {
	factory AdapterFactory
}

// New returns a Dispatcher wired to the real vendor adapters, resolving
// credentials through creds on every call.
func New(creds *config.Resolver) *Dispatcher {
	return &Dispatcher{factory: defaultFactory(creds)}
}

// NewWithFactory returns a Dispatcher using a caller-supplied adapter
// factory. Intended for tests.
func NewWithFactory(factory AdapterFactory) *Dispatcher {
	return &Dispatcher{factory: factory}
}

// defaultFactory resolves the provider's credential and constructs its
// adapter. An absent credential is passed through as an empty key so the
// adapter's own "key is not set" guard produces the diagnostic.
func defaultFactory(creds *config.Resolver) AdapterFactory {
	return func(id ProviderID) ai.Provider {
		switch id {
		case ProviderOpenAI:
			key, _ := creds.Resolve(config.KeyOpenAI)
			return openai.New().WithAPIKey(key)
		case ProviderAnthropic:
			key, _ := creds.Resolve(config.KeyAnthropic)
			return anthropic.New().WithAPIKey(key)
		case ProviderGoogle:
			key, _ := creds.Resolve(config.KeyGoogle)
			return gemini.New().WithAPIKey(key)
		case ProviderGroq:
			key, _ := creds.Resolve(config.KeyGroq)
			return groq.New().WithAPIKey(key)
		}
		// Unreachable: Send validates the id before calling the factory.
		return nil
	}
}

// Send routes the conversation to the adapter selected by provider and
// returns the outcome as a value. Unknown providers fail fast with
// "Invalid provider" and never reach an adapter. Adapter errors (missing
// credentials, network failures, non-2xx statuses, malformed bodies) are
// folded into a Failure whose message is prefixed with the vendor name.
// Send never panics and never returns a raw error.
func (d *Dispatcher) Send(ctx context.Context, provider, model string, cfg ai.GenerationConfig, history []ai.Message) (result Result) {
	id, ok := ParseProviderID(provider)
	if !ok {
		return Failure(ProviderID(provider), invalidProviderMessage)
	}

	// Last-resort guard: a panicking adapter must still yield a value.
	defer func() {
		if r := recover(); r != nil {
			result = failuref(id, fmt.Errorf("panic: %v", r))
		}
	}()

	if observer := observability.ObserverFromContext(ctx); observer != nil {
		observer.Debug(ctx, "Dispatching chat request",
			observability.String(observability.AttrLLMProvider, string(id)),
			observability.String(observability.AttrLLMModel, model),
			observability.Int(observability.AttrRequestMessagesCount, len(history)),
		)
	}

	adapter := d.factory(id)
	if adapter == nil {
		return Failure(id, invalidProviderMessage)
	}

	response, err := adapter.SendMessage(ctx, ai.ChatRequest{
		Model:            model,
		Messages:         history,
		GenerationConfig: &cfg,
	})
	if err != nil {
		return failuref(id, err)
	}
	if response == nil {
		return failuref(id, fmt.Errorf("empty response"))
	}

	return Success(response.Content)
}
