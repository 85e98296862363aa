package openai

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/veebee17/my-llm-project1/internal/utils"
	"github.com/veebee17/my-llm-project1/providers/ai"
	"github.com/veebee17/my-llm-project1/providers/observability"
)

const (
	defaultBaseURL          = "https://api.openai.com/v1"
	chatCompletionsEndpoint = "/chat/completions"
)

// Provider implements [ai.Provider] for the OpenAI Chat Completions API and
// for any vendor exposing a compatible endpoint (see [NewCompatible]).
type Provider struct {
	vendor  string // vendor name used in log attributes (e.g. "openai", "groq")
	keyName string // environment variable holding the credential, used in the missing-key error
	apiKey  string
	orgID   string
	baseURL string
	client  *http.Client
}

// New returns a Provider initialized from environment variables. It reads
// OPENAI_API_KEY for authentication, OPENAI_ORG_ID for the optional
// organization header, and OPENAI_API_BASE_URL for the endpoint base
// (defaulting to https://api.openai.com/v1 when unset).
func New() *Provider {
	baseURL := os.Getenv("OPENAI_API_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Provider{
		vendor:  "openai",
		keyName: "OPENAI_API_KEY",
		apiKey:  os.Getenv("OPENAI_API_KEY"),
		orgID:   os.Getenv("OPENAI_ORG_ID"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// NewCompatible returns a Provider for an OpenAI-compatible vendor. The
// credential is read from keyEnvVar; baseURL must point at the vendor's
// chat-completions root (e.g. https://api.groq.com/openai/v1).
func NewCompatible(vendor, keyEnvVar, baseURL string) *Provider {
	return &Provider{
		vendor:  vendor,
		keyName: keyEnvVar,
		apiKey:  os.Getenv(keyEnvVar),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the API key for the provider
func (p *Provider) WithAPIKey(apiKey string) ai.Provider {
	p.apiKey = apiKey
	return p
}

// WithBaseURL sets the base URL for the API
func (p *Provider) WithBaseURL(baseURL string) ai.Provider {
	p.baseURL = baseURL
	return p
}

// WithHttpClient sets a custom HTTP client
func (p *Provider) WithHttpClient(httpClient *http.Client) ai.Provider {
	p.client = httpClient
	return p
}

// SendMessage implements [ai.Provider] by posting the conversation to the
// chat-completions endpoint and mapping the first choice back to the generic
// response format. It returns an error if the API key is unset, the HTTP
// request fails, or the response carries no usable completion.
func (p *Provider) SendMessage(ctx context.Context, request ai.ChatRequest) (*ai.ChatResponse, error) {
	span := observability.SpanFromContext(ctx)
	observer := observability.ObserverFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventLLMRequestStart)
		span.SetAttributes(
			observability.String(observability.AttrLLMProvider, p.vendor),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
		)
		defer span.AddEvent(observability.EventLLMRequestEnd)
	}

	if observer != nil {
		observer.Trace(ctx, "Chat completions provider preparing request",
			observability.String(observability.AttrLLMProvider, p.vendor),
			observability.String(observability.AttrLLMEndpoint, p.baseURL),
			observability.String(observability.AttrLLMModel, request.Model),
			observability.Int(observability.AttrRequestMessagesCount, len(request.Messages)),
		)
	}

	// Guard against missing credentials before making a network call.
	if p.apiKey == "" {
		return nil, fmt.Errorf("%s is not set", p.keyName)
	}

	var headers []utils.HeaderOption
	if p.orgID != "" {
		headers = append(headers, utils.HeaderOption{Key: "OpenAI-Organization", Value: p.orgID})
	}

	httpResponse, resp, err := utils.DoPostSync[chatCompletionResponse](
		ctx,
		p.client,
		p.baseURL+chatCompletionsEndpoint,
		p.apiKey,
		requestFromGeneric(request),
		headers...,
	)
	if err != nil {
		if observer != nil {
			observer.Trace(ctx, "HTTP request failed", observability.Error(err))
		}
		return nil, err
	}

	if resp == nil {
		return nil, fmt.Errorf("empty response from %s API: %s", p.vendor, httpResponse.Status)
	}
	if err := validateResponse(resp); err != nil {
		return nil, err
	}

	result := responseToGeneric(*resp)
	if result.Model == "" {
		result.Model = request.Model
	}

	if span != nil {
		span.SetAttributes(
			observability.String(observability.AttrLLMResponseID, result.Id),
			observability.String(observability.AttrLLMFinishReason, result.FinishReason),
			observability.Int(observability.AttrHTTPStatusCode, httpResponse.StatusCode),
		)
		if result.Usage != nil {
			span.AddEvent(observability.EventTokensReceived,
				observability.Int(observability.AttrLLMTokensTotal, result.Usage.TotalTokens),
			)
		}
	}

	return result, nil
}
