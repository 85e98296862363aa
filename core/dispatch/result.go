package dispatch

import "fmt"

// ProviderID identifies one of the supported LLM providers. The set is
// closed; use [ParseProviderID] to validate external input.
type ProviderID string

const (
	ProviderOpenAI    ProviderID = "openai"
	ProviderAnthropic ProviderID = "anthropic"
	ProviderGoogle    ProviderID = "google"
	ProviderGroq      ProviderID = "groq"
)

// AllProviders lists the supported providers in UI order.
var AllProviders = []ProviderID{ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderGroq}

// ParseProviderID validates a raw provider string against the closed set.
func ParseProviderID(s string) (ProviderID, bool) {
	switch ProviderID(s) {
	case ProviderOpenAI, ProviderAnthropic, ProviderGoogle, ProviderGroq:
		return ProviderID(s), true
	}
	return "", false
}

// DisplayName returns the human-readable vendor name used as the prefix of
// failure messages (e.g. "OpenAI Error: ...").
func (id ProviderID) DisplayName() string {
	switch id {
	case ProviderOpenAI:
		return "OpenAI"
	case ProviderAnthropic:
		return "Anthropic"
	case ProviderGoogle:
		return "Google"
	case ProviderGroq:
		return "Groq"
	}
	return string(id)
}

// ProviderError describes a failed provider call. It satisfies the error
// interface but is normally consumed through [Result] as a value.
type ProviderError struct {
	Provider ProviderID
	Message  string
}

func (e *ProviderError) Error() string {
	return e.Message
}

// Result is the value-typed outcome of a dispatch: either the normalized
// response text or a ProviderError. It is always a value; dispatching never
// panics and never returns a raw error to the caller.
type Result struct {
	Text string
	Err  *ProviderError
}

// Ok reports whether the dispatch succeeded.
func (r Result) Ok() bool {
	return r.Err == nil
}

// Success wraps a normalized response text.
func Success(text string) Result {
	return Result{Text: text}
}

// Failure wraps a provider failure message.
func Failure(provider ProviderID, message string) Result {
	return Result{Err: &ProviderError{Provider: provider, Message: message}}
}

// failuref builds a Failure with a vendor-name-prefixed diagnostic.
func failuref(provider ProviderID, err error) Result {
	return Failure(provider, fmt.Sprintf("%s Error: %v", provider.DisplayName(), err))
}
