// Package anthropic implements [ai.Provider] against Anthropic's Messages
// API. Anthropic authenticates with an x-api-key header rather than a Bearer
// token and requires max_tokens on every request.
package anthropic
