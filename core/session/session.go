// Package session holds interactive chat state as explicit values: one
// Session per interactive user, tracked in a Registry. There is no ambient
// global; handlers receive the session they operate on.
package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/veebee17/my-llm-project1/providers/memory/inmemory"
)

// Defaults applied to a freshly created session, matching the UI's initial
// selection.
const (
	DefaultProvider    = "google"
	DefaultModel       = "gemini-2.5-flash"
	DefaultTemperature = 0.7
	DefaultMaxTokens   = 1000
)

// Session is the state of one interactive chat: selected provider, model,
// generation parameters, and the conversation history. It is created on
// session start, cleared explicitly on "clear chat", and destroyed when the
// session ends. One session has a single writer (its user); the settings
// mutex only protects against the HTTP server's concurrent request handling.
type Session struct {
	ID      string
	History *inmemory.Store

	mu          sync.RWMutex
	provider    string
	model       string
	temperature float64
	maxTokens   int
}

// New returns a Session with a fresh id, an empty history, and default
// settings.
func New() *Session {
	return &Session{
		ID:          uuid.NewString(),
		History:     inmemory.New(),
		provider:    DefaultProvider,
		model:       DefaultModel,
		temperature: DefaultTemperature,
		maxTokens:   DefaultMaxTokens,
	}
}

// Settings returns the current provider, model, temperature, and max tokens.
func (s *Session) Settings() (provider, model string, temperature float64, maxTokens int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.provider, s.model, s.temperature, s.maxTokens
}

// UpdateSettings replaces the session's provider, model, and generation
// parameters. An empty provider or model keeps the current value, as do a
// negative temperature and a non-positive maxTokens. Temperature 0 is a real
// setting (deterministic sampling) and is stored.
func (s *Session) UpdateSettings(provider, model string, temperature float64, maxTokens int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if provider != "" {
		s.provider = provider
	}
	if model != "" {
		s.model = model
	}
	if temperature >= 0 {
		s.temperature = temperature
	}
	if maxTokens > 0 {
		s.maxTokens = maxTokens
	}
}

// Clear empties the conversation history. Settings are preserved, matching
// the UI's "clear chat" action.
func (s *Session) Clear(ctx context.Context) {
	s.History.ClearMessages(ctx)
}

// Registry tracks live sessions by id. Safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{sessions: map[string]*Session{}}
}

// Create registers and returns a new session.
func (r *Registry) Create() *Session {
	s := New()
	r.mu.Lock()
	r.sessions[s.ID] = s
	r.mu.Unlock()
	return s
}

// Get returns the session with the given id, if present.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[id]
	return s, ok
}

// Delete destroys the session with the given id. Deleting an unknown id is a
// no-op.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}
