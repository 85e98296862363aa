package inmemory

import (
	"context"
	"sync"

	"github.com/veebee17/my-llm-project1/providers/ai"
	"github.com/veebee17/my-llm-project1/providers/memory"
	"github.com/veebee17/my-llm-project1/providers/observability"
)

// Store is a simple, concurrency-safe in-memory message store.
// It uses RWMutex to guard access and is efficient for read-heavy workloads.
type Store struct {
	mu       sync.RWMutex
	messages []ai.Message
}

// New returns a new, empty [Store] ready for immediate use.
// The internal message slice is pre-allocated to avoid extra allocations on the first appends.
func New() *Store {
	return &Store{
		messages: []ai.Message{},
	}
}

// Ensure Store implements memory.Provider at compile time.
var _ memory.Provider = (*Store)(nil)

// AppendMessage stores a copy of message at the end of the history.
// It is a no-op when message is nil.
// When an observability span is present in ctx, an event is recorded with the
// message role and content length, and the running total message count is set
// as a span attribute so callers can track history growth through tracing.
func (m *Store) AppendMessage(ctx context.Context, message *ai.Message) {
	if message == nil {
		return
	}

	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventMemoryAppend,
			observability.String(observability.AttrMemoryMessageRole, string(message.Role)),
			observability.Int(observability.AttrMemoryMessageLength, len(message.Content)),
		)
	}

	m.mu.Lock()
	m.messages = append(m.messages, *message)
	totalMessages := len(m.messages)
	m.mu.Unlock()

	if span != nil {
		span.SetAttributes(
			observability.Int(observability.AttrMemoryTotalMessages, totalMessages),
		)
	}
}

// Count returns the number of messages stored.
// The context parameter is accepted for interface compliance but is not used
// by the in-memory implementation. The returned error is always nil.
func (m *Store) Count(_ context.Context) (int, error) {
	m.mu.RLock()
	n := len(m.messages)
	m.mu.RUnlock()
	return n, nil
}

// AllMessages returns a copy of all messages to avoid external mutation of internal state.
// The context parameter is accepted for interface compliance but is not used
// by the in-memory implementation. The returned error is always nil.
func (m *Store) AllMessages(_ context.Context) ([]ai.Message, error) {
	m.mu.RLock()
	if len(m.messages) == 0 {
		m.mu.RUnlock()
		return []ai.Message{}, nil
	}
	out := make([]ai.Message, len(m.messages))
	copy(out, m.messages)
	m.mu.RUnlock()
	return out, nil
}

// PopLastMessage removes and returns the last message, or nil if empty.
// The context parameter is accepted for interface compliance but is not used
// by the in-memory implementation. The returned error is always nil.
func (m *Store) PopLastMessage(_ context.Context) (*ai.Message, error) {
	m.mu.Lock()
	if len(m.messages) == 0 {
		m.mu.Unlock()
		return nil, nil
	}
	idx := len(m.messages) - 1
	msg := m.messages[idx]
	m.messages = m.messages[:idx]
	m.mu.Unlock()
	return &msg, nil
}

// ClearMessages removes all messages while retaining the underlying slice capacity,
// so subsequent appends do not immediately trigger a reallocation.
// When an observability span is present in ctx, a clear event is recorded before
// the store is reset.
func (m *Store) ClearMessages(ctx context.Context) {
	span := observability.SpanFromContext(ctx)

	if span != nil {
		span.AddEvent(observability.EventMemoryClear)
	}

	m.mu.Lock()
	m.messages = m.messages[:0]
	m.mu.Unlock()
}
