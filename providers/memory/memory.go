package memory

import (
	"context"

	"github.com/veebee17/my-llm-project1/providers/ai"
)

// Provider stores an ordered conversation history. Role alternation is not
// enforced and there is no size limit; trimming and windowing are left to
// the caller.
type Provider interface {
	// AppendMessage stores message at the end of the history.
	AppendMessage(ctx context.Context, message *ai.Message)

	// AllMessages returns a copy of the full history in insertion order.
	AllMessages(ctx context.Context) ([]ai.Message, error)

	// Count returns the number of stored messages.
	Count(ctx context.Context) (int, error)

	// PopLastMessage removes and returns the last message, or nil if empty.
	PopLastMessage(ctx context.Context) (*ai.Message, error)

	// ClearMessages removes all messages.
	ClearMessages(ctx context.Context)
}
