// Package memory defines the conversation storage contract used by sessions.
// Implementations own the message history; callers receive copies and must
// never assume aliasing of the internal slice.
package memory
