package audit

import (
	"context"
	"sync"
	"time"
)

// Action is the short categorical code recorded with every entry.
type Action string

const (
	ActionCreate   Action = "CREATE"
	ActionUpdate   Action = "UPDATE"
	ActionDelete   Action = "DELETE"
	ActionComplete Action = "COMPLETE"
)

// Undone returns the code recorded when an action of this kind is reversed.
func (a Action) Undone() Action {
	return "UNDO_" + a
}

// Entry is one line in the session's audit trail.
type Entry struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	Details   string    `json:"details"`
}

// Log is an append-only chronological record of committed actions.
// Entries are never removed or reordered; undo activity appends, it
// never rewinds.
type Log interface {
	Record(ctx context.Context, action Action, details string) error
	History(ctx context.Context) ([]Entry, error)
}

// MemoryLog is the in-process Log used for interactive sessions and tests.
type MemoryLog struct {
	mu      sync.Mutex
	entries []Entry
}

var _ Log = (*MemoryLog)(nil)

func NewMemoryLog() *MemoryLog {
	return &MemoryLog{}
}

func (l *MemoryLog) Record(ctx context.Context, action Action, details string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, Entry{
		Timestamp: time.Now().UTC(),
		Action:    action,
		Details:   details,
	})
	return nil
}

func (l *MemoryLog) History(ctx context.Context) ([]Entry, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	history := make([]Entry, len(l.entries))
	copy(history, l.entries)
	return history, nil
}
