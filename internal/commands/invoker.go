package commands

import (
	"context"
	"sync"
)

// DefaultHistorySize bounds the undo stack when no explicit limit is given.
const DefaultHistorySize = 50

// Invoker executes commands and owns the bounded undo stack. A command
// that fails to execute is never pushed. When the stack exceeds its
// bound the oldest entry is evicted; eviction only shortens how far back
// undo reaches, it never touches repository state.
type Invoker struct {
	mu    sync.Mutex
	stack []Command
	limit int
}

func NewInvoker(limit int) *Invoker {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	return &Invoker{limit: limit}
}

// Execute runs the command's forward effect and, on success, pushes it
// onto the undo stack.
func (i *Invoker) Execute(ctx context.Context, cmd Command) error {
	if err := cmd.Execute(ctx); err != nil {
		return err
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	i.stack = append(i.stack, cmd)
	if len(i.stack) > i.limit {
		i.stack = append(i.stack[:0], i.stack[1:]...)
	}
	return nil
}

// Undo reverses the most recently executed command. The boolean reports
// whether a command was available: (nil, false, nil) means an empty
// stack, which is a routine outcome, not an error. A command whose Undo
// fails stays popped; failed undos are not retried.
func (i *Invoker) Undo(ctx context.Context) (Command, bool, error) {
	i.mu.Lock()
	if len(i.stack) == 0 {
		i.mu.Unlock()
		return nil, false, nil
	}

	cmd := i.stack[len(i.stack)-1]
	i.stack = i.stack[:len(i.stack)-1]
	i.mu.Unlock()

	if err := cmd.Undo(ctx); err != nil {
		return cmd, true, err
	}
	return cmd, true, nil
}

func (i *Invoker) CanUndo() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return len(i.stack) > 0
}

// History returns the descriptions of every command still on the stack,
// oldest first.
func (i *Invoker) History() []string {
	i.mu.Lock()
	defer i.mu.Unlock()

	history := make([]string, len(i.stack))
	for idx, cmd := range i.stack {
		history[idx] = cmd.Description()
	}
	return history
}
