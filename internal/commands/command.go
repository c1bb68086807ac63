package commands

import (
	"context"

	"task-tracker.com/task-tracker/internal/audit"
)

// Command is a reversible mutation of the task repository. Each variant
// captures, during Execute, exactly the pre-mutation state it needs to
// reverse itself. The Invoker owns sequencing: Execute runs at most once,
// Undo runs at most once and only after a successful Execute.
type Command interface {
	Execute(ctx context.Context) error
	Undo(ctx context.Context) error
	Description() string
	Action() audit.Action
}
