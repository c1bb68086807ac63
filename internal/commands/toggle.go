package commands

import (
	"context"
	"fmt"
	"time"

	"task-tracker.com/task-tracker/internal/audit"
	"task-tracker.com/task-tracker/internal/constants"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// ToggleCompleteCommand flips a task between pending and completed.
// Execute records the prior record so Undo can restore the previous
// status and updated_at exactly.
type ToggleCompleteCommand struct {
	repo     repository.TaskRepository
	id       string
	snapshot *model.Task
	toggled  *model.Task
}

func NewToggleCompleteCommand(repo repository.TaskRepository, id string) *ToggleCompleteCommand {
	return &ToggleCompleteCommand{
		repo: repo,
		id:   id,
	}
}

func (c *ToggleCompleteCommand) Execute(ctx context.Context) error {
	current, err := c.repo.Get(ctx, c.id)
	if err != nil {
		return err
	}

	next := *current
	if next.Status == constants.StatusCompleted {
		next.Status = constants.StatusPending
	} else {
		next.Status = constants.StatusCompleted
	}
	next.UpdatedAt = time.Now().UTC()

	toggled, err := c.repo.Update(ctx, &next)
	if err != nil {
		return err
	}

	c.snapshot = current
	c.toggled = toggled
	return nil
}

func (c *ToggleCompleteCommand) Undo(ctx context.Context) error {
	_, err := c.repo.Update(ctx, c.snapshot)
	return err
}

func (c *ToggleCompleteCommand) Description() string {
	if c.toggled.Status == constants.StatusCompleted {
		return fmt.Sprintf("Task '%s' marked completed", c.toggled.Title)
	}
	return fmt.Sprintf("Task '%s' reopened", c.toggled.Title)
}

func (c *ToggleCompleteCommand) Action() audit.Action {
	return audit.ActionComplete
}

// Result returns the post-toggle record. Valid after a successful Execute.
func (c *ToggleCompleteCommand) Result() *model.Task {
	return c.toggled
}
