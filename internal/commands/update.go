package commands

import (
	"context"
	"fmt"
	"time"

	"task-tracker.com/task-tracker/internal/audit"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// UpdateCommand applies new field values to a task. Nil fields are left
// untouched. Execute snapshots the full pre-update record; Undo restores
// it verbatim, so even updated_at rolls back.
type UpdateCommand struct {
	repo        repository.TaskRepository
	id          string
	title       *string
	description *string
	snapshot    *model.Task
	updated     *model.Task
}

func NewUpdateCommand(repo repository.TaskRepository, id string, title, description *string) *UpdateCommand {
	return &UpdateCommand{
		repo:        repo,
		id:          id,
		title:       title,
		description: description,
	}
}

func (c *UpdateCommand) Execute(ctx context.Context) error {
	current, err := c.repo.Get(ctx, c.id)
	if err != nil {
		return err
	}

	next := *current
	if c.title != nil {
		next.Title = *c.title
	}
	if c.description != nil {
		next.Description = *c.description
	}
	next.UpdatedAt = time.Now().UTC()

	updated, err := c.repo.Update(ctx, &next)
	if err != nil {
		return err
	}

	c.snapshot = current
	c.updated = updated
	return nil
}

func (c *UpdateCommand) Undo(ctx context.Context) error {
	_, err := c.repo.Update(ctx, c.snapshot)
	return err
}

func (c *UpdateCommand) Description() string {
	return fmt.Sprintf("Task '%s' updated", c.updated.Title)
}

func (c *UpdateCommand) Action() audit.Action {
	return audit.ActionUpdate
}

// Result returns the post-update record. Valid after a successful Execute.
func (c *UpdateCommand) Result() *model.Task {
	return c.updated
}
