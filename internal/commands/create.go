package commands

import (
	"context"
	"fmt"

	"task-tracker.com/task-tracker/internal/audit"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// CreateCommand inserts a validated task and remembers the assigned id
// so Undo can delete exactly what it created.
type CreateCommand struct {
	repo    repository.TaskRepository
	task    *model.Task
	created *model.Task
}

func NewCreateCommand(repo repository.TaskRepository, task *model.Task) *CreateCommand {
	return &CreateCommand{
		repo: repo,
		task: task,
	}
}

func (c *CreateCommand) Execute(ctx context.Context) error {
	created, err := c.repo.Add(ctx, c.task)
	if err != nil {
		return err
	}

	c.created = created
	return nil
}

func (c *CreateCommand) Undo(ctx context.Context) error {
	return c.repo.Delete(ctx, c.created.ID)
}

func (c *CreateCommand) Description() string {
	return fmt.Sprintf("Task '%s' created", c.task.Title)
}

func (c *CreateCommand) Action() audit.Action {
	return audit.ActionCreate
}

// Result returns the stored task, id included. Valid after a successful
// Execute.
func (c *CreateCommand) Result() *model.Task {
	return c.created
}
