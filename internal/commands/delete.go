package commands

import (
	"context"
	"fmt"

	"task-tracker.com/task-tracker/internal/audit"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// DeleteCommand removes a task by id. Execute snapshots the full record
// first; Undo re-inserts that exact snapshot, original id and timestamps
// included.
type DeleteCommand struct {
	repo     repository.TaskRepository
	id       string
	snapshot *model.Task
}

func NewDeleteCommand(repo repository.TaskRepository, id string) *DeleteCommand {
	return &DeleteCommand{
		repo: repo,
		id:   id,
	}
}

func (c *DeleteCommand) Execute(ctx context.Context) error {
	task, err := c.repo.Get(ctx, c.id)
	if err != nil {
		return err
	}

	if err := c.repo.Delete(ctx, c.id); err != nil {
		return err
	}

	c.snapshot = task
	return nil
}

func (c *DeleteCommand) Undo(ctx context.Context) error {
	_, err := c.repo.Add(ctx, c.snapshot)
	return err
}

func (c *DeleteCommand) Description() string {
	return fmt.Sprintf("Task '%s' deleted", c.snapshot.Title)
}

func (c *DeleteCommand) Action() audit.Action {
	return audit.ActionDelete
}
