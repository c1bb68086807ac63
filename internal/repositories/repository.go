package repository

import (
	"context"

	model "task-tracker.com/task-tracker/internal/models"
)

// TaskRepository is the storage abstraction the command layer mutates.
// Implementations must return copies, never aliases into their own store,
// so command snapshots stay stable. Add assigns a fresh id only when the
// task carries none; a task with an id (an undo re-insert) is stored
// verbatim, timestamps included. Update replaces the full record exactly
// as given. Get, Update and Delete report an unknown id via
// errors.ErrTaskNotFound.
type TaskRepository interface {
	Add(ctx context.Context, task *model.Task) (*model.Task, error)
	Get(ctx context.Context, id string) (*model.Task, error)
	GetAll(ctx context.Context) ([]model.Task, error)
	Update(ctx context.Context, task *model.Task) (*model.Task, error)
	Delete(ctx context.Context, id string) error
}
