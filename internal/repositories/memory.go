package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
)

// MemoryTaskRepository keeps tasks in an id-keyed map with insertion
// order tracked separately for GetAll.
type MemoryTaskRepository struct {
	mu    sync.Mutex
	tasks map[string]model.Task
	order []string
}

var _ TaskRepository = (*MemoryTaskRepository)(nil)

func NewMemoryTaskRepository() *MemoryTaskRepository {
	return &MemoryTaskRepository{
		tasks: make(map[string]model.Task),
	}
}

func (r *MemoryTaskRepository) Add(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored := *task
	if stored.ID == "" {
		stored.ID = uuid.NewString()
	}

	if _, exists := r.tasks[stored.ID]; !exists {
		r.order = append(r.order, stored.ID)
	}
	r.tasks[stored.ID] = stored

	out := stored
	return &out, nil
}

func (r *MemoryTaskRepository) Get(ctx context.Context, id string) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.tasks[id]
	if !ok {
		return nil, apperrors.ErrTaskNotFound
	}

	out := task
	return &out, nil
}

func (r *MemoryTaskRepository) GetAll(ctx context.Context) ([]model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tasks := make([]model.Task, 0, len(r.order))
	for _, id := range r.order {
		tasks = append(tasks, r.tasks[id])
	}
	return tasks, nil
}

func (r *MemoryTaskRepository) Update(ctx context.Context, task *model.Task) (*model.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[task.ID]; !ok {
		return nil, apperrors.ErrTaskNotFound
	}

	r.tasks[task.ID] = *task

	out := *task
	return &out, nil
}

func (r *MemoryTaskRepository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tasks[id]; !ok {
		return apperrors.ErrTaskNotFound
	}

	delete(r.tasks, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}
