package commands

import (
	"context"
	"errors"
	"testing"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

func seedTask(t *testing.T, repo repository.TaskRepository, title string) *model.Task {
	t.Helper()

	task, err := model.NewTask(title, "seeded for test")
	if err != nil {
		t.Fatalf("failed to build task: %v", err)
	}

	created, err := repo.Add(context.Background(), task)
	if err != nil {
		t.Fatalf("failed to seed task: %v", err)
	}
	return created
}

func TestCreateCommand_RoundTrip(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	task, _ := model.NewTask("Buy milk", "")
	cmd := NewCreateCommand(repo, task)

	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if cmd.Result().ID == "" {
		t.Fatal("expected the created task to carry an id")
	}

	tasks, _ := repo.GetAll(ctx)
	if len(tasks) != 1 {
		t.Fatalf("expected 1 task after execute, got %d", len(tasks))
	}

	if err := cmd.Undo(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	tasks, _ = repo.GetAll(ctx)
	if len(tasks) != 0 {
		t.Errorf("expected 0 tasks after undo, got %d", len(tasks))
	}
}

func TestDeleteCommand_RoundTrip(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	original := seedTask(t, repo, "Draft report")

	cmd := NewDeleteCommand(repo, original.ID)
	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	if _, err := repo.Get(ctx, original.ID); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Fatalf("expected task gone after execute, got %v", err)
	}

	if err := cmd.Undo(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	restored, err := repo.Get(ctx, original.ID)
	if err != nil {
		t.Fatalf("expected task restored, got %v", err)
	}
	if restored.ID != original.ID {
		t.Errorf("expected id %q, got %q", original.ID, restored.ID)
	}
	if restored.Title != original.Title {
		t.Errorf("expected title %q, got %q", original.Title, restored.Title)
	}
	if !restored.CreatedAt.Equal(original.CreatedAt) {
		t.Errorf("expected created_at %v, got %v", original.CreatedAt, restored.CreatedAt)
	}
	if !restored.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("expected updated_at %v, got %v", original.UpdatedAt, restored.UpdatedAt)
	}
}

func TestDeleteCommand_MissingID(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()

	cmd := NewDeleteCommand(repo, "missing")
	if err := cmd.Execute(context.Background()); !errors.Is(err, apperrors.ErrTaskNotFound) {
		t.Errorf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdateCommand_RoundTrip(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	original := seedTask(t, repo, "A")

	newTitle := "B"
	cmd := NewUpdateCommand(repo, original.ID, &newTitle, nil)

	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	updated, _ := repo.Get(ctx, original.ID)
	if updated.Title != "B" {
		t.Fatalf("expected title B after execute, got %q", updated.Title)
	}
	if !updated.UpdatedAt.After(original.UpdatedAt) && !updated.UpdatedAt.Equal(original.UpdatedAt) {
		t.Error("expected updated_at to move forward on execute")
	}

	if err := cmd.Undo(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	restored, _ := repo.Get(ctx, original.ID)
	if restored.Title != "A" {
		t.Errorf("expected title A after undo, got %q", restored.Title)
	}
	if !restored.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("expected updated_at restored to %v, got %v", original.UpdatedAt, restored.UpdatedAt)
	}
}

func TestUpdateCommand_NilFieldsUntouched(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	original := seedTask(t, repo, "Keep description")

	newTitle := "Renamed"
	cmd := NewUpdateCommand(repo, original.ID, &newTitle, nil)
	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	updated, _ := repo.Get(ctx, original.ID)
	if updated.Description != original.Description {
		t.Errorf("description changed unexpectedly: %q", updated.Description)
	}
}

func TestToggleCompleteCommand_RoundTrip(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	original := seedTask(t, repo, "Toggle me")

	cmd := NewToggleCompleteCommand(repo, original.ID)
	if err := cmd.Execute(ctx); err != nil {
		t.Fatalf("execute failed: %v", err)
	}

	toggled, _ := repo.Get(ctx, original.ID)
	if toggled.Status != constants.StatusCompleted {
		t.Fatalf("expected completed, got %s", toggled.Status)
	}

	if err := cmd.Undo(ctx); err != nil {
		t.Fatalf("undo failed: %v", err)
	}

	restored, _ := repo.Get(ctx, original.ID)
	if restored.Status != constants.StatusPending {
		t.Errorf("expected pending after undo, got %s", restored.Status)
	}
	if !restored.UpdatedAt.Equal(original.UpdatedAt) {
		t.Errorf("expected updated_at restored to %v, got %v", original.UpdatedAt, restored.UpdatedAt)
	}
}

func TestToggleCompleteCommand_FlipsBack(t *testing.T) {
	repo := repository.NewMemoryTaskRepository()
	ctx := context.Background()

	task := seedTask(t, repo, "Already done")

	first := NewToggleCompleteCommand(repo, task.ID)
	if err := first.Execute(ctx); err != nil {
		t.Fatalf("first toggle failed: %v", err)
	}

	second := NewToggleCompleteCommand(repo, task.ID)
	if err := second.Execute(ctx); err != nil {
		t.Fatalf("second toggle failed: %v", err)
	}

	current, _ := repo.Get(ctx, task.ID)
	if current.Status != constants.StatusPending {
		t.Errorf("expected pending after double toggle, got %s", current.Status)
	}
	if second.Description() != "Task 'Already done' reopened" {
		t.Errorf("unexpected description: %q", second.Description())
	}
}
