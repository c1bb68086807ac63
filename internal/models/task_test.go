package model

import (
	"errors"
	"strings"
	"testing"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

func TestNewTask_Valid(t *testing.T) {
	task, err := NewTask("Buy milk", "2 liters, whole")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if task.ID != "" {
		t.Errorf("expected empty id before Add, got %q", task.ID)
	}
	if task.Status != constants.StatusPending {
		t.Errorf("expected status %s, got %s", constants.StatusPending, task.Status)
	}
	if task.CreatedAt.IsZero() || task.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Error("expected created_at and updated_at to match at creation")
	}
	if task.CreatedAt.Location() != task.CreatedAt.UTC().Location() {
		t.Error("expected created_at in UTC")
	}
}

func TestNewTask_EmptyTitle(t *testing.T) {
	_, err := NewTask("", "details")
	if !errors.Is(err, apperrors.ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestNewTask_TitleTooLong(t *testing.T) {
	_, err := NewTask(strings.Repeat("a", TitleMaxLen+1), "")
	if !errors.Is(err, apperrors.ErrTitleTooLong) {
		t.Errorf("expected ErrTitleTooLong, got %v", err)
	}

	if _, err := NewTask(strings.Repeat("a", TitleMaxLen), ""); err != nil {
		t.Errorf("title at the limit should be valid, got %v", err)
	}
}

func TestNewTask_DescriptionTooLong(t *testing.T) {
	_, err := NewTask("ok", strings.Repeat("d", DescriptionMaxLen+1))
	if !errors.Is(err, apperrors.ErrDescriptionTooLong) {
		t.Errorf("expected ErrDescriptionTooLong, got %v", err)
	}
}

func TestValidateTitle_CountsRunesNotBytes(t *testing.T) {
	title := strings.Repeat("ü", TitleMaxLen)
	if err := ValidateTitle(title); err != nil {
		t.Errorf("200 multibyte runes should be valid, got %v", err)
	}
}
