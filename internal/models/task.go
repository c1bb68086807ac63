package model

import (
	"time"
	"unicode/utf8"

	"task-tracker.com/task-tracker/internal/constants"
	apperrors "task-tracker.com/task-tracker/internal/errors"
)

const (
	TitleMaxLen       = 200
	DescriptionMaxLen = 1000
)

// Task is the tracked domain entity. ID is assigned by the repository on
// first insert and is immutable afterwards. CreatedAt/UpdatedAt carry
// explicit gorm overrides so the command layer stays the only writer of
// timestamps; without them gorm would re-stamp UpdatedAt on every save
// and break snapshot restoration.
type Task struct {
	ID          string               `gorm:"primaryKey;size:36" json:"id"`
	Title       string               `gorm:"not null" json:"title"`
	Description string               `json:"description,omitempty"`
	Status      constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt   time.Time            `gorm:"autoCreateTime:false" json:"created_at"`
	UpdatedAt   time.Time            `gorm:"autoUpdateTime:false" json:"updated_at"`
}

// NewTask validates the input and returns a pending task with both
// timestamps set to the same UTC instant. The ID is left empty.
func NewTask(title, description string) (*Task, error) {
	if err := ValidateTitle(title); err != nil {
		return nil, err
	}
	if err := ValidateDescription(description); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Task{
		Title:       title,
		Description: description,
		Status:      constants.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

func ValidateTitle(title string) error {
	if title == "" {
		return apperrors.ErrTitleRequired
	}
	if utf8.RuneCountInString(title) > TitleMaxLen {
		return apperrors.ErrTitleTooLong
	}
	return nil
}

func ValidateDescription(description string) error {
	if utf8.RuneCountInString(description) > DescriptionMaxLen {
		return apperrors.ErrDescriptionTooLong
	}
	return nil
}
