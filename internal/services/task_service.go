package services

import (
	"context"
	"log"

	"task-tracker.com/task-tracker/internal/audit"
	"task-tracker.com/task-tracker/internal/commands"
	apperrors "task-tracker.com/task-tracker/internal/errors"
	model "task-tracker.com/task-tracker/internal/models"
	repository "task-tracker.com/task-tracker/internal/repositories"
)

// TaskService is the composition root: it builds commands, runs them
// through the invoker, and records every committed execute/undo in the
// audit log. It is the only writer of the audit trail.
type TaskService struct {
	repo     repository.TaskRepository
	invoker  *commands.Invoker
	auditLog audit.Log
}

func NewTaskService(
	repo repository.TaskRepository,
	invoker *commands.Invoker,
	auditLog audit.Log,
) *TaskService {
	return &TaskService{
		repo:     repo,
		invoker:  invoker,
		auditLog: auditLog,
	}
}

func (s *TaskService) CreateTask(ctx context.Context, title, description string) (*model.Task, error) {
	task, err := model.NewTask(title, description)
	if err != nil {
		return nil, err
	}

	cmd := commands.NewCreateCommand(s.repo, task)
	if err := s.invoker.Execute(ctx, cmd); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, cmd.Action(), cmd.Description())
	return cmd.Result(), nil
}

// UpdateTask changes the given fields; a nil field is left as is.
func (s *TaskService) UpdateTask(ctx context.Context, id string, title, description *string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	if title != nil {
		if err := model.ValidateTitle(*title); err != nil {
			return nil, err
		}
	}
	if description != nil {
		if err := model.ValidateDescription(*description); err != nil {
			return nil, err
		}
	}

	cmd := commands.NewUpdateCommand(s.repo, id, title, description)
	if err := s.invoker.Execute(ctx, cmd); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, cmd.Action(), cmd.Description())
	return cmd.Result(), nil
}

func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	if id == "" {
		return apperrors.ErrTaskIDRequired
	}

	cmd := commands.NewDeleteCommand(s.repo, id)
	if err := s.invoker.Execute(ctx, cmd); err != nil {
		return err
	}

	s.recordAudit(ctx, cmd.Action(), cmd.Description())
	return nil
}

func (s *TaskService) ToggleComplete(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}

	cmd := commands.NewToggleCompleteCommand(s.repo, id)
	if err := s.invoker.Execute(ctx, cmd); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, cmd.Action(), cmd.Description())
	return cmd.Result(), nil
}

func (s *TaskService) GetTask(ctx context.Context, id string) (*model.Task, error) {
	if id == "" {
		return nil, apperrors.ErrTaskIDRequired
	}
	return s.repo.Get(ctx, id)
}

func (s *TaskService) ListTasks(ctx context.Context) ([]model.Task, error) {
	return s.repo.GetAll(ctx)
}

// Undo reverses the most recent command. The boolean reports whether
// anything was there to undo; callers surface the false case as
// "Nothing to undo" rather than an error.
func (s *TaskService) Undo(ctx context.Context) (string, bool, error) {
	cmd, ok, err := s.invoker.Undo(ctx)
	if !ok {
		return "", false, nil
	}
	if err != nil {
		return "", true, err
	}

	s.recordAudit(ctx, cmd.Action().Undone(), "Undid: "+cmd.Description())
	return cmd.Description(), true, nil
}

func (s *TaskService) CanUndo() bool {
	return s.invoker.CanUndo()
}

// UndoHistory lists what is currently reachable via Undo, oldest first.
func (s *TaskService) UndoHistory() []string {
	return s.invoker.History()
}

// AuditHistory returns the session's full audit trail in insertion order.
func (s *TaskService) AuditHistory(ctx context.Context) ([]audit.Entry, error) {
	return s.auditLog.History(ctx)
}

func (s *TaskService) recordAudit(ctx context.Context, action audit.Action, details string) {
	if err := s.auditLog.Record(ctx, action, details); err != nil {
		log.Printf("audit: failed to record %s entry: %v", action, err)
	}
}
