package audit

import (
	"context"
	"testing"
)

func TestMemoryLog_AppendOnlyOrder(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	steps := []struct {
		action  Action
		details string
	}{
		{ActionCreate, "Task 'Buy milk' created"},
		{ActionComplete, "Task 'Buy milk' marked completed"},
		{ActionComplete.Undone(), "Undid: Task 'Buy milk' marked completed"},
		{ActionDelete, "Task 'Buy milk' deleted"},
	}

	for _, step := range steps {
		if err := log.Record(ctx, step.action, step.details); err != nil {
			t.Fatalf("record failed: %v", err)
		}
	}

	history, err := log.History(ctx)
	if err != nil {
		t.Fatalf("history failed: %v", err)
	}
	if len(history) != len(steps) {
		t.Fatalf("expected %d entries, got %d", len(steps), len(history))
	}

	for i, step := range steps {
		if history[i].Action != step.action {
			t.Errorf("entry %d: expected action %s, got %s", i, step.action, history[i].Action)
		}
		if history[i].Details != step.details {
			t.Errorf("entry %d: expected details %q, got %q", i, step.details, history[i].Details)
		}
		if history[i].Timestamp.IsZero() {
			t.Errorf("entry %d: expected a timestamp", i)
		}
	}

	for i := 1; i < len(history); i++ {
		if history[i].Timestamp.Before(history[i-1].Timestamp) {
			t.Error("entries out of chronological order")
		}
	}
}

func TestMemoryLog_HistoryReturnsCopy(t *testing.T) {
	log := NewMemoryLog()
	ctx := context.Background()

	_ = log.Record(ctx, ActionCreate, "original")

	first, _ := log.History(ctx)
	first[0].Details = "tampered"

	second, _ := log.History(ctx)
	if second[0].Details != "original" {
		t.Error("log was mutated through a returned history slice")
	}
}

func TestAction_Undone(t *testing.T) {
	if got := ActionDelete.Undone(); got != Action("UNDO_DELETE") {
		t.Errorf("expected UNDO_DELETE, got %s", got)
	}
}
