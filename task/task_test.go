package task

import (
	"testing"
	"time"
)

func timePtr(t time.Time) *time.Time {
	return &t
}

func TestNew_DerivesInboxWithoutWhen(t *testing.T) {
	created := New("Buy milk", Options{})

	if created.Title != "Buy milk" {
		t.Errorf("expected title 'Buy milk', got %q", created.Title)
	}
	if created.Status != StatusInbox {
		t.Errorf("expected status 'inbox', got %q", created.Status)
	}
	if created.When != nil || created.Deadline != nil || created.Reminder != nil {
		t.Errorf("expected no scheduling fields, got %+v", created)
	}
}

func TestNew_DerivesPendingWithWhen(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	created := New("File taxes", Options{When: timePtr(when)})

	if created.Status != StatusPending {
		t.Errorf("expected status 'pending', got %q", created.Status)
	}
	if created.When == nil || !created.When.Equal(when) {
		t.Errorf("expected when %v, got %v", when, created.When)
	}
}

func TestNew_SetsOptionalFields(t *testing.T) {
	deadline := time.Date(2026, 3, 15, 17, 0, 0, 0, time.UTC)
	created := New("Write report", Options{
		Notes:    "quarterly numbers",
		Tags:     []string{"work", "urgent"},
		Deadline: timePtr(deadline),
	})

	if created.Notes != "quarterly numbers" {
		t.Errorf("expected notes 'quarterly numbers', got %q", created.Notes)
	}
	if len(created.Tags) != 2 || created.Tags[0] != "work" || created.Tags[1] != "urgent" {
		t.Errorf("expected tags [work urgent], got %v", created.Tags)
	}
	if created.Deadline == nil || !created.Deadline.Equal(deadline) {
		t.Errorf("expected deadline %v, got %v", deadline, created.Deadline)
	}
	// Deadline alone does not schedule the task.
	if created.Status != StatusInbox {
		t.Errorf("expected status 'inbox', got %q", created.Status)
	}
}

func TestModify_AllNilIsNoOp(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	item := New("Original", Options{Notes: "keep", Tags: []string{"a"}, When: timePtr(when)})
	before := item

	item.Modify(ModifyOptions{})

	if item.Title != before.Title || item.Notes != before.Notes || item.Status != before.Status {
		t.Errorf("expected no changes, got %+v", item)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "a" {
		t.Errorf("expected tags unchanged, got %v", item.Tags)
	}
	if item.When == nil || !item.When.Equal(when) {
		t.Errorf("expected when unchanged, got %v", item.When)
	}
}

func TestModify_TitleOnly(t *testing.T) {
	item := New("Original", Options{Notes: "keep", Tags: []string{"a"}})

	title := "Renamed"
	item.Modify(ModifyOptions{Title: &title})

	if item.Title != "Renamed" {
		t.Errorf("expected title 'Renamed', got %q", item.Title)
	}
	if item.Notes != "keep" {
		t.Errorf("expected notes untouched, got %q", item.Notes)
	}
	if len(item.Tags) != 1 || item.Tags[0] != "a" {
		t.Errorf("expected tags untouched, got %v", item.Tags)
	}
	if item.Status != StatusInbox {
		t.Errorf("expected status untouched, got %q", item.Status)
	}
}

func TestModify_WhenDoesNotRederiveStatus(t *testing.T) {
	item := New("Unscheduled", Options{})
	if item.Status != StatusInbox {
		t.Fatalf("expected status 'inbox', got %q", item.Status)
	}

	when := time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC)
	item.Modify(ModifyOptions{When: timePtr(when)})

	// Status derivation happens only at construction.
	if item.Status != StatusInbox {
		t.Errorf("expected status still 'inbox', got %q", item.Status)
	}
}

func TestStart_FromAnyStatus(t *testing.T) {
	for _, initial := range ValidStatuses() {
		item := New("t", Options{})
		item.Status = initial
		item.Start()
		if item.Status != StatusActive {
			t.Errorf("start from %q: expected 'active', got %q", initial, item.Status)
		}
	}
}

func TestStop_PendingWithWhen(t *testing.T) {
	when := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	item := New("Scheduled", Options{When: timePtr(when)})

	item.Start()
	item.Stop()

	if item.Status != StatusPending {
		t.Errorf("expected status 'pending', got %q", item.Status)
	}
}

func TestStop_InboxWithoutWhen(t *testing.T) {
	item := New("Unscheduled", Options{})

	item.Start()
	item.Stop()

	if item.Status != StatusInbox {
		t.Errorf("expected status 'inbox', got %q", item.Status)
	}
}

func TestComplete_Idempotent(t *testing.T) {
	item := New("t", Options{})

	item.Complete()
	item.Complete()

	if item.Status != StatusComplete {
		t.Errorf("expected status 'complete', got %q", item.Status)
	}
}

func TestStart_ReactivatesCompleteTask(t *testing.T) {
	item := New("t", Options{})
	item.Complete()

	item.Start()

	if item.Status != StatusActive {
		t.Errorf("expected status 'active', got %q", item.Status)
	}
}

func TestTransitionCycle(t *testing.T) {
	item := New("t", Options{})

	item.Start()
	item.Stop()
	if item.Status != StatusInbox {
		t.Fatalf("expected 'inbox' after stop, got %q", item.Status)
	}

	item.Start()
	item.Complete()
	if item.Status != StatusComplete {
		t.Fatalf("expected 'complete', got %q", item.Status)
	}
}

func TestAddSubtask(t *testing.T) {
	parent := New("Plan trip", Options{})
	parent.AddSubtask(New("Book flights", Options{}))
	parent.AddSubtask(New("Book hotel", Options{}))

	if len(parent.Subtasks) != 2 {
		t.Fatalf("expected 2 subtasks, got %d", len(parent.Subtasks))
	}
	if parent.Subtasks[0].Title != "Book flights" {
		t.Errorf("expected first subtask 'Book flights', got %q", parent.Subtasks[0].Title)
	}
}

func TestSubtreeComplete(t *testing.T) {
	parent := New("Plan trip", Options{})
	child := New("Book flights", Options{})
	grandchild := New("Pick seats", Options{})
	child.AddSubtask(grandchild)
	parent.AddSubtask(child)

	if parent.SubtreeComplete() {
		t.Fatal("expected incomplete subtree")
	}

	parent.Complete()
	parent.Subtasks[0].Complete()
	if parent.SubtreeComplete() {
		t.Fatal("expected incomplete subtree while grandchild is open")
	}

	parent.Subtasks[0].Subtasks[0].Complete()
	if !parent.SubtreeComplete() {
		t.Fatal("expected complete subtree")
	}
}
