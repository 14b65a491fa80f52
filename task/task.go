package task

import "time"

// Task represents a single tracked task.
type Task struct {
	// Title is the short summary of the task.
	Title string `json:"title" yaml:"title"`

	// Status is the current state of the task.
	//
	// The field is exported so the store can round-trip it; Start, Stop,
	// and Complete are the canonical way to move it.
	Status Status `json:"status" yaml:"status"`

	// Notes provides additional free-text context.
	Notes string `json:"notes,omitempty" yaml:"notes,omitempty"`

	// Tags are organizational labels, kept in the order they were given.
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`

	// Subtasks are nested tasks owned exclusively by this task.
	Subtasks []Task `json:"subtasks,omitempty" yaml:"subtasks,omitempty"`

	// When is the date the task is intended to be done (nil if unscheduled).
	When *time.Time `json:"when,omitempty" yaml:"when,omitempty"`

	// Deadline is the latest acceptable completion time (nil if none).
	Deadline *time.Time `json:"deadline,omitempty" yaml:"deadline,omitempty"`

	// Reminder is when an alert should fire (nil if none).
	Reminder *time.Time `json:"reminder,omitempty" yaml:"reminder,omitempty"`
}

// Options configures the optional fields of a new task.
type Options struct {
	Notes    string
	Tags     []string
	When     *time.Time
	Deadline *time.Time
	Reminder *time.Time
}

// New creates a task with the given title.
//
// Status is derived exactly once here: pending when a When date is set,
// inbox otherwise. Later edits to When do not re-derive it.
func New(title string, opts Options) Task {
	status := StatusInbox
	if opts.When != nil {
		status = StatusPending
	}

	return Task{
		Title:    title,
		Status:   status,
		Notes:    opts.Notes,
		Tags:     opts.Tags,
		When:     opts.When,
		Deadline: opts.Deadline,
		Reminder: opts.Reminder,
	}
}

// ModifyOptions configures fields to change on a task.
// Nil pointers and nil slices mean "don't change this field"; there is no
// way to clear a field back to empty through Modify.
type ModifyOptions struct {
	Title    *string
	Notes    *string
	Tags     []string
	When     *time.Time
	Deadline *time.Time
	Reminder *time.Time
}

// Modify applies a patch to the task. Fields left nil are untouched.
// Status is never affected.
func (t *Task) Modify(opts ModifyOptions) {
	if opts.Title != nil {
		t.Title = *opts.Title
	}
	if opts.Notes != nil {
		t.Notes = *opts.Notes
	}
	if opts.Tags != nil {
		t.Tags = opts.Tags
	}
	if opts.When != nil {
		t.When = opts.When
	}
	if opts.Deadline != nil {
		t.Deadline = opts.Deadline
	}
	if opts.Reminder != nil {
		t.Reminder = opts.Reminder
	}
}

// Start marks the task active. It is legal from any status, including
// complete: starting a completed task reactivates it.
func (t *Task) Start() {
	t.Status = StatusActive
}

// Stop moves the task out of the active state: back to pending when a When
// date is set, otherwise back to the inbox. Legal from any status.
func (t *Task) Stop() {
	if t.When != nil {
		t.Status = StatusPending
	} else {
		t.Status = StatusInbox
	}
}

// Complete marks the task complete. Idempotent.
func (t *Task) Complete() {
	t.Status = StatusComplete
}

// AddSubtask appends a subtask, preserving insertion order.
func (t *Task) AddSubtask(sub Task) {
	t.Subtasks = append(t.Subtasks, sub)
}

// SubtreeComplete reports whether the task and every task nested under it
// is complete.
func (t *Task) SubtreeComplete() bool {
	if t.Status != StatusComplete {
		return false
	}
	for i := range t.Subtasks {
		if !t.Subtasks[i].SubtreeComplete() {
			return false
		}
	}
	return true
}
