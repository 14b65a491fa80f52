package task

import (
	"errors"
	"fmt"
)

var (
	// ErrNoTasks is returned by Get and Clear when the collection is empty.
	// It takes precedence over ErrTaskNotFound.
	ErrNoTasks = errors.New("no tasks available")

	// ErrTaskNotFound is returned when an id is out of range for a
	// non-empty collection.
	ErrTaskNotFound = errors.New("task not found")

	// ErrEmptyTitle is returned by ValidateTitle for an empty title.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrTitleTooLong is returned when a title exceeds MaxTitleLength.
	ErrTitleTooLong = errors.New("title exceeds maximum length")

	// ErrInvalidStatus is returned when an unknown status is encountered.
	ErrInvalidStatus = errors.New("invalid status")
)

// ValidateTitle checks if the title is valid. New does not call this; input
// layers are expected to validate before constructing a task.
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if len(title) > MaxTitleLength {
		return fmt.Errorf("%w: %d > %d", ErrTitleTooLong, len(title), MaxTitleLength)
	}
	return nil
}

// ValidateTask checks a task and its subtasks recursively.
func ValidateTask(t *Task) error {
	if err := ValidateTitle(t.Title); err != nil {
		return err
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	for i := range t.Subtasks {
		if err := ValidateTask(&t.Subtasks[i]); err != nil {
			return err
		}
	}
	return nil
}
