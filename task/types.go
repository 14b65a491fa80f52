// Package task implements a personal task tracker.
//
// Tasks live in an ordered, index-addressed Collection that is loaded from
// and saved to a single JSON file. A task's status is derived once at
// construction and afterwards moved only by the explicit transition
// methods:
//   - Start, Stop, Complete for the status lifecycle
//   - Modify for patch-style field edits
//   - Push, Remove, Clear for collection membership
package task

// Status represents the state of a task.
type Status string

const (
	// StatusInbox indicates the task has been captured but not scheduled.
	StatusInbox Status = "inbox"

	// StatusPending indicates the task is scheduled for a specific date.
	StatusPending Status = "pending"

	// StatusActive indicates the task is currently being worked on.
	StatusActive Status = "active"

	// StatusComplete indicates the task is finished.
	StatusComplete Status = "complete"
)

// ValidStatuses returns all valid status values.
func ValidStatuses() []Status {
	return []Status{StatusInbox, StatusPending, StatusActive, StatusComplete}
}

// IsValid returns true if the status is a known valid value.
func (s Status) IsValid() bool {
	for _, valid := range ValidStatuses() {
		if s == valid {
			return true
		}
	}
	return false
}

// MaxTitleLength is the maximum allowed length for a task title.
const MaxTitleLength = 500
