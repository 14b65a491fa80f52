package task

import "time"

// Overdue reports whether the task has an unmet deadline: the deadline has
// passed and the task is not complete.
func (t *Task) Overdue(now time.Time) bool {
	if t.Deadline == nil || t.Status == StatusComplete {
		return false
	}
	return t.Deadline.Before(now)
}

// DueIn computes how long until the deadline and whether one exists.
// A negative duration means the deadline has passed.
func (t *Task) DueIn(now time.Time) (time.Duration, bool) {
	if t.Deadline == nil {
		return 0, false
	}
	return t.Deadline.Sub(now), true
}

// ReminderDue reports whether the task's reminder time has arrived.
func (t *Task) ReminderDue(now time.Time) bool {
	if t.Reminder == nil {
		return false
	}
	return !t.Reminder.After(now)
}
