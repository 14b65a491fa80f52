package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tendhq/tend/internal/markdown"
	"github.com/tendhq/tend/internal/ui"
	"github.com/tendhq/tend/task"
)

const taskDetailLineWidth = 80

func runShow(cmd *cobra.Command, args []string) error {
	ids, err := parseTaskIDs(args)
	if err != nil {
		return err
	}

	collection, cfg, err := loadCollection()
	if err != nil {
		return err
	}

	now := time.Now()
	for i, id := range ids {
		if i > 0 {
			fmt.Println()
		}
		item, err := collection.Get(id)
		if err != nil {
			return err
		}
		fmt.Print(formatTaskDetail(id, item, cfg.Tasks.DateFormat, now))
	}

	return nil
}

// formatTaskDetail renders detailed information about a task. Missed
// deadlines and fired reminders are annotated; a fully completed subtask
// tree is summarized on the Subtasks header.
func formatTaskDetail(id int, t *task.Task, dateFormat string, now time.Time) string {
	var builder strings.Builder

	fmt.Fprintf(&builder, "ID:       %d\n", id)
	fmt.Fprintf(&builder, "Title:    %s\n", t.Title)
	fmt.Fprintf(&builder, "Status:   %s\n", ui.StatusLabel(t.Status))

	if len(t.Tags) > 0 {
		fmt.Fprintf(&builder, "Tags:     %s\n", strings.Join(t.Tags, ", "))
	}
	if t.When != nil {
		fmt.Fprintf(&builder, "When:     %s\n", t.When.Format(dateFormat))
	}
	if t.Deadline != nil {
		line := t.Deadline.Format(dateFormat)
		if t.Overdue(now) {
			line += " (overdue)"
		}
		fmt.Fprintf(&builder, "Deadline: %s\n", line)
	}
	if t.Reminder != nil {
		line := t.Reminder.Format(dateFormat)
		if t.ReminderDue(now) {
			line += " (due)"
		}
		fmt.Fprintf(&builder, "Reminder: %s\n", line)
	}

	if t.Notes != "" {
		fmt.Fprintf(&builder, "\nNotes:\n%s\n", markdown.Render(taskDetailLineWidth, 2, t.Notes))
	}

	if len(t.Subtasks) > 0 {
		header := "Subtasks:"
		if t.SubtreeComplete() {
			header = "Subtasks: all complete"
		}
		fmt.Fprintf(&builder, "\n%s\n%s", header, formatSubtaskTree(t.Subtasks, 1))
	}

	return builder.String()
}

// formatSubtaskTree renders nested subtasks, one per line, indented by depth.
func formatSubtaskTree(items []task.Task, depth int) string {
	var builder strings.Builder
	indent := strings.Repeat("  ", depth)
	for i := range items {
		builder.WriteString(indent)
		builder.WriteString(subtaskMarker(items[i].Status))
		builder.WriteByte(' ')
		builder.WriteString(items[i].Title)
		builder.WriteByte('\n')
		if len(items[i].Subtasks) > 0 {
			builder.WriteString(formatSubtaskTree(items[i].Subtasks, depth+1))
		}
	}
	return builder.String()
}

func subtaskMarker(status task.Status) string {
	switch status {
	case task.StatusComplete:
		return "[x]"
	case task.StatusActive:
		return "[>]"
	default:
		return "[ ]"
	}
}
