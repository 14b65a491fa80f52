package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/tendhq/tend/internal/ui"
	"github.com/tendhq/tend/task"
	"gopkg.in/yaml.v3"
)

func runList(cmd *cobra.Command, args []string) error {
	collection, cfg, err := loadCollection()
	if err != nil {
		return err
	}

	items := collection.Tasks
	if listStatus != "" {
		status := task.Status(strings.ToLower(strings.TrimSpace(listStatus)))
		if !status.IsValid() {
			return fmt.Errorf("invalid status %q: must be one of %s", listStatus, validStatusList())
		}
		filtered := make([]task.Task, 0, len(items))
		for _, item := range items {
			if item.Status == status {
				filtered = append(filtered, item)
			}
		}
		items = filtered
	}

	switch {
	case listJSON && listYAML:
		return fmt.Errorf("--json and --yaml are mutually exclusive")
	case listJSON:
		return printTasksJSON(items)
	case listYAML:
		return printTasksYAML(items)
	default:
		printTaskTable(items, cfg.Tasks.DateFormat, time.Now())
		return nil
	}
}

func printTasksJSON(items []task.Task) error {
	if items == nil {
		items = []task.Task{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func printTasksYAML(items []task.Task) error {
	if items == nil {
		items = []task.Task{}
	}
	data, err := yaml.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// printTaskTable prints tasks in a table format.
func printTaskTable(items []task.Task, dateFormat string, now time.Time) {
	if len(items) == 0 {
		fmt.Println("No tasks found.")
		return
	}

	fmt.Print(formatTaskTable(items, dateFormat, now))
}

func formatTaskTable(items []task.Task, dateFormat string, now time.Time) string {
	builder := ui.NewTableBuilder([]string{"ID", "STATUS", "WHEN", "DUE", "TAGS", "TITLE"}, len(items))

	for i, item := range items {
		row := []string{
			strconv.Itoa(i),
			ui.StatusLabel(item.Status),
			ui.FormatDate(item.When, dateFormat),
			formatTaskDue(item, now),
			strings.Join(item.Tags, ","),
			ui.TruncateTableCell(item.Title),
		}
		builder.AddRow(row)
	}

	return builder.String()
}

// formatTaskDue renders the time remaining until the deadline, or "-".
// Missed deadlines are highlighted; a "!" marks a reminder that has fired.
func formatTaskDue(item task.Task, now time.Time) string {
	cell := "-"
	if due, ok := item.DueIn(now); ok {
		cell = ui.FormatDurationShort(due)
		if item.Overdue(now) {
			cell = ui.OverdueCell(cell)
		}
	}
	if item.ReminderDue(now) {
		cell += " !"
	}
	return cell
}

func validStatusList() string {
	valid := task.ValidStatuses()
	values := make([]string, 0, len(valid))
	for _, status := range valid {
		values = append(values, string(status))
	}
	return strings.Join(values, ", ")
}
