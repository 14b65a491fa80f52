package editor

import (
	"bytes"
	"fmt"
	"os"
	"strings"
	"text/template"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tendhq/tend/internal/dates"
	"github.com/tendhq/tend/task"
)

// TaskData represents the data used to render the TOML template.
type TaskData struct {
	// IsUpdate is true when editing an existing task.
	IsUpdate bool
	// Title is the task title.
	Title string
	// Tags are the task's tags.
	Tags []string
	// When, Deadline, and Reminder are pre-formatted date strings
	// (empty when unset).
	When     string
	Deadline string
	Reminder string
	// Notes is the free-text body below the frontmatter.
	Notes string
}

const editorDateLayout = "2006-01-02 15:04"

// DefaultCreateData returns TaskData for creating a new task.
func DefaultCreateData() TaskData {
	return TaskData{}
}

// DataFromTask creates TaskData from an existing task for editing.
func DataFromTask(t *task.Task) TaskData {
	return TaskData{
		IsUpdate: true,
		Title:    t.Title,
		Tags:     t.Tags,
		When:     formatOptionalDate(t.When),
		Deadline: formatOptionalDate(t.Deadline),
		Reminder: formatOptionalDate(t.Reminder),
		Notes:    t.Notes,
	}
}

func formatOptionalDate(value *time.Time) string {
	if value == nil {
		return ""
	}
	return value.Format(editorDateLayout)
}

var taskTemplate = template.Must(template.New("task").Parse(`title = {{ printf "%q" .Title }}
tags = [{{ range $i, $tag := .Tags }}{{ if $i }}, {{ end }}{{ printf "%q" $tag }}{{ end }}]
when = {{ printf "%q" .When }} # YYYY-MM-DD [HH:MM], empty for none
deadline = {{ printf "%q" .Deadline }}
reminder = {{ printf "%q" .Reminder }}
---
{{ .Notes }}
`))

// RenderTaskTOML renders the task data as a TOML string for editing.
func RenderTaskTOML(data TaskData) (string, error) {
	var buf bytes.Buffer
	if err := taskTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render template: %w", err)
	}
	return buf.String(), nil
}

// ParsedTask represents the parsed result from the TOML editor output.
// Date fields hold nil when their frontmatter value was empty.
type ParsedTask struct {
	Title    string
	Tags     []string
	When     *time.Time
	Deadline *time.Time
	Reminder *time.Time
	Notes    string
}

type taskFrontmatter struct {
	Title    string   `toml:"title"`
	Tags     []string `toml:"tags"`
	When     string   `toml:"when"`
	Deadline string   `toml:"deadline"`
	Reminder string   `toml:"reminder"`
}

// ParseTaskTOML parses the TOML content from the editor.
func ParseTaskTOML(content string) (*ParsedTask, error) {
	frontmatter, body := splitFrontmatter(content)

	var raw taskFrontmatter
	if _, err := toml.Decode(frontmatter, &raw); err != nil {
		return nil, fmt.Errorf("parse TOML: %w", err)
	}

	if err := task.ValidateTitle(strings.TrimSpace(raw.Title)); err != nil {
		return nil, err
	}

	parsed := ParsedTask{
		Title: strings.TrimSpace(raw.Title),
		Tags:  raw.Tags,
		Notes: strings.TrimLeft(body, "\n"),
	}
	parsed.Notes = strings.TrimRight(parsed.Notes, "\n")

	var err error
	if parsed.When, err = parseOptionalDate("when", raw.When); err != nil {
		return nil, err
	}
	if parsed.Deadline, err = parseOptionalDate("deadline", raw.Deadline); err != nil {
		return nil, err
	}
	if parsed.Reminder, err = parseOptionalDate("reminder", raw.Reminder); err != nil {
		return nil, err
	}

	return &parsed, nil
}

func parseOptionalDate(field, value string) (*time.Time, error) {
	if strings.TrimSpace(value) == "" {
		return nil, nil
	}
	parsed, err := dates.Parse(value)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", field, err)
	}
	return &parsed, nil
}

func splitFrontmatter(content string) (string, string) {
	content = strings.TrimLeft(content, "\n")
	if content == "" {
		return "", ""
	}

	lines := strings.Split(content, "\n")
	separatorIndex := -1
	for i, line := range lines {
		if strings.TrimSpace(line) == "---" {
			separatorIndex = i
			break
		}
	}
	if separatorIndex == -1 {
		return content, ""
	}

	frontmatter := strings.Join(lines[:separatorIndex], "\n")
	body := strings.Join(lines[separatorIndex+1:], "\n")
	return frontmatter, body
}

// EditTask opens the editor for a task and returns the parsed result.
// For create: pass nil for existing.
func EditTask(existing *task.Task) (*ParsedTask, error) {
	var data TaskData
	if existing == nil {
		data = DefaultCreateData()
	} else {
		data = DataFromTask(existing)
	}
	return EditTaskWithData(data)
}

// EditTaskWithData opens the editor with pre-populated data and returns the parsed result.
func EditTaskWithData(data TaskData) (*ParsedTask, error) {
	content, err := RenderTaskTOML(data)
	if err != nil {
		return nil, err
	}

	tmpfile, err := os.CreateTemp("", "tend-task-*.md")
	if err != nil {
		return nil, fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmpfile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpfile.WriteString(content); err != nil {
		tmpfile.Close()
		return nil, fmt.Errorf("write temp file: %w", err)
	}
	if err := tmpfile.Close(); err != nil {
		return nil, fmt.Errorf("close temp file: %w", err)
	}

	if err := Edit(tmpPath); err != nil {
		return nil, err
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("read edited file: %w", err)
	}

	return ParseTaskTOML(string(edited))
}

// ToOptions converts a ParsedTask to task.Options for creation.
func (p *ParsedTask) ToOptions() task.Options {
	return task.Options{
		Notes:    p.Notes,
		Tags:     p.Tags,
		When:     p.When,
		Deadline: p.Deadline,
		Reminder: p.Reminder,
	}
}

// ToModifyOptions converts a ParsedTask to task.ModifyOptions. Every field
// the editor surfaced is applied; date fields left empty are unchanged.
func (p *ParsedTask) ToModifyOptions() task.ModifyOptions {
	opts := task.ModifyOptions{
		Title: &p.Title,
		Notes: &p.Notes,
	}
	if p.Tags != nil {
		opts.Tags = p.Tags
	}
	opts.When = p.When
	opts.Deadline = p.Deadline
	opts.Reminder = p.Reminder
	return opts
}
