package main

import (
	"fmt"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/tendhq/tend/internal/config"
	"github.com/tendhq/tend/internal/dates"
	"github.com/tendhq/tend/task"
)

// loadCollection resolves the task file (flag, then config, then default)
// and loads the collection stored there.
func loadCollection() (*task.Collection, *config.Config, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, nil, fmt.Errorf("get working directory: %w", err)
	}

	cfg, err := config.Load(cwd)
	if err != nil {
		return nil, nil, err
	}

	file := cfg.Tasks.File
	if rootTasksFile != "" {
		file = rootTasksFile
	}

	collection, err := task.Load(file)
	if err != nil {
		return nil, nil, err
	}
	return collection, cfg, nil
}

// parseTaskID parses a user-supplied task index. Negative or non-numeric
// input is rejected here, before the collection is consulted.
func parseTaskID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("invalid task id %q: must be a non-negative integer", arg)
	}
	if id < 0 {
		return 0, fmt.Errorf("invalid task id %d: must be non-negative", id)
	}
	return id, nil
}

// parseTaskIDs parses several indices, deduplicated and sorted ascending.
func parseTaskIDs(args []string) ([]int, error) {
	seen := make(map[int]bool, len(args))
	ids := make([]int, 0, len(args))
	for _, arg := range args {
		id, err := parseTaskID(arg)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}

// parseDateFlag parses an optional date flag value, nil when unset.
func parseDateFlag(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := dates.Parse(value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
