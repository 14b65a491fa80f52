// Package paths resolves the default locations tend stores its data.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultTasksFile returns the default location of the task file.
func DefaultTasksFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".local", "share", "tend", "tasks.json"), nil
}

// GlobalConfigFile returns the location of the global config file.
func GlobalConfigFile() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	return filepath.Join(home, ".config", "tend", "config.toml"), nil
}
