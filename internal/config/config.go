// Package config handles loading tend.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tendhq/tend/internal/paths"
)

// DefaultDateFormat is the display layout used when no config sets one.
const DefaultDateFormat = "2006-01-02 15:04"

// Config represents the tend.toml configuration file.
type Config struct {
	Tasks Tasks `toml:"tasks"`
}

// Tasks contains task-file related configuration.
type Tasks struct {
	// File is the path of the task file. Relative paths are resolved
	// against the directory of the config file that set them.
	File string `toml:"file"`

	// DateFormat is the Go time layout used to display dates.
	DateFormat string `toml:"date-format"`
}

// Load loads configuration from the working directory and the global
// config file. Project values win over global ones. Returns defaults if
// no config files exist.
func Load(dir string) (*Config, error) {
	globalPath, err := paths.GlobalConfigFile()
	if err != nil {
		return nil, err
	}

	globalCfg, globalMeta, err := loadConfigFile(globalPath)
	if err != nil {
		return nil, err
	}
	resolveFile(globalCfg, filepath.Dir(globalPath))

	projectPath := filepath.Join(dir, "tend.toml")
	projectCfg, projectMeta, err := loadConfigFile(projectPath)
	if err != nil {
		return nil, err
	}
	resolveFile(projectCfg, dir)

	merged := mergeConfigs(globalCfg, projectCfg, globalMeta, projectMeta)

	if merged.Tasks.DateFormat == "" {
		merged.Tasks.DateFormat = DefaultDateFormat
	}
	if merged.Tasks.File == "" {
		file, err := paths.DefaultTasksFile()
		if err != nil {
			return nil, err
		}
		merged.Tasks.File = file
	}

	return merged, nil
}

func loadConfigFile(path string) (*Config, toml.MetaData, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, toml.MetaData{}, nil
	}
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	meta, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, toml.MetaData{}, fmt.Errorf("parse config file %s: %w", path, err)
	}

	return &cfg, meta, nil
}

func resolveFile(cfg *Config, base string) {
	file := strings.TrimSpace(cfg.Tasks.File)
	if file == "" || filepath.IsAbs(file) {
		cfg.Tasks.File = file
		return
	}
	cfg.Tasks.File = filepath.Join(base, file)
}

func mergeConfigs(globalCfg, projectCfg *Config, globalMeta, projectMeta toml.MetaData) *Config {
	merged := Config{}
	merged.Tasks.File = mergeString(projectMeta.IsDefined("tasks", "file"), projectCfg.Tasks.File, globalCfg.Tasks.File)
	merged.Tasks.DateFormat = mergeString(projectMeta.IsDefined("tasks", "date-format"), projectCfg.Tasks.DateFormat, globalCfg.Tasks.DateFormat)
	return &merged
}

func mergeString(projectDefined bool, projectValue, globalValue string) string {
	value := globalValue
	if projectDefined {
		value = projectValue
	}
	return strings.TrimSpace(value)
}
