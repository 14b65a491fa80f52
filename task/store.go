package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
)

// Load reads the collection stored at path. A missing file is not an
// error: it yields an empty collection bound to path, indistinguishable
// from one that was cleared.
func Load(path string) (*Collection, error) {
	var data []byte
	err := withFileLock(path, func() error {
		var readErr error
		data, readErr = os.ReadFile(path)
		return readErr
	})
	if errors.Is(err, os.ErrNotExist) {
		return NewCollection(path), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}

	collection := NewCollection(path)
	if len(data) == 0 {
		return collection, nil
	}
	if err := json.Unmarshal(data, collection); err != nil {
		return nil, fmt.Errorf("parse task file %s: %w", path, err)
	}

	// The file records its own path; the location it was read from wins.
	collection.Path = path
	return collection, nil
}

// Save writes the collection to its path, replacing any existing file
// atomically.
func (c *Collection) Save() error {
	if c.Path == "" {
		return fmt.Errorf("collection has no path")
	}

	for i := range c.Tasks {
		if err := ValidateTask(&c.Tasks[i]); err != nil {
			return fmt.Errorf("validate task %d: %w", i, err)
		}
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("encode tasks: %w", err)
	}
	data = append(data, '\n')

	return withFileLock(c.Path, func() error {
		return writeFileAtomic(c.Path, data)
	})
}

// withFileLock executes fn while holding an exclusive lock on the lock
// file next to path. The lock file is separate so atomic renames of the
// data file don't release the lock mid-operation.
func withFileLock(path string, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create parent dir: %w", err)
	}

	lock, err := os.OpenFile(path+".lock", os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer lock.Close()

	if err := syscall.Flock(int(lock.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)

	return fn()
}

// writeFileAtomic writes data to a temp file and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}
