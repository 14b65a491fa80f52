// Package editor implements the interactive editor workflow tend uses to
// capture and update tasks.
package editor

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"golang.org/x/term"
)

// IsInteractive reports whether stdin is attached to a terminal. Commands
// fall back to flag-only input when it is not.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// resolveEditor picks the editor command: $VISUAL, then $EDITOR, then vi.
func resolveEditor() string {
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	return "vi"
}

// Edit opens path in the user's editor and blocks until it exits. A
// non-zero exit aborts the edit rather than applying a half-written task.
func Edit(path string) error {
	cmd := exec.Command(resolveEditor(), path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("run editor: %w", err)
	}

	return nil
}
