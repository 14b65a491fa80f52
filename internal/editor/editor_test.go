package editor

import "testing"

func TestResolveEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	if got := resolveEditor(); got != "vi" {
		t.Errorf("expected fallback 'vi', got %q", got)
	}

	t.Setenv("EDITOR", "nano")
	if got := resolveEditor(); got != "nano" {
		t.Errorf("expected $EDITOR 'nano', got %q", got)
	}

	// $VISUAL takes precedence over $EDITOR.
	t.Setenv("VISUAL", "emacsclient")
	if got := resolveEditor(); got != "emacsclient" {
		t.Errorf("expected $VISUAL to win, got %q", got)
	}
}
