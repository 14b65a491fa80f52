package markdown

import (
	"strings"
	"testing"
)

func TestRender_Empty(t *testing.T) {
	if got := Render(80, 0, ""); got != "" {
		t.Errorf("expected empty render, got %q", got)
	}
	if got := Render(80, 0, "   \n  "); got != "" {
		t.Errorf("expected empty render for whitespace, got %q", got)
	}
}

func TestRender_PlainText(t *testing.T) {
	got := Render(80, 0, "buy semi-skimmed")
	if !strings.Contains(got, "buy semi-skimmed") {
		t.Errorf("expected rendered text to contain input, got %q", got)
	}
}

func TestRender_Indents(t *testing.T) {
	got := Render(80, 4, "note")
	for _, line := range strings.Split(got, "\n") {
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "    ") {
			t.Errorf("expected 4-space indent, got line %q", line)
		}
	}
}

func TestRender_ListItems(t *testing.T) {
	got := Render(80, 0, "- one\n- two")
	if !strings.Contains(got, "one") || !strings.Contains(got, "two") {
		t.Errorf("expected list items rendered, got %q", got)
	}
}
