package strings

import "testing"

func TestNormalizeWhitespace(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"only spaces", "   ", ""},
		{"collapses runs", "a  b\t\tc", "a b c"},
		{"trims ends", "  a b  ", "a b"},
		{"newlines collapse", "a\nb", "a b"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeWhitespace(tt.input); got != tt.want {
				t.Errorf("NormalizeWhitespace(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestNormalizeNewlines(t *testing.T) {
	if got := NormalizeNewlines("a\r\nb\rc\n"); got != "a\nb\nc\n" {
		t.Errorf("NormalizeNewlines = %q", got)
	}
	if got := NormalizeNewlines(""); got != "" {
		t.Errorf("NormalizeNewlines(\"\") = %q", got)
	}
}

func TestTrimTrailingNewlines(t *testing.T) {
	if got := TrimTrailingNewlines("a\n\r\n"); got != "a" {
		t.Errorf("TrimTrailingNewlines = %q", got)
	}
}
