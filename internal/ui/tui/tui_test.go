package tui

import "testing"

func TestTruncateText(t *testing.T) {
	tests := map[string]struct {
		text  string
		width int
		want  string
	}{
		"fits":       {".cursor/rules", 20, ".cursor/rules"},
		"ellipsis":   {".github/copilot-instructions.md", 12, ".github/c..."},
		"tiny width": {"AGENTS.md", 3, "AGE"},
		"zero width": {"AGENTS.md", 0, ""},
		"exact fit":  {"CLAUDE.md", 9, "CLAUDE.md"},
		"wide runes": {"规则文件规则文件", 7, "规则..."},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			if got := truncateText(tt.text, tt.width); got != tt.want {
				t.Errorf("truncateText(%q, %d) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapText(t *testing.T) {
	if got := wrapText("one two three", 7); got != "one two\nthree" {
		t.Errorf("wrapText() = %q", got)
	}
	if got := wrapText("  ", 10); got != "" {
		t.Errorf("wrapText() of blanks = %q", got)
	}
	if got := wrapText("keep as is", 0); got != "keep as is" {
		t.Errorf("wrapText() with zero width = %q", got)
	}
}

func TestFormatDetail(t *testing.T) {
	got := formatDetail("Name: ", "GitHub Copilot instructions", 20)
	want := "Name: GitHub Copilot\n      instructions"
	if got != want {
		t.Errorf("formatDetail() = %q, want %q", got, want)
	}

	if got := formatDetail("Name: ", "Cursor", 4); got != "Name: Cursor" {
		t.Errorf("formatDetail() with narrow width = %q", got)
	}
}
