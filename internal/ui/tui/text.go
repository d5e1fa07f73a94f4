package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// truncateText shortens text to width terminal cells, ending in "...".
func truncateText(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(text) <= width {
		return text
	}
	if width <= 3 {
		return runewidth.Truncate(text, width, "")
	}
	return runewidth.Truncate(text, width, "...")
}

// formatDetail renders label followed by text wrapped to width, with
// continuation lines indented under the text.
func formatDetail(label, text string, width int) string {
	if width <= len(label) {
		return label + text
	}
	lines := strings.Split(wrapText(text, width-len(label)), "\n")

	var b strings.Builder
	for i, line := range lines {
		if i == 0 {
			b.WriteString(label)
			b.WriteString(line)
			continue
		}
		b.WriteString("\n")
		b.WriteString(strings.Repeat(" ", len(label)))
		b.WriteString(line)
	}
	return b.String()
}

func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	words := strings.Fields(text)
	if len(words) == 0 {
		return ""
	}

	var lines []string
	var line strings.Builder
	for _, word := range words {
		if line.Len() == 0 {
			line.WriteString(word)
			continue
		}
		if runewidth.StringWidth(line.String())+1+runewidth.StringWidth(word) > width {
			lines = append(lines, line.String())
			line.Reset()
			line.WriteString(word)
			continue
		}
		line.WriteByte(' ')
		line.WriteString(word)
	}
	if line.Len() > 0 {
		lines = append(lines, line.String())
	}
	return strings.Join(lines, "\n")
}
