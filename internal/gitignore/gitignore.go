// Package gitignore maintains a block of generated paths inside a .gitignore
// file. Lines outside the block are left untouched.
package gitignore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/rulegen/internal/logging"
)

// FileName is the ignore file name.
const FileName = ".gitignore"

// Block markers.
const (
	BeginMarker = "# BEGIN rulegen (generated AI assistant rules)"
	EndMarker   = "# END rulegen"
)

// Render returns the managed block for patterns, without a trailing newline.
func Render(patterns []string) string {
	lines := []string{BeginMarker}
	seen := make(map[string]bool)
	for _, p := range patterns {
		p = strings.TrimSpace(p)
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		lines = append(lines, p)
	}
	lines = append(lines, EndMarker)
	return strings.Join(lines, "\n")
}

// Apply returns content with the managed block replaced by one listing
// patterns, appending the block when content has none.
func Apply(content string, patterns []string) string {
	outside, _ := split(content)
	block := Render(patterns)
	if strings.TrimSpace(outside) == "" {
		return block + "\n"
	}
	return strings.TrimRight(outside, "\n") + "\n\n" + block + "\n"
}

// Strip returns content without the managed block.
func Strip(content string) string {
	outside, found := split(content)
	if !found {
		return content
	}
	outside = strings.TrimRight(outside, "\n")
	if outside == "" {
		return ""
	}
	return outside + "\n"
}

// split removes the managed block, returning the remaining text and whether a
// block was present. An unterminated block runs to the end of the file.
func split(content string) (string, bool) {
	lines := strings.Split(content, "\n")
	var kept []string
	inBlock, found := false, false
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == BeginMarker:
			inBlock, found = true, true
		case inBlock && trimmed == EndMarker:
			inBlock = false
		case !inBlock:
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n"), found
}

// Update writes the managed block for patterns into dir/.gitignore. It reports
// whether the file changed.
func Update(dir string, patterns []string) (bool, error) {
	path := filepath.Join(dir, FileName)
	// #nosec G304 - path is the project's .gitignore
	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	updated := Apply(string(data), patterns)
	if updated == string(data) {
		logging.Debug("gitignore up to date", logging.Path(path))
		return false, nil
	}

	// #nosec G306 - .gitignore is committed with the project
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	logging.Info("updated gitignore", logging.Path(path), logging.Count(len(patterns)))
	return true, nil
}

// Remove deletes the managed block from dir/.gitignore. It reports whether the
// file changed.
func Remove(dir string) (bool, error) {
	path := filepath.Join(dir, FileName)
	// #nosec G304 - path is the project's .gitignore
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", path, err)
	}

	stripped := Strip(string(data))
	if stripped == string(data) {
		return false, nil
	}
	// #nosec G306 - .gitignore is committed with the project
	if err := os.WriteFile(path, []byte(stripped), 0o644); err != nil {
		return false, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return true, nil
}
