// Package prune deletes generated rule files and directories from a project.
package prune

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauern/rulegen/internal/logging"
)

// Entry is a path found by Plan.
type Entry struct {
	// Rel is the path relative to the project directory.
	Rel string
	// Path is the absolute or project-joined path.
	Path  string
	IsDir bool
}

// Plan returns the entries of targets that exist under dir. Targets must be
// relative and may not escape dir.
func Plan(dir string, targets []string) ([]Entry, error) {
	var entries []Entry
	seen := make(map[string]bool)
	for _, t := range targets {
		rel := filepath.Clean(filepath.FromSlash(strings.TrimSpace(t)))
		if rel == "." || rel == "" {
			continue
		}
		if filepath.IsAbs(rel) || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return nil, fmt.Errorf("refusing to prune %q outside %s", t, dir)
		}
		if seen[rel] {
			continue
		}
		seen[rel] = true

		path := filepath.Join(dir, rel)
		info, err := os.Lstat(path)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", path, err)
		}
		entries = append(entries, Entry{Rel: filepath.ToSlash(rel), Path: path, IsDir: info.IsDir()})
	}
	return entries, nil
}

// Run deletes every entry of Plan(dir, targets). With dryRun nothing is
// deleted. It returns the entries that were, or would have been, removed.
func Run(dir string, targets []string, dryRun bool) ([]Entry, error) {
	entries, err := Plan(dir, targets)
	if err != nil {
		return nil, err
	}
	if dryRun {
		logging.Info("prune dry run", logging.Path(dir), logging.Count(len(entries)))
		return entries, nil
	}

	for i, e := range entries {
		if err := os.RemoveAll(e.Path); err != nil {
			return entries[:i], fmt.Errorf("failed to remove %s: %w", e.Path, err)
		}
		logging.Debug("removed", logging.Path(e.Path))
	}
	logging.Info("pruned generated files", logging.Path(dir), logging.Count(len(entries)))
	return entries, nil
}
