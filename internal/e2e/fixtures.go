package e2e

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/klauern/rulegen/internal/util"
)

// Fixture writes source documents and reads generated files under one
// directory.
type Fixture struct {
	t       *testing.T
	baseDir string
}

// NewFixture returns a fixture rooted at baseDir.
func NewFixture(t *testing.T, baseDir string) *Fixture {
	t.Helper()
	return &Fixture{t: t, baseDir: baseDir}
}

// Section is one rule of a multi-section source document.
type Section struct {
	Name     string
	Metadata map[string]string
	Body     string
}

// Render returns the section as a frontmatter block, with name first and the
// other keys sorted, followed by its trimmed body.
func (s Section) Render() string {
	var sb strings.Builder
	sb.WriteString("---\n")
	sb.WriteString("name: " + s.Name + "\n")

	keys := make([]string, 0, len(s.Metadata))
	for k := range s.Metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		sb.WriteString(k + ": " + s.Metadata[k] + "\n")
	}

	sb.WriteString("---\n")
	sb.WriteString(strings.TrimSpace(s.Body) + "\n")
	return sb.String()
}

// WriteFile writes content to relPath and returns the full path.
func (f *Fixture) WriteFile(relPath, content string) string {
	f.t.Helper()
	path := f.Path(relPath)
	util.WriteFile(f.t, path, content)
	return path
}

// WriteRules writes a multi-section document made of sections, separated by
// blank lines.
func (f *Fixture) WriteRules(relPath string, sections ...Section) string {
	f.t.Helper()
	parts := make([]string, 0, len(sections))
	for _, s := range sections {
		parts = append(parts, s.Render())
	}
	return f.WriteFile(relPath, strings.Join(parts, "\n"))
}

// MkdirAll creates relPath, for example an empty target directory that
// detection should find.
func (f *Fixture) MkdirAll(relPath string) string {
	f.t.Helper()
	path := f.Path(relPath)
	if err := os.MkdirAll(path, 0o750); err != nil {
		f.t.Fatalf("failed to create directory %s: %v", path, err)
	}
	return path
}

// Path returns the full path for relPath.
func (f *Fixture) Path(relPath string) string {
	return filepath.Join(f.baseDir, relPath)
}

// ReadFile returns the content of a generated file.
func (f *Fixture) ReadFile(relPath string) string {
	f.t.Helper()
	return util.ReadFile(f.t, f.Path(relPath))
}

// Project returns a fixture rooted at the harness project directory.
func (h *Harness) Project() *Fixture {
	h.t.Helper()
	return NewFixture(h.t, h.projectDir)
}

// TempFixture returns a fixture over a fresh directory outside the project.
func (h *Harness) TempFixture() *Fixture {
	h.t.Helper()
	return NewFixture(h.t, h.t.TempDir())
}
