package formatter

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/rulegen/internal/model"
)

func TestWriteRuleForceGuard(t *testing.T) {
	dir := t.TempDir()
	f := NewCline()
	rule := model.Rule{Name: "Go Style", Content: "Use gofmt."}

	first := f.Generate(rule, &model.GenerationContext{OutputDir: dir})
	require.True(t, first.Success, "first write failed: %v", first.Error)
	assert.Equal(t, filepath.Join(dir, ".clinerules", "go-style.md"), first.FilePath)
	assert.Equal(t, "cline", first.FormatID)
	assert.Equal(t, "Go Style", first.RuleName)
	assert.Equal(t, len("Use gofmt.\n"), first.Bytes)

	blocked := f.Generate(model.Rule{Name: "Go Style", Content: "changed"}, &model.GenerationContext{OutputDir: dir})
	assert.False(t, blocked.Success)
	require.Error(t, blocked.Error)
	assert.Contains(t, blocked.Error.Error(), "already exists")
	assert.True(t, errors.Is(blocked.Error, ErrExists))

	data, err := os.ReadFile(first.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "Use gofmt.\n", string(data), "file must be untouched without force")

	forced := f.Generate(model.Rule{Name: "Go Style", Content: "changed"}, &model.GenerationContext{OutputDir: dir, Force: true})
	require.True(t, forced.Success, "forced write failed: %v", forced.Error)
	data, err = os.ReadFile(first.FilePath)
	require.NoError(t, err)
	assert.Equal(t, "changed\n", string(data))
}

func TestWriteRuleReportsIOErrors(t *testing.T) {
	dir := t.TempDir()
	// A file where a directory is expected makes MkdirAll fail.
	blocker := filepath.Join(dir, ".clinerules")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0o600))

	res := NewCline().Generate(model.Rule{Name: "a", Content: "b"}, &model.GenerationContext{OutputDir: dir})
	assert.False(t, res.Success)
	assert.Error(t, res.Error)
	assert.False(t, errors.Is(res.Error, ErrExists))
}

func TestRootAndMemoryExclusivity(t *testing.T) {
	reg := NewRegistry()
	roots := reg.ByCategory(model.CategoryRootFile)
	memories := reg.ByCategory(model.CategoryMemory)
	require.NotEmpty(t, roots)
	require.NotEmpty(t, memories)

	rootRule := model.Rule{Name: "default", Content: "x", IsRoot: true}
	other := model.Rule{Name: "react", Content: "x"}

	for _, f := range roots {
		assert.True(t, f.IsRuleCompatible(rootRule), "%s should accept root rule", f.Spec().ID)
		assert.False(t, f.IsRuleCompatible(other), "%s should reject non-root rule", f.Spec().ID)
	}
	for _, f := range memories {
		assert.False(t, f.IsRuleCompatible(rootRule), "%s should reject root rule", f.Spec().ID)
		assert.True(t, f.IsRuleCompatible(other), "%s should accept non-root rule", f.Spec().ID)
	}
	for _, f := range reg.ByCategory(model.CategoryDirectory) {
		assert.True(t, f.IsRuleCompatible(rootRule), "%s should accept every rule", f.Spec().ID)
		assert.True(t, f.IsRuleCompatible(other), "%s should accept every rule", f.Spec().ID)
	}
}

func TestOutputPaths(t *testing.T) {
	gctx := &model.GenerationContext{OutputDir: "/out"}
	rule := model.Rule{Name: "NextJs Prompt", Content: "x"}

	tests := map[string]string{
		"cursor":         "/out/.cursor/rules/next-js-prompt.mdc",
		"windsurf":       "/out/.windsurf/rules/next-js-prompt.md",
		"cline":          "/out/.clinerules/next-js-prompt.md",
		"copilot":        "/out/.github/instructions/next-js-prompt.instructions.md",
		"claude":         "/out/CLAUDE.md",
		"codex":          "/out/AGENTS.md",
		"junie":          "/out/.junie/guidelines.md",
		"cursor-legacy":  "/out/.cursorrules",
		"claude-memory":  "/out/.claude/memories/next-js-prompt.md",
		"gemini-memory":  "/out/.gemini/memories/next-js-prompt.md",
		"copilot-legacy": "/out/.github/copilot-instructions.md",
	}

	reg := NewRegistry()
	for id, want := range tests {
		t.Run(id, func(t *testing.T) {
			f, ok := reg.Get(id)
			require.True(t, ok)
			assert.Equal(t, filepath.FromSlash(want), f.OutputPath(rule, gctx))
		})
	}
}

func TestTransformContentStripsFrontmatter(t *testing.T) {
	rule := model.Rule{
		Name:    "a",
		Content: "---\ndescription: \"old\"\n---\n\n# Body\n\ntext",
	}

	got := NewCline().TransformContent(rule)
	assert.Equal(t, "# Body\n\ntext\n", got)

	again := NewCline().TransformContent(model.Rule{Name: "a", Content: got})
	assert.Equal(t, got, again, "transforming clean content must be a no-op")
}

func TestTransformContentEmptyBody(t *testing.T) {
	rule := model.Rule{Name: "empty", Description: "placeholder"}

	assert.Equal(t, "", NewCline().TransformContent(rule))
	assert.Equal(t,
		"---\ntype: \"manual\"\ndescription: \"placeholder\"\n---\n",
		NewAugment().TransformContent(rule),
	)
}

func TestTransformContentIsDeterministic(t *testing.T) {
	rule := model.Rule{Name: "api routes", Content: "Use REST endpoints.", Description: "API"}
	for _, f := range NewRegistry().All() {
		first := f.TransformContent(rule)
		if first != f.TransformContent(rule) {
			t.Errorf("%s: TransformContent is not deterministic", f.Spec().ID)
		}
		if strings.TrimSpace(first) == "" {
			t.Errorf("%s: TransformContent returned empty content", f.Spec().ID)
		}
	}
}
