package detector

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/rulegen/internal/formatter"
)

func TestDetectTarget(t *testing.T) {
	t.Run("detects existing output directory", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".cursor", "rules"), 0o755))

		result, found := DetectTarget(dir, formatter.NewCursor())
		assert.True(t, found)
		assert.Equal(t, "cursor", result.FormatID)
		assert.Equal(t, filepath.Join(dir, ".cursor", "rules"), result.Path)
		assert.Equal(t, 0.95, result.Confidence)
		assert.Equal(t, SourceOutput, result.Source)
	})

	t.Run("detects root file", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "AGENTS.md"), []byte("x"), 0o600))

		result, found := DetectTarget(dir, formatter.NewCodex())
		assert.True(t, found)
		assert.Equal(t, SourceOutput, result.Source)
	})

	t.Run("detects indicator", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(dir, ".claude"), 0o755))

		result, found := DetectTarget(dir, formatter.NewClaudeMemory())
		assert.True(t, found)
		assert.Equal(t, filepath.Join(dir, ".claude"), result.Path)
		assert.Equal(t, 0.7, result.Confidence)
		assert.Equal(t, SourceIndicator, result.Source)
	})

	t.Run("not detected when absent", func(t *testing.T) {
		_, found := DetectTarget(t.TempDir(), formatter.NewWindsurf())
		assert.False(t, found)
	})
}

func TestDetectAll(t *testing.T) {
	t.Setenv(EnvTargets, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "CLAUDE.md"), []byte("x"), 0o600))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".windsurf"), 0o755))

	detected := DetectAll(dir, formatter.NewRegistry())
	assert.Equal(t, []string{"windsurf", "claude"}, IDs(detected))
}

func TestDetectAllEnvOverride(t *testing.T) {
	t.Setenv(EnvTargets, " Kiro, junie ")

	detected := DetectAll(t.TempDir(), formatter.NewRegistry())
	assert.Equal(t, []string{"kiro", "junie"}, IDs(detected))
	for _, d := range detected {
		assert.Equal(t, SourceEnv, d.Source)
	}
}
