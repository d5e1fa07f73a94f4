package e2e

import (
	"fmt"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/klauern/rulegen/internal/frontmatter"
	"github.com/klauern/rulegen/internal/util"
)

// AssertSuccess stops the test if the command returned an error.
func AssertSuccess(t *testing.T, r *Result) {
	t.Helper()
	require.NoError(t, r.Err, "stdout: %s", r.Stdout)
}

// AssertError stops the test if the command succeeded.
func AssertError(t *testing.T, r *Result) {
	t.Helper()
	require.Error(t, r.Err, "stdout: %s", r.Stdout)
}

// AssertErrorContains stops the test unless the command failed with an error
// mentioning substr.
func AssertErrorContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	require.Error(t, r.Err, "expected error containing %q", substr)
	assert.Contains(t, r.Err.Error(), substr)
}

// AssertExitCode checks the exit code the binary would report.
func AssertExitCode(t *testing.T, r *Result, expected int) {
	t.Helper()
	assert.Equal(t, expected, r.ExitCode, "error: %v\nstdout: %s", r.Err, r.Stdout)
}

// AssertOutputContains checks that stdout contains substr.
func AssertOutputContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	assert.Contains(t, r.Stdout, substr)
}

// AssertOutputNotContains checks that stdout does not contain substr.
func AssertOutputNotContains(t *testing.T, r *Result, substr string) {
	t.Helper()
	assert.NotContains(t, r.Stdout, substr)
}

// AssertGenerated checks the summary line of a generate run.
func AssertGenerated(t *testing.T, r *Result, files, rules int) {
	t.Helper()
	AssertOutputContains(t, r, fmt.Sprintf("Generated %d file(s) from %d rule(s)", files, rules))
}

// AssertFileExists checks that a generated file or directory is present.
func AssertFileExists(t *testing.T, path string) {
	t.Helper()
	assert.Truef(t, util.Exists(path), "expected %s to exist", path)
}

// AssertFileNotExists checks that nothing was written at path.
func AssertFileNotExists(t *testing.T, path string) {
	t.Helper()
	assert.Falsef(t, util.Exists(path), "expected %s to NOT exist", path)
}

// AssertFileContains checks that the file at path contains substr.
func AssertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	assert.Contains(t, readFile(t, path), substr, "file %s", path)
}

// AssertFileNotContains checks that the file at path does not contain substr.
func AssertFileNotContains(t *testing.T, path, substr string) {
	t.Helper()
	assert.NotContains(t, readFile(t, path), substr, "file %s", path)
}

// AssertFileEquals checks the exact content of the file at path.
func AssertFileEquals(t *testing.T, path, expected string) {
	t.Helper()
	assert.Equal(t, expected, readFile(t, path), "file %s", path)
}

// AssertFrontmatter checks that the generated file at path opens with a
// frontmatter block holding the line "key: value".
func AssertFrontmatter(t *testing.T, path, key, value string) {
	t.Helper()
	block := frontmatter.Split(readFile(t, path))
	require.Truef(t, block.Found, "expected %s to start with frontmatter", path)
	assert.Contains(t, strings.Split(block.Raw, "\n"), key+": "+value, "frontmatter of %s", path)
}

// AssertNoFrontmatter checks that the generated file at path is plain
// Markdown.
func AssertNoFrontmatter(t *testing.T, path string) {
	t.Helper()
	assert.Falsef(t, frontmatter.Split(readFile(t, path)).Found, "expected %s to have no frontmatter", path)
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	// #nosec G304 - path is provided by test code
	data, err := os.ReadFile(path)
	require.NoError(t, err, "failed to read %s", path)
	return string(data)
}
