// Package e2e provides testing infrastructure for end-to-end CLI tests.
// It includes a harness that runs rulegen commands inside an isolated project
// directory and helpers for writing source documents.
package e2e

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauern/rulegen/internal/cli"
)

// envKeys are cleared for every harness so the developer's environment does
// not leak into a run.
var envKeys = []string{
	"RULEGEN_OUTPUT_DIR",
	"RULEGEN_FORMATS",
	"RULEGEN_FORCE",
	"RULEGEN_IDE_STYLE",
	"RULEGEN_IDE_FOLDER",
	"RULEGEN_GITIGNORE",
	"RULEGEN_DETECT",
	"RULEGEN_LOG_LEVEL",
	"RULEGEN_LOG_FORMAT",
}

// Result contains the outcome of running a CLI command.
type Result struct {
	// Stdout contains the captured standard output.
	Stdout string
	// Stderr contains log lines and warnings.
	Stderr string
	// Err is the error returned by the CLI command, if any.
	Err error
	// ExitCode is the inferred exit code (0 for success, 1 for error).
	ExitCode int
}

// Success returns true if the command completed without error.
func (r *Result) Success() bool {
	return r.Err == nil
}

// Harness runs CLI commands with a temporary project directory as the working
// directory and a temporary HOME.
type Harness struct {
	t          *testing.T
	homeDir    string
	projectDir string
}

// NewHarness creates a new E2E test harness.
func NewHarness(t *testing.T) *Harness {
	t.Helper()

	h := &Harness{
		t:          t,
		homeDir:    t.TempDir(),
		projectDir: t.TempDir(),
	}

	t.Setenv("HOME", h.homeDir)
	for _, key := range envKeys {
		t.Setenv(key, "")
		_ = os.Unsetenv(key)
	}
	t.Setenv("RULEGEN_CACHE_DIR", filepath.Join(h.homeDir, ".cache", "rulegen"))
	t.Chdir(h.projectDir)

	return h
}

// SetEnv sets an environment variable for commands run through this harness.
// The environment will be restored after the test completes.
func (h *Harness) SetEnv(key, value string) {
	h.t.Helper()
	h.t.Setenv(key, value)
}

// HomeDir returns the isolated home directory for this test harness.
func (h *Harness) HomeDir() string {
	return h.homeDir
}

// ProjectDir returns the working directory commands run in.
func (h *Harness) ProjectDir() string {
	return h.projectDir
}

// Run executes rulegen with args, colors off, and captures stdout and the log
// lines written to stderr.
func (h *Harness) Run(args ...string) *Result {
	h.t.Helper()

	args = append([]string{"rulegen", "--no-color"}, args...)

	stdout := h.capture(&os.Stdout)
	stderr := h.capture(&os.Stderr)
	cmdErr := cli.Run(h.t.Context(), args)

	exitCode := 0
	if cmdErr != nil {
		exitCode = 1
	}
	return &Result{
		Stdout:   stdout(),
		Stderr:   stderr(),
		Err:      cmdErr,
		ExitCode: exitCode,
	}
}

// Generate runs `generate` for input with extra flags placed before it.
func (h *Harness) Generate(input string, flags ...string) *Result {
	h.t.Helper()
	return h.Run(append(append([]string{"generate"}, flags...), input)...)
}

// capture redirects *target into a pipe until the returned function is
// called, which restores it and returns what was written. The pipe is drained
// concurrently so large output cannot block the command.
func (h *Harness) capture(target **os.File) func() string {
	h.t.Helper()

	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		h.t.Fatalf("failed to create pipe: %v", err)
	}
	*target = w

	var buf bytes.Buffer
	done := make(chan error, 1)
	go func() {
		_, err := io.Copy(&buf, r)
		done <- err
	}()

	return func() string {
		h.t.Helper()
		if err := w.Close(); err != nil {
			h.t.Fatalf("failed to close pipe writer: %v", err)
		}
		*target = old
		if err := <-done; err != nil {
			h.t.Fatalf("failed to read captured output: %v", err)
		}
		return buf.String()
	}
}
