package main

import (
	"os"
	"path/filepath"
	"testing"
)

// TestMain runs the binary's tests from an empty directory so no project
// config or .env is picked up, with fetched documents cached in the sandbox.
func TestMain(m *testing.M) {
	sandbox, err := os.MkdirTemp("", "rulegen-cmd-test-")
	if err != nil {
		panic(err)
	}

	must(os.Setenv("HOME", sandbox))
	must(os.Setenv("RULEGEN_CACHE_DIR", filepath.Join(sandbox, "cache")))
	must(os.Chdir(sandbox))

	code := m.Run()
	_ = os.RemoveAll(sandbox)
	os.Exit(code)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
