package main

import (
	"os"
	"path/filepath"
	"testing"
)

// binaryEnv overrides the jobboard binary used by the CLI tests.
const binaryEnv = "JOBBOARD_BIN"

// getBinaryPath returns the jobboard binary built by `make build`, or the one
// named by JOBBOARD_BIN. CLI tests skip in -short mode or when it is missing.
func getBinaryPath(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping jobboard CLI tests in short mode")
	}

	path := os.Getenv(binaryEnv)
	if path == "" {
		path = filepath.Join("..", "..", "bin", "jobboard")
	}
	if _, err := os.Stat(path); err != nil {
		t.Skipf("jobboard binary not found at %s: run 'make build' or set %s", path, binaryEnv)
	}
	return path
}
