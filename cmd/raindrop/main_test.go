package main

import (
	"os"
	"testing"
)

func TestRunReportsConfigError(t *testing.T) {
	t.Chdir(t.TempDir())
	// A directory is not a readable .env file.
	if err := os.Mkdir(".env", 0o755); err != nil {
		t.Fatal(err)
	}
	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
