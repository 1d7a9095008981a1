package main

import (
	"os"
	"path/filepath"
	"testing"

	"raindrop/internal/config"
)

func TestRunReportsConfigError(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.Mkdir(".env", 0o755); err != nil {
		t.Fatal(err)
	}
	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}

func TestRunReportsBadLogFile(t *testing.T) {
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv(config.EnvLogFile, filepath.Join(dir, "missing", "raindrop.log"))
	if code := run(); code != 1 {
		t.Fatalf("run() = %d, want 1", code)
	}
}
