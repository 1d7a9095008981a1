package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLevelFromString(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		" INFO ":  LevelInfo,
		"Error":   LevelError,
		"none":    LevelNone,
		"verbose": LevelInfo,
		"":        LevelInfo,
	}
	for in, want := range cases {
		if got := LevelFromString(in); got != want {
			t.Errorf("LevelFromString(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestLoggerFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.Debugf("d")
	l.Infof("i")
	l.Warnf("w")
	l.Errorf("e %d", 1)
	out := buf.String()
	if strings.Contains(out, "DEBUG") || strings.Contains(out, "INFO") || strings.Contains(out, "WARN") {
		t.Fatalf("lower levels leaked: %q", out)
	}
	if !strings.Contains(out, "ERROR: e 1") {
		t.Fatalf("missing error line: %q", out)
	}

	buf.Reset()
	l.SetLevel(LevelNone)
	l.Errorf("quiet")
	if buf.Len() != 0 {
		t.Fatalf("LevelNone wrote %q", buf.String())
	}
	if l.Level() != LevelNone {
		t.Fatalf("Level() = %v", l.Level())
	}
}

func TestFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "raindrop.log")
	for i := 0; i < 2; i++ {
		l, f, err := File(path, LevelInfo)
		if err != nil {
			t.Fatalf("File: %v", err)
		}
		l.Infof("run %d", i)
		if err := f.Close(); err != nil {
			t.Fatal(err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	out := string(data)
	if !strings.Contains(out, "INFO: run 0") || !strings.Contains(out, "INFO: run 1") {
		t.Fatalf("log file = %q", out)
	}
}

func TestFileBadPath(t *testing.T) {
	if _, _, err := File(filepath.Join(t.TempDir(), "missing", "x.log"), LevelInfo); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}
