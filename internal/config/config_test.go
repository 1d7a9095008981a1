package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{EnvWidth, EnvHeight, EnvAudio, EnvVolume, EnvLogLevel, EnvFPS, EnvLogFile} {
		t.Setenv(name, "")
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	c := FromEnv()
	d := Default()
	if c.WindowWidth != d.WindowWidth || c.WindowHeight != d.WindowHeight || c.Audio != d.Audio ||
		c.Volume != d.Volume || c.LogLevel != d.LogLevel || c.FPS != d.FPS {
		t.Fatalf("FromEnv() = %+v, want %+v", c, d)
	}
	if len(c.Warnings) != 0 {
		t.Fatalf("warnings = %v", c.Warnings)
	}
}

func TestFromEnvOverridesAndFallbacks(t *testing.T) {
	clearEnv(t)
	t.Setenv(EnvWidth, "1024")
	t.Setenv(EnvHeight, "tall")
	t.Setenv(EnvAudio, "false")
	t.Setenv(EnvVolume, "3")
	t.Setenv(EnvLogLevel, "debug")
	t.Setenv(EnvFPS, "30")
	t.Setenv(EnvLogFile, " raindrop.log ")

	c := FromEnv()
	if c.WindowWidth != 1024 {
		t.Errorf("width = %d, want 1024", c.WindowWidth)
	}
	if c.WindowHeight != 600 {
		t.Errorf("height = %d, want fallback 600", c.WindowHeight)
	}
	if c.Audio {
		t.Errorf("audio should be off")
	}
	if c.Volume != 0.6 {
		t.Errorf("volume = %v, want fallback 0.6", c.Volume)
	}
	if c.LogLevel != "DEBUG" {
		t.Errorf("log level = %q", c.LogLevel)
	}
	if c.FPS != 30 {
		t.Errorf("fps = %d", c.FPS)
	}
	if c.LogFile != "raindrop.log" {
		t.Errorf("log file = %q", c.LogFile)
	}
	if len(c.Warnings) != 2 {
		t.Errorf("warnings = %v, want 2", c.Warnings)
	}
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	// godotenv does not override variables that are already present.
	os.Unsetenv(EnvWidth)
	os.Unsetenv(EnvVolume)
	t.Cleanup(func() {
		os.Unsetenv(EnvWidth)
		os.Unsetenv(EnvVolume)
	})
	t.Setenv(EnvFPS, "24")

	path := filepath.Join(t.TempDir(), "game.env")
	if err := os.WriteFile(path, []byte("RAINDROP_WIDTH=640\nRAINDROP_VOLUME=0.25\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c.WindowWidth != 640 || c.Volume != 0.25 || c.FPS != 24 {
		t.Fatalf("Load() = %+v", c)
	}
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	if _, err := Load(filepath.Join(t.TempDir(), "absent.env")); err != nil {
		t.Fatalf("missing file should be skipped, got %v", err)
	}
}
