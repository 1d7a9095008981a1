// Package config reads game settings from the environment and an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	EnvWidth    = "RAINDROP_WIDTH"
	EnvHeight   = "RAINDROP_HEIGHT"
	EnvAudio    = "RAINDROP_AUDIO"
	EnvVolume   = "RAINDROP_VOLUME"
	EnvLogLevel = "RAINDROP_LOG_LEVEL"
	EnvFPS      = "RAINDROP_FPS"
	EnvLogFile  = "RAINDROP_LOG_FILE"
)

type Config struct {
	WindowWidth  int
	WindowHeight int
	Audio        bool
	Volume       float64
	LogLevel     string
	FPS          int
	LogFile      string

	// Warnings lists values that were ignored in favor of defaults.
	Warnings []string
}

func Default() Config {
	return Config{
		WindowWidth:  800,
		WindowHeight: 600,
		Audio:        true,
		Volume:       0.6,
		LogLevel:     "INFO",
		FPS:          60,
	}
}

// Load reads the given .env files (".env" when none are given) into the
// process environment without overriding variables already set, then
// builds a Config from the environment. Missing files are skipped.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from RAINDROP_* variables.
func FromEnv() Config {
	c := Default()
	c.WindowWidth = c.intVar(EnvWidth, c.WindowWidth, 64, 8192)
	c.WindowHeight = c.intVar(EnvHeight, c.WindowHeight, 64, 8192)
	c.FPS = c.intVar(EnvFPS, c.FPS, 1, 240)
	if s, ok := lookup(EnvAudio); ok {
		if v, err := strconv.ParseBool(s); err == nil {
			c.Audio = v
		} else {
			c.warn(EnvAudio, s)
		}
	}
	if s, ok := lookup(EnvVolume); ok {
		if v, err := strconv.ParseFloat(s, 64); err == nil && v >= 0 && v <= 1 {
			c.Volume = v
		} else {
			c.warn(EnvVolume, s)
		}
	}
	if s, ok := lookup(EnvLogLevel); ok {
		c.LogLevel = strings.ToUpper(s)
	}
	if s, ok := lookup(EnvLogFile); ok {
		c.LogFile = s
	}
	return c
}

func (c *Config) intVar(name string, def, lo, hi int) int {
	s, ok := lookup(name)
	if !ok {
		return def
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < lo || v > hi {
		c.warn(name, s)
		return def
	}
	return v
}

func (c *Config) warn(name, value string) {
	c.Warnings = append(c.Warnings, fmt.Sprintf("%s=%q ignored", name, value))
}

func lookup(name string) (string, bool) {
	s, ok := os.LookupEnv(name)
	s = strings.TrimSpace(s)
	return s, ok && s != ""
}
