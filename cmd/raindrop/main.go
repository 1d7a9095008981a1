// Command raindrop plays the raindrop game in an OpenGL window.
package main

import (
	"fmt"
	"os"

	"raindrop/internal/config"
	"raindrop/internal/game"
	"raindrop/internal/log"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "raindrop:", err)
		return 1
	}

	level := log.LevelFromString(cfg.LogLevel)
	logger := log.Stderr(level)
	if cfg.LogFile != "" {
		l, f, err := log.File(cfg.LogFile, level)
		if err != nil {
			logger.Errorf("%v (logging to stderr)", err)
		} else {
			defer f.Close()
			logger = l
		}
	}
	for _, w := range cfg.Warnings {
		logger.Warnf("config: %s", w)
	}

	if err := game.RunDesktop(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "raindrop:", err)
		return 1
	}
	return 0
}
