// Command raindrop-tui plays the raindrop game in a terminal.
package main

import (
	"fmt"
	"io"
	"os"

	"raindrop/internal/config"
	"raindrop/internal/log"
	"raindrop/internal/tui"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "raindrop-tui:", err)
		return 1
	}

	// The screen belongs to tcell, so logs go to a file or nowhere.
	level := log.LevelFromString(cfg.LogLevel)
	logger := log.New(io.Discard, level)
	if cfg.LogFile != "" {
		l, f, err := log.File(cfg.LogFile, level)
		if err != nil {
			fmt.Fprintln(os.Stderr, "raindrop-tui:", err)
			return 1
		}
		defer f.Close()
		logger = l
	}
	for _, w := range cfg.Warnings {
		logger.Warnf("config: %s", w)
	}

	if err := tui.Run(cfg, logger); err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(os.Stderr, "raindrop-tui:", err)
		return 1
	}
	return 0
}
