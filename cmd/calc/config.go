package main

import (
	"flag"
	"fmt"
	"log/slog"
	"strings"
)

type cliConfig struct {
	SuitePath   string
	ShowPostfix bool
	TUI         bool
	History     bool
	LogLevel    string
}

func parseFlags() cliConfig {
	cfg := cliConfig{}

	flag.StringVar(&cfg.SuitePath, "suite", "", "Path to a YAML suite of expressions to check")
	flag.BoolVar(&cfg.ShowPostfix, "postfix", false, "Print the postfix form before each result")
	flag.BoolVar(&cfg.TUI, "tui", false, "Open the terminal keypad")
	flag.BoolVar(&cfg.History, "history", false, "Record calculations in the history store configured by STORAGE_TYPE")
	flag.StringVar(&cfg.LogLevel, "log-level", "warn", "Log level: debug, info, warn or error")

	flag.Parse()
	return cfg
}

func (c cliConfig) parseLogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(c.LogLevel))); err != nil {
		return slog.LevelWarn, fmt.Errorf("invalid log level %q: %w", c.LogLevel, err)
	}
	return level, nil
}
