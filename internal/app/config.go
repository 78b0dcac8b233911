package app

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
)

// Command selects which exercise an App runs.
type Command string

const (
	CommandLists    Command = "lists"
	CommandDiscount Command = "discount"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	Command Command

	// WalkthroughPath optionally replaces the built-in list walkthrough
	// with a .hcl/.yaml/.yml file, or a directory of .hcl files.
	WalkthroughPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	switch cfg.Command {
	case CommandLists, CommandDiscount:
	case "":
		return nil, errors.New("Command is a required configuration field and cannot be empty")
	default:
		return nil, fmt.Errorf("unknown command %q", cfg.Command)
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	if cfg.WalkthroughPath != "" {
		if cfg.Command != CommandLists {
			return nil, errors.New("a walkthrough file is only used by the lists command")
		}
		switch strings.ToLower(filepath.Ext(cfg.WalkthroughPath)) {
		case ".hcl", ".yaml", ".yml", "":
		default:
			return nil, fmt.Errorf("unsupported walkthrough file %q: expected .hcl, .yaml or .yml", cfg.WalkthroughPath)
		}
	}

	return &cfg, nil
}
