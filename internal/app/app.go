package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/specialistvlad/coursegrid/internal/config"
	"github.com/specialistvlad/coursegrid/internal/console"
	"github.com/specialistvlad/coursegrid/internal/ctxlog"
	"github.com/specialistvlad/coursegrid/internal/hcl_adapter"
	"github.com/specialistvlad/coursegrid/internal/yaml_adapter"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW     io.Writer
	logger   *slog.Logger
	prompter *console.Prompter
	config   *Config
}

// NewApp is the constructor for the main application. Exercise output goes
// to outW, logs to logW, and console answers are read from in.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "command", cfg.Command)

	return &App{
		outW:     outW,
		logger:   logger,
		prompter: console.NewPrompter(in, outW),
		config:   cfg,
	}
}

// loaderFor picks the walkthrough loader matching path's extension.
// Directories and .hcl files go to the HCL loader.
func loaderFor(path string) config.Loader {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return yaml_adapter.NewLoader()
	default:
		return hcl_adapter.NewLoader()
	}
}

// Run executes the exercise selected by the configuration.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	var err error
	switch a.config.Command {
	case CommandLists:
		err = a.RunLists(ctx)
	case CommandDiscount:
		err = a.RunDiscount(ctx)
	default:
		err = fmt.Errorf("unknown command %q", a.config.Command)
	}

	a.logger.Debug("App.Run method finished.", "error", err)
	return err
}
