// Package cli provides CLI commands using Bubble Tea TUI.
package cli

import (
	"context"
	"fmt"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
	"github.com/bnema/hotbarscroll/internal/domain/build"
	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info

	// Context with logger
	ctx        context.Context
	logCleanup func()
}

// NewApp creates the CLI application for the settings file at configPath.
// An empty path selects the XDG location.
func NewApp(configPath string) (*App, error) {
	mgr, err := config.NewManager(configPath)
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}

	logger := logging.NewFromEnv()
	return &App{
		Config: mgr,
		Theme:  styles.NewTheme(),
		ctx:    logging.WithContext(context.Background(), logger),
	}, nil
}

// UseLogFile sends logs to path from now on. The TUI owns the terminal, so
// anything written to stderr would land on top of it.
func (a *App) UseLogFile(path string, cfg config.LoggingConfig) error {
	logger, cleanup, err := logging.NewWithFile(logging.Config{
		Level:      logging.ParseLevel(cfg.Level),
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
	}, path)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}

	if a.logCleanup != nil {
		a.logCleanup()
	}
	a.logCleanup = cleanup
	a.ctx = logging.WithContext(context.Background(), logger)
	return nil
}

// Close releases all resources.
func (a *App) Close() error {
	if a.logCleanup != nil {
		a.logCleanup()
		a.logCleanup = nil
	}
	return nil
}

// Ctx returns the application context with logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}
