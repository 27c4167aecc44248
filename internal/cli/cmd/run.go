package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/bnema/hotbarscroll/internal/cli/model"
	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
	"github.com/bnema/hotbarscroll/internal/logging"
	"github.com/bnema/hotbarscroll/internal/ui/mainloop"
)

var (
	runLogFile string
	runSlots   int
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hotbar in the terminal with live config reload",
	Long: `Run a terminal hotbar driven by the same scroll-selection logic a game
host uses.

Hold Alt (or the configured modifier, if your terminal reports it with mouse
events) and scroll to move the highlight; stop scrolling to release the
modifier and use the slot. alt+up/alt+down work when the mouse wheel does
not report modifiers.

Edit the settings file while this runs to change the modifier key or the
scroll direction. Logs go to a file because the TUI owns the terminal.

Examples:
  hotbarscroll run                      # 8 slots, logs in $XDG_STATE_HOME
  hotbarscroll run --slots 5
  hotbarscroll run --log-file /tmp/hotbarscroll.log`,
	RunE: runHotbar,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVar(&runLogFile, "log-file", "", "log file (default from config, then $XDG_STATE_HOME/hotbarscroll/hotbarscroll.log)")
	runCmd.Flags().IntVar(&runSlots, "slots", 8, "number of hotbar slots")
}

func runHotbar(_ *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	mgr := app.Config
	settings, err := mgr.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logPath, err := resolveLogFile(mgr.Config().Logging)
	if err != nil {
		return err
	}
	if err := app.UseLogFile(logPath, mgr.Config().Logging); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	log := logging.FromContext(ctx)
	log.Info().
		Str("config", mgr.Path()).
		Str("modifier", settings.Modifier.String()).
		Str("inverted_scroll", settings.InvertScroll.String()).
		Msg("starting hotbar")

	store := config.NewStore(settings)
	queue := mainloop.NewQueue()
	defer queue.Close()

	watcher, err := config.NewWatcher(mgr, store, queue.Post)
	if err != nil {
		return err
	}

	hotbarModel := model.NewHotbarModel(ctx, model.HotbarDeps{
		Store: store,
		Queue: queue,
		Theme: app.Theme,
		Slots: runSlots,
	})
	watcher.OnReload(hotbarModel.ConfigReloaded)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return watcher.Run(logging.WithComponent(gctx, "config-watcher"))
	})
	g.Go(func() error {
		// Quitting the TUI stops the watcher too.
		defer cancel()

		p := tea.NewProgram(hotbarModel,
			tea.WithAltScreen(),
			tea.WithMouseCellMotion(),
			tea.WithContext(gctx),
		)
		if _, err := p.Run(); err != nil {
			if errors.Is(err, tea.ErrProgramKilled) && gctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("run hotbar: %w", err)
		}
		return nil
	})

	err = g.Wait()
	log.Info().Msg("hotbar stopped")
	return err
}

func resolveLogFile(cfg config.LoggingConfig) (string, error) {
	if runLogFile != "" {
		return runLogFile, nil
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	path, err := config.GetLogFile()
	if err != nil {
		return "", fmt.Errorf("resolve log file: %w", err)
	}
	return path, nil
}
