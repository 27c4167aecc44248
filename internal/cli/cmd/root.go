// Package cmd provides Cobra CLI commands for hotbarscroll.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/hotbarscroll/internal/cli"
	"github.com/bnema/hotbarscroll/internal/domain/build"
)

var (
	app        *cli.App
	buildInfo  build.Info
	configPath string
	rootCmd    = &cobra.Command{
		Use:   "hotbarscroll",
		Short: "Scroll through the hotbar while a modifier key is held",
		Long: `hotbarscroll - select hotbar slots with the mouse wheel.

While the configured modifier key is held, scrolling cycles a highlight
through the hotbar slots instead of zooming the camera. Releasing the
modifier uses the highlighted slot.

The settings file is watched while running: changing the modifier key or
the scroll direction applies without a restart.

Use 'hotbarscroll run' to try it in the terminal, or explore the config
subcommands to manage the settings file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "gen-docs":
				return nil
			}

			var err error
			app, err = cli.NewApp(configPath)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "settings file (default $XDG_CONFIG_HOME/hotbarscroll/hotbarscroll.toml)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
