package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/hotbarscroll/internal/cli/styles"
	"github.com/bnema/hotbarscroll/internal/infrastructure/config"
)

var (
	configForce  bool
	configDryRun bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the settings file",
	Long:  `Show, create, validate and migrate the hotbarscroll settings file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show the settings file path",
	RunE:  runConfigPath,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a settings file with all defaults",
	RunE:  runConfigInit,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the settings file for errors",
	Long: `Parse the settings file exactly as the running hotbar would on reload
and report the resulting shortcut and scroll direction.`,
	RunE: runConfigValidate,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the settings file",
	RunE:  runConfigSchema,
}

var configMigrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Add missing default settings to the settings file",
	Long: `Compares your settings file with the defaults and adds any missing keys.

Existing values are never modified. The file is rewritten, so comments other
than the generated header are not kept.`,
	RunE: runConfigMigrate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configMigrateCmd)
	configInitCmd.Flags().BoolVarP(&configForce, "force", "f", false, "overwrite an existing file")
	configMigrateCmd.Flags().BoolVarP(&configDryRun, "dry-run", "n", false, "list missing keys without writing")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPath(app.Config.Path(), app.Config.Exists()))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	path := app.Config.Path()
	if app.Config.Exists() && !configForce {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderAlreadyExists(path))
		return nil
	}

	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderCreated(path))
	return nil
}

func runConfigValidate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	mgr := app.Config
	if !mgr.Exists() {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderNoConfigFile(mgr.Path()))
		return nil
	}

	settings, err := mgr.Reload()
	if err != nil {
		fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderError(err))
		return fmt.Errorf("invalid config %s", mgr.Path())
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderValid(
		mgr.Path(),
		settings.Modifier.String(),
		settings.InvertScroll.String(),
	))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	schema, err := config.GenerateSchema()
	if err != nil {
		return fmt.Errorf("generate schema: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), string(schema))
	return nil
}

func runConfigMigrate(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	mgr := app.Config
	if !mgr.Exists() {
		fmt.Fprintln(out, renderer.RenderNoConfigFile(mgr.Path()))
		return nil
	}

	migrator := config.NewMigrator(mgr)
	missing, err := migrator.MissingKeys()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	if len(missing) == 0 {
		fmt.Fprintln(out, renderer.RenderUpToDate(mgr.Path()))
		return nil
	}

	rows := make([]styles.MissingKey, len(missing))
	for i, k := range missing {
		rows[i] = styles.MissingKey{Key: k.Key, Type: k.Type, DefaultValue: k.DefaultValue}
	}
	fmt.Fprintln(out, renderer.RenderMissingKeys(rows))
	if configDryRun {
		return nil
	}

	added, err := migrator.Migrate()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return nil
	}
	fmt.Fprintln(out, renderer.RenderMigrationSuccess(len(added), mgr.Path()))
	return nil
}
