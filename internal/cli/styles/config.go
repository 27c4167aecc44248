package styles

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	status := r.theme.Subtle.Render("(not created yet)")
	if exists {
		status = r.theme.SuccessStyle.Render("(exists)")
	}

	return fmt.Sprintf(
		"\n  %s Config %s %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderCreated renders the success message after writing defaults.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote default config to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderAlreadyExists renders the refusal to overwrite an existing file.
func (r *ConfigRenderer) RenderAlreadyExists(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Warning)

	return fmt.Sprintf(
		"\n  %s Config %s already exists\n  %s\n",
		iconStyle.Render(IconWarning),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Use --force to overwrite it with defaults."),
	)
}

// RenderValid renders the settings a config file resolves to.
func (r *ConfigRenderer) RenderValid(path, modifier, inverted string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)
	keyStyle := r.theme.Highlight

	return fmt.Sprintf(
		"\n  %s Config %s is valid\n    %s modifier_key    %s\n    %s inverted_scroll %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCursor),
		keyStyle.Render(modifier),
		iconStyle.Render(IconCursor),
		keyStyle.Render(inverted),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n  %s\n",
		iconStyle.Render(IconX),
		err,
		r.theme.Subtle.Render("Please check your config entries for spelling and format!"),
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("Config file will be created on first run with all defaults."),
	)
}

// MissingKey is one default setting absent from the user's file.
type MissingKey struct {
	Key          string
	Type         string
	DefaultValue string
}

// RenderMissingKeys renders the list of missing keys with their types and default values.
func (r *ConfigRenderer) RenderMissingKeys(keys []MissingKey) string {
	if len(keys) == 0 {
		return ""
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	valueStyle := lipgloss.NewStyle().Foreground(r.theme.Text)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("\n  Missing settings (%d):\n", len(keys)))
	for _, key := range keys {
		sb.WriteString(fmt.Sprintf(
			"    %s %s\n      Type: %s | Default: %s\n",
			iconStyle.Render(IconCursor),
			r.theme.Highlight.Render(key.Key),
			r.theme.Subtle.Render(key.Type),
			valueStyle.Render(key.DefaultValue),
		))
	}
	return sb.String()
}

// RenderMigrationSuccess renders the success message after migration.
func (r *ConfigRenderer) RenderMigrationSuccess(count int, path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Added %s new settings to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Highlight.Render(fmt.Sprintf("%d", count)),
		r.theme.Subtle.Render(filepath.Base(path)),
	)
}

// RenderUpToDate renders the "config is up to date" message.
func (r *ConfigRenderer) RenderUpToDate(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s Config is up to date\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		iconStyle.Render(IconCheck),
	)
}
