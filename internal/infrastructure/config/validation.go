package config

import (
	"fmt"
	"strings"

	"github.com/bnema/hotbarscroll/internal/ui/input"
)

// ToSettings validates the file values and builds a Settings snapshot.
func (c *Config) ToSettings() (Settings, error) {
	shortcut, err := input.ParseShortcut(c.General.ModifierKey)
	if err != nil {
		return Settings{}, &ParseError{Key: "general.modifier_key", Err: err}
	}

	invert, err := ParseToggle(c.General.InvertedScroll)
	if err != nil {
		return Settings{}, &ParseError{Key: "general.inverted_scroll", Err: err}
	}

	return Settings{Modifier: shortcut, InvertScroll: invert}, nil
}

// validateConfig checks every section and reports all problems at once.
func validateConfig(config *Config) error {
	var validationErrors []string

	if _, err := input.ParseShortcut(config.General.ModifierKey); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("general.modifier_key: %v", err))
	}
	if _, err := ParseToggle(config.General.InvertedScroll); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("general.inverted_scroll: %v", err))
	}
	validationErrors = append(validationErrors, validateLogging(config)...)

	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string

	switch strings.ToLower(config.Logging.Level) {
	case "", "trace", "debug", "info", "warn", "warning", "error", "off", "disabled":
	default:
		validationErrors = append(validationErrors, "logging.level must be one of trace, debug, info, warn, error")
	}

	switch strings.ToLower(config.Logging.Format) {
	case "", "console", "json":
	default:
		validationErrors = append(validationErrors, "logging.format must be console or json")
	}

	return validationErrors
}
