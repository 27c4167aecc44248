// Package config loads, validates and live-reloads hotbarscroll settings.
package config

import (
	"fmt"
	"strings"

	"github.com/bnema/hotbarscroll/internal/ui/input"
)

// Config mirrors the TOML file on disk. Values are strings so a typo is
// reported by validation instead of silently zeroed by the decoder.
type Config struct {
	General GeneralConfig `mapstructure:"general" toml:"general" json:"general"`
	Logging LoggingConfig `mapstructure:"logging" toml:"logging" json:"logging"`
}

// GeneralConfig holds the hotbar behaviour settings.
type GeneralConfig struct {
	// ModifierKey is the key that must be held to scroll the hotbar,
	// optionally followed by auxiliary keys ("Q + LeftControl").
	ModifierKey string `mapstructure:"modifier_key" toml:"modifier_key" json:"modifier_key" jsonschema:"description=The key that must be held to scroll the hotbar. Main key first then auxiliary keys joined by +,default=LeftAlt"`
	// InvertedScroll flips the scroll direction.
	InvertedScroll string `mapstructure:"inverted_scroll" toml:"inverted_scroll" json:"inverted_scroll" jsonschema:"description=Invert the scroll direction of the hotbar.,enum=On,enum=Off,default=Off"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level" toml:"level" json:"level" jsonschema:"enum=trace,enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format string `mapstructure:"format" toml:"format" json:"format" jsonschema:"enum=console,enum=json,default=console"`
	// File receives log output when set. Empty means stderr.
	File string `mapstructure:"file" toml:"file" json:"file,omitempty"`
}

// Toggle is the On/Off switch used by the settings file.
type Toggle int

const (
	// ToggleOff disables the option.
	ToggleOff Toggle = 0
	// ToggleOn enables the option.
	ToggleOn Toggle = 1
)

// String returns "On" or "Off".
func (t Toggle) String() string {
	if t == ToggleOn {
		return "On"
	}
	return "Off"
}

// ParseToggle accepts On/Off and the usual boolean spellings.
func ParseToggle(s string) (Toggle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "true", "1", "yes":
		return ToggleOn, nil
	case "off", "false", "0", "no", "":
		return ToggleOff, nil
	default:
		return ToggleOff, fmt.Errorf("invalid toggle %q: must be On or Off", s)
	}
}

// Settings is the snapshot the frame handler reads every tick. It is
// replaced wholesale on reload and never mutated in place.
type Settings struct {
	Modifier     input.Shortcut
	InvertScroll Toggle
}

// ScrollSign returns -1 when scrolling is inverted and 1 otherwise.
func (s Settings) ScrollSign() int {
	if s.InvertScroll == ToggleOn {
		return -1
	}
	return 1
}

// Equal reports whether both snapshots hold the same values.
func (s Settings) Equal(other Settings) bool {
	return s.InvertScroll == other.InvertScroll && s.Modifier.Equal(other.Modifier)
}
