package config

import "github.com/bnema/hotbarscroll/internal/ui/input"

const (
	defaultModifierKey    = "LeftAlt"
	defaultInvertedScroll = "Off"
	defaultLogLevel       = "info"
	defaultLogFormat      = "console"
)

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() *Config {
	return &Config{
		General: GeneralConfig{
			ModifierKey:    defaultModifierKey,
			InvertedScroll: defaultInvertedScroll,
		},
		Logging: LoggingConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// DefaultSettings returns the settings used before any file is read.
func DefaultSettings() Settings {
	return Settings{
		Modifier:     input.NewShortcut(input.KeyLeftAlt),
		InvertScroll: ToggleOff,
	}
}
