package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment override of a settings key.
const EnvPrefix = "HOTBARSCROLL"

var envKeyReplacer = strings.NewReplacer(".", "_")

// Manager reads the settings file through viper.
type Manager struct {
	path   string
	config *Config
	mu     sync.RWMutex
}

// NewManager creates a manager for the file at path. An empty path selects
// the XDG location.
func NewManager(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("failed to determine config file: %w\nCheck XDG_CONFIG_HOME environment variable or HOME directory", err)
		}
	}

	return &Manager{path: path}, nil
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")

	// HOTBARSCROLL_GENERAL_MODIFIER_KEY, HOTBARSCROLL_LOGGING_LEVEL, ...
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(envKeyReplacer)
	v.AutomaticEnv()

	setDefaults(v)
	return v
}

// setDefaults sets default configuration values in Viper.
func setDefaults(v *viper.Viper) {
	for key, value := range defaultValues() {
		v.SetDefault(key, value)
	}
}

// EnvOverride is an environment variable that replaces one settings key.
type EnvOverride struct {
	Name    string
	Key     string
	Default any
}

// EnvOverrides lists the variables read on top of the settings file,
// ordered by settings key.
func EnvOverrides() []EnvOverride {
	defaults := defaultValues()
	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	overrides := make([]EnvOverride, 0, len(keys))
	for _, key := range keys {
		overrides = append(overrides, EnvOverride{
			Name:    EnvPrefix + "_" + strings.ToUpper(envKeyReplacer.Replace(key)),
			Key:     key,
			Default: defaults[key],
		})
	}
	return overrides
}

// Path returns the settings file path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads the settings file, writing the defaults first when it does not
// exist yet.
func (m *Manager) Load() (Settings, error) {
	if _, err := os.Stat(m.path); errors.Is(err, fs.ErrNotExist) {
		if err := WriteConfig(DefaultConfig(), m.path); err != nil {
			return Settings{}, fmt.Errorf(
				"failed to create default config at %s: %w\nTry creating the directory manually or check permissions",
				m.path, err,
			)
		}
	}
	return m.Reload()
}

// Reload re-reads the file. On any error the previously loaded config is
// kept and a *ParseError is returned.
func (m *Manager) Reload() (Settings, error) {
	cfg, err := m.read()
	if err != nil {
		return Settings{}, err
	}

	settings, err := cfg.ToSettings()
	if err != nil {
		var pe *ParseError
		if errors.As(err, &pe) {
			pe.Path = m.path
		}
		return Settings{}, err
	}

	m.mu.Lock()
	m.config = cfg
	m.mu.Unlock()
	return settings, nil
}

// read parses the file into a fresh viper instance so values from an
// earlier read never leak into this one.
func (m *Manager) read() (*Config, error) {
	v := newViper(m.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, &ParseError{Path: m.path, Err: fmt.Errorf("failed to read config file: %w", err)}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, &ParseError{Path: m.path, Err: fmt.Errorf("failed to parse config file: %w", err)}
	}
	if err := validateConfig(cfg); err != nil {
		return nil, &ParseError{Path: m.path, Err: err}
	}
	return cfg, nil
}

// Validate parses the file without committing anything.
func (m *Manager) Validate() error {
	cfg, err := m.read()
	if err != nil {
		return err
	}
	_, err = cfg.ToSettings()
	return err
}

// Config returns a copy of the last successfully loaded file values.
func (m *Manager) Config() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	configCopy := *m.config
	return &configCopy
}

// Exists reports whether the settings file is present.
func (m *Manager) Exists() bool {
	_, err := os.Stat(m.path)
	return err == nil
}
