package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

// KeyInfo describes one default setting missing from the user's file.
type KeyInfo struct {
	Key          string
	Type         string
	DefaultValue string
}

// Migrator compares the user's settings file with the defaults and adds
// keys that appeared in newer versions.
type Migrator struct {
	manager *Manager
}

// NewMigrator creates a migrator for the manager's file.
func NewMigrator(manager *Manager) *Migrator {
	return &Migrator{manager: manager}
}

// MissingKeys returns the default keys the file does not define, sorted.
// A missing file yields nothing: it is created with every default on first
// run.
func (m *Migrator) MissingKeys() ([]KeyInfo, error) {
	userKeys, err := m.userKeys()
	if err != nil || userKeys == nil {
		return nil, err
	}

	defaults := defaultValues()
	missing := make([]KeyInfo, 0)
	for key, value := range defaults {
		if _, ok := userKeys[key]; ok {
			continue
		}
		missing = append(missing, KeyInfo{
			Key:          key,
			Type:         typeName(value),
			DefaultValue: fmt.Sprintf("%q", value),
		})
	}

	sort.Slice(missing, func(i, j int) bool { return missing[i].Key < missing[j].Key })
	return missing, nil
}

// Migrate writes the file back with every missing key set to its default.
// Values already present are kept. It returns the keys that were added.
func (m *Migrator) Migrate() ([]string, error) {
	missing, err := m.MissingKeys()
	if err != nil || len(missing) == 0 {
		return nil, err
	}

	cfg, err := m.manager.read()
	if err != nil {
		return nil, err
	}
	if err := WriteConfig(cfg, m.manager.Path()); err != nil {
		return nil, err
	}

	added := make([]string, len(missing))
	for i, k := range missing {
		added[i] = k.Key
	}
	return added, nil
}

// userKeys parses the file into flattened dot-notation keys. It returns nil
// without error when the file does not exist.
func (m *Migrator) userKeys() (map[string]any, error) {
	data, err := os.ReadFile(m.manager.Path())
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, &ParseError{Path: m.manager.Path(), Err: err}
	}

	keys := make(map[string]any)
	flatten(raw, "", keys)
	return keys, nil
}

// defaultValues returns the defaults in the same flattened form.
func defaultValues() map[string]any {
	d := DefaultConfig()
	return map[string]any{
		"general.modifier_key":    d.General.ModifierKey,
		"general.inverted_scroll": d.General.InvertedScroll,
		"logging.level":           d.Logging.Level,
		"logging.format":          d.Logging.Format,
		"logging.file":            d.Logging.File,
	}
}

func flatten(data map[string]any, prefix string, out map[string]any) {
	for k, v := range data {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}
		if nested, ok := v.(map[string]any); ok {
			flatten(nested, key, out)
			continue
		}
		out[key] = v
	}
}

func typeName(value any) string {
	switch value.(type) {
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64:
		return "int"
	case float64:
		return "float"
	default:
		return fmt.Sprintf("%T", value)
	}
}
