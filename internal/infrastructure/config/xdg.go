package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "hotbarscroll"
	configFileName = "hotbarscroll.toml"

	dirPerm  = 0o755
	filePerm = 0o644
)

// GetConfigDir returns $XDG_CONFIG_HOME/hotbarscroll (default
// ~/.config/hotbarscroll). ENV=dev switches to ./.dev/hotbarscroll.
func GetConfigDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the path to the settings file.
func GetConfigFile() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, configFileName), nil
}

// ConfigFileHint is the default settings path as documented to users.
const ConfigFileHint = "$XDG_CONFIG_HOME/" + appName + "/" + configFileName

// GetDataDir returns $XDG_DATA_HOME (default ~/.local/share).
func GetDataDir() (string, error) {
	if dataHome := os.Getenv("XDG_DATA_HOME"); dataHome != "" {
		return dataHome, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".local", "share"), nil
}

// GetManDir returns the user's man1 directory, where 'man hotbarscroll'
// finds pages without extra MANPATH setup.
func GetManDir() (string, error) {
	dataDir, err := GetDataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dataDir, "man", "man1"), nil
}

// GetStateDir returns $XDG_STATE_HOME/hotbarscroll (default
// ~/.local/state/hotbarscroll). ENV=dev keeps it next to the dev config.
func GetStateDir() (string, error) {
	if os.Getenv("ENV") == "dev" {
		return GetConfigDir()
	}

	stateHome := os.Getenv("XDG_STATE_HOME")
	if stateHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		stateHome = filepath.Join(homeDir, ".local", "state")
	}
	return filepath.Join(stateHome, appName), nil
}

// GetLogFile returns the default log file of the run command.
func GetLogFile() (string, error) {
	stateDir, err := GetStateDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(stateDir, appName+".log"), nil
}
