// Package config provides XDG path helpers.
package config

import (
	"os"
	"path/filepath"
)

const appName = "wodl"

// XDGConfigHome returns the XDG config home or a default fallback.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultDir returns the directory holding the config and the word list.
func DefaultDir() string {
	return filepath.Join(XDGConfigHome(), appName)
}

// DefaultWordListPath returns the word list that is loaded at startup and rewritten on every save.
func DefaultWordListPath() string {
	return filepath.Join(DefaultDir(), "wodl.txt")
}

// DefaultConfigPath returns the default TOML config path.
func DefaultConfigPath() string {
	return filepath.Join(DefaultDir(), "config.toml")
}
