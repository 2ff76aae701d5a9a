// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Finder FinderConfig `toml:"finder"`
}

// FinderConfig maps finder-related settings.
type FinderConfig struct {
	WordList *string `toml:"wordlist"`
	Columns  *int    `toml:"columns"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return FileConfig{}, fmt.Errorf("unknown config key %q", undecoded[0].String())
	}
	return cfg, nil
}

// Template returns the commented config written by "wodl config".
func Template(wordListPath string) string {
	return fmt.Sprintf(`# wodl configuration
# Uncomment a value to enable it. CLI flags override config values.

[finder]
# wordlist = %q   # Word list loaded at startup and rewritten on save
# columns = 0     # Words per grid row (0 = 6 for short words, 5 otherwise)
`, wordListPath)
}
