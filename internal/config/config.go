// Package config reads optional user preferences from an XDG-resolved TOML
// file. A missing file is not an error; everything has a sensible default.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds the user's preferences. Command-line flags always take
// precedence over values loaded here.
type Config struct {
	// DefaultPlayers is used when -p/--players is not given. Zero means the
	// built-in default of 2.
	DefaultPlayers int `toml:"default_players"`
	// RevealRounds disables the spoiler masking of round 3-5 cards.
	RevealRounds bool `toml:"reveal_rounds"`
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "nusfjord", "config.toml")
}

// Load reads the config file, returning defaults when it does not exist.
func Load() (*Config, error) {
	configPath := GetConfigFilePath()

	var config Config
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &config, nil
	}

	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if config.DefaultPlayers != 0 && (config.DefaultPlayers < 1 || config.DefaultPlayers > 5) {
		return nil, fmt.Errorf("default_players must be between 1 and 5, got %d", config.DefaultPlayers)
	}

	return &config, nil
}
