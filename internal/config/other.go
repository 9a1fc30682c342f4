//go:build !darwin

package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// legacyConfigPath is where older CLI releases kept their own config.
func legacyConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	default: // linux and others
		configDir = os.Getenv("XDG_CONFIG_HOME")
		if configDir == "" {
			home, _ := os.UserHomeDir()
			configDir = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(configDir, "portkiller", "config.json")
}

// loadLegacy reads the per-platform config written by older releases.
func loadLegacy() *Config {
	cfg, err := readJSONConfig(legacyConfigPath())
	if err != nil {
		return nil
	}
	return cfg
}
