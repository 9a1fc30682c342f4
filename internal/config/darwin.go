//go:build darwin

package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"howett.net/plist"
)

const plistPath = "Library/Preferences/com.portkiller.app.plist"

// plistConfig represents the structure of the GUI's plist file
type plistConfig struct {
	FavoritesV2  []int         `plist:"favoritesV2"`
	WatchedPorts []interface{} `plist:"watchedPorts"`
}

// loadLegacy reads the GUI's plist preferences for migration to the shared JSON store
func loadLegacy() *Config {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil
	}

	path := filepath.Join(home, plistPath)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil
	}

	return parsePlistConfig(data)
}

func parsePlistConfig(data []byte) *Config {
	var plistCfg plistConfig
	if _, err := plist.Unmarshal(data, &plistCfg); err != nil {
		return nil
	}

	cfg := &Config{
		Favorites:    plistCfg.FavoritesV2,
		WatchedPorts: []WatchedPort{},
	}

	for _, item := range plistCfg.WatchedPorts {
		if wp, ok := watchedPortFromPlist(item); ok {
			cfg.WatchedPorts = append(cfg.WatchedPorts, wp)
		}
	}

	return cfg
}

// watchedPortFromPlist decodes one watchedPorts entry. The GUI has stored
// them both as dictionaries and as JSON strings.
func watchedPortFromPlist(item interface{}) (WatchedPort, bool) {
	var wp WatchedPort
	switch v := item.(type) {
	case map[string]interface{}:
		wp.ID, _ = v["id"].(string)
		switch port := v["port"].(type) {
		case uint64:
			wp.Port = int(port)
		case int64:
			wp.Port = int(port)
		}
		wp.NotifyOnStart, _ = v["notifyOnStart"].(bool)
		wp.NotifyOnStop, _ = v["notifyOnStop"].(bool)
	case string:
		if err := json.Unmarshal([]byte(v), &wp); err != nil {
			return WatchedPort{}, false
		}
	default:
		return WatchedPort{}, false
	}
	return wp, wp.Port > 0
}
