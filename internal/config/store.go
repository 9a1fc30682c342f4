package config

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

const (
	configDir  = ".portkiller"
	configFile = "config.json"
)

// SharedConfig is the on-disk form shared between the CLI and the GUI.
// Both lists are always written, even when empty.
type SharedConfig struct {
	Favorites    []int         `json:"favorites"`
	WatchedPorts []WatchedPort `json:"watchedPorts"`
}

type sharedStore struct {
	path string
	mu   sync.RWMutex
}

// NewSharedStore creates a new shared config store at ~/.portkiller/config.json
func NewSharedStore() (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}
	return newSharedStoreAt(filepath.Join(home, configDir))
}

func newSharedStoreAt(dir string) (*sharedStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	return &sharedStore{path: filepath.Join(dir, configFile)}, nil
}

func (s *sharedStore) Load() (*Config, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return readJSONConfig(s.path)
}

func (s *sharedStore) Save(cfg *Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeJSONConfig(s.path, cfg)
}

// shared returns cfg's on-disk form with nil lists replaced by empty ones.
func (c *Config) shared() SharedConfig {
	sc := SharedConfig{Favorites: c.Favorites, WatchedPorts: c.WatchedPorts}
	if sc.Favorites == nil {
		sc.Favorites = []int{}
	}
	if sc.WatchedPorts == nil {
		sc.WatchedPorts = []WatchedPort{}
	}
	return sc
}

func writeJSONConfig(path string, cfg *Config) error {
	data, err := json.MarshalIndent(cfg.shared(), "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// readJSONConfig loads a config file. A missing file is an empty config.
func readJSONConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return emptyConfig(), nil
	}
	if err != nil {
		return nil, err
	}

	var sc SharedConfig
	if err := json.Unmarshal(data, &sc); err != nil {
		return nil, err
	}
	sc = (&Config{Favorites: sc.Favorites, WatchedPorts: sc.WatchedPorts}).shared()
	return &Config{Favorites: sc.Favorites, WatchedPorts: sc.WatchedPorts}, nil
}
