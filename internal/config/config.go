package config

import (
	"sort"
	"strings"

	"github.com/google/uuid"
)

// WatchedPort represents a port being watched for state changes
type WatchedPort struct {
	ID            string `json:"id" plist:"id"`
	Port          int    `json:"port" plist:"port"`
	NotifyOnStart bool   `json:"notifyOnStart" plist:"notifyOnStart"`
	NotifyOnStop  bool   `json:"notifyOnStop" plist:"notifyOnStop"`
}

// Config holds CLI configuration synced with GUI
type Config struct {
	Favorites    []int         `json:"favorites" plist:"favoritesV2"`
	WatchedPorts []WatchedPort `json:"watchedPorts" plist:"watchedPorts"`
}

// Store interface for config persistence
type Store interface {
	Load() (*Config, error)
	Save(cfg *Config) error
}

// NewStore returns the shared config store, migrating legacy settings
// into it the first time it is empty.
func NewStore() Store {
	store, err := NewSharedStore()
	if err != nil {
		// Fallback: return a store that will return empty config
		return &fallbackStore{}
	}

	migrate(store, loadLegacy())
	return store
}

// migrate copies legacy into store when store holds nothing yet.
func migrate(store Store, legacy *Config) bool {
	if legacy == nil || legacy.empty() {
		return false
	}
	cfg, err := store.Load()
	if err != nil || !cfg.empty() {
		return false
	}
	return store.Save(legacy) == nil
}

func emptyConfig() *Config {
	return &Config{Favorites: []int{}, WatchedPorts: []WatchedPort{}}
}

type fallbackStore struct{}

func (f *fallbackStore) Load() (*Config, error) {
	return emptyConfig(), nil
}

func (f *fallbackStore) Save(cfg *Config) error {
	return nil
}

func (c *Config) empty() bool {
	return len(c.Favorites) == 0 && len(c.WatchedPorts) == 0
}

// IsFavorite checks if a port is in favorites
func (c *Config) IsFavorite(port int) bool {
	for _, p := range c.Favorites {
		if p == port {
			return true
		}
	}
	return false
}

// IsWatched checks if a port is being watched
func (c *Config) IsWatched(port int) bool {
	for _, w := range c.WatchedPorts {
		if w.Port == port {
			return true
		}
	}
	return false
}

// AddFavorite adds a port to favorites
func (c *Config) AddFavorite(port int) {
	if !c.IsFavorite(port) {
		c.Favorites = append(c.Favorites, port)
	}
}

// RemoveFavorite removes a port from favorites
func (c *Config) RemoveFavorite(port int) {
	filtered := []int{}
	for _, p := range c.Favorites {
		if p != port {
			filtered = append(filtered, p)
		}
	}
	c.Favorites = filtered
}

// ToggleFavorite flips the favorite state of port and reports the new state.
func (c *Config) ToggleFavorite(port int) bool {
	if c.IsFavorite(port) {
		c.RemoveFavorite(port)
		return false
	}
	c.AddFavorite(port)
	return true
}

// AddWatched adds a port to watched list
func (c *Config) AddWatched(port int) {
	if !c.IsWatched(port) {
		c.WatchedPorts = append(c.WatchedPorts, WatchedPort{
			ID:            generateID(),
			Port:          port,
			NotifyOnStart: true,
			NotifyOnStop:  true,
		})
	}
}

// RemoveWatched removes a port from watched list
func (c *Config) RemoveWatched(port int) {
	filtered := []WatchedPort{}
	for _, w := range c.WatchedPorts {
		if w.Port != port {
			filtered = append(filtered, w)
		}
	}
	c.WatchedPorts = filtered
}

// TrackedPorts returns favorites and watched ports, deduplicated and sorted.
func (c *Config) TrackedPorts() []int {
	seen := make(map[int]bool)
	var ports []int
	add := func(p int) {
		if !seen[p] {
			seen[p] = true
			ports = append(ports, p)
		}
	}
	for _, p := range c.Favorites {
		add(p)
	}
	for _, w := range c.WatchedPorts {
		add(w.Port)
	}
	sort.Ints(ports)
	return ports
}

// generateID creates an uppercase UUID v4, the form the macOS app writes.
func generateID() string {
	return strings.ToUpper(uuid.NewString())
}
