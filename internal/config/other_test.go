//go:build !darwin && !windows

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestLoadLegacyFromXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)

	if cfg := loadLegacy(); cfg == nil || !cfg.empty() {
		t.Fatalf("missing legacy file should load empty, got %+v", cfg)
	}

	path := filepath.Join(dir, "portkiller", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	data := `{"favorites":[3000,8080],"watchedPorts":[{"id":"A","port":5432,"notifyOnStart":true,"notifyOnStop":false}]}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := loadLegacy()
	if cfg == nil {
		t.Fatal("loadLegacy returned nil")
	}
	if !reflect.DeepEqual(cfg.Favorites, []int{3000, 8080}) {
		t.Fatalf("favorites = %v", cfg.Favorites)
	}
	want := []WatchedPort{{ID: "A", Port: 5432, NotifyOnStart: true}}
	if !reflect.DeepEqual(cfg.WatchedPorts, want) {
		t.Fatalf("watched = %+v", cfg.WatchedPorts)
	}
}
