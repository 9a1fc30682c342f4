//go:build darwin

package config

import "testing"

func TestParsePlistConfig(t *testing.T) {
	data := []byte(`<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
	<key>favoritesV2</key>
	<array><integer>3000</integer></array>
	<key>watchedPorts</key>
	<array>
		<dict>
			<key>id</key><string>ABC</string>
			<key>port</key><integer>8080</integer>
			<key>notifyOnStart</key><true/>
			<key>notifyOnStop</key><false/>
		</dict>
		<string>{"id":"DEF","port":5432,"notifyOnStart":false,"notifyOnStop":true}</string>
		<dict><key>port</key><integer>0</integer></dict>
	</array>
</dict>
</plist>`)

	cfg := parsePlistConfig(data)
	if cfg == nil {
		t.Fatal("parsePlistConfig returned nil")
	}
	if len(cfg.Favorites) != 1 || cfg.Favorites[0] != 3000 {
		t.Fatalf("favorites = %v", cfg.Favorites)
	}
	if len(cfg.WatchedPorts) != 2 {
		t.Fatalf("watched = %+v", cfg.WatchedPorts)
	}
	if wp := cfg.WatchedPorts[0]; wp.ID != "ABC" || wp.Port != 8080 || !wp.NotifyOnStart || wp.NotifyOnStop {
		t.Fatalf("unexpected dict entry: %+v", wp)
	}
	if wp := cfg.WatchedPorts[1]; wp.ID != "DEF" || wp.Port != 5432 || !wp.NotifyOnStop {
		t.Fatalf("unexpected string entry: %+v", wp)
	}
}
