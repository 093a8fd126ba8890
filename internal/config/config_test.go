package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.MapWidth != 80 || cfg.Game.MapHeight != 45 {
		t.Errorf("default map = %dx%d, want 80x45", cfg.Game.MapWidth, cfg.Game.MapHeight)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("default log level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "glaive.toml")
	body := `
[game]
map_width = 60
fov_radius = 12

[logging]
format = "json"
`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Game.MapWidth != 60 {
		t.Errorf("map_width = %d, want 60", cfg.Game.MapWidth)
	}
	if cfg.Game.FOVRadius != 12 {
		t.Errorf("fov_radius = %d, want 12", cfg.Game.FOVRadius)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Logging.Format)
	}
	// Untouched sections keep their defaults.
	if cfg.Game.MapHeight != 45 {
		t.Errorf("map_height = %d, want default 45", cfg.Game.MapHeight)
	}
	if cfg.Server.BindAddress != "0.0.0.0:2222" {
		t.Errorf("bind_address = %q, want default", cfg.Server.BindAddress)
	}
}

func TestLoadRejectsMalformedTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.toml")
	if err := os.WriteFile(path, []byte("[game\nmap_width = "), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("malformed TOML did not error")
	}
}
