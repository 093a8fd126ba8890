// Package config loads TOML settings with sane defaults for every field, so
// a missing or partial file still yields a playable game.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Server  ServerConfig  `toml:"server"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	MapWidth     int   `toml:"map_width"`
	MapHeight    int   `toml:"map_height"`
	MaxRooms     int   `toml:"max_rooms"`
	RoomMin      int   `toml:"room_min"`
	RoomMax      int   `toml:"room_max"`
	FOVRadius    int   `toml:"fov_radius"`
	MessageLimit int   `toml:"message_limit"`
	Seed         int64 `toml:"seed"` // 0 seeds from the clock
}

type ServerConfig struct {
	BindAddress string `toml:"bind_address"`
	HostKeyPath string `toml:"host_key_path"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty logs to stderr
}

// Load reads the config at path over the defaults. A missing file is not an
// error; callers get the defaults back.
func Load(path string) (*Config, error) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Game: GameConfig{
			MapWidth:     80,
			MapHeight:    45,
			MaxRooms:     12,
			RoomMin:      5,
			RoomMax:      11,
			FOVRadius:    8,
			MessageLimit: 100,
		},
		Server: ServerConfig{
			BindAddress: "0.0.0.0:2222",
			HostKeyPath: "host_key",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
