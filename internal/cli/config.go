package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config selects the persistence backend and runtime options.
// Loaded from a TOML file:
//
//	backend = "file"          # file | memory | redis | mongo | none
//	save_delay_ms = 500
//
//	[file]
//	dir = "~/.local/share/flowcanvas"
//
//	[redis]
//	addr = "localhost:6379"
//	db = 0
//
//	[mongo]
//	uri = "mongodb://localhost:27017"
//	database = "flowcanvas"
//	collection = "documents"
//
//	[server]
//	addr = ":8480"
type Config struct {
	Backend     string `toml:"backend"`
	SaveDelayMS int    `toml:"save_delay_ms"`

	File struct {
		Dir string `toml:"dir"`
	} `toml:"file"`

	Redis struct {
		Addr     string `toml:"addr"`
		Password string `toml:"password"`
		DB       int    `toml:"db"`
	} `toml:"redis"`

	Mongo struct {
		URI        string `toml:"uri"`
		Database   string `toml:"database"`
		Collection string `toml:"collection"`
	} `toml:"mongo"`

	Server struct {
		Addr string `toml:"addr"`
	} `toml:"server"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	var cfg Config
	cfg.Backend = "file"
	cfg.SaveDelayMS = 500
	cfg.Redis.Addr = "localhost:6379"
	cfg.Mongo.URI = "mongodb://localhost:27017"
	cfg.Server.Addr = ":8480"
	return cfg
}

// LoadConfig reads the TOML config at path, or the default location when
// path is empty. A missing file is not an error - defaults apply.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		dir, err := configDir()
		if err != nil {
			return cfg, nil
		}
		path = filepath.Join(dir, "config.toml")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			return cfg, nil
		}
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
