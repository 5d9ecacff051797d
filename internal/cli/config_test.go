package cli

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Backend != "file" {
		t.Errorf("Backend = %q, want file", cfg.Backend)
	}
	if cfg.SaveDelayMS != 500 {
		t.Errorf("SaveDelayMS = %d, want 500", cfg.SaveDelayMS)
	}
	if cfg.Server.Addr != ":8480" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
backend = "redis"
save_delay_ms = 250

[redis]
addr = "cache.internal:6379"
db = 3

[server]
addr = ":9000"
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Backend != "redis" {
		t.Errorf("Backend = %q", cfg.Backend)
	}
	if cfg.SaveDelayMS != 250 {
		t.Errorf("SaveDelayMS = %d", cfg.SaveDelayMS)
	}
	if cfg.Redis.Addr != "cache.internal:6379" || cfg.Redis.DB != 3 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Server.Addr != ":9000" {
		t.Errorf("Server.Addr = %q", cfg.Server.Addr)
	}
	// Unspecified keys keep their defaults.
	if cfg.Mongo.URI != "mongodb://localhost:27017" {
		t.Errorf("Mongo.URI = %q, want default", cfg.Mongo.URI)
	}
}

func TestLoadConfigInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("backend = [not toml"), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Error("LoadConfig accepted invalid TOML")
	}
}

func TestByteCount(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "0 B"},
		{512, "512 B"},
		{1024, "1.0 KiB"},
		{1536, "1.5 KiB"},
		{2 * 1024 * 1024, "2.0 MiB"},
	}
	for _, tt := range tests {
		if got := byteCount(tt.in); got != tt.want {
			t.Errorf("byteCount(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
