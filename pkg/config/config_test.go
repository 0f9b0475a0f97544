package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/matzehuels/tilegrid/pkg/errors"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Width != 300 || cfg.Height != 500 || cfg.Count != 1 || cfg.Aspect != "5:8" {
		t.Errorf("Default() = %+v", cfg)
	}
	if cfg.Server.Addr != DefaultServerAddr {
		t.Errorf("Server.Addr = %q, want %q", cfg.Server.Addr, DefaultServerAddr)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: "grid.toml",
			content: `
width = 320
height = 480
count = 10
aspect = "1:1"
mode = "columns"
fixed = 2
padding = 5
centered = true
formats = ["svg", "json"]

[cache]
ttl = "1h"

[cache.redis]
addr = "localhost:6379"
db = 2

[server]
addr = ":9000"
mongo_uri = "mongodb://localhost:27017"
`,
		},
		{
			name: "yaml",
			file: "grid.yaml",
			content: `
width: 320
height: 480
count: 10
aspect: "1:1"
mode: columns
fixed: 2
padding: 5
centered: true
formats: [svg, json]
cache:
  ttl: 1h
  redis:
    addr: localhost:6379
    db: 2
server:
  addr: ":9000"
  mongo_uri: mongodb://localhost:27017
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if cfg.Width != 320 || cfg.Height != 480 || cfg.Count != 10 {
				t.Errorf("container/count = %gx%g/%d, want 320x480/10", cfg.Width, cfg.Height, cfg.Count)
			}
			if cfg.Aspect != "1:1" || cfg.Mode != "columns" || cfg.Fixed != 2 {
				t.Errorf("aspect/mode/fixed = %s/%s/%d", cfg.Aspect, cfg.Mode, cfg.Fixed)
			}
			if cfg.Padding != 5 || !cfg.Centered {
				t.Errorf("padding/centered = %g/%v", cfg.Padding, cfg.Centered)
			}
			if len(cfg.Formats) != 2 || cfg.Formats[1] != "json" {
				t.Errorf("Formats = %v", cfg.Formats)
			}
			if cfg.Cache.Redis.Addr != "localhost:6379" || cfg.Cache.Redis.DB != 2 {
				t.Errorf("Redis = %+v", cfg.Cache.Redis)
			}
			if ttl, _ := cfg.CacheTTL(); ttl != time.Hour {
				t.Errorf("CacheTTL() = %v, want 1h", ttl)
			}
			if cfg.Server.Addr != ":9000" || cfg.Server.MongoURI == "" {
				t.Errorf("Server = %+v", cfg.Server)
			}
			// Unset fields keep their defaults.
			if cfg.Style != "simple" {
				t.Errorf("Style = %q, want default simple", cfg.Style)
			}

			opts := cfg.Options()
			if opts.Count != 10 || opts.Fixed != 2 || opts.Mode != "columns" {
				t.Errorf("Options() = %+v", opts)
			}
		})
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name string
		path func(t *testing.T) string
		code errors.Code
	}{
		{"missing", func(t *testing.T) string { return filepath.Join(t.TempDir(), "nope.toml") }, errors.ErrCodeFileNotFound},
		{"bad extension", func(t *testing.T) string { return writeFile(t, "grid.ini", "width=1") }, errors.ErrCodeUnsupported},
		{"bad toml", func(t *testing.T) string { return writeFile(t, "grid.toml", "width = [") }, errors.ErrCodeInvalidInput},
		{"bad yaml", func(t *testing.T) string { return writeFile(t, "grid.yml", "width: [1") }, errors.ErrCodeInvalidInput},
		{"invalid aspect", func(t *testing.T) string { return writeFile(t, "grid.toml", `aspect = "tall"`) }, errors.ErrCodeInvalidAspect},
		{"negative count", func(t *testing.T) string { return writeFile(t, "grid.yaml", "count: -3") }, errors.ErrCodeInvalidCount},
		{"bad ttl", func(t *testing.T) string { return writeFile(t, "grid.toml", "[cache]\nttl = \"soon\"") }, errors.ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.path(t))
			if !errors.Is(err, tt.code) {
				t.Errorf("Load() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestLoadDefaultMissing(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	cfg, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if cfg.Count != 1 {
		t.Errorf("LoadDefault() should return defaults, got %+v", cfg)
	}
}

func TestIsConfigFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"a.toml", true},
		{"a.YAML", true},
		{"dir/a.yml", true},
		{"a.json", false},
		{"toml", false},
	}
	for _, tt := range tests {
		if got := IsConfigFile(tt.path); got != tt.want {
			t.Errorf("IsConfigFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}
