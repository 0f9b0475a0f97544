// Package config loads tilegrid settings from TOML or YAML files.
//
// Settings are layered: built-in defaults, then the config file, then
// command-line flags (applied by the CLI). The file format follows the
// extension: .toml, or .yaml/.yml.
//
//	width  = 300
//	height = 500
//	count  = 7
//	aspect = "5:8"
//	mode   = "best"
//
//	[cache.redis]
//	addr = "localhost:6379"
//
// The same files are what `tilegrid watch` re-solves on every change.
package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
)

// Config is the full set of file-configurable settings.
type Config struct {
	Width    float64  `toml:"width" yaml:"width"`
	Height   float64  `toml:"height" yaml:"height"`
	Count    int      `toml:"count" yaml:"count"`
	Aspect   string   `toml:"aspect" yaml:"aspect"`
	Mode     string   `toml:"mode" yaml:"mode"`
	Fixed    int      `toml:"fixed" yaml:"fixed"`
	Order    string   `toml:"order" yaml:"order"`
	Margin   float64  `toml:"margin" yaml:"margin"`
	Padding  float64  `toml:"padding" yaml:"padding"`
	Centered bool     `toml:"centered" yaml:"centered"`
	Formats  []string `toml:"formats" yaml:"formats"`
	Style    string   `toml:"style" yaml:"style"`
	Output   string   `toml:"output" yaml:"output"`

	Cache  CacheConfig  `toml:"cache" yaml:"cache"`
	Server ServerConfig `toml:"server" yaml:"server"`
}

// CacheConfig selects and tunes the layout cache.
// Namespace scopes every cache key, whatever the backend.
type CacheConfig struct {
	Dir       string      `toml:"dir" yaml:"dir"`
	TTL       string      `toml:"ttl" yaml:"ttl"`
	Namespace string      `toml:"namespace" yaml:"namespace"`
	Redis     RedisConfig `toml:"redis" yaml:"redis"`
}

// RedisConfig enables the Redis cache when Addr is set. An empty Prefix
// means "tilegrid:".
type RedisConfig struct {
	Addr     string `toml:"addr" yaml:"addr"`
	Password string `toml:"password" yaml:"password"`
	DB       int    `toml:"db" yaml:"db"`
	Prefix   string `toml:"prefix" yaml:"prefix"`
}

// ServerConfig configures `tilegrid serve`.
type ServerConfig struct {
	Addr          string `toml:"addr" yaml:"addr"`
	MongoURI      string `toml:"mongo_uri" yaml:"mongo_uri"`
	MongoDatabase string `toml:"mongo_database" yaml:"mongo_database"`
	StoreDir      string `toml:"store_dir" yaml:"store_dir"`
}

// DefaultServerAddr is the listen address when none is configured.
const DefaultServerAddr = ":8080"

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Width:   pipeline.DefaultWidth,
		Height:  pipeline.DefaultHeight,
		Count:   1,
		Aspect:  pipeline.DefaultAspect,
		Mode:    "best",
		Formats: []string{pipeline.FormatSVG},
		Style:   pipeline.DefaultStyle,
		Server:  ServerConfig{Addr: DefaultServerAddr},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/tilegrid/config.toml (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "tilegrid", "config.toml"), nil
}

// Load reads path on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New(errors.ErrCodeFileNotFound, "config file %s not found", path)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, filepath.Ext(path))
}

// LoadDefault reads the default config file, or returns the defaults if it
// does not exist.
func LoadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), nil
	}
	cfg, err := Load(path)
	if errors.Is(err, errors.ErrCodeFileNotFound) {
		return Default(), nil
	}
	return cfg, err
}

// Parse decodes data in the format named by ext (".toml", ".yaml", ".yml")
// on top of the defaults.
func Parse(data []byte, ext string) (*Config, error) {
	cfg := Default()
	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.NewDecoder(bytes.NewReader(data)).Decode(cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse toml config")
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "parse yaml config")
		}
	default:
		return nil, errors.New(errors.ErrCodeUnsupported, "unsupported config format %q (use .toml, .yaml or .yml)", ext)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if _, err := c.CacheTTL(); err != nil {
		return err
	}
	opts := c.Options()
	return opts.ValidateAndSetDefaults()
}

// CacheTTL parses Cache.TTL. An empty value means the cache's own defaults.
func (c *Config) CacheTTL() (time.Duration, error) {
	if c.Cache.TTL == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Cache.TTL)
	if err != nil || d < 0 {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid cache ttl %q", c.Cache.TTL)
	}
	return d, nil
}

// Options converts the layout and render settings to pipeline options.
func (c *Config) Options() pipeline.Options {
	return pipeline.Options{
		Width:    c.Width,
		Height:   c.Height,
		Count:    c.Count,
		Aspect:   c.Aspect,
		Mode:     c.Mode,
		Fixed:    c.Fixed,
		Order:    c.Order,
		Margin:   c.Margin,
		Padding:  c.Padding,
		Centered: c.Centered,
		Formats:  append([]string(nil), c.Formats...),
		Style:    c.Style,
	}
}

// IsConfigFile reports whether path has a supported config extension.
func IsConfigFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".yaml", ".yml":
		return true
	}
	return false
}
