// Package cli implements the tilegrid command-line interface.
//
// # Commands
//
//   - solve: compute the grid for a container, count and aspect ratio
//   - render: write the layout as SVG, PNG, PDF, JSON or text
//   - watch: re-solve a config file every time it changes
//   - serve: run the HTTP and websocket API
//   - demo: interactive terminal demo (add/remove tiles, resize to relayout)
//   - cache: inspect and clear the layout cache
//
// Settings are read from the config file (--config, or the default path if
// present) and overridden by flags.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/tilegrid/pkg/buildinfo"
	"github.com/matzehuels/tilegrid/pkg/cache"
	"github.com/matzehuels/tilegrid/pkg/config"
	"github.com/matzehuels/tilegrid/pkg/errors"
	"github.com/matzehuels/tilegrid/pkg/observability"
	"github.com/matzehuels/tilegrid/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

// appName is the application name used for display.
const appName = "tilegrid"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	// ConfigPath is set by --config. Empty means the default path, which
	// may be absent.
	ConfigPath string
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Tilegrid packs fixed-aspect tiles into a container",
		Long: `Tilegrid computes the grid (columns x rows) and tile size that fit a number
of equally sized, fixed-aspect-ratio tiles into a rectangular container with
the largest possible tiles, then places and renders them.`,
		Version:      buildinfo.Get().Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.ConfigPath, "config", "", "config file (.toml, .yaml)")

	root.AddCommand(c.solveCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.watchCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.demoCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Config
// =============================================================================

// loadConfig reads --config, falling back to the default config file.
func (c *CLI) loadConfig() (*config.Config, error) {
	if c.ConfigPath != "" {
		return config.Load(c.ConfigPath)
	}
	return config.LoadDefault()
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use. Solver and cache events
// are logged at debug level.
func (c *CLI) newRunner(ctx context.Context, cfg *config.Config, noCache bool) (*pipeline.Runner, error) {
	hooks := observability.NewLogHooks(c.Logger)
	observability.SetPipelineHooks(hooks)
	observability.SetCacheHooks(hooks)

	backend, err := c.newCache(ctx, cfg, noCache)
	if err != nil {
		return nil, err
	}
	var keyer cache.Keyer
	if scope := keyScope(cfg); scope != "" {
		keyer = cache.NewScopedKeyer(nil, scope)
	}
	runner := pipeline.NewRunner(backend, keyer, c.Logger)
	if ttl, err := cfg.CacheTTL(); err == nil {
		runner.TTL = ttl
	}
	return runner, nil
}

// newCache picks Redis when configured, the file cache otherwise. A file
// cache that cannot be created disables caching instead of failing.
func (c *CLI) newCache(ctx context.Context, cfg *config.Config, noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	if r := cfg.Cache.Redis; r.Addr != "" {
		rc, err := cache.NewRedisCache(ctx, redisOptions(r))
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "connect to redis at %s", r.Addr)
		}
		return rc, nil
	}

	dir, err := cacheDir(cfg)
	if err != nil {
		c.Logger.Debug("file cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		c.Logger.Debug("file cache disabled", "error", err)
		return cache.NewNullCache(), nil
	}
	return fc, nil
}

// cacheDir returns the configured cache directory or the platform default.
func cacheDir(cfg *config.Config) (string, error) {
	if cfg != nil && cfg.Cache.Dir != "" {
		return cfg.Cache.Dir, nil
	}
	return cache.DefaultDir()
}

// keyScope is the key prefix for cache.namespace, or "" when unset.
func keyScope(cfg *config.Config) string {
	if cfg == nil || cfg.Cache.Namespace == "" {
		return ""
	}
	return cfg.Cache.Namespace + ":"
}

func redisOptions(r config.RedisConfig) cache.RedisOptions {
	return cache.RedisOptions{
		Addr:     r.Addr,
		Password: r.Password,
		DB:       r.DB,
		Prefix:   r.Prefix,
	}
}
