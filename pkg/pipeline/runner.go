package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilegrid/pkg/cache"
	"github.com/matzehuels/tilegrid/pkg/grid"
	"github.com/matzehuels/tilegrid/pkg/observability"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner holds no per-run state, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL overrides the default layout and artifact TTLs when non-zero.
	TTL time.Duration
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute runs layout and render with caching.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}

	result := &Result{}

	layoutStart := time.Now()
	l, layoutHit, err := r.LayoutWithCacheInfo(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("layout: %w", err)
	}
	result.Layout = l
	result.LayoutHash = LayoutHash(l)
	result.Stats.Tiles = len(l.Tiles)
	result.Stats.Capacity = l.Columns * l.Rows
	result.Stats.LayoutTime = time.Since(layoutStart)
	result.CacheInfo.LayoutHit = layoutHit

	r.Logger.Debug("computed layout",
		"grid", fmt.Sprintf("%dx%d", l.Columns, l.Rows),
		"pass", l.Pass,
		"cached", layoutHit,
		"duration", result.Stats.LayoutTime)

	renderStart := time.Now()
	artifacts, renderHit, err := r.RenderWithCacheInfo(ctx, l, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.Stats.RenderTime = time.Since(renderStart)
	result.CacheInfo.RenderHit = renderHit

	r.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"cached", renderHit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// LayoutWithCacheInfo solves a layout with caching and returns cache hit info.
func (r *Runner) LayoutWithCacheInfo(ctx context.Context, opts Options) (grid.Layout, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return grid.Layout{}, false, err
	}

	hooks := observability.Cache()
	cacheKey := r.Keyer.LayoutKey(opts.LayoutKeyOpts())

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, cacheKey); err == nil && hit {
			if cached, err := grid.UnmarshalLayout(data); err == nil {
				hooks.OnCacheHit(ctx, "layout")
				return cached, true, nil
			}
		} else if err != nil {
			opts.Logger.Warn("cache read failed", "error", err)
		}
		hooks.OnCacheMiss(ctx, "layout")
	}

	pipeHooks := observability.Pipeline()
	pipeHooks.OnSolveStart(ctx, opts.Mode, opts.Count)
	start := time.Now()
	l, err := GenerateLayout(opts)
	if err != nil {
		return grid.Layout{}, false, err
	}
	pipeHooks.OnSolveComplete(ctx, opts.Mode, l.Pass, time.Since(start))

	if data, err := grid.MarshalLayout(l); err == nil {
		if err := r.Cache.Set(ctx, cacheKey, data, r.ttl(cache.TTLLayout)); err == nil {
			hooks.OnCacheSet(ctx, "layout", len(data))
		}
	}
	return l, false, nil
}

// Layout is a convenience wrapper that discards the cache hit info.
func (r *Runner) Layout(ctx context.Context, opts Options) (grid.Layout, error) {
	l, _, err := r.LayoutWithCacheInfo(ctx, opts)
	return l, err
}

// RenderWithCacheInfo generates artifacts with caching and returns cache hit
// info. The hit flag is true only when every requested format was cached.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, l grid.Layout, opts Options) (map[string][]byte, bool, error) {
	r.applyLogger(&opts)
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, false, err
	}

	hooks := observability.Cache()
	layoutHash := LayoutHash(l)

	artifacts := make(map[string][]byte, len(opts.Formats))
	if !opts.Refresh {
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				hooks.OnCacheMiss(ctx, "artifact")
				break
			}
			hooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			return artifacts, true, nil
		}
	}

	pipeHooks := observability.Pipeline()
	pipeHooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	rendered, err := RenderFromLayout(ctx, l, opts)
	pipeHooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(layoutHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, r.ttl(cache.TTLArtifact)); err == nil {
			hooks.OnCacheSet(ctx, "artifact", len(data))
		}
	}
	return rendered, false, nil
}

// Render is a convenience wrapper that discards the cache hit info.
func (r *Runner) Render(ctx context.Context, l grid.Layout, opts Options) (map[string][]byte, error) {
	artifacts, _, err := r.RenderWithCacheInfo(ctx, l, opts)
	return artifacts, err
}

// LayoutHash returns the content hash of l, ignoring its storage ID.
func LayoutHash(l grid.Layout) string {
	l.ID = ""
	data, err := grid.MarshalLayout(l)
	if err != nil {
		return ""
	}
	return cache.Hash(data)
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) ttl(def time.Duration) time.Duration {
	if r.TTL > 0 {
		return r.TTL
	}
	return def
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
