package observability

import (
	"context"
	"sync"
	"time"
)

// Counters tallies events in memory and forwards each one to Next when set.
// The server serves [Counters.Snapshot] at /v1/stats.
type Counters struct {
	Next Hooks

	mu           sync.Mutex
	started      time.Time
	solves       map[string]int64
	solveTime    time.Duration
	renders      int64
	renderErrors int64
	hits         map[string]int64
	misses       map[string]int64
	requests     int64
	statuses     map[int]int64
}

// NewCounters returns zeroed counters that forward to next (may be nil).
func NewCounters(next Hooks) *Counters {
	return &Counters{
		Next:     next,
		started:  time.Now(),
		solves:   map[string]int64{},
		hits:     map[string]int64{},
		misses:   map[string]int64{},
		statuses: map[int]int64{},
	}
}

// Stats is a point-in-time copy of [Counters].
type Stats struct {
	Uptime       string           `json:"uptime"`
	Solves       map[string]int64 `json:"solves"`
	MeanSolve    string           `json:"mean_solve"`
	Renders      int64            `json:"renders"`
	RenderErrors int64            `json:"render_errors"`
	CacheHits    map[string]int64 `json:"cache_hits"`
	CacheMisses  map[string]int64 `json:"cache_misses"`
	Requests     int64            `json:"requests"`
	Statuses     map[int]int64    `json:"statuses"`
}

// Snapshot copies the current counts.
func (c *Counters) Snapshot() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	var total int64
	for _, n := range c.solves {
		total += n
	}
	var mean time.Duration
	if total > 0 {
		mean = c.solveTime / time.Duration(total)
	}
	return Stats{
		Uptime:       time.Since(c.started).Round(time.Second).String(),
		Solves:       clone(c.solves),
		MeanSolve:    mean.String(),
		Renders:      c.renders,
		RenderErrors: c.renderErrors,
		CacheHits:    clone(c.hits),
		CacheMisses:  clone(c.misses),
		Requests:     c.requests,
		Statuses:     clone(c.statuses),
	}
}

func clone[K comparable](m map[K]int64) map[K]int64 {
	out := make(map[K]int64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func (c *Counters) count(fn func()) {
	c.mu.Lock()
	fn()
	c.mu.Unlock()
}

func (c *Counters) OnSolveStart(ctx context.Context, mode string, count int) {
	if c.Next != nil {
		c.Next.OnSolveStart(ctx, mode, count)
	}
}

func (c *Counters) OnSolveComplete(ctx context.Context, mode, pass string, d time.Duration) {
	c.count(func() {
		c.solves[pass]++
		c.solveTime += d
	})
	if c.Next != nil {
		c.Next.OnSolveComplete(ctx, mode, pass, d)
	}
}

func (c *Counters) OnRenderStart(ctx context.Context, formats []string) {
	if c.Next != nil {
		c.Next.OnRenderStart(ctx, formats)
	}
}

func (c *Counters) OnRenderComplete(ctx context.Context, formats []string, d time.Duration, err error) {
	c.count(func() {
		c.renders++
		if err != nil {
			c.renderErrors++
		}
	})
	if c.Next != nil {
		c.Next.OnRenderComplete(ctx, formats, d, err)
	}
}

func (c *Counters) OnCacheHit(ctx context.Context, keyType string) {
	c.count(func() { c.hits[keyType]++ })
	if c.Next != nil {
		c.Next.OnCacheHit(ctx, keyType)
	}
}

func (c *Counters) OnCacheMiss(ctx context.Context, keyType string) {
	c.count(func() { c.misses[keyType]++ })
	if c.Next != nil {
		c.Next.OnCacheMiss(ctx, keyType)
	}
}

func (c *Counters) OnCacheSet(ctx context.Context, keyType string, size int) {
	if c.Next != nil {
		c.Next.OnCacheSet(ctx, keyType, size)
	}
}

func (c *Counters) OnRequest(ctx context.Context, method, path string) {
	c.count(func() { c.requests++ })
	if c.Next != nil {
		c.Next.OnRequest(ctx, method, path)
	}
}

func (c *Counters) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	c.count(func() { c.statuses[status]++ })
	if c.Next != nil {
		c.Next.OnResponse(ctx, method, path, status, d)
	}
}

var _ Hooks = (*Counters)(nil)
