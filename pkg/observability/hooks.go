// Package observability lets the solver, cache and HTTP server report what
// they do without depending on a metrics or logging backend.
//
// Libraries call the registered hooks:
//
//	observability.Pipeline().OnSolveStart(ctx, mode, count)
//	// ... solve ...
//	observability.Pipeline().OnSolveComplete(ctx, mode, pass, took)
//
// and the binary decides where events go:
//
//	observability.SetAll(observability.NewCounters(observability.NewLogHooks(logger)))
//
// Until something is registered every hook is a no-op.
package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// =============================================================================
// Hook Interfaces
// =============================================================================

// PipelineHooks receives solve and render events from pipeline.Runner.
type PipelineHooks interface {
	OnSolveStart(ctx context.Context, mode string, count int)
	OnSolveComplete(ctx context.Context, mode, pass string, duration time.Duration)
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// CacheHooks receives lookups and writes. keyType is "layout" or "artifact".
type CacheHooks interface {
	OnCacheHit(ctx context.Context, keyType string)
	OnCacheMiss(ctx context.Context, keyType string)
	OnCacheSet(ctx context.Context, keyType string, size int)
}

// HTTPHooks receives one OnRequest and one OnResponse per served request.
type HTTPHooks interface {
	OnRequest(ctx context.Context, method, path string)
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// Hooks is implemented by sinks that want every event, such as [LogHooks]
// and [Counters].
type Hooks interface {
	PipelineHooks
	CacheHooks
	HTTPHooks
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPipelineHooks ignores every pipeline event. Embed it to implement
// only some methods.
type NoopPipelineHooks struct{}

func (NoopPipelineHooks) OnSolveStart(context.Context, string, int)                        {}
func (NoopPipelineHooks) OnSolveComplete(context.Context, string, string, time.Duration)   {}
func (NoopPipelineHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopPipelineHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopCacheHooks ignores every cache event.
type NoopCacheHooks struct{}

func (NoopCacheHooks) OnCacheHit(context.Context, string)      {}
func (NoopCacheHooks) OnCacheMiss(context.Context, string)     {}
func (NoopCacheHooks) OnCacheSet(context.Context, string, int) {}

// NoopHTTPHooks ignores every HTTP event.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Registry
// =============================================================================

// registry is replaced wholesale on every change, so readers load a
// consistent set with a single atomic read.
type registry struct {
	pipeline PipelineHooks
	cache    CacheHooks
	http     HTTPHooks
}

var current atomic.Pointer[registry]

func init() { Reset() }

func update(fn func(*registry)) {
	for {
		old := current.Load()
		next := *old
		fn(&next)
		if current.CompareAndSwap(old, &next) {
			return
		}
	}
}

// SetPipelineHooks registers pipeline hooks. nil is ignored.
func SetPipelineHooks(h PipelineHooks) {
	if h != nil {
		update(func(r *registry) { r.pipeline = h })
	}
}

// SetCacheHooks registers cache hooks. nil is ignored.
func SetCacheHooks(h CacheHooks) {
	if h != nil {
		update(func(r *registry) { r.cache = h })
	}
}

// SetHTTPHooks registers HTTP hooks. nil is ignored.
func SetHTTPHooks(h HTTPHooks) {
	if h != nil {
		update(func(r *registry) { r.http = h })
	}
}

// SetAll registers h for every event kind. nil is ignored.
func SetAll(h Hooks) {
	if h != nil {
		current.Store(&registry{pipeline: h, cache: h, http: h})
	}
}

// Pipeline returns the registered pipeline hooks.
func Pipeline() PipelineHooks { return current.Load().pipeline }

// Cache returns the registered cache hooks.
func Cache() CacheHooks { return current.Load().cache }

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks { return current.Load().http }

// Reset restores the no-op hooks.
func Reset() {
	current.Store(&registry{
		pipeline: NoopPipelineHooks{},
		cache:    NoopCacheHooks{},
		http:     NoopHTTPHooks{},
	})
}
