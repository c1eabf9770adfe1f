// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout computation and viewport changes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// The layout orchestrator calls hooks to emit events:
//
//	observability.Layout().OnRecompute(reason, columns, tiles, duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from the layout orchestrator.
type LayoutHooks interface {
	// OnResize records a viewport width change.
	OnResize(width float64)

	// OnColumnsChanged records a change of the resolved column count.
	OnColumnsChanged(from, to int)

	// OnRecompute records a full layout run and why it happened.
	OnRecompute(reason string, columns, tiles int, duration time.Duration, err error)
}

// =============================================================================
// Sampling Hooks
// =============================================================================

// SamplingHooks receives events about height sampling.
type SamplingHooks interface {
	// OnReseed records that a fresh random source was created.
	OnReseed(seed uint64)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnResize(float64)                                  {}
func (NoopLayoutHooks) OnColumnsChanged(int, int)                         {}
func (NoopLayoutHooks) OnRecompute(string, int, int, time.Duration, error) {}

// NoopSamplingHooks is a no-op implementation of SamplingHooks.
type NoopSamplingHooks struct{}

func (NoopSamplingHooks) OnReseed(uint64) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks   LayoutHooks   = NoopLayoutHooks{}
	samplingHooks SamplingHooks = NoopSamplingHooks{}
	hooksMu       sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetSamplingHooks registers custom sampling hooks.
func SetSamplingHooks(h SamplingHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		samplingHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Sampling returns the registered sampling hooks.
func Sampling() SamplingHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return samplingHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	samplingHooks = NoopSamplingHooks{}
}
