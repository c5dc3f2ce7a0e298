// Package observability provides hooks for instrumenting the drawing core.
//
// The canvas controller emits an event for every state change it propagates.
// Consumers register hooks at startup to log, count, or trace those events
// without the core importing any particular backend.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define a hook interface for canvas events
//   - Provide a no-op default implementation
//   - Allow registration of a custom implementation at startup
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetCanvasHooks(&myCanvasHooks{})
//	    // ... run application
//	}
//
// The core calls hooks to emit events:
//
//	observability.Canvas().OnColorChanged("Purple", true)
package observability

import "sync"

// =============================================================================
// Canvas Hooks
// =============================================================================

// CanvasHooks receives events from the canvas controller.
type CanvasHooks interface {
	// OnColorChanged records a palette selection. delivered reports whether a
	// writable subscriber received the notification.
	OnColorChanged(color string, delivered bool)

	// OnPercentageChanged records a new slider percentage.
	OnPercentageChanged(percentage float64)

	// OnLineWidthChanged records the line width forwarded to the subscriber.
	OnLineWidthChanged(width float64, delivered bool)

	// OnWritableRegistered records a subscriber change. replaced reports
	// whether a previous subscriber was displaced.
	OnWritableRegistered(replaced bool)
}

// =============================================================================
// No-op Implementation
// =============================================================================

// NoopCanvasHooks is a no-op implementation of CanvasHooks.
type NoopCanvasHooks struct{}

func (NoopCanvasHooks) OnColorChanged(string, bool)      {}
func (NoopCanvasHooks) OnPercentageChanged(float64)      {}
func (NoopCanvasHooks) OnLineWidthChanged(float64, bool) {}
func (NoopCanvasHooks) OnWritableRegistered(bool)        {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	canvasHooks CanvasHooks = NoopCanvasHooks{}
	hooksMu     sync.RWMutex
)

// SetCanvasHooks registers custom canvas hooks.
// This should be called once at application startup before any controller is built.
func SetCanvasHooks(h CanvasHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		canvasHooks = h
	}
}

// Canvas returns the registered canvas hooks.
func Canvas() CanvasHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return canvasHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	canvasHooks = NoopCanvasHooks{}
}
