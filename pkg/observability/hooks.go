// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about store mutations, history operations, and persistence
// writes.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    observability.SetPersistHooks(&myPersistHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Store().OnMutation("add_flow")
//	observability.Persist().OnWrite(len(data), duration, err)
package observability

import (
	"sync"
	"time"
)

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from the state container.
type StoreHooks interface {
	// OnMutation records a durable mutation by operation name.
	OnMutation(op string)

	// OnSnapshot records a checkpoint push and the resulting undo depth.
	OnSnapshot(undoDepth int)

	// OnUndo records an undo attempt and whether a snapshot was restored.
	OnUndo(ok bool)

	// OnRedo records a redo attempt and whether a snapshot was restored.
	OnRedo(ok bool)
}

// =============================================================================
// Persist Hooks
// =============================================================================

// PersistHooks receives events from the persistence layer.
type PersistHooks interface {
	// OnScheduled records a coalesced save being (re)scheduled.
	OnScheduled()

	// OnWrite records a completed write attempt to the persistence medium.
	OnWrite(size int, duration time.Duration, err error)

	// OnDegraded records the transition to in-memory-only operation after a
	// storage failure.
	OnDegraded(err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnMutation(string) {}
func (NoopStoreHooks) OnSnapshot(int)    {}
func (NoopStoreHooks) OnUndo(bool)       {}
func (NoopStoreHooks) OnRedo(bool)       {}

// NoopPersistHooks is a no-op implementation of PersistHooks.
type NoopPersistHooks struct{}

func (NoopPersistHooks) OnScheduled()                        {}
func (NoopPersistHooks) OnWrite(int, time.Duration, error)   {}
func (NoopPersistHooks) OnDegraded(error)                    {}

// =============================================================================
// Registration
// =============================================================================

var (
	mu           sync.RWMutex
	storeHooks   StoreHooks   = NoopStoreHooks{}
	persistHooks PersistHooks = NoopPersistHooks{}
)

// SetStoreHooks registers hooks for state container events.
// Pass nil to restore the no-op implementation.
func SetStoreHooks(h StoreHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopStoreHooks{}
	}
	storeHooks = h
}

// SetPersistHooks registers hooks for persistence events.
// Pass nil to restore the no-op implementation.
func SetPersistHooks(h PersistHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		h = NoopPersistHooks{}
	}
	persistHooks = h
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	mu.RLock()
	defer mu.RUnlock()
	return storeHooks
}

// Persist returns the registered persistence hooks.
func Persist() PersistHooks {
	mu.RLock()
	defer mu.RUnlock()
	return persistHooks
}
