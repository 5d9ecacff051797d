package persist

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/log"

	"github.com/flowcanvas/flowcanvas/pkg/observability"
)

// DefaultSaveDelay is the coalescing window for scheduled saves.
const DefaultSaveDelay = 500 * time.Millisecond

// Writer coalesces high-frequency save requests into single deferred writes.
//
// Schedule replaces any pending write and restarts the delay timer, so a
// burst of mutations (a continuous drag) produces exactly one storage write
// carrying the final state. Close flushes whatever is still pending.
//
// The first failed write latches the writer into degraded mode: the editor
// keeps working in memory and no further write attempts are made. Failures
// are logged, never surfaced to interactive operations.
type Writer struct {
	kv     KV
	key    string
	delay  time.Duration
	logger *log.Logger

	mu       sync.Mutex
	timer    *time.Timer
	pending  []byte
	degraded bool
	closed   bool
}

// NewWriter creates a coalescing writer over kv for the given key.
// A non-positive delay falls back to DefaultSaveDelay; a nil logger falls
// back to log.Default().
func NewWriter(kv KV, key string, delay time.Duration, logger *log.Logger) *Writer {
	if delay <= 0 {
		delay = DefaultSaveDelay
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Writer{kv: kv, key: key, delay: delay, logger: logger}
}

// Schedule queues data to be written after the coalescing delay, cancelling
// and rescheduling any write already pending (last-state-wins). Calls after
// degradation or Close are silently dropped.
func (w *Writer) Schedule(data []byte) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.degraded || w.closed {
		return
	}

	w.pending = data
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.delay, w.fire)
	observability.Persist().OnScheduled()
}

// fire runs on the timer goroutine and writes the pending payload.
func (w *Writer) fire() {
	w.mu.Lock()
	data := w.pending
	w.pending = nil
	w.timer = nil
	skip := data == nil || w.degraded || w.closed
	w.mu.Unlock()

	if skip {
		return
	}
	w.write(data)
}

// write performs one storage write and latches degraded mode on failure.
func (w *Writer) write(data []byte) {
	start := time.Now()
	err := w.kv.Set(context.Background(), w.key, data)
	observability.Persist().OnWrite(len(data), time.Since(start), err)
	if err == nil {
		return
	}

	w.mu.Lock()
	first := !w.degraded
	w.degraded = true
	w.pending = nil
	w.mu.Unlock()

	if first {
		observability.Persist().OnDegraded(err)
		w.logger.Warn("persistence unavailable, continuing in memory only", "err", err)
	}
}

// Cancel drops any pending payload and stops the timer without writing.
// Callers use it when the scheduled state must not reach storage, e.g. when
// the stored document is being deleted outright.
func (w *Writer) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
}

// Flush writes any pending payload immediately, bypassing the delay. It is
// the only writer operation that reports storage errors, for callers like
// explicit export commands that want to know.
func (w *Writer) Flush(ctx context.Context) error {
	w.mu.Lock()
	data := w.pending
	w.pending = nil
	if w.timer != nil {
		w.timer.Stop()
		w.timer = nil
	}
	degraded := w.degraded || w.closed
	w.mu.Unlock()

	if data == nil || degraded {
		return nil
	}

	start := time.Now()
	err := w.kv.Set(ctx, w.key, data)
	observability.Persist().OnWrite(len(data), time.Since(start), err)
	if err != nil {
		w.mu.Lock()
		first := !w.degraded
		w.degraded = true
		w.mu.Unlock()
		if first {
			observability.Persist().OnDegraded(err)
			w.logger.Warn("persistence unavailable, continuing in memory only", "err", err)
		}
		return err
	}
	return nil
}

// Degraded reports whether the writer has latched into in-memory-only mode.
func (w *Writer) Degraded() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.degraded
}

// Close stops the timer, flushes any pending payload, and marks the writer
// closed. Subsequent Schedule calls are dropped.
func (w *Writer) Close() error {
	err := w.Flush(context.Background())
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
	return err
}
