// Package history implements bounded undo/redo over document snapshots.
//
// A History holds two stacks of immutable deep-copied [diagram.Document]
// snapshots. Callers checkpoint explicitly: one Save call per logical edit,
// before the mutation begins, never one per intermediate value of a
// continuous gesture. Undo and redo are symmetric stack exchanges, so an
// undo immediately followed by a redo reproduces the pre-undo state exactly,
// including optional and absent fields.
//
// Capacity is fixed: once the undo stack is full, each new checkpoint evicts
// the single oldest snapshot (FIFO), deliberately bounding memory over
// unlimited history depth.
package history

import (
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
)

// DefaultCapacity is the undo stack bound used by the editor.
const DefaultCapacity = 50

// History is a bounded pair of snapshot stacks. The zero value is not
// usable - use New. History is not safe for concurrent use without external
// synchronization, matching the single-threaded mutation model of the store
// that owns it.
type History struct {
	undo     []diagram.Document
	redo     []diagram.Document
	capacity int
}

// New creates a History bounded to the given capacity.
// A capacity of zero or less falls back to DefaultCapacity.
func New(capacity int) *History {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &History{capacity: capacity}
}

// Save pushes a deep copy of doc onto the undo stack and clears the redo
// stack: a new checkpoint invalidates any previously available redo path,
// since the sequence of future states has diverged. If the stack is at
// capacity the oldest snapshot is evicted first.
func (h *History) Save(doc diagram.Document) {
	if len(h.undo) >= h.capacity {
		// FIFO eviction: drop the single oldest entry.
		copy(h.undo, h.undo[1:])
		h.undo = h.undo[:len(h.undo)-1]
	}
	h.undo = append(h.undo, doc.Clone())
	h.redo = h.redo[:0]
}

// Undo pops the most recent snapshot, pushes a copy of current onto the redo
// stack, and returns the popped snapshot. Returns ok=false with an unchanged
// History when the undo stack is empty; an empty stack is a no-op condition,
// not a fault.
func (h *History) Undo(current diagram.Document) (diagram.Document, bool) {
	if len(h.undo) == 0 {
		return diagram.Document{}, false
	}
	top := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]
	h.redo = append(h.redo, current.Clone())
	return top, true
}

// Redo pops the most recent redo snapshot, pushes a copy of current onto the
// undo stack, and returns the popped snapshot. Returns ok=false when the
// redo stack is empty.
func (h *History) Redo(current diagram.Document) (diagram.Document, bool) {
	if len(h.redo) == 0 {
		return diagram.Document{}, false
	}
	top := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]
	h.undo = append(h.undo, current.Clone())
	return top, true
}

// InvalidateRedo clears the redo stack. Called by the store for every
// durable mutation other than undo/redo themselves.
func (h *History) InvalidateRedo() {
	h.redo = h.redo[:0]
}

// CanUndo reports whether an undo snapshot is available.
func (h *History) CanUndo() bool { return len(h.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// UndoDepth returns the number of snapshots on the undo stack.
func (h *History) UndoDepth() int { return len(h.undo) }

// RedoDepth returns the number of snapshots on the redo stack.
func (h *History) RedoDepth() int { return len(h.redo) }

// Clear empties both stacks.
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}
