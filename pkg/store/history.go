package store

import "github.com/flowcanvas/flowcanvas/pkg/observability"

// SaveSnapshot checkpoints the current durable state onto the undo stack.
// Callers invoke it once per logical edit, before the mutation begins: one
// call per drag gesture or property change, never one per intermediate value.
// Saving clears any pending redo path.
func (s *Store) SaveSnapshot() {
	s.history.Save(s.doc)
	observability.Store().OnSnapshot(s.history.UndoDepth())
}

// Undo restores the most recent checkpoint. The current durable state moves
// to the redo stack so Redo can reproduce it exactly. Returns false, leaving
// everything unchanged, when no checkpoint is available.
//
// Undo never touches transient UI state.
func (s *Store) Undo() bool {
	doc, ok := s.history.Undo(s.doc)
	observability.Store().OnUndo(ok)
	if !ok {
		return false
	}
	s.doc = doc
	s.notify()
	return true
}

// Redo reverses the most recent Undo. Returns false, leaving everything
// unchanged, when the redo stack is empty.
func (s *Store) Redo() bool {
	doc, ok := s.history.Redo(s.doc)
	observability.Store().OnRedo(ok)
	if !ok {
		return false
	}
	s.doc = doc
	s.notify()
	return true
}

// CanUndo reports whether a checkpoint is available to restore.
func (s *Store) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether a redo state is available.
func (s *Store) CanRedo() bool { return s.history.CanRedo() }

// UndoDepth returns the current undo stack depth.
func (s *Store) UndoDepth() int { return s.history.UndoDepth() }

// RedoDepth returns the current redo stack depth.
func (s *Store) RedoDepth() int { return s.history.RedoDepth() }
