// Package store implements the state container at the heart of the editor.
//
// # Overview
//
// A [Store] owns all canonical diagram entities: the durable
// [diagram.Document] (flows, node and label customizations, settings) and
// the transient [diagram.UIState] (selection, zoom, pan, active tool).
// Mutations are atomic, synchronous, and total - no operation panics or
// returns an error for well-typed input. Conditions like removing an
// unknown flow id or undoing with an empty stack resolve silently with a
// boolean result.
//
// # History
//
// The store embeds a bounded [history.History]. Checkpointing is
// caller-controlled via SaveSnapshot; every durable mutation other than
// Undo/Redo invalidates the redo stack. Snapshots cover durable state only,
// so undo never disturbs selection or viewport.
//
// # Persistence Decoupling
//
// The store never writes to storage. Collaborators register a subscriber
// which fires after each durable mutation; the persist package's coalescing
// writer is the intended subscriber.
package store
