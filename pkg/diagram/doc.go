// Package diagram defines the canonical data model for flow diagrams.
//
// # Overview
//
// A diagram is a collection of weighted directed [Flow] edges plus two
// independent per-entity override maps ([NodeCustomization] and
// [LabelCustomization]) and global [Settings]. The durable subset of editor
// state is bundled as a [Document], which is what undo snapshots and the
// persistence layer operate on. Transient interaction state lives in
// [UIState] and is never part of a Document.
//
// # Key Space
//
// Node and label customizations share the entity key space but are stored
// and mutated independently: positioning a node never moves its label, and
// clearing a label override never affects the node. Callers must preserve
// this separation.
//
// # Optional Fields
//
// Customization and patch fields are pointers. A nil field means "not set",
// which is distinct from "set to the zero value" - an explicitly empty
// string or zero offset is preserved through merges and serialization
// rather than being replaced by a fallback.
package diagram
