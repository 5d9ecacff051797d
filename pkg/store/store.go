package store

import (
	"github.com/google/uuid"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	"github.com/flowcanvas/flowcanvas/pkg/history"
	"github.com/flowcanvas/flowcanvas/pkg/observability"
)

// Store is the sole mutable owner of canonical diagram state: the durable
// document (flows, customizations, settings) plus transient UI state.
//
// Every mutation is atomic and synchronous with no side effects beyond the
// store's own fields; persistence is a decoupled concern driven by
// subscribers. Durable mutations invalidate the redo stack. UI-state setters
// never touch history.
//
// The store is an explicit object: construct one per editor (or per test)
// with New and pass it to collaborators. It follows a single-threaded
// cooperative mutation model and is not safe for concurrent use without
// external synchronization.
type Store struct {
	doc     diagram.Document
	ui      diagram.UIState
	history *history.History
	subs    []func()

	// gesture holds the pre-gesture document while a drag is in progress,
	// so an aborted gesture can roll back without involving history.
	gesture *diagram.Document
}

// New creates an empty store with default settings, default UI state, and a
// history bounded to history.DefaultCapacity.
func New() *Store {
	return &Store{
		doc:     diagram.NewDocument(),
		ui:      diagram.DefaultUIState(),
		history: history.New(history.DefaultCapacity),
	}
}

// =============================================================================
// Read Models
// =============================================================================

// Document returns a deep copy of the durable state.
func (s *Store) Document() diagram.Document {
	return s.doc.Clone()
}

// Flows returns a deep copy of the flow collection in insertion order.
func (s *Store) Flows() []diagram.Flow {
	return diagram.CloneFlows(s.doc.Flows)
}

// FlowCount returns the number of flows.
func (s *Store) FlowCount() int { return len(s.doc.Flows) }

// FlowByID returns a copy of the flow with the given id, if present.
func (s *Store) FlowByID(id string) (diagram.Flow, bool) {
	f, ok := s.doc.FlowByID(id)
	if !ok {
		return diagram.Flow{}, false
	}
	return f.Clone(), true
}

// NodeCustomization returns a copy of the customization entry for a node.
func (s *Store) NodeCustomization(id string) (diagram.NodeCustomization, bool) {
	c, ok := s.doc.NodeCustomizations[id]
	if !ok {
		return diagram.NodeCustomization{}, false
	}
	return c.Clone(), true
}

// LabelCustomization returns a copy of the customization entry for a label.
func (s *Store) LabelCustomization(id string) (diagram.LabelCustomization, bool) {
	c, ok := s.doc.LabelCustomizations[id]
	if !ok {
		return diagram.LabelCustomization{}, false
	}
	return c.Clone(), true
}

// Settings returns the current global settings.
func (s *Store) Settings() diagram.Settings { return s.doc.Settings }

// UIState returns the current transient UI state.
func (s *Store) UIState() diagram.UIState { return s.ui }

// =============================================================================
// Durable Mutations
// =============================================================================

// SetFlows replaces the flow collection wholesale. Entries are normalized
// like AddFlow: absent or duplicate ids are replaced with fresh ones and
// magnitudes are clamped into range.
func (s *Store) SetFlows(flows []diagram.Flow) {
	out := make([]diagram.Flow, 0, len(flows))
	seen := make(map[string]bool, len(flows))
	for _, f := range flows {
		f = normalizeFlow(f.Clone())
		if f.ID == "" || seen[f.ID] {
			f.ID = uuid.NewString()
		}
		seen[f.ID] = true
		out = append(out, f)
	}
	s.doc.Flows = out
	s.mutated("set_flows")
}

// AddFlow appends a flow to the end of the collection and returns the stored
// copy. A fresh unique id is assigned when the given id is absent or would
// collide with an existing flow; all prior entries are left untouched.
// Magnitudes outside their documented ranges are clamped, not faulted.
func (s *Store) AddFlow(f diagram.Flow) diagram.Flow {
	f = normalizeFlow(f.Clone())
	if f.ID == "" || s.hasFlowID(f.ID) {
		f.ID = uuid.NewString()
	}
	s.doc.Flows = append(s.doc.Flows, f)
	s.mutated("add_flow")
	return f.Clone()
}

// RemoveFlow removes the flow with the given id. Removing a nonexistent id
// is a silent no-op that still reports false; it does not disturb the redo
// stack.
func (s *Store) RemoveFlow(id string) bool {
	for i, f := range s.doc.Flows {
		if f.ID == id {
			s.doc.Flows = append(s.doc.Flows[:i], s.doc.Flows[i+1:]...)
			s.mutated("remove_flow")
			return true
		}
	}
	return false
}

// UpdateFlow merges set fields of patch into the flow with the given id.
// Nil patch fields leave current values untouched, so a value can be set to
// an explicit zero. Unknown ids are a silent no-op; magnitudes are clamped
// like AddFlow.
func (s *Store) UpdateFlow(id string, patch diagram.FlowPatch) bool {
	for i := range s.doc.Flows {
		if s.doc.Flows[i].ID != id {
			continue
		}
		s.doc.Flows[i] = normalizeFlow(patch.Apply(s.doc.Flows[i]))
		s.mutated("update_flow")
		return true
	}
	return false
}

// UpdateNodeCustomization shallow-merges patch into the node entry for id,
// creating the entry if absent. The label map for the same key is never read
// or written. An empty id is a silent no-op, and a patch carrying only one
// offset component has its offsets dropped: positional overrides are set
// pairwise or not at all. A merge that would store a zero entry is skipped,
// keeping the pruning invariant of the clear operations.
func (s *Store) UpdateNodeCustomization(id string, patch diagram.NodeCustomization) {
	if id == "" {
		return
	}
	if (patch.OffsetX == nil) != (patch.OffsetY == nil) {
		patch.OffsetX, patch.OffsetY = nil, nil
	}
	merged := s.doc.NodeCustomizations[id].Merge(patch)
	if merged.IsZero() {
		return
	}
	s.doc.NodeCustomizations[id] = merged
	s.mutated("update_node_customization")
}

// UpdateLabelCustomization shallow-merges patch into the label entry for id,
// creating the entry if absent. The node map for the same key is never read
// or written. Empty ids and partial offsets are handled as in
// UpdateNodeCustomization.
func (s *Store) UpdateLabelCustomization(id string, patch diagram.LabelCustomization) {
	if id == "" {
		return
	}
	if (patch.OffsetX == nil) != (patch.OffsetY == nil) {
		patch.OffsetX, patch.OffsetY = nil, nil
	}
	merged := s.doc.LabelCustomizations[id].Merge(patch)
	if merged.IsZero() {
		return
	}
	s.doc.LabelCustomizations[id] = merged
	s.mutated("update_label_customization")
}

// UpdateNodePosition sets the node's positional override to the offset
// (dx, dy) from its base position.
func (s *Store) UpdateNodePosition(id string, dx, dy float64) {
	s.UpdateNodeCustomization(id, diagram.NodeCustomization{
		OffsetX: diagram.Ptr(dx),
		OffsetY: diagram.Ptr(dy),
	})
}

// UpdateLabelPosition sets the label's positional override to the offset
// (dx, dy) from the label's own base position.
func (s *Store) UpdateLabelPosition(id string, dx, dy float64) {
	s.UpdateLabelCustomization(id, diagram.LabelCustomization{
		OffsetX: diagram.Ptr(dx),
		OffsetY: diagram.Ptr(dy),
	})
}

// ClearNodePosition removes the node's positional override entirely. The
// final position thereafter equals the base position exactly, no matter how
// many times an override was applied and re-cleared. Other customization
// fields for the node are preserved; a fully empty entry is pruned.
func (s *Store) ClearNodePosition(id string) {
	cur, ok := s.doc.NodeCustomizations[id]
	if !ok || !cur.HasPosition() {
		return
	}
	cur.OffsetX, cur.OffsetY = nil, nil
	if cur.IsZero() {
		delete(s.doc.NodeCustomizations, id)
	} else {
		s.doc.NodeCustomizations[id] = cur
	}
	s.mutated("clear_node_position")
}

// ClearLabelPosition removes the label's positional override entirely,
// independently of any node override under the same key.
func (s *Store) ClearLabelPosition(id string) {
	cur, ok := s.doc.LabelCustomizations[id]
	if !ok || !cur.HasPosition() {
		return
	}
	cur.OffsetX, cur.OffsetY = nil, nil
	if cur.IsZero() {
		delete(s.doc.LabelCustomizations, id)
	} else {
		s.doc.LabelCustomizations[id] = cur
	}
	s.mutated("clear_label_position")
}

// UpdateSettings shallow-merges the patch into the global settings.
func (s *Store) UpdateSettings(patch diagram.SettingsPatch) {
	s.doc.Settings = patch.Apply(s.doc.Settings)
	s.mutated("update_settings")
}

// ReplaceDocument swaps in an entirely new durable document, e.g. one loaded
// from the persistence medium.
func (s *Store) ReplaceDocument(doc diagram.Document) {
	s.doc = doc.Clone()
	if s.doc.NodeCustomizations == nil {
		s.doc.NodeCustomizations = map[string]diagram.NodeCustomization{}
	}
	if s.doc.LabelCustomizations == nil {
		s.doc.LabelCustomizations = map[string]diagram.LabelCustomization{}
	}
	s.mutated("replace_document")
}

// ClearAll resets flows, both customization maps, both history stacks, the
// settings, and the UI state to their documented defaults.
func (s *Store) ClearAll() {
	s.doc = diagram.NewDocument()
	s.ui = diagram.DefaultUIState()
	s.history.Clear()
	s.gesture = nil
	s.notify()
	observability.Store().OnMutation("clear_all")
}

// hasFlowID reports whether a flow with the given id exists.
func (s *Store) hasFlowID(id string) bool {
	_, ok := s.doc.FlowByID(id)
	return ok
}

// normalizeFlow clamps magnitudes into their documented ranges so every
// state reachable through mutations serializes cleanly: values are
// non-negative and opacity sits in [0, 1].
func normalizeFlow(f diagram.Flow) diagram.Flow {
	if f.Value < 0 {
		f.Value = 0
	}
	if f.ComparisonValue != nil && *f.ComparisonValue < 0 {
		f.ComparisonValue = diagram.Ptr(0.0)
	}
	if f.Opacity != nil {
		if *f.Opacity < 0 {
			f.Opacity = diagram.Ptr(0.0)
		} else if *f.Opacity > 1 {
			f.Opacity = diagram.Ptr(1.0)
		}
	}
	return f
}

// mutated runs the shared post-mutation path for durable mutations:
// redo invalidation, hooks, and subscriber notification.
func (s *Store) mutated(op string) {
	s.history.InvalidateRedo()
	observability.Store().OnMutation(op)
	s.notify()
}

// =============================================================================
// Subscribers
// =============================================================================

// Subscribe registers fn to run after every durable mutation, including
// undo/redo and ClearAll. Subscribers must not mutate the store re-entrantly.
// This is the decoupling point for persistence scheduling.
func (s *Store) Subscribe(fn func()) {
	s.subs = append(s.subs, fn)
}

func (s *Store) notify() {
	for _, fn := range s.subs {
		fn()
	}
}
