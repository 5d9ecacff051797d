package store

import "github.com/flowcanvas/flowcanvas/pkg/diagram"

// Selection and tool state. These setters mutate transient UI state only:
// they never touch the history stacks, and none of them can fail.

// SelectNode selects the node with the given id, deselecting any previously
// selected element in the same operation.
func (s *Store) SelectNode(id string) {
	s.ui.Selection = diagram.Selection{Kind: diagram.SelectionNode, ID: id}
}

// SelectFlow selects the flow with the given id, deselecting any previously
// selected element.
func (s *Store) SelectFlow(id string) {
	s.ui.Selection = diagram.Selection{Kind: diagram.SelectionFlow, ID: id}
}

// SelectLabel selects the label with the given id, deselecting any
// previously selected element.
func (s *Store) SelectLabel(id string) {
	s.ui.Selection = diagram.Selection{Kind: diagram.SelectionLabel, ID: id}
}

// Deselect clears the selection. Deselecting with nothing selected is a
// no-op.
func (s *Store) Deselect() {
	s.ui.Selection = diagram.Selection{}
}

// Selection returns the current selection state.
func (s *Store) Selection() diagram.Selection {
	return s.ui.Selection
}

// SetActiveTool switches the active tool. Values outside the tool
// enumeration are rejected silently, leaving the current tool unchanged:
// tool selection originates from a closed UI surface, so an unknown value is
// a no-op condition rather than a fault. Reports whether the tool changed.
func (s *Store) SetActiveTool(t diagram.Tool) bool {
	if !t.Valid() {
		return false
	}
	s.ui.ActiveTool = t
	return true
}

// SetZoom sets the viewport zoom factor.
func (s *Store) SetZoom(zoom float64) {
	s.ui.Zoom = zoom
}

// SetPan sets the viewport pan offset.
func (s *Store) SetPan(x, y float64) {
	s.ui.PanX, s.ui.PanY = x, y
}

// SetDragging flags whether a drag gesture is in progress.
func (s *Store) SetDragging(dragging bool) {
	s.ui.IsDragging = dragging
}
