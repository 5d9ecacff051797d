// Package position composes base layout positions with user overrides.
//
// The final rendered position of an entity is its base position (supplied by
// the external layout engine, never mutated here) plus the user's positional
// override, a component-wise relative offset. Entities without an override
// render exactly at their base position.
//
// Nodes and labels compose independently: a node's final position reads only
// the node override map and the node's base entry, a label's only the label
// override map and the label's namespaced base entry. Clearing one never
// affects the other.
//
// The composer holds no state of its own - it is a pure function over the
// base source and the override reader, queried on every render pass.
package position

import "github.com/flowcanvas/flowcanvas/pkg/layout"

// Overrides reads positional overrides from the state container. The store
// implements it; tests can substitute a fixture.
type Overrides interface {
	// NodeOffset returns the node's override offset, or ok=false when none
	// is set.
	NodeOffset(id string) (dx, dy float64, ok bool)

	// LabelOffset returns the label's override offset, or ok=false when
	// none is set.
	LabelOffset(id string) (dx, dy float64, ok bool)
}

// Composer combines a base-position source with user overrides.
type Composer struct {
	Base      layout.BaseSource
	Overrides Overrides
}

// NewComposer creates a composer over the given source and overrides.
func NewComposer(base layout.BaseSource, overrides Overrides) Composer {
	return Composer{Base: base, Overrides: overrides}
}

// NodePosition returns the final position for a node: base plus override
// offset, or the base alone when no override is set. ok=false means the
// layout engine has no position for the node.
func (c Composer) NodePosition(id string) (layout.Point, bool) {
	base, ok := c.Base.BasePosition(id)
	if !ok {
		return layout.Point{}, false
	}
	if dx, dy, set := c.Overrides.NodeOffset(id); set {
		return base.Add(layout.Point{X: dx, Y: dy}), true
	}
	return base, true
}

// LabelPosition returns the final position for the label annotating entity
// id. The base comes from the label namespace of the source and the offset
// from the label override map only.
func (c Composer) LabelPosition(id string) (layout.Point, bool) {
	base, ok := c.Base.BasePosition(layout.LabelID(id))
	if !ok {
		return layout.Point{}, false
	}
	if dx, dy, set := c.Overrides.LabelOffset(id); set {
		return base.Add(layout.Point{X: dx, Y: dy}), true
	}
	return base, true
}

// HasCustomNodePosition reports whether a positional override is present for
// the node.
func (c Composer) HasCustomNodePosition(id string) bool {
	_, _, ok := c.Overrides.NodeOffset(id)
	return ok
}

// HasCustomLabelPosition reports whether a positional override is present
// for the label.
func (c Composer) HasCustomLabelPosition(id string) bool {
	_, _, ok := c.Overrides.LabelOffset(id)
	return ok
}
