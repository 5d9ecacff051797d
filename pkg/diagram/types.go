package diagram

import (
	"maps"
	"slices"
)

// =============================================================================
// Flow - Directed Diagram Edge
// =============================================================================

// Flow is a directed edge in the diagram: a weighted connection from a source
// node to a target node. Flows are the primary entities a user edits.
//
// IDs are unique within a document and stable across edits. Insertion order
// is preserved and display-significant: flows render in the order they were
// added.
//
// Optional fields are pointers so "unset" stays distinct from "set to the
// zero value". An explicitly empty or zero value round-trips as such.
type Flow struct {
	ID     string  `json:"id" bson:"id"`
	Source string  `json:"source" bson:"source"`
	Target string  `json:"target" bson:"target"`
	Value  float64 `json:"value" bson:"value"`

	// ComparisonValue holds a secondary magnitude for before/after views.
	ComparisonValue *float64 `json:"comparison_value,omitempty" bson:"comparison_value,omitempty"`

	Color   *string  `json:"color,omitempty" bson:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty" bson:"opacity,omitempty"`

	// Meta stores arbitrary key-value pairs attached by external tools.
	Meta map[string]any `json:"meta,omitempty" bson:"meta,omitempty"`
}

// Clone returns a deep copy of the flow. Pointer-valued fields are duplicated
// so mutating the copy never aliases the original.
func (f Flow) Clone() Flow {
	out := f
	out.ComparisonValue = cloneptr(f.ComparisonValue)
	out.Color = cloneptr(f.Color)
	out.Opacity = cloneptr(f.Opacity)
	if f.Meta != nil {
		out.Meta = maps.Clone(f.Meta)
	}
	return out
}

// FlowPatch is a partial flow update. Nil fields are "not present" and leave
// the current value untouched, so an explicit zero value is distinguishable
// from an omitted field.
type FlowPatch struct {
	Source          *string        `json:"source,omitempty"`
	Target          *string        `json:"target,omitempty"`
	Value           *float64       `json:"value,omitempty"`
	ComparisonValue *float64       `json:"comparison_value,omitempty"`
	Color           *string        `json:"color,omitempty"`
	Opacity         *float64       `json:"opacity,omitempty"`
	Meta            map[string]any `json:"meta,omitempty"`
}

// Apply overlays set fields of the patch onto f and returns the result.
// The flow's ID is never patched. Meta entries merge key by key.
func (p FlowPatch) Apply(f Flow) Flow {
	out := f.Clone()
	if p.Source != nil {
		out.Source = *p.Source
	}
	if p.Target != nil {
		out.Target = *p.Target
	}
	if p.Value != nil {
		out.Value = *p.Value
	}
	if p.ComparisonValue != nil {
		out.ComparisonValue = cloneptr(p.ComparisonValue)
	}
	if p.Color != nil {
		out.Color = cloneptr(p.Color)
	}
	if p.Opacity != nil {
		out.Opacity = cloneptr(p.Opacity)
	}
	if len(p.Meta) > 0 && out.Meta == nil {
		out.Meta = map[string]any{}
	}
	for k, v := range p.Meta {
		out.Meta[k] = v
	}
	return out
}

// CloneFlows returns a deep copy of a flow slice, preserving order.
func CloneFlows(flows []Flow) []Flow {
	if flows == nil {
		return nil
	}
	out := make([]Flow, len(flows))
	for i, f := range flows {
		out[i] = f.Clone()
	}
	return out
}

// =============================================================================
// NodeCustomization - Per-Node Overrides
// =============================================================================

// NodeCustomization holds user overrides for a single node, keyed by node ID
// in the document. An absent entry means "use computed defaults".
//
// All fields are optional; a nil field in a patch passed to the store leaves
// the existing value untouched (shallow merge).
//
// OffsetX/OffsetY form the positional override: a relative offset added to
// the base position supplied by the layout engine. Both are set and cleared
// together.
type NodeCustomization struct {
	Color   *string  `json:"color,omitempty" bson:"color,omitempty"`
	Opacity *float64 `json:"opacity,omitempty" bson:"opacity,omitempty"`
	OffsetX *float64 `json:"offset_x,omitempty" bson:"offset_x,omitempty"`
	OffsetY *float64 `json:"offset_y,omitempty" bson:"offset_y,omitempty"`
	Width   *float64 `json:"width,omitempty" bson:"width,omitempty"`
}

// HasPosition reports whether a positional override is present.
func (c NodeCustomization) HasPosition() bool {
	return c.OffsetX != nil && c.OffsetY != nil
}

// IsZero reports whether no field is set. Zero entries are pruned from the
// customization map so absence checks stay meaningful.
func (c NodeCustomization) IsZero() bool {
	return c.Color == nil && c.Opacity == nil && c.OffsetX == nil &&
		c.OffsetY == nil && c.Width == nil
}

// Clone returns a deep copy of the customization.
func (c NodeCustomization) Clone() NodeCustomization {
	return NodeCustomization{
		Color:   cloneptr(c.Color),
		Opacity: cloneptr(c.Opacity),
		OffsetX: cloneptr(c.OffsetX),
		OffsetY: cloneptr(c.OffsetY),
		Width:   cloneptr(c.Width),
	}
}

// Merge overlays set fields of patch onto c and returns the result.
// Unset (nil) patch fields leave the receiver's values in place.
func (c NodeCustomization) Merge(patch NodeCustomization) NodeCustomization {
	out := c.Clone()
	if patch.Color != nil {
		out.Color = cloneptr(patch.Color)
	}
	if patch.Opacity != nil {
		out.Opacity = cloneptr(patch.Opacity)
	}
	if patch.OffsetX != nil {
		out.OffsetX = cloneptr(patch.OffsetX)
	}
	if patch.OffsetY != nil {
		out.OffsetY = cloneptr(patch.OffsetY)
	}
	if patch.Width != nil {
		out.Width = cloneptr(patch.Width)
	}
	return out
}

// =============================================================================
// LabelCustomization - Per-Label Overrides
// =============================================================================

// LabelCustomization holds user overrides for the label annotating a node or
// flow. Labels share the entity's key space but live in a separate map:
// changing a node's customization never touches its label entry, and a label
// is positioned independently of its node.
type LabelCustomization struct {
	Visible    *bool    `json:"visible,omitempty" bson:"visible,omitempty"`
	FontSize   *float64 `json:"font_size,omitempty" bson:"font_size,omitempty"`
	FontFamily *string  `json:"font_family,omitempty" bson:"font_family,omitempty"`
	Color      *string  `json:"color,omitempty" bson:"color,omitempty"`
	OffsetX    *float64 `json:"offset_x,omitempty" bson:"offset_x,omitempty"`
	OffsetY    *float64 `json:"offset_y,omitempty" bson:"offset_y,omitempty"`
	Background *string  `json:"background,omitempty" bson:"background,omitempty"`
	Padding    *float64 `json:"padding,omitempty" bson:"padding,omitempty"`
}

// HasPosition reports whether a positional override is present.
func (c LabelCustomization) HasPosition() bool {
	return c.OffsetX != nil && c.OffsetY != nil
}

// IsZero reports whether no field is set.
func (c LabelCustomization) IsZero() bool {
	return c.Visible == nil && c.FontSize == nil && c.FontFamily == nil &&
		c.Color == nil && c.OffsetX == nil && c.OffsetY == nil &&
		c.Background == nil && c.Padding == nil
}

// Clone returns a deep copy of the customization.
func (c LabelCustomization) Clone() LabelCustomization {
	return LabelCustomization{
		Visible:    cloneptr(c.Visible),
		FontSize:   cloneptr(c.FontSize),
		FontFamily: cloneptr(c.FontFamily),
		Color:      cloneptr(c.Color),
		OffsetX:    cloneptr(c.OffsetX),
		OffsetY:    cloneptr(c.OffsetY),
		Background: cloneptr(c.Background),
		Padding:    cloneptr(c.Padding),
	}
}

// Merge overlays set fields of patch onto c and returns the result.
func (c LabelCustomization) Merge(patch LabelCustomization) LabelCustomization {
	out := c.Clone()
	if patch.Visible != nil {
		out.Visible = cloneptr(patch.Visible)
	}
	if patch.FontSize != nil {
		out.FontSize = cloneptr(patch.FontSize)
	}
	if patch.FontFamily != nil {
		out.FontFamily = cloneptr(patch.FontFamily)
	}
	if patch.Color != nil {
		out.Color = cloneptr(patch.Color)
	}
	if patch.OffsetX != nil {
		out.OffsetX = cloneptr(patch.OffsetX)
	}
	if patch.OffsetY != nil {
		out.OffsetY = cloneptr(patch.OffsetY)
	}
	if patch.Background != nil {
		out.Background = cloneptr(patch.Background)
	}
	if patch.Padding != nil {
		out.Padding = cloneptr(patch.Padding)
	}
	return out
}

// =============================================================================
// Helpers
// =============================================================================

// cloneptr duplicates a pointer's target so copies never alias.
func cloneptr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Ptr returns a pointer to v. Convenience for building patches:
//
//	store.UpdateNodeCustomization("a", diagram.NodeCustomization{
//	    Color: diagram.Ptr("#cc3366"),
//	})
func Ptr[T any](v T) *T { return &v }

// sortedKeys returns map keys in sorted order for deterministic output.
func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
