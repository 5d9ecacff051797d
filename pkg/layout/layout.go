// Package layout defines the boundary to the external layout engine.
//
// The editing core never computes node positions itself: a [BaseSource]
// supplies the authoritative base position for every entity, and the core
// only ever reads from it. Labels are positioned in a separate namespace
// (see [LabelID]) so that node and label placement stay independent.
//
// Two sources are provided: [StaticSource] for precomputed or test layouts,
// and [GraphvizEngine] which derives positions from the flow structure using
// Graphviz.
package layout

// Point is a 2D coordinate in diagram space.
type Point struct {
	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
}

// Add returns the component-wise sum of p and q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// labelPrefix namespaces label entries within a BaseSource. Node "a" and its
// label "label:a" are distinct entities with distinct base positions.
const labelPrefix = "label:"

// LabelID returns the BaseSource key for the label annotating entity id.
func LabelID(id string) string { return labelPrefix + id }

// BaseSource supplies base positions computed by an external layout engine.
// Implementations are read-only from the core's perspective.
type BaseSource interface {
	// BasePosition returns the base position for an entity, or ok=false if
	// the source has no position for that id. Label positions are looked up
	// under LabelID(id).
	BasePosition(id string) (Point, bool)
}

// StaticSource is a fixed position map. It is the simplest BaseSource:
// callers with a precomputed layout (or tests) populate it directly.
type StaticSource map[string]Point

// BasePosition implements BaseSource.
func (s StaticSource) BasePosition(id string) (Point, bool) {
	p, ok := s[id]
	return p, ok
}

// SetLabel stores a label position under the label namespace for entity id.
func (s StaticSource) SetLabel(id string, p Point) {
	s[LabelID(id)] = p
}

// Ensure StaticSource implements BaseSource.
var _ BaseSource = (StaticSource)(nil)
