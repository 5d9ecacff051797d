package store

// Override accessors consumed by the position composition layer. These keep
// the node and label namespaces strictly separate: NodeOffset reads only the
// node customization map, LabelOffset only the label map.

// NodeOffset returns the node's positional override, or ok=false when the
// node has no override.
func (s *Store) NodeOffset(id string) (dx, dy float64, ok bool) {
	c, present := s.doc.NodeCustomizations[id]
	if !present || !c.HasPosition() {
		return 0, 0, false
	}
	return *c.OffsetX, *c.OffsetY, true
}

// LabelOffset returns the label's positional override, or ok=false when the
// label has no override.
func (s *Store) LabelOffset(id string) (dx, dy float64, ok bool) {
	c, present := s.doc.LabelCustomizations[id]
	if !present || !c.HasPosition() {
		return 0, 0, false
	}
	return *c.OffsetX, *c.OffsetY, true
}
