package diagram

// Document is the durable subset of editor state: everything that is
// snapshotted for undo/redo and serialized for persistence. Transient UI
// state (selection, zoom, pan, tool) is deliberately not part of it.
type Document struct {
	Flows               []Flow                        `json:"flows" bson:"flows"`
	NodeCustomizations  map[string]NodeCustomization  `json:"node_customizations" bson:"node_customizations"`
	LabelCustomizations map[string]LabelCustomization `json:"label_customizations" bson:"label_customizations"`
	Settings            Settings                      `json:"settings" bson:"settings"`
}

// NewDocument returns an empty document with default settings and
// initialized customization maps.
func NewDocument() Document {
	return Document{
		NodeCustomizations:  map[string]NodeCustomization{},
		LabelCustomizations: map[string]LabelCustomization{},
		Settings:            DefaultSettings(),
	}
}

// Clone returns a deep copy of the document. The copy shares no mutable
// memory with the original, so it is safe to hold as an immutable snapshot.
func (d Document) Clone() Document {
	out := Document{
		Flows:               CloneFlows(d.Flows),
		NodeCustomizations:  make(map[string]NodeCustomization, len(d.NodeCustomizations)),
		LabelCustomizations: make(map[string]LabelCustomization, len(d.LabelCustomizations)),
		Settings:            d.Settings,
	}
	for k, v := range d.NodeCustomizations {
		out.NodeCustomizations[k] = v.Clone()
	}
	for k, v := range d.LabelCustomizations {
		out.LabelCustomizations[k] = v.Clone()
	}
	return out
}

// NodeIDs returns the distinct node identifiers referenced by flows, in
// first-appearance order. This is the node set the layout engine positions.
func (d Document) NodeIDs() []string {
	seen := make(map[string]bool)
	var ids []string
	for _, f := range d.Flows {
		for _, id := range []string{f.Source, f.Target} {
			if id != "" && !seen[id] {
				seen[id] = true
				ids = append(ids, id)
			}
		}
	}
	return ids
}

// CustomizedNodeIDs returns the keys of the node customization map in
// sorted order for deterministic listings.
func (d Document) CustomizedNodeIDs() []string {
	return sortedKeys(d.NodeCustomizations)
}

// CustomizedLabelIDs returns the keys of the label customization map in
// sorted order for deterministic listings.
func (d Document) CustomizedLabelIDs() []string {
	return sortedKeys(d.LabelCustomizations)
}

// FlowByID returns the flow with the given ID, if present.
func (d Document) FlowByID(id string) (Flow, bool) {
	for _, f := range d.Flows {
		if f.ID == id {
			return f, true
		}
	}
	return Flow{}, false
}
