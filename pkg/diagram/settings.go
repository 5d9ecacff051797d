package diagram

// ColorScheme selects the palette applied to nodes without an explicit color.
type ColorScheme string

// Supported color schemes.
const (
	SchemeCategory ColorScheme = "category"
	SchemeWarm     ColorScheme = "warm"
	SchemeCool     ColorScheme = "cool"
	SchemeMono     ColorScheme = "mono"
)

// Valid reports whether s is a known color scheme.
func (s ColorScheme) Valid() bool {
	switch s {
	case SchemeCategory, SchemeWarm, SchemeCool, SchemeMono:
		return true
	}
	return false
}

// Settings is the global diagram configuration. All fields are concrete:
// a settings struct is always fully populated, and partial updates go
// through SettingsPatch.
//
// DataSourceNotes is free text and may legitimately be empty; the empty
// string round-trips exactly through serialization.
type Settings struct {
	Title           string      `json:"title" bson:"title"`
	Width           float64     `json:"width" bson:"width"`
	Height          float64     `json:"height" bson:"height"`
	NodeWidth       float64     `json:"node_width" bson:"node_width"`
	NodePadding     float64     `json:"node_padding" bson:"node_padding"`
	FlowOpacity     float64     `json:"flow_opacity" bson:"flow_opacity"`
	ColorScheme     ColorScheme `json:"color_scheme" bson:"color_scheme"`
	DataSourceNotes string      `json:"data_source_notes" bson:"data_source_notes"`
}

// DefaultSettings returns the documented settings defaults.
func DefaultSettings() Settings {
	return Settings{
		Title:       "Untitled Diagram",
		Width:       960,
		Height:      600,
		NodeWidth:   12,
		NodePadding: 16,
		FlowOpacity: 0.45,
		ColorScheme: SchemeCategory,
	}
}

// SettingsPatch is a partial settings update. Nil fields are "not present"
// and leave the current value untouched, so an explicitly empty string is
// distinguishable from an omitted one.
type SettingsPatch struct {
	Title           *string      `json:"title,omitempty"`
	Width           *float64     `json:"width,omitempty"`
	Height          *float64     `json:"height,omitempty"`
	NodeWidth       *float64     `json:"node_width,omitempty"`
	NodePadding     *float64     `json:"node_padding,omitempty"`
	FlowOpacity     *float64     `json:"flow_opacity,omitempty"`
	ColorScheme     *ColorScheme `json:"color_scheme,omitempty"`
	DataSourceNotes *string      `json:"data_source_notes,omitempty"`
}

// Apply overlays set fields of the patch onto s and returns the result.
// Out-of-range values are ignored like an unknown color scheme: dimensions
// must be positive, node metrics non-negative, and opacity within [0, 1].
// The settings a store carries therefore always serialize cleanly.
func (p SettingsPatch) Apply(s Settings) Settings {
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Width != nil && *p.Width > 0 {
		s.Width = *p.Width
	}
	if p.Height != nil && *p.Height > 0 {
		s.Height = *p.Height
	}
	if p.NodeWidth != nil && *p.NodeWidth >= 0 {
		s.NodeWidth = *p.NodeWidth
	}
	if p.NodePadding != nil && *p.NodePadding >= 0 {
		s.NodePadding = *p.NodePadding
	}
	if p.FlowOpacity != nil && *p.FlowOpacity >= 0 && *p.FlowOpacity <= 1 {
		s.FlowOpacity = *p.FlowOpacity
	}
	if p.ColorScheme != nil && p.ColorScheme.Valid() {
		s.ColorScheme = *p.ColorScheme
	}
	if p.DataSourceNotes != nil {
		s.DataSourceNotes = *p.DataSourceNotes
	}
	return s
}
