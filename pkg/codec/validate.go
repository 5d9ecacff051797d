package codec

import (
	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	ferrors "github.com/flowcanvas/flowcanvas/pkg/errors"
)

// validate checks every structural invariant of a payload before it is
// accepted. The JSON decoder already guarantees field types (a string where
// a number belongs fails the parse), so validation here covers presence,
// uniqueness, and value ranges.
func validate(p Payload) error {
	seen := make(map[string]bool, len(p.Flows))
	for i, f := range p.Flows {
		if err := validateFlow(i, f); err != nil {
			return err
		}
		if seen[f.ID] {
			return ferrors.New(ferrors.ErrCodeInvalidFlow, "flow %d: duplicate id %q", i, f.ID)
		}
		seen[f.ID] = true
	}

	for id, c := range p.NodeCustomizations {
		if id == "" {
			return ferrors.New(ferrors.ErrCodeInvalidPayload, "node customization with empty key")
		}
		// Positional overrides are set pairwise.
		if (c.OffsetX == nil) != (c.OffsetY == nil) {
			return ferrors.New(ferrors.ErrCodeInvalidPayload,
				"node customization %q: partial positional override", id)
		}
	}

	for id, c := range p.LabelCustomizations {
		if id == "" {
			return ferrors.New(ferrors.ErrCodeInvalidPayload, "label customization with empty key")
		}
		if (c.OffsetX == nil) != (c.OffsetY == nil) {
			return ferrors.New(ferrors.ErrCodeInvalidPayload,
				"label customization %q: partial positional override", id)
		}
	}

	return validateSettings(p.Settings)
}

// validateFlow checks one flow record. Source and target may be empty: a
// dangling flow mid-edit is a legal document state and must survive a
// save/reload cycle.
func validateFlow(i int, f diagram.Flow) error {
	if f.ID == "" {
		return ferrors.New(ferrors.ErrCodeInvalidFlow, "flow %d: missing id", i)
	}
	if f.Value < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidFlow, "flow %q: negative value %v", f.ID, f.Value)
	}
	if f.ComparisonValue != nil && *f.ComparisonValue < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidFlow, "flow %q: negative comparison value", f.ID)
	}
	if f.Opacity != nil && (*f.Opacity < 0 || *f.Opacity > 1) {
		return ferrors.New(ferrors.ErrCodeInvalidFlow, "flow %q: opacity out of range", f.ID)
	}
	return nil
}

func validateSettings(s diagram.Settings) error {
	if s.Width <= 0 || s.Height <= 0 {
		return ferrors.New(ferrors.ErrCodeInvalidSettings,
			"dimensions must be positive, got %vx%v", s.Width, s.Height)
	}
	if s.NodeWidth < 0 || s.NodePadding < 0 {
		return ferrors.New(ferrors.ErrCodeInvalidSettings, "node metrics must be non-negative")
	}
	if s.FlowOpacity < 0 || s.FlowOpacity > 1 {
		return ferrors.New(ferrors.ErrCodeInvalidSettings,
			"flow opacity out of range: %v", s.FlowOpacity)
	}
	if !s.ColorScheme.Valid() {
		return ferrors.New(ferrors.ErrCodeInvalidSettings,
			"unknown color scheme %q", s.ColorScheme)
	}
	// DataSourceNotes is free text: the empty string is valid and must
	// round-trip as-is.
	return nil
}
