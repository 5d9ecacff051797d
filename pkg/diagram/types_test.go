package diagram

import (
	"testing"
)

func TestFlowClone(t *testing.T) {
	orig := Flow{
		ID:              "f1",
		Source:          "A",
		Target:          "B",
		Value:           10,
		ComparisonValue: Ptr(4.5),
		Color:           Ptr("#cc3366"),
		Meta:            map[string]any{"note": "x"},
	}

	cp := orig.Clone()

	// Mutating the copy must not reach the original.
	*cp.ComparisonValue = 99
	*cp.Color = "#000000"
	cp.Meta["note"] = "y"

	if *orig.ComparisonValue != 4.5 {
		t.Errorf("ComparisonValue aliased: got %v", *orig.ComparisonValue)
	}
	if *orig.Color != "#cc3366" {
		t.Errorf("Color aliased: got %v", *orig.Color)
	}
	if orig.Meta["note"] != "x" {
		t.Errorf("Meta aliased: got %v", orig.Meta["note"])
	}
}

func TestNodeCustomizationMerge(t *testing.T) {
	tests := []struct {
		name  string
		base  NodeCustomization
		patch NodeCustomization
		check func(t *testing.T, got NodeCustomization)
	}{
		{
			name:  "IntoEmpty",
			base:  NodeCustomization{},
			patch: NodeCustomization{Color: Ptr("#fff")},
			check: func(t *testing.T, got NodeCustomization) {
				if got.Color == nil || *got.Color != "#fff" {
					t.Errorf("Color = %v, want #fff", got.Color)
				}
				if got.Width != nil {
					t.Error("Width should stay unset")
				}
			},
		},
		{
			name:  "UnsetFieldsUntouched",
			base:  NodeCustomization{Color: Ptr("#fff"), Width: Ptr(20.0)},
			patch: NodeCustomization{Opacity: Ptr(0.5)},
			check: func(t *testing.T, got NodeCustomization) {
				if got.Color == nil || *got.Color != "#fff" {
					t.Errorf("Color = %v, want preserved #fff", got.Color)
				}
				if got.Width == nil || *got.Width != 20 {
					t.Errorf("Width = %v, want preserved 20", got.Width)
				}
				if got.Opacity == nil || *got.Opacity != 0.5 {
					t.Errorf("Opacity = %v, want 0.5", got.Opacity)
				}
			},
		},
		{
			name:  "ExplicitZeroOverwrites",
			base:  NodeCustomization{Opacity: Ptr(0.8)},
			patch: NodeCustomization{Opacity: Ptr(0.0)},
			check: func(t *testing.T, got NodeCustomization) {
				if got.Opacity == nil || *got.Opacity != 0 {
					t.Errorf("Opacity = %v, want explicit 0", got.Opacity)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.check(t, tt.base.Merge(tt.patch))
		})
	}
}

func TestLabelCustomizationMergeIndependent(t *testing.T) {
	base := LabelCustomization{FontSize: Ptr(14.0)}
	got := base.Merge(LabelCustomization{OffsetX: Ptr(3.0), OffsetY: Ptr(4.0)})

	if got.FontSize == nil || *got.FontSize != 14 {
		t.Errorf("FontSize = %v, want preserved 14", got.FontSize)
	}
	if !got.HasPosition() {
		t.Error("HasPosition = false after setting both offsets")
	}
	if base.HasPosition() {
		t.Error("merge mutated the receiver")
	}
}

func TestSettingsPatchApply(t *testing.T) {
	s := DefaultSettings()

	// Explicitly empty notes must not be treated as unset.
	s.DataSourceNotes = "draft"
	s = SettingsPatch{DataSourceNotes: Ptr("")}.Apply(s)
	if s.DataSourceNotes != "" {
		t.Errorf("DataSourceNotes = %q, want explicitly empty", s.DataSourceNotes)
	}

	// Nil fields leave values alone.
	s = SettingsPatch{Width: Ptr(1200.0)}.Apply(s)
	if s.Width != 1200 {
		t.Errorf("Width = %v, want 1200", s.Width)
	}
	if s.Title != "Untitled Diagram" {
		t.Errorf("Title changed unexpectedly: %q", s.Title)
	}

	// Invalid scheme is ignored.
	s = SettingsPatch{ColorScheme: Ptr(ColorScheme("neon"))}.Apply(s)
	if s.ColorScheme != SchemeCategory {
		t.Errorf("ColorScheme = %q, want unchanged %q", s.ColorScheme, SchemeCategory)
	}

	// Out-of-range magnitudes are ignored the same way.
	s = SettingsPatch{
		Width:       Ptr(0.0),
		Height:      Ptr(-50.0),
		NodeWidth:   Ptr(-1.0),
		FlowOpacity: Ptr(1.5),
	}.Apply(s)
	if s.Width != 1200 || s.Height != 600 {
		t.Errorf("dimensions changed: %vx%v, want 1200x600", s.Width, s.Height)
	}
	if s.NodeWidth != 12 {
		t.Errorf("NodeWidth = %v, want unchanged 12", s.NodeWidth)
	}
	if s.FlowOpacity != 0.45 {
		t.Errorf("FlowOpacity = %v, want unchanged 0.45", s.FlowOpacity)
	}
}

func TestFlowPatchApply(t *testing.T) {
	base := Flow{
		ID:     "f1",
		Source: "A",
		Target: "B",
		Value:  10,
		Color:  Ptr("#123"),
		Meta:   map[string]any{"k": "v"},
	}

	// Set fields overlay; a pointer to zero is an explicit zero, not unset.
	got := FlowPatch{Value: Ptr(0.0), Target: Ptr("C")}.Apply(base)
	if got.Value != 0 {
		t.Errorf("Value = %v, want explicit 0", got.Value)
	}
	if got.Target != "C" {
		t.Errorf("Target = %q, want C", got.Target)
	}
	if got.Color == nil || *got.Color != "#123" {
		t.Errorf("Color = %v, want untouched #123", got.Color)
	}

	// The id is never patched.
	got = FlowPatch{}.Apply(base)
	if got.ID != "f1" {
		t.Errorf("ID = %q, want f1", got.ID)
	}

	// Meta merges key by key and does not alias the input.
	got = FlowPatch{Meta: map[string]any{"extra": 1}}.Apply(base)
	if got.Meta["k"] != "v" || got.Meta["extra"] != 1 {
		t.Errorf("Meta = %v, want merged map", got.Meta)
	}
	if _, ok := base.Meta["extra"]; ok {
		t.Error("Apply mutated the input flow's meta")
	}
}

func TestDocumentClone(t *testing.T) {
	doc := NewDocument()
	doc.Flows = append(doc.Flows, Flow{ID: "f1", Source: "A", Target: "B", Value: 1})
	doc.NodeCustomizations["A"] = NodeCustomization{OffsetX: Ptr(5.0), OffsetY: Ptr(7.0)}
	doc.LabelCustomizations["A"] = LabelCustomization{Visible: Ptr(false)}

	cp := doc.Clone()
	cp.Flows[0].Source = "Z"
	c := cp.NodeCustomizations["A"]
	*c.OffsetX = 99
	delete(cp.LabelCustomizations, "A")

	if doc.Flows[0].Source != "A" {
		t.Error("flow aliased through clone")
	}
	if *doc.NodeCustomizations["A"].OffsetX != 5 {
		t.Error("node customization aliased through clone")
	}
	if _, ok := doc.LabelCustomizations["A"]; !ok {
		t.Error("label map aliased through clone")
	}
}

func TestDocumentNodeIDs(t *testing.T) {
	doc := NewDocument()
	doc.Flows = []Flow{
		{ID: "1", Source: "B", Target: "A"},
		{ID: "2", Source: "A", Target: "C"},
		{ID: "3", Source: "B", Target: "C"},
	}

	got := doc.NodeIDs()
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("NodeIDs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("NodeIDs[%d] = %q, want %q (first-appearance order)", i, got[i], want[i])
		}
	}
}

func TestToolAndSchemeValidity(t *testing.T) {
	for _, tool := range []Tool{ToolSelect, ToolMove, ToolAdd, ToolDelete} {
		if !tool.Valid() {
			t.Errorf("Tool %q should be valid", tool)
		}
	}
	if Tool("lasso").Valid() {
		t.Error("unknown tool should be invalid")
	}
	if ColorScheme("neon").Valid() {
		t.Error("unknown scheme should be invalid")
	}
}
