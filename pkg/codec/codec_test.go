package codec

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	ferrors "github.com/flowcanvas/flowcanvas/pkg/errors"
)

func sampleDocument() diagram.Document {
	doc := diagram.NewDocument()
	doc.Flows = []diagram.Flow{
		{ID: "f1", Source: "A", Target: "B", Value: 10, ComparisonValue: diagram.Ptr(8.5)},
		{ID: "f2", Source: "B", Target: "C", Value: 5, Color: diagram.Ptr("#336699"), Opacity: diagram.Ptr(0.7)},
	}
	doc.NodeCustomizations["A"] = diagram.NodeCustomization{
		Color:   diagram.Ptr("#abcdef"),
		OffsetX: diagram.Ptr(5.0),
		OffsetY: diagram.Ptr(7.0),
	}
	doc.LabelCustomizations["A"] = diagram.LabelCustomization{
		Visible:  diagram.Ptr(false),
		FontSize: diagram.Ptr(11.0),
		OffsetX:  diagram.Ptr(-2.0),
		OffsetY:  diagram.Ptr(4.0),
	}
	doc.Settings.Title = "Quarterly Energy"
	doc.Settings.DataSourceNotes = "" // explicitly empty, must survive
	return doc
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	orig := sampleDocument()

	data, err := Encode(orig)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	if !reflect.DeepEqual(got, orig) {
		t.Errorf("round trip diverged:\n got %+v\nwant %+v", got, orig)
	}
	if got.Settings.DataSourceNotes != "" {
		t.Errorf("DataSourceNotes = %q, want explicitly empty", got.Settings.DataSourceNotes)
	}
	if got.Flows[0].ComparisonValue == nil || *got.Flows[0].ComparisonValue != 8.5 {
		t.Errorf("ComparisonValue lost: %v", got.Flows[0].ComparisonValue)
	}
	if got.Flows[0].Color != nil {
		t.Error("unset Color materialized through round trip")
	}
}

func TestEncodeWritesVersion(t *testing.T) {
	data, err := Encode(diagram.NewDocument())
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(data, &envelope); err != nil {
		t.Fatalf("unmarshal envelope: %v", err)
	}
	if string(envelope["version"]) != "1" {
		t.Errorf("version tag = %s, want 1", envelope["version"])
	}
}

func TestDecodeMalformed(t *testing.T) {
	tests := []struct {
		name string
		data string
		code ferrors.Code
	}{
		{"Truncated", `{"version": 1, "flows": [`, ferrors.ErrCodeInvalidPayload},
		{"NotJSON", `this is not json`, ferrors.ErrCodeInvalidPayload},
		{"WrongFieldType", `{"version": 1, "flows": "nope"}`, ferrors.ErrCodeInvalidPayload},
		{"MissingVersion", `{"flows": []}`, ferrors.ErrCodeUnsupportedVersion},
		{"FutureVersion", `{"version": 99, "flows": []}`, ferrors.ErrCodeUnsupportedVersion},
		{
			"FlowMissingID",
			`{"version": 1, "flows": [{"source": "A", "target": "B", "value": 1}]}`,
			ferrors.ErrCodeInvalidFlow,
		},
		{
			"DuplicateFlowID",
			`{"version": 1, "flows": [
				{"id": "f1", "source": "A", "target": "B", "value": 1},
				{"id": "f1", "source": "B", "target": "C", "value": 2}]}`,
			ferrors.ErrCodeInvalidFlow,
		},
		{
			"NegativeValue",
			`{"version": 1, "flows": [{"id": "f1", "source": "A", "target": "B", "value": -3}]}`,
			ferrors.ErrCodeInvalidFlow,
		},
		{
			"OpacityOutOfRange",
			`{"version": 1, "flows": [{"id": "f1", "source": "A", "target": "B", "value": 1, "opacity": 1.5}]}`,
			ferrors.ErrCodeInvalidFlow,
		},
		{
			"PartialNodeOffset",
			`{"version": 1, "node_customizations": {"A": {"offset_x": 5}}}`,
			ferrors.ErrCodeInvalidPayload,
		},
		{
			"PartialLabelOffset",
			`{"version": 1, "label_customizations": {"A": {"offset_y": 5}}}`,
			ferrors.ErrCodeInvalidPayload,
		},
		{
			"EmptyCustomizationKey",
			`{"version": 1, "node_customizations": {"": {"color": "#fff"}}}`,
			ferrors.ErrCodeInvalidPayload,
		},
		{
			"BadSettings",
			`{"version": 1, "settings": {"width": -10, "height": 600, "color_scheme": "category"}}`,
			ferrors.ErrCodeInvalidSettings,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Decode([]byte(tt.data))
			if err == nil {
				t.Fatal("Decode accepted malformed input")
			}
			if got := ferrors.GetCode(err); got != tt.code {
				t.Errorf("error code = %q, want %q (err: %v)", got, tt.code, err)
			}
			// Fail-closed: no partial document escapes.
			if len(doc.Flows) != 0 || len(doc.NodeCustomizations) != 0 {
				t.Errorf("partial document returned on error: %+v", doc)
			}
		})
	}
}

func TestDecodeAllowsDanglingFlows(t *testing.T) {
	payload := `{"version": 1, "flows": [{"id": "f1", "value": 1}]}`
	doc, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode rejected a flow with empty endpoints: %v", err)
	}
	if doc.Flows[0].Source != "" || doc.Flows[0].Target != "" {
		t.Errorf("endpoints = %q -> %q, want empty", doc.Flows[0].Source, doc.Flows[0].Target)
	}
}

func TestDecodeValidSettingsRanges(t *testing.T) {
	payload := `{
		"version": 1,
		"flows": [],
		"settings": {
			"title": "",
			"width": 1,
			"height": 1,
			"node_width": 0,
			"node_padding": 0,
			"flow_opacity": 1,
			"color_scheme": "mono",
			"data_source_notes": ""
		}
	}`
	doc, err := Decode([]byte(payload))
	if err != nil {
		t.Fatalf("Decode rejected boundary-valid settings: %v", err)
	}
	if doc.Settings.ColorScheme != diagram.SchemeMono {
		t.Errorf("ColorScheme = %q", doc.Settings.ColorScheme)
	}
}

func TestDecodeIgnoresUnknownFields(t *testing.T) {
	payload := `{"version": 1, "flows": [], "future_field": {"x": 1}}`
	if _, err := Decode([]byte(payload)); err != nil {
		t.Errorf("unknown top-level fields should be tolerated within a version: %v", err)
	}
}

func TestPayloadDocumentNilMaps(t *testing.T) {
	doc := Payload{Version: Version}.Document()
	if doc.NodeCustomizations == nil || doc.LabelCustomizations == nil {
		t.Error("Document() must materialize empty customization maps")
	}
}

func TestEncodeDeterministicKeys(t *testing.T) {
	// encoding/json sorts map keys, so the payload is stable across runs.
	doc := diagram.NewDocument()
	doc.NodeCustomizations["b"] = diagram.NodeCustomization{Color: diagram.Ptr("#1")}
	doc.NodeCustomizations["a"] = diagram.NodeCustomization{Color: diagram.Ptr("#2")}

	first, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	second, err := Encode(doc)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if string(first) != string(second) {
		t.Error("repeated encodes of the same document differ")
	}
	if strings.Index(string(first), `"a"`) > strings.Index(string(first), `"b"`) {
		t.Error("map keys not emitted in sorted order")
	}
}
