// Package codec converts durable diagram state to and from its versioned
// persistence payload.
//
// # Format
//
// The payload is a JSON object with a schema version tag:
//
//	{
//	  "version": 1,
//	  "flows": [{"id": "f1", "source": "A", "target": "B", "value": 10}],
//	  "node_customizations": {"A": {"offset_x": 5, "offset_y": 7}},
//	  "label_customizations": {},
//	  "settings": {"title": "...", "width": 960, ...}
//	}
//
// Decoding is fail-closed: the payload is parsed and then structurally
// validated in full before any of it is accepted. A malformed payload
// produces an error and no partial document. The version tag feeds a
// migration pass so older payloads can be upgraded in place; for the single
// existing version this is a pass-through.
package codec

import (
	"encoding/json"

	"github.com/flowcanvas/flowcanvas/pkg/diagram"
	ferrors "github.com/flowcanvas/flowcanvas/pkg/errors"
)

// Version is the current schema version written by Encode.
const Version = 1

// Payload is the serialization envelope for a document. The bson tags allow
// the Mongo persistence backend to store the envelope natively.
type Payload struct {
	Version             int                                   `json:"version" bson:"version"`
	Flows               []diagram.Flow                        `json:"flows" bson:"flows"`
	NodeCustomizations  map[string]diagram.NodeCustomization  `json:"node_customizations" bson:"node_customizations"`
	LabelCustomizations map[string]diagram.LabelCustomization `json:"label_customizations" bson:"label_customizations"`
	Settings            diagram.Settings                      `json:"settings" bson:"settings"`
}

// FromDocument builds the current-version payload for a document.
func FromDocument(doc diagram.Document) Payload {
	doc = doc.Clone()
	return Payload{
		Version:             Version,
		Flows:               doc.Flows,
		NodeCustomizations:  doc.NodeCustomizations,
		LabelCustomizations: doc.LabelCustomizations,
		Settings:            doc.Settings,
	}
}

// Document converts a validated payload back into a document.
func (p Payload) Document() diagram.Document {
	doc := diagram.Document{
		Flows:               p.Flows,
		NodeCustomizations:  p.NodeCustomizations,
		LabelCustomizations: p.LabelCustomizations,
		Settings:            p.Settings,
	}
	if doc.NodeCustomizations == nil {
		doc.NodeCustomizations = map[string]diagram.NodeCustomization{}
	}
	if doc.LabelCustomizations == nil {
		doc.LabelCustomizations = map[string]diagram.LabelCustomization{}
	}
	return doc.Clone()
}

// Encode serializes durable state as a versioned JSON payload.
func Encode(doc diagram.Document) ([]byte, error) {
	data, err := json.MarshalIndent(FromDocument(doc), "", "  ")
	if err != nil {
		return nil, ferrors.Wrap(ferrors.ErrCodeInternal, err, "encode document")
	}
	return data, nil
}

// Decode parses and validates a payload, returning the document it carries.
//
// Decode never panics. It returns an error for syntactically invalid input,
// for well-formed input that fails structural validation, and for unknown
// schema versions - in every case without partially applying the payload.
func Decode(data []byte) (diagram.Document, error) {
	var p Payload
	if err := json.Unmarshal(data, &p); err != nil {
		return diagram.Document{}, ferrors.Wrap(ferrors.ErrCodeInvalidPayload, err, "parse payload")
	}

	p, err := migrate(p)
	if err != nil {
		return diagram.Document{}, err
	}

	if err := validate(p); err != nil {
		return diagram.Document{}, err
	}

	return p.Document(), nil
}

// migrate upgrades a payload to the current schema version. Version 1 is the
// only existing version, so migration is a pass-through; unknown versions
// are rejected rather than guessed at.
func migrate(p Payload) (Payload, error) {
	switch p.Version {
	case Version:
		return p, nil
	default:
		return Payload{}, ferrors.New(ferrors.ErrCodeUnsupportedVersion,
			"unsupported schema version %d (current %d)", p.Version, Version)
	}
}
