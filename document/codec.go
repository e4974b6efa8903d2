package document

import (
	"bytes"
	"encoding/json"

	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/erraggy/oasdraft/ordered"
)

// Decode parses the persisted JSON form of a document. Missing top-level
// sequences decode as empty, and a missing OpenAPI version falls back to
// DefaultOpenAPIVersion.
func Decode(data []byte) (*Document, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &oaserrors.ParseError{Format: "json", Message: "empty document"}
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, &oaserrors.ParseError{Format: "json", Message: "decoding document", Cause: err}
	}
	if doc.OpenAPI == "" {
		doc.OpenAPI = DefaultOpenAPIVersion
	}
	if doc.Servers == nil {
		doc.Servers = []Server{}
	}
	if doc.Paths == nil {
		doc.Paths = []PathItem{}
	}
	if doc.Schemas == nil {
		doc.Schemas = []NamedSchema{}
	}
	return &doc, nil
}

// Encode returns the persisted JSON form of d. HTML characters are written
// as is.
func Encode(d *Document) ([]byte, error) {
	return ordered.MarshalJSONValue(d)
}
