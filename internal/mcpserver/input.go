package mcpserver

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/encoder"
)

// documentInput is a document passed to a tool. An empty Content selects
// the stored document.
type documentInput struct {
	Content string `json:"content,omitempty" jsonschema:"Document in the editor's persisted JSON form. Leave empty to use the stored document."`
}

// resolve returns the document the input names.
func (s *Server) resolve(ctx context.Context, in documentInput) (*document.Document, error) {
	if in.Content == "" {
		return s.store.Load(ctx), nil
	}
	return document.Decode([]byte(in.Content))
}

// exportKey identifies an export result. The document is re-encoded first so
// that formatting differences in the input do not split the cache.
func exportKey(doc *document.Document, f encoder.Format) (string, error) {
	data, err := document.Encode(doc)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(data)
	return string(f) + ":" + hex.EncodeToString(sum[:]), nil
}
