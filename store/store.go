// Package store persists the document being edited.
//
// The whole document is kept as one JSON blob under [Key] in a [KV] backend.
// Loading never fails: a missing or unreadable blob yields
// [document.Default], with a warning logged for anything other than a
// missing key.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/oaslog"
)

// Key is the fixed key the document is stored under.
const Key = "oas-builder-spec"

// Store loads and saves a document through a KV.
type Store struct {
	kv  KV
	log oaslog.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used to report unreadable state.
func WithLogger(l oaslog.Logger) Option {
	return func(s *Store) { s.log = oaslog.OrNop(l) }
}

// New returns a Store backed by kv.
func New(kv KV, opts ...Option) *Store {
	s := &Store{kv: kv, log: oaslog.NopLogger{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored document, or the default document when nothing
// usable is stored.
func (s *Store) Load(ctx context.Context) *document.Document {
	doc, err := s.load(ctx)
	switch {
	case err == nil:
		return doc
	case errors.Is(err, ErrNotFound):
		s.log.Debug("no stored document, using default", "key", Key)
	default:
		s.log.Warn("stored document unusable, using default", "key", Key, "error", err)
	}
	return document.Default()
}

// LoadStrict is Load without the fallback: it returns ErrNotFound, a
// storage error or a parse error as is.
func (s *Store) LoadStrict(ctx context.Context) (*document.Document, error) {
	return s.load(ctx)
}

func (s *Store) load(ctx context.Context) (*document.Document, error) {
	data, err := s.kv.Get(ctx, Key)
	if err != nil {
		return nil, err
	}
	return document.Decode(data)
}

// Save stores doc, replacing whatever was stored before.
func (s *Store) Save(ctx context.Context, doc *document.Document) error {
	data, err := document.Encode(doc)
	if err != nil {
		return fmt.Errorf("store: encoding document: %w", err)
	}
	if err := s.kv.Set(ctx, Key, data); err != nil {
		return fmt.Errorf("store: saving document: %w", err)
	}
	s.log.Debug("document saved", "key", Key, "bytes", len(data))
	return nil
}

// Clear removes the stored document. The next Load returns the default.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, Key); err != nil {
		return fmt.Errorf("store: clearing document: %w", err)
	}
	return nil
}
