// Package transform lowers an editor [document.Document] into the canonical
// OpenAPI tree of package oas.
//
// [Transform] is pure and total: it never fails, never reads external state,
// and returns structurally equal trees for equal inputs. Inconsistencies the
// editor tolerates while a document is being built are lowered with fixed
// tie-break rules instead of being rejected:
//
//   - path items sharing a path string merge into one output entry; the
//     entry keeps the position of its first occurrence and a later operation
//     replaces an earlier one with the same method
//   - duplicate status codes, schema names and property names resolve the
//     same way: the later value wins, the first position is kept
//   - servers with a blank URL are dropped
//   - an operation without responses gets a single "200" response
//
// Use the check package to report those inconsistencies to the user.
package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/erraggy/oasdraft/document"
	"github.com/erraggy/oasdraft/oas"
	"github.com/erraggy/oasdraft/oaslog"
	"github.com/erraggy/oasdraft/ordered"
)

// Response defaults.
const (
	DefaultStatusCode          = "200"
	DefaultResponseDescription = "Successful response"

	// FallbackResponseDescription replaces an empty response description,
	// which the output shape does not allow.
	FallbackResponseDescription = "Response"
)

// Option configures Transform.
type Option func(*config)

type config struct {
	logger oaslog.Logger
}

// WithLogger sets a logger for debug records about the lowering. Logging
// never affects the result.
func WithLogger(l oaslog.Logger) Option {
	return func(c *config) {
		c.logger = oaslog.OrNop(l)
	}
}

type lowerer struct {
	log oaslog.Logger
}

// Transform lowers doc into the canonical OpenAPI tree.
func Transform(doc *document.Document, opts ...Option) *oas.Document {
	cfg := config{logger: oaslog.NopLogger{}}
	for _, opt := range opts {
		opt(&cfg)
	}
	l := &lowerer{log: cfg.logger}
	return l.document(doc)
}

func (l *lowerer) document(doc *document.Document) *oas.Document {
	out := &oas.Document{
		OpenAPI: text(doc.OpenAPI),
		Info:    lowerInfo(doc.Info),
		Servers: l.servers(doc.Servers),
		Paths:   l.paths(doc.Paths),
	}
	if len(doc.Schemas) > 0 {
		schemas := ordered.NewMap[*oas.Schema]()
		for _, ns := range doc.Schemas {
			name := text(ns.Name)
			if schemas.Has(name) {
				l.log.Debug("duplicate schema name, later definition wins", "name", name)
			}
			schemas.Set(name, lowerSchema(ns.Schema))
		}
		out.Components = &oas.Components{Schemas: schemas}
	}
	if len(doc.Tags) > 0 {
		out.Tags = make([]*oas.Tag, 0, len(doc.Tags))
		for _, t := range doc.Tags {
			out.Tags = append(out.Tags, &oas.Tag{Name: text(t.Name), Description: str(t.Description)})
		}
	}
	l.log.Debug("transformed document",
		"paths", out.Paths.Len(),
		"servers", len(out.Servers),
		"schemas", len(doc.Schemas))
	return out
}

func lowerInfo(info document.Info) *oas.Info {
	out := &oas.Info{
		Title:          text(info.Title),
		Version:        text(info.Version),
		Description:    str(info.Description),
		TermsOfService: str(info.TermsOfService),
	}
	if c := info.Contact; c != nil {
		contact := &oas.Contact{Name: str(c.Name), URL: str(c.URL), Email: str(c.Email)}
		if *contact != (oas.Contact{}) {
			out.Contact = contact
		}
	}
	if lic := info.License; lic != nil {
		out.License = &oas.License{Name: text(lic.Name), URL: str(lic.URL), Identifier: str(lic.Identifier)}
	}
	return out
}

func (l *lowerer) servers(servers []document.Server) []*oas.Server {
	out := make([]*oas.Server, 0, len(servers))
	for i, s := range servers {
		if strings.TrimSpace(s.URL) == "" {
			l.log.Debug("dropped server with blank url", "index", i)
			continue
		}
		out = append(out, &oas.Server{URL: text(s.URL), Description: str(s.Description)})
	}
	return out
}

func (l *lowerer) paths(items []document.PathItem) *ordered.Map[*oas.PathItem] {
	out := ordered.NewMap[*oas.PathItem]()
	for _, item := range items {
		path := text(item.Path)
		ops, merged := out.Get(path)
		if merged {
			l.log.Debug("merged duplicate path", "path", path)
		} else {
			ops = ordered.NewMap[*oas.Operation]()
			out.Set(path, ops)
		}
		for _, op := range item.Operations {
			method := strings.ToLower(text(string(op.Method)))
			if ops.Has(method) {
				l.log.Debug("operation replaced by later one", "path", path, "method", method)
			}
			ops.Set(method, lowerOperation(op))
		}
	}
	return out
}

func lowerOperation(op document.Operation) *oas.Operation {
	out := &oas.Operation{
		Summary:     str(op.Summary),
		Description: str(op.Description),
		OperationID: str(op.OperationID),
		Responses:   ordered.NewMap[*oas.Response](),
	}
	if len(op.Tags) > 0 {
		out.Tags = texts(op.Tags)
	}
	if len(op.Parameters) > 0 {
		out.Parameters = make([]*oas.Parameter, 0, len(op.Parameters))
		for _, p := range op.Parameters {
			out.Parameters = append(out.Parameters, &oas.Parameter{
				Name:        text(p.Name),
				In:          text(string(p.In)),
				Description: str(p.Description),
				Required:    p.Required,
				Schema:      lowerSchema(p.Schema),
			})
		}
	}
	if rb := op.RequestBody; rb != nil {
		out.RequestBody = &oas.RequestBody{
			Description: str(rb.Description),
			Required:    rb.Required,
			Content:     lowerContent(rb.Content),
		}
		if out.RequestBody.Content == nil {
			out.RequestBody.Content = ordered.NewMap[*oas.MediaType]()
		}
	}
	if len(op.Responses) == 0 {
		out.Responses.Set(DefaultStatusCode, &oas.Response{Description: DefaultResponseDescription})
		return out
	}
	for _, r := range op.Responses {
		desc := text(r.Description)
		if desc == "" {
			desc = FallbackResponseDescription
		}
		out.Responses.Set(text(r.StatusCode), &oas.Response{
			Description: desc,
			Content:     lowerContent(r.Content),
		})
	}
	return out
}

func lowerContent(c *document.Content) *oas.Content {
	if c == nil {
		return nil
	}
	return rekey(c, func(mt document.MediaType) *oas.MediaType {
		return &oas.MediaType{Schema: lowerSlot(mt.Schema)}
	})
}

func lowerSlot(slot document.SchemaOrRef) *oas.SchemaRef {
	if ref, ok := slot.Ref.Get(); ok {
		return oas.RefSchema(text(ref))
	}
	return oas.InlineSchema(lowerSchema(slot.Schema))
}

// lowerSchema recursively lowers s. Items are emitted for arrays only and
// properties/required for objects only; nothing is synthesized when they are
// missing. A schema without a type is lowered as a string.
func lowerSchema(s document.Schema) *oas.Schema {
	typ := s.Type
	if typ == "" {
		typ = document.TypeString
	}
	out := &oas.Schema{
		Type:        text(string(typ)),
		Format:      str(s.Format),
		Description: str(s.Description),
		Example:     str(s.Example),
	}
	if len(s.Enum) > 0 {
		out.Enum = texts(s.Enum)
	}
	switch s.Type {
	case document.TypeArray:
		if s.Items != nil {
			out.Items = lowerSchema(*s.Items)
		}
	case document.TypeObject:
		if s.Properties != nil {
			out.Properties = rekey(s.Properties, lowerSchema)
		}
		if len(s.Required) > 0 {
			out.Required = texts(s.Required)
		}
	}
	return out
}

// str returns the value of a present option, or "" for an absent one. The
// output types drop empty strings, so Some("") is emitted like None.
func str(o document.Optional[string]) string {
	return text(o.OrElse(""))
}

// text replaces invalid UTF-8 with U+FFFD. Left alone, the YAML encoder
// writes such a string as !!binary while encoding/json substitutes the
// bytes, so every string reaching the output tree goes through here.
func text(s string) string {
	return strings.ToValidUTF8(s, string(utf8.RuneError))
}

func texts(ss []string) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = text(s)
	}
	return out
}

// rekey is ordered.Transform with every key passed through text. Keys that
// collide after replacement keep the first position and the later value.
func rekey[V, W any](m *ordered.Map[V], fn func(V) W) *ordered.Map[W] {
	out := ordered.NewMap[W]()
	for k, v := range m.All() {
		out.Set(text(k), fn(v))
	}
	return out
}
