package document

import (
	"slices"
	"strconv"
	"strings"

	"github.com/erraggy/oasdraft/internal/pathutil"
	"github.com/erraggy/oasdraft/oaserrors"
	"github.com/erraggy/oasdraft/ordered"
)

// Step is one hop into a nested schema: either a named property or the
// items schema of an array.
type Step struct {
	property string
	items    bool
}

// PropertyStep addresses the property called name.
func PropertyStep(name string) Step { return Step{property: name} }

// ItemsStep addresses the items schema of an array.
func ItemsStep() Step { return Step{items: true} }

// SchemaPath addresses a schema nested inside another schema. The empty
// path addresses the root.
type SchemaPath []Step

// String renders the path as it appears in diagnostics, for example
// "properties.address.items".
func (p SchemaPath) String() string {
	b := pathutil.Get()
	defer pathutil.Put(b)
	for _, s := range p {
		if s.items {
			b.Push("items")
			continue
		}
		b.Push("properties")
		b.PushKey(s.property)
	}
	return b.String()
}

func (s Step) resolve(parent Schema) (Schema, bool) {
	if s.items {
		if parent.Items == nil {
			return Schema{}, false
		}
		return *parent.Items, true
	}
	return parent.Properties.Get(s.property)
}

func (s Step) replace(parent Schema, child Schema) Schema {
	if s.items {
		parent.Items = &child
		return parent
	}
	props := parent.Properties.Clone()
	props.Set(s.property, child)
	parent.Properties = props
	return parent
}

// At returns the schema nested at path.
func (s Schema) At(path SchemaPath) (Schema, error) {
	cur := s
	for i, step := range path {
		next, ok := step.resolve(cur)
		if !ok {
			return Schema{}, noSchemaAt(path[:i+1])
		}
		cur = next
	}
	return cur, nil
}

// Edit returns a copy of s with the schema at path replaced by fn's result.
// Only the schemas along path are copied.
func (s Schema) Edit(path SchemaPath, fn func(Schema) Schema) (Schema, error) {
	if len(path) == 0 {
		return fn(s), nil
	}
	child, ok := path[0].resolve(s)
	if !ok {
		return s, noSchemaAt(path[:1])
	}
	edited, err := child.Edit(path[1:], fn)
	if err != nil {
		return s, err
	}
	return path[0].replace(s, edited), nil
}

// ReplaceAt returns a copy of s with the schema at path replaced by sub.
func (s Schema) ReplaceAt(path SchemaPath, sub Schema) (Schema, error) {
	return s.Edit(path, func(Schema) Schema { return sub })
}

func noSchemaAt(path SchemaPath) error {
	return &oaserrors.ValidationError{Path: path.String(), Message: "no schema at path"}
}

// AddProperty adds a string property named "propertyN", where N is one more
// than the number of existing properties, bumped until the name is free.
// It returns the updated schema and the new name.
func (s Schema) AddProperty() (Schema, string) {
	n := s.Properties.Len() + 1
	name := "property" + strconv.Itoa(n)
	for s.Properties.Has(name) {
		n++
		name = "property" + strconv.Itoa(n)
	}
	return s.SetProperty(name, String()), name
}

// SetProperty returns s with the property name set to sub. A new name is
// appended; an existing one keeps its position.
func (s Schema) SetProperty(name string, sub Schema) Schema {
	props := s.Properties.Clone()
	if props == nil {
		props = ordered.NewMap[Schema]()
	}
	props.Set(name, sub)
	s.Properties = props
	return s
}

// RenameProperty renames the property from to to. The renamed property moves
// to the end of the property order, and a required entry for it moves to the
// end of Required. If to already names another property, that entry keeps
// its position and takes the renamed property's schema.
func (s Schema) RenameProperty(from, to string) Schema {
	prop, ok := s.Properties.Get(from)
	if !ok || from == to {
		return s
	}
	props := s.Properties.Clone()
	props.Delete(from)
	props.Set(to, prop)
	s.Properties = props

	if s.IsRequired(from) {
		required := slices.DeleteFunc(slices.Clone(s.Required), func(r string) bool { return r == from })
		if !slices.Contains(required, to) {
			required = append(required, to)
		}
		s.Required = required
	}
	return s
}

// RemoveProperty removes the property name and its required entry. A schema
// left with no properties loses its Properties entirely, and one left with
// no required names loses Required.
func (s Schema) RemoveProperty(name string) Schema {
	if !s.Properties.Has(name) {
		return s
	}
	props := s.Properties.Clone()
	props.Delete(name)
	if props.Len() == 0 {
		props = nil
	}
	s.Properties = props
	return s.SetRequired(name, false)
}

// SetRequired adds name to or removes it from Required.
func (s Schema) SetRequired(name string, required bool) Schema {
	if required {
		if !s.IsRequired(name) {
			s.Required = append(slices.Clone(s.Required), name)
		}
		return s
	}
	out := slices.DeleteFunc(slices.Clone(s.Required), func(r string) bool { return r == name })
	if len(out) == 0 {
		out = nil
	}
	s.Required = out
	return s
}

// WithType changes the schema's type and keeps the structural fields
// consistent with it: switching to object adds an empty property set,
// switching to array adds string items, and leaving either kind drops the
// fields that only kind uses.
func (s Schema) WithType(t SchemaType) Schema {
	if t != TypeObject {
		s.Properties = nil
		s.Required = nil
	} else if s.Properties == nil {
		s.Properties = ordered.NewMap[Schema]()
	}
	if t != TypeArray {
		s.Items = nil
	} else if s.Items == nil {
		items := String()
		s.Items = &items
	}
	s.Type = t
	return s
}

// WithItemsType replaces the items schema with a fresh schema of type t.
func (s Schema) WithItemsType(t SchemaType) Schema {
	items := Schema{}.WithType(t)
	s.Items = &items
	return s
}

// ParseEnum splits a comma separated list of enum values, trimming blanks and
// dropping empty entries. It returns nil when nothing is left.
func ParseEnum(csv string) []string {
	var out []string
	for v := range strings.SplitSeq(csv, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}
