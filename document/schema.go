package document

import (
	"encoding/json"
	"slices"

	"github.com/erraggy/oasdraft/ordered"
)

// SchemaType is the JSON type of a schema.
type SchemaType string

// Schema types.
const (
	TypeString  SchemaType = "string"
	TypeNumber  SchemaType = "number"
	TypeInteger SchemaType = "integer"
	TypeBoolean SchemaType = "boolean"
	TypeArray   SchemaType = "array"
	TypeObject  SchemaType = "object"
	TypeNull    SchemaType = "null"
)

// StringFormats are the formats offered for string schemas.
var StringFormats = []string{"date", "date-time", "email", "uri", "uuid", "password"}

// NumberFormats are the formats offered for number and integer schemas.
var NumberFormats = []string{"float", "double", "int32", "int64"}

// FormatsFor returns the formats offered for t, or nil when t takes none.
func FormatsFor(t SchemaType) []string {
	switch t {
	case TypeString:
		return StringFormats
	case TypeNumber, TypeInteger:
		return NumberFormats
	default:
		return nil
	}
}

// Properties maps property names to their schemas in declaration order.
type Properties = ordered.Map[Schema]

// Schema is a recursive schema definition.
//
// Items is meaningful for arrays only and Properties/Required for objects
// only. Required should name keys of Properties; this is not enforced, and
// stale names are reported by the check package.
type Schema struct {
	Type        SchemaType       `json:"type,omitempty"`
	Format      Optional[string] `json:"format,omitzero"`
	Description Optional[string] `json:"description,omitzero"`
	Example     Optional[string] `json:"example,omitzero"`
	Enum        []string         `json:"enum,omitempty"`
	Items       *Schema          `json:"items,omitempty"`
	Properties  *Properties      `json:"properties,omitempty"`
	Required    []string         `json:"required,omitempty"`
}

// String returns a schema of type string.
func String() Schema { return Schema{Type: TypeString} }

// Object returns an object schema with an empty property set.
func Object() Schema { return Schema{Type: TypeObject, Properties: ordered.NewMap[Schema]()} }

// ArrayOf returns an array schema of items.
func ArrayOf(items Schema) Schema { return Schema{Type: TypeArray, Items: &items} }

// IsRequired reports whether name is listed in Required.
func (s Schema) IsRequired(name string) bool {
	return slices.Contains(s.Required, name)
}

// Clone returns a deep copy of s.
func (s Schema) Clone() Schema {
	c := s
	c.Enum = slices.Clone(s.Enum)
	c.Required = slices.Clone(s.Required)
	if s.Items != nil {
		items := s.Items.Clone()
		c.Items = &items
	}
	c.Properties = ordered.Transform(s.Properties, Schema.Clone)
	return c
}

// SchemaOrRef is a schema slot that holds either a reference to a named
// schema or an inline schema. A present Ref takes precedence over Schema.
type SchemaOrRef struct {
	Ref    Optional[string]
	Schema Schema
}

// Ref returns a slot referencing the registry schema called name.
func Ref(name string) SchemaOrRef {
	return SchemaOrRef{Ref: Some(RefTo(name))}
}

// Inline returns a slot holding s.
func Inline(s Schema) SchemaOrRef {
	return SchemaOrRef{Schema: s}
}

// IsRef reports whether the slot holds a reference.
func (s SchemaOrRef) IsRef() bool {
	return s.Ref.IsSet()
}

// MarshalJSON implements json.Marshaler.
func (s SchemaOrRef) MarshalJSON() ([]byte, error) {
	if ref, ok := s.Ref.Get(); ok {
		return json.Marshal(map[string]string{"$ref": ref})
	}
	return json.Marshal(s.Schema)
}

// UnmarshalJSON implements json.Unmarshaler. Any object with a "$ref" key
// decodes as a reference.
func (s *SchemaOrRef) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref *string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != nil {
		*s = SchemaOrRef{Ref: Some(*probe.Ref)}
		return nil
	}
	var schema Schema
	if err := json.Unmarshal(data, &schema); err != nil {
		return err
	}
	*s = SchemaOrRef{Schema: schema}
	return nil
}
