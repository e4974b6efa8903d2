package oas

import (
	"encoding/json"
	"fmt"

	"github.com/erraggy/oasdraft/ordered"
	"go.yaml.in/yaml/v4"
)

// SchemaRef holds either a reference to a component schema or an inline
// schema. When Ref is set it is emitted as a bare {"$ref": ...} object and
// Value is ignored.
type SchemaRef struct {
	Ref   string
	Value *Schema
}

// RefSchema returns a SchemaRef pointing at ref.
func RefSchema(ref string) *SchemaRef {
	return &SchemaRef{Ref: ref}
}

// InlineSchema returns a SchemaRef wrapping s.
func InlineSchema(s *Schema) *SchemaRef {
	return &SchemaRef{Value: s}
}

// IsRef reports whether the slot holds a reference.
func (r *SchemaRef) IsRef() bool {
	return r != nil && r.Ref != ""
}

type refObject struct {
	Ref string `yaml:"$ref" json:"$ref"`
}

// MarshalJSON implements json.Marshaler.
func (r *SchemaRef) MarshalJSON() ([]byte, error) {
	if r.IsRef() {
		return ordered.MarshalJSONValue(refObject{Ref: r.Ref})
	}
	if r.Value == nil {
		return nil, fmt.Errorf("oas: schema slot holds neither $ref nor inline schema")
	}
	return ordered.MarshalJSONValue(r.Value)
}

// UnmarshalJSON implements json.Unmarshaler. A "$ref" key takes precedence
// over any sibling keys.
func (r *SchemaRef) UnmarshalJSON(data []byte) error {
	var probe struct {
		Ref *string `json:"$ref"`
	}
	if err := json.Unmarshal(data, &probe); err != nil {
		return err
	}
	if probe.Ref != nil {
		*r = SchemaRef{Ref: *probe.Ref}
		return nil
	}
	var s Schema
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*r = SchemaRef{Value: &s}
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (r *SchemaRef) MarshalYAML() (any, error) {
	if r.IsRef() {
		return refObject{Ref: r.Ref}, nil
	}
	if r.Value == nil {
		return nil, fmt.Errorf("oas: schema slot holds neither $ref nor inline schema")
	}
	return r.Value, nil
}

// UnmarshalYAML implements yaml.Unmarshaler. A "$ref" key takes precedence
// over any sibling keys.
func (r *SchemaRef) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.MappingNode {
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "$ref" {
				*r = SchemaRef{Ref: node.Content[i+1].Value}
				return nil
			}
		}
	}
	var s Schema
	if err := node.Decode(&s); err != nil {
		return err
	}
	*r = SchemaRef{Value: &s}
	return nil
}
