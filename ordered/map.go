// Package ordered provides an insertion-ordered string-keyed map used by the
// document model and the canonical OpenAPI tree.
//
// OpenAPI documents are mappings whose key order is meaningful to readers:
// paths appear in the order they were added, schema properties in the order
// they were declared. Go maps do not preserve order, so both the editor
// model and the export tree use [Map].
//
// Overwriting an existing key keeps the key's original position, matching
// how sequential insertion into a JSON object behaves:
//
//	m := ordered.NewMap[int]()
//	m.Set("a", 1)
//	m.Set("b", 2)
//	m.Set("a", 3) // order is still a, b
//
// Map marshals to JSON objects and YAML mappings in insertion order and
// decodes them back preserving the source order.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"
	"iter"
	"slices"

	"go.yaml.in/yaml/v4"
)

// Map is an insertion-ordered map with string keys.
// The zero value is an empty map ready to use.
type Map[V any] struct {
	keys   []string
	values map[string]V
}

// NewMap returns an empty Map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{values: make(map[string]V)}
}

// FromPairs builds a Map from key/value pairs. Later duplicates overwrite
// earlier ones in place.
func FromPairs[V any](pairs ...Pair[V]) *Map[V] {
	m := &Map[V]{values: make(map[string]V, len(pairs))}
	for _, p := range pairs {
		m.Set(p.Key, p.Value)
	}
	return m
}

// Pair is a single key/value entry.
type Pair[V any] struct {
	Key   string
	Value V
}

// P is shorthand for constructing a Pair.
func P[V any](key string, value V) Pair[V] {
	return Pair[V]{Key: key, Value: value}
}

// Set inserts or overwrites key. A new key is appended; an existing key keeps
// its position.
func (m *Map[V]) Set(key string, value V) {
	if m.values == nil {
		m.values = make(map[string]V)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key if present.
func (m *Map[V]) Delete(key string) {
	if m == nil {
		return
	}
	if _, ok := m.values[key]; !ok {
		return
	}
	delete(m.values, key)
	m.keys = slices.DeleteFunc(m.keys, func(k string) bool { return k == key })
}

// Len returns the number of entries. A nil Map has length 0.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// All iterates over entries in insertion order.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.values[k]) {
				return
			}
		}
	}
}

// Clone returns a shallow copy: keys and values are copied, values themselves
// are shared. A nil Map clones to nil.
func (m *Map[V]) Clone() *Map[V] {
	if m == nil {
		return nil
	}
	c := &Map[V]{
		keys:   slices.Clone(m.keys),
		values: make(map[string]V, len(m.values)),
	}
	for k, v := range m.values {
		c.values[k] = v
	}
	return c
}

// Transform returns a new Map with fn applied to every value, preserving order.
func Transform[V, W any](m *Map[V], fn func(V) W) *Map[W] {
	if m == nil {
		return nil
	}
	out := &Map[W]{
		keys:   slices.Clone(m.keys),
		values: make(map[string]W, len(m.values)),
	}
	for _, k := range m.keys {
		out.values[k] = fn(m.values[k])
	}
	return out
}

// MarshalJSON writes the entries as a JSON object in insertion order.
// encoding/json re-compacts the result, so HTML characters stay unescaped
// only when the caller's encoder has SetEscapeHTML(false).
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		keyJSON, err := MarshalJSONValue(k)
		if err != nil {
			return nil, err
		}
		buf.Write(keyJSON)
		buf.WriteByte(':')
		valJSON, err := MarshalJSONValue(m.values[k])
		if err != nil {
			return nil, fmt.Errorf("ordered: marshaling %q: %w", k, err)
		}
		buf.Write(valJSON)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, keeping the source key order.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("ordered: expected JSON object, got %v", tok)
	}
	m.keys = nil
	m.values = make(map[string]V)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("ordered: expected string key, got %v", tok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("ordered: decoding %q: %w", key, err)
		}
		m.Set(key, v)
	}
	_, err = dec.Token()
	return err
}

// MarshalYAML returns a mapping node with entries in insertion order.
func (m *Map[V]) MarshalYAML() (any, error) {
	node := &yaml.Node{
		Kind:    yaml.MappingNode,
		Tag:     "!!map",
		Content: make([]*yaml.Node, 0, 2*len(m.keys)),
	}
	for _, k := range m.keys {
		valNode := &yaml.Node{}
		if err := valNode.Encode(m.values[k]); err != nil {
			return nil, fmt.Errorf("ordered: encoding %q: %w", k, err)
		}
		node.Content = append(node.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k}, valNode)
	}
	return node, nil
}

// UnmarshalYAML decodes a mapping node, keeping the source key order.
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.AliasNode && node.Alias != nil {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("ordered: expected YAML mapping at line %d", node.Line)
	}
	m.keys = nil
	m.values = make(map[string]V, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		keyNode, valNode := node.Content[i], node.Content[i+1]
		var v V
		if err := valNode.Decode(&v); err != nil {
			return fmt.Errorf("ordered: decoding %q: %w", keyNode.Value, err)
		}
		m.Set(keyNode.Value, v)
	}
	return nil
}

// MarshalJSONValue marshals v to compact JSON without escaping HTML
// characters.
func MarshalJSONValue(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
