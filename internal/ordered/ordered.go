// Package ordered provides an insertion-ordered string-keyed map used by the
// OpenAPI document model. Generated output must follow source declaration
// order, and Go's built-in maps (and the default JSON/YAML decoding into
// them) do not preserve it.
package ordered

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Map is a string-keyed map that remembers insertion order. Overwriting an
// existing key keeps its original position, matching the merge semantics the
// generator relies on. The zero value is not usable; call NewMap.
type Map[V any] struct {
	keys []string
	vals map[string]V
}

// NewMap creates an empty ordered map.
func NewMap[V any]() *Map[V] {
	return &Map[V]{vals: make(map[string]V)}
}

// Set inserts or overwrites a key. A new key is appended to the iteration
// order; an existing key keeps its position.
func (m *Map[V]) Set(key string, value V) {
	if _, ok := m.vals[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.vals[key] = value
}

// Get returns the value for key and whether it was present.
func (m *Map[V]) Get(key string) (V, bool) {
	v, ok := m.vals[key]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is shared;
// callers must not modify it.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}
	return m.keys
}

// Len returns the number of entries. Safe on a nil map.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// MarshalJSON renders the map as a JSON object in insertion order.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.vals[k])
		if err != nil {
			return nil, fmt.Errorf("marshal value for key %q: %w", k, err)
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON decodes a JSON object, recording keys in document order.
func (m *Map[V]) UnmarshalJSON(data []byte) error {
	*m = Map[V]{vals: make(map[string]V)}
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil // JSON null, leave empty
	}
	delim, ok := tok.(json.Delim)
	if !ok || delim != '{' {
		return fmt.Errorf("ordered: expected object, got %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("ordered: expected object key, got %v", keyTok)
		}
		var v V
		if err := dec.Decode(&v); err != nil {
			return fmt.Errorf("ordered: decode value for key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	_, err = dec.Token() // consume closing brace
	return err
}

// UnmarshalYAML decodes a YAML mapping node, recording keys in document order.
func (m *Map[V]) UnmarshalYAML(node *yaml.Node) error {
	*m = Map[V]{vals: make(map[string]V)}
	if node.Kind == 0 || node.Tag == "!!null" {
		return nil
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("ordered: expected mapping node, got kind %d", node.Kind)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var key string
		if err := node.Content[i].Decode(&key); err != nil {
			return err
		}
		var v V
		if err := node.Content[i+1].Decode(&v); err != nil {
			return fmt.Errorf("ordered: decode value for key %q: %w", key, err)
		}
		m.Set(key, v)
	}
	return nil
}
