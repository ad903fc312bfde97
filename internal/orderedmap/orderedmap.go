// Package orderedmap implements an insertion-order-preserving map from
// string keys to a closed set of JSON-serializable value shapes. It backs
// the greeter's free-form options so report rendering stays byte-stable
// across identical states.
package orderedmap

import (
	"fmt"
	"sort"
	"time"

	gojson "github.com/goccy/go-json"
)

// Value is the closed set of shapes an option may hold: String, Number,
// Bool, List and nested *Map.
type Value interface {
	isValue()
}

// String holds a text value.
type String string

// Number holds a numeric value.
type Number float64

// Bool holds a boolean value.
type Bool bool

// List holds an ordered sequence of values.
type List []Value

func (String) isValue() {}
func (Number) isValue() {}
func (Bool) isValue()   {}
func (List) isValue()   {}
func (*Map) isValue()   {}

// Map preserves first-insertion key order; overwriting an existing key keeps
// its original position. The zero value is not usable, call New.
type Map struct {
	keys   []string
	values map[string]Value
}

// New creates an empty map.
func New() *Map {
	return &Map{
		values: make(map[string]Value),
	}
}

// Set stores value under key, appending the key on first insertion.
func (m *Map) Set(key string, value Value) {
	if _, exists := m.values[key]; !exists {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
}

// Get retrieves the value stored under key.
func (m *Map) Get(key string) (Value, bool) {
	value, ok := m.values[key]
	return value, ok
}

// Delete removes key, preserving the order of the remaining keys.
func (m *Map) Delete(key string) {
	if _, exists := m.values[key]; !exists {
		return
	}
	delete(m.values, key)
	for i, k := range m.keys {
		if k == key {
			m.keys = append(m.keys[:i], m.keys[i+1:]...)
			break
		}
	}
}

// Len returns the number of entries.
func (m *Map) Len() int {
	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// MarshalJSON renders the map as a JSON object with keys in insertion order.
func (m *Map) MarshalJSON() ([]byte, error) {
	if m == nil || len(m.keys) == 0 {
		return []byte("{}"), nil
	}

	buf := make([]byte, 0, 16*len(m.keys))
	buf = append(buf, '{')
	for i, key := range m.keys {
		if i > 0 {
			buf = append(buf, ',')
		}
		keyJSON, err := gojson.Marshal(key)
		if err != nil {
			return nil, err
		}
		buf = append(buf, keyJSON...)
		buf = append(buf, ':')
		valueJSON, err := gojson.Marshal(m.values[key])
		if err != nil {
			return nil, err
		}
		buf = append(buf, valueJSON...)
	}
	buf = append(buf, '}')
	return buf, nil
}

// FromAny converts an arbitrary Go value into the closed Value set. Unknown
// types fall back to their string rendering; conversion never fails. Plain
// Go maps carry no ordering, so their keys are sorted for stability.
func FromAny(v any) Value {
	switch value := v.(type) {
	case nil:
		return String("")
	case Value:
		return value
	case string:
		return String(value)
	case bool:
		return Bool(value)
	case int:
		return Number(float64(value))
	case int32:
		return Number(float64(value))
	case int64:
		return Number(float64(value))
	case uint:
		return Number(float64(value))
	case uint64:
		return Number(float64(value))
	case float32:
		return Number(float64(value))
	case float64:
		return Number(value)
	case time.Duration:
		return String(value.String())
	case []string:
		list := make(List, 0, len(value))
		for _, item := range value {
			list = append(list, String(item))
		}
		return list
	case []any:
		list := make(List, 0, len(value))
		for _, item := range value {
			list = append(list, FromAny(item))
		}
		return list
	case map[string]any:
		keys := make([]string, 0, len(value))
		for key := range value {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		m := New()
		for _, key := range keys {
			m.Set(key, FromAny(value[key]))
		}
		return m
	default:
		return String(fmt.Sprintf("%v", value))
	}
}

// ToAny converts a Value back to a plain Go value.
func ToAny(v Value) any {
	switch value := v.(type) {
	case String:
		return string(value)
	case Number:
		return float64(value)
	case Bool:
		return bool(value)
	case List:
		out := make([]any, 0, len(value))
		for _, item := range value {
			out = append(out, ToAny(item))
		}
		return out
	case *Map:
		out := make(map[string]any, value.Len())
		for _, key := range value.Keys() {
			item, _ := value.Get(key)
			out[key] = ToAny(item)
		}
		return out
	default:
		return nil
	}
}
