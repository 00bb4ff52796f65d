package eleyo

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Value is a decoded JSON document: an object, array, string, number, bool or null.
// Objects decode to map[string]any, arrays to []any and numbers to json.Number.
type Value struct {
	v any
}

// NewValue wraps an already decoded value.
func NewValue(v any) Value {
	return Value{v: v}
}

// ParseValue decodes a JSON document. An empty body is null.
func ParseValue(data []byte) (Value, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return Value{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return Value{}, fmt.Errorf("failed to parse json: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return Value{}, fmt.Errorf("failed to parse json: unexpected data after top-level value")
	}

	return Value{v: v}, nil
}

// Raw returns the underlying decoded value.
func (v Value) Raw() any {
	return v.v
}

func (v Value) IsNull() bool {
	return v.v == nil
}

func (v Value) Object() (map[string]any, bool) {
	m, ok := v.v.(map[string]any)
	return m, ok
}

func (v Value) Array() ([]any, bool) {
	a, ok := v.v.([]any)
	return a, ok
}

func (v Value) Text() (string, bool) {
	s, ok := v.v.(string)
	return s, ok
}

func (v Value) Bool() (bool, bool) {
	b, ok := v.v.(bool)
	return b, ok
}

func (v Value) Number() (json.Number, bool) {
	n, ok := v.v.(json.Number)
	return n, ok
}

// Get returns the member key of an object, or null.
func (v Value) Get(key string) Value {
	m, ok := v.Object()
	if !ok {
		return Value{}
	}
	return Value{v: m[key]}
}

// Index returns element i of an array, or null when out of range.
func (v Value) Index(i int) Value {
	a, ok := v.Array()
	if !ok || i < 0 || i >= len(a) {
		return Value{}
	}
	return Value{v: a[i]}
}

// Len is the number of elements of an array or members of an object.
func (v Value) Len() int {
	switch t := v.v.(type) {
	case []any:
		return len(t)
	case map[string]any:
		return len(t)
	default:
		return 0
	}
}

func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v)
}

func (v *Value) UnmarshalJSON(data []byte) error {
	parsed, err := ParseValue(data)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
