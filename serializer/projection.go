// Package serializer projects rows onto a fixed subset of their columns for JSON output.
package serializer

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Fielder is implemented by rows that can report a column value by name
type Fielder interface {
	Field(name string) (any, bool)
}

// Projection is an ordered set of column names and values.
// It marshals to a JSON object whose keys follow the requested order.
type Projection struct {
	keys   []string
	values map[string]any
}

// Project picks the named fields off row. A field the row does not have maps to nil.
// Repeated names are kept once, at their first position.
func Project(row Fielder, fields ...string) Projection {
	p := Projection{
		keys:   make([]string, 0, len(fields)),
		values: make(map[string]any, len(fields)),
	}

	for _, name := range fields {
		if _, seen := p.values[name]; seen {
			continue
		}

		var value any
		if row != nil {
			if v, ok := row.Field(name); ok {
				value = v
			}
		}

		p.keys = append(p.keys, name)
		p.values[name] = value
	}

	return p
}

// ProjectAll projects every row independently, preserving row order
func ProjectAll[T any, P interface {
	*T
	Fielder
}](rows []T, fields ...string) []Projection {
	out := make([]Projection, 0, len(rows))
	for i := range rows {
		out = append(out, Project(P(&rows[i]), fields...))
	}
	return out
}

// Keys returns the field names in output order
func (p Projection) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Get returns the projected value of a field
func (p Projection) Get(name string) (any, bool) {
	v, ok := p.values[name]
	return v, ok
}

func (p Projection) Len() int {
	return len(p.keys)
}

// MarshalJSON implements json.Marshaler
func (p Projection) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')

	for i, key := range p.keys {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(p.values[key])
		if err != nil {
			return nil, fmt.Errorf("failed to marshal field %s: %w", key, err)
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}

	buf.WriteByte('}')
	return buf.Bytes(), nil
}
