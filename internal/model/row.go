package model

import (
	"bytes"
	"encoding/json"
)

// Row is a single result row from the DNC decision service. The column set
// is not fixed at compile time: stored procedures are free to change shape,
// and the gateway relays whatever comes back. Column order is preserved and
// values are limited to the scalar kinds JSON can carry plus timestamps
// (string, int64, float64, bool, nil, time.Time).
type Row struct {
	cols []string
	vals map[string]any
}

// NewRow returns an empty Row.
func NewRow() Row {
	return Row{vals: make(map[string]any)}
}

// Set appends a column if the key is new, otherwise overwrites its value.
func (r *Row) Set(key string, value any) {
	if r.vals == nil {
		r.vals = make(map[string]any)
	}
	if _, exists := r.vals[key]; !exists {
		r.cols = append(r.cols, key)
	}
	r.vals[key] = value
}

// Get returns the value for a column and whether the column is present.
func (r Row) Get(key string) (any, bool) {
	v, ok := r.vals[key]
	return v, ok
}

// Columns returns the column names in their original order.
func (r Row) Columns() []string {
	return r.cols
}

// Len returns the number of columns.
func (r Row) Len() int {
	return len(r.cols)
}

// MarshalJSON renders the row as a JSON object with columns in their
// original order.
func (r Row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, col := range r.cols {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(col)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		val, err := json.Marshal(r.vals[col])
		if err != nil {
			return nil, err
		}
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
