// Package record holds the generic record shape shared by every module and
// the pure helpers that operate on it: server date normalization, the search
// filter, CSV serialization and display formatting. Records stay untyped maps
// because each module defines its attribute set as descriptor configuration,
// not as a Go struct.
package record

import (
	"fmt"
	"strconv"
)

// Record is one row of a module collection as returned by the backend.
// The "id" attribute is server-assigned and immutable after creation.
type Record map[string]any

// ID returns the record id as a string. JSON numbers arrive as float64;
// integral values are rendered without a fraction so "3" matches the path
// segment the backend expects.
func (r Record) ID() string {
	switch v := r["id"].(type) {
	case string:
		return v
	case float64:
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case nil:
		return ""
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Clone returns a shallow copy of the record.
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Stringify renders an attribute value for table cells and CSV export.
// Missing and nil values become the empty string.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10)
		}
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
