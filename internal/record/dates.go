package record

import (
	"fmt"
	"time"
)

// isoDate is the single date representation used everywhere downstream of
// fetch: table cells, form population and CSV export all assume it.
const isoDate = "2006-01-02"

// parseLayouts are tried, in order, when a date value is not already ISO.
var parseLayouts = []string{
	isoDate,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"02/01/2006",
	"01/02/2006",
}

// NormalizeDate converts a server date value to a YYYY-MM-DD string.
// The backend emits dates either as ISO strings or as [year, month, day]
// tuples (JSON numbers); both collapse to the same string. An already-ISO
// string is returned unchanged. The second return is false when the value
// has neither shape.
func NormalizeDate(v any) (string, bool) {
	switch t := v.(type) {
	case string:
		if t == "" {
			return "", false
		}
		// Reformat rather than pass through: time.Parse accepts zero-elided
		// forms like "2024-3-5", which must still collapse to one encoding.
		if parsed, err := time.Parse(isoDate, t); err == nil {
			return parsed.Format(isoDate), true
		}
		for _, layout := range parseLayouts[1:] {
			if parsed, err := time.Parse(layout, t); err == nil {
				return parsed.Format(isoDate), true
			}
		}
		return t, false
	case []any:
		if len(t) != 3 {
			return "", false
		}
		parts := make([]int, 3)
		for i, p := range t {
			n, ok := p.(float64)
			if !ok {
				return "", false
			}
			parts[i] = int(n)
		}
		return fmt.Sprintf("%04d-%02d-%02d", parts[0], parts[1], parts[2]), true
	case []int:
		if len(t) != 3 {
			return "", false
		}
		return fmt.Sprintf("%04d-%02d-%02d", t[0], t[1], t[2]), true
	default:
		return "", false
	}
}

// NormalizeDates rewrites the named date attributes of a record in place.
// Called exactly once per record, at fetch time, so every downstream
// consumer can assume the ISO form. Values that cannot be interpreted are
// left untouched.
func NormalizeDates(r Record, dateFields []string) {
	for _, name := range dateFields {
		v, ok := r[name]
		if !ok || v == nil {
			continue
		}
		if iso, ok := NormalizeDate(v); ok {
			r[name] = iso
		}
	}
}

// DisplayDate renders a stored value for the date input widget: pass-through
// if already YYYY-MM-DD, otherwise a generic parse and reformat; empty when
// parsing fails.
func DisplayDate(v any) string {
	iso, ok := NormalizeDate(v)
	if !ok {
		return ""
	}
	return iso
}
