package record

import "strings"

// Filter returns the records whose designated searchable attributes contain
// the term as a case-insensitive substring. It is a pure function of its
// inputs: the source list is never mutated and an empty term returns a copy
// of the full list, so callers can re-filter on every keystroke.
func Filter(list []Record, term string, searchable []string) []Record {
	out := make([]Record, 0, len(list))
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		out = append(out, list...)
		return out
	}
	for _, r := range list {
		for _, name := range searchable {
			if strings.Contains(strings.ToLower(Stringify(r[name])), needle) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
