package fields

// Draft is the ephemeral working copy of a record while a form is open.
// Every keystroke writes into the draft as a string; type coercion, if any,
// happens when the page controller submits. Cancelled drafts are discarded.
type Draft map[string]any

// SeedDraft builds the initial draft for a form. A non-nil initial record
// (edit) is shallow-copied; otherwise defaults are derived from the field
// list: 0 for numeric fields, the empty string for everything else.
func SeedDraft(ff []FormField, initial map[string]any) Draft {
	d := make(Draft, len(ff))
	if initial != nil {
		for k, v := range initial {
			d[k] = v
		}
		return d
	}
	for _, f := range ff {
		if f.Type == FormNumber {
			d[f.Name] = 0
		} else {
			d[f.Name] = ""
		}
	}
	return d
}

// WithoutID returns a copy of the draft with the server-assigned id removed,
// the shape expected by create and update payloads.
func (d Draft) WithoutID() Draft {
	out := make(Draft, len(d))
	for k, v := range d {
		if k == "id" {
			continue
		}
		out[k] = v
	}
	return out
}
