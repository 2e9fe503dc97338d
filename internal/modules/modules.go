// Package modules defines every IDMS module as pure configuration: a
// collection path plus the descriptor arrays that drive the generic form,
// detail and table renderers. Adding a module means adding a Definition
// here, with no new rendering or synchronization code.
package modules

import (
	"idms/internal/fields"
)

// Column is one table column on a module's list page.
type Column struct {
	Name  string
	Label string
}

// Definition is the full configuration of one module.
type Definition struct {
	// Key is the stable short name used on the CLI and in config.
	Key        string
	Title      string
	Collection string

	FormFields []fields.FormField
	ViewFields []fields.ViewField
	Columns    []Column

	// Searchable names the attributes matched by the search box.
	Searchable []string
	// DateFields are normalized from the server's tuple encoding at fetch time.
	DateFields []string
	// NumberFields are coerced from the string draft on submit.
	NumberFields []string

	// CSVHeader and CSVFields define the export layout.
	CSVHeader []string
	CSVFields []string

	// PayloadRenames maps client-side attribute names to the names the
	// backend expects in create/update payloads.
	PayloadRenames map[string]string

	// UploadField, when set, names the attribute that receives uploaded file
	// URLs; UploadMultiple selects the array form over a single URL.
	UploadField    string
	UploadMultiple bool

	// LookupFields maps select-field names to backend lookup endpoints that
	// supply their options at form-open time.
	LookupFields map[string]string

	// Validate, when set, runs against the draft before submission.
	Validate func(d fields.Draft) error
}

// All returns every module definition in display order.
func All() []Definition {
	return []Definition{
		bankModule(),
		billingModule(),
		caModule(),
		financeModule(),
		logisticsModule(),
		purchaseModule(),
		registrationModule(),
		salesModule(),
		tenderModule(),
		employeesModule(),
		reportsModule(),
		simBillsModule(),
	}
}

// ByKey returns the definition for a module key, and whether it exists.
func ByKey(key string) (Definition, bool) {
	for _, d := range All() {
		if d.Key == key {
			return d, true
		}
	}
	return Definition{}, false
}

// Keys returns all module keys in display order.
func Keys() []string {
	defs := All()
	keys := make([]string, len(defs))
	for i, d := range defs {
		keys[i] = d.Key
	}
	return keys
}

// RenamePayload applies the module's client-to-server attribute renames to a
// draft, returning a new draft.
func (d Definition) RenamePayload(draft fields.Draft) fields.Draft {
	if len(d.PayloadRenames) == 0 {
		return draft
	}
	out := make(fields.Draft, len(draft))
	for k, v := range draft {
		if to, ok := d.PayloadRenames[k]; ok {
			out[to] = v
		} else {
			out[k] = v
		}
	}
	return out
}

// columnsOf derives table columns from view fields, keeping the list page
// and detail view in lockstep unless a module overrides its columns.
func columnsOf(vf []fields.ViewField, names ...string) []Column {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var cols []Column
	for _, f := range vf {
		if want[f.Name] {
			cols = append(cols, Column{Name: f.Name, Label: f.Label})
		}
	}
	return cols
}

// csvLayout derives the export header and field order from view fields.
func csvLayout(vf []fields.ViewField) (header, names []string) {
	header = make([]string, 0, len(vf)+1)
	names = make([]string, 0, len(vf)+1)
	header = append(header, "ID")
	names = append(names, "id")
	for _, f := range vf {
		header = append(header, f.Label)
		names = append(names, f.Name)
	}
	return header, names
}
