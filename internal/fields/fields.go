// Package fields defines the declarative field descriptors that drive the
// generic form and detail renderers. A descriptor is pure data: it names a
// record attribute and says how to edit or display it. Every page in the
// client is parameterized by two descriptor arrays instead of hand-written
// markup.
package fields

// FormFieldType selects the input widget used to edit a field.
type FormFieldType string

const (
	FormText     FormFieldType = "text"
	FormNumber   FormFieldType = "number"
	FormDate     FormFieldType = "date"
	FormSelect   FormFieldType = "select"
	FormTextarea FormFieldType = "textarea"
)

// FormField describes one editable record attribute.
type FormField struct {
	// Name maps to a record attribute key.
	Name  string
	Label string
	Type  FormFieldType
	// Options is the closed set of legal values; set only when Type is FormSelect.
	Options []string
	// Required fields block submission while empty.
	Required bool
}

// ViewFieldType selects display formatting only; view fields never edit.
type ViewFieldType string

const (
	ViewText       ViewFieldType = "text"
	ViewNumber     ViewFieldType = "number"
	ViewDate       ViewFieldType = "date"
	ViewCurrency   ViewFieldType = "currency"
	ViewPercentage ViewFieldType = "percentage"
	ViewStatus     ViewFieldType = "status"
)

// ViewField describes one read-only record attribute in the detail view.
type ViewField struct {
	Name  string
	Label string
	Type  ViewFieldType
}
