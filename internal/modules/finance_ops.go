package modules

import (
	"idms/internal/fields"
)

// simBillsModule tracks the fixed-expense SIM bills. The bill document is
// uploaded first; the record submission carries the resulting URL.
func simBillsModule() Definition {
	ff := []fields.FormField{
		{Name: "simNumber", Label: "SIM Number", Type: fields.FormText, Required: true},
		{Name: "provider", Label: "Provider", Type: fields.FormSelect, Options: []string{"Airtel", "Jio", "Vi", "BSNL"}, Required: true},
		{Name: "phoneNumber", Label: "Phone Number", Type: fields.FormText, Required: true},
		{Name: "assignedTo", Label: "Assigned To", Type: fields.FormText},
		{Name: "billMonth", Label: "Bill Month", Type: fields.FormDate, Required: true},
		{Name: "amount", Label: "Amount", Type: fields.FormNumber, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Paid", "Pending", "Overdue"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "simNumber", Label: "SIM Number", Type: fields.ViewText},
		{Name: "provider", Label: "Provider", Type: fields.ViewText},
		{Name: "phoneNumber", Label: "Phone Number", Type: fields.ViewText},
		{Name: "assignedTo", Label: "Assigned To", Type: fields.ViewText},
		{Name: "billMonth", Label: "Bill Month", Type: fields.ViewDate},
		{Name: "amount", Label: "Amount", Type: fields.ViewCurrency},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "documentUrl", Label: "Bill Document", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "simbills",
		Title:        "SIM Bills",
		Collection:   "sim-bills",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "simNumber", "provider", "amount", "status"),
		Searchable:   []string{"simNumber", "provider", "phoneNumber", "assignedTo", "status"},
		DateFields:   []string{"billMonth"},
		NumberFields: []string{"amount"},
		CSVHeader:    header,
		CSVFields:    names,
		UploadField:  "documentUrl",
	}
}
