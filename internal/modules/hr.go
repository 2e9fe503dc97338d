package modules

import (
	"fmt"
	"regexp"
	"strings"

	"idms/internal/fields"
)

// The HR modules: employee lifecycle and report filing. Employees is the one
// module with client-side validation beyond required fields; the original
// joining form checked email shape, a 10-digit phone and a minimum password
// length before touching the network.

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 8

func employeesModule() Definition {
	ff := []fields.FormField{
		{Name: "name", Label: "Full Name", Type: fields.FormText, Required: true},
		{Name: "email", Label: "Email", Type: fields.FormText, Required: true},
		{Name: "phone", Label: "Phone", Type: fields.FormText, Required: true},
		{Name: "password", Label: "Password", Type: fields.FormText, Required: true},
		{Name: "department", Label: "Department", Type: fields.FormSelect, Options: []string{"Accounts", "Sales", "Purchase", "Logistics", "HR", "Admin"}, Required: true},
		{Name: "designation", Label: "Designation", Type: fields.FormText, Required: true},
		{Name: "joiningDate", Label: "Joining Date", Type: fields.FormDate, Required: true},
		{Name: "grossSalary", Label: "Gross Salary", Type: fields.FormNumber, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Active", "On Leave", "Resigned"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "name", Label: "Full Name", Type: fields.ViewText},
		{Name: "email", Label: "Email", Type: fields.ViewText},
		{Name: "phone", Label: "Phone", Type: fields.ViewText},
		{Name: "department", Label: "Department", Type: fields.ViewText},
		{Name: "designation", Label: "Designation", Type: fields.ViewText},
		{Name: "joiningDate", Label: "Joining Date", Type: fields.ViewDate},
		{Name: "grossSalary", Label: "Gross Salary", Type: fields.ViewCurrency},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "employees",
		Title:        "Employees",
		Collection:   "employees",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "name", "department", "designation", "status"),
		Searchable:   []string{"name", "email", "department", "designation", "status"},
		DateFields:   []string{"joiningDate"},
		NumberFields: []string{"grossSalary"},
		CSVHeader:    header,
		CSVFields:    names,
		Validate:     validateEmployee,
	}
}

func validateEmployee(d fields.Draft) error {
	email := strings.TrimSpace(asString(d["email"]))
	if !emailPattern.MatchString(email) {
		return fmt.Errorf("enter a valid email address")
	}
	phone := strings.TrimSpace(asString(d["phone"]))
	digits := 0
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	if digits != 10 {
		return fmt.Errorf("phone number must have exactly 10 digits")
	}
	if pw := asString(d["password"]); pw != "" && len(pw) < minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", minPasswordLength)
	}
	return nil
}

func asString(v any) string {
	s, _ := v.(string)
	return s
}

func reportsModule() Definition {
	ff := []fields.FormField{
		{Name: "reportTitle", Label: "Report Title", Type: fields.FormText, Required: true},
		{Name: "customerDivision", Label: "Customer Division", Type: fields.FormSelect, Required: true},
		{Name: "customerCompany", Label: "Customer Company", Type: fields.FormSelect, Required: true},
		{Name: "date", Label: "Report Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Submitted", "Pending", "Approved"}, Required: true},
		{Name: "details", Label: "Details", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "reportTitle", Label: "Report Title", Type: fields.ViewText},
		{Name: "customerDivision", Label: "Customer Division", Type: fields.ViewText},
		{Name: "customerCompany", Label: "Customer Company", Type: fields.ViewText},
		{Name: "date", Label: "Report Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "details", Label: "Details", Type: fields.ViewText},
		{Name: "attachments", Label: "Attachments", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:            "reports",
		Title:          "Reports",
		Collection:     "reports",
		FormFields:     ff,
		ViewFields:     vf,
		Columns:        columnsOf(vf, "reportTitle", "customerDivision", "date", "status"),
		Searchable:     []string{"reportTitle", "customerDivision", "customerCompany", "status"},
		DateFields:     []string{"date"},
		CSVHeader:      header,
		CSVFields:      names,
		UploadField:    "attachments",
		UploadMultiple: true,
		// Options for these selects come from the backend lookup endpoints;
		// both endpoints return either a bare array or a wrapped object.
		LookupFields: map[string]string{
			"customerDivision": "reports/customer-divisions",
			"customerCompany":  "reports/customer-companies",
		},
	}
}
