package modules

import (
	"idms/internal/fields"
)

// The nine document-tracking modules. Each is configuration only; behavior
// lives in the generic controller and renderers.

func bankModule() Definition {
	ff := []fields.FormField{
		{Name: "documentType", Label: "Document Type", Type: fields.FormSelect, Options: []string{"Bank Statement", "Cheque Book", "Bank Guarantee", "Solvency Certificate"}, Required: true},
		{Name: "bankName", Label: "Bank Name", Type: fields.FormText, Required: true},
		{Name: "accountNumber", Label: "Account Number", Type: fields.FormText, Required: true},
		{Name: "date", Label: "Document Date", Type: fields.FormDate, Required: true},
		{Name: "expiryDate", Label: "Expiry Date", Type: fields.FormDate},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Valid", "Pending", "Expired"}, Required: true},
		{Name: "remarks", Label: "Remarks", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "documentType", Label: "Document Type", Type: fields.ViewText},
		{Name: "bankName", Label: "Bank Name", Type: fields.ViewText},
		{Name: "accountNumber", Label: "Account Number", Type: fields.ViewText},
		{Name: "date", Label: "Document Date", Type: fields.ViewDate},
		{Name: "expiryDate", Label: "Expiry Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "remarks", Label: "Remarks", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:        "bank",
		Title:      "Bank Documents",
		Collection: "bank-documents",
		FormFields: ff,
		ViewFields: vf,
		Columns:    columnsOf(vf, "documentType", "bankName", "date", "status"),
		Searchable: []string{"documentType", "bankName", "accountNumber", "status"},
		DateFields: []string{"date", "expiryDate"},
		CSVHeader:  header,
		CSVFields:  names,
	}
}

func billingModule() Definition {
	ff := []fields.FormField{
		{Name: "invoiceNumber", Label: "Invoice Number", Type: fields.FormText, Required: true},
		{Name: "clientName", Label: "Client Name", Type: fields.FormText, Required: true},
		{Name: "amount", Label: "Amount", Type: fields.FormNumber, Required: true},
		{Name: "date", Label: "Invoice Date", Type: fields.FormDate, Required: true},
		{Name: "dueDate", Label: "Due Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Paid", "Pending", "Overdue"}, Required: true},
		{Name: "description", Label: "Description", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "invoiceNumber", Label: "Invoice Number", Type: fields.ViewText},
		{Name: "clientName", Label: "Client Name", Type: fields.ViewText},
		{Name: "amount", Label: "Amount", Type: fields.ViewCurrency},
		{Name: "date", Label: "Invoice Date", Type: fields.ViewDate},
		{Name: "dueDate", Label: "Due Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "description", Label: "Description", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "billing",
		Title:        "Billing",
		Collection:   "billing",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "invoiceNumber", "clientName", "amount", "dueDate", "status"),
		Searchable:   []string{"invoiceNumber", "clientName", "status"},
		DateFields:   []string{"date", "dueDate"},
		NumberFields: []string{"amount"},
		CSVHeader:    header,
		CSVFields:    names,
	}
}

func caModule() Definition {
	ff := []fields.FormField{
		{Name: "documentName", Label: "Document Name", Type: fields.FormText, Required: true},
		{Name: "filingType", Label: "Filing Type", Type: fields.FormSelect, Options: []string{"GST Return", "Income Tax", "TDS Return", "ROC Filing", "Audit Report"}, Required: true},
		{Name: "caName", Label: "CA Name", Type: fields.FormText, Required: true},
		{Name: "date", Label: "Filing Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Filed", "Pending", "Overdue"}, Required: true},
		{Name: "notes", Label: "Notes", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "documentName", Label: "Document Name", Type: fields.ViewText},
		{Name: "filingType", Label: "Filing Type", Type: fields.ViewText},
		{Name: "caName", Label: "CA Name", Type: fields.ViewText},
		{Name: "date", Label: "Filing Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "notes", Label: "Notes", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:        "ca",
		Title:      "CA Documents",
		Collection: "ca-documents",
		FormFields: ff,
		ViewFields: vf,
		Columns:    columnsOf(vf, "documentName", "filingType", "date", "status"),
		Searchable: []string{"documentName", "filingType", "caName", "status"},
		DateFields: []string{"date"},
		CSVHeader:  header,
		CSVFields:  names,
	}
}

func financeModule() Definition {
	ff := []fields.FormField{
		{Name: "reportName", Label: "Report Name", Type: fields.FormText, Required: true},
		{Name: "reportType", Label: "Report Type", Type: fields.FormSelect, Options: []string{"Balance Sheet", "Profit & Loss", "Cash Flow", "Budget"}, Required: true},
		{Name: "amount", Label: "Amount", Type: fields.FormNumber},
		{Name: "date", Label: "Report Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Approved", "Pending", "Rejected"}, Required: true},
		{Name: "summary", Label: "Summary", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "reportName", Label: "Report Name", Type: fields.ViewText},
		{Name: "reportType", Label: "Report Type", Type: fields.ViewText},
		{Name: "amount", Label: "Amount", Type: fields.ViewCurrency},
		{Name: "date", Label: "Report Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "summary", Label: "Summary", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "finance",
		Title:        "Finance Reports",
		Collection:   "finance-reports",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "reportName", "reportType", "amount", "status"),
		Searchable:   []string{"reportName", "reportType", "status"},
		DateFields:   []string{"date"},
		NumberFields: []string{"amount"},
		CSVHeader:    header,
		CSVFields:    names,
	}
}

func logisticsModule() Definition {
	ff := []fields.FormField{
		{Name: "shipmentNumber", Label: "Shipment Number", Type: fields.FormText, Required: true},
		{Name: "carrier", Label: "Carrier", Type: fields.FormText, Required: true},
		{Name: "origin", Label: "Origin", Type: fields.FormText, Required: true},
		{Name: "destination", Label: "Destination", Type: fields.FormText, Required: true},
		{Name: "date", Label: "Dispatch Date", Type: fields.FormDate, Required: true},
		{Name: "deliveryDate", Label: "Delivery Date", Type: fields.FormDate},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Delivered", "In Transit", "Pending"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "shipmentNumber", Label: "Shipment Number", Type: fields.ViewText},
		{Name: "carrier", Label: "Carrier", Type: fields.ViewText},
		{Name: "origin", Label: "Origin", Type: fields.ViewText},
		{Name: "destination", Label: "Destination", Type: fields.ViewText},
		{Name: "date", Label: "Dispatch Date", Type: fields.ViewDate},
		{Name: "deliveryDate", Label: "Delivery Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:        "logistics",
		Title:      "Logistics Documents",
		Collection: "logistics-documents",
		FormFields: ff,
		ViewFields: vf,
		Columns:    columnsOf(vf, "shipmentNumber", "carrier", "destination", "status"),
		Searchable: []string{"shipmentNumber", "carrier", "origin", "destination", "status"},
		DateFields: []string{"date", "deliveryDate"},
		CSVHeader:  header,
		CSVFields:  names,
	}
}

func purchaseModule() Definition {
	ff := []fields.FormField{
		{Name: "poNumber", Label: "PO Number", Type: fields.FormText, Required: true},
		{Name: "vendor", Label: "Vendor", Type: fields.FormText, Required: true},
		{Name: "itemDescription", Label: "Item Description", Type: fields.FormTextarea, Required: true},
		{Name: "amount", Label: "Amount", Type: fields.FormNumber, Required: true},
		{Name: "date", Label: "Order Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Ordered", "Received", "Cancelled"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "poNumber", Label: "PO Number", Type: fields.ViewText},
		{Name: "vendor", Label: "Vendor", Type: fields.ViewText},
		{Name: "itemDescription", Label: "Item Description", Type: fields.ViewText},
		{Name: "amount", Label: "Amount", Type: fields.ViewCurrency},
		{Name: "date", Label: "Order Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "purchase",
		Title:        "Purchases",
		Collection:   "purchases",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "poNumber", "vendor", "amount", "status"),
		Searchable:   []string{"poNumber", "vendor", "itemDescription", "status"},
		DateFields:   []string{"date"},
		NumberFields: []string{"amount"},
		CSVHeader:    header,
		CSVFields:    names,
	}
}

func registrationModule() Definition {
	ff := []fields.FormField{
		{Name: "companyName", Label: "Company Name", Type: fields.FormText, Required: true},
		{Name: "registrationType", Label: "Registration Type", Type: fields.FormSelect, Options: []string{"GST", "MSME", "PAN", "TAN", "Import Export Code", "Shop Act"}, Required: true},
		{Name: "registrationNumber", Label: "Registration Number", Type: fields.FormText, Required: true},
		{Name: "date", Label: "Registration Date", Type: fields.FormDate, Required: true},
		{Name: "expiryDate", Label: "Expiry Date", Type: fields.FormDate},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Valid", "Pending", "Expired"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "companyName", Label: "Company Name", Type: fields.ViewText},
		{Name: "registrationType", Label: "Registration Type", Type: fields.ViewText},
		{Name: "registrationNumber", Label: "Registration Number", Type: fields.ViewText},
		{Name: "date", Label: "Registration Date", Type: fields.ViewDate},
		{Name: "expiryDate", Label: "Expiry Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:        "registration",
		Title:      "Company Registrations",
		Collection: "registrations",
		FormFields: ff,
		ViewFields: vf,
		Columns:    columnsOf(vf, "companyName", "registrationType", "expiryDate", "status"),
		Searchable: []string{"companyName", "registrationType", "registrationNumber", "status"},
		DateFields: []string{"date", "expiryDate"},
		CSVHeader:  header,
		CSVFields:  names,
	}
}

func salesModule() Definition {
	ff := []fields.FormField{
		{Name: "invoiceNumber", Label: "Invoice Number", Type: fields.FormText, Required: true},
		{Name: "clientName", Label: "Client Name", Type: fields.FormText, Required: true},
		{Name: "amount", Label: "Amount", Type: fields.FormNumber, Required: true},
		{Name: "date", Label: "Sale Date", Type: fields.FormDate, Required: true},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Paid", "Pending", "Overdue"}, Required: true},
		{Name: "notes", Label: "Notes", Type: fields.FormTextarea},
	}
	vf := []fields.ViewField{
		{Name: "invoiceNumber", Label: "Invoice Number", Type: fields.ViewText},
		{Name: "clientName", Label: "Client Name", Type: fields.ViewText},
		{Name: "amount", Label: "Amount", Type: fields.ViewCurrency},
		{Name: "date", Label: "Sale Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
		{Name: "notes", Label: "Notes", Type: fields.ViewText},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "sales",
		Title:        "Sales",
		Collection:   "sales",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "invoiceNumber", "clientName", "amount", "status"),
		Searchable:   []string{"invoiceNumber", "clientName", "status"},
		DateFields:   []string{"date"},
		NumberFields: []string{"amount"},
		// The sales backend names the client attribute differently from the
		// form; the rename happens once, at payload build time.
		PayloadRenames: map[string]string{"clientName": "client"},
		CSVHeader:      header,
		CSVFields:      names,
	}
}

func tenderModule() Definition {
	ff := []fields.FormField{
		{Name: "tenderNumber", Label: "Tender Number", Type: fields.FormText, Required: true},
		{Name: "authority", Label: "Issuing Authority", Type: fields.FormText, Required: true},
		{Name: "description", Label: "Description", Type: fields.FormTextarea, Required: true},
		{Name: "amount", Label: "Tender Amount", Type: fields.FormNumber, Required: true},
		{Name: "emdPercent", Label: "EMD Percent", Type: fields.FormNumber},
		{Name: "submissionDate", Label: "Submission Date", Type: fields.FormDate, Required: true},
		{Name: "openingDate", Label: "Opening Date", Type: fields.FormDate},
		{Name: "status", Label: "Status", Type: fields.FormSelect, Options: []string{"Submitted", "Pending", "Awarded", "Rejected"}, Required: true},
	}
	vf := []fields.ViewField{
		{Name: "tenderNumber", Label: "Tender Number", Type: fields.ViewText},
		{Name: "authority", Label: "Issuing Authority", Type: fields.ViewText},
		{Name: "description", Label: "Description", Type: fields.ViewText},
		{Name: "amount", Label: "Tender Amount", Type: fields.ViewCurrency},
		{Name: "emdPercent", Label: "EMD Percent", Type: fields.ViewPercentage},
		{Name: "submissionDate", Label: "Submission Date", Type: fields.ViewDate},
		{Name: "openingDate", Label: "Opening Date", Type: fields.ViewDate},
		{Name: "status", Label: "Status", Type: fields.ViewStatus},
	}
	header, names := csvLayout(vf)
	return Definition{
		Key:          "tender",
		Title:        "Tenders",
		Collection:   "tenders",
		FormFields:   ff,
		ViewFields:   vf,
		Columns:      columnsOf(vf, "tenderNumber", "authority", "amount", "submissionDate", "status"),
		Searchable:   []string{"tenderNumber", "authority", "description", "status"},
		DateFields:   []string{"submissionDate", "openingDate"},
		NumberFields: []string{"amount", "emdPercent"},
		CSVHeader:    header,
		CSVFields:    names,
	}
}
