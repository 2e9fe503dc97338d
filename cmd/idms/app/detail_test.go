package app

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idms/cmd/idms/ui"
	"idms/internal/modules"
	"idms/internal/record"
)

func TestDetailRendersFormattedFields(t *testing.T) {
	def, ok := modules.ByKey("billing")
	require.True(t, ok)

	rec := record.Record{
		"id":            "1",
		"invoiceNumber": "INV-1",
		"clientName":    "Acme",
		"amount":        float64(2500),
		"date":          "2024-03-05",
		"dueDate":       "2024-04-05",
		"status":        "Overdue",
		"description":   "Quarterly retainer",
	}
	m := NewDetailModel(ui.DefaultStyles(), "Billing Record", def.ViewFields, rec, 100, 30)
	out := m.View()

	assert.Contains(t, out, "Billing Record")
	assert.Contains(t, out, "INV-1")
	assert.Contains(t, out, "₹2,500.00")
	assert.Contains(t, out, "05 Mar 2024")
	assert.Contains(t, out, "Overdue")
}

func TestDetailMissingValuesRenderDash(t *testing.T) {
	def, ok := modules.ByKey("billing")
	require.True(t, ok)

	m := NewDetailModel(ui.DefaultStyles(), "Billing Record", def.ViewFields, record.Record{"id": "1"}, 100, 30)
	out := m.View()

	// Every attribute but the id is absent; each row still appears, as a dash.
	assert.GreaterOrEqual(t, strings.Count(out, "-"), len(def.ViewFields)-1)
	assert.Contains(t, out, "Invoice Number")
}

func TestDetailTenderPercentage(t *testing.T) {
	def, ok := modules.ByKey("tender")
	require.True(t, ok)

	rec := record.Record{"id": "1", "tenderNumber": "T-1", "emdPercent": 2.5, "status": "Submitted"}
	m := NewDetailModel(ui.DefaultStyles(), "Tender Record", def.ViewFields, rec, 100, 30)

	assert.Contains(t, m.View(), "2.5%")
}
