package ui

import (
	"strings"
	"testing"

	"idms/internal/modules"
	"idms/internal/record"
)

func billingTable(t *testing.T) RecordTable {
	t.Helper()
	def, ok := modules.ByKey("billing")
	if !ok {
		t.Fatal("billing module missing")
	}
	return NewRecordTable(DefaultStyles(), def)
}

func TestRenderShowsHeaderAndRows(t *testing.T) {
	table := billingTable(t)
	rows := []record.Record{
		{"id": "1", "invoiceNumber": "INV-1", "clientName": "Acme", "amount": float64(100), "dueDate": "2024-05-01", "status": "Paid"},
	}

	out := table.Render(rows, 0, 120)

	for _, want := range []string{"Invoice Number", "Client Name", "INV-1", "Acme"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRenderEmptyList(t *testing.T) {
	out := billingTable(t).Render(nil, -1, 120)
	if !strings.Contains(out, "No records found.") {
		t.Error("empty list should render the placeholder")
	}
}

func TestRenderFormatsCurrencyCells(t *testing.T) {
	table := billingTable(t)
	rows := []record.Record{
		{"id": "1", "invoiceNumber": "INV-1", "amount": float64(1500), "status": "Pending"},
	}
	out := table.Render(rows, -1, 200)
	if !strings.Contains(out, "₹1,500.00") {
		t.Errorf("amount cell not formatted as currency:\n%s", out)
	}
}

func TestRenderMissingValuesAsDash(t *testing.T) {
	table := billingTable(t)
	out := table.Render([]record.Record{{"id": "1"}}, -1, 200)
	if !strings.Contains(out, "-") {
		t.Error("missing cells should render a dash")
	}
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad short: %q", got)
	}
	if got := pad("abcdef", 4); got != "abc…" {
		t.Errorf("pad long: %q", got)
	}
	if got := pad("héllo", 5); got != "héllo" {
		t.Errorf("pad exact runes: %q", got)
	}
}

func TestColumnWidthsFitTerminal(t *testing.T) {
	table := billingTable(t)
	rows := []record.Record{
		{"id": "1", "invoiceNumber": strings.Repeat("x", 60), "clientName": strings.Repeat("y", 60), "status": "Paid"},
	}
	widths := table.columnWidths(rows, 60)
	if total := totalWidth(widths); total > 60+len(widths)*2 {
		t.Errorf("table too wide: %d", total)
	}
	for _, w := range widths {
		if w > maxColumnWidth {
			t.Errorf("column exceeds cap: %d", w)
		}
	}
}

func TestStatusBadgeLevels(t *testing.T) {
	styles := DefaultStyles()
	for _, status := range []string{"Paid", "Pending", "Overdue", "Suspended"} {
		out := styles.StatusBadge(status)
		if !strings.Contains(out, status) {
			t.Errorf("badge for %q lost its text: %q", status, out)
		}
	}
	if out := styles.StatusBadge(""); !strings.Contains(out, "-") {
		t.Errorf("empty status should render a dash, got %q", out)
	}
}
