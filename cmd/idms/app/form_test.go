package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"idms/cmd/idms/ui"
	"idms/internal/fields"
	"idms/internal/modules"
)

func keyPress(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeRunes(m FormModel, s string) FormModel {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func salesForm(t *testing.T, initial map[string]any) FormModel {
	t.Helper()
	def, ok := modules.ByKey("sales")
	require.True(t, ok)
	title := "New Sales Record"
	if initial != nil {
		title = "Edit Sales Record"
	}
	return NewFormModel(ui.DefaultStyles(), title, def.FormFields, initial)
}

func TestFormBlankDraftDefaults(t *testing.T) {
	m := salesForm(t, nil)
	draft := m.Values()

	assert.Equal(t, "", draft["invoiceNumber"])
	assert.Equal(t, "", draft["clientName"])
	assert.Equal(t, "", draft["amount"], "blank number fields submit empty, not a literal zero")
	assert.Equal(t, "", draft["status"], "unset selects submit empty")
}

func TestFormSeededFromRecord(t *testing.T) {
	m := salesForm(t, map[string]any{
		"id":            "7",
		"invoiceNumber": "S-7",
		"clientName":    "Acme",
		"amount":        float64(1200),
		"status":        "Paid",
	})
	draft := m.Values()

	assert.Equal(t, "S-7", draft["invoiceNumber"])
	assert.Equal(t, "1200", draft["amount"])
	assert.Equal(t, "Paid", draft["status"], "seeded select keeps the stored option")
}

func TestFormTypingWritesDraft(t *testing.T) {
	m := salesForm(t, nil)
	m = typeRunes(m, "S-99")
	assert.Equal(t, "S-99", m.Values()["invoiceNumber"])
}

func TestFormRequiredFieldBlocksSubmit(t *testing.T) {
	m := salesForm(t, nil)
	m, cmd := m.Update(keyPress(tea.KeyCtrlS))

	assert.Nil(t, cmd, "submit with empty required fields must not emit a message")
	assert.Contains(t, m.View(), "is required")
}

func TestFormSubmitEmitsDraft(t *testing.T) {
	m := salesForm(t, map[string]any{
		"invoiceNumber": "S-1",
		"clientName":    "Acme",
		"amount":        "100",
		"date":          "2024-05-01",
		"status":        "Pending",
		"notes":         "",
	})
	m, cmd := m.Update(keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	msg, ok := cmd().(formSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "Acme", msg.draft["clientName"])
	assert.NotContains(t, m.View(), "is required")
}

func TestFormEditKeepsNonDescriptorAttributes(t *testing.T) {
	def, ok := modules.ByKey("simbills")
	require.True(t, ok)

	// documentUrl has no form descriptor; an unchanged edit submit must still
	// carry it so the stored upload survives the PUT.
	m := NewFormModel(ui.DefaultStyles(), "Edit SIM Bills Record", def.FormFields, map[string]any{
		"id":          "5",
		"simNumber":   "SIM-5",
		"provider":    "Airtel",
		"phoneNumber": "9876543210",
		"billMonth":   "2024-05-01",
		"amount":      float64(499),
		"status":      "Paid",
		"documentUrl": "https://files.example.com/bill-5.pdf",
	})
	m, cmd := m.Update(keyPress(tea.KeyCtrlS))
	require.NotNil(t, cmd)

	msg, ok := cmd().(formSubmittedMsg)
	require.True(t, ok)
	assert.Equal(t, "https://files.example.com/bill-5.pdf", msg.draft["documentUrl"])
	assert.Equal(t, "SIM-5", msg.draft["simNumber"])
	assert.NotContains(t, m.View(), "is required")
}

func TestFormEscCancels(t *testing.T) {
	m := salesForm(t, nil)
	_, cmd := m.Update(keyPress(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(formCancelledMsg)
	assert.True(t, ok)
}

func TestFormSelectCycling(t *testing.T) {
	def, ok := modules.ByKey("sales")
	require.True(t, ok)
	m := NewFormModel(ui.DefaultStyles(), "t", def.FormFields, nil)

	// Move focus to the status select.
	for i := range m.inputs {
		if m.inputs[i].field.Name == "status" {
			m.setFocus(i)
		}
	}

	m, _ = m.Update(keyPress(tea.KeyRight))
	assert.Equal(t, "Paid", m.Values()["status"])
	m, _ = m.Update(keyPress(tea.KeyRight))
	assert.Equal(t, "Pending", m.Values()["status"])
	m, _ = m.Update(keyPress(tea.KeyLeft))
	assert.Equal(t, "Paid", m.Values()["status"])

	// Wrap backwards from the first option.
	m, _ = m.Update(keyPress(tea.KeyLeft))
	assert.Equal(t, "Overdue", m.Values()["status"])
}

func TestFormUnsetSelectShowsPlaceholder(t *testing.T) {
	m := salesForm(t, nil)
	assert.Contains(t, m.View(), "Select Status")
}

func TestFormSetOptionsPreservesSelection(t *testing.T) {
	ff := []fields.FormField{
		{Name: "customerDivision", Label: "Customer Division", Type: fields.FormSelect, Required: true},
	}
	m := NewFormModel(ui.DefaultStyles(), "t", ff, map[string]any{"customerDivision": "South"})

	m.SetOptions("customerDivision", []string{"North", "South", "East"})
	assert.Equal(t, "South", m.Values()["customerDivision"])

	// Options not containing the stored value clear the selection.
	m.SetOptions("customerDivision", []string{"West"})
	assert.Equal(t, "", m.Values()["customerDivision"])
}

func TestFormTabMovesFocus(t *testing.T) {
	m := salesForm(t, nil)
	require.Equal(t, 0, m.focus)
	m, _ = m.Update(keyPress(tea.KeyTab))
	assert.Equal(t, 1, m.focus)
	m, _ = m.Update(keyPress(tea.KeyShiftTab))
	assert.Equal(t, 0, m.focus)
	// Wrap from the first field backwards.
	m, _ = m.Update(keyPress(tea.KeyShiftTab))
	assert.Equal(t, len(m.inputs)-1, m.focus)
}

func TestFormViewMarksRequiredFields(t *testing.T) {
	m := salesForm(t, nil)
	assert.True(t, strings.Contains(m.View(), "Invoice Number *"))
}
