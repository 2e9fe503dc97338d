package app

import (
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"idms/cmd/idms/ui"
	"idms/internal/payroll"
	"idms/internal/record"
)

// PayrollModel is the salary calculator reachable from the employees
// module. It recomputes the gross-to-net breakdown on every keystroke.
type PayrollModel struct {
	styles ui.Styles
	inputs [3]textinput.Model // gross, unpaid days, days in month
	focus  int
}

// NewPayrollModel builds the calculator, pre-filled with the current month's
// day count and the employee's gross salary when known.
func NewPayrollModel(styles ui.Styles, gross float64) PayrollModel {
	m := PayrollModel{styles: styles}

	grossIn := textinput.New()
	grossIn.Placeholder = "Gross monthly salary"
	if gross > 0 {
		grossIn.SetValue(strconv.FormatFloat(gross, 'f', -1, 64))
	}

	unpaidIn := textinput.New()
	unpaidIn.Placeholder = "0"

	now := time.Now()
	days := time.Date(now.Year(), now.Month()+1, 0, 0, 0, 0, 0, time.UTC).Day()
	daysIn := textinput.New()
	daysIn.SetValue(strconv.Itoa(days))

	m.inputs = [3]textinput.Model{grossIn, unpaidIn, daysIn}
	m.inputs[0].Focus()
	return m
}

func (m PayrollModel) Update(msg tea.Msg) (PayrollModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down", "enter":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		}
	}
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *PayrollModel) setFocus(i int) {
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	for j := range m.inputs {
		if j == i {
			m.inputs[j].Focus()
		} else {
			m.inputs[j].Blur()
		}
	}
	m.focus = i
}

func (m PayrollModel) breakdown() (payroll.Breakdown, bool) {
	gross, err := strconv.ParseFloat(strings.TrimSpace(m.inputs[0].Value()), 64)
	if err != nil || gross <= 0 {
		return payroll.Breakdown{}, false
	}
	unpaid, _ := strconv.Atoi(strings.TrimSpace(m.inputs[1].Value()))
	days, err := strconv.Atoi(strings.TrimSpace(m.inputs[2].Value()))
	if err != nil || days <= 0 {
		return payroll.Breakdown{}, false
	}
	return payroll.Compute(gross, unpaid, days), true
}

func (m PayrollModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Salary Calculator"))
	b.WriteString("\n")

	labels := [3]string{"Gross salary", "Unpaid leave days", "Days in month"}
	for i, in := range m.inputs {
		if i == m.focus {
			b.WriteString(m.styles.Label.Render(labels[i]))
		} else {
			b.WriteString(m.styles.Muted.Render(labels[i]))
		}
		b.WriteString("\n")
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	bd, ok := m.breakdown()
	if !ok {
		b.WriteString(m.styles.Muted.Render("Enter a gross salary to see the breakdown."))
	} else {
		rows := []struct {
			label string
			value float64
		}{
			{"Earned gross", bd.EarnedGross},
			{"Basic", bd.Basic},
			{"HRA", bd.HRA},
			{"Special allowance", bd.SpecialAllowance},
			{"Professional tax", -bd.ProfessionalTax},
			{"Net pay", bd.Net},
		}
		for _, row := range rows {
			b.WriteString(m.styles.Muted.Render(pad(row.label, 20)))
			b.WriteString(m.styles.Bold.Render(record.FormatCurrency(row.value)))
			b.WriteString("\n")
		}
	}
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("tab: next field • esc: back"))
	return b.String()
}

// pad right-pads a label for the breakdown column.
func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
