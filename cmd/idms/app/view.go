package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"idms/internal/controller"
)

func (m Model) View() string {
	var body string
	switch m.mode {
	case modeForm:
		body = m.styles.Modal.Render(m.form.View())
	case modeDetail:
		body = m.detail.View()
	case modeConfirm:
		body = m.styles.Modal.Render(
			m.styles.Bold.Render("Delete this record?") + "\n\n" +
				m.styles.Muted.Render("y: delete • n: cancel"))
	case modeUpload:
		body = m.styles.Title.Render("Select a file to upload") + "\n" + m.picker.View()
	case modePayroll:
		body = m.styles.Modal.Render(m.payroll.View())
	case modeHelp:
		body = renderHelp(max(m.width-4, 40), m.styles.Theme.IsDark)
	default:
		body = m.tableView()
	}

	sections := []string{m.headerView(), m.styles.Content.Render(body)}
	if t := m.renderToasts(); t != "" {
		sections = append(sections, t)
	}
	sections = append(sections, m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// headerView shows the module tabs with the active one highlighted, plus the
// signed-in employee when a session is set.
func (m Model) headerView() string {
	var tabs []string
	for i, def := range m.defs {
		label := fmt.Sprintf("%d %s", i+1, def.Title)
		if i == m.activeIdx {
			tabs = append(tabs, m.styles.Header.Render(label))
		} else {
			tabs = append(tabs, m.styles.Muted.Render(" "+label+" "))
		}
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	if m.sess.EmployeeID != "" {
		row = lipgloss.JoinHorizontal(lipgloss.Top, row,
			m.styles.Info.Render("  user:"+m.sess.EmployeeID))
	}
	return row
}

func (m Model) tableView() string {
	ctrl := m.activeController()
	var b strings.Builder

	b.WriteString(m.styles.Title.Render(m.active().Title))
	b.WriteString("\n")

	if m.searching || m.search.Value() != "" {
		b.WriteString(m.styles.Label.Render("Filter: "))
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch ctrl.State() {
	case controller.Loading:
		b.WriteString(m.spin.View())
		b.WriteString(m.styles.Muted.Render(" Loading records..."))
	case controller.Errored:
		b.WriteString(m.styles.Error.Render("Error: " + ctrl.Err()))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render("Press r to retry."))
	case controller.Idle:
		b.WriteString(m.styles.Muted.Render("Press r to load records."))
	default:
		rows := m.filtered()
		table := m.tables[m.active().Key]
		b.WriteString(table.Render(rows, m.cursor, max(m.width-4, 40)))
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("%d of %d records", len(rows), len(ctrl.Records()))))
	}
	return b.String()
}

func (m Model) footerView() string {
	extra := ""
	if m.active().UploadField != "" {
		extra += "u upload • "
	}
	if m.active().Key == "employees" {
		extra += "p payroll • "
	}
	if extra != "" {
		extra = m.styles.Muted.Render(extra)
	}
	return m.styles.Footer.Render(extra + m.help.View(m.keys))
}
