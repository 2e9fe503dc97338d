package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"idms/cmd/idms/ui"
	"idms/internal/fields"
	"idms/internal/record"
)

// DetailModel renders a single record's full view, one row per view field,
// inside a scrollable viewport.
type DetailModel struct {
	styles ui.Styles
	title  string
	vp     viewport.Model
}

// NewDetailModel builds the read-only detail view for one record.
func NewDetailModel(styles ui.Styles, title string, vf []fields.ViewField, rec record.Record, width, height int) DetailModel {
	if width <= 0 {
		width = 80
	}
	if height <= 0 {
		height = 20
	}
	vp := viewport.New(width, height)
	vp.SetContent(renderDetail(styles, vf, rec))
	return DetailModel{styles: styles, title: title, vp: vp}
}

func renderDetail(styles ui.Styles, vf []fields.ViewField, rec record.Record) string {
	labelWidth := 0
	for _, f := range vf {
		if n := len([]rune(f.Label)); n > labelWidth {
			labelWidth = n
		}
	}

	var b strings.Builder
	for _, f := range vf {
		label := f.Label + strings.Repeat(" ", labelWidth-len([]rune(f.Label)))
		b.WriteString(styles.Muted.Render(label))
		b.WriteString("  ")
		v := rec[f.Name]
		if f.Type == fields.ViewStatus {
			b.WriteString(styles.StatusBadge(record.Stringify(v)))
		} else {
			b.WriteString(styles.Body.Render(record.FormatValue(v, f.Type)))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m DetailModel) Update(msg tea.Msg) (DetailModel, tea.Cmd) {
	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

func (m *DetailModel) Resize(width, height int) {
	m.vp.Width = width
	m.vp.Height = height
}

func (m DetailModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")
	b.WriteString(m.vp.View())
	b.WriteString("\n")
	b.WriteString(m.styles.Muted.Render("↑/↓: scroll • e: edit • d: delete • esc: back"))
	return b.String()
}
