package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"idms/cmd/idms/ui"
	"idms/internal/fields"
	"idms/internal/record"
)

// formSubmittedMsg carries the completed draft out of the form.
type formSubmittedMsg struct {
	draft fields.Draft
}

// formCancelledMsg signals the form was dismissed without saving.
type formCancelledMsg struct{}

// formInput wraps one field descriptor with its live widget. Exactly one of
// the widget members is active, chosen by the descriptor type.
type formInput struct {
	field     fields.FormField
	text      textinput.Model
	area      textarea.Model
	options   []string
	selectIdx int // index into options, -1 for unset
}

// FormModel renders any module's create/edit form from its field
// descriptors. It knows nothing about individual modules.
type FormModel struct {
	styles  ui.Styles
	title   string
	inputs  []formInput
	seed    fields.Draft
	focus   int
	editing bool // true when seeded from an existing record
	errText string
}

// NewFormModel builds a form for the given descriptors, seeded from initial
// (pass nil for a blank create form).
func NewFormModel(styles ui.Styles, title string, ff []fields.FormField, initial map[string]any) FormModel {
	draft := fields.SeedDraft(ff, initial)
	inputs := make([]formInput, 0, len(ff))
	for _, f := range ff {
		inputs = append(inputs, newFormInput(f, draft[f.Name]))
	}
	m := FormModel{
		styles:  styles,
		title:   title,
		inputs:  inputs,
		seed:    draft,
		editing: initial != nil,
	}
	m.setFocus(0)
	return m
}

func newFormInput(f fields.FormField, value any) formInput {
	in := formInput{field: f, selectIdx: -1}
	switch f.Type {
	case fields.FormTextarea:
		ta := textarea.New()
		ta.Placeholder = f.Label
		ta.SetHeight(3)
		ta.CharLimit = 0
		ta.SetValue(record.Stringify(value))
		in.area = ta
	case fields.FormSelect:
		in.options = f.Options
		if s := record.Stringify(value); s != "" {
			for i, opt := range f.Options {
				if opt == s {
					in.selectIdx = i
					break
				}
			}
		}
	default:
		ti := textinput.New()
		ti.Placeholder = placeholderFor(f)
		ti.CharLimit = 0
		switch {
		case f.Type == fields.FormNumber && record.Stringify(value) == "0":
			// A fresh number field shows its placeholder, not a literal zero.
			ti.SetValue("")
		case f.Type == fields.FormDate:
			ti.SetValue(record.DisplayDate(value))
		default:
			ti.SetValue(record.Stringify(value))
		}
		in.text = ti
	}
	return in
}

func placeholderFor(f fields.FormField) string {
	switch f.Type {
	case fields.FormDate:
		return "YYYY-MM-DD"
	case fields.FormNumber:
		return "0"
	default:
		return f.Label
	}
}

// Update handles key events while the form is active.
func (m FormModel) Update(msg tea.Msg) (FormModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return formCancelledMsg{} }
	case "tab", "down":
		m.setFocus(m.focus + 1)
		return m, nil
	case "shift+tab", "up":
		m.setFocus(m.focus - 1)
		return m, nil
	case "enter":
		cur := &m.inputs[m.focus]
		if cur.field.Type == fields.FormTextarea {
			return m.updateFocused(msg)
		}
		if m.focus < len(m.inputs)-1 {
			m.setFocus(m.focus + 1)
			return m, nil
		}
		return m.submit()
	case "ctrl+s":
		return m.submit()
	case "left", "right":
		cur := &m.inputs[m.focus]
		if cur.field.Type == fields.FormSelect {
			cur.cycle(keyMsg.String() == "right")
			return m, nil
		}
	}
	return m.updateFocused(msg)
}

// cycle moves a select field through its options, wrapping at the ends.
func (in *formInput) cycle(forward bool) {
	if len(in.options) == 0 {
		return
	}
	if forward {
		in.selectIdx = (in.selectIdx + 1) % len(in.options)
		return
	}
	if in.selectIdx <= 0 {
		in.selectIdx = len(in.options) - 1
		return
	}
	in.selectIdx--
}

func (m FormModel) updateFocused(msg tea.Msg) (FormModel, tea.Cmd) {
	if m.focus < 0 || m.focus >= len(m.inputs) {
		return m, nil
	}
	cur := &m.inputs[m.focus]
	var cmd tea.Cmd
	switch cur.field.Type {
	case fields.FormTextarea:
		cur.area, cmd = cur.area.Update(msg)
	case fields.FormSelect:
		// selects react to left/right only, handled above
	default:
		cur.text, cmd = cur.text.Update(msg)
	}
	return m, cmd
}

func (m *FormModel) setFocus(i int) {
	if len(m.inputs) == 0 {
		return
	}
	if i < 0 {
		i = len(m.inputs) - 1
	}
	if i >= len(m.inputs) {
		i = 0
	}
	for j := range m.inputs {
		in := &m.inputs[j]
		switch in.field.Type {
		case fields.FormTextarea:
			if j == i {
				in.area.Focus()
			} else {
				in.area.Blur()
			}
		case fields.FormSelect:
		default:
			if j == i {
				in.text.Focus()
			} else {
				in.text.Blur()
			}
		}
	}
	m.focus = i
}

// submit validates required fields and emits the draft.
func (m FormModel) submit() (FormModel, tea.Cmd) {
	for _, in := range m.inputs {
		if !in.field.Required {
			continue
		}
		if strings.TrimSpace(record.Stringify(in.value())) == "" {
			m.errText = fmt.Sprintf("%s is required", in.field.Label)
			return m, nil
		}
	}
	m.errText = ""
	draft := m.Values()
	return m, func() tea.Msg { return formSubmittedMsg{draft: draft} }
}

// value reads the widget's current value in draft form.
func (in formInput) value() any {
	switch in.field.Type {
	case fields.FormTextarea:
		return in.area.Value()
	case fields.FormSelect:
		if in.selectIdx < 0 || in.selectIdx >= len(in.options) {
			return ""
		}
		return in.options[in.selectIdx]
	default:
		return in.text.Value()
	}
}

// Values collects the current widget state into the draft. The draft starts
// from the seeded copy of the record, so attributes without a descriptor
// (uploaded document URLs, server-side extras) survive an edit round-trip;
// widget values overwrite their own keys only.
func (m FormModel) Values() fields.Draft {
	draft := make(fields.Draft, len(m.seed))
	for k, v := range m.seed {
		draft[k] = v
	}
	for _, in := range m.inputs {
		draft[in.field.Name] = in.value()
	}
	return draft
}

// SetError shows a message on the form's inline error line.
func (m *FormModel) SetError(text string) {
	m.errText = text
}

// SetOptions installs dynamically fetched options on a select field. Used
// for lookup-backed dropdowns whose choices arrive after the form opens.
func (m *FormModel) SetOptions(name string, options []string) {
	for i := range m.inputs {
		in := &m.inputs[i]
		if in.field.Name != name || in.field.Type != fields.FormSelect {
			continue
		}
		current := record.Stringify(in.value())
		in.options = options
		in.selectIdx = -1
		for j, opt := range options {
			if opt == current {
				in.selectIdx = j
				break
			}
		}
		return
	}
}

// View renders the form with the focused field highlighted.
func (m FormModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(m.title))
	b.WriteString("\n")

	for i, in := range m.inputs {
		label := in.field.Label
		if in.field.Required {
			label += " *"
		}
		if i == m.focus {
			b.WriteString(m.styles.Label.Render(label))
		} else {
			b.WriteString(m.styles.Muted.Render(label))
		}
		b.WriteString("\n")
		b.WriteString(m.renderInput(in, i == m.focus))
		b.WriteString("\n")
	}

	if m.errText != "" {
		b.WriteString(m.styles.Error.Render(m.errText))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.Muted.Render("tab: next field • ←/→: change selection • ctrl+s: save • esc: cancel"))
	return b.String()
}

func (m FormModel) renderInput(in formInput, focused bool) string {
	switch in.field.Type {
	case fields.FormTextarea:
		return in.area.View()
	case fields.FormSelect:
		text := fmt.Sprintf("Select %s", in.field.Label)
		if in.selectIdx >= 0 && in.selectIdx < len(in.options) {
			text = in.options[in.selectIdx]
		}
		if focused {
			return m.styles.Body.Render("‹ " + text + " ›")
		}
		return m.styles.Muted.Render("  " + text)
	default:
		return in.text.View()
	}
}
