package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const toastDuration = 3 * time.Second

type toastLevel int

const (
	toastInfo toastLevel = iota
	toastSuccess
	toastError
)

type toast struct {
	id    int
	text  string
	level toastLevel
}

// pushToast appends a toast and returns the command that expires it.
func (m *Model) pushToast(level toastLevel, text string) tea.Cmd {
	m.toastSeq++
	t := toast{id: m.toastSeq, text: text, level: level}
	m.toasts = append(m.toasts, t)
	return expireToast(t.id, toastDuration)
}

func (m *Model) dropToast(id int) {
	for i, t := range m.toasts {
		if t.id == id {
			m.toasts = append(m.toasts[:i], m.toasts[i+1:]...)
			return
		}
	}
}

func (m *Model) renderToasts() string {
	if len(m.toasts) == 0 {
		return ""
	}
	var out string
	for _, t := range m.toasts {
		var style = m.styles.Info
		switch t.level {
		case toastSuccess:
			style = m.styles.Success
		case toastError:
			style = m.styles.Error
		}
		out += style.Render("• "+t.text) + "\n"
	}
	return out
}
