package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// recordsLoadedMsg reports that a module's controller finished a fetch.
// The records themselves live in the controller; the message only carries
// the outcome so the view can react.
type recordsLoadedMsg struct {
	key string
	err error
}

// mutationDoneMsg reports the outcome of a create, update or delete. The
// controller has already re-fetched by the time this arrives.
type mutationDoneMsg struct {
	key    string
	action string
	err    error
}

// uploadDoneMsg carries the document URLs returned by the backend for an
// uploaded file, or the failure.
type uploadDoneMsg struct {
	field string
	urls  []string
	err   error
}

// lookupLoadedMsg carries dropdown options fetched from a lookup endpoint.
type lookupLoadedMsg struct {
	field   string
	options []string
	err     error
}

// exportDoneMsg reports a finished CSV export.
type exportDoneMsg struct {
	key  string
	path string
	err  error
}

// toastExpiredMsg removes a toast after its display window.
type toastExpiredMsg struct {
	id int
}

// configReloadedMsg is emitted when the config file changes on disk.
type configReloadedMsg struct {
	theme string
}

// ConfigReloaded builds the message the config watcher sends into the
// running program when the file on disk changes.
func ConfigReloaded(theme string) tea.Msg {
	return configReloadedMsg{theme: theme}
}

func expireToast(id int, after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return toastExpiredMsg{id: id}
	})
}
