package app

import (
	"github.com/charmbracelet/bubbles/key"
)

// keyMap holds the table-page bindings. The form, detail and picker modes
// own their keys themselves.
type keyMap struct {
	Up         key.Binding
	Down       key.Binding
	PrevModule key.Binding
	NextModule key.Binding
	Open       key.Binding
	New        key.Binding
	Edit       key.Binding
	Delete     key.Binding
	Filter     key.Binding
	Export     key.Binding
	Upload     key.Binding
	Payroll    key.Binding
	Reload     key.Binding
	Help       key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PrevModule: key.NewBinding(
			key.WithKeys("left", "["),
			key.WithHelp("←/[", "prev module"),
		),
		NextModule: key.NewBinding(
			key.WithKeys("right", "]"),
			key.WithHelp("→/]", "next module"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		New: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "new"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Filter: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "filter"),
		),
		Export: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "export csv"),
		),
		Upload: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "upload"),
		),
		Payroll: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "payroll"),
		),
		Reload: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.New, k.Edit, k.Delete, k.Filter, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.PrevModule, k.NextModule},
		{k.Open, k.New, k.Edit, k.Delete},
		{k.Filter, k.Export, k.Upload, k.Payroll},
		{k.Reload, k.Help, k.Quit},
	}
}
