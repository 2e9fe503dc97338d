package app

import (
	"github.com/charmbracelet/glamour"
)

const helpMarkdown = `# IDMS

An interactive client for the internal data management backend.

## Navigation

| Key | Action |
|-----|--------|
| 1-9, 0 | switch module |
| ←/→ or [ / ] | previous / next module |
| ↑/↓ | move cursor |
| enter | open record detail |
| / | filter records |
| n | new record |
| e | edit selected record |
| d | delete selected record |
| u | attach a file (modules with uploads) |
| x | export the current module to CSV |
| p | salary calculator (employees) |
| s | sign in as the open employee (employees detail) |
| r | reload from server |
| ? | toggle this help |
| q | quit |

## Forms

Move between fields with tab, change dropdown selections with the left and
right arrows, and save with ctrl+s. Required fields are marked with *.

## Filtering

The filter matches a case-insensitive substring against each module's
searchable fields. Press esc to clear it.
`

// renderHelp renders the help text as styled markdown, falling back to the
// raw text when the renderer cannot be built.
func renderHelp(width int, dark bool) string {
	style := glamour.WithStandardStyle("light")
	if dark {
		style = glamour.WithStandardStyle("dark")
	}
	r, err := glamour.NewTermRenderer(style, glamour.WithWordWrap(width))
	if err != nil {
		return helpMarkdown
	}
	out, err := r.Render(helpMarkdown)
	if err != nil {
		return helpMarkdown
	}
	return out
}
