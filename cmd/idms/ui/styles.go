// Package ui provides the visual styling for the idms terminal client:
// theme, component styles, status badges and the record table.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"idms/internal/record"
)

// Semantic colors, identical in both themes.
var (
	colorPositive = lipgloss.Color("#43A047") // green
	colorWarning  = lipgloss.Color("#FFB300") // amber
	colorNegative = lipgloss.Color("#E53935") // red
	colorInfo     = lipgloss.Color("#1E88E5") // blue
)

// Theme holds the current color scheme.
type Theme struct {
	Foreground lipgloss.Color
	Primary    lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	IsDark     bool
}

// LightTheme returns the light scheme.
func LightTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#1a2330"),
		Primary:    lipgloss.Color("#16325c"),
		Accent:     lipgloss.Color("#0176d3"),
		Muted:      lipgloss.Color("#8a94a6"),
		Border:     lipgloss.Color("#d8dde6"),
		IsDark:     false,
	}
}

// DarkTheme returns the dark scheme.
func DarkTheme() Theme {
	return Theme{
		Foreground: lipgloss.Color("#e8ecf2"),
		Primary:    lipgloss.Color("#7ab8f5"),
		Accent:     lipgloss.Color("#4aa3f0"),
		Muted:      lipgloss.Color("#6b7687"),
		Border:     lipgloss.Color("#39465c"),
		IsDark:     true,
	}
}

// ThemeByName maps a config value to a theme; anything but "light" is dark.
func ThemeByName(name string) Theme {
	if strings.EqualFold(name, "light") {
		return LightTheme()
	}
	return DarkTheme()
}

// Styles holds all the styled components.
type Styles struct {
	Theme Theme

	// Layout
	Header  lipgloss.Style
	Footer  lipgloss.Style
	Content lipgloss.Style
	Modal   lipgloss.Style

	// Text
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Muted    lipgloss.Style
	Bold     lipgloss.Style
	Label    lipgloss.Style

	// Status
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style

	// Table
	TableHeader lipgloss.Style
	TableRow    lipgloss.Style
	TableCursor lipgloss.Style

	// Badges, indexed by record.StatusLevel.
	BadgeDefault  lipgloss.Style
	BadgePositive lipgloss.Style
	BadgeWarning  lipgloss.Style
	BadgeNegative lipgloss.Style
}

// NewStyles creates a Styles instance for the given theme.
func NewStyles(theme Theme) Styles {
	badge := lipgloss.NewStyle().Padding(0, 1).Bold(true).Foreground(lipgloss.Color("#ffffff"))
	return Styles{
		Theme: theme,

		Header: lipgloss.NewStyle().
			Background(theme.Primary).
			Foreground(lipgloss.Color("#ffffff")).
			Padding(0, 2).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Padding(0, 2),

		Content: lipgloss.NewStyle().
			Padding(1, 2),

		Modal: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Accent).
			Padding(1, 2),

		Title: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			MarginBottom(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Body: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Bold: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Label: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Success: lipgloss.NewStyle().Foreground(colorPositive).Bold(true),
		Error:   lipgloss.NewStyle().Foreground(colorNegative).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
		Info:    lipgloss.NewStyle().Foreground(colorInfo),

		TableHeader: lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true).
			Padding(0, 1),

		TableRow: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Padding(0, 1),

		TableCursor: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(theme.Accent).
			Padding(0, 1),

		BadgeDefault:  badge.Background(theme.Muted),
		BadgePositive: badge.Background(colorPositive),
		BadgeWarning:  badge.Background(colorWarning),
		BadgeNegative: badge.Background(colorNegative),
	}
}

// DefaultStyles returns styles with the dark theme.
func DefaultStyles() Styles {
	return NewStyles(DarkTheme())
}

// StatusBadge renders a status value inside a color-coded pill. The color
// follows the shared vocabulary in the record package; unknown statuses get
// the default badge, never a guessed color.
func (s Styles) StatusBadge(value string) string {
	if strings.TrimSpace(value) == "" {
		return s.Muted.Render("-")
	}
	switch record.Status(value) {
	case record.LevelPositive:
		return s.BadgePositive.Render(value)
	case record.LevelWarning:
		return s.BadgeWarning.Render(value)
	case record.LevelNegative:
		return s.BadgeNegative.Render(value)
	default:
		return s.BadgeDefault.Render(value)
	}
}

// RenderDivider returns a horizontal divider of the given width.
func (s Styles) RenderDivider(width int) string {
	if width <= 0 {
		return ""
	}
	return lipgloss.NewStyle().Foreground(s.Theme.Border).Render(strings.Repeat("─", width))
}
