package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"idms/internal/fields"
	"idms/internal/modules"
	"idms/internal/record"
)

const (
	minColumnWidth = 6
	maxColumnWidth = 32
)

// RecordTable renders module records as a scrollable table. It is a pure
// renderer: the cursor and visible window are passed in by the caller.
type RecordTable struct {
	styles  Styles
	columns []modules.Column
	views   map[string]fields.ViewField
}

// NewRecordTable builds a table renderer for one module definition.
func NewRecordTable(styles Styles, def modules.Definition) RecordTable {
	views := make(map[string]fields.ViewField, len(def.ViewFields))
	for _, vf := range def.ViewFields {
		views[vf.Name] = vf
	}
	return RecordTable{styles: styles, columns: def.Columns, views: views}
}

// Render draws the header and the given window of rows. cursor is an index
// into rows; pass -1 for no selection.
func (t RecordTable) Render(rows []record.Record, cursor, width int) string {
	widths := t.columnWidths(rows, width)

	var b strings.Builder
	var header []string
	for i, col := range t.columns {
		header = append(header, t.styles.TableHeader.Render(pad(col.Label, widths[i])))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, header...))
	b.WriteString("\n")
	b.WriteString(t.styles.RenderDivider(totalWidth(widths)))
	b.WriteString("\n")

	if len(rows) == 0 {
		b.WriteString(t.styles.Muted.Render("No records found."))
		return b.String()
	}

	for ri, row := range rows {
		style := t.styles.TableRow
		if ri == cursor {
			style = t.styles.TableCursor
		}
		var cells []string
		for ci, col := range t.columns {
			cells = append(cells, style.Render(pad(t.cellValue(row, col.Name), widths[ci])))
		}
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		b.WriteString("\n")
	}
	return b.String()
}

// cellValue formats one cell using the column's view descriptor when the
// module declares one, falling back to verbatim text.
func (t RecordTable) cellValue(row record.Record, name string) string {
	v, ok := row[name]
	if !ok || v == nil {
		return "-"
	}
	vf, found := t.views[name]
	if !found {
		return record.Stringify(v)
	}
	if vf.Type == fields.ViewStatus {
		// Badges do not survive cell truncation; the table shows the raw
		// status text and leaves the colored pill to the detail view.
		return record.Stringify(v)
	}
	return record.FormatValue(v, vf.Type)
}

// columnWidths sizes each column to its widest cell, clamped to the
// available terminal width.
func (t RecordTable) columnWidths(rows []record.Record, width int) []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = len([]rune(col.Label))
		for _, row := range rows {
			if n := len([]rune(t.cellValue(row, col.Name))); n > widths[i] {
				widths[i] = n
			}
		}
		if widths[i] < minColumnWidth {
			widths[i] = minColumnWidth
		}
		if widths[i] > maxColumnWidth {
			widths[i] = maxColumnWidth
		}
	}
	// Shrink the widest columns until the table fits.
	if width > 0 {
		for totalWidth(widths) > width {
			wi, max := 0, 0
			for i, w := range widths {
				if w > max {
					wi, max = i, w
				}
			}
			if max <= minColumnWidth {
				break
			}
			widths[wi]--
		}
	}
	return widths
}

func totalWidth(widths []int) int {
	total := 0
	for _, w := range widths {
		total += w + 2 // cell padding
	}
	return total
}

// pad truncates or right-pads a cell to exactly width runes.
func pad(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width <= 1 {
			return string(r[:width])
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
