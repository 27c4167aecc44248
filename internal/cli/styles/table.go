package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// NewStyledTable creates a themed table model.
func NewStyledTable(theme *Theme, columns []table.Column, rows []table.Row, width, height int) table.Model {
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(false),
		table.WithHeight(height),
		table.WithWidth(width),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Foreground(theme.Accent).
		Bold(true)
	// Static listing: no row is selected.
	s.Selected = s.Cell.
		Foreground(theme.Text)
	s.Cell = s.Cell.
		Foreground(theme.Text)

	t.SetStyles(s)
	return t
}

// KeyTableColumns returns columns for the key name listing.
func KeyTableColumns() []table.Column {
	return []table.Column{
		{Title: "Key", Width: 16},
		{Title: "Kind", Width: 10},
	}
}

// KeyRow is one accepted key name.
type KeyRow struct {
	Name     string
	Modifier bool
}

// ToRow converts to table.Row.
func (k KeyRow) ToRow() table.Row {
	kind := "key"
	if k.Modifier {
		kind = "modifier"
	}
	return table.Row{k.Name, kind}
}
