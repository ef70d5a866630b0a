package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// KeysTable renders the key bindings as a table for the CLI.
func KeysTable(km KeyMap) string {
	bindings := km.Bindings()

	rows := make([]table.Row, 0, len(bindings))
	for _, b := range bindings {
		keys := make([]string, 0, len(b.Binding.Keys()))
		for _, k := range b.Binding.Keys() {
			if k == " " {
				k = "space"
			}
			keys = append(keys, k)
		}
		rows = append(rows, table.Row{strings.Join(keys, ", "), b.Binding.Help().Desc})
	}

	t := table.New(
		table.WithColumns([]table.Column{
			{Title: "Keys", Width: 14},
			{Title: "Action", Width: 14},
		}),
		table.WithRows(rows),
		table.WithHeight(len(rows)+1),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return t.View()
}
