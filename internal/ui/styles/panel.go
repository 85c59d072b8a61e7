package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the bordered style for the drop zone and turntable.
// Highlighted panels mark a valid drop target under the cursor.
func PanelStyle(highlighted bool) lipgloss.Style {
	t := T()
	border := t.Border
	if highlighted {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

// DropZoneStyle is the dashed-looking frame of the drop zone.
func DropZoneStyle(highlighted bool) lipgloss.Style {
	t := T()
	border := t.FgSubtle
	if highlighted {
		border = t.Primary
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(border)
}
