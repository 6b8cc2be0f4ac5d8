package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Styles holds the lipgloss styles used on terminals
var Styles = struct {
	Header lipgloss.Style
	Danger lipgloss.Style
}{
	Header: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")).BorderStyle(lipgloss.NormalBorder()).BorderBottom(true).BorderForeground(lipgloss.Color("239")),
	Danger: lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true), // Red
}

// ErrorPrefix returns the "Error:" prefix, styled when requested
func ErrorPrefix(styled bool) string {
	if styled {
		return Styles.Danger.Render("Error:")
	}
	return "Error:"
}
