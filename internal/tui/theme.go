package tui

import "github.com/charmbracelet/lipgloss"

// Theme styles the footer. The clock itself uses the configured colour
// indexes.
type Theme struct {
	Name     string
	Header   lipgloss.Style
	Running  lipgloss.Style
	Paused   lipgloss.Style
	Finished lipgloss.Style
	Break    lipgloss.Style
	Dim      lipgloss.Style
	Status   lipgloss.Style
	Error    lipgloss.Style
	Progress string
}

var Themes = map[string]Theme{
	"default": {
		Name:     "Default",
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		Finished: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Break:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("81")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
		Progress: "63",
	},
	"dracula": {
		Name:     "Dracula",
		Header:   lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),  // Cyan
		Running:  lipgloss.NewStyle().Foreground(lipgloss.Color("120")).Bold(true), // Green
		Paused:   lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true), // Yellow
		Finished: lipgloss.NewStyle().Foreground(lipgloss.Color("210")).Bold(true), // Red/Pink
		Break:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")).Bold(true), // Orange
		Dim:      lipgloss.NewStyle().Foreground(lipgloss.Color("60")),             // Comment
		Status:   lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
		Progress: "141",
	},
}

// ThemeByName returns the named theme, or the default one.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
