package tui

import "github.com/charmbracelet/lipgloss"

type Theme struct {
	Name    string
	Base    lipgloss.Style
	Display lipgloss.Style
	Input   lipgloss.Style
	Button  lipgloss.Style
	Mark    lipgloss.Style
	Hint    lipgloss.Style
	Dim     lipgloss.Style
}

var Themes = map[string]Theme{
	"default": {
		Name:    "Default",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Display: lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Button:  lipgloss.NewStyle().Foreground(lipgloss.Color("63")).Bold(true),
		Mark:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	},
	"dracula": {
		Name:    "Dracula",
		Base:    lipgloss.NewStyle().Margin(1, 2),
		Display: lipgloss.NewStyle().Foreground(lipgloss.Color("50")).Bold(true),
		Input:   lipgloss.NewStyle().Foreground(lipgloss.Color("255")),
		Button:  lipgloss.NewStyle().Foreground(lipgloss.Color("62")).Bold(true),
		Mark:    lipgloss.NewStyle().Foreground(lipgloss.Color("215")),
		Hint:    lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("60")),
	},
}

// ThemeByName falls back to the default theme for unknown names.
func ThemeByName(name string) Theme {
	if t, ok := Themes[name]; ok {
		return t
	}
	return Themes["default"]
}
