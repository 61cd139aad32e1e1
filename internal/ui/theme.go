package ui

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the TUI.
type Theme struct {
	Name string

	Text    string
	Muted   string
	Accent  string
	Success string
	Warning string
	Danger  string
	Info    string
	Border  string
}

// Styles holds the lipgloss styles derived from a theme.
type Styles struct {
	Header    lipgloss.Style
	Status    lipgloss.Style
	Muted     lipgloss.Style
	Timestamp lipgloss.Style
	Info      lipgloss.Style
	Warn      lipgloss.Style
	Error     lipgloss.Style
	Debug     lipgloss.Style
	Field     lipgloss.Style
	Help      lipgloss.Style
}

// Styles returns lipgloss styles for this theme.
func (t Theme) Styles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Accent)).
			Bold(true),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Timestamp: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)),
		Info: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Success)).
			Bold(true),
		Warn: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Warning)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Danger)).
			Bold(true),
		Debug: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		Field: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Info)),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(t.Muted)).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(t.Border)).
			Padding(0, 2),
	}
}

var themes = []Theme{
	{
		Name:    "Dracula",
		Text:    "#F8F8F2",
		Muted:   "#6272A4",
		Accent:  "#BD93F9",
		Success: "#50FA7B",
		Warning: "#F1FA8C",
		Danger:  "#FF5555",
		Info:    "#8BE9FD",
		Border:  "#44475A",
	},
	{
		Name:    "Nord",
		Text:    "#ECEFF4",
		Muted:   "#4C566A",
		Accent:  "#88C0D0",
		Success: "#A3BE8C",
		Warning: "#EBCB8B",
		Danger:  "#BF616A",
		Info:    "#81A1C1",
		Border:  "#3B4252",
	},
}

// GetTheme returns the named theme, defaulting to the first one.
func GetTheme(name string) Theme {
	for _, t := range themes {
		if t.Name == name {
			return t
		}
	}
	return themes[0]
}

// NextTheme cycles to the theme after the named one.
func NextTheme(name string) Theme {
	for i, t := range themes {
		if t.Name == name {
			return themes[(i+1)%len(themes)]
		}
	}
	return themes[0]
}
