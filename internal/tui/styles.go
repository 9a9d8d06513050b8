package tui

import "github.com/charmbracelet/lipgloss"

// Styles holds the colours for one theme.
type Styles struct {
	Title   lipgloss.Style
	Board   lipgloss.Style
	Log     lipgloss.Style
	Status  lipgloss.Style
	Error   lipgloss.Style
	Alert   lipgloss.Style
	Subtle  lipgloss.Style
	Focused lipgloss.Color
}

// ThemeStyles returns the styles for a theme name. Unknown names get the
// default theme.
func ThemeStyles(theme string) Styles {
	switch theme {
	case "light":
		return newStyles("#1A1A1A", "#FFFFFF", "#0B7A55", "#C0392B", "#B7791F", "#8A8A8A")
	case "dark":
		return newStyles("#E0E0E0", "#1E1E2E", "#89B4FA", "#F38BA8", "#F9E2AF", "#585B70")
	default:
		return newStyles("#FAFAFA", "#7D56F4", "#04B575", "#FF6B6B", "#FFEAA7", "#626262")
	}
}

func newStyles(fg, accent, ok, bad, warn, subtle string) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color(fg)).
			Background(lipgloss.Color(accent)).
			Bold(true).
			Padding(0, 1),
		Board: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(subtle)),
		Log: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(subtle)),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color(ok)).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color(bad)).
			Bold(true),
		Alert: lipgloss.NewStyle().
			Foreground(lipgloss.Color(warn)).
			Bold(true),
		Subtle: lipgloss.NewStyle().
			Foreground(lipgloss.Color(subtle)),
		Focused: lipgloss.Color(ok),
	}
}
