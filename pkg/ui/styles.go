package ui

import "github.com/charmbracelet/lipgloss"

// Styles used by the terminal renderer. Adaptive colors adjust to
// light and dark terminal themes.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#1a1a1a", Dark: "#fafafa"})

	NameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#005f87", Dark: "#5fd7ff"})

	MutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#767676", Dark: "#8a8a8a"})

	RequiredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#af0000", Dark: "#ff5f5f"})
)
