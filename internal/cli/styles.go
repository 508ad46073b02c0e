package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Success styling
	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	// Error styling
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)

	// Warning styling
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFA500"))

	// Header styling
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// Subtle text styling
	subtleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))
)

// RenderError formats an error for terminal output
func RenderError(err error) string {
	return errorStyle.Render("error: ") + err.Error()
}
