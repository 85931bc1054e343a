package cmd

import "github.com/charmbracelet/lipgloss"

var (
	commandColor = lipgloss.Color("#4682B4") // steel blue
	replyColor   = lipgloss.Color("#228B22") // forest green
	errorColor   = lipgloss.Color("#CC3333") // dark red
	eventColor   = lipgloss.Color("#FF8800") // orange
	mutedColor   = lipgloss.Color("#888888") // medium gray
)

var (
	commandStyle = lipgloss.NewStyle().Foreground(commandColor).Bold(true)
	replyStyle   = lipgloss.NewStyle().Foreground(replyColor).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(errorColor).Bold(true)
	eventStyle   = lipgloss.NewStyle().Foreground(eventColor).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(mutedColor)

	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Bold(true).
			Padding(0, 1)
)

// kindLabel renders a padded, colored one-word classification for a
// packet line (COMMAND / REPLY / ERROR / EVENT).
func kindLabel(kind string) string {
	switch kind {
	case "COMMAND":
		return commandStyle.Render("COMMAND")
	case "REPLY":
		return replyStyle.Render("REPLY ")
	case "ERROR":
		return errorStyle.Render("ERROR ")
	case "EVENT":
		return eventStyle.Render("EVENT ")
	default:
		return mutedStyle.Render(kind)
	}
}
