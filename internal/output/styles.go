package output

import (
	"github.com/charmbracelet/lipgloss"
)

// Color palette. Never use inline lipgloss.Color literals.
var (
	// ColorCyan is used for identifiable nouns: file paths, template names.
	ColorCyan = lipgloss.Color("14")

	// ColorGreenCheck is used for the completion checkmark (✔).
	ColorGreenCheck = lipgloss.Color("10")

	// ColorBoldRed is used for the failure cross (✘).
	ColorBoldRed = lipgloss.Color("204")

	// ColorYellow is used for the cancellation marker.
	ColorYellow = lipgloss.Color("220")
)

// Semantic styles.
var (
	// StyleNoun styles identifiable nouns (file paths, template names).
	StyleNoun = lipgloss.NewStyle().Foreground(ColorCyan)

	// StyleDim styles structural chrome (prompts markers, sizes).
	StyleDim = lipgloss.NewStyle().Faint(true)

	// StyleSummary styles banner and completion lines.
	StyleSummary = lipgloss.NewStyle().Bold(true)
)

// FormatCheckmark renders a green checkmark with a message.
func FormatCheckmark(msg string) string {
	check := lipgloss.NewStyle().Foreground(ColorGreenCheck).Render("✔")
	return check + " " + msg
}

// FormatFailure renders a red cross with a message.
func FormatFailure(msg string) string {
	cross := lipgloss.NewStyle().Bold(true).Foreground(ColorBoldRed).Render("✘")
	return cross + " " + msg
}

// FormatCancelled renders a yellow marker with a message.
func FormatCancelled(msg string) string {
	mark := lipgloss.NewStyle().Foreground(ColorYellow).Render("-")
	return mark + " " + msg
}

// FormatNoun renders a path or name in the noun style.
func FormatNoun(s string) string {
	return StyleNoun.Render(s)
}
