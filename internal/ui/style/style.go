// Package style holds the colors and icons shared by the cadence terminal output.
package style

import "github.com/charmbracelet/lipgloss"

// Brand colors.
var (
	Iris   = lipgloss.Color("#8B5CF6")
	Slate  = lipgloss.Color("#667085")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Icons.
const (
	Check   = "✓"
	Cross   = "✗"
	Warning = "!"
	Tilde   = "~"
	Dot     = "●"
	Circle  = "○"
)

// Text styles for tables and headings.
var (
	Heading = lipgloss.NewStyle().Bold(true).Foreground(Iris)
	Muted   = lipgloss.NewStyle().Foreground(Slate)
	Flag    = lipgloss.NewStyle().Foreground(Yellow)
)

// Outcome returns the icon and color used to show a command outcome.
// Unknown outcomes render as a neutral dot.
func Outcome(outcome string) (string, lipgloss.Color) {
	switch outcome {
	case "completed", "resolved":
		return Check, Green
	case "failed", "rejected":
		return Cross, Red
	case "terminated":
		return Tilde, Yellow
	case "skipped":
		return Circle, Slate
	default:
		return Dot, Slate
	}
}
