// Package formatter renders sprint and forecast data for the terminal.
package formatter

import "github.com/charmbracelet/lipgloss"

// Gruvbox-inspired color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

var colorEnabled = true

// SetColorEnabled toggles styled output. Callers disable it when stdout
// is not a terminal or the user asked for plain output.
func SetColorEnabled(on bool) { colorEnabled = on }

func render(s lipgloss.Style, text string) string {
	if !colorEnabled {
		return text
	}
	return s.Render(text)
}

// Header styles a table header cell.
func Header(s string) string { return render(styleHeader, s) }

// Bold styles an emphasized value.
func Bold(s string) string { return render(styleBold, s) }

// Dim styles a de-emphasized value.
func Dim(s string) string { return render(styleDim, s) }

// Good styles a positive value.
func Good(s string) string { return render(styleGreen, s) }

// Warn styles a cautionary value.
func Warn(s string) string { return render(styleYellow, s) }
