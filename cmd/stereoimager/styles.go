package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorAccent = lipgloss.Color("#2E86AB")
	colorError  = lipgloss.Color("#A40000")
	colorWarn   = lipgloss.Color("#E3A008")
	colorOK     = lipgloss.Color("#3B8E23")
	colorMuted  = lipgloss.Color("#888888")
)

// Text styles.
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	SectionStyle = lipgloss.NewStyle().
			Bold(true).
			MarginTop(1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(18)

	ValueStyle = lipgloss.NewStyle()

	ErrorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorError)

	OKStyle = lipgloss.NewStyle().
		Foreground(colorOK)

	WarnStyle = lipgloss.NewStyle().
			Foreground(colorWarn)
)

// PrintError prints a styled error message to stderr.
func PrintError(message string) {
	fmt.Fprintf(os.Stderr, "%s %s\n", ErrorStyle.Render("Error:"), message)
}

// keyValue renders one aligned report line.
func keyValue(key, value string) string {
	return "  " + KeyStyle.Render(key) + ValueStyle.Render(value)
}
