package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette.
var (
	colorAccent  = lipgloss.Color("#22D3EE") // Cyan
	colorSuccess = lipgloss.Color("#10B981") // Green
	colorWarning = lipgloss.Color("#F59E0B") // Amber
	colorDanger  = lipgloss.Color("#EF4444") // Red
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorText    = lipgloss.Color("#D1D5DB") // Light gray
)

// Shared styles used by the installer output and prompts.
var (
	// Banner art and command names.
	AccentStyle = lipgloss.NewStyle().
			Foreground(colorAccent)

	// Check marks and "Done!".
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess)

	// Prompt titles and usage errors.
	WarningStyle = lipgloss.NewStyle().
			Foreground(colorWarning)

	// Runtime errors.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorDanger)

	// Hints, defaults, version numbers.
	MutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	// Selected choice in the interactive prompt.
	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	// Unselected choice in the interactive prompt.
	normalStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

const bannerArt = `   ██████╗ ███████╗██████╗
  ██╔════╝ ██╔════╝██╔══██╗
  ██║  ███╗███████╗██║  ██║
  ██║   ██║╚════██║██║  ██║
  ╚██████╔╝███████║██████╔╝
   ╚═════╝ ╚══════╝╚═════╝`

// Banner renders the program banner for the given package version.
func Banner(version, description string) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(AccentStyle.Render(bannerArt))
	b.WriteString("\n\n  Get Shit Done ")
	b.WriteString(MutedStyle.Render("v" + version))
	b.WriteString("\n")
	if description != "" {
		b.WriteString(MutedStyle.Render(wrapIndent(description, 56, "  ")))
		b.WriteString("\n")
	}
	return b.String()
}

// wrapIndent wraps s at width columns, prefixing each line with indent.
func wrapIndent(s string, width int, indent string) string {
	var lines []string
	line := ""
	for _, word := range strings.Fields(s) {
		if line != "" && lipgloss.Width(line)+1+lipgloss.Width(word) > width {
			lines = append(lines, indent+line)
			line = word
			continue
		}
		if line != "" {
			line += " "
		}
		line += word
	}
	if line != "" {
		lines = append(lines, indent+line)
	}
	return strings.Join(lines, "\n")
}
