package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/vista/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Terminal palette. Chart colors come from insight.Palette; these only style
// the surrounding chrome.
var (
	ColorGreen  = lipgloss.Color("#10b981")
	ColorYellow = lipgloss.Color("#f59e0b")
	ColorRed    = lipgloss.Color("#ef4444")
	ColorBlue   = lipgloss.Color("#0ea5e9")
	ColorPurple = lipgloss.Color("#8b5cf6")
	ColorDim    = lipgloss.Color("#94a3b8")
	ColorFg     = lipgloss.Color("#e2e8f0")
	ColorHeader = lipgloss.Color("#38bdf8")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// StatusStyle returns the style used for a project status label.
func StatusStyle(s domain.ProjectStatus) lipgloss.Style {
	switch s {
	case domain.StatusOnTrack:
		return StyleGreen
	case domain.StatusInProgress:
		return StyleBlue
	case domain.StatusDelayed:
		return StyleYellow
	case domain.StatusBlocked:
		return StyleRed
	default:
		return StyleDim
	}
}

// StatusIndicator renders a colored dot followed by the status name.
func StatusIndicator(s domain.ProjectStatus) string {
	return StatusStyle(s).Render("● " + string(s))
}

// RiskStyle colors a risk score: high risk red, medium yellow, low green.
func RiskStyle(risk float64) lipgloss.Style {
	switch {
	case risk >= 60:
		return StyleRed
	case risk >= 35:
		return StyleYellow
	default:
		return StyleGreen
	}
}

// Header renders an uppercase section header with a dim underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
