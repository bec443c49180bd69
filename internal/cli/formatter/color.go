package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/shiftpace/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// PaceColor returns the style for a pace level.
func PaceColor(level domain.PaceLevel) lipgloss.Style {
	switch level {
	case domain.PaceCritical:
		return StyleRed
	case domain.PaceBehind:
		return StyleYellow
	case domain.PaceOnPlan:
		return StyleGreen
	case domain.PaceAhead:
		return StyleBlue
	default:
		return StyleDim
	}
}

// PaceIndicator returns a colored marker such as "● BEHIND".
func PaceIndicator(level domain.PaceLevel) string {
	switch level {
	case domain.PaceCritical:
		return StyleRed.Render("▲ CRITICAL")
	case domain.PaceBehind:
		return StyleYellow.Render("● BEHIND")
	case domain.PaceOnPlan:
		return StyleGreen.Render("● ON PLAN")
	case domain.PaceAhead:
		return StyleBlue.Render("● AHEAD")
	default:
		return StyleDim.Render("○ NO DATA")
	}
}

// Header renders an upper-cased section header with an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", len(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
