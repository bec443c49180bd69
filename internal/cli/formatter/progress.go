package formatter

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a bar like [████░░░░]  45% for a fraction in [0,1].
func RenderProgress(fraction float64, width int, style lipgloss.Style) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	if width < 2 {
		width = 2
	}

	filled := int(fraction * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), fraction*100)
}

// RenderFulfilment colors a bar by how close actual is to expected:
// green at or above plan, yellow within 10% short, red otherwise.
func RenderFulfilment(actual, expected float64, width int) string {
	if expected <= 0 {
		return RenderProgress(1, width, StyleGreen)
	}
	ratio := actual / expected
	style := StyleGreen
	switch {
	case ratio < 0.9:
		style = StyleRed
	case ratio < 1:
		style = StyleYellow
	}
	return RenderProgress(ratio, width, style)
}
