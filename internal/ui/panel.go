package ui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ProgressBar renders a bar filled to pct (0-100) with a percentage label.
func ProgressBar(pct float64, width int) string {
	t := Current()
	if width < 5 {
		width = 5
	}
	pct = math.Max(0, math.Min(100, pct))
	filled := int(math.Round(pct / 100 * float64(width)))
	bar := strings.Repeat(t.Filled, filled) + strings.Repeat(t.Empty, width-filled)
	return fmt.Sprintf("%s %3.0f%%", bar, pct)
}

// Panel frames content with the current theme's border.
func Panel(content string) string {
	return lipgloss.NewStyle().
		Border(Current().Border).
		BorderForeground(lipgloss.Color("8")).
		Padding(0, 1).
		Render(content)
}
