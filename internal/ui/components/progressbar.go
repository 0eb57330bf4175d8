package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/ui/theme"
)

// ProgressBar is a static horizontal bar used for per-level mastery.
type ProgressBar struct {
	Done  int
	Total int
	Width int
}

// View renders the bar with a done/total caption.
func (p ProgressBar) View() string {
	width := p.Width
	if width < 4 {
		width = 4
	}

	filled := 0
	if p.Total > 0 {
		filled = p.Done * width / p.Total
		if filled > width {
			filled = width
		}
	}

	bar := lipgloss.NewStyle().Foreground(theme.Success).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("░", width-filled))

	caption := lipgloss.NewStyle().Foreground(theme.TextDim).
		Render(fmt.Sprintf(" %d/%d mastered", p.Done, p.Total))

	return bar + caption
}
