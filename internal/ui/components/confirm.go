package components

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/ui/theme"
)

// Confirm is a modal yes/no prompt. Only y and n resolve it; every other
// key re-prompts by doing nothing.
type Confirm struct {
	Prompt string
	Danger bool // render the prompt in the warning color
}

// NewConfirm creates a Confirm with the given prompt.
func NewConfirm(prompt string, danger bool) Confirm {
	return Confirm{Prompt: prompt, Danger: danger}
}

// Update resolves the dialog: (answered, yes).
func (c Confirm) Update(msg tea.Msg) (answered, yes bool) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, false
	}
	switch strings.ToLower(kmsg.String()) {
	case "y":
		return true, true
	case "n":
		return true, false
	}
	return false, false
}

// View renders the dialog card.
func (c Confirm) View(width, height int) string {
	style := lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	if c.Danger {
		style = style.Foreground(theme.Warning)
	}

	body := style.Render(c.Prompt) + "\n\n" +
		theme.Good.Render("[Y]") + lipgloss.NewStyle().Foreground(theme.Text).Render(" yes    ") +
		theme.Bad.Render("[N]") + lipgloss.NewStyle().Foreground(theme.Text).Render(" no")

	card := theme.Card.Render(body)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, card)
}
