package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/ui/theme"
)

// MenuItem is one selectable action in a Menu.
type MenuItem struct {
	Label  string
	Badge  string // optional right-hand annotation
	Action func() tea.Cmd
}

// Menu is a numbered vertical menu. Digit keys jump straight to an item
// and activate it; arrows plus enter work too.
type Menu struct {
	Items    []MenuItem
	Selected int
}

// NewMenu creates a Menu over items.
func NewMenu(items []MenuItem) Menu {
	return Menu{Items: items}
}

// Update handles navigation and activation keys.
func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key := kmsg.String(); key {
	case "up", "k":
		if m.Selected > 0 {
			m.Selected--
		}
	case "down", "j":
		if m.Selected < len(m.Items)-1 {
			m.Selected++
		}
	case "enter":
		return m, m.activate(m.Selected)
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			idx := int(key[0] - '1')
			if idx < len(m.Items) {
				m.Selected = idx
				return m, m.activate(idx)
			}
		}
	}

	return m, nil
}

// View renders the menu.
func (m Menu) View() string {
	var s string
	for i, item := range m.Items {
		line := fmt.Sprintf("%d. %s", i+1, item.Label)
		if item.Badge != "" {
			line += "  " + theme.Hint.Render(item.Badge)
		}

		if i == m.Selected {
			s += lipgloss.NewStyle().
				Foreground(theme.Primary).
				Bold(true).
				Render("  ▸ "+line) + "\n"
		} else {
			s += lipgloss.NewStyle().
				Foreground(theme.Text).
				Render("    "+line) + "\n"
		}
	}
	return s
}

func (m Menu) activate(idx int) tea.Cmd {
	if idx < 0 || idx >= len(m.Items) {
		return nil
	}
	if item := m.Items[idx]; item.Action != nil {
		return item.Action()
	}
	return nil
}
