package components

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/quiz"
	"github.com/kenta/kotoba/internal/ui/theme"
)

// OptionPicker presents the lettered options of a multiple-choice
// question. Letter keys a-d submit directly; arrows move, enter submits.
type OptionPicker struct {
	Question    quiz.Question
	Selected    int
	Submitted   bool
	ChosenIndex int
}

// NewOptionPicker creates a picker for q.
func NewOptionPicker(q quiz.Question) OptionPicker {
	return OptionPicker{Question: q, ChosenIndex: -1}
}

// Update handles keys. The returned bool is true the moment an option has
// been submitted; the caller reads ChosenIndex.
func (p OptionPicker) Update(msg tea.Msg) (OptionPicker, bool) {
	if p.Submitted {
		return p, false
	}
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, false
	}

	switch key := strings.ToLower(kmsg.String()); key {
	case "up", "k":
		if p.Selected > 0 {
			p.Selected--
		}
	case "down", "j":
		if p.Selected < len(p.Question.Options)-1 {
			p.Selected++
		}
	case "enter":
		return p.submit(p.Selected)
	case "a", "b", "c", "d":
		idx := int(key[0] - 'a')
		if idx < len(p.Question.Options) {
			return p.submit(idx)
		}
	}

	return p, false
}

// View renders the prompt and options. After submission the correct option
// turns green and a wrong choice red.
func (p OptionPicker) View() string {
	var b strings.Builder
	b.WriteString(theme.Prompt.Render(p.Question.Prompt))
	b.WriteString("\n\n")

	for i, opt := range p.Question.Options {
		prefix := "  "
		if i == p.Selected && !p.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%s | %s", prefix, quiz.OptionLabels[i], opt)

		switch {
		case p.Submitted && i == p.Question.CorrectIndex:
			b.WriteString(theme.Good.Render(line))
		case p.Submitted && i == p.ChosenIndex:
			b.WriteString(theme.Bad.Render(line))
		case p.Submitted:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(line))
		case i == p.Selected:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Primary).Bold(true).Render(line))
		default:
			b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Render(line))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// IsCorrect reports whether the submitted choice was the correct one.
func (p OptionPicker) IsCorrect() bool {
	return p.Submitted && p.ChosenIndex == p.Question.CorrectIndex
}

func (p OptionPicker) submit(idx int) (OptionPicker, bool) {
	p.Selected = idx
	p.ChosenIndex = idx
	p.Submitted = true
	return p, true
}
