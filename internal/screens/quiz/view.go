package quiz

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	core "github.com/kenta/kotoba/internal/quiz"
	"github.com/kenta/kotoba/internal/ui/layout"
	"github.com/kenta/kotoba/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch {
	case s.phase == phaseFailed:
		return layout.Center(theme.Hint.Render(s.failMsg), width, height)
	case s.session == nil:
		return layout.Center(theme.Hint.Render("Preparing quiz..."), width, height)
	case s.confirming:
		return s.confirm.View(width, height)
	}

	var b strings.Builder

	// Status line: question number and running score.
	status := fmt.Sprintf("  Q%d of %d", s.questionNumber(), s.session.Len())
	score := fmt.Sprintf("score %d  ", s.session.Score)
	gap := width - lipgloss.Width(status) - lipgloss.Width(score)
	if gap < 1 {
		gap = 1
	}
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(status))
	b.WriteString(strings.Repeat(" ", gap))
	b.WriteString(lipgloss.NewStyle().Foreground(theme.TextDim).Render(score))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n\n")

	if s.session.Answered() == 0 && s.phase == phaseAsking {
		b.WriteString("  " + theme.Hint.Render("Answers are not case sensitive. Press Q to quit; this nullifies the attempt.") + "\n\n")
	}

	b.WriteString("  " + theme.Body.Render(s.questionLead()) + "\n\n")
	b.WriteString(indent(s.picker.View(), 2))

	if s.phase == phaseFeedback {
		b.WriteString("\n")
		if s.picker.IsCorrect() {
			b.WriteString("  " + theme.Good.Render("Correct!"))
		} else {
			q := s.picker.Question
			b.WriteString("  " + theme.Bad.Render("Wrong.") + "  " +
				lipgloss.NewStyle().Foreground(theme.Warning).Render(
					fmt.Sprintf("Correct answer: %s | %s",
						q.CorrectLabel(), q.Option(q.CorrectIndex))))
		}
	}

	return b.String()
}

// questionNumber is 1-based; during feedback the answered question stays
// on screen.
func (s *Screen) questionNumber() int {
	n := s.session.Answered()
	if s.phase == phaseAsking {
		n++
	}
	return min(n, s.session.Len())
}

func (s *Screen) questionLead() string {
	if s.kind == core.KindCharacter {
		return "Choose the reading most suited for the following character."
	}
	return "Choose the meaning most suited for the following vocabulary."
}

func indent(text string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = pad + line
		}
	}
	return strings.Join(lines, "\n")
}
