package review

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/ui/layout"
	"github.com/kenta/kotoba/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	switch s.phase {
	case phaseLoading:
		return layout.Center(theme.Hint.Render("Gathering your mistakes..."), width, height)
	case phaseEmpty:
		return layout.Center(theme.Hint.Render(s.emptyMsg), width, height)
	case phaseSummary:
		return s.viewSummary(width, height)
	}
	if s.confirming {
		return s.confirm.View(width, height)
	}

	var b strings.Builder

	status := fmt.Sprintf("  Mistake %d of %d", s.itemNumber(), s.review.Len())
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(status))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-2, 0))))
	b.WriteString("\n\n")

	if s.itemNumber() == 1 && s.phase == phaseAsking {
		b.WriteString("  " + theme.Body.Render(
			fmt.Sprintf("Let's review the %d mistake(s) you've made. Ganbatte!", s.review.Len())) + "\n\n")
	}

	b.WriteString("  " + theme.Body.Render("Choose the correct answer for the following word.") + "\n\n")
	b.WriteString(indent(s.picker.View(), 2))

	if s.phase == phaseFeedback {
		b.WriteString("\n")
		if s.picker.IsCorrect() {
			b.WriteString("  " + theme.Good.Render("Correct! Cleared from your list."))
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

func (s *Screen) viewSummary(width, height int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render("Review Summary") + "\n\n")
	b.WriteString(fmt.Sprintf("Cleared: %s\n", theme.Good.Render(fmt.Sprintf("%d", s.outcome.Cleared))))
	b.WriteString(fmt.Sprintf("Still to practice: %s\n", theme.Bad.Render(fmt.Sprintf("%d", len(s.outcome.Remaining)))))
	for _, r := range s.outcome.Remaining {
		b.WriteString("  " + theme.Body.Render(fmt.Sprintf("%s — %s", r.Word, r.CorrectAnswer)) + "\n")
	}
	if s.outcome.QuitEarly {
		b.WriteString("\n" + theme.Hint.Render(s.quitNote) + "\n")
	} else if len(s.outcome.Remaining) == 0 {
		b.WriteString("\n" + theme.Good.Render("All clear. Omedetou!") + "\n")
	}
	return layout.Center(b.String(), width, height)
}

// itemNumber is 1-based; during feedback the answered item stays on screen.
func (s *Screen) itemNumber() int {
	n := s.review.Answered()
	if s.phase == phaseAsking {
		n++
	}
	return min(n, s.review.Len())
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
