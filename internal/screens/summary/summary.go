// Package summary shows the result of a finished quiz and, when mistakes
// were made, offers to replay them immediately. Declining persists every
// mistake to the mistake bank; accepting defers persistence to the review.
package summary

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	core "github.com/kenta/kotoba/internal/quiz"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/screens/review"
	"github.com/kenta/kotoba/internal/ui/theme"
)

// Result is what a finished quiz hands over. Level is set for vocabulary
// quizzes; an inline review restricts its distractors to it.
type Result struct {
	Kind     core.Kind
	Level    content.Level
	Score    int
	Total    int
	Mistakes []mistake.Record
}

// Deps are the collaborators needed for the review offer.
type Deps struct {
	Content  *content.Store
	Mistakes *mistake.Store
	Logger   *slog.Logger
	RNG      *rand.Rand
}

// Screen displays the quiz summary.
type Screen struct {
	result Result
	deps   Deps
	saved  bool // mistakes persisted after a declined review
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)

// New creates the summary screen for a quiz result.
func New(result Result, deps Deps) *Screen {
	return &Screen{result: result, deps: deps}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Quiz Summary"
}

func (s *Screen) offering() bool {
	return len(s.result.Mistakes) > 0 && !s.saved
}

func (s *Screen) KeyHints() []router.KeyHint {
	if s.offering() {
		return []router.KeyHint{
			{Key: "Y", Help: "Review mistakes now"},
			{Key: "N", Help: "Save and return"},
		}
	}
	return []router.KeyHint{{Key: "any key", Help: "Main menu"}}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if !s.offering() {
		return s, router.Pop()
	}

	switch strings.ToLower(kmsg.String()) {
	case "y":
		scr, err := review.NewInline(s.result.Kind, s.result.Level, s.result.Mistakes, review.Deps{
			Content:  s.deps.Content,
			Mistakes: s.deps.Mistakes,
			Logger:   s.deps.Logger,
			RNG:      s.deps.RNG,
		})
		if err != nil {
			s.deps.Logger.Error("starting inline review", "err", err)
			return s, nil
		}
		return s, router.Push(scr)
	case "n":
		s.persistAll()
		s.saved = true
		return s, nil
	}
	return s, nil
}

// persistAll upserts every collected mistake into the bank.
func (s *Screen) persistAll() {
	for _, m := range s.result.Mistakes {
		if err := s.deps.Mistakes.Add(m.Word, m.Kana, m.CorrectAnswer, m.UserAnswer); err != nil {
			s.deps.Logger.Error("saving mistake", "word", m.Word, "err", err)
		}
	}
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n  " + theme.Title.Render("Quiz Summary") + "\n\n")
	b.WriteString(fmt.Sprintf("  You got %s/%d correct.\n",
		theme.Good.Render(fmt.Sprintf("%d", s.result.Score)), s.result.Total))

	if s.result.Kind == core.KindCharacter {
		b.WriteString("  " + s.evaluation() + "\n")
	}

	if len(s.result.Mistakes) > 0 {
		b.WriteString("\n  " + theme.Body.Render("Review these words:") + "\n")
		for _, m := range s.result.Mistakes {
			b.WriteString(fmt.Sprintf("  - %s (you chose: %s, correct: %s)\n",
				theme.Prompt.Render(m.Word),
				theme.Bad.Render(m.UserAnswer),
				theme.Good.Render(m.CorrectAnswer)))
		}

		b.WriteString("\n")
		if s.saved {
			b.WriteString("  " + lipgloss.NewStyle().Foreground(theme.Secondary).
				Render("Good work! Your mistakes have been saved for later practice.") + "\n")
		} else {
			b.WriteString("  " + theme.Hint.Render("Would you like to review these mistakes right now? [Y/N]") + "\n")
		}
	}

	return b.String()
}

func (s *Screen) evaluation() string {
	switch {
	case s.result.Score == s.result.Total:
		return theme.Good.Render("Perfect score!")
	case s.result.Score*10 >= s.result.Total*6:
		return theme.Good.Render("Great job!")
	default:
		return theme.Hint.Render("Keep practicing!")
	}
}
