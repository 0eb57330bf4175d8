// Package home is the main menu: the seven entry points of the app.
package home

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/screens/browse"
	"github.com/kenta/kotoba/internal/screens/levels"
	quizscreen "github.com/kenta/kotoba/internal/screens/quiz"
	"github.com/kenta/kotoba/internal/screens/review"
	"github.com/kenta/kotoba/internal/ui/components"
	"github.com/kenta/kotoba/internal/ui/theme"
)

// Deps are the stores and services every flow starts from.
type Deps struct {
	Content  *content.Store
	Progress *progress.Store
	Mistakes *mistake.Store
	Logger   *slog.Logger
	RNG      *rand.Rand
}

// Screen is the main menu.
type Screen struct {
	deps Deps
	menu components.Menu

	confirm    components.Confirm
	confirming confirmTarget
}

// confirmTarget says what the active confirmation dialog will do.
type confirmTarget int

const (
	confirmNone confirmTarget = iota
	confirmReset
	confirmQuit
)

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)
var _ router.EscOwner = (*Screen)(nil)

// New creates the main menu over deps.
func New(deps Deps) *Screen {
	s := &Screen{deps: deps}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *Screen) quizDeps() quizscreen.Deps {
	return quizscreen.Deps{
		Content:  s.deps.Content,
		Progress: s.deps.Progress,
		Mistakes: s.deps.Mistakes,
		Logger:   s.deps.Logger,
		RNG:      s.deps.RNG,
	}
}

func (s *Screen) items() []components.MenuItem {
	return []components.MenuItem{
		{Label: "JLPT Vocabulary Quiz", Action: func() tea.Cmd {
			return router.Push(levels.New("Pick a level to quiz", s.deps.Content, s.deps.Progress,
				s.deps.Logger, func(lvl content.Level) tea.Cmd {
					return router.Push(quizscreen.NewVocab(lvl, s.quizDeps()))
				}))
		}},
		{Label: "Character Quiz", Action: func() tea.Cmd {
			return router.Push(quizscreen.NewCharacter(s.quizDeps()))
		}},
		{Label: "Browse Vocabulary", Action: func() tea.Cmd {
			return router.Push(levels.New("Pick a level to browse", s.deps.Content, s.deps.Progress,
				s.deps.Logger, func(lvl content.Level) tea.Cmd {
					return router.Push(browse.NewVocabulary(lvl, s.deps.Content, s.deps.Progress, s.deps.Logger))
				}))
		}},
		{Label: "Browse Characters", Action: func() tea.Cmd {
			return router.Push(browse.NewCharacters(s.deps.Content, s.deps.Logger))
		}},
		{Label: "Practice Mistakes", Badge: s.mistakeBadge(), Action: func() tea.Cmd {
			return router.Push(review.NewStandalone(review.Deps{
				Content:  s.deps.Content,
				Mistakes: s.deps.Mistakes,
				Logger:   s.deps.Logger,
				RNG:      s.deps.RNG,
			}))
		}},
		{Label: "Reset Progress", Action: func() tea.Cmd {
			s.confirm = components.NewConfirm(
				"Reset ALL mastery progress and recorded mistakes?", true)
			s.confirming = confirmReset
			return nil
		}},
		{Label: "Quit", Action: func() tea.Cmd {
			s.confirm = components.NewConfirm("Leave Kotoba?", false)
			s.confirming = confirmQuit
			return nil
		}},
	}
}

func (s *Screen) mistakeBadge() string {
	n, err := s.deps.Mistakes.Count()
	if err != nil || n == 0 {
		return ""
	}
	return fmt.Sprintf("%d waiting", n)
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Main Menu"
}

// OwnsEsc maps esc on the root menu to the quit confirmation.
func (s *Screen) OwnsEsc() bool {
	return true
}

func (s *Screen) KeyHints() []router.KeyHint {
	if s.confirming != confirmNone {
		return []router.KeyHint{
			{Key: "Y", Help: "Confirm"},
			{Key: "N", Help: "Cancel"},
		}
	}
	return []router.KeyHint{
		{Key: "1-7", Help: "Choose"},
		{Key: "↑/↓ Enter", Help: "Select"},
		{Key: "Q", Help: "Quit"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.confirming != confirmNone {
		answered, yes := s.confirm.Update(kmsg)
		if !answered {
			return s, nil
		}
		target := s.confirming
		s.confirming = confirmNone
		if !yes {
			return s, nil
		}
		switch target {
		case confirmReset:
			s.reset()
			return s, nil
		case confirmQuit:
			s.deps.Logger.Info("app quit")
			return s, tea.Quit
		}
		return s, nil
	}

	if key := kmsg.String(); key == "q" || key == "Q" || key == "esc" {
		s.confirm = components.NewConfirm("Leave Kotoba?", false)
		s.confirming = confirmQuit
		return s, nil
	}

	// Rebuild items first so actions see a fresh mistake badge.
	s.menu.Items = s.items()
	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(kmsg)
	return s, cmd
}

// reset truncates both the progress file and the mistake bank.
func (s *Screen) reset() {
	if err := s.deps.Progress.Reset(); err != nil {
		s.deps.Logger.Error("resetting progress", "err", err)
	}
	if err := s.deps.Mistakes.Reset(); err != nil {
		s.deps.Logger.Error("resetting mistakes", "err", err)
	}
	s.deps.Logger.Info("progress reset")
}

func (s *Screen) View(width, height int) string {
	if s.confirming != confirmNone {
		return s.confirm.View(width, height)
	}

	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render("What would you like to do?") + "\n\n")

	// Refresh the badge on every render; the bank changes behind us.
	s.menu.Items = s.items()

	b.WriteString(indent(s.menu.View(), 2))
	return b.String()
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
