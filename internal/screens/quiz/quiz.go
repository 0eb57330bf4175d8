// Package quiz is the screen driving a quiz session: it presents each
// generated question, commits mastery as correct vocabulary answers land,
// and hands the collected mistakes to the summary screen at the end.
package quiz

import (
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
	core "github.com/kenta/kotoba/internal/quiz"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/screens/summary"
	"github.com/kenta/kotoba/internal/ui/components"
)

// Deps are the stores and services shared by the quiz flow's screens.
type Deps struct {
	Content  *content.Store
	Progress *progress.Store
	Mistakes *mistake.Store
	Logger   *slog.Logger
	RNG      *rand.Rand
}

// phase is the screen-local state machine position.
type phase int

const (
	phaseLoading phase = iota
	phaseAsking
	phaseFeedback
	phaseFailed // pool too small or content unavailable
)

// Screen runs one quiz session.
type Screen struct {
	deps  Deps
	kind  core.Kind
	level content.Level

	session *core.Session
	picker  components.OptionPicker
	confirm components.Confirm

	phase      phase
	confirming bool
	failMsg    string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)
var _ router.EscOwner = (*Screen)(nil)

// NewVocab creates a quiz screen for a JLPT level.
func NewVocab(level content.Level, deps Deps) *Screen {
	return &Screen{deps: deps, kind: core.KindVocabulary, level: level}
}

// NewCharacter creates a character quiz screen.
func NewCharacter(deps Deps) *Screen {
	return &Screen{deps: deps, kind: core.KindCharacter}
}

// sessionReadyMsg carries the constructed session, or the reason it failed.
type sessionReadyMsg struct {
	session *core.Session
	failMsg string
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		cards, err := s.loadCards()
		if err != nil {
			s.deps.Logger.Error("loading quiz content", "err", err)
			return sessionReadyMsg{failMsg: "Could not load quiz data."}
		}

		session, err := core.NewSession(s.kind, s.level, cards, s.deps.RNG)
		if err != nil {
			return sessionReadyMsg{failMsg: "Not enough items for a 10-question quiz. Add more data and try again."}
		}

		s.deps.Logger.Info("quiz started",
			"session", session.ID, "kind", s.kind.String(), "level", s.level)
		return sessionReadyMsg{session: session}
	}
}

func (s *Screen) Title() string {
	if s.kind == core.KindCharacter {
		return "Character Quiz"
	}
	return "JLPT Quiz " + string(s.level)
}

// OwnsEsc keeps the app from popping a live session; esc asks to quit.
func (s *Screen) OwnsEsc() bool {
	return true
}

func (s *Screen) KeyHints() []router.KeyHint {
	if s.confirming {
		return []router.KeyHint{
			{Key: "Y", Help: "Abandon quiz"},
			{Key: "N", Help: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback:
		return []router.KeyHint{{Key: "any key", Help: "Next question"}}
	case phaseFailed:
		return []router.KeyHint{{Key: "any key", Help: "Back"}}
	default:
		return []router.KeyHint{
			{Key: "A-D", Help: "Answer"},
			{Key: "Q", Help: "Quit quiz"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		if msg.failMsg != "" {
			s.phase = phaseFailed
			s.failMsg = msg.failMsg
			return s, nil
		}
		s.session = msg.session
		s.askNext()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if s.phase == phaseFailed {
		return s, router.Pop()
	}

	if s.confirming {
		if answered, yes := s.confirm.Update(msg); answered {
			s.confirming = false
			if yes {
				s.deps.Logger.Info("quiz abandoned",
					"session", s.session.ID, "answered", s.session.Answered())
				return s, router.Pop()
			}
		}
		return s, nil
	}

	switch s.phase {
	case phaseAsking:
		if key := msg.String(); key == "q" || key == "Q" || key == "esc" {
			s.confirm = components.NewConfirm(
				"Are you sure? This will nullify the quiz attempt!", true)
			s.confirming = true
			return s, nil
		}

		var submitted bool
		s.picker, submitted = s.picker.Update(msg)
		if submitted {
			s.answer(s.picker.ChosenIndex)
			s.phase = phaseFeedback
		}
		return s, nil

	case phaseFeedback:
		if s.session.Done() {
			return s, s.finish()
		}
		s.askNext()
		return s, nil
	}

	return s, nil
}

// answer scores the submitted choice and, for vocabulary, commits mastery
// right away. A later quit does not roll this back.
func (s *Screen) answer(choice int) {
	card := s.session.Card()
	correct := s.session.Answer(choice)

	if correct && s.kind == core.KindVocabulary {
		if _, err := s.deps.Progress.AddMastered(s.level, card.Word); err != nil {
			s.deps.Logger.Error("recording mastery",
				"session", s.session.ID, "kanji", card.Word, "err", err)
		}
	}
}

func (s *Screen) askNext() {
	s.session.Next()
	s.picker = components.NewOptionPicker(s.session.Current)
	s.phase = phaseAsking
}

func (s *Screen) finish() tea.Cmd {
	s.deps.Logger.Info("quiz finished",
		"session", s.session.ID, "score", s.session.Score, "mistakes", len(s.session.Mistakes))

	result := summary.Result{
		Kind:     s.kind,
		Level:    s.level,
		Score:    s.session.Score,
		Total:    s.session.Len(),
		Mistakes: s.session.Mistakes,
	}
	deps := summary.Deps{
		Content:  s.deps.Content,
		Mistakes: s.deps.Mistakes,
		Logger:   s.deps.Logger,
		RNG:      s.deps.RNG,
	}
	// Replace this screen with the summary so popping it lands on the menu.
	return tea.Sequence(router.Pop(), router.Push(summary.New(result, deps)))
}

func (s *Screen) loadCards() ([]core.Card, error) {
	if s.kind == core.KindCharacter {
		entries, err := s.deps.Content.Characters()
		if err != nil {
			return nil, err
		}
		return core.CharacterCards(entries), nil
	}
	entries, err := s.deps.Content.Vocabulary(s.level)
	if err != nil {
		return nil, err
	}
	return core.VocabCards(entries), nil
}
