// Package review is the screen replaying recorded mistakes as a quiz. It
// backs two flows: the mistake practice entry on the main menu, and the
// post-quiz replay offered by the summary screen. The flows differ only in
// where the mistakes come from and how the outcome is persisted, so both
// are expressed as constructors over the same screen.
package review

import (
	"log/slog"
	"math/rand/v2"

	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	core "github.com/kenta/kotoba/internal/quiz"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/ui/components"
)

// Deps are the collaborators a review screen works against.
type Deps struct {
	Content  *content.Store
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
	phaseSummary
	phaseEmpty // nothing to review
)

// Screen runs one review session.
type Screen struct {
	deps Deps

	review  *core.Review
	picker  components.OptionPicker
	confirm components.Confirm
	outcome core.Outcome

	phase      phase
	confirming bool
	popDepth   int
	emptyMsg   string
	quitNote   string

	// persist records the outcome once the review ends, however it ends.
	persist func(core.Outcome) error
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)
var _ router.EscOwner = (*Screen)(nil)

// NewStandalone creates the mistake practice screen fed from the mistake
// bank. The bank file is rewritten with whatever is left after a completed
// run; an early quit leaves it untouched.
func NewStandalone(deps Deps) *Screen {
	return &Screen{
		deps:     deps,
		phase:    phaseLoading,
		popDepth: 1,
		quitNote: "Stopped early. Your mistake list was left as it was.",
		persist: func(o core.Outcome) error {
			if o.QuitEarly {
				return nil
			}
			return deps.Mistakes.ReplaceAll(o.Remaining)
		},
	}
}

// NewInline creates a review over mistakes collected by a just-finished
// quiz. Nothing has been saved yet, so whatever survives the review is
// upserted into the bank, including anything skipped by an early quit.
// Vocabulary distractors come from the quizzed level only.
func NewInline(kind core.Kind, level content.Level, items []mistake.Record, deps Deps) (*Screen, error) {
	pool, err := inlinePool(kind, level, deps.Content)
	if err != nil {
		return nil, err
	}
	s := &Screen{
		deps:     deps,
		popDepth: 2, // past the summary screen, back to where the quiz began
		quitNote: "Stopped early. The rest were saved for later practice.",
		persist: func(o core.Outcome) error {
			for _, m := range o.Remaining {
				if err := deps.Mistakes.Add(m.Word, m.Kana, m.CorrectAnswer, m.UserAnswer); err != nil {
					return err
				}
			}
			return nil
		},
	}
	s.review = core.NewReview(items, pool, deps.RNG)
	s.askNext()
	return s, nil
}

func inlinePool(kind core.Kind, level content.Level, store *content.Store) ([]core.Card, error) {
	if kind == core.KindCharacter {
		entries, err := store.Characters()
		if err != nil {
			return nil, err
		}
		return core.CharacterCards(entries), nil
	}
	entries, err := store.Vocabulary(level)
	if err != nil {
		return nil, err
	}
	return core.VocabCards(entries), nil
}

// reviewReadyMsg carries the standalone session, or the empty-bank notice.
type reviewReadyMsg struct {
	review   *core.Review
	emptyMsg string
}

func (s *Screen) Init() tea.Cmd {
	if s.phase != phaseLoading {
		return nil
	}
	return func() tea.Msg {
		records, err := s.deps.Mistakes.Load()
		if err != nil {
			s.deps.Logger.Error("loading mistake bank", "err", err)
			return reviewReadyMsg{emptyMsg: "Could not load your mistakes."}
		}
		if len(records) == 0 {
			return reviewReadyMsg{emptyMsg: "No mistakes to practice right now. Nice work!"}
		}

		entries, err := s.deps.Content.AllVocabulary()
		if err != nil {
			s.deps.Logger.Error("loading vocabulary pool", "err", err)
			return reviewReadyMsg{emptyMsg: "Could not load vocabulary data."}
		}

		s.deps.Logger.Info("mistake practice started", "mistakes", len(records))
		return reviewReadyMsg{review: core.NewReview(records, core.VocabCards(entries), s.deps.RNG)}
	}
}

func (s *Screen) Title() string {
	return "Mistake Review"
}

// OwnsEsc keeps the app from popping a live review; esc asks to quit.
func (s *Screen) OwnsEsc() bool {
	return true
}

func (s *Screen) KeyHints() []router.KeyHint {
	if s.confirming {
		return []router.KeyHint{
			{Key: "Y", Help: "Stop reviewing"},
			{Key: "N", Help: "Keep going"},
		}
	}
	switch s.phase {
	case phaseFeedback:
		return []router.KeyHint{{Key: "any key", Help: "Next mistake"}}
	case phaseSummary, phaseEmpty:
		return []router.KeyHint{{Key: "any key", Help: "Main menu"}}
	default:
		return []router.KeyHint{
			{Key: "A-D", Help: "Answer"},
			{Key: "Q", Help: "Quit review"},
		}
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reviewReadyMsg:
		if msg.emptyMsg != "" {
			s.phase = phaseEmpty
			s.emptyMsg = msg.emptyMsg
			return s, nil
		}
		s.review = msg.review
		s.askNext()
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	switch s.phase {
	case phaseEmpty, phaseSummary:
		return s, s.pop()
	case phaseLoading:
		return s, nil
	}

	if s.confirming {
		if answered, yes := s.confirm.Update(msg); answered {
			s.confirming = false
			if yes {
				s.end(s.review.QuitNow())
			}
		}
		return s, nil
	}

	switch s.phase {
	case phaseAsking:
		if key := msg.String(); key == "q" || key == "Q" || key == "esc" {
			s.confirm = components.NewConfirm(
				"Stop reviewing? Anything not cleared stays in your mistake list.", false)
			s.confirming = true
			return s, nil
		}

		var submitted bool
		s.picker, submitted = s.picker.Update(msg)
		if submitted {
			s.review.Answer(s.picker.ChosenIndex)
			s.phase = phaseFeedback
		}
		return s, nil

	case phaseFeedback:
		if s.review.Done() {
			s.end(s.review.Finish())
			return s, nil
		}
		s.askNext()
		return s, nil
	}

	return s, nil
}

func (s *Screen) askNext() {
	s.review.Next()
	s.picker = components.NewOptionPicker(s.review.Current)
	s.phase = phaseAsking
}

func (s *Screen) end(outcome core.Outcome) {
	s.outcome = outcome
	if err := s.persist(outcome); err != nil {
		s.deps.Logger.Error("saving review outcome", "err", err)
	}
	s.deps.Logger.Info("review finished",
		"cleared", outcome.Cleared,
		"remaining", len(outcome.Remaining),
		"quit_early", outcome.QuitEarly)
	s.phase = phaseSummary
}

func (s *Screen) pop() tea.Cmd {
	cmds := make([]tea.Cmd, 0, s.popDepth)
	for i := 0; i < s.popDepth; i++ {
		cmds = append(cmds, router.Pop())
	}
	return tea.Sequence(cmds...)
}
