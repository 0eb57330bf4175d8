package quiz

import (
	"errors"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
)

// SessionLength is the fixed number of questions per quiz.
const SessionLength = 10

// ErrNotEnoughCards is returned when the pool cannot seat a full quiz.
var ErrNotEnoughCards = errors.New("not enough items for a quiz")

// Session is one fixed-length quiz round. It holds only transient state;
// mastery and mistake persistence happen in the caller as answers land.
type Session struct {
	// ID identifies the session in logs.
	ID string

	// Kind selects the prompt/answer mapping, fixed at construction.
	Kind Kind

	// Level is the JLPT level for vocabulary sessions, "" for characters.
	Level content.Level

	// Current is the active question, valid after a true Next().
	Current Question

	// Score is the number of correct answers so far.
	Score int

	// Mistakes accumulates this round's misses. Not yet persisted.
	Mistakes []mistake.Record

	cards []Card // the sampled quiz items, in asking order
	pool  []Card // distractor source
	index int    // next card to ask
	rng   *rand.Rand
}

// NewSession samples SessionLength cards without replacement from all.
// Vocabulary sessions use their own sample as the distractor pool;
// character sessions draw distractors from the full pool.
func NewSession(kind Kind, level content.Level, all []Card, rng *rand.Rand) (*Session, error) {
	if len(all) < SessionLength {
		return nil, ErrNotEnoughCards
	}

	perm := rng.Perm(len(all))
	cards := make([]Card, SessionLength)
	for i := 0; i < SessionLength; i++ {
		cards[i] = all[perm[i]]
	}

	pool := cards
	if kind == KindCharacter {
		pool = all
	}

	return &Session{
		ID:    uuid.New().String(),
		Kind:  kind,
		Level: level,
		cards: cards,
		pool:  pool,
		rng:   rng,
	}, nil
}

// Len returns the total number of questions in the session.
func (s *Session) Len() int {
	return len(s.cards)
}

// Answered returns how many questions have been answered.
func (s *Session) Answered() int {
	return s.index
}

// Card returns the item behind the current question.
func (s *Session) Card() Card {
	return s.cards[s.index]
}

// Done reports whether every question has been answered.
func (s *Session) Done() bool {
	return s.index >= len(s.cards)
}

// Next builds the question for the current card. Returns false once the
// session is exhausted.
func (s *Session) Next() bool {
	if s.Done() {
		return false
	}
	card := s.cards[s.index]
	s.Current = NewQuestion(card.QuizPrompt(), card.Answer, Answers(s.pool), s.rng)
	return true
}

// Answer evaluates the chosen option for the current question, advancing
// the session. A miss is recorded in Mistakes with the chosen option as
// the user's answer.
func (s *Session) Answer(choice int) bool {
	card := s.cards[s.index]
	correct := s.Current.Correct(choice)

	if correct {
		s.Score++
	} else {
		s.Mistakes = append(s.Mistakes, mistake.Record{
			Word:          card.Word,
			Kana:          card.Kana,
			CorrectAnswer: card.Answer,
			UserAnswer:    s.Current.Option(choice),
			Count:         1,
		})
	}

	s.index++
	return correct
}
