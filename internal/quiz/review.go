package quiz

import (
	"math/rand/v2"

	"github.com/kenta/kotoba/internal/mistake"
)

// Outcome is the result of a finished or aborted review session.
type Outcome struct {
	// Cleared is the number of mistakes answered correctly.
	Cleared int

	// Remaining holds every mistake that was not cleared: answered wrong,
	// or never reached before an early quit. Records are passed through
	// verbatim, counts untouched.
	Remaining []mistake.Record

	// QuitEarly is true when the user confirmed a mid-review quit.
	QuitEarly bool
}

// Review replays a list of recorded mistakes as a quiz. The input order is
// shuffled once at construction; each question targets the mistake's
// recorded correct answer against a caller-supplied distractor pool.
type Review struct {
	// Current is the active question, valid after a true Next().
	Current Question

	items     []mistake.Record
	pool      []string // answer values of the full content pool
	index     int
	cleared   int
	remaining []mistake.Record
	rng       *rand.Rand
}

// NewReview creates a review over items, drawing distractors from pool.
func NewReview(items []mistake.Record, pool []Card, rng *rand.Rand) *Review {
	shuffled := make([]mistake.Record, len(items))
	copy(shuffled, items)
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return &Review{
		items: shuffled,
		pool:  Answers(pool),
		rng:   rng,
	}
}

// Len returns the number of mistakes under review.
func (r *Review) Len() int {
	return len(r.items)
}

// Answered returns how many mistakes have been answered.
func (r *Review) Answered() int {
	return r.index
}

// Item returns the mistake behind the current question.
func (r *Review) Item() mistake.Record {
	return r.items[r.index]
}

// Done reports whether every mistake has been answered.
func (r *Review) Done() bool {
	return r.index >= len(r.items)
}

// Next builds the question for the current mistake. Returns false once the
// review is exhausted.
func (r *Review) Next() bool {
	if r.Done() {
		return false
	}
	item := r.items[r.index]
	prompt := ReviewPrompt(item.Word, item.Kana)
	r.Current = NewQuestion(prompt, item.CorrectAnswer, r.pool, r.rng)
	return true
}

// Answer evaluates the chosen option. A correct answer clears the current
// mistake; a wrong one keeps it in the remaining list unmodified.
func (r *Review) Answer(choice int) bool {
	correct := r.Current.Correct(choice)
	if correct {
		r.cleared++
	} else {
		r.remaining = append(r.remaining, r.items[r.index])
	}
	r.index++
	return correct
}

// Finish returns the outcome of a review that ran to completion.
func (r *Review) Finish() Outcome {
	return Outcome{
		Cleared:   r.cleared,
		Remaining: r.remaining,
	}
}

// QuitNow aborts the review: the current question and everything after it
// join the remaining list, answered or not.
func (r *Review) QuitNow() Outcome {
	remaining := append([]mistake.Record{}, r.remaining...)
	remaining = append(remaining, r.items[r.index:]...)
	return Outcome{
		Cleared:   r.cleared,
		Remaining: remaining,
		QuitEarly: true,
	}
}
