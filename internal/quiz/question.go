package quiz

import (
	"math/rand/v2"
)

// MaxOptions is the option count of a fully-stocked question.
const MaxOptions = 4

// OptionLabels are the lettered labels shown next to options.
var OptionLabels = []string{"A", "B", "C", "D"}

// Question is a single multiple-choice question. It is built fresh per
// question and discarded once answered.
type Question struct {
	Prompt       string
	Options      []string
	CorrectIndex int
}

// NewQuestion builds a question for correctAnswer against a pool of answer
// values. Three distractors are drawn uniformly without replacement from
// the pool values that differ from the correct answer (duplicate values
// count separately); the pool being short simply yields fewer options.
// The final option order is shuffled and CorrectIndex points at the first
// occurrence of the correct answer.
func NewQuestion(prompt, correctAnswer string, pool []string, rng *rand.Rand) Question {
	distractors := make([]string, 0, len(pool))
	for _, v := range pool {
		if v != correctAnswer {
			distractors = append(distractors, v)
		}
	}
	rng.Shuffle(len(distractors), func(i, j int) {
		distractors[i], distractors[j] = distractors[j], distractors[i]
	})
	if len(distractors) > MaxOptions-1 {
		distractors = distractors[:MaxOptions-1]
	}

	options := append([]string{correctAnswer}, distractors...)
	rng.Shuffle(len(options), func(i, j int) {
		options[i], options[j] = options[j], options[i]
	})

	correctIndex := 0
	for i, opt := range options {
		if opt == correctAnswer {
			correctIndex = i
			break
		}
	}

	return Question{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
	}
}

// Correct reports whether the chosen option index is the correct one.
func (q Question) Correct(choice int) bool {
	return choice == q.CorrectIndex
}

// Option returns the option text at index, or "" when out of range.
func (q Question) Option(index int) string {
	if index < 0 || index >= len(q.Options) {
		return ""
	}
	return q.Options[index]
}

// CorrectLabel returns the letter of the correct option.
func (q Question) CorrectLabel() string {
	return OptionLabels[q.CorrectIndex]
}
