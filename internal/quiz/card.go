// Package quiz implements the question generator and the quiz and review
// session state machines. The package is pure: screens drive it and handle
// all persistence and rendering.
package quiz

import (
	"fmt"

	"github.com/kenta/kotoba/internal/content"
)

// Kind selects which content fields map to prompt and answer. It is
// resolved once at session construction, never per question.
type Kind int

const (
	KindVocabulary Kind = iota
	KindCharacter
)

// String returns the kind name for logs.
func (k Kind) String() string {
	if k == KindCharacter {
		return "character"
	}
	return "vocabulary"
}

// Card is a quizzable item: the word shown, an optional reading, and the
// answer the user must pick. Both content entry types flatten into it.
type Card struct {
	Word   string
	Kana   string
	Answer string
}

// VocabCard adapts a vocabulary entry: prompt on kanji+kana, answer on meaning.
func VocabCard(v content.VocabEntry) Card {
	return Card{Word: v.Kanji, Kana: v.Kana, Answer: v.Meaning}
}

// VocabCards adapts a whole vocabulary slice.
func VocabCards(entries []content.VocabEntry) []Card {
	cards := make([]Card, len(entries))
	for i, v := range entries {
		cards[i] = VocabCard(v)
	}
	return cards
}

// CharacterCard adapts a character entry: prompt on the character, answer
// on its reading. Kana stays empty.
func CharacterCard(c content.CharacterEntry) Card {
	return Card{Word: c.Character, Answer: c.Reading}
}

// CharacterCards adapts a whole character slice.
func CharacterCards(entries []content.CharacterEntry) []Card {
	cards := make([]Card, len(entries))
	for i, c := range entries {
		cards[i] = CharacterCard(c)
	}
	return cards
}

// QuizPrompt formats the question prompt for a card: "kana (kanji)" for
// vocabulary, the bare character otherwise.
func (c Card) QuizPrompt() string {
	if c.Kana != "" {
		return fmt.Sprintf("%s (%s)", c.Kana, c.Word)
	}
	return c.Word
}

// ReviewPrompt formats the prompt used when replaying a mistake: the word,
// with the kana appended when it adds information.
func ReviewPrompt(word, kana string) string {
	if kana != "" && kana != word {
		return fmt.Sprintf("%s (%s)", word, kana)
	}
	return word
}

// Answers extracts the answer field of every card, duplicates included.
func Answers(cards []Card) []string {
	out := make([]string, len(cards))
	for i, c := range cards {
		out[i] = c.Answer
	}
	return out
}
