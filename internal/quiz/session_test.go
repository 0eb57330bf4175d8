package quiz

import (
	"errors"
	"fmt"
	"testing"

	"github.com/kenta/kotoba/internal/content"
)

func vocabPool(n int) []Card {
	cards := make([]Card, n)
	for i := range cards {
		cards[i] = Card{
			Word:   fmt.Sprintf("漢%d", i),
			Kana:   fmt.Sprintf("かな%d", i),
			Answer: fmt.Sprintf("meaning %d", i),
		}
	}
	return cards
}

func TestNewSession_PoolTooSmall(t *testing.T) {
	_, err := NewSession(KindVocabulary, content.N5, vocabPool(SessionLength-1), testRNG())
	if !errors.Is(err, ErrNotEnoughCards) {
		t.Fatalf("err = %v, want ErrNotEnoughCards", err)
	}
}

func TestNewSession_SamplesWithoutReplacement(t *testing.T) {
	s, err := NewSession(KindVocabulary, content.N5, vocabPool(30), testRNG())
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != SessionLength {
		t.Fatalf("Len() = %d, want %d", s.Len(), SessionLength)
	}

	seen := make(map[string]bool)
	for s.Next() {
		word := s.Card().Word
		if seen[word] {
			t.Fatalf("card %q sampled twice", word)
		}
		seen[word] = true
		s.Answer(s.Current.CorrectIndex)
	}
}

func TestSession_PerfectScore(t *testing.T) {
	s, err := NewSession(KindVocabulary, content.N5, vocabPool(12), testRNG())
	if err != nil {
		t.Fatal(err)
	}

	for s.Next() {
		s.Answer(s.Current.CorrectIndex)
	}

	if s.Score != SessionLength {
		t.Errorf("Score = %d, want %d", s.Score, SessionLength)
	}
	if len(s.Mistakes) != 0 {
		t.Errorf("Mistakes = %d, want 0", len(s.Mistakes))
	}
}

func TestSession_ScoreNeverExceedsAnswered(t *testing.T) {
	s, err := NewSession(KindVocabulary, content.N5, vocabPool(15), testRNG())
	if err != nil {
		t.Fatal(err)
	}

	for i := 0; s.Next(); i++ {
		if i%2 == 0 {
			s.Answer(s.Current.CorrectIndex)
		} else {
			s.Answer((s.Current.CorrectIndex + 1) % len(s.Current.Options))
		}
		if s.Score > s.Answered() {
			t.Fatalf("Score %d > Answered %d", s.Score, s.Answered())
		}
	}
}

func TestSession_MissRecordsChosenOption(t *testing.T) {
	s, err := NewSession(KindVocabulary, content.N3, vocabPool(10), testRNG())
	if err != nil {
		t.Fatal(err)
	}

	if !s.Next() {
		t.Fatal("expected a first question")
	}
	card := s.Card()
	wrong := (s.Current.CorrectIndex + 1) % len(s.Current.Options)
	chosen := s.Current.Option(wrong)

	if s.Answer(wrong) {
		t.Fatal("wrong option evaluated as correct")
	}
	if len(s.Mistakes) != 1 {
		t.Fatalf("len(Mistakes) = %d, want 1", len(s.Mistakes))
	}

	m := s.Mistakes[0]
	if m.Word != card.Word || m.Kana != card.Kana {
		t.Errorf("mistake keyed on %q/%q, want %q/%q", m.Word, m.Kana, card.Word, card.Kana)
	}
	if m.CorrectAnswer != card.Answer {
		t.Errorf("CorrectAnswer = %q, want %q", m.CorrectAnswer, card.Answer)
	}
	if m.UserAnswer != chosen {
		t.Errorf("UserAnswer = %q, want %q", m.UserAnswer, chosen)
	}
}

func TestSession_VocabularyDistractorsComeFromOwnSample(t *testing.T) {
	all := vocabPool(100)
	s, err := NewSession(KindVocabulary, content.N5, all, testRNG())
	if err != nil {
		t.Fatal(err)
	}

	sampled := make(map[string]bool)
	probe := *s
	for probe.Next() {
		sampled[probe.Card().Answer] = true
		probe.Answer(probe.Current.CorrectIndex)
	}

	for s.Next() {
		for _, opt := range s.Current.Options {
			if !sampled[opt] {
				t.Fatalf("option %q not in the session's own sample", opt)
			}
		}
		s.Answer(s.Current.CorrectIndex)
	}
}

func TestSession_CharacterUsesFullPool(t *testing.T) {
	// With only 10 characters total the sample and the pool coincide, but a
	// larger pool must surface distractors outside the sampled ten.
	all := make([]Card, 60)
	for i := range all {
		all[i] = Card{Word: fmt.Sprintf("字%d", i), Answer: fmt.Sprintf("r%d", i)}
	}
	s, err := NewSession(KindCharacter, "", all, testRNG())
	if err != nil {
		t.Fatal(err)
	}

	sampled := make(map[string]bool)
	probe := *s
	for probe.Next() {
		sampled[probe.Card().Answer] = true
		probe.Answer(probe.Current.CorrectIndex)
	}

	outside := false
	for s.Next() {
		for _, opt := range s.Current.Options {
			if !sampled[opt] {
				outside = true
			}
		}
		s.Answer(s.Current.CorrectIndex)
	}
	if !outside {
		t.Error("expected at least one distractor from outside the sample")
	}
}

func TestSession_HasID(t *testing.T) {
	s, err := NewSession(KindCharacter, "", vocabPool(10), testRNG())
	if err != nil {
		t.Fatal(err)
	}
	if s.ID == "" {
		t.Error("session ID is empty")
	}
}
