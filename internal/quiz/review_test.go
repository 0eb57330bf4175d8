package quiz

import (
	"fmt"
	"testing"

	"github.com/kenta/kotoba/internal/mistake"
)

func testMistakes(n int) []mistake.Record {
	recs := make([]mistake.Record, n)
	for i := range recs {
		recs[i] = mistake.Record{
			Word:          fmt.Sprintf("語%d", i),
			Kana:          fmt.Sprintf("かな%d", i),
			CorrectAnswer: fmt.Sprintf("meaning %d", i),
			UserAnswer:    "wrong",
			Count:         i + 1,
		}
	}
	return recs
}

func TestReview_AllCorrectClearsEverything(t *testing.T) {
	r := NewReview(testMistakes(3), vocabPool(20), testRNG())

	for r.Next() {
		r.Answer(r.Current.CorrectIndex)
	}

	out := r.Finish()
	if out.Cleared != 3 {
		t.Errorf("Cleared = %d, want 3", out.Cleared)
	}
	if len(out.Remaining) != 0 {
		t.Errorf("Remaining = %v, want empty", out.Remaining)
	}
	if out.QuitEarly {
		t.Error("QuitEarly = true, want false")
	}
}

func TestReview_WrongAnswersKeptVerbatim(t *testing.T) {
	items := testMistakes(4)
	r := NewReview(items, vocabPool(20), testRNG())

	for r.Next() {
		r.Answer((r.Current.CorrectIndex + 1) % len(r.Current.Options))
	}

	out := r.Finish()
	if out.Cleared != 0 {
		t.Errorf("Cleared = %d, want 0", out.Cleared)
	}
	if len(out.Remaining) != 4 {
		t.Fatalf("len(Remaining) = %d, want 4", len(out.Remaining))
	}
	// Records pass through untouched, counts included.
	byWord := make(map[string]mistake.Record)
	for _, rec := range out.Remaining {
		byWord[rec.Word] = rec
	}
	for _, item := range items {
		got, ok := byWord[item.Word]
		if !ok {
			t.Fatalf("mistake %q missing from remaining", item.Word)
		}
		if got != item {
			t.Errorf("remaining record mutated: got %+v, want %+v", got, item)
		}
	}
}

func TestReview_QuitKeepsCurrentAndOnward(t *testing.T) {
	r := NewReview(testMistakes(5), vocabPool(20), testRNG())

	// Clear the first question, then quit while the second is open.
	if !r.Next() {
		t.Fatal("expected a first question")
	}
	r.Answer(r.Current.CorrectIndex)
	if !r.Next() {
		t.Fatal("expected a second question")
	}

	out := r.QuitNow()
	if !out.QuitEarly {
		t.Error("QuitEarly = false, want true")
	}
	if out.Cleared != 1 {
		t.Errorf("Cleared = %d, want 1", out.Cleared)
	}
	if len(out.Remaining) != 4 {
		t.Errorf("len(Remaining) = %d, want 4 (question 2 through 5)", len(out.Remaining))
	}
}

func TestReview_QuitAfterMissesKeepsThemToo(t *testing.T) {
	r := NewReview(testMistakes(5), vocabPool(20), testRNG())

	// Miss the first question, then quit on the second: the miss and the
	// four unreached items all remain.
	r.Next()
	r.Answer((r.Current.CorrectIndex + 1) % len(r.Current.Options))
	r.Next()

	out := r.QuitNow()
	if len(out.Remaining) != 5 {
		t.Errorf("len(Remaining) = %d, want 5", len(out.Remaining))
	}
	if out.Cleared != 0 {
		t.Errorf("Cleared = %d, want 0", out.Cleared)
	}
}

func TestReview_ShufflesButPreservesSet(t *testing.T) {
	items := testMistakes(8)
	r := NewReview(items, vocabPool(20), testRNG())

	seen := make(map[string]bool)
	for r.Next() {
		seen[r.Item().Word] = true
		r.Answer(r.Current.CorrectIndex)
	}
	if len(seen) != len(items) {
		t.Errorf("review visited %d distinct items, want %d", len(seen), len(items))
	}
}

func TestReview_Empty(t *testing.T) {
	r := NewReview(nil, vocabPool(20), testRNG())
	if r.Next() {
		t.Error("Next() on empty review returned true")
	}
	out := r.Finish()
	if out.Cleared != 0 || len(out.Remaining) != 0 {
		t.Errorf("unexpected outcome %+v", out)
	}
}
