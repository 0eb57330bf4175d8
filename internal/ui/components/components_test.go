package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/quiz"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func testQuestion() quiz.Question {
	return quiz.Question{
		Prompt:       "ねこ (猫)",
		Options:      []string{"dog", "cat", "bird", "fish"},
		CorrectIndex: 1,
	}
}

func TestOptionPicker_LetterSubmits(t *testing.T) {
	p := NewOptionPicker(testQuestion())

	p, done := p.Update(keyPress('b'))
	if !done {
		t.Fatal("letter key did not submit")
	}
	if p.ChosenIndex != 1 {
		t.Errorf("ChosenIndex = %d, want 1", p.ChosenIndex)
	}
	if !p.IsCorrect() {
		t.Error("IsCorrect() = false, want true")
	}
}

func TestOptionPicker_UppercaseLetter(t *testing.T) {
	p := NewOptionPicker(testQuestion())

	p, done := p.Update(keyPress('C'))
	if !done || p.ChosenIndex != 2 {
		t.Errorf("uppercase letter: done=%v chosen=%d, want true/2", done, p.ChosenIndex)
	}
	if p.IsCorrect() {
		t.Error("IsCorrect() = true for a wrong choice")
	}
}

func TestOptionPicker_ArrowsAndEnter(t *testing.T) {
	p := NewOptionPicker(testQuestion())

	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p, _ = p.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	p, done := p.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !done || p.ChosenIndex != 2 {
		t.Errorf("arrow navigation: done=%v chosen=%d, want true/2", done, p.ChosenIndex)
	}
}

func TestOptionPicker_IgnoresOutOfRangeLetter(t *testing.T) {
	q := testQuestion()
	q.Options = q.Options[:2]
	p := NewOptionPicker(q)

	p, done := p.Update(keyPress('d'))
	if done || p.Submitted {
		t.Error("letter beyond the option count must not submit")
	}
}

func TestOptionPicker_LockedAfterSubmit(t *testing.T) {
	p := NewOptionPicker(testQuestion())
	p, _ = p.Update(keyPress('a'))

	p, done := p.Update(keyPress('b'))
	if done || p.ChosenIndex != 0 {
		t.Error("submitted picker must ignore further keys")
	}
}

func TestMenu_DigitActivates(t *testing.T) {
	fired := -1
	items := make([]MenuItem, 3)
	for i := range items {
		idx := i
		items[i] = MenuItem{Label: "item", Action: func() tea.Cmd {
			return func() tea.Msg { fired = idx; return nil }
		}}
	}
	m := NewMenu(items)

	m, cmd := m.Update(keyPress('3'))
	if cmd == nil {
		t.Fatal("digit key produced no command")
	}
	cmd()
	if fired != 2 {
		t.Errorf("activated item %d, want 2", fired)
	}
	if m.Selected != 2 {
		t.Errorf("Selected = %d, want 2", m.Selected)
	}
}

func TestMenu_DigitOutOfRangeIgnored(t *testing.T) {
	m := NewMenu([]MenuItem{{Label: "solo"}})
	m, cmd := m.Update(keyPress('5'))
	if cmd != nil || m.Selected != 0 {
		t.Error("out-of-range digit must be ignored")
	}
}

func TestConfirm(t *testing.T) {
	c := NewConfirm("Are you sure?", true)

	answered, yes := c.Update(keyPress('x'))
	if answered {
		t.Error("non-y/n key must not resolve the dialog")
	}

	answered, yes = c.Update(keyPress('Y'))
	if !answered || !yes {
		t.Errorf("Y: answered=%v yes=%v, want true/true", answered, yes)
	}

	answered, yes = c.Update(keyPress('n'))
	if !answered || yes {
		t.Errorf("n: answered=%v yes=%v, want true/false", answered, yes)
	}
}

func TestProgressBar_View(t *testing.T) {
	bar := ProgressBar{Done: 3, Total: 10, Width: 10}
	v := bar.View()
	if !strings.Contains(v, "3/10 mastered") {
		t.Errorf("caption missing from %q", v)
	}
}
