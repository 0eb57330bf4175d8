package components

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/ui/theme"
)

// FilterInput wraps bubbles/textinput as an incremental list filter.
type FilterInput struct {
	Model  textinput.Model
	active bool
}

// NewFilterInput creates an unfocused filter input.
func NewFilterInput(placeholder string) FilterInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 40
	return FilterInput{Model: ti}
}

// Active reports whether the filter is capturing keys.
func (f FilterInput) Active() bool {
	return f.active
}

// Focus starts capturing keys.
func (f FilterInput) Focus() (FilterInput, tea.Cmd) {
	f.active = true
	return f, f.Model.Focus()
}

// Blur stops capturing keys, keeping the current query.
func (f FilterInput) Blur() FilterInput {
	f.active = false
	f.Model.Blur()
	return f
}

// Clear blurs and empties the filter.
func (f FilterInput) Clear() FilterInput {
	f = f.Blur()
	f.Model.SetValue("")
	return f
}

// Update forwards messages to the underlying input while active.
func (f FilterInput) Update(msg tea.Msg) (FilterInput, tea.Cmd) {
	if !f.active {
		return f, nil
	}
	var cmd tea.Cmd
	f.Model, cmd = f.Model.Update(msg)
	return f, cmd
}

// Query returns the current filter text, trimmed and lowercased.
func (f FilterInput) Query() string {
	return strings.ToLower(strings.TrimSpace(f.Model.Value()))
}

// Match reports whether any of the fields contains the query. An empty
// query matches everything.
func (f FilterInput) Match(fields ...string) bool {
	q := f.Query()
	if q == "" {
		return true
	}
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), q) {
			return true
		}
	}
	return false
}

// View renders the filter line.
func (f FilterInput) View() string {
	if !f.active && f.Model.Value() == "" {
		return theme.Hint.Render("Press / to filter")
	}
	return theme.Body.Render("Filter: ") + f.Model.View()
}
