// Package browse is the read-only content browser: vocabulary tables per
// JLPT level and the full character list, with scrolling and a substring
// filter.
package browse

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/progress"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/ui/components"
	"github.com/kenta/kotoba/internal/ui/layout"
	"github.com/kenta/kotoba/internal/ui/theme"
)

// row is one displayable line of the browser.
type row struct {
	cells    [3]string
	mastered bool
}

// Screen scrolls through a loaded content table.
type Screen struct {
	title   string
	headers [3]string
	load    func() tea.Msg

	rows   []row
	filter components.FilterInput
	offset int
	loaded bool
	empty  string
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)
var _ router.EscOwner = (*Screen)(nil)

// rowsReadyMsg carries the loaded table, or the notice shown instead.
type rowsReadyMsg struct {
	rows  []row
	empty string
}

// NewVocabulary creates a browser over one level's vocabulary. Mastered
// words are marked using the progress snapshot.
func NewVocabulary(level content.Level, contentStore *content.Store,
	progressStore *progress.Store, logger *slog.Logger) *Screen {

	s := &Screen{
		title:   "Vocabulary " + string(level),
		headers: [3]string{"Kanji", "Kana", "Meaning"},
		filter:  components.NewFilterInput("kanji, kana or meaning"),
	}
	s.load = func() tea.Msg {
		entries, err := contentStore.Vocabulary(level)
		if err != nil {
			logger.Error("loading vocabulary", "level", level, "err", err)
			return rowsReadyMsg{empty: "Could not load vocabulary data."}
		}
		if len(entries) == 0 {
			return rowsReadyMsg{empty: fmt.Sprintf("No vocabulary found for %s yet.", level.DisplayName())}
		}

		snap, err := progressStore.Load()
		if err != nil {
			logger.Warn("loading progress", "err", err)
			snap = progress.Snapshot{}
		}
		mastered := snap[level]

		rows := make([]row, len(entries))
		for i, e := range entries {
			rows[i] = row{
				cells:    [3]string{e.Kanji, e.Kana, e.Meaning},
				mastered: mastered[e.Kanji],
			}
		}
		return rowsReadyMsg{rows: rows}
	}
	return s
}

// NewCharacters creates a browser over the character list.
func NewCharacters(contentStore *content.Store, logger *slog.Logger) *Screen {
	s := &Screen{
		title:   "Characters",
		headers: [3]string{"Character", "Reading", ""},
		filter:  components.NewFilterInput("character or reading"),
	}
	s.load = func() tea.Msg {
		entries, err := contentStore.Characters()
		if err != nil {
			logger.Error("loading characters", "err", err)
			return rowsReadyMsg{empty: "Could not load character data."}
		}
		if len(entries) == 0 {
			return rowsReadyMsg{empty: "No characters found yet."}
		}

		rows := make([]row, len(entries))
		for i, e := range entries {
			rows[i] = row{cells: [3]string{e.Character, e.Reading, ""}}
		}
		return rowsReadyMsg{rows: rows}
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	return s.load
}

func (s *Screen) Title() string {
	return s.title
}

// OwnsEsc claims esc while the filter is active so it clears the filter
// instead of leaving the screen.
func (s *Screen) OwnsEsc() bool {
	return s.filter.Active() || s.filter.Query() != ""
}

func (s *Screen) KeyHints() []router.KeyHint {
	if s.filter.Active() {
		return []router.KeyHint{
			{Key: "Enter", Help: "Apply filter"},
			{Key: "Esc", Help: "Clear filter"},
		}
	}
	return []router.KeyHint{
		{Key: "↑/↓", Help: "Scroll"},
		{Key: "/", Help: "Filter"},
		{Key: "Esc", Help: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case rowsReadyMsg:
		s.rows = msg.rows
		s.empty = msg.empty
		s.loaded = true
		return s, nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *Screen) handleKey(msg tea.KeyMsg) (router.Screen, tea.Cmd) {
	if !s.loaded || s.empty != "" {
		return s, nil
	}

	if s.filter.Active() {
		switch msg.String() {
		case "enter":
			s.filter = s.filter.Blur()
			s.offset = 0
			return s, nil
		case "esc":
			s.filter = s.filter.Clear()
			s.offset = 0
			return s, nil
		}
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Update(msg)
		s.offset = 0
		return s, cmd
	}

	switch msg.String() {
	case "/":
		var cmd tea.Cmd
		s.filter, cmd = s.filter.Focus()
		return s, cmd
	case "esc":
		if s.filter.Query() != "" {
			s.filter = s.filter.Clear()
			s.offset = 0
			return s, nil
		}
	case "up", "k":
		if s.offset > 0 {
			s.offset--
		}
	case "down", "j":
		s.offset++
	case "pgup":
		s.offset -= 10
		if s.offset < 0 {
			s.offset = 0
		}
	case "pgdown":
		s.offset += 10
	case "home", "g":
		s.offset = 0
	}
	return s, nil
}

// visible returns the rows matching the current filter.
func (s *Screen) visible() []row {
	if s.filter.Query() == "" {
		return s.rows
	}
	out := make([]row, 0, len(s.rows))
	for _, r := range s.rows {
		if s.filter.Match(r.cells[0], r.cells[1], r.cells[2]) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Screen) View(width, height int) string {
	if !s.loaded {
		return layout.Center(theme.Hint.Render("Loading..."), width, height)
	}
	if s.empty != "" {
		return layout.Center(theme.Hint.Render(s.empty), width, height)
	}

	rows := s.visible()

	// Header, filter line, table header and footer margin all eat height.
	pageSize := height - 7
	if pageSize < 3 {
		pageSize = 3
	}
	maxOffset := len(rows) - pageSize
	if maxOffset < 0 {
		maxOffset = 0
	}
	if s.offset > maxOffset {
		s.offset = maxOffset
	}

	var b strings.Builder
	b.WriteString("  " + s.filter.View() + "\n\n")
	b.WriteString("  " + theme.Subtitle.Render(s.headerLine()) + "\n")

	end := s.offset + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	for _, r := range rows[s.offset:end] {
		line := fmt.Sprintf("%-10s %-14s %s", r.cells[0], r.cells[1], r.cells[2])
		if r.mastered {
			b.WriteString("  " + theme.Good.Render("✓ "+line) + "\n")
		} else {
			b.WriteString("    " + theme.Body.Render(line) + "\n")
		}
	}

	if len(rows) == 0 {
		b.WriteString("  " + theme.Hint.Render("Nothing matches your filter.") + "\n")
	} else {
		pos := fmt.Sprintf("%d-%d of %d", s.offset+1, end, len(rows))
		b.WriteString("\n  " + lipgloss.NewStyle().Foreground(theme.TextDim).Render(pos) + "\n")
	}
	return b.String()
}

func (s *Screen) headerLine() string {
	if s.headers[2] == "" {
		return fmt.Sprintf("  %-10s %s", s.headers[0], s.headers[1])
	}
	return fmt.Sprintf("  %-10s %-14s %s", s.headers[0], s.headers[1], s.headers[2])
}
