// Package levels is the JLPT level picker. Both the vocabulary quiz and
// the vocabulary browser funnel through it; the caller decides what
// picking a level does.
package levels

import (
	"fmt"
	"log/slog"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/progress"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/ui/components"
	"github.com/kenta/kotoba/internal/ui/theme"
)

// levelStat is one row of the picker: a level with its mastery numbers.
type levelStat struct {
	level    content.Level
	mastered int
	total    int
}

// Screen lists the five JLPT levels with mastery progress.
type Screen struct {
	title  string
	menu   components.Menu
	load   func() tea.Msg
	stats  []levelStat
	loaded bool
}

var _ router.Screen = (*Screen)(nil)
var _ router.KeyHinter = (*Screen)(nil)

// statsReadyMsg carries the per-level mastery numbers.
type statsReadyMsg struct {
	stats []levelStat
}

// New creates a level picker titled title; onPick produces the command run
// when a level is chosen.
func New(title string, contentStore *content.Store, progressStore *progress.Store,
	logger *slog.Logger, onPick func(content.Level) tea.Cmd) *Screen {

	items := make([]components.MenuItem, 0, len(content.Levels()))
	for _, lvl := range content.Levels() {
		lvl := lvl
		items = append(items, components.MenuItem{
			Label:  lvl.DisplayName(),
			Action: func() tea.Cmd { return onPick(lvl) },
		})
	}

	load := func() tea.Msg {
		snap, err := progressStore.Load()
		if err != nil {
			logger.Error("loading progress", "err", err)
			snap = progress.Snapshot{}
		}

		stats := make([]levelStat, 0, len(content.Levels()))
		for _, lvl := range content.Levels() {
			entries, err := contentStore.Vocabulary(lvl)
			if err != nil {
				logger.Warn("loading vocabulary", "level", lvl, "err", err)
			}
			stats = append(stats, levelStat{
				level:    lvl,
				mastered: len(snap[lvl]),
				total:    len(entries),
			})
		}
		return statsReadyMsg{stats: stats}
	}

	return &Screen{title: title, menu: components.NewMenu(items), load: load}
}

func (s *Screen) Init() tea.Cmd {
	return s.load
}

func (s *Screen) Title() string {
	return s.title
}

func (s *Screen) KeyHints() []router.KeyHint {
	return []router.KeyHint{
		{Key: "1-5", Help: "Pick level"},
		{Key: "↑/↓ Enter", Help: "Select"},
		{Key: "Esc", Help: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (router.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsReadyMsg:
		s.stats = msg.stats
		s.loaded = true
		return s, nil
	case tea.KeyMsg:
		var cmd tea.Cmd
		s.menu, cmd = s.menu.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	var b strings.Builder
	b.WriteString("\n  " + theme.Title.Render(s.title) + "\n\n")

	for i, item := range s.menu.Items {
		line := fmt.Sprintf("%d. %s", i+1, item.Label)
		if i == s.menu.Selected {
			line = theme.Prompt.Render("> " + line)
		} else {
			line = theme.Body.Render("  " + line)
		}
		b.WriteString("  " + line)

		if s.loaded && i < len(s.stats) {
			stat := s.stats[i]
			bar := components.ProgressBar{Done: stat.mastered, Total: stat.total, Width: 20}
			b.WriteString("   " + bar.View())
		}
		b.WriteString("\n")
	}

	if !s.loaded {
		b.WriteString("\n  " + theme.Hint.Render("Loading progress...") + "\n")
	}
	return b.String()
}
