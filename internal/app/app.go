// Package app owns the root Bubble Tea model: the screen router, the
// window frame, and global key handling.
package app

import (
	"fmt"
	"log/slog"
	"math/rand/v2"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/kenta/kotoba/internal/content"
	"github.com/kenta/kotoba/internal/mistake"
	"github.com/kenta/kotoba/internal/progress"
	"github.com/kenta/kotoba/internal/router"
	"github.com/kenta/kotoba/internal/screens/home"
	"github.com/kenta/kotoba/internal/ui/layout"
)

// Options carries everything the TUI needs to run.
type Options struct {
	Content  *content.Store
	Progress *progress.Store
	Mistakes *mistake.Store
	Logger   *slog.Logger
	RNG      *rand.Rand
}

// Model is the root Bubble Tea model.
type Model struct {
	router   *router.Router
	mistakes *mistake.Store
	width    int
	height   int
}

func newModel(opts Options) Model {
	root := home.New(home.Deps{
		Content:  opts.Content,
		Progress: opts.Progress,
		Mistakes: opts.Mistakes,
		Logger:   opts.Logger,
		RNG:      opts.RNG,
	})
	return Model{
		router:   router.New(root),
		mistakes: opts.Mistakes,
	}
}

func (m Model) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			// Screens in the middle of something claim esc for
			// themselves; otherwise it walks back one screen.
			if owner, ok := m.router.Active().(router.EscOwner); ok && owner.OwnsEsc() {
				break
			}
			if m.router.Depth() > 1 {
				return m, router.Pop()
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}
	if layout.TooSmall(m.width, m.height) {
		v.SetContent(layout.RenderTooSmall(m.width, m.height))
		return v
	}

	active := m.router.Active()

	count, err := m.mistakes.Count()
	if err != nil {
		count = 0
	}
	header := layout.RenderHeader(active.Title(), count, m.width)

	hints := []router.KeyHint{}
	if hinter, ok := active.(router.KeyHinter); ok {
		hints = hinter.KeyHints()
	} else if m.router.Depth() > 1 {
		hints = []router.KeyHint{{Key: "Esc", Help: "Back"}}
	}
	hints = append(hints, router.KeyHint{Key: "Ctrl+C", Help: "Quit"})
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	frame := layout.RenderFrame(header, m.router.View(m.width, contentHeight), footer, m.width, m.height)
	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
