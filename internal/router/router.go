// Package router manages the stack of screens making up the TUI: the home
// menu at the bottom, pickers and sessions pushed on top.
package router

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is one full-content view. The app model owns the frame around it.
type Screen interface {
	// Init returns the command to run when the screen becomes active.
	Init() tea.Cmd

	// Update handles a message and returns the (possibly replaced) screen.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen into the given content area.
	View(width, height int) string

	// Title names the screen in the header.
	Title() string
}

// KeyHinter is implemented by screens that publish footer key hints.
type KeyHinter interface {
	KeyHints() []KeyHint
}

// EscOwner is implemented by screens that handle esc themselves, such as a
// running quiz that must confirm before abandoning the attempt.
type EscOwner interface {
	OwnsEsc() bool
}

// KeyHint is a single footer hint.
type KeyHint struct {
	Key  string
	Help string
}

// PushMsg asks the router to push a screen.
type PushMsg struct {
	Screen Screen
}

// PopMsg asks the router to pop the active screen.
type PopMsg struct{}

// Push returns a command that pushes s.
func Push(s Screen) tea.Cmd {
	return func() tea.Msg { return PushMsg{Screen: s} }
}

// Pop returns a command that pops the active screen.
func Pop() tea.Cmd {
	return func() tea.Msg { return PopMsg{} }
}

// Router is the screen stack.
type Router struct {
	stack []Screen
}

// New creates a Router whose bottom screen is root.
func New(root Screen) *Router {
	return &Router{stack: []Screen{root}}
}

// Active returns the top screen, or nil for an empty stack.
func (r *Router) Active() Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Depth returns the stack depth.
func (r *Router) Depth() int {
	return len(r.stack)
}

// Update routes navigation messages, forwarding everything else to the
// active screen.
func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		r.stack = append(r.stack, msg.Screen)
		return msg.Screen.Init()
	case PopMsg:
		if len(r.stack) > 1 {
			r.stack = r.stack[:len(r.stack)-1]
		}
		return nil
	}

	active := r.Active()
	if active == nil {
		return nil
	}
	updated, cmd := active.Update(msg)
	r.stack[len(r.stack)-1] = updated
	return cmd
}

// View renders the active screen.
func (r *Router) View(width, height int) string {
	if active := r.Active(); active != nil {
		return active.View(width, height)
	}
	return ""
}
