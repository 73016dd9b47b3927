package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Overlay is a modal drawn over the dashboard. While any overlay is open it
// receives every key and the dashboard receives none.
type Overlay struct {
	View    View
	Dismiss string // key that closes the overlay without a message round-trip
}

// IsDismissKey reports whether key closes this overlay.
func (o Overlay) IsDismissKey(key string) bool {
	return o.Dismiss != "" && key == o.Dismiss
}

// OverlayStack holds open overlays; the last pushed is on top.
type OverlayStack struct {
	Stack []Overlay
}

// Push opens o above the current top.
func (s *OverlayStack) Push(o Overlay) {
	s.Stack = append(s.Stack, o)
}

// Pop closes the top overlay.
func (s *OverlayStack) Pop() (Overlay, bool) {
	top, ok := s.Peek()
	if ok {
		s.Stack = s.Stack[:len(s.Stack)-1]
	}
	return top, ok
}

// Peek returns the top overlay without removing it.
func (s *OverlayStack) Peek() (Overlay, bool) {
	if len(s.Stack) == 0 {
		return Overlay{}, false
	}
	return s.Stack[len(s.Stack)-1], true
}

// Len returns the number of open overlays.
func (s *OverlayStack) Len() int {
	return len(s.Stack)
}

// UpdateTop routes msg to the top overlay. A dismiss key pops it instead.
// The caller runs the returned cmd.
func (s *OverlayStack) UpdateTop(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.Stack) == 0 {
		return nil, false
	}
	top := &s.Stack[len(s.Stack)-1]
	if k, ok := msg.(tea.KeyMsg); ok && top.IsDismissKey(k.String()) {
		s.Pop()
		return nil, true
	}
	newView, cmd := top.View.Update(msg)
	top.View = newView
	return cmd, true
}

// Render centers the top overlay in a w x h screen, or returns "".
func (s *OverlayStack) Render(w, h int) string {
	top, ok := s.Peek()
	if !ok {
		return ""
	}
	return lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, top.View.View())
}
