// Package popupctl tracks the modal popups drawn over the main view and
// routes input to the top-most one.
package popupctl

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/overlay"
)

// Type identifies a popup.
type Type int

const (
	None Type = iota
	Picker
	Help
)

// Priority lists popup types from top-most to bottom-most.
var Priority = []Type{Help, Picker}

// Manager manages the modal popups.
type Manager struct {
	popups map[Type]ui.Component
	width  int
	height int
}

// New creates a Manager with no popup open.
func New() *Manager {
	return &Manager{popups: make(map[Type]ui.Component)}
}

// SetSize updates the screen dimensions and resizes open popups.
func (p *Manager) SetSize(width, height int) {
	p.width = width
	p.height = height
	for _, pop := range p.popups {
		pop.SetSize(width, height)
	}
}

// Show opens pop as type t, replacing any popup of the same type.
func (p *Manager) Show(t Type, pop ui.Component) tea.Cmd {
	pop.SetSize(p.width, p.height)
	p.popups[t] = pop
	return pop.Init()
}

// Hide closes the popup of type t.
func (p *Manager) Hide(t Type) {
	delete(p.popups, t)
}

// IsVisible returns true if the specified popup type is open.
func (p *Manager) IsVisible(t Type) bool {
	_, ok := p.popups[t]
	return ok
}

// Active returns the top-most open popup, or None.
func (p *Manager) Active() Type {
	for _, t := range Priority {
		if p.IsVisible(t) {
			return t
		}
	}
	return None
}

// Update sends msg to the active popup. It reports false when no popup is
// open so the caller can handle msg itself.
func (p *Manager) Update(msg tea.Msg) (bool, tea.Cmd) {
	t := p.Active()
	if t == None {
		return false, nil
	}
	pop, cmd := p.popups[t].Update(msg)
	p.popups[t] = pop
	return true, cmd
}

// Render draws the active popup centered over base.
func (p *Manager) Render(base string) string {
	t := p.Active()
	if t == None {
		return base
	}
	return overlay.Center(base, p.popups[t].View(), p.width, p.height)
}
