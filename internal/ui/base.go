// Package ui holds the contracts and helpers shared by UI components.
package ui

import tea "github.com/charmbracelet/bubbletea"

// Component is a self-contained piece of UI driven by Bubble Tea messages.
type Component interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Component, tea.Cmd)
	View() string
	SetSize(width, height int)
}

// Base provides common UI component functionality for focus and size management.
// Embed this in component models to get standard methods automatically.
//
// Example:
//
//	type Model struct {
//	    ui.Base
//	    message string
//	}
type Base struct {
	width, height int
	focused       bool
}

// SetFocused sets whether the component is focused.
func (b *Base) SetFocused(focused bool) {
	b.focused = focused
}

// IsFocused returns whether the component is focused.
func (b Base) IsFocused() bool {
	return b.focused
}

// SetSize sets the component dimensions.
func (b *Base) SetSize(width, height int) {
	b.width = width
	b.height = height
}

// Width returns the component width.
func (b Base) Width() int {
	return b.width
}

// Height returns the component height.
func (b Base) Height() int {
	return b.height
}

// Layout constants shared by the app and its components.
const (
	// BorderSize is the space consumed by a rounded border on each axis.
	BorderSize = 2

	// HeaderHeight is the channel header line.
	HeaderHeight = 1

	// StatusHeight is the status line under the composer.
	StatusHeight = 1

	// MinComposerHeight is the smallest composer box, border included.
	MinComposerHeight = 3
)
