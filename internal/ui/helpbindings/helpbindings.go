// Package helpbindings provides a scrollable popup listing key bindings.
package helpbindings

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/action"
	"github.com/llehouerou/drafts/internal/ui/popup"
	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// Compile-time check that Model implements ui.Component.
var _ ui.Component = (*Model)(nil)

// categoryOrder defines the display order of binding contexts.
var categoryOrder = []string{
	keymap.ContextGlobal,
	keymap.ContextComposer,
	keymap.ContextPicker,
}

var categoryLabels = map[string]string{
	keymap.ContextGlobal:   "Global",
	keymap.ContextComposer: "Composer",
	keymap.ContextPicker:   "Channel picker",
}

// Model holds the state for the help popup.
type Model struct {
	ui.Base
	lines        []string
	scrollOffset int
}

// New creates a help popup over the default bindings.
func New() Model {
	m := Model{}
	m.SetBindings(keymap.All)
	return m
}

// SetBindings sets the bindings to display, grouped by context.
func (m *Model) SetBindings(bindings []keymap.Binding) {
	m.lines = buildLines(bindings)
	m.scrollOffset = 0
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "f1", "esc", "enter":
		return m, action.Cmd(source, Closed{})
	case "down", "ctrl+n":
		m.scrollOffset = min(m.scrollOffset+1, m.maxScroll())
	case "up", "ctrl+p":
		m.scrollOffset = max(m.scrollOffset-1, 0)
	}
	return m, nil
}

// View implements ui.Component.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}

	end := min(m.scrollOffset+m.visibleHeight(), len(m.lines))
	visible := m.lines[m.scrollOffset:end]

	d := popup.New()
	d.Title = "Help"
	d.Content = strings.Join(visible, "\n")
	d.Footer = "esc close"
	if m.maxScroll() > 0 {
		d.Footer = "↑/↓ scroll · esc close"
	}
	return d.Render(m.Width())
}

func buildLines(bindings []keymap.Binding) []string {
	s := styles.T().S()

	keyWidth := 0
	for _, b := range bindings {
		keyWidth = max(keyWidth, runewidth.StringWidth(strings.Join(b.Keys, ", ")))
	}

	var lines []string
	for _, ctx := range categoryOrder {
		var rows []string
		for _, b := range bindings {
			if b.Context != ctx {
				continue
			}
			keys := render.Pad(strings.Join(b.Keys, ", "), keyWidth)
			rows = append(rows, s.Active.Render(keys)+"  "+s.Base.Render(b.Description))
		}
		if len(rows) == 0 {
			continue
		}
		if len(lines) > 0 {
			lines = append(lines, "")
		}
		lines = append(lines,
			s.Title.Render(categoryLabels[ctx]),
			s.Subtle.Render(render.Separator(keyWidth+15)))
		lines = append(lines, rows...)
	}
	return lines
}

func (m Model) visibleHeight() int {
	// title, footer, blank lines and border
	return max(m.Height()-8, 3)
}

func (m Model) maxScroll() int {
	return max(len(m.lines)-m.visibleHeight(), 0)
}
