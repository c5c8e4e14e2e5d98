// Package channelpicker provides the popup used to jump to a channel.
package channelpicker

import (
	"strings"
	"time"

	inputcursor "github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sahilm/fuzzy"

	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/action"
	"github.com/llehouerou/drafts/internal/ui/cursor"
)

// Compile-time check that Model implements ui.Component.
var _ ui.Component = (*Model)(nil)

// Entry is one channel row.
type Entry struct {
	Channel string
	Draft   string    // unsent text, empty when none
	Edited  time.Time // zero when the channel has no saved draft
}

// HasDraft reports whether the channel has unsent text.
func (e Entry) HasDraft() bool {
	return strings.TrimSpace(e.Draft) != ""
}

// match is an entry that passed the filter.
type match struct {
	index   int   // into entries
	matched []int // byte offsets of matched characters in the channel name
}

// Model is the channel picker popup.
type Model struct {
	ui.Base
	keys    *keymap.Resolver
	entries []Entry
	input   textinput.Model
	matches []match
	cursor  cursor.Cursor
	now     func() time.Time
}

// New creates an empty picker.
func New(keys *keymap.Resolver) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "channel name"
	ti.CharLimit = 80
	ti.Cursor.SetMode(inputcursor.CursorStatic)

	return Model{
		keys:   keys,
		input:  ti,
		cursor: cursor.New(1),
		now:    time.Now,
	}
}

// Open fills the picker and selects active.
func (m *Model) Open(entries []Entry, active string) {
	m.entries = entries
	m.input.Reset()
	m.input.Focus()
	m.filter()
	for i, mt := range m.matches {
		if entries[mt.index].Channel == active {
			m.cursor.Jump(i, len(m.matches), m.listHeight())
			break
		}
	}
}

// Query returns the current filter text.
func (m *Model) Query() string { return m.input.Value() }

// Selected returns the highlighted channel, or "" when nothing matches.
func (m *Model) Selected() string {
	if len(m.matches) == 0 {
		return ""
	}
	return m.entries[m.matches[m.cursor.Pos()].index].Channel
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// SetSize implements ui.Component.
func (m *Model) SetSize(width, height int) {
	m.Base.SetSize(width, height)
	m.input.Width = max(min(width, maxWidth)-7, 1)
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch m.keys.Resolve(keymap.ContextPicker, keyMsg.String()) {
	case keymap.ActionCancel:
		return m, action.Cmd(source, Canceled{})
	case keymap.ActionConfirm:
		channel := m.Selected()
		if channel == "" {
			return m, nil
		}
		return m, action.Cmd(source, Selected{Channel: channel})
	case keymap.ActionMoveUp:
		m.cursor.Move(-1, len(m.matches), m.listHeight())
		return m, nil
	case keymap.ActionMoveDown:
		m.cursor.Move(1, len(m.matches), m.listHeight())
		return m, nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(keyMsg)
	if m.input.Value() != before {
		m.filter()
	}
	return m, cmd
}

// filter recomputes matches for the query, best match first, and moves the
// selection to the top.
func (m *Model) filter() {
	m.matches = m.matches[:0]
	m.cursor.Reset()

	query := strings.TrimPrefix(strings.TrimSpace(m.input.Value()), "#")
	if query == "" {
		for i := range m.entries {
			m.matches = append(m.matches, match{index: i})
		}
		return
	}

	names := make([]string, len(m.entries))
	for i, e := range m.entries {
		names[i] = e.Channel
	}
	for _, fm := range fuzzy.Find(query, names) {
		m.matches = append(m.matches, match{index: fm.Index, matched: fm.MatchedIndexes})
	}
}

// listHeight is the number of rows that fit between the query and footer.
func (m *Model) listHeight() int {
	return max(m.Height()-popupChrome, 3)
}
