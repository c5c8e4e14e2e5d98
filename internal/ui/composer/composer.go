// Package composer provides the draft text box with undo/redo.
package composer

import (
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/edithistory"
	"github.com/llehouerou/drafts/internal/errmsg"
	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/action"
	"github.com/llehouerou/drafts/internal/ui/render"
)

// Compile-time check that Model implements ui.Component.
var _ ui.Component = (*Model)(nil)

// Model is the text box of one channel's draft. Its history is rebuilt from
// saved state every time a channel is loaded.
type Model struct {
	ui.Base
	keys          *keymap.Resolver
	channel       string
	message       string
	caret         int // rune offset
	history       *edithistory.History
	readClipboard func() (string, error)
}

// New creates an empty composer. cooldown is the number of keystrokes merged
// into one undo step.
func New(keys *keymap.Resolver, cooldown int) Model {
	return Model{
		keys:          keys,
		history:       edithistory.New(edithistory.InputData{}, cooldown),
		readClipboard: clipboard.ReadAll,
	}
}

// SetClipboardReader replaces the system clipboard, for tests and platforms
// without one.
func (m *Model) SetClipboardReader(read func() (string, error)) {
	m.readClipboard = read
}

// Load switches the composer to channel. When saved is valid the edit
// history is restored from it, otherwise the history restarts from current.
// The returned error only reports a rejected saved history; the composer is
// usable either way.
func (m *Model) Load(channel string, current edithistory.InputData, saved *edithistory.State) error {
	m.channel = channel
	current.CaretPosition = clampCaret(current.Message, current.CaretPosition)
	m.history.Reset(current)

	var err error
	if saved != nil {
		if err = m.history.Restore(*saved); err == nil {
			current = m.history.Current()
		}
	}
	m.apply(current)
	return err
}

// Channel returns the channel being edited.
func (m *Model) Channel() string { return m.channel }

// Value returns the current text.
func (m *Model) Value() string { return m.message }

// Caret returns the caret position as a rune offset.
func (m *Model) Caret() int { return m.caret }

// History exposes the edit history, read-only by convention.
func (m *Model) History() *edithistory.History { return m.history }

// Draft returns what should be persisted for the current channel.
func (m *Model) Draft() (edithistory.InputData, edithistory.State) {
	return edithistory.InputData{Message: m.message, CaretPosition: m.caret}, m.history.Save()
}

// Init implements ui.Component.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements ui.Component.
func (m *Model) Update(msg tea.Msg) (ui.Component, tea.Cmd) {
	switch msg := msg.(type) {
	case pasteMsg:
		// The user may have switched channel while the clipboard was read.
		if msg.channel != m.channel {
			return m, nil
		}
		return m, m.insert(msg.text, true)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Paste {
		return m.insert(string(msg.Runes), true)
	}

	switch m.keys.Resolve(keymap.ContextComposer, msg.String()) {
	case keymap.ActionUndo:
		return m.restoreEntry(m.history.Undo(false))
	case keymap.ActionRedo:
		return m.restoreEntry(m.history.Redo(false))
	case keymap.ActionSend:
		return m.send()
	case keymap.ActionNewline:
		return m.insert("\n", false)
	case keymap.ActionPaste:
		return m.paste()
	case keymap.ActionClear:
		return m.replace("")
	case keymap.ActionBackspace:
		return m.deleteTo(prevBoundary(m.message, m.caret))
	case keymap.ActionDelete:
		return m.deleteTo(nextBoundary(m.message, m.caret))
	case keymap.ActionDeleteWord:
		return m.deleteTo(wordLeft(m.message, m.caret))
	case keymap.ActionCaretLeft:
		return m.moveCaret(prevBoundary(m.message, m.caret))
	case keymap.ActionCaretRight:
		return m.moveCaret(nextBoundary(m.message, m.caret))
	case keymap.ActionCaretWordLeft:
		return m.moveCaret(wordLeft(m.message, m.caret))
	case keymap.ActionCaretWordRight:
		return m.moveCaret(wordRight(m.message, m.caret))
	case keymap.ActionCaretHome:
		return m.moveCaret(lineStart(m.message, m.caret))
	case keymap.ActionCaretEnd:
		return m.moveCaret(lineEnd(m.message, m.caret))
	}

	switch msg.Type {
	case tea.KeySpace:
		return m.insert(" ", false)
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		return m.insert(string(msg.Runes), false)
	}
	return nil
}

// insert adds text at the caret. Typed text is recorded softly so that
// keystrokes coalesce; pasted text always gets its own undo step.
func (m *Model) insert(text string, force bool) tea.Cmd {
	text = render.Sanitize(text)
	if text == "" {
		return nil
	}
	m.message, m.caret = insertAt(m.message, m.caret, text)
	return m.record(force)
}

// replace swaps the whole text, as one undo step.
func (m *Model) replace(text string) tea.Cmd {
	if text == m.message {
		return nil
	}
	m.message = text
	m.caret = len([]rune(text))
	return m.record(true)
}

// deleteTo removes the runes between the caret and pos.
func (m *Model) deleteTo(pos int) tea.Cmd {
	if pos == m.caret {
		return nil
	}
	from, to := min(pos, m.caret), max(pos, m.caret)
	m.message = deleteRange(m.message, from, to)
	m.caret = from
	return m.record(false)
}

func (m *Model) record(force bool) tea.Cmd {
	m.history.Record(m.current(), force)
	return m.changed()
}

// moveCaret updates the caret of the current history entry in place, so
// undo later restores the caret where the user left it.
func (m *Model) moveCaret(pos int) tea.Cmd {
	if pos == m.caret {
		return nil
	}
	m.caret = pos
	m.history.SetCurrent(m.current())
	return m.changed()
}

func (m *Model) restoreEntry(d edithistory.InputData) tea.Cmd {
	if d == m.current() {
		return nil
	}
	m.apply(d)
	return m.changed()
}

func (m *Model) apply(d edithistory.InputData) {
	m.message = d.Message
	m.caret = clampCaret(d.Message, d.CaretPosition)
}

func (m *Model) current() edithistory.InputData {
	return edithistory.InputData{Message: m.message, CaretPosition: m.caret}
}

func (m *Model) send() tea.Cmd {
	text := strings.TrimSpace(m.message)
	if text == "" {
		return nil
	}
	m.message = ""
	m.caret = 0
	m.history.Reset()
	return action.Cmd(source, Sent{Channel: m.channel, Text: text})
}

func (m *Model) paste() tea.Cmd {
	read := m.readClipboard
	channel := m.channel
	return func() tea.Msg {
		text, err := read()
		if err != nil {
			return action.Msg{Source: source, Action: Failed{Op: errmsg.OpClipboardGet, Err: err}}
		}
		return pasteMsg{channel: channel, text: text}
	}
}

func (m *Model) changed() tea.Cmd {
	return action.Cmd(source, Changed{Channel: m.channel})
}
