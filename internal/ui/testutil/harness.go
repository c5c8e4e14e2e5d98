package testutil

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drafts/internal/ui"
)

// Harness wraps a component for testing, providing helpers to simulate
// user interactions and inspect state.
type Harness struct {
	c    ui.Component
	cmds []tea.Cmd
}

// NewHarness creates a test harness and captures the component's init command.
func NewHarness(c ui.Component) *Harness {
	h := &Harness{c: c}
	if cmd := c.Init(); cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return h
}

// Component returns the wrapped component for type assertion.
func (h *Harness) Component() ui.Component {
	return h.c
}

// View returns the component's rendered content.
func (h *Harness) View() string {
	return h.c.View()
}

// SendMsg sends any message to the component and returns the resulting command.
func (h *Harness) SendMsg(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	h.c, cmd = h.c.Update(msg)
	if cmd != nil {
		h.cmds = append(h.cmds, cmd)
	}
	return cmd
}

// Type sends each rune of s as a separate key press.
func (h *Harness) Type(s string) {
	for _, r := range s {
		if r == ' ' {
			h.SendMsg(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
			continue
		}
		h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

// SendKey simulates typing key as one key press.
func (h *Harness) SendKey(key string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)})
}

// SendAltKey simulates alt+key.
func (h *Harness) SendAltKey(key tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: key, Alt: true})
}

// SendSpecialKey sends a special key (enter, escape, ctrl+z, etc.).
func (h *Harness) SendSpecialKey(keyType tea.KeyType) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: keyType})
}

// Paste simulates a bracketed paste of s.
func (h *Harness) Paste(s string) tea.Cmd {
	return h.SendMsg(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s), Paste: true})
}

// SendEnter sends the enter key.
func (h *Harness) SendEnter() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEnter)
}

// SendEscape sends the escape key.
func (h *Harness) SendEscape() tea.Cmd {
	return h.SendSpecialKey(tea.KeyEscape)
}

// Commands returns all commands collected since creation or last ClearCommands.
func (h *Harness) Commands() []tea.Cmd {
	return h.cmds
}

// LastCommand returns the most recent command, or nil if none.
func (h *Harness) LastCommand() tea.Cmd {
	if len(h.cmds) == 0 {
		return nil
	}
	return h.cmds[len(h.cmds)-1]
}

// ClearCommands clears the collected commands.
func (h *Harness) ClearCommands() {
	h.cmds = nil
}

// ExecuteCmd runs a command and returns the resulting message.
// Batched commands are flattened and the first non-nil message returned.
func ExecuteCmd(cmd tea.Cmd) tea.Msg {
	msgs := ExecuteAll(cmd)
	if len(msgs) == 0 {
		return nil
	}
	return msgs[0]
}

// ExecuteAll runs a command, expanding batches, and returns every message.
func ExecuteAll(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, ExecuteAll(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

// ExecuteAndSend runs a command and feeds its messages back to the component.
func (h *Harness) ExecuteAndSend(cmd tea.Cmd) []tea.Msg {
	msgs := ExecuteAll(cmd)
	for _, m := range msgs {
		h.SendMsg(m)
	}
	return msgs
}

// AssertViewContains returns an error message if view doesn't contain substr.
func (h *Harness) AssertViewContains(substr string) string {
	return AssertContains(h.View(), substr)
}

// AssertViewNotContains returns an error message if view contains substr.
func (h *Harness) AssertViewNotContains(substr string) string {
	return AssertNotContains(h.View(), substr)
}
