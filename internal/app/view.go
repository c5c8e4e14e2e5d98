package app

import (
	"strings"

	"github.com/llehouerou/drafts/internal/keymap"
	"github.com/llehouerou/drafts/internal/state"
	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/headerbar"
	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// composerRows is the preferred composer height, border and footer included.
const composerRows = 7

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}

	header := headerbar.Render(m.tabs(), m.Active, m.Width)
	transcript := m.renderTranscript(m.transcriptHeight())
	base := strings.Join([]string{header, transcript, m.Composer.View(), m.renderStatus()}, "\n")

	return m.Popups.Render(base)
}

func (m Model) composerHeight() int {
	minimum := ui.MinComposerHeight + ui.StatusHeight
	return max(min(composerRows, m.Height-headerbar.Height-ui.StatusHeight-1), minimum)
}

func (m Model) transcriptHeight() int {
	return max(m.Height-headerbar.Height-m.composerHeight()-ui.StatusHeight, 0)
}

// renderTranscript draws the newest messages, bottom-aligned, in exactly
// height lines.
func (m Model) renderTranscript(height int) string {
	if height == 0 {
		return ""
	}
	s := styles.T().S()

	var lines []string
	if len(m.Transcript) == 0 {
		lines = append(lines, s.Subtle.Render(render.Truncate("No messages in #"+m.Active+" yet", m.Width)))
	}
	for _, msg := range m.Transcript {
		lines = append(lines, renderMessage(msg, m.Width)...)
	}

	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	pad := make([]string, height-len(lines), height)
	return strings.Join(append(pad, lines...), "\n")
}

// renderMessage renders one sent message: a time and author prefix on the
// first line, continuation lines indented under the body.
func renderMessage(msg state.Message, width int) []string {
	s := styles.T().S()
	prefix := msg.SentAt.Format("15:04") + " "
	author := "you: "
	indent := strings.Repeat(" ", len(prefix)+len(author))

	var out []string
	for i, line := range strings.Split(msg.Body, "\n") {
		if i == 0 {
			body := render.Truncate(line, width-len(indent))
			out = append(out, s.Subtle.Render(prefix)+s.Author.Render(author)+s.Base.Render(body))
			continue
		}
		out = append(out, indent+s.Base.Render(render.Truncate(line, width-len(indent))))
	}
	return out
}

func (m Model) renderStatus() string {
	s := styles.T().S()
	if m.ErrorMsg != "" {
		return s.Error.Render(render.Truncate(m.ErrorMsg, m.Width))
	}

	hints := []string{
		hint(m.Keys, keymap.ActionSend, "send"),
		hint(m.Keys, keymap.ActionUndo, "undo"),
		hint(m.Keys, keymap.ActionPickChannel, "channels"),
		hint(m.Keys, keymap.ActionToggleHelp, "help"),
		hint(m.Keys, keymap.ActionQuit, "quit"),
	}
	return s.Muted.Render(render.Truncate(strings.Join(hints, " · "), m.Width))
}

// hint renders the first key bound to a as "key label".
func hint(keys *keymap.Resolver, a keymap.Action, label string) string {
	bound := keys.KeysFor(a)
	if len(bound) == 0 {
		return label
	}
	return bound[0] + " " + label
}
