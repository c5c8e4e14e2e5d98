package composer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/drafts/internal/ui"
	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// previewWidth caps the undo preview in the footer.
const previewWidth = 24

// View implements ui.Component.
func (m *Model) View() string {
	width, height := m.Width(), m.Height()
	if width < ui.BorderSize+1 || height < ui.MinComposerHeight+ui.StatusHeight {
		return ""
	}
	innerW := width - ui.BorderSize
	innerH := height - ui.StatusHeight - ui.BorderSize

	lines := visibleLines(m.wrappedLines(innerW), m.caretLine(innerW), innerH)
	box := styles.PanelStyle(m.IsFocused()).
		Width(innerW).
		Height(innerH).
		Render(strings.Join(lines, "\n"))

	return box + "\n" + m.renderFooter(width)
}

// wrappedLines renders the text with the caret, soft-wrapped to width.
func (m *Model) wrappedLines(width int) []string {
	s := styles.T().S()
	caretStyle := s.Caret

	if m.message == "" {
		placeholder := s.Subtle.Render(render.Truncate("Message #"+m.channel, width-1))
		return []string{caretStyle.Render(" ") + placeholder}
	}

	r := []rune(m.message)
	end := nextBoundary(m.message, m.caret)
	under := string(r[m.caret:end])
	switch under {
	case "", "\n":
		// Caret at a line end is drawn as a highlighted space.
		under = " " + under
	}
	text := string(r[:m.caret]) + caretStyle.Render(under) + string(r[end:])
	wrapped := lipgloss.NewStyle().Width(width).Render(text)
	return strings.Split(wrapped, "\n")
}

// caretLine estimates the wrapped line holding the caret by wrapping the
// text before it the same way.
func (m *Model) caretLine(width int) int {
	before := string([]rune(m.message)[:m.caret])
	if before == "" {
		return 0
	}
	wrapped := lipgloss.NewStyle().Width(width).Render(before + "_")
	return strings.Count(wrapped, "\n")
}

// visibleLines returns at most height lines, scrolled so caretLine shows.
func visibleLines(lines []string, caretLine, height int) []string {
	if len(lines) <= height {
		return lines
	}
	caretLine = min(caretLine, len(lines)-1)
	start := max(caretLine-height+1, 0)
	return lines[start : start+height]
}

func (m *Model) renderFooter(width int) string {
	s := styles.T().S()

	var left string
	if m.history.CanUndo() {
		prev := m.history.Undo(true)
		left = "undo → " + quote(prev.Message)
	} else {
		left = "nothing to undo"
	}

	right := fmt.Sprintf("%d/%d", m.history.Position()+1, m.history.Len())
	if m.history.CanRedo() {
		right = "redo available · " + right
	}

	gap := width - runewidth.StringWidth(right) - 1
	left = render.Truncate(left, max(gap, 0))
	return render.Row(s.Muted.Render(left), s.Subtle.Render(right), width)
}

// quote renders a one-line preview of a draft.
func quote(msg string) string {
	if msg == "" {
		return "(empty)"
	}
	return `"` + render.Truncate(render.OneLine(msg), previewWidth) + `"`
}
