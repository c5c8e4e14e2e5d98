// Package headerbar renders the channel tabs at the top of the screen.
package headerbar

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// Height is the fixed height of the header bar (single line).
const Height = 1

// Tab is one channel in the bar.
type Tab struct {
	Channel  string
	HasDraft bool
}

// Render returns the header bar for width columns. When the tabs do not fit,
// tabs before the active one are dropped first so it stays visible.
func Render(tabs []Tab, active string, width int) string {
	if width < 20 || len(tabs) == 0 {
		return ""
	}
	t := styles.T()
	s := t.S()
	separator := s.Subtle.Render(" │ ")

	parts := make([]string, 0, len(tabs))
	activeIdx := 0
	for i, tab := range tabs {
		name := "#" + tab.Channel
		var part string
		if tab.Channel == active {
			activeIdx = i
			part = styles.ApplyBoldGradient(name, t.Primary, t.Secondary)
		} else {
			part = s.Muted.Render(name)
		}
		if tab.HasDraft {
			part += s.Draft.Render("*")
		}
		parts = append(parts, part)
	}

	start := 0
	for start < activeIdx && lipgloss.Width(strings.Join(parts[start:], separator)) > width {
		start++
	}
	content := strings.Join(parts[start:], separator)
	if start > 0 {
		content = s.Subtle.Render("‹ ") + content
	}

	contentWidth := lipgloss.Width(content)
	if contentWidth > width {
		return render.TruncateStyled(content, width)
	}
	return strings.Repeat(" ", (width-contentWidth)/2) + content
}
