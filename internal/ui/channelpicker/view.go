package channelpicker

import (
	"fmt"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/drafts/internal/ui/popup"
	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// popupChrome is the border, padding, title, query and footer lines.
const popupChrome = 9

// maxWidth caps the popup so it stays a popup on wide terminals.
const maxWidth = 60

// View implements ui.Component.
func (m *Model) View() string {
	if m.Width() == 0 || m.Height() == 0 {
		return ""
	}
	s := styles.T().S()
	width := min(m.Width(), maxWidth)
	inner := width - 4

	lines := []string{m.input.View(), ""}
	if len(m.matches) == 0 {
		lines = append(lines, s.Muted.Render("No matching channel"))
	}
	start, end := m.cursor.Window(len(m.matches), m.listHeight())
	for i := start; i < end; i++ {
		lines = append(lines, m.renderRow(i, inner))
	}

	d := popup.New()
	d.Title = "Switch channel"
	d.Content = strings.Join(lines, "\n")
	d.Footer = fmt.Sprintf("%d/%d · enter switch · esc cancel", len(m.matches), len(m.entries))
	d.Width = inner
	return d.Render(width)
}

func (m *Model) renderRow(i, width int) string {
	s := styles.T().S()
	mt := m.matches[i]
	e := m.entries[mt.index]
	selected := i == m.cursor.Pos()

	marker := "  "
	if e.HasDraft() {
		marker = s.Draft.Render("● ")
	}

	var name strings.Builder
	name.WriteString(s.Muted.Render("#"))
	for bi, r := range e.Channel {
		if slices.Contains(mt.matched, bi) {
			name.WriteString(s.Active.Render(string(r)))
		} else {
			name.WriteString(s.Base.Render(string(r)))
		}
	}

	var info string
	if !e.Edited.IsZero() {
		info = s.Subtle.Render("edited " + humanize.RelTime(e.Edited, m.now(), "ago", "from now"))
	}

	row := render.Row(marker+name.String(), info, width)
	if selected {
		row = s.Cursor.Render(render.TruncateStyled(row, width))
	}
	return render.TruncateStyled(row, width)
}
