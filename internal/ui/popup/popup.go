// Package popup renders bordered modal boxes.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drafts/internal/ui/render"
	"github.com/llehouerou/drafts/internal/ui/styles"
)

// Style configures the popup appearance.
type Style struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	TitleStyle  lipgloss.Style
	FooterStyle lipgloss.Style
}

// DefaultStyle returns the default popup style.
func DefaultStyle() Style {
	t := styles.T()
	return Style{
		Border:      lipgloss.RoundedBorder(),
		BorderColor: t.BorderFocus,
		TitleStyle:  t.S().Title,
		FooterStyle: t.S().Subtle,
	}
}

// Dialog is a box with a title, content and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // inner width; 0 = fit content
	Style   Style
}

// New creates a new dialog with default style.
func New() *Dialog {
	return &Dialog{Style: DefaultStyle()}
}

// Render returns the bordered dialog, at most maxWidth columns wide.
func (d *Dialog) Render(maxWidth int) string {
	inner := d.Width
	if inner == 0 {
		inner = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	// border + horizontal padding
	inner = max(min(inner, maxWidth-4), 1)

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, d.Style.TitleStyle.Render(render.Truncate(d.Title, inner)), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > inner {
			line = render.TruncateStyled(line, inner)
		}
		lines = append(lines, line)
	}
	if d.Footer != "" {
		lines = append(lines, "", d.Style.FooterStyle.Render(render.Truncate(d.Footer, inner)))
	}

	return lipgloss.NewStyle().
		Border(d.Style.Border).
		BorderForeground(d.Style.BorderColor).
		Padding(0, 1).
		Width(inner + 2).
		Render(strings.Join(lines, "\n"))
}

func maxLineWidth(s string) int {
	maxW := 0
	for line := range strings.SplitSeq(s, "\n") {
		maxW = max(maxW, lipgloss.Width(line))
	}
	return maxW
}
