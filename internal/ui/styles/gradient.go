package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// ApplyBoldGradient renders bold text whose color moves from one color to
// another across its grapheme clusters.
func ApplyBoldGradient(text string, from, to lipgloss.Color) string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}

	switch len(clusters) {
	case 0:
		return ""
	case 1:
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	c1, ok1 := toColorful(from)
	c2, ok2 := toColorful(to)
	if !ok1 || !ok2 {
		return lipgloss.NewStyle().Bold(true).Foreground(from).Render(text)
	}

	var b strings.Builder
	for i, cluster := range clusters {
		t := float64(i) / float64(len(clusters)-1)
		color := lipgloss.Color(c1.BlendHcl(c2, t).Clamped().Hex())
		b.WriteString(lipgloss.NewStyle().Bold(true).Foreground(color).Render(cluster))
	}
	return b.String()
}

// toColorful parses a "#rrggbb" color. ANSI palette numbers are not blendable.
func toColorful(c lipgloss.Color) (colorful.Color, bool) {
	col, err := colorful.Hex(string(c))
	return col, err == nil
}
