package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/drafts/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	d := New()
	d.Title = "Title"
	d.Content = "first\nsecond"
	d.Footer = "footer"

	out := testutil.StripANSI(d.Render(80))
	lines := strings.Split(out, "\n")

	assert.Contains(t, lines[1], "Title")
	assert.Contains(t, out, "first")
	assert.Contains(t, out, "second")
	assert.Contains(t, lines[len(lines)-2], "footer")
	assert.Equal(t, 8, len(lines))
}

func TestRender_FitsMaxWidth(t *testing.T) {
	d := New()
	d.Content = strings.Repeat("x", 100)

	out := d.Render(30)

	for line := range strings.SplitSeq(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 30)
	}
	assert.Contains(t, testutil.StripANSI(out), "…")
}

func TestRender_FixedWidth(t *testing.T) {
	d := New()
	d.Content = "hi"
	d.Width = 20

	out := d.Render(80)

	assert.Equal(t, 24, lipgloss.Width(strings.Split(out, "\n")[0]))
}
