package headerbar

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/drafts/internal/ui/testutil"
)

func TestRender(t *testing.T) {
	tabs := []Tab{{Channel: "general"}, {Channel: "random", HasDraft: true}}

	out := testutil.StripANSI(Render(tabs, "general", 40))

	assert.Contains(t, out, "#general │ #random*")
	assert.True(t, strings.HasPrefix(out, " "), "content should be centered")
}

func TestRender_TooNarrow(t *testing.T) {
	assert.Empty(t, Render([]Tab{{Channel: "general"}}, "general", 10))
	assert.Empty(t, Render(nil, "", 80))
}

func TestRender_KeepsActiveVisible(t *testing.T) {
	tabs := []Tab{
		{Channel: "aaaaaaaaaa"},
		{Channel: "bbbbbbbbbb"},
		{Channel: "cccccccccc"},
		{Channel: "dddddddddd"},
	}

	out := testutil.StripANSI(Render(tabs, "dddddddddd", 30))

	assert.Contains(t, out, "#dddddddddd")
	assert.NotContains(t, out, "#aaaaaaaaaa")
	assert.True(t, strings.HasPrefix(strings.TrimSpace(out), "‹"))
}
