package render

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain text unchanged", input: "hello", want: "hello"},
		{name: "newlines kept", input: "a\nb", want: "a\nb"},
		{name: "crlf normalized", input: "a\r\nb", want: "a\nb"},
		{name: "lone cr becomes newline", input: "a\rb", want: "a\nb"},
		{name: "tab expanded", input: "a\tb", want: "a    b"},
		{name: "escape dropped", input: "a\x1b[31mb", want: "a[31mb"},
		{name: "nbsp replaced", input: "a\u00a0b", want: "a b"},
		{name: "invalid utf8 dropped", input: "a\xffb", want: "ab"},
		{name: "unicode kept", input: "héllo 日本 👋", want: "héllo 日本 👋"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.input))
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{name: "no truncation needed", input: "hello", maxWidth: 10, want: "hello"},
		{name: "exact fit", input: "hello", maxWidth: 5, want: "hello"},
		{name: "truncation with ellipsis", input: "hello world", maxWidth: 6, want: "hello…"},
		{name: "wide characters", input: "日本語テキスト", maxWidth: 5, want: "日本…"},
		{name: "zero width", input: "hello", maxWidth: 0, want: ""},
		{name: "empty string", input: "", maxWidth: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxWidth))
		})
	}
}

func TestTruncateStyled(t *testing.T) {
	styled := lipgloss.NewStyle().Bold(true).Render("hello world")

	got := TruncateStyled(styled, 6)

	assert.Equal(t, 6, lipgloss.Width(got))
	assert.Empty(t, TruncateStyled(styled, 0))
}

func TestOneLine(t *testing.T) {
	assert.Equal(t, "a ⏎ b", OneLine("a\nb"))
	assert.Equal(t, "ab", OneLine("ab"))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab   ", Pad("ab", 5))
	assert.Equal(t, "日本 ", Pad("日本", 5))
}

func TestRow(t *testing.T) {
	assert.Equal(t, "left    right", Row("left", "right", 13))
	assert.Equal(t, "left right", Row("left", "right", 3), "at least one space")
}

func TestSeparator(t *testing.T) {
	assert.Equal(t, "───", Separator(3))
	assert.Empty(t, Separator(-1))
}
