// Package render provides text rendering utilities for TUI components.
package render

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"
)

// Sanitize prepares externally supplied text (pastes, stored drafts) for
// the composer. Line endings become "\n", tabs become spaces, other control
// characters and invalid UTF-8 are dropped.
func Sanitize(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	if !needsSanitize(s) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		i += size
		switch {
		case r == utf8.RuneError && size <= 1: // invalid byte
		case r == '\n':
			b.WriteRune(r)
		case r == '\t':
			b.WriteString("    ")
		case r == '\r':
			b.WriteByte('\n')
		case r == '\u00a0':
			b.WriteByte(' ')
		case unicode.IsControl(r): // dropped
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func needsSanitize(s string) bool {
	for _, r := range s {
		if r == utf8.RuneError || r == '\u00a0' || (r != '\n' && unicode.IsControl(r)) {
			return true
		}
	}
	return false
}

// Truncate shortens plain text to maxWidth columns, ending with "…" when cut.
// Wide characters (CJK, emoji) count as two columns.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "…")
}

// TruncateStyled is Truncate for text that already carries ANSI styling.
func TruncateStyled(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return ansi.Truncate(s, maxWidth, "…")
}

// OneLine collapses newlines so multi-line text fits a single row.
func OneLine(s string) string {
	return strings.ReplaceAll(s, "\n", " ⏎ ")
}

// Pad fills plain text with spaces to reach width.
func Pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// Row creates a row with left and right aligned content separated by spaces.
// The total width of the output will be exactly width characters unless the
// two sides do not fit.
func Row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// Separator creates a horizontal separator line of the specified width.
func Separator(width int) string {
	return strings.Repeat("─", max(width, 0))
}
