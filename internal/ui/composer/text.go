package composer

import (
	"unicode"

	"github.com/rivo/uniseg"
)

// Caret positions are rune offsets into the message. Movement and deletion
// step over whole grapheme clusters so that combined emoji or accented
// letters are never split.

// boundaries returns the rune offsets at which grapheme clusters start,
// followed by the total rune count.
func boundaries(s string) []int {
	out := []int{0}
	pos := 0
	g := uniseg.NewGraphemes(s)
	for g.Next() {
		pos += len(g.Runes())
		out = append(out, pos)
	}
	return out
}

// prevBoundary returns the start of the cluster before caret.
func prevBoundary(s string, caret int) int {
	prev := 0
	for _, b := range boundaries(s) {
		if b >= caret {
			break
		}
		prev = b
	}
	return prev
}

// nextBoundary returns the end of the cluster after caret.
func nextBoundary(s string, caret int) int {
	bs := boundaries(s)
	for _, b := range bs {
		if b > caret {
			return b
		}
	}
	return bs[len(bs)-1]
}

// clampCaret keeps caret within [0, rune count] and on a cluster boundary.
func clampCaret(s string, caret int) int {
	if caret <= 0 {
		return 0
	}
	bs := boundaries(s)
	prev := 0
	for _, b := range bs {
		if b == caret {
			return b
		}
		if b > caret {
			return prev
		}
		prev = b
	}
	return bs[len(bs)-1]
}

// insertAt inserts text at caret and returns the new message and caret.
func insertAt(s string, caret int, text string) (string, int) {
	r := []rune(s)
	ins := []rune(text)
	out := make([]rune, 0, len(r)+len(ins))
	out = append(out, r[:caret]...)
	out = append(out, ins...)
	out = append(out, r[caret:]...)
	return string(out), caret + len(ins)
}

// deleteRange removes runes [from, to).
func deleteRange(s string, from, to int) string {
	r := []rune(s)
	return string(append(r[:from:from], r[to:]...))
}

// wordLeft returns the start of the word before caret, skipping spaces.
func wordLeft(s string, caret int) int {
	r := []rune(s)
	i := caret
	for i > 0 && unicode.IsSpace(r[i-1]) {
		i--
	}
	for i > 0 && !unicode.IsSpace(r[i-1]) {
		i--
	}
	return i
}

// wordRight returns the end of the word after caret, skipping spaces.
func wordRight(s string, caret int) int {
	r := []rune(s)
	i := caret
	for i < len(r) && unicode.IsSpace(r[i]) {
		i++
	}
	for i < len(r) && !unicode.IsSpace(r[i]) {
		i++
	}
	return i
}

// lineStart returns the offset of the first rune of caret's line.
func lineStart(s string, caret int) int {
	r := []rune(s)
	i := caret
	for i > 0 && r[i-1] != '\n' {
		i--
	}
	return i
}

// lineEnd returns the offset of the newline ending caret's line, or the end.
func lineEnd(s string, caret int) int {
	r := []rune(s)
	i := caret
	for i < len(r) && r[i] != '\n' {
		i++
	}
	return i
}
