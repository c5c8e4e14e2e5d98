// Package overlay draws one rendered view on top of another.
package overlay

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Center places box in the middle of a width x height base view.
func Center(base, box string, width, height int) string {
	boxLines := strings.Split(box, "\n")
	boxW := 0
	for _, l := range boxLines {
		boxW = max(boxW, ansi.StringWidth(l))
	}
	x := max((width-boxW)/2, 0)
	y := max((height-len(boxLines))/2, 0)
	return Place(base, box, x, y, width)
}

// Place writes box over base with its top-left corner at column x, row y.
// Styled text on both sides is preserved. Rows of box that fall below the
// base are dropped.
func Place(base, box string, x, y, width int) string {
	baseLines := strings.Split(base, "\n")

	for i, line := range strings.Split(box, "\n") {
		row := y + i
		if row >= len(baseLines) {
			break
		}
		lineW := ansi.StringWidth(line)
		if lineW == 0 {
			continue
		}
		end := min(x+lineW, width)

		b := baseLines[row]
		if w := ansi.StringWidth(b); w < width {
			b += strings.Repeat(" ", width-w)
		}

		prefix := ansi.Cut(b, 0, x)
		// Cutting through a wide rune can drop it; keep columns aligned.
		if w := ansi.StringWidth(prefix); w < x {
			prefix += strings.Repeat(" ", x-w)
		}
		suffix := ""
		if end < width {
			suffix = ansi.Cut(b, end, width)
			if w := ansi.StringWidth(suffix); w < width-end {
				suffix = strings.Repeat(" ", width-end-w) + suffix
			}
		}
		baseLines[row] = prefix + ansi.Cut(line, 0, end-x) + suffix
	}

	return strings.Join(baseLines, "\n")
}
