// Package cursor tracks the selected row of a list and the window of rows
// that fits on screen. The list length and window height are passed to each
// call since both change while filtering.
package cursor

// Cursor is a selected row plus the first visible row.
type Cursor struct {
	pos    int
	offset int
	margin int // rows kept visible above and below the selection
}

// New creates a cursor at the first row.
func New(margin int) Cursor {
	return Cursor{margin: max(margin, 0)}
}

// Pos returns the selected row.
func (c Cursor) Pos() int { return c.pos }

// Offset returns the first visible row.
func (c Cursor) Offset() int { return c.offset }

// Move selects the row delta rows away, clamped to the list.
func (c *Cursor) Move(delta, n, height int) {
	c.Jump(c.pos+delta, n, height)
}

// Jump selects row pos, clamped to the list.
func (c *Cursor) Jump(pos, n, height int) {
	if n == 0 {
		c.Reset()
		return
	}
	c.pos = min(max(pos, 0), n-1)
	c.follow(n, height)
}

// Reset selects the first row.
func (c *Cursor) Reset() {
	c.pos = 0
	c.offset = 0
}

// Window returns the visible rows as [start, end).
func (c Cursor) Window(n, height int) (start, end int) {
	if n == 0 || height <= 0 {
		return 0, 0
	}
	return c.offset, min(c.offset+height, n)
}

// follow scrolls so the selection stays margin rows away from either edge.
func (c *Cursor) follow(n, height int) {
	if height <= 0 {
		return
	}
	margin := min(c.margin, (height-1)/2)
	if c.pos < c.offset+margin {
		c.offset = c.pos - margin
	}
	if c.pos >= c.offset+height-margin {
		c.offset = c.pos - height + margin + 1
	}
	c.offset = min(max(c.offset, 0), max(n-height, 0))
}
