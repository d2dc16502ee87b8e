package latex

// Cursor is a position to look up with FindNodeAt. It is addressed by line and column, by offset, or both;
// the line and column are checked first and the offset is used when they do not fall into a node.
// Cursors are made with LineColumn or Offset, the zero Cursor is nowhere.
//
// By default both ends of a node are exclusive: a cursor touching the node boundary is outside of it.
type Cursor struct {
	line         int
	column       int
	offset       int
	includeStart bool
	includeEnd   bool

	byLineColumn bool
	byOffset     bool
}

// LineColumn makes a cursor at 1-based line and column.
func LineColumn(line, column int) Cursor {
	return Cursor{line: line, column: column, byLineColumn: true}
}

// Offset makes a cursor at 0-based character offset.
func Offset(offset int) Cursor {
	return Cursor{offset: offset, byOffset: true}
}

// WithOffset adds an offset to the cursor, it is used when line and column miss.
func (c Cursor) WithOffset(offset int) Cursor {
	c.offset = offset
	c.byOffset = true
	return c
}

// Inclusive sets whether the node start and end boundaries count as inside.
func (c Cursor) Inclusive(start, end bool) Cursor {
	c.includeStart = start
	c.includeEnd = end
	return c
}

// In tells if the cursor is inside the location. A missing location contains nothing.
func (c Cursor) In(loc *Location) bool {
	if loc == nil {
		return false
	}

	if c.byLineColumn && c.within(compareLineColumn(loc.Start, c.line, c.column), compareLineColumn(loc.End, c.line, c.column)) {
		return true
	}

	return c.byOffset && c.within(compareInt(loc.Start.Offset, c.offset), compareInt(loc.End.Offset, c.offset))
}

// within checks comparison results of the location start and end against the cursor (-1 before, 0 same, 1 after)
func (c Cursor) within(start, end int) bool {
	if start > 0 || (start == 0 && !c.includeStart) {
		return false
	}

	if end < 0 || (end == 0 && !c.includeEnd) {
		return false
	}

	return true
}

func compareLineColumn(p Point, line, column int) int {
	if p.Line != line {
		return compareInt(p.Line, line)
	}

	return compareInt(p.Column, column)
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
