// Package buffer implements a line-oriented text buffer with a cursor
// and a single anchor/extent selection.
//
// All line and offset arithmetic is in codepoints, not bytes or rendered
// width. A buffer is exclusively owned by one applet worker; nothing here
// is safe for concurrent use, and nothing needs to be.
package buffer

// Buffer is an ordered sequence of lines with a cursor position and an
// embedded selection. Once constructed through New or FromLines it always
// holds at least one line.
type Buffer struct {
	lines      []string
	cursorLine int // -1 until the first line exists
	cursorOff  int
	sel        Selection
}

// New creates a buffer with a single empty line and the cursor at (0,0).
func New() *Buffer {
	return &Buffer{lines: []string{""}}
}

// FromLines creates a buffer holding the given lines with the cursor at
// (0,0). An empty slice produces a single empty line.
func FromLines(lines []string) *Buffer {
	if len(lines) == 0 {
		return New()
	}
	b := &Buffer{lines: make([]string, len(lines))}
	copy(b.lines, lines)
	return b
}

// Lines returns a read-only snapshot of the current line contents.
func (b *Buffer) Lines() []string {
	out := make([]string, len(b.lines))
	copy(out, b.lines)
	return out
}

// LineCount returns the number of lines.
func (b *Buffer) LineCount() int {
	return len(b.lines)
}

// LineText returns the text of the given line, or "" if out of range.
func (b *Buffer) LineText(line int) string {
	if line < 0 || line >= len(b.lines) {
		return ""
	}
	return b.lines[line]
}

// Cursor returns the current cursor position.
func (b *Buffer) Cursor() Position {
	return Position{Line: b.cursorLine, Offset: b.cursorOff}
}

// SetCursor moves the cursor, clamping to valid lines and offsets.
// The selection is left untouched.
func (b *Buffer) SetCursor(line, offset int) {
	if len(b.lines) == 0 {
		return
	}
	if line < 0 {
		line = 0
	}
	if line >= len(b.lines) {
		line = len(b.lines) - 1
	}
	if offset < 0 {
		offset = 0
	}
	if max := b.lineLen(line); offset > max {
		offset = max
	}
	b.cursorLine = line
	b.cursorOff = offset
}

// Selection returns the buffer's embedded selection.
func (b *Buffer) Selection() *Selection {
	return &b.sel
}

// MoveLeft moves the cursor one codepoint left, wrapping to the end of
// the previous line at offset 0. When extend is true the selection grows
// from the pre-move position; otherwise it resets.
func (b *Buffer) MoveLeft(extend bool) {
	if b.cursorLine < 0 {
		return
	}
	prev := b.Cursor()
	if b.cursorOff > 0 {
		b.cursorOff--
	} else if b.cursorLine > 0 {
		b.cursorLine--
		b.cursorOff = b.lineLen(b.cursorLine)
	}
	b.updateSelection(extend, prev)
}

// MoveRight moves the cursor one codepoint right, wrapping to the start
// of the next line at end of line.
func (b *Buffer) MoveRight(extend bool) {
	if b.cursorLine < 0 {
		return
	}
	prev := b.Cursor()
	if b.cursorOff < b.lineLen(b.cursorLine) {
		b.cursorOff++
	} else if b.cursorLine+1 < len(b.lines) {
		b.cursorLine++
		b.cursorOff = 0
	}
	b.updateSelection(extend, prev)
}

// MoveUp moves the cursor one line up, clamping the offset to the target
// line's length. No-op on the first line.
func (b *Buffer) MoveUp(extend bool) {
	if b.cursorLine <= 0 {
		return
	}
	prev := b.Cursor()
	b.cursorLine--
	if max := b.lineLen(b.cursorLine); b.cursorOff > max {
		b.cursorOff = max
	}
	b.updateSelection(extend, prev)
}

// MoveDown moves the cursor one line down, clamping the offset to the
// target line's length. No-op on the last line.
func (b *Buffer) MoveDown(extend bool) {
	if b.cursorLine < 0 || b.cursorLine+1 >= len(b.lines) {
		return
	}
	prev := b.Cursor()
	b.cursorLine++
	if max := b.lineLen(b.cursorLine); b.cursorOff > max {
		b.cursorOff = max
	}
	b.updateSelection(extend, prev)
}

// MoveHome moves the cursor to offset 0 of the current line.
func (b *Buffer) MoveHome(extend bool) {
	if b.cursorLine < 0 {
		return
	}
	prev := b.Cursor()
	b.cursorOff = 0
	b.updateSelection(extend, prev)
}

// MoveEnd moves the cursor to the end of the current line.
func (b *Buffer) MoveEnd(extend bool) {
	if b.cursorLine < 0 {
		return
	}
	prev := b.Cursor()
	b.cursorOff = b.lineLen(b.cursorLine)
	b.updateSelection(extend, prev)
}

// updateSelection applies the extension rule after a cursor move: an
// extending move starts the selection at the pre-move position only when
// none is active, then moves the extent to the new cursor position. A
// non-extending move resets the selection.
func (b *Buffer) updateSelection(extend bool, prev Position) {
	if extend {
		if !b.sel.IsActive() {
			b.sel.SetAnchor(prev)
		}
		b.sel.UpdateExtent(b.Cursor())
		return
	}
	b.sel.Reset()
}

// lineLen returns the codepoint length of the given line.
func (b *Buffer) lineLen(line int) int {
	return len([]rune(b.lines[line]))
}

// ensureLine materializes a first empty line if the buffer has none.
func (b *Buffer) ensureLine() {
	if len(b.lines) == 0 {
		b.lines = append(b.lines, "")
	}
	if b.cursorLine < 0 {
		b.cursorLine = 0
		b.cursorOff = 0
	}
}
