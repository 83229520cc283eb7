package buffer

// InsertChar inserts a character at the cursor and advances the offset.
// An active selection is deleted first.
func (b *Buffer) InsertChar(ch rune) {
	b.ensureLine()
	if b.sel.IsActive() {
		b.deleteSelection()
	}

	runes := []rune(b.lines[b.cursorLine])
	out := make([]rune, 0, len(runes)+1)
	out = append(out, runes[:b.cursorOff]...)
	out = append(out, ch)
	out = append(out, runes[b.cursorOff:]...)
	b.lines[b.cursorLine] = string(out)
	b.cursorOff++
}

// DeleteLeft implements backspace. With an active selection it deletes
// the selection. At (0,0) it is a no-op. At offset 0 of a later line it
// merges the current line onto the previous one, leaving the cursor at
// the merge point.
func (b *Buffer) DeleteLeft() {
	if b.sel.IsActive() {
		b.deleteSelection()
		return
	}
	if b.cursorLine < 0 || (b.cursorLine == 0 && b.cursorOff == 0) {
		return
	}

	if b.cursorOff > 0 {
		runes := []rune(b.lines[b.cursorLine])
		b.lines[b.cursorLine] = string(runes[:b.cursorOff-1]) + string(runes[b.cursorOff:])
		b.cursorOff--
		return
	}

	prevLen := b.lineLen(b.cursorLine - 1)
	b.lines[b.cursorLine-1] += b.lines[b.cursorLine]
	b.lines = append(b.lines[:b.cursorLine], b.lines[b.cursorLine+1:]...)
	b.cursorLine--
	b.cursorOff = prevLen
}

// DeleteRight implements the delete key. With an active selection it
// deletes the selection. At end of line it appends the next line to the
// current one; the cursor does not move.
func (b *Buffer) DeleteRight() {
	if b.sel.IsActive() {
		b.deleteSelection()
		return
	}
	if b.cursorLine < 0 {
		return
	}

	runes := []rune(b.lines[b.cursorLine])
	if b.cursorOff < len(runes) {
		b.lines[b.cursorLine] = string(runes[:b.cursorOff]) + string(runes[b.cursorOff+1:])
		return
	}

	if b.cursorLine+1 < len(b.lines) {
		b.lines[b.cursorLine] += b.lines[b.cursorLine+1]
		b.lines = append(b.lines[:b.cursorLine+1], b.lines[b.cursorLine+2:]...)
	}
}

// SplitLine splits the current line at the cursor. The left part keeps
// the current line's slot, the right part becomes a new line inserted
// immediately after, and the cursor moves to offset 0 of the new line.
func (b *Buffer) SplitLine() {
	b.ensureLine()

	runes := []rune(b.lines[b.cursorLine])
	left, right := string(runes[:b.cursorOff]), string(runes[b.cursorOff:])

	b.lines[b.cursorLine] = left
	b.lines = append(b.lines, "")
	copy(b.lines[b.cursorLine+2:], b.lines[b.cursorLine+1:])
	b.lines[b.cursorLine+1] = right

	b.cursorLine++
	b.cursorOff = 0
}

// deleteSelection removes the selected span. For a multi-line span the
// first line keeps its prefix up to the first offset, gains the last
// line's suffix from the last offset, and lines first+1 through last are
// removed. The cursor moves to the first endpoint; the selection resets.
func (b *Buffer) deleteSelection() {
	first, last := b.sel.Ordered()

	if first.Line == last.Line {
		runes := []rune(b.lines[first.Line])
		b.lines[first.Line] = string(runes[:first.Offset]) + string(runes[last.Offset:])
	} else {
		firstRunes := []rune(b.lines[first.Line])
		lastRunes := []rune(b.lines[last.Line])
		b.lines[first.Line] = string(firstRunes[:first.Offset]) + string(lastRunes[last.Offset:])
		b.lines = append(b.lines[:first.Line+1], b.lines[last.Line+1:]...)
	}

	b.cursorLine = first.Line
	b.cursorOff = first.Offset
	b.sel.Reset()
}
