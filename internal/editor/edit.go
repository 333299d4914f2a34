package editor

// InsertChar inserts one byte at the cursor, creating a row first
// when the cursor sits on the past-end tilde line.
func (e *Editor) InsertChar(c byte) {
	if e.cy == len(e.rows) {
		e.insertRow(len(e.rows), nil)
	}
	e.rowInsertChar(e.rows[e.cy], e.cx, c)
	e.cx++
}

// InsertNewline splits the current row at the cursor, or inserts an
// empty row above when the cursor is at column 0.
func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.insertRow(e.cy, nil)
	} else {
		row := e.rows[e.cy]
		e.insertRow(e.cy+1, row.chars[e.cx:])
		// insertRow may have reallocated the slice backing e.rows but
		// the *Row itself is stable.
		row.chars = row.chars[:e.cx]
		e.updateRow(row)
	}
	e.cy++
	e.cx = 0
}

// DelChar deletes the byte left of the cursor; at column 0 it joins
// the current row onto the previous one.
func (e *Editor) DelChar() {
	if e.cy == len(e.rows) {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := e.rows[e.cy]
	if e.cx > 0 {
		e.rowDelChar(row, e.cx-1)
		e.cx--
	} else {
		prev := e.rows[e.cy-1]
		e.cx = len(prev.chars)
		e.rowAppendBytes(prev, row.chars)
		e.delRow(e.cy)
		e.cy--
	}
}
