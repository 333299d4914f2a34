package editor

// Row is one line of the document. chars is the logical content as
// it exists in the file; render is the display form with tabs
// expanded; hl classifies every render byte. render and hl are
// regenerated after every mutation of chars and are never edited
// directly, except for the search controller's transient match
// overlay.
type Row struct {
	chars  []byte
	render []byte
	hl     []byte
}

// CxToRx maps a logical column to its rendered column under the
// given tab width.
func (r *Row) CxToRx(cx, tab int) int {
	rx := 0
	for j := 0; j < cx && j < len(r.chars); j++ {
		if r.chars[j] == '\t' {
			rx += tab - (rx % tab)
		} else {
			rx++
		}
	}
	return rx
}

// RxToCx maps a rendered column back to the logical column, clamping
// to the row length when rx lies past the end.
func (r *Row) RxToCx(rx, tab int) int {
	cur := 0
	for cx := 0; cx < len(r.chars); cx++ {
		if r.chars[cx] == '\t' {
			cur += tab - (cur % tab)
		} else {
			cur++
		}
		if cur > rx {
			return cx
		}
	}
	return len(r.chars)
}

// updateRow regenerates render from chars, expanding each tab to the
// next multiple of the configured tab width, then retags hl.
func (e *Editor) updateRow(row *Row) {
	tab := e.cfg.Editor.TabWidth
	render := make([]byte, 0, len(row.chars))
	for _, c := range row.chars {
		if c == '\t' {
			render = append(render, ' ')
			for len(render)%tab != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}
	row.render = render
	updateSyntax(row)
}

// insertRow inserts a new row at the given index, taking a copy of
// chars.
func (e *Editor) insertRow(at int, chars []byte) {
	if at < 0 || at > len(e.rows) {
		return
	}
	row := &Row{chars: append([]byte(nil), chars...)}
	e.updateRow(row)

	e.rows = append(e.rows, nil)
	copy(e.rows[at+1:], e.rows[at:])
	e.rows[at] = row
	e.dirty++
}

// delRow removes the row at the given index.
func (e *Editor) delRow(at int) {
	if at < 0 || at >= len(e.rows) {
		return
	}
	e.rows = append(e.rows[:at], e.rows[at+1:]...)
	e.dirty++
}

// rowInsertChar inserts one byte into a row, clamping the position to
// the row bounds.
func (e *Editor) rowInsertChar(row *Row, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c
	e.updateRow(row)
	e.dirty++
}

// rowAppendBytes appends bytes to a row (used by line joins).
func (e *Editor) rowAppendBytes(row *Row, b []byte) {
	row.chars = append(row.chars, b...)
	e.updateRow(row)
	e.dirty++
}

// rowDelChar removes one byte from a row.
func (e *Editor) rowDelChar(row *Row, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}
	row.chars = append(row.chars[:at], row.chars[at+1:]...)
	e.updateRow(row)
	e.dirty++
}
