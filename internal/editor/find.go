package editor

import (
	"bytes"
	"errors"

	"github.com/kilo-editor/kilo/internal/terminal"
)

// Find runs an incremental search over the rendered rows. Arrows pick
// the direction and step to the next hit, any edit restarts from the
// top, Enter commits the cursor at the hit, ESC restores the cursor
// and viewport saved at entry. The current hit is overlaid with the
// MATCH class and the row's previous highlighting restored on every
// callback before searching again.
func (e *Editor) Find() error {
	savedCx, savedCy := e.cx, e.cy
	savedColoff, savedRowoff := e.coloff, e.rowoff

	lastMatch := -1
	direction := 1

	savedHlLine := -1
	var savedHl []byte

	onKeyPress := func(query []byte, k terminal.Key) {
		if savedHl != nil {
			copy(e.rows[savedHlLine].hl, savedHl)
			savedHl = nil
		}

		switch k {
		case terminal.KeyEnter, terminal.KeyEscape:
			lastMatch = -1
			direction = 1
			return
		case terminal.KeyArrowRight, terminal.KeyArrowDown:
			direction = 1
		case terminal.KeyArrowLeft, terminal.KeyArrowUp:
			direction = -1
		default:
			lastMatch = -1
			direction = 1
		}

		if lastMatch == -1 {
			direction = 1
		}

		current := lastMatch
		for i := 0; i < len(e.rows); i++ {
			current += direction
			if current == -1 {
				current = len(e.rows) - 1
			} else if current == len(e.rows) {
				current = 0
			}

			row := e.rows[current]
			rx := bytes.Index(row.render, query)
			if rx == -1 {
				continue
			}

			lastMatch = current
			e.cy = current
			e.cx = row.RxToCx(rx, e.cfg.Editor.TabWidth)
			// Scroll so the next refresh puts the hit at the top.
			e.rowoff = len(e.rows)

			savedHlLine = current
			savedHl = append([]byte(nil), row.hl...)
			for j := 0; j < len(query); j++ {
				row.hl[rx+j] = hlMatch
			}
			break
		}
	}

	_, err := e.Prompt("Search: %s (ESC = cancel | Enter = confirm | Arrows = prev/next)", onKeyPress)
	if errors.Is(err, ErrPromptCanceled) {
		e.cx, e.cy = savedCx, savedCy
		e.coloff, e.rowoff = savedColoff, savedRowoff
		return nil
	}
	return err
}
