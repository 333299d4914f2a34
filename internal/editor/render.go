package editor

import (
	"fmt"
	"io"
	"strings"
	"time"
)

// scroll derives rx from the cursor and renormalizes the viewport so
// the rendered cursor cell is visible.
func (e *Editor) scroll() {
	e.rx = 0
	if e.cy < len(e.rows) {
		e.rx = e.rows[e.cy].CxToRx(e.cx, e.cfg.Editor.TabWidth)
	}
	if e.cy < e.rowoff {
		e.rowoff = e.cy
	}
	if e.cy >= e.rowoff+e.screenRows {
		e.rowoff = e.cy - e.screenRows + 1
	}
	if e.rx < e.coloff {
		e.coloff = e.rx
	}
	if e.rx >= e.coloff+e.screenCols {
		e.coloff = e.rx - e.screenCols + 1
	}
}

// refreshScreen assembles one full frame and writes it in a single
// call: hide cursor, home, rows, status bar, message bar, cursor
// placement, show cursor.
func (e *Editor) refreshScreen() {
	e.scroll()

	var b strings.Builder
	b.WriteString("\x1b[?25l")
	b.WriteString("\x1b[H")

	e.drawRows(&b)
	e.drawStatusBar(&b)
	e.drawMessageBar(&b)

	fmt.Fprintf(&b, "\x1b[%d;%dH", (e.cy-e.rowoff)+1, (e.rx-e.coloff)+1)
	b.WriteString("\x1b[?25h")

	io.WriteString(e.out, b.String())
}

func (e *Editor) drawRows(b *strings.Builder) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowoff
		if filerow >= len(e.rows) {
			if len(e.rows) == 0 && y == e.screenRows/3 {
				e.drawWelcome(b)
			} else {
				b.WriteByte('~')
			}
		} else {
			e.drawRow(b, e.rows[filerow])
		}
		b.WriteString("\x1b[K")
		b.WriteString("\r\n")
	}
}

// drawRow emits the visible slice of one row, switching SGR color
// only when the highlight class changes between adjacent bytes.
func (e *Editor) drawRow(b *strings.Builder, row *Row) {
	var line, hl []byte
	if e.coloff < len(row.render) {
		line = row.render[e.coloff:]
		hl = row.hl[e.coloff:]
		if len(line) > e.screenCols {
			line = line[:e.screenCols]
			hl = hl[:e.screenCols]
		}
	}

	currentColor := -1
	for i, c := range line {
		if hl[i] == hlNormal {
			if currentColor != -1 {
				currentColor = -1
				b.WriteString("\x1b[39m")
			}
			b.WriteByte(c)
		} else {
			color := e.syntaxColor(hl[i])
			if color != currentColor {
				currentColor = color
				fmt.Fprintf(b, "\x1b[%dm", color)
			}
			b.WriteByte(c)
		}
	}
	b.WriteString("\x1b[39m")
}

func (e *Editor) drawWelcome(b *strings.Builder) {
	welcome := fmt.Sprintf("Kilo editor -- version %s", Version)
	if len(welcome) > e.screenCols {
		welcome = welcome[:e.screenCols]
	}
	padding := (e.screenCols - len(welcome)) / 2
	if padding > 0 {
		b.WriteByte('~')
		padding--
	}
	for ; padding > 0; padding-- {
		b.WriteByte(' ')
	}
	b.WriteString(welcome)
}

func (e *Editor) drawStatusBar(b *strings.Builder) {
	b.WriteString("\x1b[7m")

	name := e.filename
	if name == "" {
		name = "[No Name]"
	}
	modified := ""
	if e.dirty > 0 {
		modified = "(modified)"
	}
	status := fmt.Sprintf("%.20s - %d lines %s", name, len(e.rows), modified)
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, len(e.rows))
	if len(status) > e.screenCols {
		status = status[:e.screenCols]
	}
	b.WriteString(status)
	for l := len(status); l < e.screenCols; {
		if e.screenCols-l == len(rstatus) {
			b.WriteString(rstatus)
			break
		}
		b.WriteByte(' ')
		l++
	}

	b.WriteString("\x1b[m")
	b.WriteString("\r\n")
}

func (e *Editor) drawMessageBar(b *strings.Builder) {
	b.WriteString("\x1b[K")
	msg := e.statusmsg
	if len(msg) > e.screenCols {
		msg = msg[:e.screenCols]
	}
	timeout := time.Duration(e.cfg.Editor.StatusTimeout) * time.Second
	if msg != "" && time.Since(e.statusmsgTime) < timeout {
		b.WriteString(msg)
	}
}
