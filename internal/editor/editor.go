package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/kilo-editor/kilo/internal/config"
	"github.com/kilo-editor/kilo/internal/logger"
	"github.com/kilo-editor/kilo/internal/terminal"
)

const Version = "0.1.0"

// ErrQuitEditor signals a clean Ctrl-Q exit out of the event loop.
var ErrQuitEditor = errors.New("quit editor")

// KeyReader yields decoded keypresses. The terminal implements it;
// tests substitute a scripted source.
type KeyReader interface {
	ReadKey() (terminal.Key, error)
}

// Editor is the whole editing state: row store, cursor, viewport,
// and the transient status line.
type Editor struct {
	// cursor position: cx indexes a row's chars, rx the render string.
	cx, cy int
	rx     int

	// viewport top-left corner.
	rowoff, coloff int

	screenRows int
	screenCols int

	rows  []*Row
	dirty int

	// consecutive Ctrl-Q presses with unsaved changes.
	quitCounter int

	filename string

	statusmsg     string
	statusmsgTime time.Time

	cfg  config.Config
	keys KeyReader
	out  io.Writer
	term *terminal.Terminal
}

func New(cfg config.Config) *Editor {
	return &Editor{
		cfg: cfg,
		out: os.Stdout,
	}
}

// Run acquires the terminal, loads the optional file, and drives the
// render / read / dispatch loop until quit or fatal error. The
// terminal is restored on every exit path.
func (e *Editor) Run(filename string) error {
	t, err := terminal.New()
	if err != nil {
		return err
	}
	defer t.Restore()
	e.term = t
	e.keys = t
	e.layout(t.Width(), t.Height())

	if filename != "" {
		if err := e.Open(filename); err != nil {
			return err
		}
	}

	e.SetStatusMessage("HELP: Ctrl-S = save | Ctrl-Q = quit | Ctrl-F = find")

	for {
		e.refreshScreen()
		if err := e.processKey(); err != nil {
			if errors.Is(err, ErrQuitEditor) {
				logger.Info("quit", "dirty", e.dirty)
				return nil
			}
			return err
		}
		if e.term.ConsumeResize() {
			e.layout(e.term.Width(), e.term.Height())
		}
	}
}

// layout derives the text area from the terminal size, reserving two
// rows for the status and message bars.
func (e *Editor) layout(width, height int) {
	e.screenCols = width
	e.screenRows = height - 2
	if e.screenRows < 0 {
		e.screenRows = 0
	}
}

func (e *Editor) processKey() error {
	k, err := e.keys.ReadKey()
	if err != nil {
		return err
	}
	return e.dispatch(k)
}

func (e *Editor) dispatch(k terminal.Key) error {
	switch k {
	case terminal.KeyEnter:
		e.InsertNewline()

	case terminal.Ctrl('q'):
		if e.dirty > 0 && e.quitCounter < e.cfg.Editor.QuitTimes {
			e.SetStatusMessage(
				"WARNING!!! File has unsaved changes. Press Ctrl-Q %d more times to quit.",
				e.cfg.Editor.QuitTimes-e.quitCounter)
			e.quitCounter++
			return nil
		}
		return ErrQuitEditor

	case terminal.Ctrl('s'):
		if err := e.Save(); err != nil {
			return err
		}

	case terminal.Ctrl('f'):
		if err := e.Find(); err != nil {
			return err
		}

	case terminal.KeyHome:
		e.cx = 0

	case terminal.KeyEnd:
		if e.cy < len(e.rows) {
			e.cx = len(e.rows[e.cy].chars)
		}

	case terminal.KeyBackspace, terminal.Ctrl('h'):
		e.DelChar()

	case terminal.KeyDelete:
		e.MoveCursor(terminal.KeyArrowRight)
		e.DelChar()

	case terminal.KeyPageUp, terminal.KeyPageDown:
		dir := terminal.KeyArrowDown
		if k == terminal.KeyPageUp {
			e.cy = e.rowoff
			dir = terminal.KeyArrowUp
		} else {
			e.cy = e.rowoff + e.screenRows - 1
			if e.cy > len(e.rows) {
				e.cy = len(e.rows)
			}
		}
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(dir)
		}

	case terminal.KeyArrowUp, terminal.KeyArrowDown, terminal.KeyArrowLeft, terminal.KeyArrowRight:
		e.MoveCursor(k)

	case terminal.Ctrl('l'), terminal.KeyEscape:
		// no-op

	default:
		if k >= 0 && k < 128 {
			e.InsertChar(byte(k))
		}
	}

	// Any key other than Ctrl-Q resets the quit confirmation.
	e.quitCounter = 0
	return nil
}

// MoveCursor applies one arrow-key move, then clamps cx to the new
// row's length.
func (e *Editor) MoveCursor(k terminal.Key) {
	var row *Row
	if e.cy < len(e.rows) {
		row = e.rows[e.cy]
	}

	switch k {
	case terminal.KeyArrowLeft:
		if e.cx > 0 {
			e.cx--
		} else if e.cy > 0 {
			e.cy--
			e.cx = len(e.rows[e.cy].chars)
		}
	case terminal.KeyArrowRight:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			e.cy++
			e.cx = 0
		}
	case terminal.KeyArrowUp:
		if e.cy > 0 {
			e.cy--
		}
	case terminal.KeyArrowDown:
		if e.cy < len(e.rows) {
			e.cy++
		}
	}

	rowLen := 0
	if e.cy < len(e.rows) {
		rowLen = len(e.rows[e.cy].chars)
	}
	if e.cx > rowLen {
		e.cx = rowLen
	}
}

// SetStatusMessage formats a transient message for the message bar.
func (e *Editor) SetStatusMessage(format string, a ...interface{}) {
	e.statusmsg = fmt.Sprintf(format, a...)
	e.statusmsgTime = time.Now()
}
