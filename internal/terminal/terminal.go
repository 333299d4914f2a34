package terminal

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/kilo-editor/kilo/internal/logger"
)

var (
	stdinfd  = int(os.Stdin.Fd())
	stdoutfd = int(os.Stdout.Fd())
)

// ErrNotATerminal is returned when stdin is not a TTY.
var ErrNotATerminal = errors.New("stdin is not a terminal")

// Terminal owns the controlling TTY: raw mode, dimensions, and the
// byte-level input stream.
type Terminal struct {
	origTermios *unix.Termios
	width       int
	height      int
	sigwinch    chan os.Signal
	resized     bool
}

// New puts the terminal into raw mode and queries its size. The
// caller must arrange for Restore to run on every exit path.
func New() (*Terminal, error) {
	if !term.IsTerminal(stdinfd) {
		return nil, ErrNotATerminal
	}

	t := &Terminal{}

	orig, err := enableRawMode()
	if err != nil {
		return nil, fmt.Errorf("enable raw mode: %w", err)
	}
	t.origTermios = orig

	if err := t.querySize(); err != nil {
		t.Restore()
		return nil, err
	}

	t.sigwinch = make(chan os.Signal, 1)
	signal.Notify(t.sigwinch, syscall.SIGWINCH)

	logger.Debug("terminal ready", "width", t.width, "height", t.height)
	return t, nil
}

// enableRawMode switches stdin to byte-at-a-time, no-echo mode with a
// 0.1s read timeout and no minimum byte count. The timeout is what
// lets the key decoder tell a lone ESC from an escape sequence.
func enableRawMode() (*unix.Termios, error) {
	t, err := unix.IoctlGetTermios(stdinfd, ioctlReadTermios)
	if err != nil {
		return nil, err
	}
	raw := *t
	raw.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	raw.Oflag &^= unix.OPOST
	raw.Cflag |= unix.CS8
	raw.Lflag &^= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	raw.Cc[unix.VMIN] = 0
	raw.Cc[unix.VTIME] = 1
	if err := unix.IoctlSetTermios(stdinfd, ioctlWriteTermios, &raw); err != nil {
		return nil, err
	}
	return t, nil
}

// Restore clears the screen and returns the terminal to its original
// mode. Safe to call more than once.
func (t *Terminal) Restore() {
	os.Stdout.WriteString("\x1b[2J")
	os.Stdout.WriteString("\x1b[H")
	os.Stdout.WriteString("\x1b[?25h")
	if t.origTermios != nil {
		if err := unix.IoctlSetTermios(stdinfd, ioctlWriteTermios, t.origTermios); err != nil {
			logger.Error("restore termios", "error", err)
		}
		t.origTermios = nil
	}
	if t.sigwinch != nil {
		signal.Stop(t.sigwinch)
	}
}

// Width returns the terminal width in columns.
func (t *Terminal) Width() int { return t.width }

// Height returns the terminal height in rows.
func (t *Terminal) Height() int { return t.height }

// ConsumeResize reports whether the window was resized since the last
// call, re-querying the dimensions if so.
func (t *Terminal) ConsumeResize() bool {
	if !t.resized {
		return false
	}
	t.resized = false
	if err := t.querySize(); err != nil {
		logger.Error("resize query", "error", err)
		return false
	}
	logger.Debug("resized", "width", t.width, "height", t.height)
	return true
}

// querySize obtains the window dimensions, falling back to driving
// the cursor to the bottom-right corner and reading its position back
// when the direct query fails.
func (t *Terminal) querySize() error {
	w, h, err := term.GetSize(stdoutfd)
	if err == nil && w > 0 {
		t.width, t.height = w, h
		return nil
	}
	logger.Warn("window size query failed, using cursor fallback", "error", err)

	if _, err := os.Stdout.WriteString("\x1b[999C\x1b[999B"); err != nil {
		return err
	}
	row, col, err := t.cursorPosition()
	if err != nil {
		return fmt.Errorf("get window size: %w", err)
	}
	t.width, t.height = col, row
	return nil
}

// cursorPosition asks the terminal where the cursor is and parses the
// ESC [ rows ; cols R report.
func (t *Terminal) cursorPosition() (row, col int, err error) {
	if _, err = os.Stdout.WriteString("\x1b[6n"); err != nil {
		return 0, 0, err
	}

	var resp []byte
	for len(resp) < 32 {
		b, ok, err := t.ReadByte()
		if err != nil {
			return 0, 0, err
		}
		if !ok {
			break
		}
		if b == 'R' {
			break
		}
		resp = append(resp, b)
	}
	if _, err := fmt.Sscanf(string(resp), "\x1b[%d;%d", &row, &col); err != nil {
		return 0, 0, err
	}
	return row, col, nil
}

// ReadByte reads one byte from stdin. ok is false when the 0.1s read
// window elapsed with no input; the idle tick doubles as the point
// where pending SIGWINCH deliveries are observed.
func (t *Terminal) ReadByte() (byte, bool, error) {
	buf := make([]byte, 1)
	n, err := os.Stdin.Read(buf)
	if err != nil && err != io.EOF {
		return 0, false, err
	}
	if n == 0 {
		t.pollSigwinch()
		return 0, false, nil
	}
	return buf[0], true, nil
}

// ReadKey blocks until one full keypress has been decoded.
func (t *Terminal) ReadKey() (Key, error) {
	return decodeKey(t)
}

func (t *Terminal) pollSigwinch() {
	if t.sigwinch == nil {
		return
	}
	select {
	case <-t.sigwinch:
		t.resized = true
	default:
	}
}
