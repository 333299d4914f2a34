package editor

import (
	"errors"

	"github.com/kilo-editor/kilo/internal/terminal"
)

// ErrPromptCanceled is returned when the user aborts a prompt with ESC.
var ErrPromptCanceled = errors.New("prompt canceled")

// Prompt runs a modal single-line input on the message bar. format
// must contain one %s for the current buffer. The optional callback
// observes the buffer and the last key on every iteration, which is
// how incremental search rides on top of this loop. Enter with a
// non-empty buffer commits; ESC cancels.
func (e *Editor) Prompt(format string, cb func(query []byte, k terminal.Key)) ([]byte, error) {
	buf := make([]byte, 0, 128)
	for {
		e.SetStatusMessage(format, buf)
		e.refreshScreen()

		k, err := e.keys.ReadKey()
		if err != nil {
			return nil, err
		}

		switch {
		case k == terminal.KeyDelete || k == terminal.KeyBackspace || k == terminal.Ctrl('h'):
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
			}
		case k == terminal.KeyEscape:
			e.SetStatusMessage("")
			if cb != nil {
				cb(buf, k)
			}
			return nil, ErrPromptCanceled
		case k == terminal.KeyEnter:
			if len(buf) > 0 {
				e.SetStatusMessage("")
				if cb != nil {
					cb(buf, k)
				}
				return buf, nil
			}
		case k >= 0 && k < 128 && !isControl(byte(k)):
			buf = append(buf, byte(k))
		}

		if cb != nil {
			cb(buf, k)
		}
	}
}

func isControl(c byte) bool {
	return c < 32 || c == 127
}
