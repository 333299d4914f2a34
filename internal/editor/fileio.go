package editor

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kilo-editor/kilo/internal/logger"
)

// Open reads the named file into the row store. Trailing CR and LF
// bytes are stripped from each line. An open failure is fatal to the
// caller; the editor refuses to start on an unreadable file.
func (e *Editor) Open(filename string) error {
	e.filename = filename

	f, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("open %s: %w", filename, err)
	}
	defer f.Close()

	r := bufio.NewReader(f)
	for {
		line, err := r.ReadBytes('\n')
		if len(line) > 0 {
			for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
				line = line[:len(line)-1]
			}
			e.insertRow(len(e.rows), line)
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return fmt.Errorf("read %s: %w", filename, err)
		}
	}

	e.dirty = 0
	logger.Info("opened file", "path", filename, "rows", len(e.rows))
	return nil
}

// Save writes the row store back to disk: open with create, truncate
// to the new length, write. I/O failures are recoverable; they land
// in the status bar and leave the dirty count alone.
func (e *Editor) Save() error {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if errors.Is(err, ErrPromptCanceled) {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		if err != nil {
			return err
		}
		e.filename = string(name)
	}

	data := e.rowsToBytes()

	f, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		e.saveFailed(err)
		return nil
	}
	defer f.Close()

	if err := f.Truncate(int64(len(data))); err != nil {
		e.saveFailed(err)
		return nil
	}
	n, err := f.Write(data)
	if err != nil {
		e.saveFailed(err)
		return nil
	}

	e.dirty = 0
	e.SetStatusMessage("%d bytes written to disk", n)
	logger.Info("saved file", "path", e.filename, "bytes", n)
	return nil
}

func (e *Editor) saveFailed(err error) {
	e.SetStatusMessage("Can't save! I/O error: %s", err)
	logger.Error("save failed", "path", e.filename, "error", err)
}

// rowsToBytes joins the rows with LF terminators, one per row.
func (e *Editor) rowsToBytes() []byte {
	var b bytes.Buffer
	for _, row := range e.rows {
		b.Write(row.chars)
		b.WriteByte('\n')
	}
	return b.Bytes()
}
