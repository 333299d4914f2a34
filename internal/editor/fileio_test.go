package editor

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kilo-editor/kilo/internal/terminal"
)

func TestOpenSplitsLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "in.txt")
	os.WriteFile(path, []byte("hello\nworld\n"), 0o644)

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}

	if len(e.rows) != 2 || rowString(e, 0) != "hello" || rowString(e, 1) != "world" {
		t.Fatalf("rows = %v", e.rows)
	}
	if e.dirty != 0 {
		t.Error("freshly opened buffer should be clean")
	}
	if e.filename != path {
		t.Errorf("filename = %q", e.filename)
	}
}

func TestOpenStripsCarriageReturns(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.txt")
	os.WriteFile(path, []byte("one\r\ntwo\r\n"), 0o644)

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if rowString(e, 0) != "one" || rowString(e, 1) != "two" {
		t.Errorf("rows = %q, %q", rowString(e, 0), rowString(e, 1))
	}
}

func TestOpenKeepsBlankLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blank.txt")
	os.WriteFile(path, []byte("a\n\nb\n"), 0o644)

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if len(e.rows) != 3 || rowString(e, 1) != "" {
		t.Fatalf("rows = %v", e.rows)
	}
}

func TestOpenMissingFileIsError(t *testing.T) {
	e := newTestEditor()
	if err := e.Open(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
		t.Fatal("Open of a missing file should fail")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rt.txt")
	original := []byte("alpha\n\tbeta\ngamma 42\n")
	os.WriteFile(path, original, 0o644)

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != string(original) {
		t.Errorf("round trip changed bytes: %q", data)
	}
	if e.dirty != 0 {
		t.Error("buffer should be clean after save")
	}
}

func TestSaveTruncatesShrunkFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "shrink.txt")
	os.WriteFile(path, []byte("a long line of text\n"), 0o644)

	e := newTestEditor()
	if err := e.Open(path); err != nil {
		t.Fatalf("Open: %v", err)
	}
	for len(e.rows[0].chars) > 2 {
		e.rowDelChar(e.rows[0], len(e.rows[0].chars)-1)
	}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "a \n" {
		t.Errorf("file = %q, want %q", data, "a \n")
	}
}

func TestSaveAsPromptsForFilename(t *testing.T) {
	path := filepath.Join(t.TempDir(), "t.txt")

	e := newTestEditor()
	dispatchAll(t, e, keysFor("ab\tcd")...)

	e.keys = &scriptedKeys{keys: append(keysFor(path), terminal.KeyEnter)}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "ab\tcd\n" {
		t.Errorf("file = %q, want %q", data, "ab\tcd\n")
	}
	if e.statusmsg != "6 bytes written to disk" {
		t.Errorf("statusmsg = %q", e.statusmsg)
	}
	if e.dirty != 0 {
		t.Error("buffer should be clean after save-as")
	}
}

func TestSaveAsCancelKeepsBufferDirty(t *testing.T) {
	e := newTestEditor()
	dispatchAll(t, e, keysFor("x")...)

	e.keys = &scriptedKeys{keys: []terminal.Key{terminal.KeyEscape}}
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	if e.statusmsg != "Save aborted" {
		t.Errorf("statusmsg = %q", e.statusmsg)
	}
	if e.dirty == 0 {
		t.Error("canceled save must leave the buffer dirty")
	}
	if e.filename != "" {
		t.Errorf("filename = %q, want empty", e.filename)
	}
}

func TestSaveFailureIsRecoverable(t *testing.T) {
	e := newTestEditor("data")
	e.InsertChar('!')
	// A directory path cannot be opened for writing.
	e.filename = t.TempDir()

	if err := e.Save(); err != nil {
		t.Fatalf("Save should not be fatal: %v", err)
	}
	if !strings.Contains(e.statusmsg, "Can't save! I/O error:") {
		t.Errorf("statusmsg = %q", e.statusmsg)
	}
	if e.dirty == 0 {
		t.Error("failed save must leave dirty set")
	}
}

func TestEmptyBufferSavesNoBytes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")

	e := newTestEditor()
	e.filename = path
	if err := e.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	data, _ := os.ReadFile(path)
	if len(data) != 0 {
		t.Errorf("file = %q, want empty", data)
	}
}
