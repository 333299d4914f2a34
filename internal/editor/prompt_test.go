package editor

import (
	"errors"
	"testing"

	"github.com/kilo-editor/kilo/internal/terminal"
)

func TestPromptCommitsOnEnter(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: append(keysFor("hi.txt"), terminal.KeyEnter)}

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "hi.txt" {
		t.Errorf("buffer = %q", got)
	}
	if e.statusmsg != "" {
		t.Errorf("status should be cleared on commit, got %q", e.statusmsg)
	}
}

func TestPromptEscapeCancels(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: append(keysFor("partial"), terminal.KeyEscape)}

	got, err := e.Prompt("Save as: %s", nil)
	if !errors.Is(err, ErrPromptCanceled) {
		t.Fatalf("err = %v, want ErrPromptCanceled", err)
	}
	if got != nil {
		t.Errorf("canceled prompt returned %q", got)
	}
}

func TestPromptEnterOnEmptyBufferKeepsPrompting(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: []terminal.Key{
		terminal.KeyEnter,
		terminal.KeyEnter,
		terminal.Key('a'),
		terminal.KeyEnter,
	}}

	got, err := e.Prompt("Search: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "a" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptBackspaceEditsBuffer(t *testing.T) {
	e := newTestEditor()
	keys := keysFor("abc")
	keys = append(keys, terminal.KeyBackspace, terminal.Key('d'), terminal.KeyEnter)
	e.keys = &scriptedKeys{keys: keys}

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "abd" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptDeleteAndCtrlHAlsoTrim(t *testing.T) {
	e := newTestEditor()
	keys := keysFor("xyz")
	keys = append(keys, terminal.KeyDelete, terminal.Ctrl('h'), terminal.KeyEnter)
	e.keys = &scriptedKeys{keys: keys}

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "x" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptBackspaceOnEmptyBufferIsSafe(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: []terminal.Key{
		terminal.KeyBackspace,
		terminal.Key('q'),
		terminal.KeyEnter,
	}}

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "q" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptIgnoresControlAndSpecialKeys(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: []terminal.Key{
		terminal.Ctrl('a'),
		terminal.KeyArrowUp,
		terminal.KeyPageDown,
		terminal.Key('o'),
		terminal.Key('k'),
		terminal.KeyEnter,
	}}

	got, err := e.Prompt("Save as: %s", nil)
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}
	if string(got) != "ok" {
		t.Errorf("buffer = %q", got)
	}
}

func TestPromptCallbackSeesEveryKeystroke(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: append(keysFor("ab"), terminal.KeyEnter)}

	type call struct {
		query string
		key   terminal.Key
	}
	var calls []call
	_, err := e.Prompt("Search: %s", func(query []byte, k terminal.Key) {
		calls = append(calls, call{string(query), k})
	})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}

	want := []call{
		{"a", terminal.Key('a')},
		{"ab", terminal.Key('b')},
		{"ab", terminal.KeyEnter},
	}
	if len(calls) != len(want) {
		t.Fatalf("calls = %v", calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d = %v, want %v", i, calls[i], want[i])
		}
	}
}

func TestPromptCallbackObservesCancel(t *testing.T) {
	e := newTestEditor()
	e.keys = &scriptedKeys{keys: []terminal.Key{terminal.Key('z'), terminal.KeyEscape}}

	var last terminal.Key
	_, err := e.Prompt("Search: %s", func(query []byte, k terminal.Key) {
		last = k
	})
	if !errors.Is(err, ErrPromptCanceled) {
		t.Fatalf("err = %v, want ErrPromptCanceled", err)
	}
	if last != terminal.KeyEscape {
		t.Errorf("last key seen by callback = %v, want ESC", last)
	}
}

func TestPromptShowsBufferInStatusMessage(t *testing.T) {
	e := newTestEditor()
	var seen []string
	e.keys = &scriptedKeys{keys: append(keysFor("ab"), terminal.KeyEnter)}

	_, err := e.Prompt("Save as: %s (ESC to cancel)", func(query []byte, k terminal.Key) {
		seen = append(seen, e.statusmsg)
	})
	if err != nil {
		t.Fatalf("Prompt: %v", err)
	}

	// The status message rendered before each read reflects the buffer
	// as of the previous keystroke.
	if seen[len(seen)-1] != "" {
		t.Errorf("status after commit = %q, want cleared", seen[len(seen)-1])
	}
	if e.statusmsg != "" {
		t.Errorf("statusmsg = %q", e.statusmsg)
	}
}
