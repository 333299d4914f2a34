package terminal

// Key is one decoded keypress. Values below 128 are the raw input
// byte (printable characters and control bytes); special keys sit at
// arbitrary large values to stay clear of the byte range.
type Key int32

const (
	KeyEnter     Key = 13
	KeyEscape    Key = 27
	KeyBackspace Key = 127
)

const (
	KeyArrowLeft Key = iota + 1000
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyDelete
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// Ctrl returns the byte produced by pressing the given letter with
// the control key held.
func Ctrl(c byte) Key {
	return Key(c & 0x1f)
}

// byteSource yields raw input bytes. ok is false when the read timed
// out with nothing available (the ~0.1s tick used to tell a lone ESC
// apart from an escape sequence).
type byteSource interface {
	ReadByte() (b byte, ok bool, err error)
}

// decodeKey reads one keypress. The first byte is waited for
// indefinitely; continuation bytes of an escape sequence get a single
// timed read each, and a timeout means the ESC stood alone.
func decodeKey(src byteSource) (Key, error) {
	var c byte
	for {
		b, ok, err := src.ReadByte()
		if err != nil {
			return 0, err
		}
		if ok {
			c = b
			break
		}
	}

	if c != 0x1b {
		return Key(c), nil
	}

	seq0, ok, err := src.ReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return KeyEscape, nil
	}
	seq1, ok, err := src.ReadByte()
	if err != nil {
		return 0, err
	}
	if !ok {
		return KeyEscape, nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok, err := src.ReadByte()
			if err != nil {
				return 0, err
			}
			if !ok || seq2 != '~' {
				return KeyEscape, nil
			}
			switch seq1 {
			case '1', '7':
				return KeyHome, nil
			case '3':
				return KeyDelete, nil
			case '4', '8':
				return KeyEnd, nil
			case '5':
				return KeyPageUp, nil
			case '6':
				return KeyPageDown, nil
			}
			return KeyEscape, nil
		}
		return letterKey(seq1), nil
	case 'O':
		return letterKey(seq1), nil
	}
	return KeyEscape, nil
}

func letterKey(b byte) Key {
	switch b {
	case 'A':
		return KeyArrowUp
	case 'B':
		return KeyArrowDown
	case 'C':
		return KeyArrowRight
	case 'D':
		return KeyArrowLeft
	case 'H':
		return KeyHome
	case 'F':
		return KeyEnd
	}
	return KeyEscape
}
