package editor

import "bytes"

// Highlight classes, one per rendered byte.
const (
	hlNormal byte = iota
	hlNumber
	hlMatch
)

var separators = []byte(",.()+-/*=~%<>[];")

// isSeparator reports whether the byte ends a token for the number
// tagger. The start of a line also counts as a separator.
func isSeparator(c byte) bool {
	switch c {
	case 0, ' ', '\t', '\r', '\n', '\v', '\f':
		return true
	}
	return bytes.IndexByte(separators, c) != -1
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// updateSyntax recomputes the highlight class of every rendered byte
// from the render bytes alone. A digit starts or continues a NUMBER
// run when it follows a separator or another NUMBER byte; a '.'
// continues one. MATCH is never produced here; the search controller
// overlays it and restores from its own snapshot.
func updateSyntax(row *Row) {
	row.hl = make([]byte, len(row.render))

	prevSep := true
	for i, c := range row.render {
		prevHl := hlNormal
		if i > 0 {
			prevHl = row.hl[i-1]
		}
		if (isDigit(c) && (prevSep || prevHl == hlNumber)) ||
			(c == '.' && prevHl == hlNumber) {
			row.hl[i] = hlNumber
			prevSep = false
			continue
		}
		prevSep = isSeparator(c)
	}
}

// syntaxColor maps a highlight class to its SGR color code.
func (e *Editor) syntaxColor(hl byte) int {
	switch hl {
	case hlNumber:
		return e.cfg.Theme.Number
	case hlMatch:
		return e.cfg.Theme.Match
	default:
		return 37
	}
}
