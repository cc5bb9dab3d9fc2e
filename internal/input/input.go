// Package input is the typed command line shared by the window and
// terminal front ends: digits and a leading minus build a value, Enter
// sends it to the tree as an insert or a search.
package input

import (
	"strconv"

	"github.com/san-kum/dsviz/internal/bst"
)

// maxDigits keeps the buffer within int range.
const maxDigits = 9

type Mode int

const (
	ModeInsert Mode = iota
	ModeSearch
)

func (m Mode) String() string {
	if m == ModeSearch {
		return "search"
	}
	return "insert"
}

// Line is the input buffer and its mode.
type Line struct {
	mode Mode
	buf  []rune
}

func (l *Line) Mode() Mode     { return l.mode }
func (l *Line) Text() string   { return string(l.buf) }
func (l *Line) Toggle()        { l.mode = 1 - l.mode }
func (l *Line) Clear()         { l.buf = l.buf[:0] }
func (l *Line) SetMode(m Mode) { l.mode = m }

// Type appends r if it keeps the buffer a valid integer prefix and reports
// whether it was accepted.
func (l *Line) Type(r rune) bool {
	digits := len(l.buf)
	if digits > 0 && l.buf[0] == '-' {
		digits--
	}
	switch {
	case r == '-' && len(l.buf) == 0:
	case r >= '0' && r <= '9' && digits < maxDigits:
	default:
		return false
	}
	l.buf = append(l.buf, r)
	return true
}

func (l *Line) Backspace() {
	if len(l.buf) > 0 {
		l.buf = l.buf[:len(l.buf)-1]
	}
}

// Submit sends the buffer to tree in the current mode and clears it. An
// empty or incomplete buffer is ignored.
func (l *Line) Submit(tree *bst.Tree) (int, bool) {
	v, err := strconv.Atoi(string(l.buf))
	if err != nil {
		return 0, false
	}
	l.Clear()
	if l.mode == ModeSearch {
		tree.Search(v)
	} else {
		tree.Insert(v)
	}
	return v, true
}
