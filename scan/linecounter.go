package scan

import "github.com/rubiojr/typofind/escape"

// lineCounter maps byte offsets within one span's counting text to the
// number of line breaks before them. The cursor moves forward or backward
// by the delta between consecutive queries instead of rescanning from the
// start, since a span containing many matches is queried once per match in
// increasing offset order.
//
// A line break is a real newline byte or the placeholder substituted by
// escape.DecodeCounting for escape sequences that decode to a newline:
// both advance the line the literal occupies in the original source once
// decoded offsets are mapped back.
type lineCounter struct {
	text   string
	offset int
	lines  int
}

func newLineCounter(text string) *lineCounter {
	return &lineCounter{text: text}
}

// linesBefore returns the number of line breaks in text[0:offset]. Offsets
// outside [0, len(text)] are clamped. The invariant that c.lines always
// matches the break count before c.offset holds across arbitrary query
// order; each call costs O(|offset - previous offset|).
func (c *lineCounter) linesBefore(offset int) int {
	if offset < 0 {
		offset = 0
	}
	if offset > len(c.text) {
		offset = len(c.text)
	}
	for c.offset < offset {
		if isLineBreak(c.text[c.offset]) {
			c.lines++
		}
		c.offset++
	}
	for c.offset > offset {
		c.offset--
		if isLineBreak(c.text[c.offset]) {
			c.lines--
		}
	}
	return c.lines
}

func isLineBreak(b byte) bool {
	return b == '\n' || b == escape.NewlinePlaceholder
}
