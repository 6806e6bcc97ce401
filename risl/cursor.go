package risl

import "unicode/utf8"

// cursor is a forward-only rune iterator over the source text. The consumed
// counter is a byte offset, not a rune count: every successful next advances
// it by the UTF-8 width of the rune produced, which keeps it aligned with
// the Span contract for non-ASCII input.
type cursor struct {
	source   string
	consumed int
	width    int // byte width of the last rune consumed
}

func newCursor(source string) cursor {
	return cursor{source: source}
}

// peek returns the next rune without consuming it.
func (c *cursor) peek() (rune, bool) {
	if c.consumed >= len(c.source) {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(c.source[c.consumed:])
	return r, true
}

// peekNth returns the rune n positions past the next one, so peekNth(0) is
// equivalent to peek.
func (c *cursor) peekNth(n int) (rune, bool) {
	idx := c.consumed
	for idx < len(c.source) {
		r, w := utf8.DecodeRuneInString(c.source[idx:])
		if n == 0 {
			return r, true
		}
		n--
		idx += w
	}
	return 0, false
}

// next consumes and returns the next rune. At end of input it consumes
// nothing and reports false.
func (c *cursor) next() (rune, bool) {
	if c.consumed >= len(c.source) {
		return 0, false
	}
	r, w := utf8.DecodeRuneInString(c.source[c.consumed:])
	c.consumed += w
	c.width = w
	return r, true
}

// advanceWhile consumes runes as long as the next one satisfies pred,
// stopping at the first rune that fails it or at end of input.
func (c *cursor) advanceWhile(pred func(rune) bool) {
	for {
		r, ok := c.peek()
		if !ok || !pred(r) {
			return
		}
		c.next()
	}
}
