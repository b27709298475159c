package lexer

import (
	"io"
	"unicode/utf8"
)

// cursor is the rune-at-a-time reader the lexer scans with. It tracks one
// position into the source bytes, read, the offset that peek inspects next
// and that consume and pushCursor advance, plus mark, the start of a pending
// lexeme. Looking further ahead without advancing (e.g. to decide whether a
// quote opens a docstring) is done with peekAt.
type cursor struct {
	src  []byte
	read int // byte offset of the next rune to be read
	mark int // byte offset recorded by setMark, for slicing lexemes
}

func newCursor(src []byte) *cursor {
	return &cursor{src: src}
}

// peek returns the rune at the read offset without advancing anything.
func (c *cursor) peek() (rune, int) {
	if c.read >= len(c.src) {
		return 0, 0
	}
	r, size := utf8.DecodeRune(c.src[c.read:])
	return r, size
}

// peekAt returns the rune `ahead` runes past the read offset, without
// advancing anything. ahead == 0 is equivalent to peek.
func (c *cursor) peekAt(ahead int) (rune, int) {
	off := c.read
	var r rune
	var size int
	for i := 0; i <= ahead; i++ {
		if off >= len(c.src) {
			return 0, 0
		}
		r, size = utf8.DecodeRune(c.src[off:])
		if i < ahead {
			off += size
		}
	}
	return r, size
}

// pushCursor advances the read offset by one rune, like consume, but does not
// return the rune; it reports false at end of input.
func (c *cursor) pushCursor() bool {
	_, size := c.peek()
	if size == 0 {
		return false
	}
	c.read += size
	return true
}

// consume advances the read offset by one rune and returns it; this is the
// "commit" operation, equivalent to the classic readChar of a hand-rolled
// lexer.
func (c *cursor) consume() (rune, error) {
	r, size := c.peek()
	if size == 0 {
		return 0, io.EOF
	}
	c.read += size
	return r, nil
}

// offset returns the current byte offset (the read cursor).
func (c *cursor) offset() int {
	return c.read
}

// setMark records the current read offset as the start of a pending lexeme.
func (c *cursor) setMark() {
	c.mark = c.read
}

// lexeme returns the bytes between the last setMark call and the current
// read offset.
func (c *cursor) lexeme() string {
	return string(c.src[c.mark:c.read])
}

// rest returns the unconsumed suffix of the source.
func (c *cursor) rest() string {
	return string(c.src[c.read:])
}
