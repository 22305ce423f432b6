package lexer

import (
	"bytes"
	"fmt"
	"unicode/utf8"

	"fortio.org/safecast"

	"github.com/biomejs/biome-sub001/internal/source"
)

// Cursor walks the bytes of one source file. Reads past Limit return 0.
type Cursor struct {
	file source.FileID
	src  []byte
	Off  uint32
	// Limit is the exclusive upper bound for Off.
	Limit uint32
}

// NewCursor creates a cursor at the start of f.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: file %s is larger than 4 GiB: %w", f.Path, err))
	}
	return Cursor{file: f.ID, src: f.Content, Limit: limit}
}

func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

func (c *Cursor) rest() []byte { return c.src[min(c.Off, c.Limit):c.Limit] }

// Peek returns the current byte.
func (c *Cursor) Peek() byte { return c.PeekAt(0) }

// PeekAt returns the byte n positions ahead.
func (c *Cursor) PeekAt(n uint32) byte {
	if n >= c.Limit-min(c.Off, c.Limit) {
		return 0
	}
	return c.src[c.Off+n]
}

// PeekRune decodes the rune at the cursor. Invalid UTF-8 gives RuneError
// with size 1; EOF gives size 0.
func (c *Cursor) PeekRune() (rune, int) {
	if c.EOF() {
		return utf8.RuneError, 0
	}
	if b := c.src[c.Off]; b < utf8.RuneSelf {
		return rune(b), 1
	}
	return utf8.DecodeRune(c.rest())
}

// HasPrefix reports whether the unread input starts with s.
func (c *Cursor) HasPrefix(s string) bool {
	return len(s) > 0 && bytes.HasPrefix(c.rest(), []byte(s))
}

// Bump consumes one byte and returns it.
func (c *Cursor) Bump() byte {
	b := c.Peek()
	if !c.EOF() {
		c.Off++
	}
	return b
}

// BumpN advances by n bytes, stopping at the limit.
func (c *Cursor) BumpN(n uint32) {
	c.Off = min(c.Off+n, c.Limit)
}

// BumpRune consumes the rune at the cursor.
func (c *Cursor) BumpRune() {
	if _, size := c.PeekRune(); size > 0 {
		c.BumpN(uint32(size)) //nolint:gosec // size не больше 4
	}
}

// Eat consumes the next byte when it equals b.
func (c *Cursor) Eat(b byte) bool {
	if c.EOF() || c.src[c.Off] != b {
		return false
	}
	c.Off++
	return true
}

// Mark is a saved cursor offset.
type Mark uint32

func (c *Cursor) Mark() Mark { return Mark(c.Off) }

// Reset moves the cursor back to m.
func (c *Cursor) Reset(m Mark) { c.Off = uint32(m) }

// SpanFrom returns the span read since m.
func (c *Cursor) SpanFrom(m Mark) source.Span {
	return source.Span{File: c.file, Start: uint32(m), End: c.Off}
}

// TextFrom returns the text read since m.
func (c *Cursor) TextFrom(m Mark) string {
	return string(c.src[m:c.Off])
}
