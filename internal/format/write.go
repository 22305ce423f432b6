package format

import (
	"strings"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Writer accumulates printed output. It inserts a line break after a line
// comment when the next write would otherwise continue the comment, and a
// single space where a removed token left two pieces of text touching.
type Writer struct {
	buf     []byte
	newline string
	// pendingBreak: последним записан строчный комментарий
	pendingBreak bool
	pendingSpace bool
}

// NewWriter creates a writer that uses newline for inserted line breaks.
func NewWriter(newline string, capacity int) *Writer {
	if newline == "" {
		newline = "\n"
	}
	return &Writer{buf: make([]byte, 0, capacity), newline: newline}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// String returns the accumulated output as a string.
func (w *Writer) String() string {
	return string(w.buf)
}

// WriteString writes s, resolving pending separators first.
func (w *Writer) WriteString(s string) {
	if s == "" {
		return
	}
	w.settle(s)
	w.buf = append(w.buf, s...)
}

func (w *Writer) settle(next string) {
	switch {
	case w.pendingBreak:
		if !startsWithBreak(next) {
			w.buf = append(w.buf, w.newline...)
		}
	case w.pendingSpace:
		if !startsWithSpace(next) && !w.endsWithSpace() {
			w.buf = append(w.buf, ' ')
		}
	}
	w.pendingBreak = false
	w.pendingSpace = false
}

// Trivia writes a trivium verbatim.
func (w *Writer) Trivia(t syntax.Trivia) {
	w.WriteString(t.Text)
	if t.Kind == syntax.TriviaLineComment || t.Kind == syntax.TriviaShebang {
		w.pendingBreak = true
	}
}

// Comment writes a comment that was moved away from its original place,
// separated from the surrounding text by a space.
func (w *Writer) Comment(t syntax.Trivia) {
	if len(w.buf) > 0 && !w.pendingBreak && !w.endsWithSpace() {
		w.pendingSpace = true
	}
	w.Trivia(t)
	if t.Kind != syntax.TriviaLineComment {
		w.pendingSpace = true
	}
}

// Space asks for a separating space before the next non-space write.
func (w *Writer) Space() {
	if len(w.buf) == 0 || w.pendingBreak {
		return
	}
	w.pendingSpace = true
}

// Flush drops pending separators: at the end of output nothing can run into
// a comment.
func (w *Writer) Flush() {
	w.pendingBreak = false
	w.pendingSpace = false
}

func (w *Writer) endsWithSpace() bool {
	if len(w.buf) == 0 {
		return true
	}
	switch w.buf[len(w.buf)-1] {
	case ' ', '\t', '\n', '\r':
		return true
	}
	return false
}

func startsWithBreak(s string) bool {
	return strings.HasPrefix(s, "\n") || strings.HasPrefix(s, "\r")
}

func startsWithSpace(s string) bool {
	return s != "" && strings.ContainsRune(" \t\n\r", rune(s[0]))
}
