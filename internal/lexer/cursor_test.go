package lexer

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.grit", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte("a\nb") {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump() = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Fatal("expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Fatal("reads past EOF must return 0")
	}
}

func TestPeekAtAndPrefix(t *testing.T) {
	cursor := NewCursor(createFile("<:x"))
	if cursor.PeekAt(1) != ':' || cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt = %q, %q", cursor.PeekAt(1), cursor.PeekAt(3))
	}
	if !cursor.HasPrefix("<:") || cursor.HasPrefix("<=") {
		t.Fatal("HasPrefix mismatch")
	}
	cursor.BumpN(10)
	if !cursor.EOF() || cursor.Off != 3 {
		t.Fatalf("BumpN must stop at the limit, off = %d", cursor.Off)
	}
}

func TestMarkSpanReset(t *testing.T) {
	cursor := NewCursor(createFile("hello world"))
	m := cursor.Mark()
	cursor.BumpN(5)
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 5 || cursor.TextFrom(m) != "hello" {
		t.Fatalf("span = %v, text = %q", sp, cursor.TextFrom(m))
	}
	cursor.Reset(m)
	if cursor.Off != 0 || !cursor.Eat('h') || cursor.Eat('x') {
		t.Fatal("Reset/Eat mismatch")
	}
}
