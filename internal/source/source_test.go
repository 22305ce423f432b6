package source

import (
	"testing"

	"github.com/spf13/afero"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSetFs(afero.NewMemMapFs())

	id1 := fs.Add("test.grit", []byte("hello world"), 0)
	id2 := fs.Add("test.grit", []byte("hello universe"), 0)
	if id1 != 0 || id2 != 1 {
		t.Fatalf("ids = %d, %d", id1, id2)
	}
	latest, ok := fs.GetLatest("test.grit")
	if !ok || latest != id2 {
		t.Fatalf("latest = %d, %v", latest, ok)
	}
	if string(fs.Get(id1).Content) != "hello world" {
		t.Fatalf("old version lost")
	}
	if fs.Get(99) != nil {
		t.Fatalf("unknown id must return nil")
	}
}

func TestContentKeptExact(t *testing.T) {
	mem := afero.NewMemMapFs()
	src := []byte(syntax.BOM + "a\r\nb\rc\n")
	if err := afero.WriteFile(mem, "/w/x.grit", src, 0o644); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetFs(mem)
	id, err := fs.Load("/w/x.grit")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != string(src) {
		t.Fatalf("content changed: %q", f.Content)
	}
	if f.Flags&FileHasBOM == 0 || f.Flags&FileHasCRLF == 0 || f.Flags&FileVirtual != 0 {
		t.Fatalf("flags = %b", f.Flags)
	}
	// \r\n, \r и \n - три строки и хвост
	if len(f.LineIdx) != 3 {
		t.Fatalf("line index = %v", f.LineIdx)
	}
	if got := f.GetLine(1); got != syntax.BOM+"a" {
		t.Fatalf("line 1 = %q", got)
	}
	if got := f.GetLine(2); got != "b" {
		t.Fatalf("line 2 = %q", got)
	}
	if got := f.GetLine(3); got != "c" {
		t.Fatalf("line 3 = %q", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSetFs(afero.NewMemMapFs())
	id := fs.AddVirtual("v.grit", []byte("ab\ncd\n\nx"))
	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{1, 1}},
		{2, LineCol{1, 3}}, // сам \n принадлежит первой строке
		{3, LineCol{2, 1}},
		{4, LineCol{2, 2}},
		{6, LineCol{3, 1}},
		{7, LineCol{4, 1}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("Resolve(%d) = %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		a, b Span
		want bool
	}{
		{Span{0, 0, 4}, Span{0, 2, 6}, true},
		{Span{0, 0, 4}, Span{0, 4, 6}, false},
		{Span{0, 2, 2}, Span{0, 0, 4}, true},
		{Span{0, 4, 4}, Span{0, 0, 4}, false},
		{Span{0, 2, 2}, Span{0, 2, 2}, false},
		{Span{0, 0, 4}, Span{1, 0, 4}, false},
	}
	for _, tt := range tests {
		if got := tt.a.Overlaps(tt.b); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v", tt.a, tt.b, got)
		}
		if got := tt.b.Overlaps(tt.a); got != tt.want {
			t.Errorf("%v.Overlaps(%v) = %v (symmetric)", tt.b, tt.a, got)
		}
	}
	s := SpanOf(3, syntax.TextRange{Start: 1, End: 5})
	if s.Range() != (syntax.TextRange{Start: 1, End: 5}) || s.File != 3 {
		t.Fatalf("SpanOf = %+v", s)
	}
}

func TestWrite(t *testing.T) {
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, "/w/a.grit", []byte("old"), 0o600); err != nil {
		t.Fatal(err)
	}
	fs := NewFileSetFs(mem)
	id, err := fs.Load("/w/a.grit")
	if err != nil {
		t.Fatal(err)
	}
	if err := fs.Write(id, []byte("new")); err != nil {
		t.Fatalf("write: %v", err)
	}
	got, _ := afero.ReadFile(mem, "/w/a.grit")
	if string(got) != "new" {
		t.Fatalf("content = %q", got)
	}
	v := fs.AddVirtual("stdin", nil)
	if err := fs.Write(v, []byte("x")); err == nil {
		t.Fatalf("virtual files must not be written")
	}
}
