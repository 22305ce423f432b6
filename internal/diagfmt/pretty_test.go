package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/source"
)

func renderPretty(t *testing.T, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) string {
	t.Helper()
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	return buf.String()
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("$x = \"unterminated string\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.grit", content)
	fs.SetBaseDir("/home/user/project")

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fileID, Start: 5, End: 25}, "Unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.grit:1:6"},
		{"relative", PathModeRelative, "src/test.grit:1:6"},
		{"basename", PathModeBasename, "test.grit:1:6"},
	}
	for _, tt := range tests {
		out := renderPretty(t, bag, fs, PrettyOpts{Context: 1, PathMode: tt.mode})
		for _, want := range []string{tt.contains, "ERROR", "LEX1002", "Unterminated string literal"} {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: output lacks %q:\n%s", tt.name, want, out)
			}
		}
	}
}

// TestPathModeAuto проверяет авто-режим выбора пути
func TestPathModeAuto(t *testing.T) {
	fs := source.NewFileSet()
	tests := []struct {
		path string
		want string
	}{
		{"test.grit", "test.grit:1:"},
		{"/very/long/absolute/path/to/some/nested/directory/file.grit", "\nfile.grit:1:"},
	}
	for _, tt := range tests {
		fileID := fs.AddVirtual(tt.path, []byte("$x = 42\n"))
		bag := diag.NewBag(10)
		bag.Add(diag.New(diag.SevWarning, diag.LexUnknownChar, source.Span{File: fileID, Start: 5, End: 7}, "Test warning"))
		out := "\n" + renderPretty(t, bag, fs, PrettyOpts{PathMode: PathModeAuto})
		if !strings.Contains(out, tt.want) {
			t.Fatalf("path %s: output lacks %q:\n%s", tt.path, tt.want, out)
		}
	}
}

func TestPrettyCaretWidths(t *testing.T) {
	tests := []struct {
		src        string
		start, end uint32
		pad        int
		caret      string
	}{
		{"$x = 1 + $y\n", 9, 11, 9, "^~"},
		// широкие символы занимают две колонки
		{"\"日本\" + $y\n", 11, 13, 9, "^~"},
		{"$x = 1", 5, 5, 5, "^"},
	}
	for _, tt := range tests {
		fs := source.NewFileSet()
		fileID := fs.AddVirtual("w.grit", []byte(tt.src))
		bag := diag.NewBag(1)
		bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: tt.start, End: tt.end}, "here"))
		out := renderPretty(t, bag, fs, PrettyOpts{})
		want := "\n   | " + strings.Repeat(" ", tt.pad) + tt.caret + "\n"
		if !strings.Contains(out, want) {
			t.Fatalf("%q: output lacks caret line %q:\n%s", tt.src, want, out)
		}
		if !strings.Contains(out, " 1 | "+strings.TrimSuffix(tt.src, "\n")+"\n") {
			t.Fatalf("%q: output lacks the source line:\n%s", tt.src, out)
		}
	}
}

func TestPrettyContextAndWidth(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.grit", []byte("$a = 1\n$b = 2\n$c = 3\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 7, End: 9}, "here"))

	out := renderPretty(t, bag, fs, PrettyOpts{Context: 1})
	for _, want := range []string{" 1 | $a = 1\n", " 2 | $b = 2\n", " 3 | $c = 3\n"} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
	out = renderPretty(t, bag, fs, PrettyOpts{Width: 4})
	if !strings.Contains(out, " 2 | $b …\n") {
		t.Fatalf("line not clipped:\n%s", out)
	}
	if strings.Contains(out, "$a = 1") {
		t.Fatalf("context printed without Context:\n%s", out)
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("c.grit", []byte("$a\n"))
	bag := diag.NewBag(1)
	bag.Add(diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 0, End: 2}, "here"))
	if out := renderPretty(t, bag, fs, PrettyOpts{Color: true}); !strings.Contains(out, "\x1b[") {
		t.Fatalf("no escape codes with Color:\n%q", out)
	}
	if out := renderPretty(t, bag, fs, PrettyOpts{}); strings.Contains(out, "\x1b[") {
		t.Fatalf("escape codes without Color:\n%q", out)
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("$x = foo(1,,2)\n")
	fileID := fs.AddVirtual("test.grit", content)

	bag := diag.NewBag(4)
	primary := source.Span{File: fileID, Start: 11, End: 11}
	d := diag.New(diag.SevWarning, diag.LintEmptyListItem, primary, "empty list item")
	d = d.WithNote(source.Span{File: fileID, Start: 10, End: 11}, "separator here")
	d = d.WithFix("insert item", diag.TextEdit{Span: primary, NewText: "0"})
	d = d.WithFixSuggestion(fix.DeleteSpan("remove separator", source.Span{File: fileID, Start: 10, End: 11}, ",",
		fix.WithID("remove-sep-001"), fix.Preferred()))
	bag.Add(d)

	out := renderPretty(t, bag, fs, PrettyOpts{
		PathMode:    PathModeBasename,
		ShowNotes:   true,
		ShowFixes:   true,
		ShowPreview: true,
	})
	for _, want := range []string{
		"note: test.grit:1:11: separator here",
		"fix #1: remove separator (always-safe) id=remove-sep-001 preferred",
		"fix #2: insert item",
		"edit: test.grit:1:12 apply=\"0\"",
		"preview:",
		"- $x = foo(1,,2)",
		"+ $x = foo(1,2)",
		"+ $x = foo(1,0,2)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output lacks %q:\n%s", want, out)
		}
	}
}
