package format

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parseSource(t *testing.T, src string) (*source.File, *syntax.Node) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fmt.grit", []byte(src))
	sf := fs.Get(fileID)

	bag := diag.NewBag(128)
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if bag.HasErrors() {
		issues := make([]string, 0, bag.Len())
		for _, d := range bag.Items() {
			issues = append(issues, d.Code.String()+": "+d.Message)
		}
		t.Fatalf("parse failed: %v", issues)
	}
	return sf, res.Syntax()
}

func TestNormalizeCommas(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"foo($a  ,$b,$c , )", "foo($a, $b, $c,)"},
		{"[1,2 ,3]", "[1, 2, 3]"},
		{"{ a: 1,b: 2 }", "{ a: 1, b: 2 }"},
		{"foo($a,\n  $b)", "foo($a,\n  $b)"},
		{"foo($a, $b)", "foo($a, $b)"},
		// запятая рядом с комментарием не трогается
		{"foo($a /* x */ ,$b)", "foo($a /* x */ ,$b)"},
	}
	for _, tt := range tests {
		_, root := parseSource(t, tt.src)
		if got := string(NormalizeCommas(root)); got != tt.want {
			t.Fatalf("NormalizeCommas(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestRemoveTrailingCommas(t *testing.T) {
	tests := []struct {
		src   string
		want  string
		count int
	}{
		{"[1, 2, 3,]", "[1, 2, 3]", 1},
		{"foo($a, $b,)", "foo($a, $b)", 1},
		{"foo([1,], { a: 2, },)", "foo([1], { a: 2 })", 3},
		{"foo($a, $b)", "foo($a, $b)", 0},
		{"[1, 2, /* last */ ]", "[1, 2 /* last */ ]", 1},
	}
	for _, tt := range tests {
		_, root := parseSource(t, tt.src)
		edits := comments.NewEdits()
		n, err := RemoveTrailingCommas(root, edits)
		if err != nil {
			t.Fatalf("RemoveTrailingCommas(%q): %v", tt.src, err)
		}
		if n != tt.count {
			t.Fatalf("RemoveTrailingCommas(%q) marked %d, want %d", tt.src, n, tt.count)
		}
		if got := string(Print(root, Options{Edits: edits})); got != tt.want {
			t.Fatalf("print after RemoveTrailingCommas(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}
