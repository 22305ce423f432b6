package testkit

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Node {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("inv.grit", []byte(src)))
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.NopReporter{}, MaxErrors: 64})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return res.Syntax()
}

func TestInvariantsHoldOnParsedTrees(t *testing.T) {
	sources := []string{
		"`a` => `b`",
		"// head\nengine biome(1.0)\nlanguage js\n\npattern p($x) { `f($x)` where { $x <: 1 } } // tail\n",
		"[1, 2, /* last */ ]",
		"foo(1,,2)",
		"$x = ( /* one */ 1)\r\n",
		"",
	}
	for _, src := range sources {
		root := parse(t, src)
		if vs := Check(root, []byte(src)); len(vs) != 0 {
			t.Fatalf("Check(%q): %v", src, Err(vs))
		}
	}
}

func TestRoundTripMismatch(t *testing.T) {
	root := parse(t, "$x = 1")
	vs := CheckRoundTrip(root, []byte("$x = 2"))
	if len(vs) != 1 || vs[0].Code != diag.TreeRoundTrip {
		t.Fatalf("violations = %v", vs)
	}
	if vs[0].Range.Start != 5 {
		t.Fatalf("mismatch at %d, want 5", vs[0].Range.Start)
	}
}

func TestSlotLayoutViolation(t *testing.T) {
	f := grit.NewFactory(syntax.NewCache())
	// запятая в слоте шаблона
	bad := syntax.NewCache().Node(grit.KindBracketedPattern, []syntax.GreenElement{
		f.Punct(grit.KindLParen),
		f.Punct(grit.KindComma),
		f.Punct(grit.KindRParen),
	})
	root := syntax.NewRoot(grit.Registry, bad)
	vs := CheckSlotLayout(root)
	if len(vs) != 1 || vs[0].Code != diag.TreeSlotLayout {
		t.Fatalf("violations = %v", vs)
	}
	if vs[0].Range != (syntax.TextRange{Start: 1, End: 2}) {
		t.Fatalf("range = %s", vs[0].Range)
	}
}

func TestReportViolations(t *testing.T) {
	bag := diag.NewBag(8)
	Report(diag.BagReporter{Bag: bag}, 1, []Violation{{Code: diag.TreeOffsetOrder, Msg: "gap"}})
	if bag.Len() != 1 || !bag.HasErrors() {
		t.Fatalf("bag = %v", bag.Items())
	}
	if Err(nil) != nil {
		t.Fatalf("Err(nil) != nil")
	}
}
