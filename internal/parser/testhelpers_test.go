package parser

import (
	"fmt"
	"strings"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parseSource(t *testing.T, src string, opts Options) (Result, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.grit", []byte(src))
	bag := diag.NewBag(0)
	if opts.Reporter == nil {
		opts.Reporter = diag.BagReporter{Bag: bag}
	}
	res, err := ParseFile(fs.Get(id), opts)
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", src, err)
	}
	if got := res.Green.Text(); got != src {
		t.Fatalf("round-trip mismatch:\n got %q\nwant %q", got, src)
	}
	return res, bag
}

// mustParse разбирает исходник без ошибок
func mustParse(t *testing.T, src string) Result {
	t.Helper()
	res, bag := parseSource(t, src, Options{})
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %s", src, diagnosticsSummary(bag))
	}
	return res
}

func firstDefinition(t *testing.T, res Result) *syntax.Node {
	t.Helper()
	defs := res.Root.Definitions()
	def, ok := defs.First()
	if !ok {
		t.Fatalf("no definitions in %q", res.Green.Text())
	}
	return def.Syntax()
}

// shape печатает дерево узлов в виде s-выражения, без токенов и пустых слотов
func shape(n *syntax.Node) string {
	var sb strings.Builder
	writeShape(&sb, n)
	return sb.String()
}

func writeShape(sb *strings.Builder, n *syntax.Node) {
	sb.WriteString("(")
	sb.WriteString(strings.TrimPrefix(n.KindName(), "GRIT_"))
	for _, child := range n.ChildNodes() {
		sb.WriteString(" ")
		writeShape(sb, child)
	}
	sb.WriteString(")")
}

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

func codesOf(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}
