package gritgen

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

const miniGrammar = `// tiny
Root =
	items: ItemList
	eof: 'EOF'

ItemList = AnyItem (',' AnyItem)* ','?

AnyItem = Pair | Word | BogusItem | AnyValue

AnyValue = Number | Word

Pair =
	key: Word
	'='
	value: AnyValue?

Word = value: 'ident'
Number = value: 'grit_int'
Words = Word*

Bogus = SyntaxElement*
BogusItem = SyntaxElement*
`

func mustParse(t *testing.T, src string) *Grammar {
	t.Helper()
	g, err := Parse(src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return g
}

func TestClassify(t *testing.T) {
	g := mustParse(t, miniGrammar)
	nodes, unions, lists, bogus := g.Stats()
	if nodes != 4 || unions != 2 || lists != 2 || bogus != 2 {
		t.Fatalf("stats = %d/%d/%d/%d", nodes, unions, lists, bogus)
	}
	if l := g.lists["ItemList"]; l.Element != "AnyItem" || l.Separator != "," || !l.Trailing {
		t.Fatalf("ItemList = %+v", l)
	}
	if l := g.lists["Words"]; l.Element != "Word" || l.Separator != "" {
		t.Fatalf("Words = %+v", l)
	}
	slots := g.nodes["Pair"]
	want := []struct {
		name     string
		kind     SlotKind
		optional bool
	}{
		{"key", SlotNode, false},
		{"eq_token", SlotToken, false},
		{"value", SlotNode, true},
	}
	if len(slots) != len(want) {
		t.Fatalf("Pair slots = %+v", slots)
	}
	for i, w := range want {
		if slots[i].Name != w.name || slots[i].Kind != w.kind || slots[i].Optional != w.optional {
			t.Fatalf("slot %d = %+v, want %+v", i, slots[i], w)
		}
	}
}

func TestClosureAndBogus(t *testing.T) {
	g := mustParse(t, miniGrammar)
	got := strings.Join(g.closure("AnyItem"), ",")
	if got != "Pair,Word,BogusItem,Number" {
		t.Fatalf("closure = %s", got)
	}
	if got := strings.Join(g.unionsOf("Word"), ","); got != "AnyItem,AnyValue" {
		t.Fatalf("unionsOf(Word) = %s", got)
	}
	tests := map[string]string{
		"Pair":   "BogusItem",
		"Number": "BogusItem", // AnyValue has no bogus member, AnyItem does
		"Root":   "Bogus",
	}
	for name, want := range tests {
		if got := g.bogusOf(name); got != want {
			t.Fatalf("bogusOf(%s) = %s, want %s", name, got, want)
		}
	}
}

func TestSchemaErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown type", "A = b: Missing\n", "unknown type"},
		{"unknown token", "A = '@@'\n", "unknown token"},
		{"duplicate slot", "A = x: 'ident' x: 'ident'\n", "duplicate slot"},
		{"unterminated", "A = 'ident\n", "unterminated"},
		{"orphan line", "\tfoo\n", "continuation"},
		{"list in union", "A = B | L\nB = 'ident'\nL = B*\n", "cannot be a union member"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestNaming(t *testing.T) {
	if got := snake("PatternIfElse"); got != "pattern_if_else" {
		t.Fatalf("snake = %s", got)
	}
	if got := regName("BogusMapElement"); got != "GRIT_BOGUS_MAP_ELEMENT" {
		t.Fatalf("regName = %s", got)
	}
	if got := paramName("map"); got != "mapArg" {
		t.Fatalf("paramName = %s", got)
	}
	if got := paramName("if_predicate"); got != "ifPredicate" {
		t.Fatalf("paramName = %s", got)
	}
	for tok, want := range map[string]string{
		"+=":            "KindPlusEq",
		".":             "KindPeriod",
		"js_do_not_use": "KindJsDoNotUseKw",
		"dollar_ident":  "KindDollarIdent",
	} {
		got, err := tokenConst(tok)
		if err != nil || got != want {
			t.Fatalf("tokenConst(%q) = %s, %v", tok, got, err)
		}
	}
}

func TestGenerateMini(t *testing.T) {
	g := mustParse(t, miniGrammar)
	files, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	checks := map[string][]string{
		fileKinds:    {"KindRoot syntax.Kind = firstNodeKind + iota", "kindCount"},
		fileRegistry: {`Bogus: KindBogusItem`, `AllowTrailing: true`, `{Name: "value", Accepts: AnyValueKinds}`},
		fileUnions:   {"var AnyItemKinds = syntax.KindSetOf(KindPair, KindWord, KindBogusItem).Union(AnyValueKinds)", "return v.(AnyItem), true"},
		fileNodes:    {"func (Number) isAnyItem() {}", "func (Number) isAnyValue() {}", "func (n Pair) Value() (AnyValue, bool)"},
		fileLists:    {"type ItemList = ast.SeparatedList[AnyItem]", "type Words = ast.List[Word]", "return Bogus{n}"},
		fileFactory:  {"func (f Factory) Pair(key *syntax.GreenNode, eqToken *syntax.GreenToken, value *syntax.GreenNode) *syntax.GreenNode"},
	}
	for name, subs := range checks {
		src := string(files[name])
		for _, s := range subs {
			if !strings.Contains(src, s) {
				t.Fatalf("%s: missing %q\n%s", name, s, src)
			}
		}
	}
}

func TestWriteAndCheck(t *testing.T) {
	g := mustParse(t, miniGrammar)
	files, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	fs := afero.NewMemMapFs()

	var stale *StaleError
	if err := Check(fs, "out", files); !errors.As(err, &stale) || len(stale.Files) != len(files) {
		t.Fatalf("check on empty dir = %v", err)
	}
	changed, err := Write(fs, "out", files)
	if err != nil || len(changed) != len(files) {
		t.Fatalf("write = %v, %v", changed, err)
	}
	if err := Check(fs, "out", files); err != nil {
		t.Fatalf("check after write: %v", err)
	}
	changed, err = Write(fs, "out", files)
	if err != nil || len(changed) != 0 {
		t.Fatalf("second write = %v, %v", changed, err)
	}

	if err := afero.WriteFile(fs, "out/"+fileKinds, []byte("package grit\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	err = Check(fs, "out", files)
	if !errors.As(err, &stale) || len(stale.Files) != 1 || stale.Files[fileKinds] == "" {
		t.Fatalf("check after edit = %v", err)
	}
}

func TestGrammarFileGenerates(t *testing.T) {
	src, err := os.ReadFile("../grit/grit.ungram")
	if err != nil {
		t.Skipf("grammar not found: %v", err)
	}
	g := mustParse(t, string(src))
	files, err := g.Generate()
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !strings.Contains(string(files[fileUnions]), "func CastAnyPattern(n *syntax.Node) (AnyPattern, bool)") {
		t.Fatal("AnyPattern cast missing")
	}
	if !strings.Contains(string(files[fileFactory]), "mapArg") {
		t.Fatal("go keyword slot name not escaped")
	}
}
