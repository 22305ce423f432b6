package comments

import (
	"errors"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parse(t *testing.T, src string) *syntax.Node {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.grit", []byte(src))
	bag := diag.NewBag(0)
	res, err := parser.ParseFile(fs.Get(id), parser.Options{Reporter: diag.BagReporter{Bag: bag}})
	if err != nil {
		t.Fatalf("ParseFile(%q): %v", src, err)
	}
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics for %q: %d", src, bag.Len())
	}
	return res.Syntax()
}

// tokenByText находит первый токен с данным текстом
func tokenByText(t *testing.T, root *syntax.Node, text string) *syntax.Token {
	t.Helper()
	for tok := range root.Tokens() {
		if tok.Text() == text {
			return tok
		}
	}
	t.Fatalf("no token %q in %q", text, root.Text())
	return nil
}

func definition(t *testing.T, root *syntax.Node) *syntax.Node {
	t.Helper()
	for n := range root.Descendants() {
		if n.KindName() == "GRIT_REWRITE" || n.KindName() == "GRIT_ASSIGNMENT_AS_PATTERN" {
			return n
		}
	}
	t.Fatalf("no rewrite or assignment in %q", root.Text())
	return nil
}

func texts(cs []Comment) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.Text
	}
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOfClassifiesBands(t *testing.T) {
	src := "`a`\n\n// one\n/* two */ => `b` // tail\n"
	root := parse(t, src)

	arrow := Of(tokenByText(t, root, "=>"))
	if len(arrow) != 2 {
		t.Fatalf("comments of '=>': got %d, want 2", len(arrow))
	}
	want := []struct {
		text  string
		kind  Kind
		pl    Placement
		lines int
	}{
		{"// one", Line, Leading, 2},
		{"/* two */", Block, Leading, 1},
	}
	for i, w := range want {
		c := arrow[i]
		if c.Text != w.text || c.Kind != w.kind || c.Placement != w.pl || c.LinesBefore != w.lines {
			t.Fatalf("comment %d: got %s, want %q %s %s lines=%d", i, c, w.text, w.kind, w.pl, w.lines)
		}
		if got := src[c.Range.Start:c.Range.End]; got != c.Text {
			t.Fatalf("comment %d: range %s covers %q, want %q", i, c.Range, got, c.Text)
		}
		if c.Owner.Text() != "=>" {
			t.Fatalf("comment %d: owner %q", i, c.Owner.Text())
		}
	}

	tail := Of(tokenByText(t, root, "`b`"))
	if len(tail) != 1 || tail[0].Placement != Trailing || tail[0].Kind != Line || tail[0].LinesBefore != 0 {
		t.Fatalf("comments of `b`: %v", tail)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		in   syntax.TriviaKind
		want Kind
		ok   bool
	}{
		{syntax.TriviaLineComment, Line, true},
		{syntax.TriviaBlockComment, Block, true},
		{syntax.TriviaWhitespace, 0, false},
		{syntax.TriviaNewline, 0, false},
		{syntax.TriviaShebang, 0, false},
		{syntax.TriviaBOM, 0, false},
	}
	for _, tt := range tests {
		got, ok := Classify(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Fatalf("Classify(%s) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLeadingComments(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"// head\n`a` => `b`", []string{"// head"}},
		{"/* same line */ `a` => `b`", nil},
		{"\n/* own line */\n`a` => `b`", []string{"/* own line */"}},
		{"/* x */ // y\n`a` => `b`", []string{"// y"}},
		{"`a` => `b`", nil},
	}
	for _, tt := range tests {
		root := parse(t, tt.src)
		got := texts(LeadingComments(definition(t, root)))
		if !equalStrings(got, tt.want) {
			t.Fatalf("LeadingComments(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestTrailingComments(t *testing.T) {
	tests := []struct {
		src  string
		want []string
	}{
		{"`a` => `b` // tail\n", []string{"// tail"}},
		{"`a` => `b` /* x */ /* y */", []string{"/* x */", "/* y */"}},
		{"`a` => `b`\n// next line\n", nil},
	}
	for _, tt := range tests {
		root := parse(t, tt.src)
		got := texts(TrailingComments(definition(t, root)))
		if !equalStrings(got, tt.want) {
			t.Fatalf("TrailingComments(%q) = %q, want %q", tt.src, got, tt.want)
		}
	}
}

func TestHasLeadingLineBreak(t *testing.T) {
	root := parse(t, "\n`a` => `b`")
	if !HasLeadingLineBreak(definition(t, root)) {
		t.Fatalf("expected a leading line break")
	}
	root = parse(t, "`a` => `b`")
	if HasLeadingLineBreak(definition(t, root)) {
		t.Fatalf("unexpected leading line break")
	}
	if HasLeadingLineBreak(nil) {
		t.Fatalf("nil node has no line break")
	}
}

func TestIndexOwnsEachCommentOnce(t *testing.T) {
	src := "// a\n`x` /* b */ => `y` // c\n/* d */\n"
	root := parse(t, src)
	idx, err := Build(root)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if idx.Len() != 4 {
		t.Fatalf("Len = %d, want 4", idx.Len())
	}
	total := 0
	for tok := range root.Tokens() {
		owned := idx.Owned(tok)
		if !equalStrings(texts(owned), texts(Of(tok))) {
			t.Fatalf("Owned(%q) = %q, want %q", tok.Text(), texts(owned), texts(Of(tok)))
		}
		total += len(owned)
	}
	if total != idx.Len() {
		t.Fatalf("owned total %d, index %d", total, idx.Len())
	}
	all := idx.All()
	for i, c := range all {
		got, ok := idx.At(c.Range.Start)
		if !ok || got.Text != c.Text {
			t.Fatalf("At(%d) = %v, %v", c.Range.Start, got, ok)
		}
		if i > 0 && all[i-1].Range.End > c.Range.Start {
			t.Fatalf("comments out of order: %s then %s", all[i-1], c)
		}
	}
	// "/* d */" на отдельной строке висит на EOF
	d, _ := idx.At(uint32(len(src) - len("/* d */\n")))
	if d.Text != "/* d */" || d.Owner.Text() != "" || d.Placement != Leading {
		t.Fatalf("last comment: %s owner %q", d, d.Owner.Text())
	}
	inside := idx.Within(definition(t, root).TextRange())
	if !equalStrings(texts(inside), []string{"// a", "/* b */", "// c"}) {
		t.Fatalf("Within = %q", texts(inside))
	}
}

func TestEditTransitions(t *testing.T) {
	root := parse(t, "$x = 1")
	eq := tokenByText(t, root, "=")

	tests := []struct {
		name  string
		steps []func(*Edits) error
		final State
		fail  bool
	}{
		{"remove", []func(*Edits) error{remove(eq)}, Removed, false},
		{"replace", []func(*Edits) error{replace(eq, "+=")}, Replaced, false},
		{"replace then remove", []func(*Edits) error{replace(eq, "+="), remove(eq)}, Removed, false},
		{"remove twice", []func(*Edits) error{remove(eq), remove(eq)}, Removed, true},
		{"replace after remove", []func(*Edits) error{remove(eq), replace(eq, "+=")}, Removed, true},
		{"replace twice", []func(*Edits) error{replace(eq, "+="), replace(eq, "==")}, Replaced, true},
	}
	for _, tt := range tests {
		e := NewEdits()
		var err error
		for _, step := range tt.steps {
			if err = step(e); err != nil {
				break
			}
		}
		if tt.fail != (err != nil) {
			t.Fatalf("%s: err = %v, want failure %v", tt.name, err, tt.fail)
		}
		if err != nil && !errors.Is(err, ErrInvalidTransition) {
			t.Fatalf("%s: err = %v, want ErrInvalidTransition", tt.name, err)
		}
		if got := e.State(eq).State; got != tt.final {
			t.Fatalf("%s: state = %s, want %s", tt.name, got, tt.final)
		}
	}

	var zero Edits
	if zero.State(eq).State != Kept {
		t.Fatalf("zero Edits must keep tokens")
	}
	if err := zero.Replace(eq, "+="); err != nil || zero.State(eq).Text != "+=" {
		t.Fatalf("zero Edits Replace: %v", err)
	}
}

func remove(tok *syntax.Token) func(*Edits) error {
	return func(e *Edits) error { return e.Remove(tok) }
}

func replace(tok *syntax.Token, text string) func(*Edits) error {
	return func(e *Edits) error { return e.Replace(tok, text) }
}

func TestRelocate(t *testing.T) {
	root := parse(t, "$x\n/* lead */ = /* trail */ 1")
	x := tokenByText(t, root, "$x")
	eq := tokenByText(t, root, "=")
	one := tokenByText(t, root, "1")

	e := NewEdits()
	if err := e.Remove(eq); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	rel := Relocate(root, e)
	if got := texts(rel.For(x).Trailing); !equalStrings(got, []string{"/* trail */"}) {
		t.Fatalf("trailing of $x = %q", got)
	}
	if got := texts(rel.For(one).Leading); !equalStrings(got, []string{"/* lead */"}) {
		t.Fatalf("leading of 1 = %q", got)
	}
	if lead := rel.For(one).Leading[0]; lead.LinesBefore != 1 {
		t.Fatalf("relocated comment lost lines_before: %s", lead)
	}
	if rel.Len() != 2 || len(rel.Orphans) != 0 {
		t.Fatalf("Len = %d, orphans %d", rel.Len(), len(rel.Orphans))
	}
}

func TestRelocateSkipsRemovedNeighbours(t *testing.T) {
	root := parse(t, "$x = /* a */ 1 /* b */ + 2")
	e := NewEdits()
	for _, text := range []string{"=", "1", "+"} {
		if err := e.Remove(tokenByText(t, root, text)); err != nil {
			t.Fatalf("Remove(%q): %v", text, err)
		}
	}
	rel := Relocate(root, e)
	// все хвостовые комментарии удалённых токенов уходят к $x
	if got := texts(rel.For(tokenByText(t, root, "$x")).Trailing); !equalStrings(got, []string{"/* a */", "/* b */"}) {
		t.Fatalf("trailing of $x = %q", got)
	}
	if got := rel.For(tokenByText(t, root, "2")).Leading; len(got) != 0 {
		t.Fatalf("leading of 2 = %q", texts(got))
	}
}
