package syntax

import (
	"errors"
	"runtime"
	"slices"
	"strings"
	"testing"
)

const (
	kIdent Kind = iota + 1
	kPlus
	kComma
	kEOF
	kRoot
	kAdd
	kList
	kWrap
	kBogus
)

func testRegistry() *Registry {
	return NewRegistry("test", []KindInfo{
		{Kind: kIdent, Name: "IDENT", Family: FamilyToken, Class: ClassLiteral},
		{Kind: kPlus, Name: "PLUS", Family: FamilyToken, Class: ClassPunct, Text: "+"},
		{Kind: kComma, Name: "COMMA", Family: FamilyToken, Class: ClassPunct, Text: ","},
		{Kind: kEOF, Name: "EOF", Family: FamilyToken, Class: ClassSpecial},
		{Kind: kRoot, Name: "ROOT", Family: FamilyNode, Bogus: kBogus, Slots: []SlotInfo{
			{Name: "body", Required: true, Accepts: KindSetOf(kAdd, kList, kWrap, kBogus)},
			{Name: "eof", Required: true, Accepts: KindSetOf(kEOF)},
		}},
		{Kind: kAdd, Name: "ADD", Family: FamilyNode, Bogus: kBogus, Slots: []SlotInfo{
			{Name: "left", Required: true, Accepts: KindSetOf(kIdent)},
			{Name: "plus_token", Required: true, Accepts: KindSetOf(kPlus)},
			{Name: "right", Required: true, Accepts: KindSetOf(kIdent)},
		}},
		{Kind: kList, Name: "LIST", Family: FamilyList, Bogus: kBogus, List: ListInfo{
			Element: KindSetOf(kIdent), Separator: kComma, AllowTrailing: true,
		}},
		{Kind: kWrap, Name: "WRAP", Family: FamilyNode, Bogus: kBogus, Slots: []SlotInfo{
			{Name: "inner", Accepts: KindSetOf(kWrap, kIdent)},
		}},
		{Kind: kBogus, Name: "BOGUS", Family: FamilyBogus},
	})
}

func ws(s string) Trivia { return Trivia{Kind: TriviaWhitespace, Text: s} }
func nl() Trivia         { return Trivia{Kind: TriviaNewline, Text: "\n"} }

// buildAdd строит "a + b" с EOF в корне.
func buildAdd(t *testing.T, c *Cache) *Node {
	t.Helper()
	b := NewBuilder(c, testRegistry())
	b.StartNode(kRoot)
	b.StartNode(kAdd)
	_ = b.Token(kIdent, "a", nil, []Trivia{ws(" ")})
	_ = b.Token(kPlus, "+", nil, []Trivia{ws(" ")})
	_ = b.Token(kIdent, "b", nil, nil)
	b.FinishNode()
	_ = b.Token(kEOF, "", []Trivia{nl()}, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	return NewRoot(testRegistry(), g)
}

func TestKindSet(t *testing.T) {
	s := KindSetOf(3, 70, 511)
	if !s.Contains(70) || s.Contains(71) {
		t.Fatalf("membership broken: %v", s.Kinds())
	}
	if s.Len() != 3 {
		t.Fatalf("len = %d, want 3", s.Len())
	}
	u := s.Union(KindSetOf(1, 3))
	if got := u.Kinds(); !slices.Equal(got, []Kind{1, 3, 70, 511}) {
		t.Fatalf("union kinds = %v", got)
	}
	if !s.Intersect(KindSetOf(4)).IsEmpty() {
		t.Fatalf("intersection must be empty")
	}
	if s.Contains(9000) {
		t.Fatalf("out of range kind must not be contained")
	}
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for kind >= MaxSetKind")
		}
	}()
	_ = KindSetOf(MaxSetKind)
}

func TestValidateTrivia(t *testing.T) {
	bom := Trivia{Kind: TriviaBOM, Text: BOM}
	shebang := Trivia{Kind: TriviaShebang, Text: "#!/usr/bin/env node"}
	tests := []struct {
		name     string
		leading  []Trivia
		trailing []Trivia
		first    bool
		ok       bool
	}{
		{"bom first", []Trivia{bom, shebang, nl()}, nil, true, true},
		{"bom not first token", []Trivia{bom}, nil, false, false},
		{"bom second trivium", []Trivia{ws(" "), bom}, nil, true, false},
		{"bom trailing", nil, []Trivia{bom}, true, false},
		{"shebang first", []Trivia{shebang}, nil, true, true},
		{"shebang after space", []Trivia{ws(" "), shebang}, nil, true, false},
		{"double newline", []Trivia{{Kind: TriviaNewline, Text: "\n\n"}}, nil, false, false},
		{"crlf", []Trivia{{Kind: TriviaNewline, Text: "\r\n"}}, nil, false, true},
		{"newline inside whitespace", []Trivia{ws(" \n")}, nil, false, false},
		{"line comment with break", []Trivia{{Kind: TriviaLineComment, Text: "// a\n"}}, nil, false, false},
		{"multiline block", nil, []Trivia{{Kind: TriviaBlockComment, Text: "/* a\nb */"}}, false, true},
		{"block with invalid utf-8", []Trivia{{Kind: TriviaBlockComment, Text: "/* \xff */"}}, nil, false, true},
		{"unterminated block", nil, []Trivia{{Kind: TriviaBlockComment, Text: "/* open"}}, false, true},
		{"line comment without slashes", []Trivia{{Kind: TriviaLineComment, Text: "x"}}, nil, false, false},
		{"line comment of spaces", []Trivia{{Kind: TriviaLineComment, Text: "   "}}, nil, false, false},
		{"block comment without opener", nil, []Trivia{{Kind: TriviaBlockComment, Text: "hello"}}, false, false},
		{"block comment of a space", nil, []Trivia{{Kind: TriviaBlockComment, Text: " "}}, false, false},
		{"empty", []Trivia{{Kind: TriviaWhitespace}}, nil, false, false},
		{"unknown kind", []Trivia{{Kind: 42, Text: "x"}}, nil, false, false},
	}
	for _, tt := range tests {
		err := ValidateTrivia(tt.leading, tt.trailing, tt.first)
		if (err == nil) != tt.ok {
			t.Fatalf("%s: err = %v, want ok=%v", tt.name, err, tt.ok)
		}
		if err != nil {
			var te *InvalidTriviaError
			if !errors.As(err, &te) {
				t.Fatalf("%s: error %T is not InvalidTriviaError", tt.name, err)
			}
		}
	}
}

func TestCacheFirstTokenRules(t *testing.T) {
	c := NewCache()
	bom := []Trivia{{Kind: TriviaBOM, Text: BOM}, {Kind: TriviaShebang, Text: "#!/bin/grit"}, nl()}
	if _, err := c.Token(kIdent, "a", bom, nil); err == nil {
		t.Fatalf("Token accepted a BOM outside the first position")
	}
	first, err := c.FirstToken(kIdent, "a", bom, nil)
	if err != nil {
		t.Fatalf("FirstToken: %v", err)
	}
	if _, err := first.WithTrailing(c, []Trivia{ws(" ")}); err != nil {
		t.Fatalf("WithTrailing on the first token: %v", err)
	}
	if _, err := first.WithTrailing(c, []Trivia{{Kind: TriviaBOM, Text: BOM}}); err == nil {
		t.Fatalf("WithTrailing accepted a trailing BOM")
	}
	if _, err := first.WithLeading(c, bom); err == nil {
		t.Fatalf("WithLeading moved a BOM without the first-token path")
	}
}

func TestCacheInternsTokensAndNodes(t *testing.T) {
	c := NewCache()
	a1 := c.MustToken(kIdent, "a", nil, []Trivia{ws(" ")})
	a2 := c.MustToken(kIdent, "a", nil, []Trivia{ws(" ")})
	a3 := c.MustToken(kIdent, "a", nil, nil)
	if a1 != a2 {
		t.Fatalf("equal tokens must be shared")
	}
	if a1 == a3 {
		t.Fatalf("tokens with different trivia must differ")
	}
	n1 := c.Node(kWrap, []GreenElement{a1})
	n2 := c.Node(kWrap, []GreenElement{a2})
	if n1 != n2 {
		t.Fatalf("equal nodes must be shared")
	}
	if n3 := c.Node(kWrap, []GreenElement{nil}); n3 == n1 {
		t.Fatalf("empty slot must differ from a present child")
	}
	st := c.Stats()
	if st.TokenHits != 1 || st.NodeHits != 1 {
		t.Fatalf("stats = %+v", st)
	}
	if n1.TextLen() != 2 || n1.Text() != "a " {
		t.Fatalf("node text = %q (%d)", n1.Text(), n1.TextLen())
	}
}

func TestCacheHoldsEntriesWeakly(t *testing.T) {
	c := NewCache()
	func() {
		tok := c.MustToken(kIdent, "short-lived", nil, nil)
		_ = c.Node(kWrap, []GreenElement{tok})
	}()
	runtime.GC()
	runtime.GC()
	c.Prune()
	if n := c.Len(); n != 0 {
		t.Fatalf("cache keeps %d collected entries", n)
	}
}

func TestBuilderAlignsSlots(t *testing.T) {
	c := NewCache()
	b := NewBuilder(c, testRegistry())
	b.StartNode(kAdd)
	_ = b.Token(kPlus, "+", nil, nil)
	_ = b.Token(kIdent, "b", nil, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if g.Kind() != kAdd || g.SlotCount() != 3 {
		t.Fatalf("got kind %d with %d slots", g.Kind(), g.SlotCount())
	}
	if g.Slot(0) != nil {
		t.Fatalf("missing left must be an empty slot")
	}
	if g.Slot(1).Kind() != kPlus || g.Slot(2).Kind() != kIdent {
		t.Fatalf("slots misplaced")
	}
}

func TestBuilderDemotesMisfitToBogus(t *testing.T) {
	b := NewBuilder(NewCache(), testRegistry())
	b.StartNode(kAdd)
	_ = b.Token(kComma, ",", nil, nil)
	_ = b.Token(kComma, ",", nil, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if g.Kind() != kBogus || g.SlotCount() != 2 {
		t.Fatalf("got kind %d with %d slots, want bogus with 2", g.Kind(), g.SlotCount())
	}
}

func TestBuilderSeparatedListTrailingSlot(t *testing.T) {
	b := NewBuilder(NewCache(), testRegistry())
	b.StartNode(kList)
	_ = b.Token(kIdent, "a", nil, nil)
	_ = b.Token(kComma, ",", nil, nil)
	_ = b.Token(kIdent, "b", nil, nil)
	_ = b.Token(kComma, ",", nil, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if g.Kind() != kList || g.SlotCount() != 5 || g.Slot(4) != nil {
		t.Fatalf("trailing separator must be followed by an empty slot: kind=%d slots=%d", g.Kind(), g.SlotCount())
	}
}

func TestBuilderErrors(t *testing.T) {
	b := NewBuilder(NewCache(), testRegistry())
	b.FinishNode()
	if _, err := b.Finish(); !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("finish without start: err = %v", err)
	}

	b = NewBuilder(NewCache(), testRegistry())
	b.StartNode(kWrap)
	if _, err := b.Finish(); !errors.Is(err, ErrUnbalanced) {
		t.Fatalf("open node: err = %v", err)
	}

	b = NewBuilder(NewCache(), testRegistry())
	_ = b.Token(kIdent, "a", nil, nil)
	if _, err := b.Finish(); !errors.Is(err, ErrNoRoot) {
		t.Fatalf("token root: err = %v", err)
	}

	b = NewBuilder(NewCache(), testRegistry())
	b.StartNode(kWrap)
	_ = b.Token(kIdent, "a", nil, nil)
	b.FinishNode()
	b.StartNode(kWrap)
	if err := b.Token(kIdent, "b", []Trivia{{Kind: TriviaBOM, Text: BOM}}, nil); err == nil {
		t.Fatalf("BOM on the second token must be rejected")
	}

	b = NewBuilder(NewCache(), testRegistry())
	b.StartBogus(kAdd)
	if b.Err() == nil {
		t.Fatalf("StartBogus with a non-bogus kind must fail")
	}
}

func TestBuilderCheckpoint(t *testing.T) {
	b := NewBuilder(NewCache(), testRegistry())
	b.StartNode(kRoot)
	cp := b.Checkpoint()
	_ = b.Token(kIdent, "a", nil, nil)
	_ = b.Token(kPlus, "+", nil, nil)
	_ = b.Token(kIdent, "b", nil, nil)
	b.StartNodeAt(cp, kAdd)
	b.FinishNode()
	_ = b.Token(kEOF, "", nil, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	if g.Slot(0).Kind() != kAdd {
		t.Fatalf("checkpoint node not wrapped: %v", g.Slot(0))
	}
}

func TestRedNavigation(t *testing.T) {
	root := buildAdd(t, NewCache())
	if root.Text() != "a + b\n" {
		t.Fatalf("text = %q", root.Text())
	}
	add := root.SlotNode(0)
	if add == nil || add.Kind() != kAdd || add.Parent() != root || add.Index() != 0 {
		t.Fatalf("bad add node")
	}
	if root.SlotNode(0) != add {
		t.Fatalf("children must be cached per parent")
	}
	var toks []*Token
	for tok := range root.Tokens() {
		toks = append(toks, tok)
	}
	if len(toks) != 4 {
		t.Fatalf("tokens = %d", len(toks))
	}
	for i := 1; i < len(toks); i++ {
		if toks[i-1].TextRange().End != toks[i].TextRange().Start {
			t.Fatalf("token %d does not start where %d ends", i, i-1)
		}
	}
	if toks[1].TextTrimmedRange() != (TextRange{Start: 2, End: 3}) {
		t.Fatalf("plus trimmed range = %v", toks[1].TextTrimmedRange())
	}
	if toks[0].NextToken() != toks[1] || toks[3].PrevToken() != toks[2] || toks[3].NextToken() != nil {
		t.Fatalf("token siblings broken")
	}
	if add.TextTrimmed() != "a + b" {
		t.Fatalf("trimmed = %q", add.TextTrimmed())
	}
	var kinds []Kind
	for n := range root.Descendants() {
		kinds = append(kinds, n.Kind())
	}
	if !slices.Equal(kinds, []Kind{kRoot, kAdd}) {
		t.Fatalf("descendants = %v", kinds)
	}
	var anc []Kind
	for n := range toks[2].Ancestors() {
		anc = append(anc, n.Kind())
	}
	if !slices.Equal(anc, []Kind{kAdd, kRoot}) {
		t.Fatalf("ancestors = %v", anc)
	}
	if add.FirstToken() != toks[0] || add.LastToken() != toks[2] {
		t.Fatalf("first/last token broken")
	}
	if add.NextSibling() != Element(toks[3]) {
		t.Fatalf("next sibling of add must be EOF")
	}
}

func TestTokenAtOffsetAndCovering(t *testing.T) {
	root := buildAdd(t, NewCache())
	at := root.TokenAtOffset(2)
	if at.Left == nil || at.Right == nil || at.Left.Text() != "a" || at.Right.Text() != "+" {
		t.Fatalf("boundary lookup = %+v", at)
	}
	if tok, ok := root.TokenAtOffset(1).Single(); !ok || tok.Text() != "a" {
		t.Fatalf("offset 1 must hit a")
	}
	if !root.TokenAtOffset(100).None() {
		t.Fatalf("out of range must be none")
	}
	el := root.CoveringElement(TextRange{Start: 0, End: 3})
	if el.Kind() != kAdd {
		t.Fatalf("covering = %d", el.Kind())
	}
}

func TestReplaceRebuildsSpine(t *testing.T) {
	c := NewCache()
	root := buildAdd(t, c)
	var plus *Token
	for tok := range root.Tokens() {
		if tok.Kind() == kPlus {
			plus = tok
		}
	}
	g := Replace(c, plus, nil)
	if root.Text() != "a + b\n" {
		t.Fatalf("original tree changed: %q", root.Text())
	}
	if g.Text() != "a b\n" {
		t.Fatalf("new text = %q", g.Text())
	}
	if g.Slot(1) != root.Green().Slot(1) {
		t.Fatalf("untouched sibling must be shared")
	}
	spliced := root.SlotNode(0).Green().Splice(c, 1, 3)
	if spliced.SlotCount() != 1 || spliced.Text() != "a " {
		t.Fatalf("splice = %q", spliced.Text())
	}
}

func TestNodeEqualByPath(t *testing.T) {
	c := NewCache()
	g := buildAdd(t, c).Green()
	r1 := NewRoot(testRegistry(), g)
	r2 := NewRoot(testRegistry(), g)
	if r1.SlotNode(0) == r2.SlotNode(0) {
		t.Fatalf("separate roots must not share red nodes")
	}
	if !r1.SlotNode(0).Equal(r2.SlotNode(0)) {
		t.Fatalf("same green at the same path must be equal")
	}
}

func TestDumpDepthGuard(t *testing.T) {
	c := NewCache()
	var g GreenElement = c.MustToken(kIdent, "x", nil, nil)
	for range 40 {
		g = c.Node(kWrap, []GreenElement{g})
	}
	root := NewRoot(testRegistry(), g.(*GreenNode))
	out := root.Debug()
	if got := strings.Count(out, "\n"); got != DefaultDumpDepth+1 {
		t.Fatalf("dump has %d lines, want %d:\n%s", got, DefaultDumpDepth+1, out)
	}
	if !strings.HasSuffix(out, "0: <WRAP>\n") {
		t.Fatalf("dump must end with a stub:\n%s", out)
	}

	var sb strings.Builder
	if err := Dump(&sb, root, DumpOptions{MaxDepth: 64, Trivia: true}); err != nil {
		t.Fatalf("dump: %v", err)
	}
	if !strings.Contains(sb.String(), `IDENT@0..1 "x" [] []`) {
		t.Fatalf("deep dump must reach the token:\n%s", sb.String())
	}
}
