package ast

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/vmihailenco/msgpack/v5"
	"gopkg.in/yaml.v3"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

const (
	kIdent syntax.Kind = iota + 1
	kComma
	kEq
	kPair
	kNames
	kBogus
)

var testReg = syntax.NewRegistry("test", []syntax.KindInfo{
	{Kind: kIdent, Name: "IDENT", Family: syntax.FamilyToken, Class: syntax.ClassLiteral},
	{Kind: kComma, Name: "COMMA", Family: syntax.FamilyToken, Class: syntax.ClassPunct, Text: ","},
	{Kind: kEq, Name: "EQ", Family: syntax.FamilyToken, Class: syntax.ClassPunct, Text: "="},
	{Kind: kPair, Name: "PAIR", Family: syntax.FamilyNode, Bogus: kBogus, Slots: []syntax.SlotInfo{
		{Name: "key", Required: true, Accepts: syntax.KindSetOf(kIdent)},
		{Name: "eq_token", Required: true, Accepts: syntax.KindSetOf(kEq)},
		{Name: "value", Accepts: syntax.KindSetOf(kNames)},
	}},
	{Kind: kNames, Name: "NAMES", Family: syntax.FamilyList, Bogus: kBogus, List: syntax.ListInfo{
		Element: syntax.KindSetOf(kPair, kBogus), Separator: kComma, AllowTrailing: true,
	}},
	{Kind: kBogus, Name: "BOGUS", Family: syntax.FamilyBogus},
})

type pair struct{ syntax *syntax.Node }

func castPair(n *syntax.Node) (pair, bool) {
	if n != nil && n.Kind() == kPair {
		return pair{n}, true
	}
	return pair{}, false
}

func (p pair) Syntax() *syntax.Node { return p.syntax }

func (p pair) Key() (*syntax.Token, error) { return RequiredToken(p.syntax, 0, "key") }

func (p pair) Value() (SeparatedList[pair], bool) {
	n := p.syntax.SlotNode(2)
	return NewSeparatedList(n, castPair), n != nil
}

func (p pair) Slots() []Slot {
	return []Slot{
		RawSlot(p.syntax, 0, "key", true, wrap),
		RawSlot(p.syntax, 1, "eq_token", true, wrap),
		RawSlot(p.syntax, 2, "value", false, wrap),
	}
}

type bogus struct{ syntax *syntax.Node }

func (b bogus) Syntax() *syntax.Node { return b.syntax }
func (b bogus) Slots() []Slot {
	return []Slot{{Name: "items", Value: BogusItems(b.syntax, wrap)}}
}

func wrap(n *syntax.Node) Node {
	switch n.Kind() {
	case kPair:
		return pair{n}
	case kNames:
		return NewSeparatedList(n, castPair)
	}
	return bogus{n}
}

// buildPairs строит "a=b=,c=," : список из трёх элементов с висящей запятой.
func buildPairs(t *testing.T) SeparatedList[pair] {
	t.Helper()
	b := syntax.NewBuilder(syntax.NewCache(), testReg)
	b.StartNode(kNames)
	b.StartNode(kPair)
	_ = b.Token(kIdent, "a", nil, nil)
	_ = b.Token(kEq, "=", nil, nil)
	b.FinishNode()
	_ = b.Token(kComma, ",", nil, nil)
	b.StartBogus(kBogus)
	_ = b.Token(kEq, "=", nil, nil)
	b.FinishBogus()
	_ = b.Token(kComma, ",", nil, nil)
	b.StartNode(kPair)
	_ = b.Token(kEq, "=", nil, nil)
	b.FinishNode()
	_ = b.Token(kComma, ",", nil, nil)
	b.FinishNode()
	g, err := b.Finish()
	if err != nil {
		t.Fatalf("finish: %v", err)
	}
	return NewSeparatedList(syntax.NewRoot(testReg, g), castPair)
}

func TestSeparatedList(t *testing.T) {
	list := buildPairs(t)
	if list.Len() != 3 {
		t.Fatalf("len = %d, want 3", list.Len())
	}
	if got := len(list.Separators()); got != 3 {
		t.Fatalf("separators = %d, want 3", got)
	}
	if list.TrailingSeparator() == nil {
		t.Fatalf("trailing separator expected")
	}
	if list.Syntax().SlotCount() != 7 {
		t.Fatalf("slot count = %d, want 7", list.Syntax().SlotCount())
	}
	els := list.Elements()
	if len(els) != 3 || els[2].Separator == nil {
		t.Fatalf("elements = %d", len(els))
	}
	if els[1].Item.Ok() {
		t.Fatalf("bogus item must not cast to pair")
	}
	var uk *UnexpectedKindError
	if !errors.As(els[1].Item.Err, &uk) || uk.Got != "BOGUS" {
		t.Fatalf("item error = %v", els[1].Item.Err)
	}
	if len(list.Items()) != 2 {
		t.Fatalf("items = %d", len(list.Items()))
	}
}

func TestMissingRequiredChild(t *testing.T) {
	list := buildPairs(t)
	third := list.At(2).Value
	_, err := third.Key()
	var miss *MissingRequiredChildError
	if !errors.As(err, &miss) || miss.Slot != 0 || miss.Name != "key" || miss.Kind != "PAIR" {
		t.Fatalf("err = %v", err)
	}
	if !errors.Is(err, ErrMissingRequiredChild) {
		t.Fatalf("err must match ErrMissingRequiredChild")
	}
	if _, ok := third.Value(); ok {
		t.Fatalf("absent optional list must report false")
	}
	first := list.At(0).Value
	if _, ok := As[pair](Node(first)); !ok {
		t.Fatalf("As must keep the concrete type")
	}
	if first.Syntax() != list.Syntax().SlotNode(0) {
		t.Fatalf("typed wrapper must keep red identity")
	}
}

func TestSerializeEncoders(t *testing.T) {
	list := buildPairs(t)
	data, err := json.Marshal(Serialize(list))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	want := `[{"kind":"PAIR","key":{"kind":"IDENT","text":"a"},"eq_token":{"kind":"EQ","text":"="},"value":null},` +
		`null,` +
		`{"kind":"PAIR","key":null,"eq_token":{"kind":"EQ","text":"="},"value":null}]`
	if string(data) != want {
		t.Fatalf("json:\n got %s\nwant %s", data, want)
	}

	bogusNode := wrap(list.Syntax().SlotNode(2)).(Composite)
	data, err = json.Marshal(Serialize(bogusNode))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if string(data) != `{"kind":"BOGUS","items":[{"kind":"EQ","text":"="}]}` {
		t.Fatalf("bogus json = %s", data)
	}

	packed, err := msgpack.Marshal(Serialize(list))
	if err != nil {
		t.Fatalf("msgpack: %v", err)
	}
	var back []map[string]any
	if err := msgpack.Unmarshal(packed, &back); err != nil {
		t.Fatalf("msgpack decode: %v", err)
	}
	if len(back) != 3 || back[0]["kind"] != "PAIR" || back[1] != nil {
		t.Fatalf("msgpack round = %#v", back)
	}

	out, err := yaml.Marshal(Serialize(list.At(0).Value))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if !strings.HasPrefix(string(out), "kind: PAIR\nkey:\n") {
		t.Fatalf("yaml must keep field order:\n%s", out)
	}
}

func TestDebugDepthGuard(t *testing.T) {
	list := buildPairs(t)
	out := Debug(list)
	if !strings.Contains(out, "key: missing (required)") || !strings.Contains(out, "value: missing (optional)") {
		t.Fatalf("debug:\n%s", out)
	}
	var sb strings.Builder
	if err := Fdebug(&sb, list, 1); err != nil {
		t.Fatalf("fdebug: %v", err)
	}
	if strings.Count(sb.String(), "<PAIR>") != 2 || strings.Contains(sb.String(), "key:") {
		t.Fatalf("depth-limited debug must stub pairs:\n%s", sb.String())
	}
}
