package grit

import (
	"encoding/json"
	"testing"

	"github.com/kr/pretty"

	"github.com/biomejs/biome-sub001/internal/ast"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// sumTree builds "1+2" as the only definition of a root.
func sumTree(f Factory) *syntax.GreenNode {
	add := f.AddOperation(f.IntLiteral(f.Token(KindInt, "1")), f.Punct(KindPlus), f.IntLiteral(f.Token(KindInt, "2")))
	return f.Root(nil, nil, f.DefinitionList(add), f.EOF())
}

func TestCastChainThroughSumTypes(t *testing.T) {
	root, ok := CastRoot(syntax.NewRoot(Registry, sumTree(NewFactory(syntax.NewCache()))))
	if !ok {
		t.Fatalf("root does not cast")
	}
	if got := root.Syntax().Text(); got != "1+2" {
		t.Fatalf("text = %q", got)
	}
	def, ok := root.Definitions().First()
	if !ok {
		t.Fatalf("no definitions")
	}
	node := def.Syntax()

	pat, ok := def.(AnyPattern)
	if !ok {
		t.Fatalf("%T is not AnyPattern", def)
	}
	add, ok := pat.(AddOperation)
	if !ok {
		t.Fatalf("%T is not AddOperation", pat)
	}
	if pat.Syntax() != node || add.Syntax() != node {
		t.Fatalf("cast chain changed the underlying node")
	}

	// повторное приведение из сырого узла даёт тот же узел
	again, ok := CastAnyDefinition(node)
	if !ok || again.Syntax() != node {
		t.Fatalf("CastAnyDefinition(%s) = %v, %v", node.KindName(), again, ok)
	}
	if _, ok := CastAnyPattern(root.Syntax()); ok {
		t.Fatalf("root cast to AnyPattern")
	}

	left, err := add.Left()
	if err != nil {
		t.Fatalf("Left: %v", err)
	}
	if _, ok := left.(IntLiteral); !ok {
		t.Fatalf("left = %T", left)
	}
	if a, b := add.AsFields(), add.AsFields(); a.Left.Value.Syntax() != b.Left.Value.Syntax() {
		t.Fatalf("accessors are not idempotent")
	}
}

func TestSumTypeClosure(t *testing.T) {
	pairs := []struct {
		name       string
		sub, super syntax.KindSet
	}{
		{"AnyPattern in AnyDefinition", AnyPatternKinds, AnyDefinitionKinds},
		{"AnyLiteral in AnyPattern", AnyLiteralKinds, AnyPatternKinds},
	}
	for _, p := range pairs {
		if p.sub.Intersect(p.super).Len() != p.sub.Len() {
			t.Fatalf("%s: %s is not a subset", p.name, p.sub.Format(Registry))
		}
	}
	for _, k := range AnyPatternKinds.Kinds() {
		if !CanCastAnyDefinition(k) {
			t.Fatalf("%s does not cast to AnyDefinition", Registry.Name(k))
		}
	}
}

func TestFactoryInterns(t *testing.T) {
	f := NewFactory(syntax.NewCache())
	if a, b := sumTree(f), sumTree(f); a != b {
		t.Fatalf("identical trees were not interned")
	}
}

func TestSerializeSum(t *testing.T) {
	root := syntax.NewRoot(Registry, sumTree(NewFactory(syntax.NewCache())))
	def, _ := Root{root}.Definitions().First()
	data, err := ast.EncodeJSON(def)
	if err != nil {
		t.Fatalf("EncodeJSON: %v", err)
	}
	literal := func(text string) map[string]any {
		return map[string]any{"kind": "GRIT_INT_LITERAL", "value": map[string]any{"kind": "GRIT_INT", "text": text}}
	}
	want := map[string]any{
		"kind":       "GRIT_ADD_OPERATION",
		"left":       literal("1"),
		"plus_token": map[string]any{"kind": "PLUS", "text": "+"},
		"right":      literal("2"),
	}
	var got map[string]any
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unmarshal %s: %v", data, err)
	}
	if diff := pretty.Diff(want, got); len(diff) > 0 {
		t.Fatalf("serialized record differs:\n%s", pretty.Sprint(diff))
	}
}
