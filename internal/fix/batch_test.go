package fix

import (
	"errors"
	"testing"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// commitMatchesEdits checks that the committed tree and the lowered text edits
// agree on the new text.
func commitMatchesEdits(t *testing.T, content []byte, b *Batch, want string) {
	t.Helper()
	if got := b.Commit().Text(); got != want {
		t.Fatalf("Commit text = %q, want %q", got, want)
	}
	got, err := ApplyEdits(content, b.TextEdits(0))
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if string(got) != want {
		t.Fatalf("edited text = %q, want %q", got, want)
	}
}

func TestBatchReplaceTokenTransfersTrivia(t *testing.T) {
	sf, root := parseSource(t, "$x = 1 // one")
	one := tokenByText(t, root, "1")

	cache := syntax.NewCache()
	b := NewBatch(root, cache)
	if err := b.ReplaceToken(one, cache.MustToken(one.Kind(), "42", nil, nil)); err != nil {
		t.Fatalf("ReplaceToken: %v", err)
	}
	commitMatchesEdits(t, sf.Content, b, "$x = 42 // one")
}

func TestBatchDiscardTrivia(t *testing.T) {
	sf, root := parseSource(t, "$x = 1 // one")
	one := tokenByText(t, root, "1")

	cache := syntax.NewCache()
	b := NewBatch(root, cache)
	if err := b.ReplaceTokenDiscardTrivia(one, cache.MustToken(one.Kind(), "2", nil, nil)); err != nil {
		t.Fatalf("ReplaceTokenDiscardTrivia: %v", err)
	}
	commitMatchesEdits(t, sf.Content, b, "$x = 2")
}

func TestBatchSeveralChanges(t *testing.T) {
	sf, root := parseSource(t, "[1, 2, 3]")
	cache := syntax.NewCache()
	b := NewBatch(root, cache)

	for _, text := range []string{"1", "3"} {
		tok := tokenByText(t, root, text)
		if err := b.ReplaceToken(tok, cache.MustToken(tok.Kind(), text+"0", nil, nil)); err != nil {
			t.Fatalf("ReplaceToken(%q): %v", text, err)
		}
	}
	if b.Len() != 2 {
		t.Fatalf("Len = %d", b.Len())
	}
	commitMatchesEdits(t, sf.Content, b, "[10, 2, 30]")
}

func TestBatchSpliceInserts(t *testing.T) {
	sf, root := parseSource(t, "[1, 2]")
	var list *syntax.Node
	for n := range root.Descendants() {
		if n.KindName() == "GRIT_LIST_PATTERN_LIST" {
			list = n
			break
		}
	}
	if list == nil {
		t.Fatalf("no list in %q", root.Text())
	}

	b := NewBatch(root, nil)
	g := list.Green()
	if err := b.SpliceChildren(list, 0, 0, g.Slot(0), g.Slot(1)); err != nil {
		t.Fatalf("SpliceChildren: %v", err)
	}
	commitMatchesEdits(t, sf.Content, b, "[1, 1, 2]")

	if err := b.SpliceChildren(list, 0, 5); err == nil {
		t.Fatalf("out of range splice must fail")
	}
}

func TestBatchConflicts(t *testing.T) {
	_, root := parseSource(t, "$x = 1")
	one := tokenByText(t, root, "1")

	b := NewBatch(root, nil)
	if err := b.RemoveToken(one); err != nil {
		t.Fatalf("RemoveToken: %v", err)
	}
	if err := b.RemoveToken(one); !errors.Is(err, ErrConflictingMutation) {
		t.Fatalf("same token twice: %v", err)
	}
	if err := b.RemoveNode(one.Parent()); !errors.Is(err, ErrConflictingMutation) {
		t.Fatalf("enclosing node: %v", err)
	}
	if b.Len() != 1 {
		t.Fatalf("Len = %d", b.Len())
	}
}

func TestBatchSharesUntouchedSubtrees(t *testing.T) {
	_, root := parseSource(t, "pattern p() { `a` }\n$x = 1\n")
	one := tokenByText(t, root, "1")

	cache := syntax.NewCache()
	b := NewBatch(root, cache)
	if err := b.ReplaceToken(one, cache.MustToken(one.Kind(), "2", nil, nil)); err != nil {
		t.Fatalf("ReplaceToken: %v", err)
	}
	next := b.CommitNode()
	if next.Text() != "pattern p() { `a` }\n$x = 2\n" {
		t.Fatalf("text = %q", next.Text())
	}

	find := func(n *syntax.Node) *syntax.Node {
		for d := range n.Descendants() {
			if d.KindName() == "GRIT_PATTERN_DEFINITION" {
				return d
			}
		}
		t.Fatalf("no pattern definition in %q", n.Text())
		return nil
	}
	if find(root).Green() != find(next).Green() {
		t.Fatalf("untouched definition was rebuilt")
	}
	if root.Text() != "pattern p() { `a` }\n$x = 1\n" {
		t.Fatalf("old tree changed: %q", root.Text())
	}
}

func TestBatchReplaceNodeKeepsEdgeTrivia(t *testing.T) {
	sf, root := parseSource(t, "$x = /* v */ 1 // one")
	one := tokenByText(t, root, "1")
	lit := one.Parent()

	cache := syntax.NewCache()
	repl := cache.Node(lit.Kind(), []syntax.GreenElement{cache.MustToken(one.Kind(), "7", nil, nil)})
	b := NewBatch(root, cache)
	if err := b.ReplaceNode(lit, repl); err != nil {
		t.Fatalf("ReplaceNode: %v", err)
	}
	commitMatchesEdits(t, sf.Content, b, "$x = /* v */ 7 // one")

	f := b.Fix("Use seven", sf.ID)
	if len(f.Edits) != 1 || f.Edits[0].OldText != "1 // one" {
		t.Fatalf("fix = %+v", f)
	}
}

func TestBatchKeepsBOMOnFirstTokenOnly(t *testing.T) {
	src := "\uFEFF#!/usr/bin/env grit\n$x = 1"
	sf, root := parseSource(t, src)
	x := tokenByText(t, root, "$x")
	one := tokenByText(t, root, "1")

	cache := syntax.NewCache()
	b := NewBatch(root, cache)
	if err := b.ReplaceToken(x, cache.MustToken(x.Kind(), "$y", nil, nil)); err != nil {
		t.Fatalf("ReplaceToken on the first token: %v", err)
	}
	commitMatchesEdits(t, sf.Content, b, "\uFEFF#!/usr/bin/env grit\n$y = 1")

	moved, err := cache.FirstToken(one.Kind(), "2", x.Leading(), nil)
	if err != nil {
		t.Fatalf("FirstToken: %v", err)
	}
	var te *syntax.InvalidTriviaError
	if err := NewBatch(root, cache).ReplaceTokenDiscardTrivia(one, moved); !errors.As(err, &te) {
		t.Fatalf("BOM moved onto a later token: err = %v", err)
	}
}
