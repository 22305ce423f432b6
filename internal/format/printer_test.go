package format

import (
	"errors"
	"testing"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

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

func TestPrintRoundTrip(t *testing.T) {
	sources := []string{
		"`a` => `b`",
		"// head\n`a` => `b` // tail\n",
		"engine biome(1.0)\nlanguage js\n\npattern p($x) { `f($x)` where { $x <: 1 } }\n",
		"`a`\r\n=> /* c */ `b`\r\n",
		"\uFEFF#!/usr/bin/env grit\n$x = 1\n",
	}
	for _, src := range sources {
		_, root := parseSource(t, src)
		if got := string(Print(root, Options{})); got != src {
			t.Fatalf("Print(%q) = %q", src, got)
		}
	}
}

func TestPrintEdits(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		remove  []string
		replace map[string]string
		want    string
	}{
		{
			name:   "comment stays trailing of the left side",
			src:    "$x /* keep */ = 1",
			remove: []string{"="},
			want:   "$x /* keep */ 1",
		},
		{
			name:   "leading goes right, trailing goes left",
			src:    "$x\n/* lead */ = /* trail */ 1",
			remove: []string{"="},
			want:   "$x /* trail */ /* lead */ 1",
		},
		{
			name:   "own line break is enough",
			src:    "$x = // c\n  1",
			remove: []string{"="},
			want:   "$x // c\n  1",
		},
		{
			name:   "line break restored after a moved line comment",
			src:    "$x = // c\n 1 + 2",
			remove: []string{"=", "1"},
			want:   "$x // c\n+ 2",
		},
		{
			name:   "crlf is reused",
			src:    "$x = // c\r\n 1 + 2",
			remove: []string{"=", "1"},
			want:   "$x // c\r\n+ 2",
		},
		{
			name:    "replaced token keeps its trivia",
			src:     "$x /* a */ = /* b */ 1",
			replace: map[string]string{"=": "+="},
			want:    "$x /* a */ += /* b */ 1",
		},
	}
	for _, tt := range tests {
		_, root := parseSource(t, tt.src)
		edits := comments.NewEdits()
		for _, text := range tt.remove {
			if err := edits.Remove(tokenByText(t, root, text)); err != nil {
				t.Fatalf("%s: Remove(%q): %v", tt.name, text, err)
			}
		}
		for text, repl := range tt.replace {
			if err := edits.Replace(tokenByText(t, root, text), repl); err != nil {
				t.Fatalf("%s: Replace(%q): %v", tt.name, text, err)
			}
		}
		if got := string(Print(root, Options{Edits: edits})); got != tt.want {
			t.Fatalf("%s: got %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestCommentsPrintedOnce(t *testing.T) {
	src := "// head\n`a` => `b` // tail\n"
	_, root := parseSource(t, src)
	var def *syntax.Node
	for n := range root.Descendants() {
		if n.KindName() == "GRIT_REWRITE" {
			def = n
			break
		}
	}
	if def == nil {
		t.Fatalf("no rewrite in %q", src)
	}

	p := NewPrinter(root, Options{})
	p.FormatLeadingComments(def)
	p.FormatLeadingComments(def)
	if got := string(p.Bytes()); got != "// head\n" {
		t.Fatalf("leading comments = %q", got)
	}
	p.Node(root)
	if got := string(p.Bytes()); got != src {
		t.Fatalf("full print = %q, want %q", got, src)
	}
	p.FormatTrailingComments(def)
	if got := string(p.Bytes()); got != src {
		t.Fatalf("trailing comments printed twice: %q", got)
	}
}

func TestFormatRemoved(t *testing.T) {
	_, root := parseSource(t, "$x = 1")
	eq := tokenByText(t, root, "=")

	p := NewPrinter(root, Options{})
	if err := p.FormatRemoved(eq); !errors.Is(err, ErrNotRemoved) {
		t.Fatalf("FormatRemoved on a kept token: %v", err)
	}

	edits := comments.NewEdits()
	if err := edits.Remove(eq); err != nil {
		t.Fatalf("Remove: %v", err)
	}
	p = NewPrinter(root, Options{Edits: edits})
	p.Token(tokenByText(t, root, "$x"))
	if err := p.FormatRemoved(eq); err != nil {
		t.Fatalf("FormatRemoved: %v", err)
	}
	p.Token(tokenByText(t, root, "1"))
	if got := string(p.Bytes()); got != "$x 1" {
		t.Fatalf("got %q", got)
	}
}

func TestPrintOrphans(t *testing.T) {
	_, root := parseSource(t, "/* only */ $x")
	edits := comments.NewEdits()
	for tok := range root.Tokens() {
		if err := edits.Remove(tok); err != nil {
			t.Fatalf("Remove(%q): %v", tok.Text(), err)
		}
	}
	if got := string(Print(root, Options{Edits: edits})); got != "/* only */" {
		t.Fatalf("got %q", got)
	}
}

func TestCheckRoundTrip(t *testing.T) {
	sf, _ := parseSource(t, "pattern p() { `a` }\n`b` => `c`\n")
	if ok, msg := CheckRoundTrip(sf, 16); !ok {
		t.Fatalf("CheckRoundTrip: %s", msg)
	}
}
