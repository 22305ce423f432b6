package lexer

import (
	"strings"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
)

func TestTokenTooLongTriggersDiagnostic(t *testing.T) {
	file := createFile(strings.Repeat("a", 33) + " b")

	bag := diag.NewBag(4)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}, MaxTokenLength: 32})

	tok := lx.Next()
	if tok.Kind != grit.KindErrorToken {
		t.Fatalf("expected error token, got %s", tok.KindName())
	}
	if !bag.HasErrors() || bag.Items()[0].Code != diag.LexTokenTooLong {
		t.Fatalf("expected LexTokenTooLong, got %v", bag.Items())
	}
	if next := lx.Next(); next.Kind != grit.KindIdent || next.Text != "b" {
		t.Fatalf("lexing must continue after a long token, got %s", next.KindName())
	}
}

func TestTokenAtLimitAllowed(t *testing.T) {
	file := createFile(strings.Repeat("b", 32))

	bag := diag.NewBag(1)
	lx := New(file, Options{Reporter: diag.BagReporter{Bag: bag}, MaxTokenLength: 32})

	if tok := lx.Next(); tok.Kind != grit.KindIdent {
		t.Fatalf("expected ident token, got %s", tok.KindName())
	}
	if bag.HasErrors() {
		t.Fatalf("did not expect diagnostics, got %v", bag.Items())
	}
}
