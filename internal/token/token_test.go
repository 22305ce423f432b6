package token

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func TestTokenClassification(t *testing.T) {
	tests := []struct {
		kind    syntax.Kind
		keyword bool
		punct   bool
		literal bool
	}{
		{grit.KindPatternKw, true, false, false},
		{grit.KindFatArrow, false, true, false},
		{grit.KindDollarUnderscore, false, true, false},
		{grit.KindDollarIdent, false, false, true},
		{grit.KindInt, false, false, true},
		{grit.KindErrorToken, false, false, false},
	}
	for _, tt := range tests {
		tok := Token{Kind: tt.kind}
		if tok.IsKeyword() != tt.keyword || tok.IsPunct() != tt.punct || tok.IsLiteral() != tt.literal {
			t.Fatalf("%s: keyword=%v punct=%v literal=%v", tok.KindName(), tok.IsKeyword(), tok.IsPunct(), tok.IsLiteral())
		}
	}
}

func TestFullSpanAndGreen(t *testing.T) {
	tok := Token{
		Kind: grit.KindIdent,
		Span: source.Span{Start: 3, End: 6},
		Text: "foo",
		Leading: []Trivia{
			{Kind: syntax.TriviaNewline, Span: source.Span{Start: 0, End: 1}, Text: "\n"},
			{Kind: syntax.TriviaWhitespace, Span: source.Span{Start: 1, End: 3}, Text: "  "},
		},
		Trailing: []Trivia{
			{Kind: syntax.TriviaLineComment, Span: source.Span{Start: 6, End: 10}, Text: "// x"},
		},
	}
	if sp := tok.FullSpan(); sp.Start != 0 || sp.End != 10 {
		t.Fatalf("full span = %v", sp)
	}
	if !tok.HasLeadingNewline() {
		t.Fatal("leading newline not detected")
	}
	g, err := tok.Green(syntax.NewCache())
	if err != nil {
		t.Fatalf("green: %v", err)
	}
	if g.FullText() != "\n  foo// x" {
		t.Fatalf("full text = %q", g.FullText())
	}
	if got := Plain(nil); got != nil {
		t.Fatalf("Plain(nil) = %v", got)
	}
}
