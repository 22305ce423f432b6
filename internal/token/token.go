package token

import (
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind     syntax.Kind
	Span     source.Span
	Text     string
	Leading  []Trivia
	Trailing []Trivia
}

// FullSpan covers the token together with its trivia.
func (t Token) FullSpan() source.Span {
	sp := t.Span
	if len(t.Leading) > 0 {
		sp.Start = t.Leading[0].Span.Start
	}
	if len(t.Trailing) > 0 {
		sp.End = t.Trailing[len(t.Trailing)-1].Span.End
	}
	return sp
}

// IsEOF reports whether the token ends the stream.
func (t Token) IsEOF() bool { return t.Kind == grit.KindEOF }

// IsKeyword reports whether the token is a Grit keyword.
func (t Token) IsKeyword() bool { return grit.IsKeyword(t.Kind) }

// IsPunct reports whether the token is punctuation or an operator.
func (t Token) IsPunct() bool { return grit.IsPunct(t.Kind) }

// IsLiteral reports whether the token is a literal, name, variable or annotation.
func (t Token) IsLiteral() bool {
	return t.Kind >= grit.KindInt && t.Kind <= grit.KindAtIdent
}

// IsError reports whether the lexer could not classify the token.
func (t Token) IsError() bool { return t.Kind == grit.KindErrorToken }

// KindName returns the registry name of the token kind.
func (t Token) KindName() string { return grit.Registry.Name(t.Kind) }

// HasLeadingNewline reports whether a line break precedes the token.
func (t Token) HasLeadingNewline() bool {
	for _, tr := range t.Leading {
		if tr.Kind == syntax.TriviaNewline {
			return true
		}
	}
	return false
}

// Green interns the token with its trivia. A token starting at offset 0 is
// the first of its file and may carry the BOM and shebang.
func (t Token) Green(c *syntax.Cache) (*syntax.GreenToken, error) {
	if t.FullSpan().Start == 0 {
		return c.FirstToken(t.Kind, t.Text, Plain(t.Leading), Plain(t.Trailing))
	}
	return c.Token(t.Kind, t.Text, Plain(t.Leading), Plain(t.Trailing))
}
