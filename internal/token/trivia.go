package token

import (
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Trivia is a syntax trivium that remembers where it was found.
type Trivia struct {
	Kind syntax.TriviaKind
	Span source.Span
	Text string
}

// Plain returns the trivium without its location.
func (t Trivia) Plain() syntax.Trivia {
	return syntax.Trivia{Kind: t.Kind, Text: t.Text}
}

// IsComment reports whether the trivium is a line or block comment.
func (t Trivia) IsComment() bool { return t.Kind.IsComment() }

// Plain strips locations from a trivia list.
func Plain(list []Trivia) []syntax.Trivia {
	if len(list) == 0 {
		return nil
	}
	out := make([]syntax.Trivia, len(list))
	for i, t := range list {
		out[i] = t.Plain()
	}
	return out
}
