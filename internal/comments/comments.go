package comments

import (
	"fmt"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Kind is the lexical class of a comment.
type Kind uint8

const (
	// Line runs to the end of the line.
	Line Kind = iota + 1
	// Block is delimited and may span lines.
	Block
)

func (k Kind) String() string {
	switch k {
	case Line:
		return "line"
	case Block:
		return "block"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Placement tells on which side of its owner token a comment sits.
type Placement uint8

const (
	Leading Placement = iota + 1
	Trailing
)

func (p Placement) String() string {
	switch p {
	case Leading:
		return "leading"
	case Trailing:
		return "trailing"
	}
	return fmt.Sprintf("Placement(%d)", uint8(p))
}

// Comment is one comment trivium together with where it lives.
type Comment struct {
	Kind      Kind
	Placement Placement
	// LinesBefore counts the line breaks between the comment and the previous
	// trivium that is neither whitespace nor a line break, or the previous
	// token text when there is none.
	LinesBefore int
	Owner       *syntax.Token
	// Index is the position inside the owner's leading or trailing list.
	Index int
	Text  string
	Range syntax.TextRange
}

// Multiline reports whether a block comment spans several lines.
func (c Comment) Multiline() bool {
	return c.Trivia().IsMultiline()
}

// Trivia returns the comment as the trivium it was read from.
func (c Comment) Trivia() syntax.Trivia {
	return syntax.Trivia{Kind: c.trivia(), Text: c.Text}
}

func (c Comment) trivia() syntax.TriviaKind {
	if c.Kind == Line {
		return syntax.TriviaLineComment
	}
	return syntax.TriviaBlockComment
}

func (c Comment) String() string {
	return fmt.Sprintf("%s %s comment %q @%s lines_before=%d", c.Placement, c.Kind, c.Text, c.Range, c.LinesBefore)
}

// Classify maps a trivia kind to a comment kind; ok is false for non-comments.
func Classify(k syntax.TriviaKind) (kind Kind, ok bool) {
	switch k {
	case syntax.TriviaLineComment:
		return Line, true
	case syntax.TriviaBlockComment:
		return Block, true
	}
	return 0, false
}

// Of returns the comments owned by tok, leading band first, in source order.
func Of(tok *syntax.Token) []Comment {
	if tok == nil {
		return nil
	}
	out := band(tok, Leading, tok.LeadingPieces(), nil)
	return band(tok, Trailing, tok.TrailingPieces(), out)
}

// LeadingOf returns the comments of the leading band of tok.
func LeadingOf(tok *syntax.Token) []Comment {
	if tok == nil {
		return nil
	}
	return band(tok, Leading, tok.LeadingPieces(), nil)
}

// TrailingOf returns the comments of the trailing band of tok.
func TrailingOf(tok *syntax.Token) []Comment {
	if tok == nil {
		return nil
	}
	return band(tok, Trailing, tok.TrailingPieces(), nil)
}

func band(tok *syntax.Token, pl Placement, list []syntax.TriviaPiece, out []Comment) []Comment {
	lines := 0
	for i, p := range list {
		switch p.Kind {
		case syntax.TriviaNewline:
			lines++
			continue
		case syntax.TriviaWhitespace:
			continue
		}
		kind, ok := Classify(p.Kind)
		if !ok {
			// BOM и shebang обнуляют счётчик как обычный текст
			lines = 0
			continue
		}
		out = append(out, Comment{
			Kind:        kind,
			Placement:   pl,
			LinesBefore: lines,
			Owner:       tok,
			Index:       i,
			Text:        p.Text,
			Range:       p.Range,
		})
		lines = 0
	}
	return out
}
