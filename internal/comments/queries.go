package comments

import "github.com/biomejs/biome-sub001/internal/syntax"

// LeadingComments returns the comments a formatter keeps attached in front
// of n: the leading comments of its first token that start on a new line or
// are line comments.
func LeadingComments(n *syntax.Node) []Comment {
	if n == nil {
		return nil
	}
	var out []Comment
	for _, c := range LeadingOf(n.FirstToken()) {
		if c.LinesBefore > 0 || c.Kind == Line {
			out = append(out, c)
		}
	}
	return out
}

// TrailingComments returns the trailing comments of the last token of n that
// appear before the next line break.
func TrailingComments(n *syntax.Node) []Comment {
	if n == nil {
		return nil
	}
	var out []Comment
	for _, c := range TrailingOf(n.LastToken()) {
		// после первого перевода строки - уже не наш хвост
		if c.LinesBefore > 0 {
			break
		}
		out = append(out, c)
	}
	return out
}

// HasLeadingLineBreak reports whether the leading trivia of the first token
// of n contain a line break.
func HasLeadingLineBreak(n *syntax.Node) bool {
	if n == nil {
		return false
	}
	tok := n.FirstToken()
	return tok != nil && tok.HasLeadingNewline()
}

// HasComments reports whether any token of n owns a comment.
func HasComments(n *syntax.Node) bool {
	if n == nil {
		return false
	}
	for tok := range n.Tokens() {
		if tok.HasLeadingComments() || tok.HasTrailingComments() {
			return true
		}
	}
	return false
}
