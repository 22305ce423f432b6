package syntax

import "slices"

// WithLeading returns a token with the same kind and text and new leading trivia.
func (t *GreenToken) WithLeading(c *Cache, leading []Trivia) (*GreenToken, error) {
	return c.Token(t.kind, t.text, leading, t.trailing)
}

// WithTrailing returns a token with new trailing trivia.
func (t *GreenToken) WithTrailing(c *Cache, trailing []Trivia) (*GreenToken, error) {
	// leading уже проверен при создании t
	if err := ValidateTrivia(nil, trailing, false); err != nil {
		return nil, err
	}
	return c.token(t.kind, t.text, t.leading, trailing), nil
}

// WithText returns a token with new text and the same trivia.
func (t *GreenToken) WithText(c *Cache, text string) *GreenToken {
	return c.token(t.kind, text, t.leading, t.trailing)
}

// WithKind returns a token with a new kind, text and trivia unchanged.
func (t *GreenToken) WithKind(c *Cache, kind Kind) *GreenToken {
	return c.token(kind, t.text, t.leading, t.trailing)
}

// Trimmed returns the token without any trivia.
func (t *GreenToken) Trimmed(c *Cache) *GreenToken {
	return c.token(t.kind, t.text, nil, nil)
}

// AppendTrailing returns a token with extra trivia appended to its trailing list.
func (t *GreenToken) AppendTrailing(c *Cache, extra ...Trivia) (*GreenToken, error) {
	return t.WithTrailing(c, append(slices.Clone(t.trailing), extra...))
}

// PrependLeading returns a token with extra trivia put before its leading list.
func (t *GreenToken) PrependLeading(c *Cache, extra ...Trivia) (*GreenToken, error) {
	return t.WithLeading(c, append(slices.Clone(extra), t.leading...))
}

// LeadingComments returns the comment trivia of the leading list.
func (t *GreenToken) LeadingComments() []Trivia { return comments(t.leading) }

// TrailingComments returns the comment trivia of the trailing list.
func (t *GreenToken) TrailingComments() []Trivia { return comments(t.trailing) }

func comments(list []Trivia) []Trivia {
	var out []Trivia
	for _, tr := range list {
		if tr.IsComment() {
			out = append(out, tr)
		}
	}
	return out
}
