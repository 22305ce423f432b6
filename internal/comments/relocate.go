package comments

import "github.com/biomejs/biome-sub001/internal/syntax"

// Moved holds the comments a surviving token receives from removed tokens.
type Moved struct {
	// Leading is printed before the token's own leading trivia.
	Leading []Comment
	// Trailing is printed after the token's own trailing trivia.
	Trailing []Comment
}

// Relocation is the comment layout of a tree under edits.
type Relocation struct {
	moved map[tokenKey]*Moved
	// Orphans are comments of removed tokens when no token survives at all.
	Orphans []Comment
}

// Relocate decides where the comments of removed tokens go. Leading comments
// of a removed token become leading comments of the next surviving token;
// trailing comments become trailing comments of the previous surviving token.
// When there is no survivor on that side the other side is used.
func Relocate(root *syntax.Node, e *Edits) *Relocation {
	rel := &Relocation{moved: make(map[tokenKey]*Moved)}
	if root == nil || e.Len() == 0 {
		return rel
	}
	var toks []*syntax.Token
	for tok := range root.Tokens() {
		toks = append(toks, tok)
	}
	survivor := func(i, step int) *syntax.Token {
		for j := i + step; j >= 0 && j < len(toks); j += step {
			if e.State(toks[j]).State != Removed {
				return toks[j]
			}
		}
		return nil
	}
	for i, tok := range toks {
		if e.State(tok).State != Removed {
			continue
		}
		prev, next := survivor(i, -1), survivor(i, 1)
		if lead := LeadingOf(tok); len(lead) > 0 {
			switch {
			case next != nil:
				rel.at(next).Leading = append(rel.at(next).Leading, lead...)
			case prev != nil:
				rel.at(prev).Trailing = append(rel.at(prev).Trailing, lead...)
			default:
				rel.Orphans = append(rel.Orphans, lead...)
			}
		}
		if trail := TrailingOf(tok); len(trail) > 0 {
			switch {
			case prev != nil:
				rel.at(prev).Trailing = append(rel.at(prev).Trailing, trail...)
			case next != nil:
				rel.at(next).Leading = append(rel.at(next).Leading, trail...)
			default:
				rel.Orphans = append(rel.Orphans, trail...)
			}
		}
	}
	return rel
}

func (r *Relocation) at(tok *syntax.Token) *Moved {
	k := keyOf(tok)
	m, ok := r.moved[k]
	if !ok {
		m = &Moved{}
		r.moved[k] = m
	}
	return m
}

// For returns the comments moved onto tok.
func (r *Relocation) For(tok *syntax.Token) Moved {
	if r == nil || tok == nil {
		return Moved{}
	}
	if m, ok := r.moved[keyOf(tok)]; ok {
		return *m
	}
	return Moved{}
}

// Len returns the number of relocated comments.
func (r *Relocation) Len() int {
	if r == nil {
		return 0
	}
	n := len(r.Orphans)
	for _, m := range r.moved {
		n += len(m.Leading) + len(m.Trailing)
	}
	return n
}
