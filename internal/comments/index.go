package comments

import (
	"errors"
	"fmt"
	"slices"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// ErrDuplicateOwner reports a comment claimed by more than one token.
var ErrDuplicateOwner = errors.New("comment owned by more than one token")

// Index lists every comment of a tree in source order.
type Index struct {
	all     []Comment
	byStart map[uint32]int
	byOwner map[uint32][]int
}

// Build collects the comments of root and checks that each comment range is
// owned by exactly one token.
func Build(root *syntax.Node) (*Index, error) {
	idx := &Index{
		byStart: make(map[uint32]int),
		byOwner: make(map[uint32][]int),
	}
	if root == nil {
		return idx, nil
	}
	for tok := range root.Tokens() {
		key := tok.TextTrimmedRange().Start
		for _, c := range Of(tok) {
			if prev, ok := idx.byStart[c.Range.Start]; ok {
				return nil, fmt.Errorf("%w: %q at %s (tokens at %s and %s)", ErrDuplicateOwner,
					c.Text, c.Range, idx.all[prev].Owner.TextRange(), tok.TextRange())
			}
			idx.byStart[c.Range.Start] = len(idx.all)
			idx.byOwner[key] = append(idx.byOwner[key], len(idx.all))
			idx.all = append(idx.all, c)
		}
	}
	if !slices.IsSortedFunc(idx.all, func(a, b Comment) int { return int(a.Range.Start) - int(b.Range.Start) }) {
		return nil, fmt.Errorf("comments: trivia out of source order")
	}
	return idx, nil
}

// Len returns the number of comments.
func (idx *Index) Len() int { return len(idx.all) }

// All returns the comments in source order.
func (idx *Index) All() []Comment { return slices.Clone(idx.all) }

// At returns the comment that starts at off.
func (idx *Index) At(off uint32) (Comment, bool) {
	i, ok := idx.byStart[off]
	if !ok {
		return Comment{}, false
	}
	return idx.all[i], true
}

// Owned returns the comments owned by tok.
func (idx *Index) Owned(tok *syntax.Token) []Comment {
	if tok == nil {
		return nil
	}
	ids := idx.byOwner[tok.TextTrimmedRange().Start]
	out := make([]Comment, 0, len(ids))
	for _, i := range ids {
		out = append(out, idx.all[i])
	}
	return out
}

// Within returns the comments whose range lies inside r.
func (idx *Index) Within(r syntax.TextRange) []Comment {
	lo, _ := slices.BinarySearchFunc(idx.all, r.Start, func(c Comment, off uint32) int {
		return int(c.Range.Start) - int(off)
	})
	var out []Comment
	for _, c := range idx.all[lo:] {
		if c.Range.Start >= r.End {
			break
		}
		if r.ContainsRange(c.Range) {
			out = append(out, c)
		}
	}
	return out
}
