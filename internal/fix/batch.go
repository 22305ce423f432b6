package fix

import (
	"errors"
	"fmt"
	"slices"
	"sort"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// ErrConflictingMutation is returned when two queued mutations touch the same
// element or one of them lies inside the other.
var ErrConflictingMutation = errors.New("conflicting tree mutation")

// mutation is one queued change: slots [start, end) of the node at path are
// replaced by els. Slot changes have end == start+1 and one element (nil
// removes the child).
type mutation struct {
	path  []int
	start int
	end   int
	els   []syntax.GreenElement
	// old is the text range the mutation rewrites, trivia included.
	old syntax.TextRange
	// splice отличает вставку/замену диапазона от замены одного слота
	splice bool
}

// Batch queues mutations of one tree and commits them at once. Every
// untouched subtree of the original tree is shared by the new one; the spine
// from each changed node up to the root is rebuilt once.
type Batch struct {
	root    *syntax.Node
	cache   *syntax.Cache
	changes []mutation
}

// NewBatch starts a batch over root. Root must be a tree root.
func NewBatch(root *syntax.Node, cache *syntax.Cache) *Batch {
	if cache == nil {
		cache = syntax.NewCache()
	}
	return &Batch{root: root, cache: cache}
}

// Len returns the number of queued mutations.
func (b *Batch) Len() int { return len(b.changes) }

// ReplaceToken replaces prev with next. next takes over the trivia of prev.
func (b *Batch) ReplaceToken(prev *syntax.Token, next *syntax.GreenToken) error {
	if prev == nil || next == nil {
		return errors.New("fix: nil token")
	}
	tok, err := transferTrivia(b.cache, next, prev.Leading(), prev.Trailing(), opensTree(prev))
	if err != nil {
		return err
	}
	return b.ReplaceTokenDiscardTrivia(prev, tok)
}

// ReplaceTokenDiscardTrivia replaces prev with next as is.
func (b *Batch) ReplaceTokenDiscardTrivia(prev *syntax.Token, next *syntax.GreenToken) error {
	if prev == nil || next == nil {
		return errors.New("fix: nil token")
	}
	if err := syntax.ValidateTrivia(next.Leading(), next.Trailing(), opensTree(prev)); err != nil {
		return err
	}
	return b.push(prev, next)
}

// RemoveToken empties the slot of prev. Its trivia go with it.
func (b *Batch) RemoveToken(prev *syntax.Token) error {
	if prev == nil {
		return errors.New("fix: nil token")
	}
	return b.push(prev, nil)
}

// ReplaceNode replaces prev with next. The first token of next takes over the
// leading trivia of prev, the last token its trailing trivia.
func (b *Batch) ReplaceNode(prev *syntax.Node, next *syntax.GreenNode) error {
	if prev == nil || next == nil {
		return errors.New("fix: nil node")
	}
	var leading, trailing []syntax.Trivia
	first := prev.FirstToken()
	if first != nil {
		leading = first.Leading()
	}
	if last := prev.LastToken(); last != nil {
		trailing = last.Trailing()
	}
	repl, err := withEdgeTrivia(b.cache, next, leading, trailing, opensTree(first))
	if err != nil {
		return err
	}
	return b.push(prev, repl)
}

// ReplaceNodeDiscardTrivia replaces prev with next as is.
func (b *Batch) ReplaceNodeDiscardTrivia(prev *syntax.Node, next *syntax.GreenNode) error {
	if prev == nil || next == nil {
		return errors.New("fix: nil node")
	}
	if err := checkTokens(next, opensTree(prev.FirstToken())); err != nil {
		return err
	}
	return b.push(prev, next)
}

// RemoveNode empties the slot of prev.
func (b *Batch) RemoveNode(prev *syntax.Node) error {
	if prev == nil {
		return errors.New("fix: nil node")
	}
	return b.push(prev, nil)
}

// SpliceChildren replaces slots [start, end) of parent with els. With
// start == end the elements are inserted before slot start.
func (b *Batch) SpliceChildren(parent *syntax.Node, start, end int, els ...syntax.GreenElement) error {
	if parent == nil {
		return errors.New("fix: nil parent")
	}
	if start < 0 || end < start || end > parent.SlotCount() {
		return fmt.Errorf("fix: splice range [%d,%d) out of [0,%d]", start, end, parent.SlotCount())
	}
	old := slotsRange(parent, start, end)
	// вставка в самое начало дерева получает первый токен
	first := old.Start == 0
	for _, el := range els {
		if err := checkTokens(el, first); err != nil {
			return err
		}
		if greenText(el) != "" {
			first = false
		}
	}
	m := mutation{
		path:   pathOf(parent),
		start:  start,
		end:    end,
		els:    slices.Clone(els),
		old:    old,
		splice: true,
	}
	return b.queue(m)
}

func (b *Batch) push(el syntax.Element, repl syntax.GreenElement) error {
	parent := el.Parent()
	if parent == nil {
		return errors.New("fix: the root cannot be replaced inside a batch")
	}
	m := mutation{
		path:  pathOf(parent),
		start: el.Index(),
		end:   el.Index() + 1,
		els:   []syntax.GreenElement{repl},
		old:   el.TextRange(),
	}
	return b.queue(m)
}

func (b *Batch) queue(m mutation) error {
	for _, prev := range b.changes {
		if conflicts(prev, m) {
			return fmt.Errorf("%w: %s and %s", ErrConflictingMutation, describeMutation(prev), describeMutation(m))
		}
	}
	b.changes = append(b.changes, m)
	return nil
}

// conflicts: одна правка лежит внутри другой или их диапазоны слотов пересекаются
func conflicts(a, b mutation) bool {
	if len(a.path) > len(b.path) {
		a, b = b, a
	}
	if !slices.Equal(a.path, b.path[:len(a.path)]) {
		return false
	}
	if len(a.path) == len(b.path) {
		if a.start == a.end || b.start == b.end {
			// вставка конфликтует только со сплайсом в той же точке
			return a.start == b.start || (a.start > b.start && a.start < b.end) || (b.start > a.start && b.start < a.end)
		}
		return a.start < b.end && b.start < a.end
	}
	// b глубже: конфликт, если b внутри заменяемых слотов a
	idx := b.path[len(a.path)]
	return idx >= a.start && idx < a.end
}

func describeMutation(m mutation) string {
	return fmt.Sprintf("slots [%d,%d) of node %v at %s", m.start, m.end, m.path, m.old)
}

// Commit applies the queued mutations and returns the new root.
func (b *Batch) Commit() *syntax.GreenNode {
	root := b.root.Green()
	if len(b.changes) == 0 {
		return root
	}

	type pending struct {
		path []int
		muts []mutation
	}
	byKey := make(map[string]*pending)
	add := func(m mutation) {
		key := fmt.Sprint(m.path)
		p, ok := byKey[key]
		if !ok {
			p = &pending{path: m.path}
			byKey[key] = p
		}
		p.muts = append(p.muts, m)
	}
	maxDepth := 0
	for _, m := range b.changes {
		add(m)
		maxDepth = max(maxDepth, len(m.path))
	}

	for depth := maxDepth; depth >= 0; depth-- {
		var level []*pending
		for _, p := range byKey {
			if len(p.path) == depth {
				level = append(level, p)
			}
		}
		sort.Slice(level, func(i, j int) bool { return slices.Compare(level[i].path, level[j].path) < 0 })
		for _, p := range level {
			g := greenAt(root, p.path)
			// с конца, чтобы индексы слотов оставались верными; вставка в точке s идёт после замены слота s
			sort.SliceStable(p.muts, func(i, j int) bool {
				if p.muts[i].start != p.muts[j].start {
					return p.muts[i].start > p.muts[j].start
				}
				return p.muts[i].end > p.muts[j].end
			})
			for _, m := range p.muts {
				g = g.Splice(b.cache, m.start, m.end, m.els...)
			}
			if depth == 0 {
				root = g
				continue
			}
			add(mutation{path: p.path[:depth-1], start: p.path[depth-1], end: p.path[depth-1] + 1, els: []syntax.GreenElement{g}})
		}
	}
	return root
}

// CommitNode commits and returns the red root of the new tree.
func (b *Batch) CommitNode() *syntax.Node {
	return syntax.NewRoot(b.root.Registry(), b.Commit())
}

// TextEdits lowers the queued mutations to text edits on file. The edits are
// disjoint and guarded by the text they replace.
func (b *Batch) TextEdits(file source.FileID) []diag.TextEdit {
	text := b.root.Text()
	edits := make([]diag.TextEdit, 0, len(b.changes))
	for _, m := range b.changes {
		var repl string
		for _, el := range m.els {
			repl += greenText(el)
		}
		edits = append(edits, diag.TextEdit{
			Span:    source.SpanOf(file, m.old),
			NewText: repl,
			OldText: text[m.old.Start:m.old.End],
		})
	}
	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].Span.Start < edits[j].Span.Start
	})
	return edits
}

// Fix lowers the batch to a fix on file.
func (b *Batch) Fix(title string, file source.FileID, opts ...Option) diag.Fix {
	return build(title, diag.FixApplicabilityAlwaysSafe, b.TextEdits(file), opts)
}

func pathOf(n *syntax.Node) []int {
	var path []int
	for cur := n; cur.Parent() != nil; cur = cur.Parent() {
		path = append(path, cur.Index())
	}
	slices.Reverse(path)
	return path
}

func greenAt(root *syntax.GreenNode, path []int) *syntax.GreenNode {
	g := root
	for _, i := range path {
		g = g.Slot(i).(*syntax.GreenNode)
	}
	return g
}

func greenText(el syntax.GreenElement) string {
	switch g := el.(type) {
	case *syntax.GreenToken:
		if g != nil {
			return g.FullText()
		}
	case *syntax.GreenNode:
		if g != nil {
			return g.Text()
		}
	}
	return ""
}

// slotsRange returns the text range of slots [start, end) of parent; an empty
// range sits where slot start begins.
func slotsRange(parent *syntax.Node, start, end int) syntax.TextRange {
	g := parent.Green()
	at := func(i int) uint32 {
		if i >= g.SlotCount() {
			return parent.TextRange().End
		}
		return parent.Offset() + g.SlotOffset(i)
	}
	return syntax.TextRange{Start: at(start), End: at(end)}
}

// opensTree reports whether tok is the first token of its tree, the only
// place a BOM or shebang may go.
func opensTree(tok *syntax.Token) bool {
	return tok != nil && tok.PrevToken() == nil
}

// checkTokens validates the trivia of every token in el; only the first one
// may open the tree.
func checkTokens(el syntax.GreenElement, first bool) error {
	var toks []*syntax.GreenToken
	switch g := el.(type) {
	case *syntax.GreenToken:
		if g != nil {
			toks = []*syntax.GreenToken{g}
		}
	case *syntax.GreenNode:
		if g != nil {
			toks = g.Tokens()
		}
	}
	for i, tok := range toks {
		if err := syntax.ValidateTrivia(tok.Leading(), tok.Trailing(), first && i == 0); err != nil {
			return err
		}
	}
	return nil
}

func transferTrivia(c *syntax.Cache, tok *syntax.GreenToken, leading, trailing []syntax.Trivia, first bool) (*syntax.GreenToken, error) {
	if first {
		return c.FirstToken(tok.Kind(), tok.Text(), leading, trailing)
	}
	return c.Token(tok.Kind(), tok.Text(), leading, trailing)
}

// withEdgeTrivia replaces the leading trivia of the first token of n and the
// trailing trivia of its last token.
func withEdgeTrivia(c *syntax.Cache, n *syntax.GreenNode, leading, trailing []syntax.Trivia, first bool) (*syntax.GreenNode, error) {
	var err error
	n, err = mapEdgeToken(c, n, true, func(t *syntax.GreenToken) (*syntax.GreenToken, error) {
		return transferTrivia(c, t, leading, t.Trailing(), first)
	})
	if err != nil {
		return nil, err
	}
	return mapEdgeToken(c, n, false, func(t *syntax.GreenToken) (*syntax.GreenToken, error) {
		return t.WithTrailing(c, trailing)
	})
}

func mapEdgeToken(c *syntax.Cache, n *syntax.GreenNode, first bool, fn func(*syntax.GreenToken) (*syntax.GreenToken, error)) (*syntax.GreenNode, error) {
	count := n.SlotCount()
	for k := range count {
		i := k
		if !first {
			i = count - 1 - k
		}
		switch el := n.Slot(i).(type) {
		case *syntax.GreenToken:
			t, err := fn(el)
			if err != nil {
				return nil, err
			}
			return n.ReplaceSlot(c, i, t), nil
		case *syntax.GreenNode:
			if len(el.Tokens()) == 0 {
				continue
			}
			sub, err := mapEdgeToken(c, el, first, fn)
			if err != nil {
				return nil, err
			}
			return n.ReplaceSlot(c, i, sub), nil
		}
	}
	return n, nil
}
