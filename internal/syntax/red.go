package syntax

import (
	"iter"
	"sync/atomic"
)

// Element is a red *Node or a red *Token.
type Element interface {
	Kind() Kind
	Parent() *Node
	// Index is the slot index inside the parent.
	Index() int
	// TextRange is the absolute range, trivia included.
	TextRange() TextRange
	GreenElement() GreenElement
	isElement()
}

// Node is a positioned view of a green node.
//
// Nodes are created lazily while navigating. Children of one node are created
// once and reused, so navigating to the same place twice through the same
// parent yields the same *Node.
type Node struct {
	green  *GreenNode
	parent *Node
	index  int
	offset uint32
	reg    *Registry
	slots  atomic.Pointer[[]Element]
}

func (*Node) isElement() {}

// NewRoot creates the red root of a green tree.
func NewRoot(reg *Registry, green *GreenNode) *Node {
	return &Node{green: green, reg: reg}
}

func (n *Node) Kind() Kind                 { return n.green.kind }
func (n *Node) Green() *GreenNode          { return n.green }
func (n *Node) GreenElement() GreenElement { return n.green }
func (n *Node) Parent() *Node              { return n.parent }
func (n *Node) Index() int                 { return n.index }
func (n *Node) Offset() uint32             { return n.offset }
func (n *Node) Registry() *Registry        { return n.reg }

// KindName returns the registry name of the node kind.
func (n *Node) KindName() string { return n.reg.Name(n.green.kind) }

// TextRange returns the absolute range of the subtree, trivia included.
func (n *Node) TextRange() TextRange { return RangeAt(n.offset, n.green.width) }

// TextTrimmedRange excludes the leading trivia of the first token and the
// trailing trivia of the last token.
func (n *Node) TextTrimmedRange() TextRange {
	first, last := n.FirstToken(), n.LastToken()
	if first == nil {
		return TextRange{Start: n.offset, End: n.offset}
	}
	return TextRange{Start: first.TextTrimmedRange().Start, End: last.TextTrimmedRange().End}
}

// Text returns the full text of the subtree.
func (n *Node) Text() string { return n.green.Text() }

// TextTrimmed returns the text without the outer trivia.
func (n *Node) TextTrimmed() string {
	r := n.TextTrimmedRange()
	full := n.green.Text()
	return full[r.Start-n.offset : r.End-n.offset]
}

func (n *Node) String() string { return n.Text() }

// Root returns the topmost ancestor.
func (n *Node) Root() *Node {
	for n.parent != nil {
		n = n.parent
	}
	return n
}

func (n *Node) children() []Element {
	if p := n.slots.Load(); p != nil {
		return *p
	}
	out := make([]Element, len(n.green.slots))
	for i, s := range n.green.slots {
		off := n.offset + n.green.rel[i]
		switch g := s.(type) {
		case *GreenNode:
			out[i] = &Node{green: g, parent: n, index: i, offset: off, reg: n.reg}
		case *GreenToken:
			out[i] = &Token{green: g, parent: n, index: i, offset: off}
		}
	}
	if n.slots.CompareAndSwap(nil, &out) {
		return out
	}
	return *n.slots.Load()
}

// SlotCount returns the number of slots, empty ones included.
func (n *Node) SlotCount() int { return len(n.green.slots) }

// Slot returns the element in slot i, or nil when the slot is empty.
func (n *Node) Slot(i int) Element {
	kids := n.children()
	if i < 0 || i >= len(kids) {
		return nil
	}
	return kids[i]
}

// SlotNode returns slot i when it holds a node.
func (n *Node) SlotNode(i int) *Node {
	child, _ := n.Slot(i).(*Node)
	return child
}

// SlotToken returns slot i when it holds a token.
func (n *Node) SlotToken(i int) *Token {
	tok, _ := n.Slot(i).(*Token)
	return tok
}

// Slots returns all slots; empty slots are nil.
func (n *Node) Slots() []Element {
	kids := n.children()
	out := make([]Element, len(kids))
	copy(out, kids)
	return out
}

// Children returns the present child elements in order.
func (n *Node) Children() []Element {
	kids := n.children()
	out := make([]Element, 0, len(kids))
	for _, k := range kids {
		if k != nil {
			out = append(out, k)
		}
	}
	return out
}

// ChildNodes returns the child nodes, tokens skipped.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, k := range n.children() {
		if c, ok := k.(*Node); ok {
			out = append(out, c)
		}
	}
	return out
}

// FirstChild returns the first present child element.
func (n *Node) FirstChild() Element {
	for _, k := range n.children() {
		if k != nil {
			return k
		}
	}
	return nil
}

// LastChild returns the last present child element.
func (n *Node) LastChild() Element {
	kids := n.children()
	for i := len(kids) - 1; i >= 0; i-- {
		if kids[i] != nil {
			return kids[i]
		}
	}
	return nil
}

// NextSibling returns the next present element in the parent.
func (n *Node) NextSibling() Element { return siblingOf(n.parent, n.index, 1) }

// PrevSibling returns the previous present element in the parent.
func (n *Node) PrevSibling() Element { return siblingOf(n.parent, n.index, -1) }

func siblingOf(parent *Node, index, step int) Element {
	if parent == nil {
		return nil
	}
	kids := parent.children()
	for i := index + step; i >= 0 && i < len(kids); i += step {
		if kids[i] != nil {
			return kids[i]
		}
	}
	return nil
}

// FirstToken returns the first token of the subtree.
func (n *Node) FirstToken() *Token {
	for _, k := range n.children() {
		switch el := k.(type) {
		case *Token:
			return el
		case *Node:
			if t := el.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last token of the subtree.
func (n *Node) LastToken() *Token {
	kids := n.children()
	for i := len(kids) - 1; i >= 0; i-- {
		switch el := kids[i].(type) {
		case *Token:
			return el
		case *Node:
			if t := el.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// Ancestors yields n and then each parent up to the root.
func (n *Node) Ancestors() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		for cur := n; cur != nil; cur = cur.parent {
			if !yield(cur) {
				return
			}
		}
	}
}

// Descendants yields n and all nodes below it in pre-order.
func (n *Node) Descendants() iter.Seq[*Node] {
	return func(yield func(*Node) bool) {
		n.walkNodes(yield)
	}
}

func (n *Node) walkNodes(yield func(*Node) bool) bool {
	if !yield(n) {
		return false
	}
	for _, k := range n.children() {
		if c, ok := k.(*Node); ok {
			if !c.walkNodes(yield) {
				return false
			}
		}
	}
	return true
}

// WalkEvent is produced by Preorder.
type WalkEvent struct {
	Enter   bool
	Element Element
}

// Preorder yields enter/leave events for every element of the subtree.
// Tokens produce a single enter event.
func (n *Node) Preorder() iter.Seq[WalkEvent] {
	return func(yield func(WalkEvent) bool) {
		n.preorder(yield)
	}
}

func (n *Node) preorder(yield func(WalkEvent) bool) bool {
	if !yield(WalkEvent{Enter: true, Element: n}) {
		return false
	}
	for _, k := range n.children() {
		switch el := k.(type) {
		case *Node:
			if !el.preorder(yield) {
				return false
			}
		case *Token:
			if !yield(WalkEvent{Enter: true, Element: el}) {
				return false
			}
		}
	}
	return yield(WalkEvent{Enter: false, Element: n})
}

// Tokens yields the tokens of the subtree in source order.
func (n *Node) Tokens() iter.Seq[*Token] {
	return func(yield func(*Token) bool) {
		n.walkTokens(yield)
	}
}

func (n *Node) walkTokens(yield func(*Token) bool) bool {
	for _, k := range n.children() {
		switch el := k.(type) {
		case *Token:
			if !yield(el) {
				return false
			}
		case *Node:
			if !el.walkTokens(yield) {
				return false
			}
		}
	}
	return true
}

// TokenAtOffset describes the tokens touching an offset.
// Left and Right differ only when the offset sits on a token boundary.
type TokenAtOffset struct {
	Left  *Token
	Right *Token
}

// None reports whether no token touches the offset.
func (t TokenAtOffset) None() bool { return t.Left == nil && t.Right == nil }

// Single returns the token when exactly one token touches the offset.
func (t TokenAtOffset) Single() (*Token, bool) {
	if t.Left != nil && t.Right == nil {
		return t.Left, true
	}
	if t.Left == nil && t.Right != nil {
		return t.Right, true
	}
	if t.Left != nil && t.Left == t.Right {
		return t.Left, true
	}
	return nil, false
}

// TokenAtOffset finds the token(s) whose full range touches off.
func (n *Node) TokenAtOffset(off uint32) TokenAtOffset {
	if !n.TextRange().ContainsInclusive(off) {
		return TokenAtOffset{}
	}
	var res TokenAtOffset
	for tok := range n.Tokens() {
		tr := tok.TextRange()
		if tr.Empty() {
			continue
		}
		if tr.Contains(off) {
			if tr.Start == off && res.Left != nil {
				res.Right = tok
				return res
			}
			return TokenAtOffset{Left: tok, Right: tok}
		}
		if tr.End == off {
			res.Left = tok
			continue
		}
		if tr.Start > off {
			break
		}
	}
	return res
}

// CoveringElement returns the deepest element whose range contains r.
func (n *Node) CoveringElement(r TextRange) Element {
	if !n.TextRange().ContainsRange(r) {
		return nil
	}
	var cur Element = n
	for {
		node, ok := cur.(*Node)
		if !ok {
			return cur
		}
		var next Element
		for _, k := range node.children() {
			if k == nil || k.TextRange().Empty() {
				continue
			}
			if k.TextRange().ContainsRange(r) {
				next = k
				break
			}
		}
		if next == nil {
			return cur
		}
		cur = next
	}
}

// Equal reports whether both nodes denote the same position in the same tree.
func (n *Node) Equal(other *Node) bool {
	for a, b := n, other; ; a, b = a.parent, b.parent {
		if a == b {
			return true
		}
		if a == nil || b == nil {
			return false
		}
		if a.green != b.green || a.offset != b.offset || a.index != b.index {
			return false
		}
	}
}

// Token is a positioned view of a green token.
type Token struct {
	green  *GreenToken
	parent *Node
	index  int
	offset uint32
}

func (*Token) isElement() {}

func (t *Token) Kind() Kind                 { return t.green.kind }
func (t *Token) Green() *GreenToken         { return t.green }
func (t *Token) GreenElement() GreenElement { return t.green }
func (t *Token) Parent() *Node              { return t.parent }
func (t *Token) Index() int                 { return t.index }

// Text returns the token text without trivia.
func (t *Token) Text() string { return t.green.text }

// FullText returns the token text with trivia.
func (t *Token) FullText() string { return t.green.FullText() }

func (t *Token) String() string { return t.green.text }

// KindName returns the registry name of the token kind.
func (t *Token) KindName() string {
	if t.parent == nil {
		return ""
	}
	return t.parent.reg.Name(t.green.kind)
}

// TextRange returns the absolute range with trivia.
func (t *Token) TextRange() TextRange { return RangeAt(t.offset, t.green.width) }

// TextTrimmedRange returns the range of the token text alone.
func (t *Token) TextTrimmedRange() TextRange {
	return RangeAt(t.offset+t.green.LeadingLen(), widthOf(t.green.text))
}

// Leading returns the leading trivia. The slice must not be modified.
func (t *Token) Leading() []Trivia { return t.green.leading }

// Trailing returns the trailing trivia. The slice must not be modified.
func (t *Token) Trailing() []Trivia { return t.green.trailing }

// TriviaPiece is a trivium with its absolute range.
type TriviaPiece struct {
	Trivia
	Range TextRange
}

// LeadingPieces returns the leading trivia with positions.
func (t *Token) LeadingPieces() []TriviaPiece {
	return pieces(t.offset, t.green.leading)
}

// TrailingPieces returns the trailing trivia with positions.
func (t *Token) TrailingPieces() []TriviaPiece {
	return pieces(t.TextTrimmedRange().End, t.green.trailing)
}

func pieces(start uint32, list []Trivia) []TriviaPiece {
	out := make([]TriviaPiece, len(list))
	off := start
	for i, tr := range list {
		out[i] = TriviaPiece{Trivia: tr, Range: RangeAt(off, tr.Len())}
		off += tr.Len()
	}
	return out
}

// HasLeadingComments reports whether any leading trivium is a comment.
func (t *Token) HasLeadingComments() bool { return anyComment(t.green.leading) }

// HasTrailingComments reports whether any trailing trivium is a comment.
func (t *Token) HasTrailingComments() bool { return anyComment(t.green.trailing) }

// HasLeadingNewline reports whether the leading trivia contain a line break.
func (t *Token) HasLeadingNewline() bool {
	for _, tr := range t.green.leading {
		if tr.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

func anyComment(list []Trivia) bool {
	for _, tr := range list {
		if tr.IsComment() {
			return true
		}
	}
	return false
}

// NextToken returns the following token in the whole tree.
func (t *Token) NextToken() *Token { return adjacentToken(t, 1) }

// PrevToken returns the preceding token in the whole tree.
func (t *Token) PrevToken() *Token { return adjacentToken(t, -1) }

func adjacentToken(el Element, step int) *Token {
	for el.Parent() != nil {
		parent := el.Parent()
		kids := parent.children()
		for i := el.Index() + step; i >= 0 && i < len(kids); i += step {
			switch k := kids[i].(type) {
			case *Token:
				return k
			case *Node:
				var tok *Token
				if step > 0 {
					tok = k.FirstToken()
				} else {
					tok = k.LastToken()
				}
				if tok != nil {
					return tok
				}
			}
		}
		el = parent
	}
	return nil
}

// Ancestors yields the parent chain of the token.
func (t *Token) Ancestors() iter.Seq[*Node] {
	if t.parent == nil {
		return func(func(*Node) bool) {}
	}
	return t.parent.Ancestors()
}

// Equal reports whether both tokens denote the same position in the same tree.
func (t *Token) Equal(other *Token) bool {
	if t == other {
		return true
	}
	if t == nil || other == nil {
		return false
	}
	if t.green != other.green || t.offset != other.offset || t.index != other.index {
		return false
	}
	if t.parent == nil || other.parent == nil {
		return t.parent == other.parent
	}
	return t.parent.Equal(other.parent)
}

// Replace returns a new root green tree where el is replaced by repl.
// A nil repl leaves the slot empty.
func Replace(c *Cache, el Element, repl GreenElement) *GreenNode {
	parent := el.Parent()
	if parent == nil {
		g, ok := repl.(*GreenNode)
		if !ok {
			panic("syntax: root can only be replaced by a node")
		}
		return g
	}
	var cur GreenElement = parent.green.ReplaceSlot(c, el.Index(), repl)
	for p := parent; p.parent != nil; p = p.parent {
		cur = p.parent.green.ReplaceSlot(c, p.index, cur)
	}
	return cur.(*GreenNode)
}
