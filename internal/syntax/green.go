package syntax

import (
	"fmt"
	"slices"
	"strings"

	"fortio.org/safecast"
)

// GreenElement is either a *GreenNode or a *GreenToken.
// A nil GreenElement in a node slot marks an absent child.
type GreenElement interface {
	Kind() Kind
	// TextLen is the full width, trivia included.
	TextLen() uint32
	// Hash is the structural content hash.
	Hash() uint64
	writeText(sb *strings.Builder)
	isGreen()
}

// GreenToken is an immutable, interned token with its trivia.
type GreenToken struct {
	kind     Kind
	text     string
	leading  []Trivia
	trailing []Trivia
	width    uint32
	hash     uint64
}

func (*GreenToken) isGreen() {}

// Kind returns the token kind.
func (t *GreenToken) Kind() Kind { return t.kind }

// Text returns the token text without trivia.
func (t *GreenToken) Text() string { return t.text }

// Leading returns the leading trivia. The slice must not be modified.
func (t *GreenToken) Leading() []Trivia { return t.leading }

// Trailing returns the trailing trivia. The slice must not be modified.
func (t *GreenToken) Trailing() []Trivia { return t.trailing }

// LeadingLen returns the byte width of the leading trivia.
func (t *GreenToken) LeadingLen() uint32 { return triviaLen(t.leading) }

// TrailingLen returns the byte width of the trailing trivia.
func (t *GreenToken) TrailingLen() uint32 { return triviaLen(t.trailing) }

// TextLen returns the full width: leading trivia, text and trailing trivia.
func (t *GreenToken) TextLen() uint32 { return t.width }

// Hash returns the content hash.
func (t *GreenToken) Hash() uint64 { return t.hash }

// FullText returns leading trivia, text and trailing trivia concatenated.
func (t *GreenToken) FullText() string {
	var sb strings.Builder
	sb.Grow(int(t.width))
	t.writeText(&sb)
	return sb.String()
}

func (t *GreenToken) writeText(sb *strings.Builder) {
	for _, tr := range t.leading {
		sb.WriteString(tr.Text)
	}
	sb.WriteString(t.text)
	for _, tr := range t.trailing {
		sb.WriteString(tr.Text)
	}
}

func (t *GreenToken) String() string {
	return fmt.Sprintf("GreenToken(%d, %q)", t.kind, t.text)
}

// GreenNode is an immutable, interned interior node.
// Slots keep their position: an absent optional child is a nil slot.
type GreenNode struct {
	kind  Kind
	slots []GreenElement
	rel   []uint32 // смещение слота относительно начала узла
	width uint32
	hash  uint64
}

func (*GreenNode) isGreen() {}

// Kind returns the node kind.
func (n *GreenNode) Kind() Kind { return n.kind }

// TextLen returns the sum of the children widths.
func (n *GreenNode) TextLen() uint32 { return n.width }

// Hash returns the content hash.
func (n *GreenNode) Hash() uint64 { return n.hash }

// SlotCount returns the number of slots, empty ones included.
func (n *GreenNode) SlotCount() int { return len(n.slots) }

// Slot returns the element in slot i, or nil when the slot is empty or out of range.
func (n *GreenNode) Slot(i int) GreenElement {
	if i < 0 || i >= len(n.slots) {
		return nil
	}
	return n.slots[i]
}

// SlotOffset returns the offset of slot i relative to the node start.
func (n *GreenNode) SlotOffset(i int) uint32 { return n.rel[i] }

// Slots returns a copy of the slots.
func (n *GreenNode) Slots() []GreenElement { return slices.Clone(n.slots) }

// Text returns the full text of the subtree.
func (n *GreenNode) Text() string {
	var sb strings.Builder
	sb.Grow(int(n.width))
	n.writeText(&sb)
	return sb.String()
}

func (n *GreenNode) writeText(sb *strings.Builder) {
	for _, s := range n.slots {
		if s != nil {
			s.writeText(sb)
		}
	}
}

func (n *GreenNode) String() string {
	return fmt.Sprintf("GreenNode(%d, %d slots, %d bytes)", n.kind, len(n.slots), n.width)
}

// ReplaceSlot returns a node with slot i replaced by el (nil empties the slot).
func (n *GreenNode) ReplaceSlot(c *Cache, i int, el GreenElement) *GreenNode {
	if i < 0 || i >= len(n.slots) {
		panic(fmt.Errorf("syntax: slot %d out of range [0,%d)", i, len(n.slots)))
	}
	slots := slices.Clone(n.slots)
	slots[i] = el
	return c.Node(n.kind, slots)
}

// Splice replaces slots [start, end) with els and returns the new node.
func (n *GreenNode) Splice(c *Cache, start, end int, els ...GreenElement) *GreenNode {
	if start < 0 || end < start || end > len(n.slots) {
		panic(fmt.Errorf("syntax: splice range [%d,%d) out of [0,%d]", start, end, len(n.slots)))
	}
	slots := make([]GreenElement, 0, len(n.slots)-(end-start)+len(els))
	slots = append(slots, n.slots[:start]...)
	slots = append(slots, els...)
	slots = append(slots, n.slots[end:]...)
	return c.Node(n.kind, slots)
}

// WithKind returns a node with the same slots and a different kind.
func (n *GreenNode) WithKind(c *Cache, kind Kind) *GreenNode {
	if kind == n.kind {
		return n
	}
	return c.Node(kind, n.slots)
}

// Tokens returns the tokens of the subtree in source order.
func (n *GreenNode) Tokens() []*GreenToken {
	var out []*GreenToken
	var walk func(*GreenNode)
	walk = func(g *GreenNode) {
		for _, s := range g.slots {
			switch el := s.(type) {
			case *GreenToken:
				out = append(out, el)
			case *GreenNode:
				walk(el)
			}
		}
	}
	walk(n)
	return out
}

func normalizeElement(el GreenElement) GreenElement {
	switch v := el.(type) {
	case *GreenNode:
		if v == nil {
			return nil
		}
	case *GreenToken:
		if v == nil {
			return nil
		}
	}
	return el
}

func widthOf(s string) uint32 {
	w, err := safecast.Conv[uint32](len(s))
	if err != nil {
		panic(fmt.Errorf("text length overflow: %w", err))
	}
	return w
}

func addWidth(a, b uint32) uint32 {
	sum := uint64(a) + uint64(b)
	w, err := safecast.Conv[uint32](sum)
	if err != nil {
		panic(fmt.Errorf("tree width overflow: %w", err))
	}
	return w
}
