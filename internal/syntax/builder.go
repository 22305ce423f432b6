package syntax

import (
	"errors"
	"fmt"
)

var (
	// ErrUnbalanced is returned when node starts and finishes do not pair up.
	ErrUnbalanced = errors.New("syntax: unbalanced start/finish")
	// ErrNoRoot is returned by Finish when the builder does not hold exactly one root node.
	ErrNoRoot = errors.New("syntax: builder must produce exactly one root node")
)

type frame struct {
	kind  Kind
	start int
	bogus bool
}

// Checkpoint marks a position in the builder so a node can be started
// retroactively around elements already emitted.
type Checkpoint struct {
	children int
	depth    int
}

// Builder assembles a green tree from a flat stream of start/token/finish calls.
//
// Finished nodes are aligned to their slot layout through the Registry, so
// absent optional children become empty slots. A node whose children do not fit
// its layout is demoted to its bogus kind.
type Builder struct {
	cache    *Cache
	reg      *Registry
	parents  []frame
	children []GreenElement
	tokens   int
	err      error
}

// NewBuilder returns a builder that interns into cache.
// reg may be nil, in which case no slot alignment happens.
func NewBuilder(cache *Cache, reg *Registry) *Builder {
	if cache == nil {
		cache = NewCache()
	}
	return &Builder{cache: cache, reg: reg}
}

// Cache returns the interning cache.
func (b *Builder) Cache() *Cache { return b.cache }

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

// Err returns the first error recorded by the builder.
func (b *Builder) Err() error { return b.err }

// StartNode opens a node of kind.
func (b *Builder) StartNode(kind Kind) {
	b.parents = append(b.parents, frame{kind: kind, start: len(b.children)})
}

// StartBogus opens a bogus node. Its children are kept as emitted.
func (b *Builder) StartBogus(kind Kind) {
	if b.reg != nil && !b.reg.IsBogus(kind) {
		b.fail(fmt.Errorf("syntax: %s is not a bogus kind", b.reg.Name(kind)))
	}
	b.parents = append(b.parents, frame{kind: kind, start: len(b.children), bogus: true})
}

// Checkpoint returns the current position.
func (b *Builder) Checkpoint() Checkpoint {
	return Checkpoint{children: len(b.children), depth: len(b.parents)}
}

// StartNodeAt opens a node that adopts every element emitted since cp.
func (b *Builder) StartNodeAt(cp Checkpoint, kind Kind) {
	if cp.depth != len(b.parents) || cp.children > len(b.children) {
		b.fail(fmt.Errorf("%w: stale checkpoint", ErrUnbalanced))
		return
	}
	b.parents = append(b.parents, frame{kind: kind, start: cp.children})
}

// FinishNode closes the innermost open node.
func (b *Builder) FinishNode() {
	if len(b.parents) == 0 {
		b.fail(fmt.Errorf("%w: finish without start", ErrUnbalanced))
		return
	}
	top := b.parents[len(b.parents)-1]
	b.parents = b.parents[:len(b.parents)-1]

	kids := make([]GreenElement, len(b.children)-top.start)
	copy(kids, b.children[top.start:])
	b.children = b.children[:top.start]

	kind := top.kind
	if b.reg != nil && !top.bogus {
		kind, kids = b.reg.Align(kind, kids)
	} else if top.bogus {
		kids = compact(kids)
	}
	b.children = append(b.children, b.cache.Node(kind, kids))
}

// FinishBogus closes a node opened with StartBogus.
func (b *Builder) FinishBogus() {
	if n := len(b.parents); n == 0 || !b.parents[n-1].bogus {
		b.fail(fmt.Errorf("%w: FinishBogus without StartBogus", ErrUnbalanced))
		return
	}
	b.FinishNode()
}

// Token emits a token. Only the first token of the tree may carry a BOM or shebang.
func (b *Builder) Token(kind Kind, text string, leading, trailing []Trivia) error {
	if err := ValidateTrivia(leading, trailing, b.tokens == 0); err != nil {
		b.fail(err)
		return err
	}
	b.tokens++
	b.children = append(b.children, b.cache.token(kind, text, leading, trailing))
	return nil
}

// Missing emits an explicit empty slot marker.
func (b *Builder) Missing() {
	b.children = append(b.children, nil)
}

// Element emits an already built green element (nil is an empty marker).
func (b *Builder) Element(el GreenElement) {
	if t, ok := el.(*GreenToken); ok && t != nil {
		if err := ValidateTrivia(t.leading, t.trailing, b.tokens == 0); err != nil {
			b.fail(err)
			return
		}
		b.tokens++
	} else if n, ok := el.(*GreenNode); ok && n != nil {
		b.tokens += len(n.Tokens())
	}
	b.children = append(b.children, normalizeElement(el))
}

// Finish returns the root node. It fails when nodes are still open or when the
// top level holds anything other than a single node.
func (b *Builder) Finish() (*GreenNode, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.parents) != 0 {
		return nil, fmt.Errorf("%w: %d node(s) left open", ErrUnbalanced, len(b.parents))
	}
	if len(b.children) != 1 {
		return nil, ErrNoRoot
	}
	root, ok := b.children[0].(*GreenNode)
	if !ok {
		return nil, ErrNoRoot
	}
	return root, nil
}
