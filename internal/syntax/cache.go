package syntax

import (
	"encoding/binary"
	"slices"
	"sync"
	"weak"

	"github.com/cespare/xxhash/v2"
)

// Cache interns green tokens and nodes.
//
// Entries are held weakly: a green element stays in the cache only while some
// tree references it. Lookups and inserts go through one lock, so a Cache may
// be shared by several builders running on different goroutines.
type Cache struct {
	mu     sync.Mutex
	tokens map[uint64][]weak.Pointer[GreenToken]
	nodes  map[uint64][]weak.Pointer[GreenNode]
	stats  CacheStats
}

// CacheStats counts cache traffic since creation.
type CacheStats struct {
	TokenHits   uint64
	TokenMisses uint64
	NodeHits    uint64
	NodeMisses  uint64
}

// NewCache returns an empty cache.
func NewCache() *Cache {
	return &Cache{
		tokens: make(map[uint64][]weak.Pointer[GreenToken]),
		nodes:  make(map[uint64][]weak.Pointer[GreenNode]),
	}
}

// Stats returns a snapshot of the hit/miss counters.
func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// Token returns the interned token with the given content. The token may sit
// anywhere but at the start of a tree, so a BOM or shebang is rejected.
func (c *Cache) Token(kind Kind, text string, leading, trailing []Trivia) (*GreenToken, error) {
	if err := ValidateTrivia(leading, trailing, false); err != nil {
		return nil, err
	}
	return c.token(kind, text, leading, trailing), nil
}

// FirstToken is Token for the first token of a tree, which alone may carry a
// BOM and a shebang.
func (c *Cache) FirstToken(kind Kind, text string, leading, trailing []Trivia) (*GreenToken, error) {
	if err := ValidateTrivia(leading, trailing, true); err != nil {
		return nil, err
	}
	return c.token(kind, text, leading, trailing), nil
}

// MustToken is Token for callers that construct trivia they know to be valid.
func (c *Cache) MustToken(kind Kind, text string, leading, trailing []Trivia) *GreenToken {
	t, err := c.Token(kind, text, leading, trailing)
	if err != nil {
		panic(err)
	}
	return t
}

func (c *Cache) token(kind Kind, text string, leading, trailing []Trivia) *GreenToken {
	h := hashToken(kind, text, leading, trailing)

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.tokens[h]
	live := bucket[:0]
	var found *GreenToken
	for _, wp := range bucket {
		t := wp.Value()
		if t == nil {
			continue // собран GC
		}
		live = append(live, wp)
		if found == nil && t.kind == kind && t.text == text &&
			triviaEqual(t.leading, leading) && triviaEqual(t.trailing, trailing) {
			found = t
		}
	}
	if found != nil {
		c.tokens[h] = live
		c.stats.TokenHits++
		return found
	}

	width := addWidth(addWidth(triviaLen(leading), widthOf(text)), triviaLen(trailing))
	t := &GreenToken{
		kind:     kind,
		text:     text,
		leading:  slices.Clone(leading),
		trailing: slices.Clone(trailing),
		width:    width,
		hash:     h,
	}
	c.tokens[h] = append(live, weak.Make(t))
	c.stats.TokenMisses++
	return t
}

// Node returns the interned node with the given kind and slots.
// Children are compared by identity, which is structural equality because
// every child came out of a cache.
func (c *Cache) Node(kind Kind, slots []GreenElement) *GreenNode {
	norm := make([]GreenElement, len(slots))
	for i, s := range slots {
		norm[i] = normalizeElement(s)
	}
	h := hashNode(kind, norm)

	c.mu.Lock()
	defer c.mu.Unlock()

	bucket := c.nodes[h]
	live := bucket[:0]
	var found *GreenNode
	for _, wp := range bucket {
		n := wp.Value()
		if n == nil {
			continue
		}
		live = append(live, wp)
		if found == nil && n.kind == kind && slices.Equal(n.slots, norm) {
			found = n
		}
	}
	if found != nil {
		c.nodes[h] = live
		c.stats.NodeHits++
		return found
	}

	rel := make([]uint32, len(norm))
	var width uint32
	for i, s := range norm {
		rel[i] = width
		if s != nil {
			width = addWidth(width, s.TextLen())
		}
	}
	n := &GreenNode{kind: kind, slots: norm, rel: rel, width: width, hash: h}
	c.nodes[h] = append(live, weak.Make(n))
	c.stats.NodeMisses++
	return n
}

// Len returns the number of live interned entries.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, b := range c.tokens {
		for _, wp := range b {
			if wp.Value() != nil {
				n++
			}
		}
	}
	for _, b := range c.nodes {
		for _, wp := range b {
			if wp.Value() != nil {
				n++
			}
		}
	}
	return n
}

// Prune drops entries whose elements have been collected.
func (c *Cache) Prune() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for h, b := range c.tokens {
		b = slices.DeleteFunc(b, func(wp weak.Pointer[GreenToken]) bool { return wp.Value() == nil })
		if len(b) == 0 {
			delete(c.tokens, h)
		} else {
			c.tokens[h] = b
		}
	}
	for h, b := range c.nodes {
		b = slices.DeleteFunc(b, func(wp weak.Pointer[GreenNode]) bool { return wp.Value() == nil })
		if len(b) == 0 {
			delete(c.nodes, h)
		} else {
			c.nodes[h] = b
		}
	}
}

func hashToken(kind Kind, text string, leading, trailing []Trivia) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(kind))
	buf[2] = 't'
	_, _ = d.Write(buf[:3])
	writeString(d, text)
	for _, tr := range leading {
		_, _ = d.Write([]byte{byte(tr.Kind)})
		writeString(d, tr.Text)
	}
	_, _ = d.Write([]byte{0xFF})
	for _, tr := range trailing {
		_, _ = d.Write([]byte{byte(tr.Kind)})
		writeString(d, tr.Text)
	}
	return d.Sum64()
}

func hashNode(kind Kind, slots []GreenElement) uint64 {
	d := xxhash.New()
	var buf [8]byte
	binary.LittleEndian.PutUint16(buf[:2], uint16(kind))
	buf[2] = 'n'
	_, _ = d.Write(buf[:3])
	for _, s := range slots {
		if s == nil {
			_, _ = d.Write([]byte{0})
			continue
		}
		binary.LittleEndian.PutUint64(buf[:], s.Hash())
		_, _ = d.Write([]byte{1})
		_, _ = d.Write(buf[:])
	}
	return d.Sum64()
}

func writeString(d *xxhash.Digest, s string) {
	var buf [4]byte
	binary.LittleEndian.PutUint32(buf[:], widthOf(s))
	_, _ = d.Write(buf[:])
	_, _ = d.WriteString(s)
}
