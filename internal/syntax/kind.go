package syntax

import (
	"fmt"
	"math/bits"
	"strings"
)

// Kind identifies the syntactic category of a token or node.
// The meaning of a value is defined by the language Registry.
type Kind uint16

// Tombstone is the reserved zero kind. It never appears in a valid tree.
const Tombstone Kind = 0

// MaxSetKind is the exclusive upper bound of kinds a KindSet can hold.
const MaxSetKind = 512

const kindSetWords = MaxSetKind / 64

// KindSet is a fixed-size bitset of kinds.
// Sets are values: Union and Insert return new sets.
type KindSet struct {
	bits [kindSetWords]uint64
}

// KindSetOf builds a set from the given kinds.
func KindSetOf(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s = s.Insert(k)
	}
	return s
}

func checkSetKind(k Kind) {
	if int(k) >= MaxSetKind {
		panic(fmt.Errorf("syntax: kind %d does not fit into KindSet (max %d)", k, MaxSetKind))
	}
}

// Insert returns a copy of s with k added.
func (s KindSet) Insert(k Kind) KindSet {
	checkSetKind(k)
	s.bits[k/64] |= 1 << (k % 64)
	return s
}

// Contains reports whether k is a member of s.
func (s KindSet) Contains(k Kind) bool {
	if int(k) >= MaxSetKind {
		return false
	}
	return s.bits[k/64]&(1<<(k%64)) != 0
}

// Union returns the union of s and other.
func (s KindSet) Union(other KindSet) KindSet {
	for i := range s.bits {
		s.bits[i] |= other.bits[i]
	}
	return s
}

// Intersect returns the intersection of s and other.
func (s KindSet) Intersect(other KindSet) KindSet {
	for i := range s.bits {
		s.bits[i] &= other.bits[i]
	}
	return s
}

// IsEmpty reports whether the set has no members.
func (s KindSet) IsEmpty() bool {
	for _, w := range s.bits {
		if w != 0 {
			return false
		}
	}
	return true
}

// Len returns the number of members.
func (s KindSet) Len() int {
	n := 0
	for _, w := range s.bits {
		n += bits.OnesCount64(w)
	}
	return n
}

// Kinds returns members in ascending order.
func (s KindSet) Kinds() []Kind {
	out := make([]Kind, 0, s.Len())
	for i, w := range s.bits {
		for w != 0 {
			tz := bits.TrailingZeros64(w)
			out = append(out, Kind(i*64+tz))
			w &= w - 1
		}
	}
	return out
}

// Format renders the set using the registry names.
func (s KindSet) Format(reg *Registry) string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, k := range s.Kinds() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(reg.Name(k))
	}
	sb.WriteByte('}')
	return sb.String()
}
