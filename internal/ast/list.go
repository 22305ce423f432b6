package ast

import (
	"iter"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// List is an unseparated list of typed nodes. Every child slot holds one item.
type List[T Node] struct {
	syntax *syntax.Node
	cast   func(*syntax.Node) (T, bool)
}

// NewList wraps a list node. n may be nil, which yields an empty list.
func NewList[T Node](n *syntax.Node, cast func(*syntax.Node) (T, bool)) List[T] {
	return List[T]{syntax: n, cast: cast}
}

func (l List[T]) Syntax() *syntax.Node { return l.syntax }

// Len returns the number of child slots.
func (l List[T]) Len() int {
	if l.syntax == nil {
		return 0
	}
	return l.syntax.SlotCount()
}

func (l List[T]) IsEmpty() bool { return l.Len() == 0 }

// At returns the item in slot i.
func (l List[T]) At(i int) SlotResult[T] {
	return itemAt(l.syntax, i, l.cast)
}

// All yields every slot as a result.
func (l List[T]) All() iter.Seq2[int, SlotResult[T]] {
	return func(yield func(int, SlotResult[T]) bool) {
		for i := range l.Len() {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Items returns the successfully cast items.
func (l List[T]) Items() []T {
	out := make([]T, 0, l.Len())
	for _, r := range l.All() {
		if r.Ok() {
			out = append(out, r.Value)
		}
	}
	return out
}

// First returns the first item.
func (l List[T]) First() (T, bool) {
	r := l.At(0)
	return r.Value, r.Ok()
}

// Last returns the last item.
func (l List[T]) Last() (T, bool) {
	r := l.At(l.Len() - 1)
	return r.Value, r.Ok()
}

func (l List[T]) Values() []any {
	out := make([]any, 0, l.Len())
	for _, r := range l.All() {
		out = append(out, resultValue(r))
	}
	return out
}

// SeparatedElement pairs an item with the separator following it.
type SeparatedElement[T Node] struct {
	Item      SlotResult[T]
	Separator *syntax.Token
}

// SeparatedList is an `item (sep item)* sep?` list.
// Items sit in even slots, separators in odd ones. A trailing separator is
// followed by an empty item slot.
type SeparatedList[T Node] struct {
	syntax *syntax.Node
	cast   func(*syntax.Node) (T, bool)
}

// NewSeparatedList wraps a separated list node. n may be nil.
func NewSeparatedList[T Node](n *syntax.Node, cast func(*syntax.Node) (T, bool)) SeparatedList[T] {
	return SeparatedList[T]{syntax: n, cast: cast}
}

func (l SeparatedList[T]) Syntax() *syntax.Node { return l.syntax }

func (l SeparatedList[T]) slotCount() int {
	if l.syntax == nil {
		return 0
	}
	return l.syntax.SlotCount()
}

// Len returns the number of items. The empty slot after a trailing separator
// does not count.
func (l SeparatedList[T]) Len() int {
	n := l.slotCount()
	if n%2 == 0 {
		return n / 2
	}
	items := (n + 1) / 2
	if l.TrailingSeparator() != nil {
		items--
	}
	return items
}

func (l SeparatedList[T]) IsEmpty() bool { return l.Len() == 0 }

// At returns item i.
func (l SeparatedList[T]) At(i int) SlotResult[T] {
	return itemAt(l.syntax, 2*i, l.cast)
}

// All yields every item as a result.
func (l SeparatedList[T]) All() iter.Seq2[int, SlotResult[T]] {
	return func(yield func(int, SlotResult[T]) bool) {
		for i := range l.Len() {
			if !yield(i, l.At(i)) {
				return
			}
		}
	}
}

// Items returns the successfully cast items.
func (l SeparatedList[T]) Items() []T {
	out := make([]T, 0, l.Len())
	for _, r := range l.All() {
		if r.Ok() {
			out = append(out, r.Value)
		}
	}
	return out
}

// First returns the first item.
func (l SeparatedList[T]) First() (T, bool) {
	r := l.At(0)
	return r.Value, r.Ok()
}

// Last returns the last item.
func (l SeparatedList[T]) Last() (T, bool) {
	r := l.At(l.Len() - 1)
	return r.Value, r.Ok()
}

// Separators returns the separator tokens in order.
func (l SeparatedList[T]) Separators() []*syntax.Token {
	var out []*syntax.Token
	for i := 1; i < l.slotCount(); i += 2 {
		if tok := l.syntax.SlotToken(i); tok != nil {
			out = append(out, tok)
		}
	}
	return out
}

// TrailingSeparator returns the separator after the last item, if any.
func (l SeparatedList[T]) TrailingSeparator() *syntax.Token {
	n := l.slotCount()
	switch {
	case n == 0:
		return nil
	case n%2 == 0:
		return l.syntax.SlotToken(n - 1)
	case n >= 3 && l.syntax.Slot(n-1) == nil:
		return l.syntax.SlotToken(n - 2)
	}
	return nil
}

// Elements returns (item, separator) pairs. The separator is nil for the last
// item unless the list ends with a trailing separator.
func (l SeparatedList[T]) Elements() []SeparatedElement[T] {
	out := make([]SeparatedElement[T], 0, l.Len())
	for i := range l.Len() {
		out = append(out, SeparatedElement[T]{
			Item:      l.At(i),
			Separator: l.syntax.SlotToken(2*i + 1),
		})
	}
	return out
}

func (l SeparatedList[T]) Values() []any {
	out := make([]any, 0, l.Len())
	for _, r := range l.All() {
		out = append(out, resultValue(r))
	}
	return out
}

func itemAt[T Node](n *syntax.Node, slot int, cast func(*syntax.Node) (T, bool)) SlotResult[T] {
	if n == nil || slot < 0 || slot >= n.SlotCount() {
		return SlotResult[T]{Err: &MissingRequiredChildError{Kind: "list", Slot: slot, Name: "item"}}
	}
	return ResultOf(RequiredNode(n, slot, "item", cast))
}

func resultValue[T Node](r SlotResult[T]) any {
	if !r.Ok() {
		return Missing{Required: true}
	}
	return r.Value
}
