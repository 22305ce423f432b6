package ast

import (
	"errors"
	"fmt"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Node is a typed view over a red node.
type Node interface {
	Syntax() *syntax.Node
}

// Composite is a node with named slots.
type Composite interface {
	Node
	Slots() []Slot
}

// Sequence is a list node.
type Sequence interface {
	Node
	// Values returns items as Node or Missing values; separators are skipped.
	Values() []any
}

// Slot is one named field of a composite node.
// Value is a Node, a *syntax.Token, a Missing marker or Items for bogus nodes.
type Slot struct {
	Name  string
	Value any
}

// Missing marks an empty slot.
type Missing struct {
	Required bool
}

// Items holds the raw children of a bogus node: Node or *syntax.Token values.
type Items []any

// ErrMissingRequiredChild matches every MissingRequiredChildError under errors.Is.
var ErrMissingRequiredChild = errors.New("missing required child")

// MissingRequiredChildError is returned by an accessor whose required slot is empty.
type MissingRequiredChildError struct {
	Kind string
	Slot int
	Name string
}

func (e *MissingRequiredChildError) Error() string {
	return fmt.Sprintf("%s: missing required child %q (slot %d)", e.Kind, e.Name, e.Slot)
}

func (e *MissingRequiredChildError) Is(target error) bool { return target == ErrMissingRequiredChild }

// UnexpectedKindError is returned when a slot holds an element of the wrong kind.
type UnexpectedKindError struct {
	Kind string
	Slot int
	Name string
	Got  string
}

func (e *UnexpectedKindError) Error() string {
	return fmt.Sprintf("%s: slot %q (%d) holds unexpected %s", e.Kind, e.Name, e.Slot, e.Got)
}

// SlotResult is the outcome of a required accessor.
type SlotResult[T any] struct {
	Value T
	Err   error
}

// ResultOf packs an accessor return pair.
func ResultOf[T any](v T, err error) SlotResult[T] {
	return SlotResult[T]{Value: v, Err: err}
}

// Ok reports whether the slot was present.
func (r SlotResult[T]) Ok() bool { return r.Err == nil }

// Get unpacks the result.
func (r SlotResult[T]) Get() (T, error) { return r.Value, r.Err }

// Optional is the outcome of an optional accessor.
type Optional[T any] struct {
	Value   T
	Present bool
}

// OptionalOf packs an optional accessor return pair.
func OptionalOf[T any](v T, ok bool) Optional[T] {
	return Optional[T]{Value: v, Present: ok}
}

// Get unpacks the optional.
func (o Optional[T]) Get() (T, bool) { return o.Value, o.Present }

// RequiredNode reads a required node slot.
func RequiredNode[T any](n *syntax.Node, slot int, name string, cast func(*syntax.Node) (T, bool)) (T, error) {
	var zero T
	el := n.Slot(slot)
	if el == nil {
		return zero, &MissingRequiredChildError{Kind: n.KindName(), Slot: slot, Name: name}
	}
	child, ok := el.(*syntax.Node)
	if !ok {
		return zero, &UnexpectedKindError{Kind: n.KindName(), Slot: slot, Name: name, Got: n.Registry().Name(el.Kind())}
	}
	v, ok := cast(child)
	if !ok {
		return zero, &UnexpectedKindError{Kind: n.KindName(), Slot: slot, Name: name, Got: child.KindName()}
	}
	return v, nil
}

// OptionalNode reads an optional node slot.
func OptionalNode[T any](n *syntax.Node, slot int, cast func(*syntax.Node) (T, bool)) (T, bool) {
	var zero T
	child := n.SlotNode(slot)
	if child == nil {
		return zero, false
	}
	return cast(child)
}

// RequiredToken reads a required token slot.
func RequiredToken(n *syntax.Node, slot int, name string) (*syntax.Token, error) {
	el := n.Slot(slot)
	if el == nil {
		return nil, &MissingRequiredChildError{Kind: n.KindName(), Slot: slot, Name: name}
	}
	tok, ok := el.(*syntax.Token)
	if !ok {
		return nil, &UnexpectedKindError{Kind: n.KindName(), Slot: slot, Name: name, Got: n.Registry().Name(el.Kind())}
	}
	return tok, nil
}

// OptionalToken reads an optional token slot; nil when absent.
func OptionalToken(n *syntax.Node, slot int) *syntax.Token {
	return n.SlotToken(slot)
}

// As asserts a typed node to a more specific type.
// It is the Go spelling of a downcast through a sum type.
func As[T Node](n Node) (T, bool) {
	v, ok := n.(T)
	return v, ok
}

// RawSlot reads slot i for generic walkers, wrapping nodes with wrap.
func RawSlot(n *syntax.Node, slot int, name string, required bool, wrap func(*syntax.Node) Node) Slot {
	switch el := n.Slot(slot).(type) {
	case *syntax.Token:
		return Slot{Name: name, Value: el}
	case *syntax.Node:
		return Slot{Name: name, Value: wrap(el)}
	}
	return Slot{Name: name, Value: Missing{Required: required}}
}

// BogusItems collects the children of a bogus node.
func BogusItems(n *syntax.Node, wrap func(*syntax.Node) Node) Items {
	kids := n.Children()
	out := make(Items, 0, len(kids))
	for _, k := range kids {
		switch el := k.(type) {
		case *syntax.Token:
			out = append(out, el)
		case *syntax.Node:
			out = append(out, wrap(el))
		}
	}
	return out
}
