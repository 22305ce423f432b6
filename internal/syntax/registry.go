package syntax

import (
	"fmt"
	"slices"
)

// Family is the coarse class of a kind.
type Family uint8

const (
	FamilyToken Family = iota + 1
	FamilyNode
	FamilyList
	FamilyBogus
)

func (f Family) String() string {
	switch f {
	case FamilyToken:
		return "token"
	case FamilyNode:
		return "node"
	case FamilyList:
		return "list"
	case FamilyBogus:
		return "bogus"
	}
	return "unknown"
}

// TokenClass refines FamilyToken.
type TokenClass uint8

const (
	ClassNone TokenClass = iota
	ClassPunct
	ClassKeyword
	ClassLiteral
	ClassSpecial // EOF, error token
)

func (c TokenClass) String() string {
	switch c {
	case ClassPunct:
		return "punct"
	case ClassKeyword:
		return "keyword"
	case ClassLiteral:
		return "literal"
	case ClassSpecial:
		return "special"
	}
	return ""
}

// SlotInfo describes one slot of a node layout.
type SlotInfo struct {
	Name     string
	Required bool
	Accepts  KindSet
}

// ListInfo describes a list kind.
type ListInfo struct {
	Element KindSet
	// Separator is Tombstone for unseparated lists.
	Separator     Kind
	AllowTrailing bool
}

// Separated reports whether the list has separators.
func (l ListInfo) Separated() bool { return l.Separator != Tombstone }

// KindInfo is the registry entry of one kind.
type KindInfo struct {
	Kind   Kind
	Name   string
	Family Family
	Class  TokenClass
	// Text is the fixed spelling of punctuation and keywords.
	Text  string
	Slots []SlotInfo
	List  ListInfo
	// Bogus is the kind a node is demoted to when its children do not fit the layout.
	Bogus Kind
}

// Registry maps kinds to names, families and slot layouts for one language.
type Registry struct {
	language string
	infos    []KindInfo
	known    []bool
	byName   map[string]Kind
	byText   map[string]Kind
}

// NewRegistry builds a registry. Names must be unique.
func NewRegistry(language string, infos []KindInfo) *Registry {
	maxKind := Kind(0)
	for _, in := range infos {
		maxKind = max(maxKind, in.Kind)
	}
	r := &Registry{
		language: language,
		infos:    make([]KindInfo, int(maxKind)+1),
		known:    make([]bool, int(maxKind)+1),
		byName:   make(map[string]Kind, len(infos)),
		byText:   make(map[string]Kind),
	}
	for _, in := range infos {
		if _, dup := r.byName[in.Name]; dup {
			panic(fmt.Errorf("syntax: duplicate kind name %q", in.Name))
		}
		if r.known[in.Kind] {
			panic(fmt.Errorf("syntax: kind %d registered twice", in.Kind))
		}
		r.infos[in.Kind] = in
		r.known[in.Kind] = true
		r.byName[in.Name] = in.Kind
		if in.Family == FamilyToken && in.Text != "" {
			r.byText[in.Text] = in.Kind
		}
	}
	return r
}

// Language returns the language name.
func (r *Registry) Language() string { return r.language }

// Info returns the entry of k.
func (r *Registry) Info(k Kind) (KindInfo, bool) {
	if r == nil || int(k) >= len(r.infos) || !r.known[k] {
		return KindInfo{}, false
	}
	return r.infos[k], true
}

// Name returns the stable name of k.
func (r *Registry) Name(k Kind) string {
	if in, ok := r.Info(k); ok {
		return in.Name
	}
	return fmt.Sprintf("UNKNOWN(%d)", k)
}

// Lookup finds a kind by name.
func (r *Registry) Lookup(name string) (Kind, bool) {
	k, ok := r.byName[name]
	return k, ok
}

// TokenByText finds a punctuation or keyword kind by its spelling.
func (r *Registry) TokenByText(text string) (Kind, bool) {
	k, ok := r.byText[text]
	return k, ok
}

// Family returns the family of k, or 0 for unknown kinds.
func (r *Registry) Family(k Kind) Family {
	in, _ := r.Info(k)
	return in.Family
}

func (r *Registry) IsToken(k Kind) bool { return r.Family(k) == FamilyToken }
func (r *Registry) IsList(k Kind) bool  { return r.Family(k) == FamilyList }
func (r *Registry) IsBogus(k Kind) bool { return r.Family(k) == FamilyBogus }

// Kinds returns all entries ordered by kind value.
func (r *Registry) Kinds() []KindInfo {
	out := make([]KindInfo, 0, len(r.byName))
	for k, ok := range r.known {
		if ok {
			out = append(out, r.infos[k])
		}
	}
	return out
}

// Align places children into the slot layout of kind.
//
// For plain nodes every child is matched against the earliest remaining slot
// that accepts it; skipped slots stay empty. A nil child is an explicit empty
// marker and consumes one slot. For separated lists a trailing separator gets
// an empty item slot after it. When the children do not fit, the node is
// demoted to its bogus kind and keeps the children unchanged.
func (r *Registry) Align(kind Kind, children []GreenElement) (Kind, []GreenElement) {
	in, ok := r.Info(kind)
	if !ok {
		return kind, children
	}
	switch in.Family {
	case FamilyBogus:
		return kind, children
	case FamilyList:
		if out, ok := alignList(in.List, children); ok {
			return kind, out
		}
		return in.Bogus, compact(children)
	case FamilyNode:
		if out, ok := alignSlots(in.Slots, children); ok {
			return kind, out
		}
		return in.Bogus, compact(children)
	}
	return kind, children
}

func alignSlots(slots []SlotInfo, children []GreenElement) ([]GreenElement, bool) {
	out := make([]GreenElement, len(slots))
	ci := 0
	for si := range slots {
		if ci >= len(children) {
			break
		}
		child := children[ci]
		if child == nil {
			ci++
			continue
		}
		if slots[si].Accepts.Contains(child.Kind()) {
			out[si] = child
			ci++
		}
	}
	for ; ci < len(children); ci++ {
		if children[ci] != nil {
			return nil, false
		}
	}
	return out, true
}

func alignList(list ListInfo, children []GreenElement) ([]GreenElement, bool) {
	if !list.Separated() {
		for _, c := range children {
			if c == nil || !list.Element.Contains(c.Kind()) {
				return nil, false
			}
		}
		return slices.Clone(children), true
	}
	for i, c := range children {
		if i%2 == 1 {
			if c == nil || c.Kind() != list.Separator {
				return nil, false
			}
			continue
		}
		if c != nil && !list.Element.Contains(c.Kind()) {
			return nil, false
		}
	}
	out := slices.Clone(children)
	if len(out) > 0 && len(out)%2 == 0 {
		if !list.AllowTrailing {
			return nil, false
		}
		out = append(out, nil) // пустой слот после висящего разделителя
	}
	return out, true
}

func compact(children []GreenElement) []GreenElement {
	out := make([]GreenElement, 0, len(children))
	for _, c := range children {
		if c != nil {
			out = append(out, c)
		}
	}
	return out
}
