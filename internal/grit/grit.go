// Package grit holds the Grit language definition for the syntax tree: token
// and node kinds, the slot registry, typed node wrappers and a green factory.
//
// Everything in *_gen.go is produced from grit.ungram by cmd/gritgen.
package grit

import (
	"fmt"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

//go:generate go run ../../cmd/gritgen -grammar grit.ungram -out .

// Language is the registry name of the Grit language.
const Language = "grit"

// Registry describes every Grit kind.
var Registry = syntax.NewRegistry(Language, append(tokenInfos(), nodeInfos()...))

// KindCount is the number of kinds, tombstone included.
const KindCount = int(kindCount)

// Factory builds green Grit nodes with exact slot positions. Nil arguments mark
// empty slots.
type Factory struct {
	Cache *syntax.Cache
}

// NewFactory returns a factory interning into cache. A nil cache gets a fresh one.
func NewFactory(cache *syntax.Cache) Factory {
	if cache == nil {
		cache = syntax.NewCache()
	}
	return Factory{Cache: cache}
}

// Token interns a token without trivia.
func (f Factory) Token(kind syntax.Kind, text string) *syntax.GreenToken {
	return f.Cache.MustToken(kind, text, nil, nil)
}

// TokenWith interns a token with trivia.
func (f Factory) TokenWith(kind syntax.Kind, text string, leading, trailing []syntax.Trivia) (*syntax.GreenToken, error) {
	return f.Cache.Token(kind, text, leading, trailing)
}

// Punct interns a punctuation or keyword token using its fixed spelling.
func (f Factory) Punct(kind syntax.Kind) *syntax.GreenToken {
	text := TokenText(kind)
	if text == "" {
		panic(fmt.Sprintf("grit: %s has no fixed text", Registry.Name(kind)))
	}
	return f.Token(kind, text)
}

// Ident interns an IDENT token.
func (f Factory) Ident(name string) *syntax.GreenToken { return f.Token(KindIdent, name) }

// Var interns a DOLLAR_IDENT token.
func (f Factory) Var(name string) *syntax.GreenToken { return f.Token(KindDollarIdent, name) }

// EOF interns the end-of-file token.
func (f Factory) EOF() *syntax.GreenToken { return f.Token(KindEOF, "") }

func (f Factory) node(kind syntax.Kind, slots ...syntax.GreenElement) *syntax.GreenNode {
	return f.Cache.Node(kind, slots)
}

func (f Factory) list(kind syntax.Kind, items []*syntax.GreenNode) *syntax.GreenNode {
	slots := make([]syntax.GreenElement, len(items))
	for i, it := range items {
		slots[i] = it
	}
	return f.Cache.Node(kind, slots)
}

// separatedList interleaves items and separators. One extra separator is a
// trailing one, followed by the empty item slot.
func (f Factory) separatedList(kind syntax.Kind, items []*syntax.GreenNode, separators []*syntax.GreenToken) *syntax.GreenNode {
	if len(separators) > len(items) || (len(items) > 0 && len(separators) < len(items)-1) {
		panic(fmt.Sprintf("grit: %s: %d items with %d separators", Registry.Name(kind), len(items), len(separators)))
	}
	slots := make([]syntax.GreenElement, 0, len(items)+len(separators)+1)
	for i, it := range items {
		slots = append(slots, it)
		if i < len(separators) {
			slots = append(slots, separators[i])
		}
	}
	if len(items) > 0 && len(separators) == len(items) {
		slots = append(slots, nil)
	}
	return f.Cache.Node(kind, slots)
}
