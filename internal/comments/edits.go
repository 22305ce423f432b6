package comments

import (
	"errors"
	"fmt"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// State is what happens to a token when the tree is printed again.
type State uint8

const (
	// Kept prints the token as it is.
	Kept State = iota
	// Removed suppresses the token text and relocates its comments.
	Removed
	// Replaced prints new text with the original trivia.
	Replaced
)

func (s State) String() string {
	switch s {
	case Kept:
		return "kept"
	case Removed:
		return "removed"
	case Replaced:
		return "replaced"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// ErrInvalidTransition is returned for a state change the edit model forbids.
var ErrInvalidTransition = errors.New("invalid token state transition")

// TokenEdit is the state of one token together with its replacement text.
type TokenEdit struct {
	State State
	Text  string
}

type tokenKey struct {
	start uint32
	kind  syntax.Kind
}

func keyOf(tok *syntax.Token) tokenKey {
	return tokenKey{start: tok.TextTrimmedRange().Start, kind: tok.Kind()}
}

// Edits records token states for one tree. The zero value keeps every token.
//
// Allowed transitions: Kept -> Removed, Kept -> Replaced, Replaced -> Removed.
type Edits struct {
	states map[tokenKey]TokenEdit
}

// NewEdits returns an empty edit set.
func NewEdits() *Edits {
	return &Edits{states: make(map[tokenKey]TokenEdit)}
}

// State returns the current state of tok.
func (e *Edits) State(tok *syntax.Token) TokenEdit {
	if e == nil || e.states == nil || tok == nil {
		return TokenEdit{State: Kept}
	}
	return e.states[keyOf(tok)]
}

// Remove moves tok to Removed.
func (e *Edits) Remove(tok *syntax.Token) error {
	return e.transition(tok, TokenEdit{State: Removed})
}

// Replace moves tok to Replaced with the given text.
func (e *Edits) Replace(tok *syntax.Token, text string) error {
	return e.transition(tok, TokenEdit{State: Replaced, Text: text})
}

func (e *Edits) transition(tok *syntax.Token, next TokenEdit) error {
	if tok == nil {
		return errors.New("comments: nil token")
	}
	if e.states == nil {
		e.states = make(map[tokenKey]TokenEdit)
	}
	k := keyOf(tok)
	cur := e.states[k]
	ok := false
	switch cur.State {
	case Kept:
		ok = next.State != Kept
	case Replaced:
		ok = next.State == Removed
	}
	if !ok {
		return fmt.Errorf("%w: %s -> %s for %q at %s", ErrInvalidTransition, cur.State, next.State, tok.Text(), tok.TextTrimmedRange())
	}
	e.states[k] = next
	return nil
}

// Len returns the number of tokens that are not Kept.
func (e *Edits) Len() int {
	if e == nil {
		return 0
	}
	return len(e.states)
}
