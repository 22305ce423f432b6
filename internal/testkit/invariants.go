// Package testkit checks structural invariants of parsed Grit trees. The
// checks back the tree-level tests of every layer and `grit check --invariants`.
package testkit

import (
	"errors"
	"fmt"

	"fortio.org/safecast"

	"github.com/biomejs/biome-sub001/internal/ast"
	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Violation is one broken invariant.
type Violation struct {
	Code  diag.Code
	Range syntax.TextRange
	Msg   string
}

func (v Violation) Error() string {
	return fmt.Sprintf("%s at %s: %s", v.Code.ID(), v.Range, v.Msg)
}

// Check runs every invariant on root parsed from content.
func Check(root *syntax.Node, content []byte) []Violation {
	var out []Violation
	out = append(out, CheckRoundTrip(root, content)...)
	out = append(out, CheckOffsets(root)...)
	out = append(out, CheckCommentOwnership(root)...)
	out = append(out, CheckCasts(root)...)
	out = append(out, CheckSlotLayout(root)...)
	return out
}

// Err joins violations into one error, or nil.
func Err(vs []Violation) error {
	errs := make([]error, len(vs))
	for i, v := range vs {
		errs[i] = v
	}
	return errors.Join(errs...)
}

// Report emits violations as error diagnostics of file.
func Report(r diag.Reporter, file source.FileID, vs []Violation) {
	for _, v := range vs {
		diag.ReportError(r, v.Code, source.SpanOf(file, v.Range), v.Msg).Emit()
	}
}

// CheckRoundTrip: the tree text equals the source byte for byte.
func CheckRoundTrip(root *syntax.Node, content []byte) []Violation {
	text := root.Text()
	if text == string(content) {
		return nil
	}
	i := 0
	for i < len(text) && i < len(content) && text[i] == content[i] {
		i++
	}
	at := offset(i)
	return []Violation{{
		Code:  diag.TreeRoundTrip,
		Range: syntax.TextRange{Start: at, End: at},
		Msg:   fmt.Sprintf("tree text differs from source at byte %d (%d vs %d bytes)", i, len(text), len(content)),
	}}
}

// CheckOffsets: tokens tile the file in order, and every node spans exactly
// its children.
func CheckOffsets(root *syntax.Node) []Violation {
	var out []Violation
	var pos uint32
	for tok := range root.Tokens() {
		r := tok.TextRange()
		if r.Start != pos {
			out = append(out, Violation{
				Code:  diag.TreeOffsetOrder,
				Range: r,
				Msg:   fmt.Sprintf("token %s starts at %d, previous ended at %d", tok.KindName(), r.Start, pos),
			})
		}
		pos = r.End
	}
	if pos != root.TextRange().End {
		out = append(out, Violation{
			Code:  diag.TreeOffsetOrder,
			Range: root.TextRange(),
			Msg:   fmt.Sprintf("tokens end at %d, root at %d", pos, root.TextRange().End),
		})
	}
	checkNode := func(n *syntax.Node) {
		r := n.TextRange()
		cur := r.Start
		for _, el := range n.Children() {
			cr := el.TextRange()
			if cr.Start != cur {
				out = append(out, Violation{
					Code:  diag.TreeOffsetOrder,
					Range: cr,
					Msg:   fmt.Sprintf("child of %s starts at %d, expected %d", n.KindName(), cr.Start, cur),
				})
			}
			cur = cr.End
		}
		if cur != r.End {
			out = append(out, Violation{
				Code:  diag.TreeOffsetOrder,
				Range: r,
				Msg:   fmt.Sprintf("children of %s end at %d, node at %d", n.KindName(), cur, r.End),
			})
		}
	}
	checkNode(root)
	for n := range root.Descendants() {
		if n != root {
			checkNode(n)
		}
	}
	return out
}

// CheckCommentOwnership: every comment trivium belongs to exactly one token.
func CheckCommentOwnership(root *syntax.Node) []Violation {
	idx, err := comments.Build(root)
	if err != nil {
		return []Violation{{Code: diag.TreeCommentOwnership, Range: root.TextRange(), Msg: err.Error()}}
	}
	total := 0
	for tok := range root.Tokens() {
		for _, p := range tok.LeadingPieces() {
			if p.IsComment() {
				total++
			}
		}
		for _, p := range tok.TrailingPieces() {
			if p.IsComment() {
				total++
			}
		}
	}
	if total != idx.Len() {
		return []Violation{{
			Code:  diag.TreeCommentOwnership,
			Range: root.TextRange(),
			Msg:   fmt.Sprintf("index holds %d comments, tokens carry %d", idx.Len(), total),
		}}
	}
	return nil
}

// CheckCasts: typed wrappers only ever wrap nodes of their own kind, and the
// sum types accept exactly the kinds of their kind sets.
func CheckCasts(root *syntax.Node) []Violation {
	var out []Violation
	bad := func(n *syntax.Node, format string, args ...any) {
		out = append(out, Violation{Code: diag.TreeCastUnsound, Range: n.TextRange(), Msg: fmt.Sprintf(format, args...)})
	}
	for n := range root.Descendants() {
		w := grit.Wrap(n)
		if w == nil || w.Syntax() != n {
			bad(n, "wrapper of %s does not wrap the node", n.KindName())
			continue
		}
		if _, ok := w.(ast.Sequence); ok != n.Registry().IsList(n.Kind()) {
			bad(n, "%s: list wrapper mismatch", n.KindName())
		}
		if v, ok := grit.CastAnyPattern(n); ok != grit.CanCastAnyPattern(n.Kind()) || (ok && v.Syntax() != n) {
			bad(n, "%s: AnyPattern cast disagrees with its kind set", n.KindName())
		}
		if v, ok := grit.CastAnyDefinition(n); ok != grit.CanCastAnyDefinition(n.Kind()) || (ok && v.Syntax() != n) {
			bad(n, "%s: AnyDefinition cast disagrees with its kind set", n.KindName())
		}
		if v, ok := grit.CastAnyLiteral(n); ok != grit.CanCastAnyLiteral(n.Kind()) || (ok && v.Syntax() != n) {
			bad(n, "%s: AnyLiteral cast disagrees with its kind set", n.KindName())
		}
		if v, ok := grit.CastAnyContainer(n); ok != grit.CanCastAnyContainer(n.Kind()) || (ok && v.Syntax() != n) {
			bad(n, "%s: AnyContainer cast disagrees with its kind set", n.KindName())
		}
	}
	return out
}

// CheckSlotLayout: children of concrete nodes sit in slots that accept their
// kind; list items and separators alternate.
func CheckSlotLayout(root *syntax.Node) []Violation {
	var out []Violation
	reg := root.Registry()
	bad := func(r syntax.TextRange, format string, args ...any) {
		out = append(out, Violation{Code: diag.TreeSlotLayout, Range: r, Msg: fmt.Sprintf(format, args...)})
	}
	for n := range root.Descendants() {
		info, ok := reg.Info(n.Kind())
		if !ok {
			bad(n.TextRange(), "unknown kind %d", n.Kind())
			continue
		}
		switch info.Family {
		case syntax.FamilyBogus:
			continue
		case syntax.FamilyList:
			for i := range n.SlotCount() {
				el := n.Slot(i)
				if el == nil {
					continue
				}
				if info.List.Separated() && i%2 == 1 {
					if el.Kind() != info.List.Separator {
						bad(el.TextRange(), "%s slot %d: expected separator %s, got %s", info.Name, i, reg.Name(info.List.Separator), reg.Name(el.Kind()))
					}
					continue
				}
				if !info.List.Element.Contains(el.Kind()) && !reg.IsBogus(el.Kind()) {
					bad(el.TextRange(), "%s slot %d: %s is not an element", info.Name, i, reg.Name(el.Kind()))
				}
			}
		default:
			if n.SlotCount() != len(info.Slots) {
				bad(n.TextRange(), "%s has %d slots, layout has %d", info.Name, n.SlotCount(), len(info.Slots))
				continue
			}
			for i, slot := range info.Slots {
				el := n.Slot(i)
				if el == nil {
					continue
				}
				if !slot.Accepts.Contains(el.Kind()) && !reg.IsBogus(el.Kind()) {
					bad(el.TextRange(), "%s.%s: %s not accepted", info.Name, slot.Name, reg.Name(el.Kind()))
				}
			}
		}
	}
	return out
}

func offset(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("testkit: offset overflow: %w", err))
	}
	return v
}
