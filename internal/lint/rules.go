package lint

import (
	"fmt"

	"golang.org/x/text/unicode/norm"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// bogus reports the outermost non-empty bogus subtrees. Empty bogus nodes are
// missing list items and belong to emptyListItems.
func (c *checker) bogus() {
	reg := c.root.Registry()
	for n := range c.root.Descendants() {
		if !reg.IsBogus(n.Kind()) {
			continue
		}
		r := n.TextTrimmedRange()
		if r.Start == r.End || hasBogusAncestor(n) {
			continue
		}
		c.report(diag.TreeBogusSubtree, diag.SevWarning, r,
			fmt.Sprintf("unrecognized syntax (%s)", n.KindName()))
	}
}

func hasBogusAncestor(n *syntax.Node) bool {
	reg := n.Registry()
	for p := n.Parent(); p != nil; p = p.Parent() {
		if reg.IsBogus(p.Kind()) {
			return true
		}
	}
	return false
}

// emptyListItems reports items of separated lists that hold no tokens. The fix
// drops the separator next to the item.
func (c *checker) emptyListItems() {
	reg := c.root.Registry()
	for n := range c.root.Descendants() {
		info, ok := reg.Info(n.Kind())
		if !ok || info.Family != syntax.FamilyList || !info.List.Separated() {
			continue
		}
		count := n.SlotCount()
		for i := 0; i < count; i += 2 {
			// пустой последний слот после завершающего разделителя не элемент
			if i == count-1 && i > 0 && n.Slot(i) == nil {
				continue
			}
			if !emptyItem(n, i) {
				continue
			}
			sep := n.SlotToken(i + 1)
			if sep == nil && i > 0 {
				sep = n.SlotToken(i - 1)
			}
			if sep == nil {
				continue
			}
			edits := comments.NewEdits()
			if err := edits.Remove(sep); err != nil {
				continue
			}
			f := fix.TokenEdits("Remove the extra separator", c.opts.File, c.root, edits,
				fix.WithID(fmt.Sprintf("empty-item-%d", sep.TextTrimmedRange().Start)), fix.Preferred())
			c.report(diag.LintEmptyListItem, diag.SevWarning, sep.TextTrimmedRange(),
				fmt.Sprintf("empty item in %s", n.KindName()), f)
		}
	}
}

func emptyItem(list *syntax.Node, i int) bool {
	el := list.Slot(i)
	if el == nil {
		return true
	}
	n, ok := el.(*syntax.Node)
	if !ok {
		return false
	}
	r := n.TextRange()
	return r.Start == r.End && list.Registry().IsBogus(n.Kind())
}

// атомы не нуждаются в скобках
var atomPatterns = grit.AnyLiteralKinds.
	Insert(grit.KindVariable).
	Insert(grit.KindUnderscore).
	Insert(grit.KindBracketedPattern)

// redundantBrackets reports brackets around atoms: literals, variables, `_`
// and already bracketed patterns. The fix removes the brackets and keeps their
// comments.
func (c *checker) redundantBrackets() {
	for n := range c.root.Descendants() {
		var inner *syntax.Node
		var lp, rp *syntax.Token
		switch n.Kind() {
		case grit.KindBracketedPattern:
			bp, _ := grit.CastBracketedPattern(n)
			p, err := bp.Pattern()
			if err != nil || !atomPatterns.Contains(p.Syntax().Kind()) {
				continue
			}
			inner = p.Syntax()
			lp, _ = bp.LParenToken()
			rp, _ = bp.RParenToken()
		case grit.KindBracketedPredicate:
			bp, _ := grit.CastBracketedPredicate(n)
			p, err := bp.Predicate()
			if err != nil {
				continue
			}
			if k := p.Syntax().Kind(); k != grit.KindBracketedPredicate && k != grit.KindBooleanLiteral {
				continue
			}
			inner = p.Syntax()
			lp, _ = bp.LParenToken()
			rp, _ = bp.RParenToken()
		default:
			continue
		}
		if lp == nil || rp == nil {
			continue
		}

		var fixes []diag.Fix
		if !glues(lp.PrevToken(), lp, inner.FirstToken()) && !glues(inner.LastToken(), rp, rp.NextToken()) {
			edits := comments.NewEdits()
			if edits.Remove(lp) == nil && edits.Remove(rp) == nil {
				fixes = append(fixes, fix.TokenEdits("Remove the brackets", c.opts.File, c.root, edits,
					fix.WithID(fmt.Sprintf("brackets-%d", lp.TextTrimmedRange().Start))))
			}
		}
		c.report(diag.LintRedundantBracket, diag.SevInfo, n.TextTrimmedRange(),
			fmt.Sprintf("brackets around %s are redundant", inner.KindName()), fixes...)
	}
}

// glues reports whether removing mid would join the words of left and right
// into one token.
func glues(left, mid, right *syntax.Token) bool {
	if left == nil || right == nil {
		return false
	}
	if len(left.Trailing()) > 0 || len(mid.Leading()) > 0 || len(mid.Trailing()) > 0 || len(right.Leading()) > 0 {
		return false
	}
	l, r := left.Text(), right.Text()
	if l == "" || r == "" {
		return false
	}
	return wordByte(l[len(l)-1]) && wordByte(r[0])
}

func wordByte(b byte) bool {
	return b == '_' || b == '$' || b >= 0x80 ||
		(b >= '0' && b <= '9') || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// names reports names, variables and annotations that are not in Unicode
// normal form C and offers the normalized spelling.
func (c *checker) names() {
	for tok := range c.root.Tokens() {
		switch tok.Kind() {
		case grit.KindIdent, grit.KindDollarIdent, grit.KindAtIdent:
		default:
			continue
		}
		text := tok.Text()
		if norm.NFC.IsNormalString(text) {
			continue
		}
		want := norm.NFC.String(text)
		b := fix.NewBatch(c.root, c.opts.Cache)
		var fixes []diag.Fix
		repl, err := c.opts.Cache.Token(tok.Kind(), want, nil, nil)
		if err == nil && b.ReplaceToken(tok, repl) == nil {
			fixes = append(fixes, b.Fix(fmt.Sprintf("Use %q", want), c.opts.File,
				fix.WithID(fmt.Sprintf("nfc-%d", tok.TextTrimmedRange().Start)), fix.Preferred()))
		}
		c.report(diag.LintNameNotNFC, diag.SevWarning, tok.TextTrimmedRange(),
			fmt.Sprintf("name %q is not in Unicode normal form C", text), fixes...)
	}
}

// trailingCommas reports the trailing separator of separated lists.
func (c *checker) trailingCommas() {
	reg := c.root.Registry()
	for n := range c.root.Descendants() {
		info, ok := reg.Info(n.Kind())
		if !ok || info.Family != syntax.FamilyList || !info.List.Separated() {
			continue
		}
		count := n.SlotCount()
		if count < 2 || count%2 == 0 || n.Slot(count-1) != nil {
			continue
		}
		sep := n.SlotToken(count - 2)
		if sep == nil || sep.Kind() != info.List.Separator {
			continue
		}
		edits := comments.NewEdits()
		if err := edits.Remove(sep); err != nil {
			continue
		}
		f := fix.TokenEdits("Remove the trailing separator", c.opts.File, c.root, edits,
			fix.WithID(fmt.Sprintf("trailing-%d", sep.TextTrimmedRange().Start)))
		c.report(diag.LintTrailingComma, diag.SevInfo, sep.TextTrimmedRange(),
			fmt.Sprintf("trailing separator in %s", n.KindName()), f)
	}
}
