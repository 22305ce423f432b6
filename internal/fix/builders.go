package fix

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/format"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Option adjusts a fix after a builder made it.
type Option func(*diag.Fix)

// WithApplicability overrides the applicability a builder chose.
func WithApplicability(app diag.FixApplicability) Option {
	return func(f *diag.Fix) { f.Applicability = app }
}

// Preferred marks the fix as the one to offer first.
func Preferred() Option {
	return func(f *diag.Fix) { f.IsPreferred = true }
}

// WithID gives the fix a stable ID for `grit fix --id`.
func WithID(id string) Option {
	return func(f *diag.Fix) { f.ID = id }
}

func build(title string, app diag.FixApplicability, edits []diag.TextEdit, opts []Option) diag.Fix {
	f := diag.Fix{Title: title, Applicability: app, Edits: edits}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}

// InsertText inserts text at an empty span. guard, when set, must equal the
// text under the span.
func InsertText(title string, at source.Span, text, guard string, opts ...Option) diag.Fix {
	return ReplaceSpan(title, at, text, guard, opts...)
}

// DeleteSpan removes span; expect guards the removed text.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	return ReplaceSpan(title, span, "", expect, opts...)
}

// ReplaceSpan replaces span with newText; expect guards the replaced text.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	edit := diag.TextEdit{Span: span, NewText: newText, OldText: expect}
	return build(title, diag.FixApplicabilityAlwaysSafe, []diag.TextEdit{edit}, opts)
}

// WrapWith inserts prefix before span and suffix after it. The result is only
// safe with heuristics: nothing checks that the wrapped text still parses.
func WrapWith(title string, span source.Span, prefix, suffix string, opts ...Option) diag.Fix {
	at := func(off uint32) source.Span { return source.Span{File: span.File, Start: off, End: off} }
	edits := []diag.TextEdit{
		{Span: at(span.Start), NewText: prefix},
		{Span: at(span.End), NewText: suffix},
	}
	return build(title, diag.FixApplicabilitySafeWithHeuristics, edits, opts)
}

// TokenEdits creates a fix from token edits on the tree of node. The tree is
// printed with the edits applied, so comments of removed tokens move to their
// neighbours instead of being lost. The fix rewrites the smallest range that
// covers every edited token with its trivia.
func TokenEdits(title string, file source.FileID, root *syntax.Node, edits *comments.Edits, opts ...Option) diag.Fix {
	if root == nil || edits.Len() == 0 {
		return build(title, diag.FixApplicabilityAlwaysSafe, nil, opts)
	}
	printed := string(format.Print(root, format.Options{Edits: edits}))
	old := root.Text()

	// общий префикс и суффикс не трогаем
	pre := 0
	for pre < len(old) && pre < len(printed) && old[pre] == printed[pre] {
		pre++
	}
	suf := 0
	for suf < len(old)-pre && suf < len(printed)-pre && old[len(old)-1-suf] == printed[len(printed)-1-suf] {
		suf++
	}
	base := root.TextRange().Start
	r := syntax.TextRange{Start: base + offset(pre), End: base + offset(len(old)-suf)}
	edit := diag.TextEdit{
		Span:    source.SpanOf(file, r),
		NewText: printed[pre : len(printed)-suf],
		OldText: old[pre : len(old)-suf],
	}
	return build(title, diag.FixApplicabilityAlwaysSafe, []diag.TextEdit{edit}, opts)
}

func offset(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(fmt.Errorf("fix: offset overflow: %w", err))
	}
	return v
}
