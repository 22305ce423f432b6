package diagfmt

import (
	"io"

	"github.com/biomejs/biome-sub001/internal/ast"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// TreeOpts configures tree dumps.
type TreeOpts struct {
	// Depth limits nesting; 0 means the default guard depth.
	Depth int
	// Trivia adds the trivia of every token to untyped dumps.
	Trivia bool
	// Typed prints the field view of the typed wrappers instead of the
	// element tree.
	Typed bool
}

// FormatTree dumps the tree under root.
func FormatTree(w io.Writer, root *syntax.Node, opts TreeOpts) error {
	if opts.Typed {
		return ast.Fdebug(w, grit.Wrap(root), opts.Depth)
	}
	return syntax.Dump(w, root, syntax.DumpOptions{MaxDepth: opts.Depth, Trivia: opts.Trivia})
}
