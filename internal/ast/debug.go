package ast

import (
	"fmt"
	"io"
	"strings"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

// DefaultDebugDepth matches syntax.DefaultDumpDepth.
const DefaultDebugDepth = syntax.DefaultDumpDepth

// debugPrinter keeps the depth of one Debug call; nested calls never share it.
type debugPrinter struct {
	w     io.Writer
	max   int
	depth int
	err   error
}

// Debug renders the field structure of a typed node. Nodes nested deeper than
// DefaultDebugDepth print as "<KIND>".
func Debug(n Node) string {
	var sb strings.Builder
	_ = Fdebug(&sb, n, DefaultDebugDepth)
	return sb.String()
}

// Fdebug writes the Debug rendering to w with the given depth limit.
func Fdebug(w io.Writer, n Node, maxDepth int) error {
	if maxDepth <= 0 {
		maxDepth = DefaultDebugDepth
	}
	p := &debugPrinter{w: w, max: maxDepth}
	p.value(n)
	p.printf("\n")
	return p.err
}

func (p *debugPrinter) printf(format string, args ...any) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}

func (p *debugPrinter) newline() {
	p.printf("\n%s", strings.Repeat("  ", p.depth))
}

func (p *debugPrinter) value(v any) {
	switch x := v.(type) {
	case nil:
		p.printf("null")
	case Missing:
		if x.Required {
			p.printf("missing (required)")
		} else {
			p.printf("missing (optional)")
		}
	case *syntax.Token:
		p.printf("%s@%s %q", x.KindName(), x.TextTrimmedRange(), x.Text())
	case Items:
		p.seq("", x)
	case Sequence:
		if p.stub(x) {
			return
		}
		p.seq(x.Syntax().KindName()+" ", x.Values())
	case Composite:
		if p.stub(x) {
			return
		}
		p.printf("%s {", x.Syntax().KindName())
		p.depth++
		for _, s := range x.Slots() {
			p.newline()
			p.printf("%s: ", s.Name)
			p.value(s.Value)
		}
		p.depth--
		p.newline()
		p.printf("}")
	case Node:
		p.printf("%s", x.Syntax().KindName())
	default:
		p.printf("%v", x)
	}
}

func (p *debugPrinter) stub(n Node) bool {
	if p.depth < p.max {
		return false
	}
	p.printf("<%s>", n.Syntax().KindName())
	return true
}

func (p *debugPrinter) seq(prefix string, items []any) {
	if len(items) == 0 {
		p.printf("%s[]", prefix)
		return
	}
	p.printf("%s[", prefix)
	p.depth++
	for _, it := range items {
		p.newline()
		p.value(it)
	}
	p.depth--
	p.newline()
	p.printf("]")
}
