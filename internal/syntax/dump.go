package syntax

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// DefaultDumpDepth is the nesting depth after which Dump prints stubs.
const DefaultDumpDepth = 16

// DumpOptions controls Dump.
type DumpOptions struct {
	// MaxDepth limits recursion; nodes deeper than it print as "<KIND>".
	// Zero means DefaultDumpDepth.
	MaxDepth int
	// Trivia prints the leading and trailing trivia of every token.
	Trivia bool
}

// dumper carries the depth counter of one traversal.
type dumper struct {
	w     *bufio.Writer
	reg   *Registry
	opts  DumpOptions
	depth int
}

// Dump writes an indented view of the subtree, one element per line.
func Dump(w io.Writer, n *Node, opts DumpOptions) error {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultDumpDepth
	}
	d := &dumper{w: bufio.NewWriter(w), reg: n.reg, opts: opts}
	d.node(n, -1)
	return d.w.Flush()
}

// Debug returns Dump output with default options.
func (n *Node) Debug() string {
	var sb strings.Builder
	_ = Dump(&sb, n, DumpOptions{})
	return sb.String()
}

func (d *dumper) indent() {
	for range d.depth {
		d.w.WriteString("  ")
	}
}

func (d *dumper) prefix(slot int) {
	d.indent()
	if slot >= 0 {
		fmt.Fprintf(d.w, "%d: ", slot)
	}
}

func (d *dumper) node(n *Node, slot int) {
	d.prefix(slot)
	if d.depth >= d.opts.MaxDepth {
		fmt.Fprintf(d.w, "<%s>\n", d.reg.Name(n.Kind()))
		return
	}
	fmt.Fprintf(d.w, "%s@%s\n", d.reg.Name(n.Kind()), n.TextRange())
	d.depth++
	for i, k := range n.children() {
		switch el := k.(type) {
		case nil:
			d.prefix(i)
			d.w.WriteString("(empty)\n")
		case *Node:
			d.node(el, i)
		case *Token:
			d.token(el, i)
		}
	}
	d.depth--
}

func (d *dumper) token(t *Token, slot int) {
	d.prefix(slot)
	fmt.Fprintf(d.w, "%s@%s %q", d.reg.Name(t.Kind()), t.TextRange(), t.Text())
	if d.opts.Trivia {
		fmt.Fprintf(d.w, " %s %s", formatTrivia(t.Leading()), formatTrivia(t.Trailing()))
	}
	d.w.WriteByte('\n')
}

func formatTrivia(list []Trivia) string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, tr := range list {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s(%q)", tr.Kind, tr.Text)
	}
	sb.WriteByte(']')
	return sb.String()
}
