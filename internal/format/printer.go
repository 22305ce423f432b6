package format

import (
	"errors"
	"fmt"
	"slices"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Options configures a Printer.
type Options struct {
	// Edits are applied while printing; nil prints the tree unchanged.
	Edits *comments.Edits
	// Newline is used for inserted line breaks. Empty means the first line
	// break found in the tree, or "\n".
	Newline string
}

// Printer writes a syntax tree back to text, token by token, honouring token
// edits. Every comment of the tree is written exactly once: the leading and
// trailing bands of each token are tracked, and comments of removed tokens
// are written next to the surviving neighbours chosen by comments.Relocate.
type Printer struct {
	w         *Writer
	edits     *comments.Edits
	rel       *comments.Relocation
	leadDone  map[uint32]bool
	trailDone map[uint32]bool
}

// NewPrinter prepares a printer for root.
func NewPrinter(root *syntax.Node, opt Options) *Printer {
	nl := opt.Newline
	if nl == "" {
		nl = detectNewline(root)
	}
	size := 0
	if root != nil {
		size = int(root.TextRange().Len())
	}
	return &Printer{
		w:         NewWriter(nl, size),
		edits:     opt.Edits,
		rel:       comments.Relocate(root, opt.Edits),
		leadDone:  make(map[uint32]bool),
		trailDone: make(map[uint32]bool),
	}
}

// Print writes the whole tree.
func Print(root *syntax.Node, opt Options) []byte {
	p := NewPrinter(root, opt)
	p.Node(root)
	for _, c := range p.rel.Orphans {
		p.w.Comment(c.Trivia())
	}
	p.w.Flush()
	return p.w.Bytes()
}

// Bytes returns what was printed so far.
func (p *Printer) Bytes() []byte { return p.w.Bytes() }

// Node prints n and everything below it.
func (p *Printer) Node(n *syntax.Node) {
	if n == nil {
		return
	}
	for _, el := range n.Children() {
		switch el := el.(type) {
		case *syntax.Token:
			p.Token(el)
		case *syntax.Node:
			p.Node(el)
		}
	}
}

// Token prints one token with its trivia according to its edit state.
func (p *Printer) Token(tok *syntax.Token) {
	p.leading(tok)
	switch st := p.edits.State(tok); st.State {
	case comments.Kept:
		p.w.WriteString(tok.Text())
	case comments.Replaced:
		p.w.WriteString(st.Text)
	}
	p.trailing(tok)
}

// FormatLeadingComments prints the leading trivia of the first token of n,
// comments moved onto it included. A second call for the same token prints
// nothing.
func (p *Printer) FormatLeadingComments(n *syntax.Node) {
	if n != nil {
		p.leading(n.FirstToken())
	}
}

// FormatTrailingComments prints the trailing trivia of the last token of n.
func (p *Printer) FormatTrailingComments(n *syntax.Node) {
	if n != nil {
		p.trailing(n.LastToken())
	}
}

// ErrNotRemoved is returned by FormatRemoved for a token that is not removed.
var ErrNotRemoved = errors.New("token is not marked removed")

// FormatRemoved prints the place of a removed token: no text, and a single
// separating space if the token had any whitespace around it. Its comments
// are printed by the surviving neighbours.
func (p *Printer) FormatRemoved(tok *syntax.Token) error {
	if tok == nil {
		return nil
	}
	if st := p.edits.State(tok); st.State != comments.Removed {
		return fmt.Errorf("format: %q at %s: %w", tok.Text(), tok.TextTrimmedRange(), ErrNotRemoved)
	}
	p.leading(tok)
	p.trailing(tok)
	return nil
}

func (p *Printer) leading(tok *syntax.Token) {
	if tok == nil {
		return
	}
	key := tok.TextTrimmedRange().Start
	if p.leadDone[key] {
		return
	}
	p.leadDone[key] = true
	for _, c := range p.rel.For(tok).Leading {
		p.w.Comment(c.Trivia())
	}
	if p.edits.State(tok).State == comments.Removed {
		p.dropTrivia(tok.Leading())
		return
	}
	for _, tr := range tok.Leading() {
		p.w.Trivia(tr)
	}
}

func (p *Printer) trailing(tok *syntax.Token) {
	if tok == nil {
		return
	}
	key := tok.TextTrimmedRange().Start
	if p.trailDone[key] {
		return
	}
	p.trailDone[key] = true
	if p.edits.State(tok).State == comments.Removed {
		p.dropTrivia(tok.Trailing())
	} else {
		for _, tr := range tok.Trailing() {
			p.w.Trivia(tr)
		}
	}
	for _, c := range p.rel.For(tok).Trailing {
		p.w.Comment(c.Trivia())
	}
}

// dropTrivia: пробелы удалённого токена схлопываются в один разделитель
func (p *Printer) dropTrivia(list []syntax.Trivia) {
	for _, tr := range list {
		if tr.Kind == syntax.TriviaWhitespace || tr.Kind == syntax.TriviaNewline {
			p.w.Space()
			return
		}
	}
}

func detectNewline(root *syntax.Node) string {
	if root == nil {
		return "\n"
	}
	for tok := range root.Tokens() {
		for _, tr := range tok.Leading() {
			if tr.Kind == syntax.TriviaNewline {
				return tr.Text
			}
		}
	}
	return "\n"
}

// CheckRoundTrip parses the file, prints it without edits and parses the
// output again. The printed text must equal the source byte for byte and the
// second parse must report no more errors than the first.
func CheckRoundTrip(sf *source.File, maxDiag int) (ok bool, msg string) {
	origBag := diag.NewBag(maxDiag)
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.BagReporter{Bag: origBag}, MaxErrors: uint(maxDiag)})
	if err != nil {
		return false, "fmt-check: initial parse failed: " + err.Error()
	}

	printed := Print(res.Syntax(), Options{})
	if string(printed) != string(sf.Content) {
		return false, "fmt-check: printed text differs from the source"
	}

	fs2 := source.NewFileSet()
	fid := fs2.AddVirtual(sf.Path, printed)
	newBag := diag.NewBag(maxDiag)
	res2, err := parser.ParseFile(fs2.Get(fid), parser.Options{Reporter: diag.BagReporter{Bag: newBag}, MaxErrors: uint(maxDiag)})
	if err != nil {
		return false, "fmt-check: reparse failed: " + err.Error()
	}
	if newBag.Len() > origBag.Len() {
		return false, "fmt-check: reparse reported new diagnostics"
	}
	if !sameTopKinds(res.Syntax(), res2.Syntax()) {
		return false, "fmt-check: top-level definition kinds differ after round-trip"
	}
	return true, "fmt-check: OK"
}

func sameTopKinds(a, b *syntax.Node) bool {
	kinds := func(root *syntax.Node) []syntax.Kind {
		var out []syntax.Kind
		for _, n := range root.ChildNodes() {
			out = append(out, n.Kind())
			if root.Registry().IsList(n.Kind()) {
				for _, def := range n.ChildNodes() {
					out = append(out, def.Kind())
				}
			}
		}
		return out
	}
	return slices.Equal(kinds(a), kinds(b))
}
