package diagfmt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

// palette holds the colours of one Pretty call.
type palette struct {
	err, warn, info *color.Color
	code, path      *color.Color
	gutter, caret   *color.Color
	add, del        *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		err:    mk(color.FgRed, color.Bold),
		warn:   mk(color.FgYellow, color.Bold),
		info:   mk(color.FgCyan, color.Bold),
		code:   mk(color.Bold),
		path:   mk(color.FgWhite, color.Bold),
		gutter: mk(color.FgBlue),
		caret:  mk(color.FgGreen, color.Bold),
		add:    mk(color.FgGreen),
		del:    mk(color.FgRed),
	}
}

func (p palette) severity(s diag.Severity) *color.Color {
	switch s {
	case diag.SevError:
		return p.err
	case diag.SevWarning:
		return p.warn
	}
	return p.info
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes и Fixes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	bw := bufio.NewWriter(w)
	pal := newPalette(opts.Color)
	for _, d := range bag.Items() {
		f := fs.Get(d.Primary.File)
		if f == nil {
			fmt.Fprintf(bw, "%s %s: %s\n", pal.severity(d.Severity).Sprint(d.Severity), pal.code.Sprint(d.Code.ID()), d.Message)
			continue
		}
		start, _ := fs.Resolve(d.Primary)
		fmt.Fprintf(bw, "%s: %s %s: %s\n",
			pal.path.Sprintf("%s:%d:%d", displayPath(f, fs, opts.PathMode), start.Line, start.Col),
			pal.severity(d.Severity).Sprint(d.Severity),
			pal.code.Sprint(d.Code.ID()),
			d.Message)
		writeSnippet(bw, f, fs, d.Primary, opts, pal)

		if opts.ShowNotes {
			for _, n := range d.Notes {
				nf := fs.Get(n.Span.File)
				if nf == nil {
					fmt.Fprintf(bw, "  note: %s\n", n.Msg)
					continue
				}
				pos, _ := fs.Resolve(n.Span)
				fmt.Fprintf(bw, "  note: %s:%d:%d: %s\n", displayPath(nf, fs, opts.PathMode), pos.Line, pos.Col, n.Msg)
			}
		}
		if opts.ShowFixes {
			for i, fx := range sortedFixes(d.Fixes) {
				fmt.Fprintf(bw, "  fix #%d: %s (%s)", i+1, fx.Title, fx.Applicability)
				if fx.ID != "" {
					fmt.Fprintf(bw, " id=%s", fx.ID)
				}
				if fx.IsPreferred {
					bw.WriteString(" preferred")
				}
				bw.WriteByte('\n')
				for _, e := range fx.Edits {
					if ef := fs.Get(e.Span.File); ef != nil {
						pos, _ := fs.Resolve(e.Span)
						fmt.Fprintf(bw, "    edit: %s:%d:%d apply=%q\n", displayPath(ef, fs, opts.PathMode), pos.Line, pos.Col, e.NewText)
					}
					if !opts.ShowPreview {
						continue
					}
					pv, err := previewEdit(fs, e)
					if err != nil {
						continue
					}
					bw.WriteString("    preview:\n")
					for _, l := range pv.before {
						fmt.Fprintf(bw, "      %s\n", pal.del.Sprint("- "+l))
					}
					for _, l := range pv.after {
						fmt.Fprintf(bw, "      %s\n", pal.add.Sprint("+ "+l))
					}
				}
			}
		}
	}
	return bw.Flush()
}

// writeSnippet prints the primary line with Context lines around it and a
// caret line under the span. Multi-line spans are underlined to the end of
// their first line.
func writeSnippet(w io.Writer, f *source.File, fs *source.FileSet, span source.Span, opts PrettyOpts, pal palette) {
	start, end := fs.Resolve(span)
	ctx := uint32(max(opts.Context, 0))
	first := start.Line - min(ctx, start.Line-1)
	last := start.Line + ctx
	lines := uint32(len(f.LineIdx)) + 1
	last = min(last, lines)
	gw := len(fmt.Sprint(last))

	for ln := first; ln <= last; ln++ {
		text := f.GetLine(ln)
		if ln != start.Line && strings.TrimSpace(text) == "" {
			continue
		}
		fmt.Fprintf(w, " %s %s\n", pal.gutter.Sprintf("%*d |", gw, ln), clip(text, opts.Width))
		if ln != start.Line {
			continue
		}
		line := text
		from := min(int(start.Col)-1, len(line))
		to := len(line)
		if end.Line == start.Line {
			to = min(int(end.Col)-1, len(line))
		}
		pad := indentFor(line[:from])
		width := max(runewidth.StringWidth(line[from:max(from, to)]), 1)
		fmt.Fprintf(w, " %s %s%s\n", pal.gutter.Sprintf("%*s |", gw, ""), pad, pal.caret.Sprint("^"+strings.Repeat("~", width-1)))
	}
}

// indentFor returns blanks as wide as prefix on screen; tabs stay tabs.
func indentFor(prefix string) string {
	var sb strings.Builder
	for _, r := range prefix {
		if r == '\t' {
			sb.WriteByte('\t')
			continue
		}
		sb.WriteString(strings.Repeat(" ", runewidth.RuneWidth(r)))
	}
	return sb.String()
}

func clip(line string, width uint8) string {
	if width == 0 || runewidth.StringWidth(line) <= int(width) {
		return line
	}
	return runewidth.Truncate(line, int(width), "…")
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}
