package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/diagfmt"
	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/observ"
	"github.com/biomejs/biome-sub001/internal/source"
)

// diagOutput selects what writeDiagnostics prints.
type diagOutput struct {
	format    string // pretty | json | short
	notes     bool
	fixes     bool
	maxOutput int
}

func writeDiagnostics(w io.Writer, bag *diag.Bag, fs *source.FileSet, out diagOutput) error {
	switch out.format {
	case "pretty":
		if bag.Len() == 0 {
			return nil
		}
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:       sess.color,
			Context:     2,
			PathMode:    sess.pathMode,
			ShowNotes:   out.notes,
			ShowFixes:   out.fixes,
			ShowPreview: out.fixes,
		})
	case "json":
		return diagfmt.JSON(w, bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         sess.pathMode,
			Max:              out.maxOutput,
			IncludeNotes:     out.notes,
			IncludeFixes:     out.fixes,
			IncludePreviews:  out.fixes,
		})
	case "short":
		_, err := io.WriteString(w, diag.FormatGolden(bag.Items(), fs, out.notes))
		return err
	default:
		return fmt.Errorf("unknown diagnostics format %q (expected pretty|json|short)", out.format)
	}
}

// writeTimings prints the phases of the session timer.
func writeTimings(w io.Writer, report observ.Report) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"phase", "count", "ms", "note"})
	for _, p := range report.Phases {
		tbl.AppendRow(table.Row{p.Name, p.Count, fmt.Sprintf("%.2f", p.DurationMS), p.Note})
	}
	tbl.AppendFooter(table.Row{"total", "", fmt.Sprintf("%.2f", report.TotalMS), ""})
	tbl.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
		{Number: 3, Align: text.AlignRight},
	})
	tbl.Render()
}

// writeStats prints per-file tree statistics and the green cache counters.
func writeStats(w io.Writer, res *driver.Result) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"file", "size", "tokens", "nodes", "comments", "bogus", "diagnostics", "time"})
	var total driver.FileStats
	for i := range res.Files {
		fr := &res.Files[i]
		st := fr.Stats
		tbl.AppendRow(table.Row{
			fr.Path,
			humanize.Bytes(uint64(max(st.Bytes, 0))),
			humanize.Comma(int64(st.Tokens)),
			humanize.Comma(int64(st.Nodes)),
			st.Comments,
			st.Bogus,
			fr.Bag.Len(),
			fr.Elapsed.Round(time.Microsecond).String(),
		})
		total.Bytes += st.Bytes
		total.Tokens += st.Tokens
		total.Nodes += st.Nodes
		total.Comments += st.Comments
		total.Bogus += st.Bogus
	}
	tbl.AppendFooter(table.Row{
		fmt.Sprintf("%d files", len(res.Files)),
		humanize.Bytes(uint64(max(total.Bytes, 0))),
		humanize.Comma(int64(total.Tokens)),
		humanize.Comma(int64(total.Nodes)),
		total.Comments,
		total.Bogus,
		"",
		res.Elapsed.Round(time.Microsecond).String(),
	})
	tbl.Render()

	c := res.Cache
	fmt.Fprintf(w, "green cache: tokens %s hits / %s misses (%s), nodes %s hits / %s misses (%s)\n",
		humanize.Comma(int64(c.TokenHits)), humanize.Comma(int64(c.TokenMisses)), hitRate(c.TokenHits, c.TokenMisses),
		humanize.Comma(int64(c.NodeHits)), humanize.Comma(int64(c.NodeMisses)), hitRate(c.NodeHits, c.NodeMisses))
}

func hitRate[T ~int | ~int64 | ~uint64](hits, misses T) string {
	total := hits + misses
	if total == 0 {
		return "n/a"
	}
	return humanize.FormatFloat("#.#", float64(hits)*100/float64(total)) + "%"
}

// writeDiff prints a line diff of each change in unified-like form.
func writeDiff(w io.Writer, changes []driver.Change) error {
	dmp := diffmatchpatch.New()
	for _, ch := range changes {
		a, b, lines := dmp.DiffLinesToChars(string(ch.Old), string(ch.New))
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
		if _, err := fmt.Fprintf(w, "--- %s\n+++ %s\n", ch.Path, ch.Path); err != nil {
			return err
		}
		for _, d := range diffs {
			prefix := " "
			switch d.Type {
			case diffmatchpatch.DiffInsert:
				prefix = "+"
			case diffmatchpatch.DiffDelete:
				prefix = "-"
			case diffmatchpatch.DiffEqual:
				// неизменённые строки пропускаем
				continue
			}
			for _, line := range strings.SplitAfter(d.Text, "\n") {
				if line == "" {
					continue
				}
				if !strings.HasSuffix(line, "\n") {
					line += "\n\\ No newline at end of file\n"
				}
				if _, err := io.WriteString(w, prefix+line); err != nil {
					return err
				}
			}
		}
	}
	return nil
}
