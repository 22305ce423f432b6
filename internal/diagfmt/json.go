package diagfmt

import (
	"cmp"
	"encoding/json"
	"errors"
	"io"
	"slices"

	"github.com/samber/lo"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// NoteJSON представляет дополнительную заметку для JSON
type NoteJSON struct {
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
}

// FixEditJSON представляет одно редактирование для JSON
type FixEditJSON struct {
	Location    LocationJSON `json:"location"`
	NewText     string       `json:"new_text"`
	OldText     string       `json:"old_text,omitempty"`
	BeforeLines []string     `json:"before_lines,omitempty"`
	AfterLines  []string     `json:"after_lines,omitempty"`
}

// FixJSON представляет предложение по исправлению для JSON
type FixJSON struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Applicability string        `json:"applicability"`
	IsPreferred   bool          `json:"is_preferred,omitempty"`
	Edits         []FixEditJSON `json:"edits,omitempty"`
}

// DiagnosticJSON представляет диагностику в JSON формате
type DiagnosticJSON struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Message  string       `json:"message"`
	Location LocationJSON `json:"location"`
	Notes    []NoteJSON   `json:"notes,omitempty"`
	Fixes    []FixJSON    `json:"fixes,omitempty"`
}

// DiagnosticsOutput представляет корневую структуру JSON вывода
type DiagnosticsOutput struct {
	Diagnostics []DiagnosticJSON `json:"diagnostics"`
	Count       int              `json:"count"`
}

// jsonBuilder converts diagnostics of one FileSet under fixed options.
type jsonBuilder struct {
	fs   *source.FileSet
	opts JSONOpts
}

func (b jsonBuilder) location(span source.Span) LocationJSON {
	loc := LocationJSON{StartByte: span.Start, EndByte: span.End}
	f := b.fs.Get(span.File)
	if f == nil {
		return loc
	}
	loc.File = displayPath(f, b.fs, b.opts.PathMode)
	if b.opts.IncludePositions {
		start, end := b.fs.Resolve(span)
		loc.StartLine, loc.StartCol = start.Line, start.Col
		loc.EndLine, loc.EndCol = end.Line, end.Col
	}
	return loc
}

func (b jsonBuilder) edit(e diag.TextEdit, _ int) FixEditJSON {
	out := FixEditJSON{Location: b.location(e.Span), NewText: e.NewText, OldText: e.OldText}
	if b.opts.IncludePreviews {
		if pv, err := previewEdit(b.fs, e); err == nil {
			out.BeforeLines, out.AfterLines = pv.before, pv.after
		}
	}
	return out
}

func (b jsonBuilder) fix(f diag.Fix, _ int) FixJSON {
	out := FixJSON{
		ID:            f.ID,
		Title:         f.Title,
		Applicability: f.Applicability.String(),
		IsPreferred:   f.IsPreferred,
	}
	if len(f.Edits) > 0 {
		out.Edits = lo.Map(f.Edits, b.edit)
	}
	return out
}

func (b jsonBuilder) diagnostic(d diag.Diagnostic, _ int) DiagnosticJSON {
	out := DiagnosticJSON{
		Severity: d.Severity.String(),
		Code:     d.Code.ID(),
		Message:  d.Message,
		Location: b.location(d.Primary),
	}
	// заметки таймингов несут сам отчёт, их печатаем всегда
	if (b.opts.IncludeNotes || d.Code == diag.ObsTimings) && len(d.Notes) > 0 {
		out.Notes = lo.Map(d.Notes, func(n diag.Note, _ int) NoteJSON {
			return NoteJSON{Message: n.Msg, Location: b.location(n.Span)}
		})
	}
	if b.opts.IncludeFixes && len(d.Fixes) > 0 {
		out.Fixes = lo.Map(sortedFixes(d.Fixes), b.fix)
	}
	return out
}

// BuildDiagnosticsOutput формирует структуру JSON-вывода без сериализации.
func BuildDiagnosticsOutput(bag *diag.Bag, fs *source.FileSet, opts JSONOpts) (DiagnosticsOutput, error) {
	if fs == nil {
		return DiagnosticsOutput{}, errors.New("diagfmt: nil FileSet")
	}
	items := bag.Items()
	if opts.Max > 0 && opts.Max < len(items) {
		items = items[:opts.Max]
	}
	out := DiagnosticsOutput{Diagnostics: lo.Map(items, jsonBuilder{fs: fs, opts: opts}.diagnostic)}
	out.Count = len(out.Diagnostics)
	return out, nil
}

// sortedFixes orders fixes: preferred first, then by applicability, title and id.
func sortedFixes(in []diag.Fix) []diag.Fix {
	fixes := slices.Clone(in)
	slices.SortStableFunc(fixes, func(a, b diag.Fix) int {
		if a.IsPreferred != b.IsPreferred {
			if a.IsPreferred {
				return -1
			}
			return 1
		}
		return cmp.Or(
			cmp.Compare(a.Applicability, b.Applicability),
			cmp.Compare(a.Title, b.Title),
			cmp.Compare(a.ID, b.ID),
		)
	})
	return fixes
}

// JSON пишет диагностики как один JSON-документ с отступами.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	output, err := BuildDiagnosticsOutput(bag, fs, opts)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(output)
}
