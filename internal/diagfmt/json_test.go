package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/source"
)

func renderJSON(t *testing.T, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := JSON(&buf, bag, fs, opts); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	if !json.Valid(buf.Bytes()) {
		t.Fatalf("invalid JSON:\n%s", buf.String())
	}
	return buf.Bytes()
}

// TestJSONBasic проверяет базовое JSON форматирование
func TestJSONBasic(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.grit", []byte("pattern p() {\n  $x = \"open\n}"))

	bag := diag.NewBag(10)
	bag.Add(diag.New(diag.SevError, diag.LexUnterminatedString, source.Span{File: fileID, Start: 21, End: 26}, "Unterminated string literal"))

	var out DiagnosticsOutput
	if err := json.Unmarshal(renderJSON(t, bag, fs, JSONOpts{IncludePositions: true, PathMode: PathModeBasename}), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if out.Count != 1 || len(out.Diagnostics) != 1 {
		t.Fatalf("count = %d, diagnostics = %d", out.Count, len(out.Diagnostics))
	}
	d := out.Diagnostics[0]
	if d.Severity != "ERROR" || d.Code != "LEX1002" || d.Message != "Unterminated string literal" {
		t.Fatalf("diagnostic = %+v", d)
	}
	want := LocationJSON{File: "test.grit", StartByte: 21, EndByte: 26, StartLine: 2, StartCol: 8, EndLine: 2, EndCol: 13}
	if d.Location != want {
		t.Fatalf("location = %+v, want %+v", d.Location, want)
	}
}

func TestJSONWithoutPositionsAndMax(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.grit", []byte("$a\n$b\n$c\n"))
	bag := diag.NewBag(10)
	for i := range uint32(3) {
		bag.Add(diag.New(diag.SevWarning, diag.SynUnexpectedToken, source.Span{File: fileID, Start: 3 * i, End: 3*i + 2}, "unexpected"))
	}

	data := renderJSON(t, bag, fs, JSONOpts{Max: 2})
	if got := gjson.GetBytes(data, "count").Int(); got != 2 {
		t.Fatalf("count = %d", got)
	}
	if gjson.GetBytes(data, "diagnostics.0.location.start_line").Exists() {
		t.Fatalf("positions emitted without IncludePositions:\n%s", data)
	}
	if got := gjson.GetBytes(data, "diagnostics.1.location.start_byte").Int(); got != 3 {
		t.Fatalf("second start = %d", got)
	}
}

func TestJSONNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("f.grit", []byte("[1, 2,]\n"))
	comma := source.Span{File: fileID, Start: 5, End: 6}

	bag := diag.NewBag(4)
	d := diag.New(diag.SevInfo, diag.LintTrailingComma, comma, "trailing comma")
	d = d.WithNote(comma, "here")
	d = d.WithFixSuggestion(fix.DeleteSpan("remove trailing comma", comma, ",", fix.WithID("trailing-comma")))
	bag.Add(d)

	data := renderJSON(t, bag, fs, JSONOpts{IncludeNotes: true, IncludeFixes: true, IncludePreviews: true})
	checks := map[string]string{
		"diagnostics.0.severity":                      "INFO",
		"diagnostics.0.code":                          "LNT3103",
		"diagnostics.0.notes.0.message":               "here",
		"diagnostics.0.fixes.0.id":                    "trailing-comma",
		"diagnostics.0.fixes.0.applicability":         "always-safe",
		"diagnostics.0.fixes.0.edits.0.old_text":      ",",
		"diagnostics.0.fixes.0.edits.0.before_lines.0": "[1, 2,]",
		"diagnostics.0.fixes.0.edits.0.after_lines.0":  "[1, 2]",
	}
	for path, want := range checks {
		if got := gjson.GetBytes(data, path).String(); got != want {
			t.Fatalf("%s = %q, want %q\n%s", path, got, want, data)
		}
	}

	data = renderJSON(t, bag, fs, JSONOpts{})
	if gjson.GetBytes(data, "diagnostics.0.fixes").Exists() || gjson.GetBytes(data, "diagnostics.0.notes").Exists() {
		t.Fatalf("notes or fixes emitted without options:\n%s", data)
	}
}
