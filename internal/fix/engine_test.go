package fix

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

func memFile(t *testing.T, path, content string) (*source.FileSet, afero.Fs, source.FileID) {
	t.Helper()
	mem := afero.NewMemMapFs()
	if err := afero.WriteFile(mem, path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	fs := source.NewFileSetFs(mem)
	fs.SetBaseDir("/w")
	id, err := fs.Load(path)
	if err != nil {
		t.Fatal(err)
	}
	return fs, mem, id
}

func TestGatherCandidatesSkipsDuplicateFixIDs(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.grit", []byte("[1,]"))
	span := source.Span{File: fileID, Start: 2, End: 3}

	diagnostics := []diag.Diagnostic{{
		Code:    diag.LintTrailingComma,
		Message: "trailing comma",
		Primary: span,
		Fixes: []diag.Fix{
			{
				ID:    "fix-duplicate",
				Title: "remove comma",
				Edits: []diag.TextEdit{{Span: span, OldText: ","}},
			},
			{
				ID:    "fix-duplicate",
				Title: "remove comma again",
				Edits: []diag.TextEdit{{Span: span, OldText: ","}},
			},
			{
				Title: "empty",
			},
		},
	}}

	candidates, skips := gatherCandidates(diagnostics)

	if len(candidates) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(candidates))
	}
	if len(skips) != 2 {
		t.Fatalf("expected 2 skipped fixes, got %d", len(skips))
	}
	if skips[0].ID != "fix-duplicate" || skips[0].Reason != "duplicate fix id" {
		t.Fatalf("unexpected skip %+v", skips[0])
	}
	if skips[1].Reason != "fix has no edits" {
		t.Fatalf("unexpected skip %+v", skips[1])
	}
}

func TestApplyWritesThroughFs(t *testing.T) {
	fs, mem, id := memFile(t, "/w/a.grit", "[1, 2,]")
	span := source.Span{File: id, Start: 5, End: 6}
	diagnostics := []diag.Diagnostic{{
		Code:    diag.LintTrailingComma,
		Message: "trailing comma",
		Primary: span,
		Fixes:   []diag.Fix{DeleteSpan("Remove trailing comma", span, ",")},
	}}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || len(res.FileChanges) != 1 {
		t.Fatalf("result = %+v", res)
	}
	if res.FileChanges[0].EditCount != 1 {
		t.Fatalf("edit count = %d", res.FileChanges[0].EditCount)
	}
	got, err := afero.ReadFile(mem, "/w/a.grit")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "[1, 2]" {
		t.Fatalf("file content = %q", got)
	}
}

func TestApplyDryRunLeavesFiles(t *testing.T) {
	fs, mem, id := memFile(t, "/w/a.grit", "$x = 1")
	span := source.Span{File: id, Start: 3, End: 4}
	diagnostics := []diag.Diagnostic{{
		Code:    diag.LintRedundantBracket,
		Primary: span,
		Fixes:   []diag.Fix{ReplaceSpan("Use +=", span, "+=", "=")},
	}}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.FileChanges) != 1 || string(res.FileChanges[0].Content) != "$x += 1" {
		t.Fatalf("changes = %+v", res.FileChanges)
	}
	got, _ := afero.ReadFile(mem, "/w/a.grit")
	if string(got) != "$x = 1" {
		t.Fatalf("dry run wrote %q", got)
	}
}

func TestApplySkipsConflicts(t *testing.T) {
	fs, _, id := memFile(t, "/w/a.grit", "$x = 1")
	first := source.Span{File: id, Start: 3, End: 6}
	second := source.Span{File: id, Start: 5, End: 6}
	diagnostics := []diag.Diagnostic{
		{Code: diag.LintEmptyListItem, Primary: first, Fixes: []diag.Fix{ReplaceSpan("a", first, "= 2", "= 1")}},
		{Code: diag.LintEmptyListItem, Primary: second, Fixes: []diag.Fix{ReplaceSpan("b", second, "3", "1")}},
	}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if len(res.Applied) != 1 || res.Applied[0].Title != "a" {
		t.Fatalf("applied = %+v", res.Applied)
	}
	if len(res.Skipped) != 1 || !strings.Contains(res.Skipped[0].Reason, "conflicts") {
		t.Fatalf("skipped = %+v", res.Skipped)
	}
	if string(res.FileChanges[0].Content) != "$x = 2" {
		t.Fatalf("content = %q", res.FileChanges[0].Content)
	}
}

func TestApplyModes(t *testing.T) {
	fs, _, id := memFile(t, "/w/a.grit", "$x = 1")
	span := source.Span{File: id, Start: 5, End: 6}
	diagnostics := []diag.Diagnostic{{
		Code:    diag.LintEmptyListItem,
		Primary: span,
		Fixes: []diag.Fix{
			ReplaceSpan("manual", span, "2", "1", WithID("manual"), WithApplicability(diag.FixApplicabilityManualReview)),
		},
	}}

	// режим All пропускает небезопасные правки
	if _, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll, DryRun: true}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("ApplyModeAll: %v", err)
	}
	// Once берёт первую, если безопасных нет
	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeOnce, DryRun: true})
	if err != nil || len(res.Applied) != 1 {
		t.Fatalf("ApplyModeOnce: %v %+v", err, res)
	}
	if _, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeID, TargetID: "missing", DryRun: true}); !errors.Is(err, ErrNoFixes) {
		t.Fatalf("ApplyModeID missing: %v", err)
	}
	res, err = Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeID, TargetID: "manual", DryRun: true})
	if err != nil || string(res.FileChanges[0].Content) != "$x = 2" {
		t.Fatalf("ApplyModeID: %v %+v", err, res)
	}
}

func TestApplyRefusesVirtualFiles(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("stdin", []byte("[1,]"))
	span := source.Span{File: id, Start: 2, End: 3}
	diagnostics := []diag.Diagnostic{{
		Code:    diag.LintTrailingComma,
		Primary: span,
		Fixes:   []diag.Fix{DeleteSpan("Remove trailing comma", span, ",")},
	}}

	res, err := Apply(fs, diagnostics, ApplyOptions{Mode: ApplyModeAll})
	if !errors.Is(err, ErrNoFixes) {
		t.Fatalf("expected ErrNoFixes, got %v", err)
	}
	if len(res.Skipped) != 1 || res.Skipped[0].Reason != "target file is virtual" {
		t.Fatalf("skipped = %+v", res.Skipped)
	}
}

func TestApplyEdits(t *testing.T) {
	edits := []diag.TextEdit{
		{Span: source.Span{Start: 0, End: 2}, NewText: "$y", OldText: "$x"},
		{Span: source.Span{Start: 5, End: 6}, NewText: "10"},
	}
	got, err := ApplyEdits([]byte("$x = 1"), edits)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if string(got) != "$y = 10" {
		t.Fatalf("got %q", got)
	}

	if _, err := ApplyEdits([]byte("$x = 1"), []diag.TextEdit{{Span: source.Span{Start: 0, End: 2}, OldText: "$z"}}); err == nil {
		t.Fatalf("guard mismatch must fail")
	}
	overlap := []diag.TextEdit{
		{Span: source.Span{Start: 0, End: 3}},
		{Span: source.Span{Start: 2, End: 4}},
	}
	if _, err := ApplyEdits([]byte("$x = 1"), overlap); err == nil {
		t.Fatalf("overlapping edits must fail")
	}
}
