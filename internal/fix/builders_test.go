package fix

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parseSource(t *testing.T, src string) (*source.File, *syntax.Node) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("fix.grit", []byte(src))
	sf := fs.Get(fileID)

	bag := diag.NewBag(128)
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	if bag.HasErrors() {
		t.Fatalf("parse %q reported %d diagnostics", src, bag.Len())
	}
	return sf, res.Syntax()
}

func tokenByText(t *testing.T, root *syntax.Node, text string) *syntax.Token {
	t.Helper()
	for tok := range root.Tokens() {
		if tok.Text() == text {
			return tok
		}
	}
	t.Fatalf("no token %q in %q", text, root.Text())
	return nil
}

func TestBuilderOptions(t *testing.T) {
	span := source.Span{File: 1, Start: 3, End: 3}
	f := InsertText("Insert comma", span, ",", "", WithID("comma-1"), Preferred(), WithApplicability(diag.FixApplicabilityManualReview))

	if f.ID != "comma-1" {
		t.Fatalf("ID = %q", f.ID)
	}
	if !f.IsPreferred {
		t.Fatalf("expected preferred fix")
	}
	if f.Applicability != diag.FixApplicabilityManualReview {
		t.Fatalf("applicability = %v", f.Applicability)
	}
	if len(f.Edits) != 1 || f.Edits[0].NewText != "," || f.Edits[0].Span != span {
		t.Fatalf("edits = %+v", f.Edits)
	}
}

func TestDeleteAndReplaceSpan(t *testing.T) {
	span := source.Span{File: 0, Start: 5, End: 6}

	del := DeleteSpan("Remove trailing comma", span, ",")
	if len(del.Edits) != 1 {
		t.Fatalf("expected 1 edit, got %d", len(del.Edits))
	}
	if del.Edits[0].NewText != "" || del.Edits[0].OldText != "," {
		t.Fatalf("delete edit = %+v", del.Edits[0])
	}
	if del.Applicability != diag.FixApplicabilityAlwaysSafe {
		t.Fatalf("delete applicability = %v", del.Applicability)
	}

	rep := ReplaceSpan("Use +=", span, "+=", "=")
	if rep.Edits[0].NewText != "+=" || rep.Edits[0].OldText != "=" {
		t.Fatalf("replace edit = %+v", rep.Edits[0])
	}
}

func TestWrapWith(t *testing.T) {
	span := source.Span{File: 0, Start: 3, End: 8}
	f := WrapWith("Parenthesize", span, "(", ")")

	if f.Applicability != diag.FixApplicabilitySafeWithHeuristics {
		t.Fatalf("applicability = %v", f.Applicability)
	}
	if len(f.Edits) != 2 {
		t.Fatalf("expected 2 edits, got %d", len(f.Edits))
	}
	if f.Edits[0].Span.Start != 3 || f.Edits[0].Span.End != 3 || f.Edits[0].NewText != "(" {
		t.Fatalf("prefix edit = %+v", f.Edits[0])
	}
	if f.Edits[1].Span.Start != 8 || f.Edits[1].Span.End != 8 || f.Edits[1].NewText != ")" {
		t.Fatalf("suffix edit = %+v", f.Edits[1])
	}

	got, err := ApplyEdits([]byte("$x+$y+$z"), f.Edits)
	if err != nil {
		t.Fatalf("ApplyEdits: %v", err)
	}
	if string(got) != "$x+($y+$z)" {
		t.Fatalf("wrapped = %q", got)
	}
}

func TestTokenEditsKeepsComments(t *testing.T) {
	tests := []struct {
		src    string
		remove []string
		want   string
	}{
		{"$x /* keep */ = 1", []string{"="}, "$x /* keep */ 1"},
		{"[1, 2, /* last */ ]", []string{","}, "[1 2, /* last */ ]"},
		{"$x = 1", nil, "$x = 1"},
	}
	for _, tt := range tests {
		sf, root := parseSource(t, tt.src)
		edits := comments.NewEdits()
		for _, text := range tt.remove {
			if err := edits.Remove(tokenByText(t, root, text)); err != nil {
				t.Fatalf("Remove(%q): %v", text, err)
			}
		}
		f := TokenEdits("Remove token", sf.ID, root, edits)
		if len(tt.remove) == 0 && len(f.Edits) != 0 {
			t.Fatalf("%q: expected no edits, got %+v", tt.src, f.Edits)
		}
		got, err := ApplyEdits(sf.Content, f.Edits)
		if err != nil {
			t.Fatalf("%q: ApplyEdits: %v", tt.src, err)
		}
		if string(got) != tt.want {
			t.Fatalf("%q: got %q, want %q", tt.src, got, tt.want)
		}
	}
}
