package diag

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/source"
)

func TestFormatGolden(t *testing.T) {
	fs := source.NewFileSet()
	fs.SetBaseDir("/workspace")

	file := fs.Add("/workspace/testdata/golden/sample.grit", []byte("a\nb\n"), 0)

	diags := []Diagnostic{
		{
			Severity: SevWarning,
			Code:     TreeBogusSubtree,
			Message:  "another",
			Primary:  source.Span{File: file, Start: 2, End: 3},
		},
		{
			Severity: SevError,
			Code:     SynUnexpectedToken,
			Message:  "first line\nsecond",
			Primary:  source.Span{File: file, Start: 0, End: 1},
			Notes: []Note{
				{Span: source.Span{File: 42, Start: 0, End: 0}, Msg: "unknown file"},
				{Span: source.Span{File: file, Start: 2, End: 3}, Msg: "note line"},
			},
		},
	}

	expected := "error SYN2001 testdata/golden/sample.grit:1:1 first line second\n" +
		"note SYN2001 testdata/golden/sample.grit:2:1 note line\n" +
		"warning TRE3007 testdata/golden/sample.grit:2:1 another"

	if got := FormatGolden(diags, fs, true); got != expected {
		t.Fatalf("unexpected golden diagnostics:\nwant:\n%s\n\ngot:\n%s", expected, got)
	}
}

func TestBagLimitAndSort(t *testing.T) {
	b := NewBag(2)
	sp := func(s uint32) source.Span { return source.Span{File: 0, Start: s, End: s + 1} }
	if !b.Add(NewError(SynExpectPattern, sp(5), "late")) {
		t.Fatal("first add rejected")
	}
	b.Add(New(SevWarning, LintTrailingComma, sp(1), "early"))
	if b.Add(NewError(SynExpectName, sp(0), "dropped")) {
		t.Fatal("add over the limit accepted")
	}
	if b.Len() != 2 || b.Dropped() != 1 {
		t.Fatalf("len = %d, dropped = %d", b.Len(), b.Dropped())
	}
	b.Sort()
	if b.Items()[0].Message != "early" {
		t.Fatalf("sort order = %+v", b.Items())
	}
	if !b.HasErrors() || b.Count(SevWarning) != 2 {
		t.Fatal("severity counts are wrong")
	}
	b.Filter(func(d Diagnostic) bool { return d.Severity == SevError })
	if b.Len() != 1 || !b.HasWarnings() {
		t.Fatalf("filter left %d items", b.Len())
	}
}

func TestDedup(t *testing.T) {
	bag := NewBag(0)
	r := NewDedupReporter(MultiReporter{BagReporter{Bag: bag}, NopReporter{}})
	span := source.Span{Start: 3, End: 4}
	for range 3 {
		ReportError(r, SynMissingListItem, span, "missing item").WithFix("remove comma", TextEdit{Span: span}).Emit()
	}
	if bag.Len() != 1 || len(bag.Items()[0].Fixes) != 1 {
		t.Fatalf("bag = %+v", bag.Items())
	}
	bag.Add(bag.Items()[0])
	bag.Dedup()
	if bag.Len() != 1 {
		t.Fatalf("dedup left %d", bag.Len())
	}
}

func TestCodeIDs(t *testing.T) {
	tests := map[Code]string{
		LexUnknownChar:   "LEX1001",
		SynExpectPattern: "SYN2003",
		TreeRoundTrip:    "TRE3001",
		LintNameNotNFC:   "LNT3102",
		IOLoadFileError:  "IO4001",
		FixConflict:      "FIX5001",
		ObsTimings:       "OBS6001",
		Code(9999):       "E0000",
	}
	for c, want := range tests {
		if got := c.ID(); got != want {
			t.Fatalf("%d.ID() = %s, want %s", c, got, want)
		}
	}
	for _, c := range Codes() {
		if c.Title() == "" {
			t.Fatalf("code %d has no title", c)
		}
	}
}
