package diag

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/source"
)

func TestBagDedupKeepsDistinct(t *testing.T) {
	span := source.Span{File: 1, Start: 3, End: 4}
	other := source.Span{File: 2, Start: 3, End: 4}
	bag := NewBag(0)
	for _, d := range []Diagnostic{
		{Code: SynMissingListItem, Severity: SevError, Primary: span, Message: "missing item"},
		{Code: SynMissingListItem, Severity: SevError, Primary: span, Message: "missing item"},
		{Code: SynMissingListItem, Severity: SevError, Primary: other, Message: "missing item"},
		{Code: SynMissingListItem, Severity: SevWarning, Primary: span, Message: "missing item"},
		{Code: SynMissingListItem, Severity: SevError, Primary: span, Message: "another"},
		{Code: SynMissingListItem, Severity: SevError, Primary: span, Message: "missing item"},
	} {
		bag.Add(d)
	}
	bag.Dedup()
	if bag.Len() != 4 {
		t.Fatalf("Dedup left %d items, want 4: %+v", bag.Len(), bag.Items())
	}
	if got := bag.Items()[2].Primary.File; got != 2 {
		t.Fatalf("Dedup reordered items: third has file %d", got)
	}
}
