package fix

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/biomejs/biome-sub001/internal/diag"
)

// candidate is one fix offered by a diagnostic, numbered in the order the
// diagnostics listed it.
type candidate struct {
	diag  diag.Diagnostic
	fix   diag.Fix
	order int
}

func (c candidate) skip(reason string) SkippedFix {
	return SkippedFix{ID: c.fix.ID, Title: c.fix.Title, Reason: reason}
}

// gatherCandidates flattens the fixes of diagnostics. Fixes without edits and
// repeated IDs are skipped; a missing ID is derived from the diagnostic code
// and its primary span.
func gatherCandidates(diagnostics []diag.Diagnostic) ([]candidate, []SkippedFix) {
	var (
		cands []candidate
		skips []SkippedFix
	)
	seen := make(map[string]struct{})
	for _, d := range diagnostics {
		for idx, f := range d.Fixes {
			c := candidate{diag: d, fix: f, order: len(cands)}
			if len(f.Edits) == 0 {
				skips = append(skips, c.skip("fix has no edits"))
				continue
			}
			if c.fix.ID == "" {
				c.fix.ID = fmt.Sprintf("%s-%d-%d-%d", d.Code.ID(), d.Primary.File, d.Primary.Start, idx)
			}
			if _, dup := seen[c.fix.ID]; dup {
				skips = append(skips, c.skip("duplicate fix id"))
				continue
			}
			seen[c.fix.ID] = struct{}{}
			cands = append(cands, c)
		}
	}
	return cands, skips
}

// sortCandidates orders fixes by position in the source; ties keep the order
// of the diagnostics, then preferred fixes come first.
func sortCandidates(cands []candidate) {
	slices.SortStableFunc(cands, func(a, b candidate) int {
		pa, pb := a.diag.Primary, b.diag.Primary
		if c := cmp.Compare(pa.File, pb.File); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.Start, pb.Start); c != 0 {
			return c
		}
		if c := cmp.Compare(pa.End, pb.End); c != 0 {
			return c
		}
		if c := cmp.Compare(a.order, b.order); c != 0 {
			return c
		}
		if a.fix.IsPreferred != b.fix.IsPreferred {
			if a.fix.IsPreferred {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.fix.ID, b.fix.ID)
	})
}

func selectCandidates(cands []candidate, opts ApplyOptions) ([]candidate, []SkippedFix) {
	switch opts.Mode {
	case ApplyModeID:
		if i := slices.IndexFunc(cands, func(c candidate) bool { return c.fix.ID == opts.TargetID }); i >= 0 {
			return cands[i : i+1], nil
		}
		return nil, []SkippedFix{{ID: opts.TargetID, Reason: "fix id not found"}}
	case ApplyModeAll:
		var (
			picked []candidate
			skips  []SkippedFix
		)
		for _, c := range cands {
			if c.fix.Applicability != diag.FixApplicabilityAlwaysSafe {
				skips = append(skips, c.skip("applicability is "+c.fix.Applicability.String()))
				continue
			}
			picked = append(picked, c)
		}
		return picked, skips
	case ApplyModeOnce:
		if len(cands) == 0 {
			return nil, nil
		}
		// первая безопасная, иначе просто первая
		if i := slices.IndexFunc(cands, func(c candidate) bool {
			return c.fix.Applicability == diag.FixApplicabilityAlwaysSafe
		}); i >= 0 {
			return cands[i : i+1], nil
		}
		return cands[:1], nil
	}
	return nil, nil
}
