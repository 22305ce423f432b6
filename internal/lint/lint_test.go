package lint

import (
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func parseSource(t *testing.T, src string) (*source.File, *syntax.Node) {
	t.Helper()
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("lint.grit", []byte(src)))
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.NopReporter{}})
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	return sf, res.Syntax()
}

func runRules(t *testing.T, src string, rules RuleSet) (*source.File, []diag.Diagnostic) {
	t.Helper()
	sf, root := parseSource(t, src)
	bag := diag.NewBag(64)
	n := Run(root, Options{Reporter: diag.BagReporter{Bag: bag}, File: sf.ID, Rules: rules})
	if n != bag.Len() {
		t.Fatalf("Run returned %d, bag holds %d", n, bag.Len())
	}
	return sf, bag.Items()
}

func applyFirstFix(t *testing.T, sf *source.File, d diag.Diagnostic) string {
	t.Helper()
	if len(d.Fixes) == 0 {
		t.Fatalf("%s: no fix", d.Code.ID())
	}
	out, err := fix.ApplyEdits(sf.Content, d.Fixes[0].Edits)
	if err != nil {
		t.Fatalf("%s: %v", d.Code.ID(), err)
	}
	return string(out)
}

func TestRuleFixes(t *testing.T) {
	tests := []struct {
		name  string
		rule  Rule
		src   string
		code  diag.Code
		fixed string
	}{
		{"empty argument", RuleEmptyListItem, "foo(1,,2)", diag.LintEmptyListItem, "foo(1,2)"},
		{"bracketed literal", RuleRedundantBracket, "$x = (1)", diag.LintRedundantBracket, "$x = 1"},
		{"bracket comments survive", RuleRedundantBracket, "$x = ( /* one */ 1)", diag.LintRedundantBracket, "$x = /* one */ 1"},
		{"not nfc", RuleNameNotNFC, "$cafe\u0301 = 1", diag.LintNameNotNFC, "$caf\u00e9 = 1"},
		{"trailing comma", RuleTrailingComma, "[1, 2,]", diag.LintTrailingComma, "[1, 2]"},
	}
	for _, tt := range tests {
		sf, diags := runRules(t, tt.src, RuleSet(0).With(tt.rule))
		if len(diags) != 1 {
			t.Fatalf("%s: got %d diagnostics", tt.name, len(diags))
		}
		if diags[0].Code != tt.code {
			t.Fatalf("%s: code = %s", tt.name, diags[0].Code.ID())
		}
		if got := applyFirstFix(t, sf, diags[0]); got != tt.fixed {
			t.Fatalf("%s: fixed = %q, want %q", tt.name, got, tt.fixed)
		}
	}
}

func TestCleanSourceHasNoFindings(t *testing.T) {
	_, diags := runRules(t, "engine biome(1.0)\nlanguage js\n\npattern p($x) { `f($x)` where { $x <: 1 } }\n", AllRules)
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %+v", diags)
	}
}

func TestBracketsAroundCompoundPatternsStay(t *testing.T) {
	_, diags := runRules(t, "($a + $b) * 2", RuleSet(0).With(RuleRedundantBracket))
	if len(diags) != 0 {
		t.Fatalf("unexpected findings: %+v", diags)
	}
}

func TestTrailingCommaOffByDefault(t *testing.T) {
	_, diags := runRules(t, "[1, 2,]", 0)
	if len(diags) != 0 {
		t.Fatalf("default rules reported %+v", diags)
	}
}

func TestParseRuleSet(t *testing.T) {
	s, err := ParseRuleSet([]string{"bogus", "trailing-commas"})
	if err != nil {
		t.Fatalf("ParseRuleSet: %v", err)
	}
	if !s.Has(RuleBogus) || !s.Has(RuleTrailingComma) || s.Has(RuleNameNotNFC) {
		t.Fatalf("set = %b", s)
	}
	if s, _ := ParseRuleSet(nil); s != DefaultRules {
		t.Fatalf("empty list = %b", s)
	}
	if s, _ := ParseRuleSet([]string{"all"}); s != AllRules {
		t.Fatalf("all = %b", s)
	}
	if _, err := ParseRuleSet([]string{"nope"}); err == nil {
		t.Fatalf("unknown rule accepted")
	}
	if AllRules.Without(RuleTrailingComma) != DefaultRules {
		t.Fatalf("default rules must be all but trailing commas")
	}
}
