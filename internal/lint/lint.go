// Package lint runs syntax-level rules over a parsed Grit tree. Every finding
// is a diagnostic; most carry a fix that keeps the comments of edited tokens.
package lint

import (
	"fmt"
	"sort"
	"strings"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// Rule identifies one lint rule.
type Rule uint8

const (
	RuleBogus Rule = iota
	RuleEmptyListItem
	RuleRedundantBracket
	RuleNameNotNFC
	RuleTrailingComma

	ruleCount
)

var ruleNames = [ruleCount]string{
	RuleBogus:            "bogus",
	RuleEmptyListItem:    "empty-list-item",
	RuleRedundantBracket: "redundant-brackets",
	RuleNameNotNFC:       "nfc-names",
	RuleTrailingComma:    "trailing-commas",
}

func (r Rule) String() string {
	if r < ruleCount {
		return ruleNames[r]
	}
	return fmt.Sprintf("Rule(%d)", uint8(r))
}

// ParseRule maps a rule name to its Rule.
func ParseRule(name string) (Rule, error) {
	for r, n := range ruleNames {
		if n == name {
			return Rule(r), nil
		}
	}
	return 0, fmt.Errorf("lint: unknown rule %q (known: %s)", name, strings.Join(ruleNames[:], ", "))
}

// RuleSet is a set of rules.
type RuleSet uint32

// DefaultRules is every rule except trailing commas, which are valid Grit.
const DefaultRules = RuleSet(1<<RuleBogus | 1<<RuleEmptyListItem | 1<<RuleRedundantBracket | 1<<RuleNameNotNFC)

// AllRules enables every rule.
const AllRules = RuleSet(1<<ruleCount - 1)

// Has reports whether r is in the set.
func (s RuleSet) Has(r Rule) bool { return s&(1<<r) != 0 }

// With adds r.
func (s RuleSet) With(r Rule) RuleSet { return s | 1<<r }

// Without removes r.
func (s RuleSet) Without(r Rule) RuleSet { return s &^ (1 << r) }

// ParseRuleSet builds a set from rule names. An empty list gives DefaultRules.
func ParseRuleSet(names []string) (RuleSet, error) {
	if len(names) == 0 {
		return DefaultRules, nil
	}
	var s RuleSet
	for _, name := range names {
		if name == "all" {
			s = AllRules
			continue
		}
		r, err := ParseRule(name)
		if err != nil {
			return 0, err
		}
		s = s.With(r)
	}
	return s, nil
}

// Options configures Run.
type Options struct {
	Reporter diag.Reporter
	File     source.FileID
	// Rules выключенные правила не запускаются; ноль значит DefaultRules
	Rules RuleSet
	// Cache interns replacement tokens of fixes. Nil gets a fresh cache.
	Cache *syntax.Cache
}

type finding struct {
	code  diag.Code
	sev   diag.Severity
	span  source.Span
	msg   string
	fixes []diag.Fix
}

type checker struct {
	root  *syntax.Node
	opts  Options
	found []finding
}

// Run checks root and reports findings in source order. It returns the number
// of reported diagnostics.
func Run(root *syntax.Node, opts Options) int {
	if root == nil {
		return 0
	}
	if opts.Rules == 0 {
		opts.Rules = DefaultRules
	}
	if opts.Cache == nil {
		opts.Cache = syntax.NewCache()
	}
	c := &checker{root: root, opts: opts}
	if opts.Rules.Has(RuleBogus) {
		c.bogus()
	}
	if opts.Rules.Has(RuleEmptyListItem) {
		c.emptyListItems()
	}
	if opts.Rules.Has(RuleRedundantBracket) {
		c.redundantBrackets()
	}
	if opts.Rules.Has(RuleNameNotNFC) {
		c.names()
	}
	if opts.Rules.Has(RuleTrailingComma) {
		c.trailingCommas()
	}

	sort.SliceStable(c.found, func(i, j int) bool {
		if c.found[i].span.Start != c.found[j].span.Start {
			return c.found[i].span.Start < c.found[j].span.Start
		}
		return c.found[i].code < c.found[j].code
	})
	if opts.Reporter != nil {
		for _, f := range c.found {
			opts.Reporter.Report(f.code, f.sev, f.span, f.msg, nil, f.fixes)
		}
	}
	return len(c.found)
}

func (c *checker) report(code diag.Code, sev diag.Severity, r syntax.TextRange, msg string, fixes ...diag.Fix) {
	c.found = append(c.found, finding{
		code:  code,
		sev:   sev,
		span:  source.SpanOf(c.opts.File, r),
		msg:   msg,
		fixes: fixes,
	})
}
