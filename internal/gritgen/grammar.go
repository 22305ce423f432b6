package gritgen

import (
	"fmt"
	"regexp"
	"slices"
	"strings"

	"github.com/samber/lo"
)

type declKind uint8

const (
	declNode declKind = iota
	declUnion
	declList
	declBogus
)

type decl struct {
	kind declKind
	name string
}

// SlotKind says what a slot holds.
type SlotKind uint8

const (
	SlotNode SlotKind = iota
	SlotToken
)

// Slot is one position of a concrete node.
type Slot struct {
	Name     string
	Kind     SlotKind
	Types    []string // типы узлов или токены-альтернативы
	Optional bool
}

// List describes a list node.
type List struct {
	Element   string
	Separator string // пусто для списков без разделителя
	Trailing  bool
}

// Grammar is the classified schema.
type Grammar struct {
	order  []decl
	nodes  map[string][]Slot
	unions map[string][]string
	lists  map[string]List
	bogus  map[string]bool
}

// Parse reads a schema and classifies every rule.
func Parse(src string) (*Grammar, error) {
	rules, err := parseRules(src)
	if err != nil {
		return nil, err
	}
	g := &Grammar{
		nodes:  make(map[string][]Slot),
		unions: make(map[string][]string),
		lists:  make(map[string]List),
		bogus:  make(map[string]bool),
	}
	for _, r := range rules {
		if err := g.add(r); err != nil {
			return nil, err
		}
	}
	if err := g.check(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grammar) add(r rule) error {
	t := r.terms
	switch {
	case len(t) == 2 && t[0].is(termIdent) && t[0].text == "SyntaxElement" && t[1].is(termStar):
		g.bogus[r.name] = true
		g.order = append(g.order, decl{declBogus, r.name})
	case len(t) == 2 && t[0].is(termIdent) && t[1].is(termStar):
		g.lists[r.name] = List{Element: t[0].text}
		g.order = append(g.order, decl{declList, r.name})
	case isSeparatedList(t):
		g.lists[r.name] = List{Element: t[0].text, Separator: t[2].text, Trailing: len(t) == 8}
		g.order = append(g.order, decl{declList, r.name})
	case isUnion(t):
		var members []string
		for _, x := range t {
			if x.is(termIdent) {
				members = append(members, x.text)
			}
		}
		g.unions[r.name] = members
		g.order = append(g.order, decl{declUnion, r.name})
	default:
		slots, err := parseSlots(r)
		if err != nil {
			return err
		}
		g.nodes[r.name] = slots
		g.order = append(g.order, decl{declNode, r.name})
	}
	return nil
}

// isSeparatedList matches `T (',' T)*` with an optional `','?` tail.
func isSeparatedList(t []term) bool {
	if len(t) != 6 && len(t) != 8 {
		return false
	}
	head := t[0].is(termIdent) && t[1].is(termLParen) && t[2].is(termToken) &&
		t[3] == t[0] && t[4].is(termRParen) && t[5].is(termStar)
	if !head || len(t) == 6 {
		return head
	}
	return t[6] == t[2] && t[7].is(termQuestion)
}

func isUnion(t []term) bool {
	pipe := false
	for _, x := range t {
		switch {
		case x.is(termPipe):
			pipe = true
		case !x.is(termIdent):
			return false
		}
	}
	return pipe
}

func parseSlots(r rule) ([]Slot, error) {
	t := r.terms
	var slots []Slot
	for i := 0; i < len(t); {
		label := ""
		if t[i].is(termIdent) && i+1 < len(t) && t[i+1].is(termColon) {
			label = t[i].text
			i += 2
			if i >= len(t) {
				return nil, &SchemaError{Line: r.line, Msg: "label without a type"}
			}
		}
		var s Slot
		switch x := t[i]; {
		case x.is(termToken):
			s = Slot{Kind: SlotToken, Types: []string{x.text}}
			i++
		case x.is(termLParen):
			s = Slot{Kind: SlotToken}
			j := i + 1
			for ; j < len(t) && !t[j].is(termRParen); j++ {
				if t[j].is(termToken) {
					s.Types = append(s.Types, t[j].text)
				}
			}
			if j == len(t) || len(s.Types) == 0 {
				return nil, &SchemaError{Line: r.line, Msg: "bad token alternatives"}
			}
			i = j + 1
		case x.is(termIdent):
			s = Slot{Kind: SlotNode, Types: []string{x.text}}
			i++
		default:
			return nil, &SchemaError{Line: r.line, Msg: fmt.Sprintf("unexpected %q in %s", x.text, r.name)}
		}
		if i < len(t) && t[i].is(termQuestion) {
			s.Optional = true
			i++
		}
		if label == "" {
			if s.Kind == SlotToken {
				label = tokenSnake(s.Types[0]) + "_token"
			} else {
				label = snake(s.Types[0])
			}
		}
		s.Name = label
		slots = append(slots, s)
	}
	return slots, nil
}

// check verifies that every referenced name and token exists and that slot
// names are unique within a node.
func (g *Grammar) check() error {
	known := func(name string) bool {
		_, n := g.nodes[name]
		_, u := g.unions[name]
		_, l := g.lists[name]
		return n || u || l || g.bogus[name]
	}
	for _, d := range g.order {
		switch d.kind {
		case declNode:
			seen := make(map[string]bool)
			for _, s := range g.nodes[d.name] {
				if seen[s.Name] {
					return fmt.Errorf("%s: duplicate slot %q", d.name, s.Name)
				}
				seen[s.Name] = true
				for _, ty := range s.Types {
					if s.Kind == SlotToken {
						if _, err := tokenConst(ty); err != nil {
							return fmt.Errorf("%s.%s: %w", d.name, s.Name, err)
						}
					} else if !known(ty) {
						return fmt.Errorf("%s.%s: unknown type %q", d.name, s.Name, ty)
					}
				}
			}
		case declUnion:
			for _, m := range g.unions[d.name] {
				if !known(m) {
					return fmt.Errorf("%s: unknown member %q", d.name, m)
				}
				if _, isList := g.lists[m]; isList {
					return fmt.Errorf("%s: list %q cannot be a union member", d.name, m)
				}
			}
		case declList:
			l := g.lists[d.name]
			if !known(l.Element) {
				return fmt.Errorf("%s: unknown element %q", d.name, l.Element)
			}
			if l.Separator != "" {
				if _, err := tokenConst(l.Separator); err != nil {
					return fmt.Errorf("%s: %w", d.name, err)
				}
			}
		}
	}
	return nil
}

// closure returns the concrete members of a union in declaration order.
func (g *Grammar) closure(union string) []string {
	var out []string
	for _, m := range g.unions[union] {
		if _, ok := g.unions[m]; ok {
			for _, x := range g.closure(m) {
				if !slices.Contains(out, x) {
					out = append(out, x)
				}
			}
			continue
		}
		if !slices.Contains(out, m) {
			out = append(out, m)
		}
	}
	return out
}

func (g *Grammar) unionNames() []string {
	return lo.FilterMap(g.order, func(d decl, _ int) (string, bool) {
		return d.name, d.kind == declUnion
	})
}

// unionsOf returns every union whose closure contains name.
func (g *Grammar) unionsOf(name string) []string {
	return lo.Filter(g.unionNames(), func(u string, _ int) bool {
		return slices.Contains(g.closure(u), name)
	})
}

// bogusOf finds the bogus member of the nearest union containing name,
// walking outwards one union level at a time.
func (g *Grammar) bogusOf(name string) string {
	frontier := []string{name}
	seen := make(map[string]bool)
	for len(frontier) > 0 {
		var next []string
		for _, x := range frontier {
			for _, u := range g.unionNames() {
				if seen[u] || !slices.Contains(g.unions[u], x) {
					continue
				}
				seen[u] = true
				for _, m := range g.unions[u] {
					if g.bogus[m] {
						return m
					}
				}
				next = append(next, u)
			}
		}
		frontier = next
	}
	return "Bogus"
}

func (g *Grammar) isUnion(name string) bool {
	_, ok := g.unions[name]
	return ok
}

func (g *Grammar) isList(name string) bool {
	_, ok := g.lists[name]
	return ok
}

// Stats counts declarations by family.
func (g *Grammar) Stats() (nodes, unions, lists, bogus int) {
	return len(g.nodes), len(g.unions), len(g.lists), len(g.bogus)
}

// ---------------------------------------------------------------- naming

type tokenName struct {
	suffix string // Kind<suffix>
	snake  string
}

var punctTokens = map[string]tokenName{
	"(": {"LParen", "l_paren"}, ")": {"RParen", "r_paren"},
	"{": {"LCurly", "l_curly"}, "}": {"RCurly", "r_curly"},
	"[": {"LBrack", "l_brack"}, "]": {"RBrack", "r_brack"},
	";": {"Semicolon", "semicolon"}, ",": {"Comma", "comma"},
	".": {"Period", "dot"}, "...": {"Dot3", "dotdotdot"}, ":": {"Colon", "colon"},
	"=": {"Eq", "eq"}, "==": {"Eq2", "equality"}, "=>": {"FatArrow", "fat_arrow"},
	"!": {"Bang", "excl"}, "!=": {"Neq", "inequality"},
	"<": {"LAngle", "l_angle"}, ">": {"RAngle", "r_angle"},
	"<=": {"LtEq", "less_than_equal"}, ">=": {"GtEq", "greater_than_equal"},
	"<:": {"Match", "match"},
	"+": {"Plus", "plus"}, "+=": {"PlusEq", "add_assign"}, "-": {"Minus", "minus"},
	"*": {"Star", "star"}, "/": {"Slash", "slash"}, "%": {"Percent", "percent"},
	"$_": {"DollarUnderscore", "dollar_underscore"},
}

var literalTokens = map[string]string{
	"EOF":                       "EOF",
	"grit_int":                  "Int",
	"grit_negative_int":         "NegativeInt",
	"grit_double":               "Double",
	"grit_string":               "String",
	"grit_regex":                "Regex",
	"grit_snippet_regex":        "SnippetRegex",
	"grit_backtick_snippet":     "BacktickSnippet",
	"grit_raw_backtick_snippet": "RawBacktickSnippet",
	"ident":                     "Ident",
	"dollar_ident":              "DollarIdent",
	"at_ident":                  "AtIdent",
}

var keywordRe = regexp.MustCompile(`^[a-z_]+$`)

func tokenConst(tok string) (string, error) {
	if p, ok := punctTokens[tok]; ok {
		return "Kind" + p.suffix, nil
	}
	if l, ok := literalTokens[tok]; ok {
		return "Kind" + l, nil
	}
	if keywordRe.MatchString(tok) {
		return "Kind" + camel(tok) + "Kw", nil
	}
	return "", fmt.Errorf("unknown token %q", tok)
}

func mustTokenConst(tok string) string {
	c, err := tokenConst(tok)
	if err != nil {
		panic(err) // check() уже отсеял неизвестные токены
	}
	return c
}

func tokenSnake(tok string) string {
	if p, ok := punctTokens[tok]; ok {
		return p.snake
	}
	if _, ok := literalTokens[tok]; ok {
		return strings.ToLower(tok)
	}
	return tok
}

func camel(s string) string {
	var b strings.Builder
	for _, p := range strings.Split(s, "_") {
		if p == "" {
			continue
		}
		b.WriteString(strings.ToUpper(p[:1]))
		b.WriteString(p[1:])
	}
	return b.String()
}

func snake(name string) string {
	var b strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c >= 'A' && c <= 'Z' {
			if i > 0 && (name[i-1] >= 'a' && name[i-1] <= 'z' || name[i-1] >= '0' && name[i-1] <= '9') {
				b.WriteByte('_')
			}
			b.WriteByte(c + 'a' - 'A')
			continue
		}
		b.WriteByte(c)
	}
	return b.String()
}

func regName(name string) string {
	return "GRIT_" + strings.ToUpper(snake(name))
}

var goKeywords = map[string]bool{
	"break": true, "case": true, "chan": true, "const": true, "continue": true,
	"default": true, "defer": true, "else": true, "fallthrough": true, "for": true,
	"func": true, "go": true, "goto": true, "if": true, "import": true,
	"interface": true, "map": true, "package": true, "range": true, "return": true,
	"select": true, "struct": true, "switch": true, "type": true, "var": true,
}

func paramName(label string) string {
	c := camel(label)
	p := strings.ToLower(c[:1]) + c[1:]
	if goKeywords[p] {
		return p + "Arg"
	}
	return p
}
