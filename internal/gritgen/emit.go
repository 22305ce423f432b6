package gritgen

import (
	"bytes"
	"fmt"
	"go/format"
	"strings"
)

const (
	header       = "// Code generated by gritgen from grit.ungram. DO NOT EDIT.\n\npackage grit\n\n"
	importSyntax = "import \"github.com/biomejs/biome-sub001/internal/syntax\"\n\n"
	importBoth   = "import (\n\t\"github.com/biomejs/biome-sub001/internal/ast\"\n\t\"github.com/biomejs/biome-sub001/internal/syntax\"\n)\n\n"
	fileKinds    = "kinds_gen.go"
	fileRegistry = "registry_gen.go"
	fileNodes    = "nodes_gen.go"
	fileUnions   = "unions_gen.go"
	fileLists    = "lists_gen.go"
	fileFactory  = "factory_gen.go"
)

type writer struct {
	bytes.Buffer
}

func (w *writer) p(format string, args ...any) {
	fmt.Fprintf(w, format, args...)
}

// Generate renders every output file. Sources are gofmt'ed.
func (g *Grammar) Generate() (map[string][]byte, error) {
	raw := map[string]string{
		fileKinds:    g.emitKinds(),
		fileRegistry: g.emitRegistry(),
		fileNodes:    g.emitNodes(),
		fileUnions:   g.emitUnions(),
		fileLists:    g.emitLists(),
		fileFactory:  g.emitFactory(),
	}
	out := make(map[string][]byte, len(raw))
	for name, src := range raw {
		formatted, err := format.Source([]byte(src))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = formatted
	}
	return out, nil
}

func (g *Grammar) emitKinds() string {
	var w writer
	w.p("%s%s", header, importSyntax)
	w.p("// Node kinds.\nconst (\n")
	first := true
	for _, d := range g.order {
		if d.kind == declUnion {
			continue
		}
		if first {
			w.p("\tKind%s syntax.Kind = firstNodeKind + iota\n", d.name)
			first = false
			continue
		}
		w.p("\tKind%s\n", d.name)
	}
	w.p("\n\tkindCount\n)\n")
	return w.String()
}

func (g *Grammar) kindSetExpr(types []string) string {
	var concrete, unions []string
	for _, t := range types {
		if g.isUnion(t) {
			unions = append(unions, t)
		} else {
			concrete = append(concrete, t)
		}
	}
	var expr string
	if len(concrete) > 0 || len(unions) == 0 {
		expr = fmt.Sprintf("syntax.KindSetOf(%s)", joinPrefixed("Kind", concrete))
	} else {
		expr = unions[0] + "Kinds"
		unions = unions[1:]
	}
	for _, u := range unions {
		expr += fmt.Sprintf(".Union(%sKinds)", u)
	}
	return expr
}

func (g *Grammar) slotAccepts(s Slot) string {
	if s.Kind == SlotToken {
		consts := make([]string, len(s.Types))
		for i, t := range s.Types {
			consts[i] = mustTokenConst(t)
		}
		return fmt.Sprintf("syntax.KindSetOf(%s)", strings.Join(consts, ", "))
	}
	if g.isUnion(s.Types[0]) {
		return s.Types[0] + "Kinds"
	}
	return fmt.Sprintf("syntax.KindSetOf(Kind%s)", s.Types[0])
}

func (g *Grammar) emitRegistry() string {
	var w writer
	w.p("%s%s", header, importSyntax)
	w.p("func nodeInfos() []syntax.KindInfo {\n\treturn []syntax.KindInfo{\n")
	for _, d := range g.order {
		n := d.name
		switch d.kind {
		case declNode:
			w.p("\t\t{Kind: Kind%s, Name: %q, Family: syntax.FamilyNode, Bogus: Kind%s, Slots: []syntax.SlotInfo{\n", n, regName(n), g.bogusOf(n))
			for _, s := range g.nodes[n] {
				req := ", Required: true"
				if s.Optional {
					req = ""
				}
				w.p("\t\t\t{Name: %q%s, Accepts: %s},\n", s.Name, req, g.slotAccepts(s))
			}
			w.p("\t\t}},\n")
		case declList:
			l := g.lists[n]
			acc := fmt.Sprintf("syntax.KindSetOf(Kind%s)", l.Element)
			if g.isUnion(l.Element) {
				acc = l.Element + "Kinds"
			}
			if l.Separator != "" {
				w.p("\t\t{Kind: Kind%s, Name: %q, Family: syntax.FamilyList, Bogus: KindBogus, List: syntax.ListInfo{Element: %s, Separator: %s, AllowTrailing: %t}},\n",
					n, regName(n), acc, mustTokenConst(l.Separator), l.Trailing)
			} else {
				w.p("\t\t{Kind: Kind%s, Name: %q, Family: syntax.FamilyList, Bogus: KindBogus, List: syntax.ListInfo{Element: %s}},\n", n, regName(n), acc)
			}
		case declBogus:
			w.p("\t\t{Kind: Kind%s, Name: %q, Family: syntax.FamilyBogus, Bogus: Kind%s},\n", n, regName(n), n)
		}
	}
	w.p("\t}\n}\n")
	return w.String()
}

func (g *Grammar) emitCast(w *writer, n string) {
	w.p("// Cast%s wraps n when it is a %s.\n", n, regName(n))
	w.p("func Cast%[1]s(n *syntax.Node) (%[1]s, bool) {\n\tif n != nil && n.Kind() == Kind%[1]s {\n\t\treturn %[1]s{n}, true\n\t}\n\treturn %[1]s{}, false\n}\n\n", n)
	w.p("func (n %s) Syntax() *syntax.Node { return n.syntax }\n\n", n)
}

func (g *Grammar) fieldType(s Slot) string {
	switch {
	case s.Kind == SlotToken && s.Optional:
		return "*syntax.Token"
	case s.Kind == SlotToken:
		return "ast.SlotResult[*syntax.Token]"
	case g.isList(s.Types[0]):
		return s.Types[0]
	case s.Optional:
		return fmt.Sprintf("ast.Optional[%s]", s.Types[0])
	}
	return fmt.Sprintf("ast.SlotResult[%s]", s.Types[0])
}

func (g *Grammar) fieldValue(s Slot) string {
	m := camel(s.Name)
	switch {
	case s.Kind == SlotToken && s.Optional, s.Kind == SlotNode && g.isList(s.Types[0]):
		return fmt.Sprintf("n.%s()", m)
	case s.Optional:
		return fmt.Sprintf("ast.OptionalOf(n.%s())", m)
	}
	return fmt.Sprintf("ast.ResultOf(n.%s())", m)
}

func (g *Grammar) emitNode(w *writer, n string) {
	slots := g.nodes[n]
	w.p("// %s is a %s node.\ntype %s struct{ syntax *syntax.Node }\n\n", n, regName(n), n)
	g.emitCast(w, n)

	for i, s := range slots {
		m := camel(s.Name)
		t := s.Types[0]
		switch {
		case s.Kind == SlotToken && s.Optional:
			w.p("func (n %s) %s() *syntax.Token { return ast.OptionalToken(n.syntax, %d) }\n\n", n, m, i)
		case s.Kind == SlotToken:
			w.p("func (n %s) %s() (*syntax.Token, error) {\n\treturn ast.RequiredToken(n.syntax, %d, %q)\n}\n\n", n, m, i, s.Name)
		case g.isList(t):
			w.p("func (n %s) %s() %s { return new%s(n.syntax.SlotNode(%d)) }\n\n", n, m, t, t, i)
		case s.Optional:
			w.p("func (n %s) %s() (%s, bool) {\n\treturn ast.OptionalNode(n.syntax, %d, Cast%s)\n}\n\n", n, m, t, i, t)
		default:
			w.p("func (n %s) %s() (%s, error) {\n\treturn ast.RequiredNode(n.syntax, %d, %q, Cast%s)\n}\n\n", n, m, t, i, s.Name, t)
		}
	}

	w.p("// %[1]sFields holds the result of every accessor of %[1]s.\ntype %[1]sFields struct {\n", n)
	for _, s := range slots {
		w.p("\t%s %s\n", camel(s.Name), g.fieldType(s))
	}
	w.p("}\n\n")
	w.p("func (n %[1]s) AsFields() %[1]sFields {\n\treturn %[1]sFields{\n", n)
	for _, s := range slots {
		w.p("\t\t%s: %s,\n", camel(s.Name), g.fieldValue(s))
	}
	w.p("\t}\n}\n\n")

	w.p("func (n %s) Slots() []ast.Slot {\n\treturn []ast.Slot{\n", n)
	for i, s := range slots {
		w.p("\t\tast.RawSlot(n.syntax, %d, %q, %t, Wrap),\n", i, s.Name, !s.Optional)
	}
	w.p("\t}\n}\n\n")
}

func (g *Grammar) emitBogus(w *writer, n string) {
	w.p("// %s is a %s node. It keeps the children of a construct the\n// parser could not recognize.\n", n, regName(n))
	w.p("type %s struct{ syntax *syntax.Node }\n\n", n)
	g.emitCast(w, n)
	w.p("// Items returns the raw children.\nfunc (n %s) Items() ast.Items { return ast.BogusItems(n.syntax, Wrap) }\n\n", n)
	w.p("func (n %s) Slots() []ast.Slot {\n\treturn []ast.Slot{{Name: \"items\", Value: n.Items()}}\n}\n\n", n)
}

func (g *Grammar) emitMarkers(w *writer, n string) {
	us := g.unionsOf(n)
	for _, u := range us {
		w.p("func (%s) is%s() {}\n", n, u)
	}
	if len(us) > 0 {
		w.p("\n")
	}
}

func (g *Grammar) emitNodes() string {
	var w writer
	w.p("%s%s", header, importBoth)
	for _, d := range g.order {
		switch d.kind {
		case declNode:
			g.emitNode(&w, d.name)
			g.emitMarkers(&w, d.name)
		case declBogus:
			g.emitBogus(&w, d.name)
			g.emitMarkers(&w, d.name)
		}
	}
	return w.String()
}

func (g *Grammar) emitUnions() string {
	var w writer
	w.p("%s%s", header, importBoth)
	for _, u := range g.unionNames() {
		members := g.unions[u]
		w.p("// %s is one of: %s.\n", u, strings.Join(members, ", "))
		w.p("type %[1]s interface {\n\tast.Composite\n\tis%[1]s()\n}\n\n", u)
		w.p("// %[1]sKinds holds every kind that casts to %[1]s.\n", u)
		w.p("var %sKinds = %s\n\n", u, g.kindSetExpr(members))
		w.p("// CanCast%[1]s reports whether a node of kind k casts to %[1]s.\n", u)
		w.p("func CanCast%[1]s(k syntax.Kind) bool { return %[1]sKinds.Contains(k) }\n\n", u)
		w.p("// Cast%s tries the concrete members in declaration order, then the nested unions.\n", u)
		w.p("func Cast%[1]s(n *syntax.Node) (%[1]s, bool) {\n\tif n == nil {\n\t\treturn nil, false\n\t}\n", u)
		var concrete, nested []string
		for _, m := range members {
			if g.isUnion(m) {
				nested = append(nested, m)
			} else {
				concrete = append(concrete, m)
			}
		}
		if len(concrete) > 0 {
			w.p("\tswitch n.Kind() {\n")
			for _, m := range concrete {
				w.p("\tcase Kind%[1]s:\n\t\treturn %[1]s{n}, true\n", m)
			}
			w.p("\t}\n")
		}
		for _, m := range nested {
			w.p("\tif v, ok := Cast%s(n); ok {\n\t\treturn v.(%s), true\n\t}\n", m, u)
		}
		w.p("\treturn nil, false\n}\n\n")
	}
	return w.String()
}

func (g *Grammar) emitLists() string {
	var w writer
	w.p("%s%s", header, importBoth)
	for _, d := range g.order {
		if d.kind != declList {
			continue
		}
		n, l := d.name, g.lists[d.name]
		var ctor string
		if l.Separator != "" {
			w.p("// %s is a '%s'-separated list of %s.\ntype %s = ast.SeparatedList[%s]\n\n", n, l.Separator, l.Element, n, l.Element)
			ctor = fmt.Sprintf("ast.NewSeparatedList(n, Cast%s)", l.Element)
		} else {
			w.p("// %s is a list of %s.\ntype %s = ast.List[%s]\n\n", n, l.Element, n, l.Element)
			ctor = fmt.Sprintf("ast.NewList(n, Cast%s)", l.Element)
		}
		w.p("func new%[1]s(n *syntax.Node) %[1]s { return %[2]s }\n\n", n, ctor)
		w.p("// Cast%s wraps n when it is a %s.\n", n, regName(n))
		w.p("func Cast%[1]s(n *syntax.Node) (%[1]s, bool) {\n\tif n != nil && n.Kind() == Kind%[1]s {\n\t\treturn new%[1]s(n), true\n\t}\n\treturn %[1]s{}, false\n}\n\n", n)
	}

	w.p("// Wrap returns the typed wrapper matching the kind of n.\n")
	w.p("func Wrap(n *syntax.Node) ast.Node {\n\tswitch n.Kind() {\n")
	for _, d := range g.order {
		switch d.kind {
		case declNode, declBogus:
			w.p("\tcase Kind%[1]s:\n\t\treturn %[1]s{n}\n", d.name)
		case declList:
			w.p("\tcase Kind%[1]s:\n\t\treturn new%[1]s(n)\n", d.name)
		}
	}
	w.p("\t}\n\treturn Bogus{n}\n}\n")
	return w.String()
}

func (g *Grammar) emitFactory() string {
	var w writer
	w.p("%s%s", header, importSyntax)
	for _, d := range g.order {
		n := d.name
		switch d.kind {
		case declNode:
			slots := g.nodes[n]
			params := make([]string, len(slots))
			args := make([]string, len(slots))
			optional := false
			for i, s := range slots {
				t := "*syntax.GreenNode"
				if s.Kind == SlotToken {
					t = "*syntax.GreenToken"
				}
				params[i] = paramName(s.Name) + " " + t
				args[i] = paramName(s.Name)
				optional = optional || s.Optional
			}
			if optional {
				w.p("// %s builds a %s node. Optional slots accept nil.\n", n, regName(n))
			} else {
				w.p("// %s builds a %s node.\n", n, regName(n))
			}
			w.p("func (f Factory) %s(%s) *syntax.GreenNode {\n", n, strings.Join(params, ", "))
			w.p("\treturn f.node(Kind%s, %s)\n}\n\n", n, strings.Join(args, ", "))
		case declList:
			if g.lists[n].Separator != "" {
				w.p("// %s builds a separated list. separators has one entry per gap and one more\n// for a trailing separator.\n", n)
				w.p("func (f Factory) %s(items []*syntax.GreenNode, separators []*syntax.GreenToken) *syntax.GreenNode {\n", n)
				w.p("\treturn f.separatedList(Kind%s, items, separators)\n}\n\n", n)
			} else {
				w.p("// %s builds a list.\n", n)
				w.p("func (f Factory) %s(items ...*syntax.GreenNode) *syntax.GreenNode {\n", n)
				w.p("\treturn f.list(Kind%s, items)\n}\n\n", n)
			}
		case declBogus:
			w.p("// %s builds a %s node from raw children.\n", n, regName(n))
			w.p("func (f Factory) %s(children ...syntax.GreenElement) *syntax.GreenNode {\n", n)
			w.p("\treturn f.Cache.Node(Kind%s, children)\n}\n\n", n)
		}
	}
	return w.String()
}

func joinPrefixed(prefix string, names []string) string {
	out := make([]string, len(names))
	for i, n := range names {
		out[i] = prefix + n
	}
	return strings.Join(out, ", ")
}
