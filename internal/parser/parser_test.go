package parser

import (
	"slices"
	"strings"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

func TestPatternShapes(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"precedence", "$a + $b * $c",
			"(ADD_OPERATION (VARIABLE) (MUL_OPERATION (VARIABLE) (VARIABLE)))"},
		{"left assoc", "$a - $b - $c",
			"(SUB_OPERATION (SUB_OPERATION (VARIABLE) (VARIABLE)) (VARIABLE))"},
		{"rewrite where", "`a` => `b` where { $x <: `c` }",
			"(PATTERN_WHERE (REWRITE (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL)) (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL))) " +
				"(PREDICATE_AND (PREDICATE_LIST (PREDICATE_MATCH (VARIABLE) (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL))))))"},
		{"rewrite annotation", "$a @suggest => $b",
			"(REWRITE (VARIABLE) (ANNOTATION) (VARIABLE))"},
		{"accessors and as", "$x.y[0] as $z",
			"(PATTERN_AS (LIST_ACCESSOR (MAP_ACCESSOR (VARIABLE) (NAME)) (INT_LITERAL)) (VARIABLE))"},
		{"assignment", "$x = foo(a = 1, $y)",
			"(ASSIGNMENT_AS_PATTERN (VARIABLE) (NODE_LIKE (NAME) (NAMED_ARG_LIST (NAMED_ARG (NAME) (INT_LITERAL)) (VARIABLE))))"},
		{"accumulate", "$a += [1]",
			"(PATTERN_ACCUMULATE (VARIABLE) (LIST (LIST_PATTERN_LIST (INT_LITERAL))))"},
		{"not", "not $a", "(PATTERN_NOT (NOT) (VARIABLE))"},
		{"bang", "!$a", "(PATTERN_NOT (NOT) (VARIABLE))"},
		{"bubble scope", "bubble($a) $a => .",
			"(BUBBLE (BUBBLE_SCOPE (VARIABLE_LIST (VARIABLE))) (REWRITE (VARIABLE) (DOT)))"},
		{"language snippet", `js"foo"`,
			"(CODE_SNIPPET (LANGUAGE_SPECIFIC_SNIPPET (LANGUAGE_NAME)))"},
		{"list rest", "[1, ...$rest]",
			"(LIST (LIST_PATTERN_LIST (INT_LITERAL) (DOTDOTDOT (VARIABLE))))"},
		{"limit", "$x limit 10", "(PATTERN_LIMIT (VARIABLE) (INT_LITERAL))"},
		{"regex", `r"a(.+)"($x)`,
			"(REGEX_PATTERN (REGEX_LITERAL) (REGEX_PATTERN_VARIABLES (PATTERN_ARG_LIST (VARIABLE))))"},
		{"if else", "if ($a <: 1) $b else $c",
			"(PATTERN_IF_ELSE (PREDICATE_MATCH (VARIABLE) (INT_LITERAL)) (VARIABLE) (PATTERN_ELSE_CLAUSE (VARIABLE)))"},
		{"map with keyword key", "{a: 1, function: $f}",
			"(MAP (MAP_ELEMENT_LIST (MAP_ELEMENT (NAME) (INT_LITERAL)) (MAP_ELEMENT (NAME) (VARIABLE))))"},
		{"or block", "or { $a, `b` }",
			"(PATTERN_OR (PATTERN_LIST (VARIABLE) (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL))))"},
		{"contains until", "contains $a until $b",
			"(PATTERN_CONTAINS (VARIABLE) (PATTERN_UNTIL_CLAUSE (VARIABLE)))"},
		{"maybe curly", "maybe { $a }", "(PATTERN_MAYBE (CURLY_PATTERN (VARIABLE)))"},
		{"bracketed", "($a)", "(BRACKETED_PATTERN (VARIABLE))"},
		{"sequential", "sequential { $a }", "(SEQUENTIAL (PATTERN_LIST (VARIABLE)))"},
		{"like", "like(0.9) { `a` }",
			"(LIKE (LIKE_THRESHOLD (DOUBLE_LITERAL)) (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL)))"},
		{"literals", "[true, undefined, -1, 2.5, \"s\", $_]",
			"(LIST (LIST_PATTERN_LIST (BOOLEAN_LITERAL) (UNDEFINED_LITERAL) (NEGATIVE_INT_LITERAL) (DOUBLE_LITERAL) (STRING_LITERAL) (UNDERSCORE)))"},
		{"named list", "stmts[$a]", "(LIST (NAME) (LIST_PATTERN_LIST (VARIABLE)))"},
		{"keyword arg name", "call(function = $f)",
			"(NODE_LIKE (NAME) (NAMED_ARG_LIST (NAMED_ARG (NAME) (VARIABLE))))"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := mustParse(t, tt.src)
			if got := shape(firstDefinition(t, res)); got != tt.want {
				t.Fatalf("shape(%q)\n got %s\nwant %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestPredicateShapes(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"$a where $a <: 1", "(PREDICATE_MATCH (VARIABLE) (INT_LITERAL))"},
		{"$a where $a = 1", "(PREDICATE_ASSIGNMENT (VARIABLE) (INT_LITERAL))"},
		{"$a where $a += 1", "(PREDICATE_ACCUMULATE (VARIABLE) (INT_LITERAL))"},
		{"$a where $a > 1", "(PREDICATE_GREATER (VARIABLE) (INT_LITERAL))"},
		{"$a where $a <= 1", "(PREDICATE_LESS_EQUAL (VARIABLE) (INT_LITERAL))"},
		{"$a where $a != 1", "(PREDICATE_NOT_EQUAL (VARIABLE) (INT_LITERAL))"},
		{"$a where $a == 1", "(PREDICATE_EQUAL (VARIABLE) (INT_LITERAL))"},
		{"$a where $a => `b`", "(PREDICATE_REWRITE (VARIABLE) (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL)))"},
		{"$a where not $a <: 1", "(PREDICATE_NOT (NOT) (PREDICATE_MATCH (VARIABLE) (INT_LITERAL)))"},
		{"$a where or { true, false }", "(PREDICATE_OR (PREDICATE_LIST (BOOLEAN_LITERAL) (BOOLEAN_LITERAL)))"},
		{"$a where and { $a <: 1 }", "(PREDICATE_AND (PREDICATE_LIST (PREDICATE_MATCH (VARIABLE) (INT_LITERAL))))"},
		{"$a where check($a)", "(PREDICATE_CALL (NAME) (NAMED_ARG_LIST (VARIABLE)))"},
		{"$a where `x` <: $a", "(PREDICATE_MATCH (CODE_SNIPPET (BACKTICK_SNIPPET_LITERAL)) (VARIABLE))"},
		{"$a where if ($a <: 1) true else false",
			"(PREDICATE_IF_ELSE (PREDICATE_MATCH (VARIABLE) (INT_LITERAL)) (BOOLEAN_LITERAL) (PREDICATE_ELSE_CLAUSE (BOOLEAN_LITERAL)))"},
		{"$a where ($a <: 1)", "(BRACKETED_PREDICATE (PREDICATE_MATCH (VARIABLE) (INT_LITERAL)))"},
		{"$a where maybe $a <: 1", "(PREDICATE_MAYBE (PREDICATE_MATCH (VARIABLE) (INT_LITERAL)))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			res := mustParse(t, tt.src)
			where := firstDefinition(t, res)
			if where.Kind() != grit.KindPatternWhere {
				t.Fatalf("top = %s, want PATTERN_WHERE", where.KindName())
			}
			if got := shape(where.SlotNode(2)); got != tt.want {
				t.Fatalf("predicate of %q\n got %s\nwant %s", tt.src, got, tt.want)
			}
		})
	}
}

func TestDefinitions(t *testing.T) {
	src := "engine biome(1.0)\nlanguage js(typescript, jsx);\n\n" +
		"pattern swap($a, $b) { $a => $b }\n" +
		"private predicate small($x) { $x < 10 }\n" +
		"function twice($x) { return $x }\n" +
		"swap($a = `a`, $b = `b`)\n"
	res := mustParse(t, src)

	version, ok := res.Root.Version()
	if !ok || version.Syntax().Kind() != grit.KindVersion {
		t.Fatalf("version = %v, %v", version, ok)
	}
	lang, ok := res.Root.Language()
	if !ok || lang.Syntax().Kind() != grit.KindLanguageDeclaration {
		t.Fatalf("language = %v, %v", lang, ok)
	}
	flavor := lang.Syntax().SlotNode(2)
	if flavor == nil || flavor.Kind() != grit.KindLanguageFlavor {
		t.Fatalf("flavor slot = %v", flavor)
	}

	var kinds []string
	for _, def := range res.Root.Definitions().Items() {
		kinds = append(kinds, strings.TrimPrefix(def.Syntax().KindName(), "GRIT_"))
	}
	want := []string{"PATTERN_DEFINITION", "PREDICATE_DEFINITION", "FUNCTION_DEFINITION", "NODE_LIKE"}
	if !slices.Equal(kinds, want) {
		t.Fatalf("definitions = %v, want %v", kinds, want)
	}

	def, _ := res.Root.Definitions().First()
	got := shape(def.Syntax())
	wantShape := "(PATTERN_DEFINITION (NAME) (PATTERN_ARG_LIST (VARIABLE) (VARIABLE)) " +
		"(PATTERN_DEFINITION_BODY (PATTERN_LIST (REWRITE (VARIABLE) (VARIABLE)))))"
	if got != wantShape {
		t.Fatalf("pattern definition\n got %s\nwant %s", got, wantShape)
	}
	pred := res.Root.Definitions().At(1).Value.Syntax()
	if pred.SlotToken(0) == nil || pred.SlotToken(0).Kind() != grit.KindPrivateKw {
		t.Fatalf("predicate visibility slot = %v", pred.Slot(0))
	}
}

func TestKeywordKeyBecomesIdent(t *testing.T) {
	res := mustParse(t, "{function: 1}")
	var names []*syntax.Token
	for tok := range res.Syntax().Tokens() {
		if tok.Text() == "function" {
			names = append(names, tok)
		}
	}
	if len(names) != 1 || names[0].Kind() != grit.KindIdent {
		t.Fatalf("keyword key tokens = %v", names)
	}
}

func TestBogusNamedArg(t *testing.T) {
	res, bag := parseSource(t, "foo(1,,2)", Options{})
	if !slices.Equal(codesOf(bag), []diag.Code{diag.SynMissingListItem}) {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	def, _ := res.Root.Definitions().First()
	call, ok := def.(grit.NodeLike)
	if !ok {
		t.Fatalf("definition is %T, want NodeLike", def)
	}
	args := call.NamedArgs()
	if args.Len() != 3 {
		t.Fatalf("args.Len() = %d, want 3", args.Len())
	}
	var kinds []syntax.Kind
	for _, r := range args.All() {
		if !r.Ok() {
			t.Fatalf("arg error: %v", r.Err)
		}
		kinds = append(kinds, r.Value.Syntax().Kind())
	}
	want := []syntax.Kind{grit.KindIntLiteral, grit.KindBogusNamedArg, grit.KindIntLiteral}
	if !slices.Equal(kinds, want) {
		t.Fatalf("arg kinds = %v, want %v", kinds, want)
	}
	if _, ok := args.At(1).Value.(grit.BogusNamedArg); !ok {
		t.Fatalf("middle arg is %T", args.At(1).Value)
	}
	if len(args.Separators()) != 2 {
		t.Fatalf("separators = %d", len(args.Separators()))
	}
}

func TestListTrailingSeparator(t *testing.T) {
	res := mustParse(t, "[1, 2, 3,]")
	def, _ := res.Root.Definitions().First()
	list, ok := def.(grit.List)
	if !ok {
		t.Fatalf("definition is %T, want List", def)
	}
	items := list.Patterns()
	if items.Len() != 3 {
		t.Fatalf("Len = %d, want 3", items.Len())
	}
	if n := len(items.Separators()); n != 3 {
		t.Fatalf("separators = %d, want 3", n)
	}
	if items.TrailingSeparator() == nil {
		t.Fatal("trailing separator missing")
	}
	if n := items.Syntax().SlotCount(); n != 7 {
		t.Fatalf("slot count = %d, want 7", n)
	}
}

func TestBOMAndShebang(t *testing.T) {
	src := "\uFEFF#!/usr/bin/env grit\n`a` => `b`\n"
	res := mustParse(t, src)
	first := res.Syntax().FirstToken()
	if first == nil || first.Text() != "`a`" {
		t.Fatalf("first token = %v", first)
	}
	var kinds []syntax.TriviaKind
	for _, tr := range first.Leading() {
		kinds = append(kinds, tr.Kind)
	}
	want := []syntax.TriviaKind{syntax.TriviaBOM, syntax.TriviaShebang, syntax.TriviaNewline}
	if !slices.Equal(kinds, want) {
		t.Fatalf("leading trivia = %v, want %v", kinds, want)
	}
	if first.Leading()[1].Text != "#!/usr/bin/env grit" {
		t.Fatalf("shebang = %q", first.Leading()[1].Text)
	}
	last := res.Syntax().LastToken()
	if last.Kind() != grit.KindEOF || len(last.Leading()) != 1 || last.Leading()[0].Kind != syntax.TriviaNewline {
		t.Fatalf("eof = %s leading %v", last.KindName(), last.Leading())
	}
}

func TestCommentBytesKept(t *testing.T) {
	for _, src := range []string{"/* \xff */ `a`", "// \xfe\xff\n`a`", "`a` /* \xc3"} {
		res, _ := parseSource(t, src, Options{})
		var found bool
		for tok := range res.Syntax().Tokens() {
			for _, tr := range slices.Concat(tok.Leading(), tok.Trailing()) {
				if tr.IsComment() && strings.Contains(src, tr.Text) {
					found = true
				}
			}
		}
		if !found {
			t.Fatalf("no comment trivium kept for %q", src)
		}
	}
}

func TestRecovery(t *testing.T) {
	tests := []struct {
		name  string
		src   string
		codes []diag.Code
		top   syntax.Kind
	}{
		{"missing comma", "or { $a $b }", []diag.Code{diag.SynExpectToken}, grit.KindPatternOr},
		{"unclosed definition", "pattern foo($a {", []diag.Code{diag.SynUnclosedDelimiter, diag.SynUnclosedDelimiter}, grit.KindPatternDefinition},
		{"stray closer", ")", []diag.Code{diag.SynUnexpectedTopLevel}, grit.KindBogusDefinition},
		{"bare name", "foo", []diag.Code{diag.SynExpectPattern}, grit.KindBogusPattern},
		{"bad map element", "{a 1}", []diag.Code{diag.SynBadMapElement}, grit.KindMap},
		{"unclosed list", "[1, 2", []diag.Code{diag.SynUnclosedDelimiter}, grit.KindList},
		{"dangling rewrite", "$a =>", []diag.Code{diag.SynExpectPattern}, grit.KindRewrite},
		{"predicate without operator", "$a where { $a }", []diag.Code{diag.SynExpectPredicate}, grit.KindPatternWhere},
		{"late language", "`a`\nlanguage js", []diag.Code{diag.SynUnexpectedTopLevel}, grit.KindCodeSnippet},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, bag := parseSource(t, tt.src, Options{})
			if got := codesOf(bag); !slices.Equal(got, tt.codes) {
				t.Fatalf("codes = %v, want %v (%s)", got, tt.codes, diagnosticsSummary(bag))
			}
			if got := firstDefinition(t, res).Kind(); got != tt.top {
				t.Fatalf("top = %s, want %s", grit.Registry.Name(got), grit.Registry.Name(tt.top))
			}
		})
	}
}

func TestBadHeader(t *testing.T) {
	res, bag := parseSource(t, "engine foo(1.0)\nlanguage cobol\n$a", Options{})
	if !slices.Equal(codesOf(bag), []diag.Code{diag.SynBadVersion, diag.SynBadLanguage}) {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	version, ok := res.Root.Version()
	if !ok || version.Syntax().Kind() != grit.KindBogusVersion {
		t.Fatalf("version = %v", version)
	}
	lang, ok := res.Root.Language()
	if !ok || lang.Syntax().SlotNode(1).Kind() != grit.KindBogusLanguageName {
		t.Fatalf("language = %v", lang)
	}
}

func TestUnclosedDelimiterFix(t *testing.T) {
	_, bag := parseSource(t, "foo($a", Options{})
	items := bag.Items()
	if len(items) != 1 || items[0].Code != diag.SynUnclosedDelimiter {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	d := items[0]
	if len(d.Notes) != 1 || d.Notes[0].Span.Start != 3 {
		t.Fatalf("notes = %+v", d.Notes)
	}
	if len(d.Fixes) != 1 || d.Fixes[0].Edits[0].NewText != ")" || d.Fixes[0].Edits[0].Span.Start != 6 {
		t.Fatalf("fixes = %+v", d.Fixes)
	}
}

func TestDepthGuard(t *testing.T) {
	src := strings.Repeat("(", 20) + "$a" + strings.Repeat(")", 20)
	res, bag := parseSource(t, src, Options{MaxDepth: 8})
	if !slices.Equal(codesOf(bag), []diag.Code{diag.SynTooDeep}) {
		t.Fatalf("diagnostics = %s", diagnosticsSummary(bag))
	}
	var bogus int
	for n := range res.Syntax().Descendants() {
		if n.Kind() == grit.KindBogusPattern {
			bogus++
		}
	}
	if bogus != 1 {
		t.Fatalf("bogus patterns = %d, want 1", bogus)
	}
}

func TestMaxErrors(t *testing.T) {
	res, bag := parseSource(t, "foo(,,,,)", Options{MaxErrors: 2})
	if bag.Len() != 2 {
		t.Fatalf("reported = %d, want 2", bag.Len())
	}
	if res.Errors != 4 {
		t.Fatalf("errors = %d, want 4", res.Errors)
	}
}

func TestRoundTripAndOffsets(t *testing.T) {
	sources := []string{
		"",
		"  // only a comment\n",
		"`a` /* inline */ => `b` // trailing\n",
		"pattern p() {\n  or { `a`, `b`, }\n}\n",
		"engine marzano(0.1)\r\nlanguage css\r\n`a`",
		"{ , }",
		"foo(bar = , )",
		"$x <: ",
		"@@ ## $",
		"[[[[",
		"}}}",
		"pattern",
		"if (",
		"`unterminated",
	}
	for _, src := range sources {
		res, _ := parseSource(t, src, Options{})
		var prev uint32
		for tok := range res.Syntax().Tokens() {
			full := tok.TextRange()
			if full.Start != prev {
				t.Fatalf("%q: token %s starts at %d, previous ended at %d", src, tok.KindName(), full.Start, prev)
			}
			trimmed := tok.TextTrimmedRange()
			if trimmed.Start != full.Start+tok.Green().LeadingLen() {
				t.Fatalf("%q: token %s trimmed start %d", src, tok.KindName(), trimmed.Start)
			}
			prev = full.End
		}
		if int(prev) != len(src) {
			t.Fatalf("%q: tokens cover %d bytes of %d", src, prev, len(src))
		}
	}
}
