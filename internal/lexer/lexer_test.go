package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/kr/pretty"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/lexer"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

// makeTestLexer создаёт лексер для тестовой строки
func makeTestLexer(input string) (*lexer.Lexer, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.grit", []byte(input))
	bag := diag.NewBag(0)
	return lexer.New(fs.Get(fileID), lexer.Options{Reporter: diag.BagReporter{Bag: bag}}), bag
}

// collectAllTokens собирает все токены до EOF включительно
func collectAllTokens(lx *lexer.Lexer) []token.Token {
	var tokens []token.Token
	for {
		tok := lx.Next()
		tokens = append(tokens, tok)
		if tok.IsEOF() {
			return tokens
		}
	}
}

func tokensToString(tokens []token.Token) string {
	parts := make([]string, len(tokens))
	for i, tok := range tokens {
		parts[i] = fmt.Sprintf("%s(%q)", tok.KindName(), tok.Text)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func errorCodes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

// expectTokens проверяет последовательность токенов (без EOF)
func expectTokens(t *testing.T, input string, expected ...syntax.Kind) {
	t.Helper()
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	tokens = tokens[:len(tokens)-1]

	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\ndiagnostics: %v",
			len(expected), len(tokens), input, tokensToString(tokens), errorCodes(bag))
	}
	for i, tok := range tokens {
		if tok.Kind != expected[i] {
			t.Errorf("token %d: expected %s, got %s (text: %q)",
				i, grit.Registry.Name(expected[i]), tok.KindName(), tok.Text)
		}
	}
}

// expectSingleToken проверяет, что вход создаёт ровно один токен
func expectSingleToken(t *testing.T, input string, kind syntax.Kind, text string) {
	t.Helper()
	lx, _ := makeTestLexer(input)
	tok := lx.Next()
	if tok.Kind != kind || tok.Text != text {
		t.Errorf("input %q: got %s(%q), want %s(%q)", input, tok.KindName(), tok.Text, grit.Registry.Name(kind), text)
	}
	if next := lx.Next(); !next.IsEOF() {
		t.Errorf("input %q: unexpected extra token %s(%q)", input, next.KindName(), next.Text)
	}
}

// fullText склеивает токены и trivia обратно в исходник
func fullText(tokens []token.Token) string {
	var sb strings.Builder
	for _, tok := range tokens {
		for _, tr := range tok.Leading {
			sb.WriteString(tr.Text)
		}
		sb.WriteString(tok.Text)
		for _, tr := range tok.Trailing {
			sb.WriteString(tr.Text)
		}
	}
	return sb.String()
}

func triviaKinds(list []token.Trivia) string {
	parts := make([]string, len(list))
	for i, tr := range list {
		parts[i] = tr.Kind.String()
	}
	return strings.Join(parts, ",")
}

// ====== Имена, переменные, ключевые слова ======

func TestNamesAndVariables(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.Kind
	}{
		{"foo", grit.KindIdent},
		{"_bar", grit.KindIdent},
		{"x123", grit.KindIdent},
		{"`console.log`", grit.KindBacktickSnippet},
		{"$x", grit.KindDollarIdent},
		{"$_", grit.KindDollarUnderscore},
		{"$_foo", grit.KindDollarIdent},
		{"$1", grit.KindDollarIdent},
		{"@suppress", grit.KindAtIdent},
		{"имя", grit.KindIdent},
		{"r", grit.KindIdent},
		{"raw", grit.KindIdent},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestKeywords(t *testing.T) {
	tests := map[string]syntax.Kind{
		"engine":        grit.KindEngineKw,
		"marzano":       grit.KindMarzanoKw,
		"language":      grit.KindLanguageKw,
		"js_do_not_use": grit.KindJsDoNotUseKw,
		"pattern":       grit.KindPatternKw,
		"predicate":     grit.KindPredicateKw,
		"orelse":        grit.KindOrelseKw,
		"undefined":     grit.KindUndefinedKw,
		"return":        grit.KindReturnKw,
	}
	for input, kind := range tests {
		expectSingleToken(t, input, kind, input)
	}
	// регистрозависимость
	expectSingleToken(t, "Pattern", grit.KindIdent, "Pattern")
}

// ====== Литералы ======

func TestLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  syntax.Kind
	}{
		{`"text"`, grit.KindString},
		{`"a\"b\\c\u00e9"`, grit.KindString},
		{`r"a.+"`, grit.KindRegex},
		{`r"a\.b"`, grit.KindRegex},
		{"r`$x + 1`", grit.KindSnippetRegex},
		{"raw`a\nb`", grit.KindRawBacktickSnippet},
		{"`a\\`b`", grit.KindBacktickSnippet},
		{"42", grit.KindInt},
		{"0", grit.KindInt},
		{"-42", grit.KindNegativeInt},
		{"4.2", grit.KindDouble},
		{"-0.5", grit.KindDouble},
		{"1e10", grit.KindDouble},
		{"2.5E-4", grit.KindDouble},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			expectSingleToken(t, tt.input, tt.kind, tt.input)
		})
	}
}

func TestNegativeNumberContext(t *testing.T) {
	expectTokens(t, "[1, -2]", grit.KindLBrack, grit.KindInt, grit.KindComma, grit.KindNegativeInt, grit.KindRBrack)
	expectTokens(t, "$x-1", grit.KindDollarIdent, grit.KindMinus, grit.KindInt)
	expectTokens(t, "$list[-1]", grit.KindDollarIdent, grit.KindLBrack, grit.KindNegativeInt, grit.KindRBrack)
	expectTokens(t, "1 - 2", grit.KindInt, grit.KindMinus, grit.KindInt)
}

// ====== Операторы ======

func TestOperatorsLongestMatch(t *testing.T) {
	expectTokens(t, "... . == => = != ! <= <: < >= > += + - * / %",
		grit.KindDot3, grit.KindPeriod, grit.KindEq2, grit.KindFatArrow, grit.KindEq,
		grit.KindNeq, grit.KindBang, grit.KindLtEq, grit.KindMatch, grit.KindLAngle,
		grit.KindGtEq, grit.KindRAngle, grit.KindPlusEq, grit.KindPlus, grit.KindMinus,
		grit.KindStar, grit.KindSlash, grit.KindPercent)
	expectTokens(t, "(){}[];,:",
		grit.KindLParen, grit.KindRParen, grit.KindLCurly, grit.KindRCurly,
		grit.KindLBrack, grit.KindRBrack, grit.KindSemicolon, grit.KindComma, grit.KindColon)
	expectTokens(t, "$a=>$b", grit.KindDollarIdent, grit.KindFatArrow, grit.KindDollarIdent)
	expectTokens(t, "[...]", grit.KindLBrack, grit.KindDot3, grit.KindRBrack)
}

func TestProgram(t *testing.T) {
	expectTokens(t, "engine marzano(0.1)\nlanguage js(typescript, jsx)\n`console.log($msg)` => .",
		grit.KindEngineKw, grit.KindMarzanoKw, grit.KindLParen, grit.KindDouble, grit.KindRParen,
		grit.KindLanguageKw, grit.KindJsKw, grit.KindLParen, grit.KindTypescriptKw, grit.KindComma,
		grit.KindJsxKw, grit.KindRParen,
		grit.KindBacktickSnippet, grit.KindFatArrow, grit.KindPeriod)
}

// ====== Trivia ======

func TestTriviaBanding(t *testing.T) {
	input := "a /* x */ // tail\n\n  // head\n  b\r\n"
	lx, _ := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if len(tokens) != 3 {
		t.Fatalf("tokens = %s", tokensToString(tokens))
	}
	a, b, eof := tokens[0], tokens[1], tokens[2]
	if got := triviaKinds(a.Trailing); got != "Whitespace,BlockComment,Whitespace,LineComment" {
		t.Fatalf("a trailing = %s", got)
	}
	if got := triviaKinds(b.Leading); got != "Newline,Newline,Whitespace,LineComment,Newline,Whitespace" {
		t.Fatalf("b leading = %s", got)
	}
	if len(b.Trailing) != 0 {
		t.Fatalf("b trailing = %s", triviaKinds(b.Trailing))
	}
	if got := triviaKinds(eof.Leading); got != "Newline" || eof.Leading[0].Text != "\r\n" {
		t.Fatalf("eof leading = %s", got)
	}
	if fullText(tokens) != input {
		t.Fatalf("round trip = %q", fullText(tokens))
	}
}

func TestBOMAndShebang(t *testing.T) {
	input := "\uFEFF#!/usr/bin/env grit\n`a` // c\n  $x\n"
	lx, bag := makeTestLexer(input)
	tokens := collectAllTokens(lx)
	if bag.Len() != 0 {
		t.Fatalf("diagnostics: %v", errorCodes(bag))
	}
	first := tokens[0]
	if got := triviaKinds(first.Leading); got != "BOM,Shebang,Newline" {
		t.Fatalf("first leading = %s", got)
	}
	if first.Leading[1].Text != "#!/usr/bin/env grit" {
		t.Fatalf("shebang = %q", first.Leading[1].Text)
	}
	if got := triviaKinds(first.Trailing); got != "Whitespace,LineComment" {
		t.Fatalf("first trailing = %s", got)
	}
	if tokens[1].Kind != grit.KindDollarIdent || triviaKinds(tokens[1].Leading) != "Newline,Whitespace" {
		t.Fatalf("second = %s leading %s", tokens[1].KindName(), triviaKinds(tokens[1].Leading))
	}
	if fullText(tokens) != input {
		t.Fatalf("round trip = %q", fullText(tokens))
	}
	// спаны trivia идут подряд
	if sp := first.Leading[1].Span; sp.Start != 3 || sp.End != 22 {
		t.Fatalf("shebang span = %v", sp)
	}
}

func TestShebangOnlyAtStart(t *testing.T) {
	lx, bag := makeTestLexer("a\n#!x")
	tokens := collectAllTokens(lx)
	if tokens[1].Kind != grit.KindErrorToken || !bag.HasErrors() {
		t.Fatalf("tokens = %s", tokensToString(tokens))
	}
}

func TestEmptyInput(t *testing.T) {
	lx, _ := makeTestLexer("")
	tok := lx.Next()
	if !tok.IsEOF() || tok.Text != "" || len(tok.Leading) != 0 {
		t.Fatalf("eof = %+v", tok)
	}
	if again := lx.Next(); !again.IsEOF() {
		t.Fatal("EOF must repeat")
	}
}

func TestPeek(t *testing.T) {
	lx, _ := makeTestLexer("a b")
	if p := lx.Peek(); p.Text != "a" {
		t.Fatalf("peek = %q", p.Text)
	}
	if n := lx.Next(); n.Text != "a" {
		t.Fatalf("next after peek = %q", n.Text)
	}
	if n := lx.Next(); n.Text != "b" {
		t.Fatalf("second = %q", n.Text)
	}
}

// ====== Ошибки ======

func TestLexDiagnostics(t *testing.T) {
	tests := []struct {
		input string
		code  diag.Code
		kind  syntax.Kind
	}{
		{`"abc`, diag.LexUnterminatedString, grit.KindString},
		{"\"ab\ncd", diag.LexUnterminatedString, grit.KindString},
		{`"\q"`, diag.LexBadEscape, grit.KindString},
		{`"\u12g4"`, diag.LexBadEscape, grit.KindString},
		{"`abc", diag.LexUnterminatedSnippet, grit.KindBacktickSnippet},
		{`r"abc`, diag.LexUnterminatedRegex, grit.KindRegex},
		{"/* open", diag.LexUnterminatedBlockComment, grit.KindEOF},
		{"$", diag.LexEmptyVariable, grit.KindErrorToken},
		{"@", diag.LexEmptyVariable, grit.KindErrorToken},
		{"007", diag.LexBadNumber, grit.KindErrorToken},
		{"1e", diag.LexBadNumber, grit.KindErrorToken},
		{"'abc'", diag.LexSingleQuotedString, grit.KindErrorToken},
		{"#", diag.LexUnknownChar, grit.KindErrorToken},
		{"\xff", diag.LexInvalidUTF8, grit.KindErrorToken},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lx, bag := makeTestLexer(tt.input)
			tokens := collectAllTokens(lx)
			if tokens[0].Kind != tt.kind {
				t.Fatalf("first token = %s, want %s", tokens[0].KindName(), grit.Registry.Name(tt.kind))
			}
			codes := errorCodes(bag)
			if len(codes) != 1 || codes[0] != tt.code {
				t.Fatalf("codes = %v, want [%v]", codes, tt.code)
			}
			if fullText(tokens) != tt.input {
				t.Fatalf("round trip = %q", fullText(tokens))
			}
		})
	}
}

func TestNameNotNFCWarning(t *testing.T) {
	lx, bag := makeTestLexer("cafe\u0301")
	tok := lx.Next()
	if tok.Kind != grit.KindIdent {
		t.Fatalf("kind = %s", tok.KindName())
	}
	if bag.HasErrors() || !bag.HasWarnings() || bag.Items()[0].Code != diag.LexNameNotNFC {
		t.Fatalf("diagnostics = %v", errorCodes(bag))
	}
}

func TestRoundTripMixed(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"pattern foo($a) { `x` where { $a <: r\"y\" } } // end",
		"or { `a`, `b`, }\r\n",
		"/* block\n comment */ $x += [1, -2, 3.5] /* t */\n",
		"\"\\u00\" ' # \xff $ @",
	}
	for _, input := range inputs {
		lx, _ := makeTestLexer(input)
		tokens := lexer.Tokenize(lx.File(), lexer.Options{})
		if got := fullText(tokens); got != input {
			t.Fatalf("round trip of %q = %q", input, got)
		}
		// спаны токенов не убывают и закрывают файл целиком
		var prev uint32
		for _, tok := range tokens {
			if fs := tok.FullSpan(); fs.Start != prev {
				t.Fatalf("%q: gap before %s at %d (prev end %d)", input, tok.KindName(), fs.Start, prev)
			}
			prev = tok.FullSpan().End
		}
	}
}

func TestTokenStream(t *testing.T) {
	type tok struct {
		Kind     string
		Text     string
		Trailing string
	}
	lx, _ := makeTestLexer("$x <: [1, 2] // end")
	var got []tok
	for _, tk := range collectAllTokens(lx) {
		got = append(got, tok{Kind: tk.KindName(), Text: tk.Text, Trailing: triviaKinds(tk.Trailing)})
	}
	expected := []tok{
		{"DOLLAR_IDENT", "$x", "Whitespace"},
		{"MATCH", "<:", "Whitespace"},
		{"L_BRACK", "[", ""},
		{"GRIT_INT", "1", ""},
		{"COMMA", ",", "Whitespace"},
		{"GRIT_INT", "2", ""},
		{"R_BRACK", "]", "Whitespace,LineComment"},
		{"EOF", "", ""},
	}
	if len(got) != len(expected) {
		pretty.Ldiff(t, expected, got)
		t.FailNow()
	}
	for i := range got {
		if got[i] != expected[i] {
			pretty.Ldiff(t, expected, got)
			t.FailNow()
		}
	}
}
