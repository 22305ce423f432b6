package grit

import "github.com/biomejs/biome-sub001/internal/syntax"

// Token kinds. Node kinds are generated from grit.ungram and start at firstNodeKind.
const (
	// KindTombstone never appears in a tree.
	KindTombstone syntax.Kind = iota
	// KindEOF is the final token; it owns the trailing trivia of the file.
	KindEOF

	KindLParen           // (
	KindRParen           // )
	KindLCurly           // {
	KindRCurly           // }
	KindLBrack           // [
	KindRBrack           // ]
	KindSemicolon        // ;
	KindComma            // ,
	KindPeriod           // .
	KindDot3             // ...
	KindColon            // :
	KindEq               // =
	KindEq2              // ==
	KindFatArrow         // =>
	KindBang             // !
	KindNeq              // !=
	KindLAngle           // <
	KindRAngle           // >
	KindLtEq             // <=
	KindGtEq             // >=
	KindMatch            // <:
	KindPlus             // +
	KindPlusEq           // +=
	KindMinus            // -
	KindStar             // *
	KindSlash            // /
	KindPercent          // %
	KindDollarUnderscore // $_

	KindSequentialKw
	KindMultifileKw
	KindEngineKw
	KindBiomeKw
	KindMarzanoKw
	KindLanguageKw
	KindJsKw
	KindCssKw
	KindJsonKw
	KindGritKw
	KindHtmlKw
	KindTypescriptKw
	KindJsxKw
	KindJsDoNotUseKw
	KindAsKw
	KindLimitKw
	KindWhereKw
	KindOrelseKw
	KindMaybeKw
	KindAfterKw
	KindBeforeKw
	KindContainsKw
	KindUntilKw
	KindIncludesKw
	KindIfKw
	KindElseKw
	KindWithinKw
	KindBubbleKw
	KindNotKw
	KindOrKw
	KindAndKw
	KindAnyKw
	KindSomeKw
	KindEveryKw
	KindPrivateKw
	KindPatternKw
	KindPredicateKw
	KindFunctionKw
	KindTrueKw
	KindFalseKw
	KindUndefinedKw
	KindLikeKw
	KindReturnKw

	KindInt                // 42
	KindNegativeInt        // -42
	KindDouble             // 4.2
	KindString             // "text"
	KindRegex              // r"a.+"
	KindSnippetRegex       // r`a.+`
	KindBacktickSnippet    // `code`
	KindRawBacktickSnippet // raw`code`
	KindIdent              // name
	KindDollarIdent        // $name
	KindAtIdent            // @name

	// KindErrorToken holds bytes the lexer could not classify.
	KindErrorToken

	firstNodeKind
)

type tokenSpec struct {
	kind  syntax.Kind
	name  string
	class syntax.TokenClass
	text  string
}

var tokenSpecs = []tokenSpec{
	{KindEOF, "EOF", syntax.ClassSpecial, ""},

	{KindLParen, "L_PAREN", syntax.ClassPunct, "("},
	{KindRParen, "R_PAREN", syntax.ClassPunct, ")"},
	{KindLCurly, "L_CURLY", syntax.ClassPunct, "{"},
	{KindRCurly, "R_CURLY", syntax.ClassPunct, "}"},
	{KindLBrack, "L_BRACK", syntax.ClassPunct, "["},
	{KindRBrack, "R_BRACK", syntax.ClassPunct, "]"},
	{KindSemicolon, "SEMICOLON", syntax.ClassPunct, ";"},
	{KindComma, "COMMA", syntax.ClassPunct, ","},
	{KindPeriod, "DOT", syntax.ClassPunct, "."},
	{KindDot3, "DOT3", syntax.ClassPunct, "..."},
	{KindColon, "COLON", syntax.ClassPunct, ":"},
	{KindEq, "EQ", syntax.ClassPunct, "="},
	{KindEq2, "EQ2", syntax.ClassPunct, "=="},
	{KindFatArrow, "FAT_ARROW", syntax.ClassPunct, "=>"},
	{KindBang, "BANG", syntax.ClassPunct, "!"},
	{KindNeq, "NEQ", syntax.ClassPunct, "!="},
	{KindLAngle, "L_ANGLE", syntax.ClassPunct, "<"},
	{KindRAngle, "R_ANGLE", syntax.ClassPunct, ">"},
	{KindLtEq, "LTEQ", syntax.ClassPunct, "<="},
	{KindGtEq, "GTEQ", syntax.ClassPunct, ">="},
	{KindMatch, "MATCH", syntax.ClassPunct, "<:"},
	{KindPlus, "PLUS", syntax.ClassPunct, "+"},
	{KindPlusEq, "PLUSEQ", syntax.ClassPunct, "+="},
	{KindMinus, "MINUS", syntax.ClassPunct, "-"},
	{KindStar, "STAR", syntax.ClassPunct, "*"},
	{KindSlash, "SLASH", syntax.ClassPunct, "/"},
	{KindPercent, "PERCENT", syntax.ClassPunct, "%"},
	{KindDollarUnderscore, "DOLLAR_UNDERSCORE", syntax.ClassPunct, "$_"},

	{KindSequentialKw, "SEQUENTIAL_KW", syntax.ClassKeyword, "sequential"},
	{KindMultifileKw, "MULTIFILE_KW", syntax.ClassKeyword, "multifile"},
	{KindEngineKw, "ENGINE_KW", syntax.ClassKeyword, "engine"},
	{KindBiomeKw, "BIOME_KW", syntax.ClassKeyword, "biome"},
	{KindMarzanoKw, "MARZANO_KW", syntax.ClassKeyword, "marzano"},
	{KindLanguageKw, "LANGUAGE_KW", syntax.ClassKeyword, "language"},
	{KindJsKw, "JS_KW", syntax.ClassKeyword, "js"},
	{KindCssKw, "CSS_KW", syntax.ClassKeyword, "css"},
	{KindJsonKw, "JSON_KW", syntax.ClassKeyword, "json"},
	{KindGritKw, "GRIT_KW", syntax.ClassKeyword, "grit"},
	{KindHtmlKw, "HTML_KW", syntax.ClassKeyword, "html"},
	{KindTypescriptKw, "TYPESCRIPT_KW", syntax.ClassKeyword, "typescript"},
	{KindJsxKw, "JSX_KW", syntax.ClassKeyword, "jsx"},
	{KindJsDoNotUseKw, "JS_DO_NOT_USE_KW", syntax.ClassKeyword, "js_do_not_use"},
	{KindAsKw, "AS_KW", syntax.ClassKeyword, "as"},
	{KindLimitKw, "LIMIT_KW", syntax.ClassKeyword, "limit"},
	{KindWhereKw, "WHERE_KW", syntax.ClassKeyword, "where"},
	{KindOrelseKw, "ORELSE_KW", syntax.ClassKeyword, "orelse"},
	{KindMaybeKw, "MAYBE_KW", syntax.ClassKeyword, "maybe"},
	{KindAfterKw, "AFTER_KW", syntax.ClassKeyword, "after"},
	{KindBeforeKw, "BEFORE_KW", syntax.ClassKeyword, "before"},
	{KindContainsKw, "CONTAINS_KW", syntax.ClassKeyword, "contains"},
	{KindUntilKw, "UNTIL_KW", syntax.ClassKeyword, "until"},
	{KindIncludesKw, "INCLUDES_KW", syntax.ClassKeyword, "includes"},
	{KindIfKw, "IF_KW", syntax.ClassKeyword, "if"},
	{KindElseKw, "ELSE_KW", syntax.ClassKeyword, "else"},
	{KindWithinKw, "WITHIN_KW", syntax.ClassKeyword, "within"},
	{KindBubbleKw, "BUBBLE_KW", syntax.ClassKeyword, "bubble"},
	{KindNotKw, "NOT_KW", syntax.ClassKeyword, "not"},
	{KindOrKw, "OR_KW", syntax.ClassKeyword, "or"},
	{KindAndKw, "AND_KW", syntax.ClassKeyword, "and"},
	{KindAnyKw, "ANY_KW", syntax.ClassKeyword, "any"},
	{KindSomeKw, "SOME_KW", syntax.ClassKeyword, "some"},
	{KindEveryKw, "EVERY_KW", syntax.ClassKeyword, "every"},
	{KindPrivateKw, "PRIVATE_KW", syntax.ClassKeyword, "private"},
	{KindPatternKw, "PATTERN_KW", syntax.ClassKeyword, "pattern"},
	{KindPredicateKw, "PREDICATE_KW", syntax.ClassKeyword, "predicate"},
	{KindFunctionKw, "FUNCTION_KW", syntax.ClassKeyword, "function"},
	{KindTrueKw, "TRUE_KW", syntax.ClassKeyword, "true"},
	{KindFalseKw, "FALSE_KW", syntax.ClassKeyword, "false"},
	{KindUndefinedKw, "UNDEFINED_KW", syntax.ClassKeyword, "undefined"},
	{KindLikeKw, "LIKE_KW", syntax.ClassKeyword, "like"},
	{KindReturnKw, "RETURN_KW", syntax.ClassKeyword, "return"},

	{KindInt, "GRIT_INT", syntax.ClassLiteral, ""},
	{KindNegativeInt, "GRIT_NEGATIVE_INT", syntax.ClassLiteral, ""},
	{KindDouble, "GRIT_DOUBLE", syntax.ClassLiteral, ""},
	{KindString, "GRIT_STRING", syntax.ClassLiteral, ""},
	{KindRegex, "GRIT_REGEX", syntax.ClassLiteral, ""},
	{KindSnippetRegex, "GRIT_SNIPPET_REGEX", syntax.ClassLiteral, ""},
	{KindBacktickSnippet, "GRIT_BACKTICK_SNIPPET", syntax.ClassLiteral, ""},
	{KindRawBacktickSnippet, "GRIT_RAW_BACKTICK_SNIPPET", syntax.ClassLiteral, ""},
	{KindIdent, "IDENT", syntax.ClassLiteral, ""},
	{KindDollarIdent, "DOLLAR_IDENT", syntax.ClassLiteral, ""},
	{KindAtIdent, "AT_IDENT", syntax.ClassLiteral, ""},

	{KindErrorToken, "ERROR_TOKEN", syntax.ClassSpecial, ""},
}

var keywords = func() map[string]syntax.Kind {
	m := make(map[string]syntax.Kind)
	for _, ts := range tokenSpecs {
		if ts.class == syntax.ClassKeyword {
			m[ts.text] = ts.kind
		}
	}
	return m
}()

// LookupKeyword returns the keyword kind for ident.
// Keywords are case sensitive.
func LookupKeyword(ident string) (syntax.Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}

// IsKeyword reports whether k is a keyword kind.
func IsKeyword(k syntax.Kind) bool {
	return k >= KindSequentialKw && k <= KindReturnKw
}

// IsPunct reports whether k is a punctuation kind.
func IsPunct(k syntax.Kind) bool {
	return k >= KindLParen && k <= KindDollarUnderscore
}

// IsToken reports whether k is any token kind.
func IsToken(k syntax.Kind) bool {
	return k > KindTombstone && k < firstNodeKind
}

// TokenText returns the fixed spelling of punctuation and keywords.
func TokenText(k syntax.Kind) string {
	if int(k) < len(tokenSpecs)+1 && IsToken(k) {
		return tokenSpecs[k-1].text
	}
	return ""
}

func tokenInfos() []syntax.KindInfo {
	out := make([]syntax.KindInfo, 0, len(tokenSpecs)+1)
	out = append(out, syntax.KindInfo{Kind: KindTombstone, Name: "TOMBSTONE", Family: syntax.FamilyToken, Class: syntax.ClassSpecial})
	for _, ts := range tokenSpecs {
		out = append(out, syntax.KindInfo{Kind: ts.kind, Name: ts.name, Family: syntax.FamilyToken, Class: ts.class, Text: ts.text})
	}
	return out
}
