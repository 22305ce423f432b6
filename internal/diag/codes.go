package diag

import (
	"fmt"
	"slices"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedSnippet      Code = 1006
	LexUnterminatedRegex        Code = 1007
	LexBadEscape                Code = 1008
	LexEmptyVariable            Code = 1009
	LexNameNotNFC               Code = 1010
	LexInvalidUTF8              Code = 1011
	LexSingleQuotedString       Code = 1012

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectToken        Code = 2002
	SynExpectPattern      Code = 2003
	SynExpectPredicate    Code = 2004
	SynExpectName         Code = 2005
	SynExpectVariable     Code = 2006
	SynExpectContainer    Code = 2007
	SynExpectLiteral      Code = 2008
	SynMissingListItem    Code = 2009
	SynUnclosedDelimiter  Code = 2010
	SynUnexpectedTopLevel Code = 2011
	SynBadVersion         Code = 2012
	SynBadLanguage        Code = 2013
	SynBadMapElement      Code = 2014
	SynTooDeep            Code = 2015

	// Проверки дерева и правила
	TreeInfo             Code = 3000
	TreeRoundTrip        Code = 3001
	TreeOffsetOrder      Code = 3002
	TreeCastUnsound      Code = 3003
	TreeSlotLayout       Code = 3004
	TreeCommentOwnership Code = 3005
	TreeMissingRequired  Code = 3006
	TreeBogusSubtree     Code = 3007
	LintEmptyListItem    Code = 3100
	LintRedundantBracket Code = 3101
	LintNameNotNFC       Code = 3102
	LintTrailingComma    Code = 3103

	// Ввод-вывод
	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002

	// Исправления
	FixInfo     Code = 5000
	FixConflict Code = 5001

	// Наблюдаемость
	ObsInfo    Code = 6000
	ObsTimings Code = 6001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string",
		LexUnterminatedBlockComment: "Unterminated block comment",
		LexBadNumber:                "Bad number literal",
		LexTokenTooLong:             "Token too long",
		LexUnterminatedSnippet:      "Unterminated code snippet",
		LexUnterminatedRegex:        "Unterminated regex",
		LexBadEscape:                "Invalid escape sequence",
		LexEmptyVariable:            "Variable without a name",
		LexNameNotNFC:               "Name is not NFC-normalized",
		LexInvalidUTF8:              "Invalid UTF-8",
		LexSingleQuotedString:       "Single-quoted string",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynExpectToken:              "Expected token",
		SynExpectPattern:            "Expected pattern",
		SynExpectPredicate:          "Expected predicate",
		SynExpectName:               "Expected name",
		SynExpectVariable:           "Expected variable",
		SynExpectContainer:          "Expected container",
		SynExpectLiteral:            "Expected literal",
		SynMissingListItem:          "Missing list item",
		SynUnclosedDelimiter:        "Unclosed delimiter",
		SynUnexpectedTopLevel:       "Unexpected top-level input",
		SynBadVersion:               "Malformed engine version",
		SynBadLanguage:              "Malformed language declaration",
		SynBadMapElement:            "Malformed map element",
		SynTooDeep:                  "Nesting too deep",
		TreeInfo:                    "Tree information",
		TreeRoundTrip:               "Tree text differs from source",
		TreeOffsetOrder:             "Token offsets out of order",
		TreeCastUnsound:             "Typed node of foreign kind",
		TreeSlotLayout:              "Children violate slot layout",
		TreeCommentOwnership:        "Comment owned more than once",
		TreeMissingRequired:         "Missing required child",
		TreeBogusSubtree:            "Unrecognized syntax",
		LintEmptyListItem:           "Empty list item",
		LintRedundantBracket:        "Redundant brackets",
		LintNameNotNFC:              "Name is not NFC-normalized",
		LintTrailingComma:           "Trailing comma",
		IOLoadFileError:             "I/O load file error",
		IOWriteFileError:            "I/O write file error",
		FixInfo:                     "Fix information",
		FixConflict:                 "Conflicting fix",
		ObsInfo:                     "Observability information",
		ObsTimings:                  "Pipeline timings",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 3100:
		return fmt.Sprintf("TRE%04d", ic)
	case ic >= 3100 && ic < 4000:
		return fmt.Sprintf("LNT%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("FIX%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("OBS%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}

// Codes returns every known code in ascending order.
func Codes() []Code {
	out := make([]Code, 0, len(codeDescription))
	for c := range codeDescription {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
