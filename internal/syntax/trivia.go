package syntax

import (
	"fmt"
	"strings"
	"unicode"
)

// TriviaKind classifies a trivium. The classes are disjoint.
type TriviaKind uint8

const (
	// TriviaWhitespace is a run of horizontal whitespace.
	TriviaWhitespace TriviaKind = iota + 1
	// TriviaNewline is a single line break: "\n", "\r\n" or "\r".
	TriviaNewline
	// TriviaLineComment runs to the end of the line, the break excluded.
	TriviaLineComment
	// TriviaBlockComment may span several lines.
	TriviaBlockComment
	// TriviaShebang is the "#!" interpreter line at the very start of a file.
	TriviaShebang
	// TriviaBOM is the U+FEFF byte order mark.
	TriviaBOM
)

// BOM is the UTF-8 encoding of U+FEFF.
const BOM = "\uFEFF"

func (k TriviaKind) String() string {
	switch k {
	case TriviaWhitespace:
		return "Whitespace"
	case TriviaNewline:
		return "Newline"
	case TriviaLineComment:
		return "LineComment"
	case TriviaBlockComment:
		return "BlockComment"
	case TriviaShebang:
		return "Shebang"
	case TriviaBOM:
		return "BOM"
	}
	return fmt.Sprintf("TriviaKind(%d)", uint8(k))
}

// IsComment reports whether the kind is a line or block comment.
func (k TriviaKind) IsComment() bool {
	return k == TriviaLineComment || k == TriviaBlockComment
}

// Trivia is a piece of non-semantic text owned by a token.
type Trivia struct {
	Kind TriviaKind
	Text string
}

// Len returns the byte length of the trivium.
func (t Trivia) Len() uint32 {
	return widthOf(t.Text)
}

// IsComment reports whether the trivium is a comment.
func (t Trivia) IsComment() bool { return t.Kind.IsComment() }

// IsMultiline reports whether a comment trivium contains a line break.
func (t Trivia) IsMultiline() bool {
	return t.Kind == TriviaBlockComment && strings.ContainsAny(t.Text, "\n\r")
}

// InvalidTriviaError reports a trivia list rejected by ValidateTrivia.
type InvalidTriviaError struct {
	Trailing bool
	Index    int
	Kind     TriviaKind
	Reason   string
}

func (e *InvalidTriviaError) Error() string {
	side := "leading"
	if e.Trailing {
		side = "trailing"
	}
	return fmt.Sprintf("invalid %s trivia #%d (%s): %s", side, e.Index, e.Kind, e.Reason)
}

// ValidateTrivia checks the trivia of a token.
// first reports whether the token is the first token of its tree: only that
// token may carry a BOM (as its first leading trivium) and a shebang (first,
// or right after the BOM).
func ValidateTrivia(leading, trailing []Trivia, first bool) error {
	for i, t := range leading {
		if err := validateTrivium(t, i, false, first, leading); err != nil {
			return err
		}
	}
	for i, t := range trailing {
		if err := validateTrivium(t, i, true, false, trailing); err != nil {
			return err
		}
	}
	return nil
}

func validateTrivium(t Trivia, i int, trailing, first bool, list []Trivia) error {
	fail := func(reason string) error {
		return &InvalidTriviaError{Trailing: trailing, Index: i, Kind: t.Kind, Reason: reason}
	}
	if t.Text == "" {
		return fail("empty text")
	}
	switch t.Kind {
	case TriviaWhitespace:
		for _, r := range t.Text {
			if r == '\n' || r == '\r' || r == 0xFEFF || !unicode.IsSpace(r) {
				return fail(fmt.Sprintf("unexpected %q in whitespace", r))
			}
		}
	case TriviaNewline:
		if t.Text != "\n" && t.Text != "\r\n" && t.Text != "\r" {
			return fail("newline trivium must hold exactly one line break")
		}
	case TriviaLineComment:
		if !strings.HasPrefix(t.Text, "//") {
			return fail("line comment must start with //")
		}
		if strings.ContainsAny(t.Text, "\n\r") {
			return fail("line comment contains a line break")
		}
	case TriviaBlockComment:
		// текст не обязан быть UTF-8; незакрытый комментарий тянется до EOF
		if !strings.HasPrefix(t.Text, "/*") {
			return fail("block comment must start with /*")
		}
	case TriviaShebang:
		if !strings.HasPrefix(t.Text, "#!") || strings.ContainsAny(t.Text, "\n\r") {
			return fail("shebang must start with #! and end before the line break")
		}
		afterBOM := i == 1 && list[0].Kind == TriviaBOM
		if trailing || !first || (i != 0 && !afterBOM) {
			return fail("shebang is only allowed at the start of the first token")
		}
	case TriviaBOM:
		if t.Text != BOM {
			return fail("BOM trivium must be U+FEFF")
		}
		if trailing || !first || i != 0 {
			return fail("BOM is only allowed as the first trivium of the first token")
		}
	default:
		return fail("unknown trivia kind")
	}
	return nil
}

func triviaLen(list []Trivia) uint32 {
	var n uint32
	for _, t := range list {
		n += t.Len()
	}
	return n
}

func triviaEqual(a, b []Trivia) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
