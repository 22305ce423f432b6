package lexer

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

// leadingTrivia собирает все trivia до следующего значимого токена:
// пробелы, переводы строк, комментарии, а в начале файла ещё BOM и shebang.
func (lx *Lexer) leadingTrivia() []token.Trivia {
	var out []token.Trivia
	if lx.cursor.Off == 0 {
		start := lx.cursor.Mark()
		if lx.cursor.HasPrefix(syntax.BOM) {
			lx.cursor.BumpN(uint32(len(syntax.BOM)))
			out = append(out, lx.trivium(start, syntax.TriviaBOM))
		}
		if lx.cursor.HasPrefix("#!") {
			start := lx.cursor.Mark()
			lx.skipLine()
			out = append(out, lx.trivium(start, syntax.TriviaShebang))
		}
	}
	for {
		tr, ok := lx.scanTrivium(true)
		if !ok {
			return out
		}
		out = append(out, tr)
	}
}

// trailingTrivia собирает trivia после токена до ближайшего перевода строки (не включая его).
func (lx *Lexer) trailingTrivia() []token.Trivia {
	var out []token.Trivia
	for {
		tr, ok := lx.scanTrivium(false)
		if !ok {
			return out
		}
		out = append(out, tr)
	}
}

// scanTrivium читает один trivium.
//   - ' ', '\t', '\f', '\v' коалесцируются в один TriviaWhitespace
//   - каждый перевод строки ("\n", "\r\n", "\r") - отдельный TriviaNewline
//   - //... до перевода строки -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment (без вложенности; незакрытый - репорт и обрезаем на EOF)
func (lx *Lexer) scanTrivium(newlines bool) (token.Trivia, bool) {
	start := lx.cursor.Mark()
	switch b := lx.cursor.Peek(); {
	case isHorizontalSpace(b):
		for isHorizontalSpace(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.trivium(start, syntax.TriviaWhitespace), true

	case b == '\n' || b == '\r':
		if !newlines {
			return token.Trivia{}, false
		}
		if lx.cursor.Bump() == '\r' {
			lx.cursor.Eat('\n')
		}
		return lx.trivium(start, syntax.TriviaNewline), true

	case b == '/' && lx.cursor.PeekAt(1) == '/':
		lx.skipLine()
		return lx.trivium(start, syntax.TriviaLineComment), true

	case b == '/' && lx.cursor.PeekAt(1) == '*':
		lx.cursor.BumpN(2)
		for !lx.cursor.EOF() {
			if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
				lx.cursor.BumpN(2)
				return lx.trivium(start, syntax.TriviaBlockComment), true
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		return lx.trivium(start, syntax.TriviaBlockComment), true
	}
	return token.Trivia{}, false
}

// skipLine двигает курсор до перевода строки, не съедая его.
func (lx *Lexer) skipLine() {
	for !lx.cursor.EOF() {
		if b := lx.cursor.Peek(); b == '\n' || b == '\r' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) trivium(start Mark, kind syntax.TriviaKind) token.Trivia {
	return token.Trivia{Kind: kind, Span: lx.cursor.SpanFrom(start), Text: lx.cursor.TextFrom(start)}
}

func isHorizontalSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\f' || b == '\v'
}
