package lexer

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

// scanString читает "..." (kind GRIT_STRING) или r"..." (GRIT_REGEX).
// Курсор стоит на открывающей кавычке, start указывает на начало токена.
// Escape-последовательности проверяются только в обычных строках.
// Перевод строки внутри строки - ошибка, токен обрывается перед ним.
func (lx *Lexer) scanString(start Mark, kind syntax.Kind) token.Token {
	lx.cursor.Bump() // '"'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '"':
			lx.cursor.Bump()
			return lx.emit(start, kind)
		case '\\':
			esc := lx.cursor.Mark()
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			if kind == grit.KindString {
				lx.scanEscape(esc)
			} else {
				lx.bumpRune()
			}
		case '\n', '\r':
			tok := lx.emit(start, kind)
			lx.reportUnterminated(kind, tok.Span)
			return tok
		default:
			lx.bumpRune()
		}
	}
	tok := lx.emit(start, kind)
	lx.reportUnterminated(kind, tok.Span)
	return tok
}

// scanEscape проверяет escape после '\'. Допустимы \" \\ \/ \b \f \n \r \t и \uXXXX.
func (lx *Lexer) scanEscape(esc Mark) {
	switch lx.cursor.Peek() {
	case '"', '\\', '/', 'b', 'f', 'n', 'r', 't':
		lx.cursor.Bump()
		return
	case 'u':
		lx.cursor.Bump()
		for range 4 {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(esc), "unicode escape needs four hexadecimal digits: \\uXXXX")
				return
			}
			lx.cursor.Bump()
		}
		return
	}
	lx.bumpRune()
	lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(esc), "invalid escape sequence")
}

// scanSnippet читает `...`, r`...` или raw`...`. Сниппеты многострочные.
func (lx *Lexer) scanSnippet(start Mark, kind syntax.Kind) token.Token {
	lx.cursor.Bump() // '`'
	for !lx.cursor.EOF() {
		switch lx.cursor.Peek() {
		case '`':
			lx.cursor.Bump()
			return lx.emit(start, kind)
		case '\\':
			lx.cursor.Bump()
			lx.bumpRune()
		default:
			lx.bumpRune()
		}
	}
	tok := lx.emit(start, kind)
	lx.reportUnterminated(kind, tok.Span)
	return tok
}

// scanSingleQuoted: в Grit нет строк в одинарных кавычках - читаем до конца и отдаём ErrorToken.
func (lx *Lexer) scanSingleQuoted() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\''
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		lx.bumpRune()
		if b == '\\' {
			lx.bumpRune()
		} else if b == '\'' {
			break
		}
	}
	tok := lx.emit(start, grit.KindErrorToken)
	lx.errLex(diag.LexSingleQuotedString, tok.Span, "single quoted strings are not allowed, use double quotes")
	return tok
}

func (lx *Lexer) reportUnterminated(kind syntax.Kind, sp source.Span) {
	switch kind {
	case grit.KindRegex, grit.KindSnippetRegex:
		lx.errLex(diag.LexUnterminatedRegex, sp, "unterminated regular expression")
	case grit.KindBacktickSnippet, grit.KindRawBacktickSnippet:
		lx.errLex(diag.LexUnterminatedSnippet, sp, "unterminated code snippet")
	default:
		lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	}
}
