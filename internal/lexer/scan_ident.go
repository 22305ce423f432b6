package lexer

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/token"
)

// scanName сканирует имя и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые. Префиксы r"..", r`..` и raw`..` дают литералы.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()

	r, sz := lx.peekRune()
	switch {
	case r < utf8.RuneSelf && isIdentStartByte(byte(r)):
		lx.cursor.Bump()
	case r >= utf8.RuneSelf && sz > 1 && isIdentStartRune(r):
		lx.bumpRune()
	default:
		return lx.scanUnknown()
	}
	lx.eatIdentContinue()

	text := lx.cursor.TextFrom(start)
	switch next := lx.cursor.Peek(); {
	case text == "r" && next == '"':
		return lx.scanString(start, grit.KindRegex)
	case text == "r" && next == '`':
		return lx.scanSnippet(start, grit.KindSnippetRegex)
	case text == "raw" && next == '`':
		return lx.scanSnippet(start, grit.KindRawBacktickSnippet)
	}

	if k, ok := grit.LookupKeyword(text); ok {
		return lx.emit(start, k)
	}
	tok := lx.emit(start, grit.KindIdent)
	if !norm.NFC.IsNormalString(text) {
		lx.warnLex(diag.LexNameNotNFC, tok.Span, fmt.Sprintf("name %q is not in Unicode normal form C", text))
	}
	return tok
}

// scanVariable: $name, $_ или ошибка для одиночного '$'.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if lx.cursor.Peek() == '_' && !isIdentContinueByte(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		return lx.emit(start, grit.KindDollarUnderscore)
	}
	before := lx.cursor.Off
	lx.eatIdentContinue()
	if lx.cursor.Off == before {
		tok := lx.emit(start, grit.KindErrorToken)
		lx.errLex(diag.LexEmptyVariable, tok.Span, "expected a variable name after '$'")
		return tok
	}
	return lx.emit(start, grit.KindDollarIdent)
}

// scanAnnotation: @name.
func (lx *Lexer) scanAnnotation() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '@'
	before := lx.cursor.Off
	lx.eatIdentContinue()
	if lx.cursor.Off == before {
		tok := lx.emit(start, grit.KindErrorToken)
		lx.errLex(diag.LexEmptyVariable, tok.Span, "expected an annotation name after '@'")
		return tok
	}
	return lx.emit(start, grit.KindAtIdent)
}

// scanUnknown съедает одну руну (или один битый байт) как ErrorToken.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, sz := lx.peekRune()
	lx.bumpRune()
	tok := lx.emit(start, grit.KindErrorToken)
	if r == utf8.RuneError && sz <= 1 {
		lx.errLex(diag.LexInvalidUTF8, tok.Span, "invalid UTF-8 byte")
	} else {
		lx.errLex(diag.LexUnknownChar, tok.Span, fmt.Sprintf("unexpected character %q", r))
	}
	return tok
}
