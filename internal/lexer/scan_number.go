package lexer

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/token"
)

// Поддержка: 0, 123, -7, 1.5, -0.5, 1e3, 2.5E-4.
// Ведущий ноль перед цифрой (восьмеричная запись) запрещён.
// '.' входит в число только если за ней цифра: "1..." и "$x.1" не ломаются.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	negative := lx.cursor.Eat('-')

	leadingZero := lx.cursor.Peek() == '0' && isDec(lx.cursor.PeekAt(1))
	lx.eatDigits()

	kind := grit.KindInt
	if negative {
		kind = grit.KindNegativeInt
	}
	if lx.cursor.Peek() == '.' && isDec(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		lx.eatDigits()
		kind = grit.KindDouble
	}

	var bad string
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		n := uint32(1)
		if s := lx.cursor.PeekAt(1); s == '+' || s == '-' {
			n = 2
		}
		if isDec(lx.cursor.PeekAt(n)) {
			lx.cursor.BumpN(n)
			lx.eatDigits()
			kind = grit.KindDouble
		} else if !isIdentContinueByte(lx.cursor.PeekAt(1)) {
			lx.cursor.BumpN(n)
			bad = "expected a digit in the exponent"
		}
	}
	if leadingZero {
		bad = "numbers must not start with a zero"
	}

	tok := lx.emit(start, kind)
	if bad != "" {
		tok.Kind = grit.KindErrorToken
		lx.errLex(diag.LexBadNumber, tok.Span, bad)
	}
	return tok
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
}
