package lexer

import (
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	emit := func(k syntax.Kind) token.Token { return lx.emit(start, k) }

	switch {
	case lx.try3('.', '.', '.'):
		return emit(grit.KindDot3)
	case lx.try2('=', '='):
		return emit(grit.KindEq2)
	case lx.try2('=', '>'):
		return emit(grit.KindFatArrow)
	case lx.try2('!', '='):
		return emit(grit.KindNeq)
	case lx.try2('<', '='):
		return emit(grit.KindLtEq)
	case lx.try2('<', ':'):
		return emit(grit.KindMatch)
	case lx.try2('>', '='):
		return emit(grit.KindGtEq)
	case lx.try2('+', '='):
		return emit(grit.KindPlusEq)
	}

	if k, ok := singlePunct[lx.cursor.Peek()]; ok {
		lx.cursor.Bump()
		return emit(k)
	}
	return lx.scanUnknown()
}

var singlePunct = map[byte]syntax.Kind{
	'(': grit.KindLParen,
	')': grit.KindRParen,
	'{': grit.KindLCurly,
	'}': grit.KindRCurly,
	'[': grit.KindLBrack,
	']': grit.KindRBrack,
	';': grit.KindSemicolon,
	',': grit.KindComma,
	'.': grit.KindPeriod,
	':': grit.KindColon,
	'=': grit.KindEq,
	'!': grit.KindBang,
	'<': grit.KindLAngle,
	'>': grit.KindRAngle,
	'+': grit.KindPlus,
	'-': grit.KindMinus,
	'*': grit.KindStar,
	'/': grit.KindSlash,
	'%': grit.KindPercent,
}
