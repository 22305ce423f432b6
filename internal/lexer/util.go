package lexer

import (
	"unicode/utf8"

	"github.com/smasher164/xid"
)

func (lx *Lexer) peekRune() (rune, int) { return lx.cursor.PeekRune() }

func (lx *Lexer) bumpRune() { lx.cursor.BumpRune() }

// eatIdentContinue съедает хвост имени (ASCII или XID_Continue).
func (lx *Lexer) eatIdentContinue() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b < utf8.RuneSelf {
			if !isIdentContinueByte(b) {
				return
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := lx.peekRune()
		if (r == utf8.RuneError && sz <= 1) || !xid.Continue(r) {
			return
		}
		lx.bumpRune()
	}
}

// ===== Классификаторы =====

// ASCII fast-path для имён; Unicode - через XID_Start/XID_Continue.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func isIdentContinueByte(b byte) bool {
	return isIdentStartByte(b) || isDec(b)
}

func isIdentStartRune(r rune) bool {
	return r == '_' || xid.Start(r)
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isHex(b byte) bool {
	return (b >= '0' && b <= '9') ||
		(b >= 'a' && b <= 'f') ||
		(b >= 'A' && b <= 'F')
}

// try3/try2 пробуют "съесть" 3/2 байта, если совпадает.
func (lx *Lexer) try3(a, b, c byte) bool {
	if lx.cursor.PeekAt(0) != a || lx.cursor.PeekAt(1) != b || lx.cursor.PeekAt(2) != c {
		return false
	}
	lx.cursor.BumpN(3)
	return true
}

func (lx *Lexer) try2(a, b byte) bool {
	if lx.cursor.PeekAt(0) != a || lx.cursor.PeekAt(1) != b {
		return false
	}
	lx.cursor.BumpN(2)
	return true
}
