package lexer

import (
	"fmt"
	"unicode/utf8"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token // 1 элементный буфер для токена
	prev   syntax.Kind  // последний выданный значимый токен
	done   bool         // EOF уже выдан
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File { return lx.file }

// Tokenize lexes the whole file. The last token is always EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.IsEOF() {
			return out
		}
	}
}

// Next возвращает следующий значимый токен с уже собранными Leading и Trailing.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}
	if lx.done {
		return token.Token{Kind: grit.KindEOF, Span: lx.emptySpan()}
	}

	leading := lx.leadingTrivia()

	// хвостовые trivia файла принадлежат EOF
	if lx.cursor.EOF() {
		lx.done = true
		return token.Token{Kind: grit.KindEOF, Span: lx.emptySpan(), Leading: leading}
	}

	tok := lx.scanToken()
	if tok.Span.Len() > lx.maxLen() {
		lx.errLex(diag.LexTokenTooLong, tok.Span, fmt.Sprintf("token is longer than %d bytes", lx.maxLen()))
		tok.Kind = grit.KindErrorToken
	}
	tok.Leading = leading
	tok.Trailing = lx.trailingTrivia()
	lx.prev = tok.Kind
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

func (lx *Lexer) scanToken() token.Token {
	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		return lx.scanString(lx.cursor.Mark(), grit.KindString)
	case ch == '\'':
		return lx.scanSingleQuoted()
	case ch == '`':
		return lx.scanSnippet(lx.cursor.Mark(), grit.KindBacktickSnippet)
	case ch == '$':
		return lx.scanVariable()
	case ch == '@':
		return lx.scanAnnotation()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '-' && isDec(lx.cursor.PeekAt(1)) && !lx.afterOperand():
		return lx.scanNumber()
	case isIdentStartByte(ch), ch >= utf8.RuneSelf:
		return lx.scanName()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// afterOperand reports whether the previous token can end an operand, in
// which case a following "-1" is a subtraction and not a negative literal.
func (lx *Lexer) afterOperand() bool {
	switch lx.prev {
	case grit.KindIdent, grit.KindDollarIdent, grit.KindDollarUnderscore,
		grit.KindInt, grit.KindNegativeInt, grit.KindDouble, grit.KindString,
		grit.KindBacktickSnippet, grit.KindRawBacktickSnippet,
		grit.KindRParen, grit.KindRBrack, grit.KindRCurly,
		grit.KindTrueKw, grit.KindFalseKw, grit.KindUndefinedKw:
		return true
	}
	return false
}

func (lx *Lexer) emit(start Mark, kind syntax.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.cursor.TextFrom(start)}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}
