package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
)

// parseLiteral: snippets, strings, numbers, booleans, undefined, maps and lists.
func (p *Parser) parseLiteral() (CompletedMarker, bool) {
	switch p.kind() {
	case grit.KindBacktickSnippet:
		m := p.start()
		p.wrapToken(grit.KindBacktickSnippetLiteral)
		return m.complete(p, grit.KindCodeSnippet), true
	case grit.KindRawBacktickSnippet:
		m := p.start()
		p.wrapToken(grit.KindRawBacktickSnippetLiteral)
		return m.complete(p, grit.KindCodeSnippet), true
	case grit.KindJsKw, grit.KindCssKw, grit.KindJsonKw, grit.KindGritKw, grit.KindHtmlKw:
		if p.nth(1) != grit.KindString {
			return CompletedMarker{}, false
		}
		m := p.start()
		s := p.start()
		p.wrapToken(grit.KindLanguageName)
		p.advance() // "..."
		s.complete(p, grit.KindLanguageSpecificSnippet)
		return m.complete(p, grit.KindCodeSnippet), true
	case grit.KindString:
		return p.wrapToken(grit.KindStringLiteral), true
	case grit.KindDouble:
		return p.wrapToken(grit.KindDoubleLiteral), true
	case grit.KindInt:
		return p.wrapToken(grit.KindIntLiteral), true
	case grit.KindNegativeInt:
		return p.wrapToken(grit.KindNegativeIntLiteral), true
	case grit.KindTrueKw, grit.KindFalseKw:
		return p.wrapToken(grit.KindBooleanLiteral), true
	case grit.KindUndefinedKw:
		return p.wrapToken(grit.KindUndefinedLiteral), true
	case grit.KindLCurly:
		return p.parseMap(), true
	case grit.KindLBrack:
		return p.parseList(), true
	case grit.KindErrorToken:
		// лексер уже сообщил об ошибке; повторно не ругаемся
		return p.wrapToken(grit.KindBogusLiteral), true
	}
	return CompletedMarker{}, false
}

// parseMap: { key: pattern, other: pattern }
func (p *Parser) parseMap() CompletedMarker {
	m := p.start()
	open := p.advance().Span
	p.parseSeparatedList(listSpec{
		kind:     grit.KindMapElementList,
		bogus:    grit.KindBogusMapElement,
		closer:   grit.KindRCurly,
		recovery: definitionStart,
		what:     "a map element 'key: pattern'",
		code:     diag.SynBadMapElement,
	}, p.parseMapElement)
	p.expectClose(grit.KindRCurly, open)
	return m.complete(p, grit.KindMap)
}

func (p *Parser) parseMapElement() (CompletedMarker, bool) {
	if !(p.at(grit.KindIdent) || grit.IsKeyword(p.kind())) || p.nth(1) != grit.KindColon {
		return CompletedMarker{}, false
	}
	m := p.start()
	p.parseNameAllowKeyword()
	p.advance() // :
	p.expectPattern("':'")
	return m.complete(p, grit.KindMapElement), true
}

// parseList: name? [ pattern, ...$rest ]
func (p *Parser) parseList() CompletedMarker {
	m := p.start()
	p.parseName()
	open := p.advance().Span // [
	p.parseSeparatedList(listSpec{
		kind:     grit.KindListPatternList,
		bogus:    grit.KindBogusPattern,
		closer:   grit.KindRBrack,
		recovery: definitionStart,
		what:     "a pattern",
		code:     diag.SynExpectPattern,
	}, p.parseListPattern)
	p.expectClose(grit.KindRBrack, open)
	return m.complete(p, grit.KindList)
}

func (p *Parser) parseListPattern() (CompletedMarker, bool) {
	if !p.at(grit.KindDot3) {
		return p.parsePattern()
	}
	m := p.start()
	p.advance()
	if !p.at(grit.KindComma) && !p.atSet(closers) && !p.atEOF() {
		p.expectMaybeCurly("'...'")
	}
	return m.complete(p, grit.KindDotdotdot), true
}
