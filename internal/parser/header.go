package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
)

// parseVersion: engine biome(1.0). A malformed header becomes BogusVersion.
func (p *Parser) parseVersion() CompletedMarker {
	m := p.start()
	p.advance() // engine
	ok := true

	if p.at(grit.KindBiomeKw) || p.at(grit.KindMarzanoKw) {
		p.wrapToken(grit.KindEngineName)
	} else {
		p.err(diag.SynBadVersion, "expected engine name 'biome' or 'marzano', got "+describe(p.peek()))
		ok = false
		if p.at(grit.KindIdent) {
			p.advance()
		}
	}

	open := p.peek().Span
	if !p.expect(grit.KindLParen, diag.SynBadVersion, "expected '(' after engine name") {
		return m.complete(p, grit.KindBogusVersion)
	}
	if p.at(grit.KindDouble) {
		p.wrapToken(grit.KindDoubleLiteral)
	} else {
		p.err(diag.SynBadVersion, "expected a version number like 1.0, got "+describe(p.peek()))
		ok = false
		if p.at(grit.KindInt) {
			p.advance()
		}
	}
	if !p.expectClose(grit.KindRParen, open) {
		ok = false
	}
	if !ok {
		return m.complete(p, grit.KindBogusVersion)
	}
	return m.complete(p, grit.KindVersion)
}

// parseLanguageDeclaration: language js(typescript, jsx);
func (p *Parser) parseLanguageDeclaration() CompletedMarker {
	m := p.start()
	p.advance() // language

	switch {
	case p.atSet(languageNames):
		p.wrapToken(grit.KindLanguageName)
	case p.at(grit.KindIdent):
		p.err(diag.SynBadLanguage, "unknown language "+describe(p.peek())+"; expected one of js, css, json, grit, html")
		p.wrapToken(grit.KindBogusLanguageName)
	default:
		p.err(diag.SynBadLanguage, "expected a language name, got "+describe(p.peek()))
		return m.complete(p, grit.KindBogusLanguageDeclaration)
	}

	if p.at(grit.KindLParen) && (flavorKinds.Contains(p.nth(1)) || p.nth(1) == grit.KindIdent) {
		p.parseLanguageFlavor()
	}
	p.eat(grit.KindSemicolon)
	return m.complete(p, grit.KindLanguageDeclaration)
}

func (p *Parser) parseLanguageFlavor() CompletedMarker {
	m := p.start()
	open := p.advance().Span
	p.parseSeparatedList(listSpec{
		kind:   grit.KindLanguageFlavorList,
		bogus:  grit.KindBogusLanguageFlavorKind,
		closer: grit.KindRParen,
		what:   "a language flavor",
		code:   diag.SynBadLanguage,
	}, func() (CompletedMarker, bool) {
		switch {
		case p.atSet(flavorKinds):
			return p.wrapToken(grit.KindLanguageFlavorKind), true
		case p.at(grit.KindIdent):
			p.err(diag.SynBadLanguage, "unknown language flavor "+describe(p.peek())+"; expected typescript, jsx or js_do_not_use")
			return p.wrapToken(grit.KindBogusLanguageFlavorKind), true
		}
		return CompletedMarker{}, false
	})
	p.expectClose(grit.KindRParen, open)
	return m.complete(p, grit.KindLanguageFlavor)
}
