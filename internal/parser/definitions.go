package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// parseDefinitionList: основной цикл верхнего уровня: пока не EOF: parseDefinition.
func (p *Parser) parseDefinitionList() {
	m := p.start()
	for !p.atEOF() {
		if _, ok := p.parseDefinition(); ok {
			continue
		}
		p.resyncTop()
	}
	m.complete(p, grit.KindDefinitionList)
}

// resyncTop: восстановление после ошибки на верхнем уровне:
// заворачиваем всё до начала следующего определения в BogusDefinition.
func (p *Parser) resyncTop() {
	if p.at(grit.KindEngineKw) || p.at(grit.KindLanguageKw) {
		p.err(diag.SynUnexpectedTopLevel, describe(p.peek())+" must come before any definition")
	} else {
		p.err(diag.SynUnexpectedTopLevel, "expected a definition or a pattern, got "+describe(p.peek()))
	}
	if _, ok := p.wrapUntil(grit.KindBogusDefinition, definitionStart); !ok {
		p.wrapToken(grit.KindBogusDefinition)
	}
}

// parseDefinition выбирает по первому токену нужный распознаватель.
func (p *Parser) parseDefinition() (CompletedMarker, bool) {
	switch p.kind() {
	case grit.KindPrivateKw:
		if p.nth(1) == grit.KindPredicateKw {
			return p.parsePredicateDefinition(), true
		}
		return p.parsePatternDefinition(), true
	case grit.KindPatternKw:
		return p.parsePatternDefinition(), true
	case grit.KindPredicateKw:
		return p.parsePredicateDefinition(), true
	case grit.KindFunctionKw:
		return p.parseFunctionDefinition(), true
	}
	return p.parsePattern()
}

// parsePatternDefinition: private? pattern name($a, $b) language js? { patterns }
func (p *Parser) parsePatternDefinition() CompletedMarker {
	m := p.start()
	p.eat(grit.KindPrivateKw)
	p.expect(grit.KindPatternKw, diag.SynExpectToken, "expected 'pattern' after 'private'")
	p.parseDefinitionHead()
	if p.at(grit.KindLanguageKw) {
		p.parseLanguageDeclaration()
	}
	if p.at(grit.KindLCurly) {
		body := p.start()
		open := p.advance().Span
		p.parsePatternList(grit.KindPatternList, grit.KindRCurly)
		p.expectClose(grit.KindRCurly, open)
		body.complete(p, grit.KindPatternDefinitionBody)
	} else {
		p.err(diag.SynExpectToken, "expected '{' to start the pattern body, got "+describe(p.peek()))
	}
	return m.complete(p, grit.KindPatternDefinition)
}

// parsePredicateDefinition: private? predicate name($a) { predicates }
func (p *Parser) parsePredicateDefinition() CompletedMarker {
	m := p.start()
	p.eat(grit.KindPrivateKw)
	p.advance() // predicate
	p.parseDefinitionHead()
	p.parsePredicateCurly()
	return m.complete(p, grit.KindPredicateDefinition)
}

// parseFunctionDefinition: function name($a) { predicates }
func (p *Parser) parseFunctionDefinition() CompletedMarker {
	m := p.start()
	p.advance() // function
	p.parseDefinitionHead()
	p.parsePredicateCurly()
	return m.complete(p, grit.KindFunctionDefinition)
}

// parseDefinitionHead: name '(' args ')'
func (p *Parser) parseDefinitionHead() {
	if _, ok := p.parseName(); !ok {
		p.err(diag.SynExpectName, "expected a definition name, got "+describe(p.peek()))
	}
	if !p.at(grit.KindLParen) {
		p.err(diag.SynExpectToken, "expected '(' after the definition name, got "+describe(p.peek()))
		return
	}
	open := p.advance().Span
	p.parseVariableList(grit.KindPatternArgList, grit.KindRParen)
	p.expectClose(grit.KindRParen, open)
}

// parsePredicateCurly: { predicates }
func (p *Parser) parsePredicateCurly() {
	if !p.at(grit.KindLCurly) {
		p.err(diag.SynExpectToken, "expected '{' to start the body, got "+describe(p.peek()))
		return
	}
	m := p.start()
	open := p.advance().Span
	p.parsePredicateList()
	p.expectClose(grit.KindRCurly, open)
	m.complete(p, grit.KindPredicateCurly)
}

// parseVariableList parses $a, $b up to closer as a list of kind.
func (p *Parser) parseVariableList(kind, closer syntax.Kind) CompletedMarker {
	return p.parseSeparatedList(listSpec{
		kind:     kind,
		closer:   closer,
		recovery: definitionStart.Insert(grit.KindLCurly),
		what:     "a variable",
		code:     diag.SynExpectVariable,
	}, p.parseVariable)
}
