package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// predicateOps maps a comparison token to the predicate it builds.
var predicateOps = map[syntax.Kind]syntax.Kind{
	grit.KindEq:     grit.KindPredicateAssignment,
	grit.KindPlusEq: grit.KindPredicateAccumulate,
	grit.KindRAngle: grit.KindPredicateGreater,
	grit.KindLAngle: grit.KindPredicateLess,
	grit.KindGtEq:   grit.KindPredicateGreaterEqual,
	grit.KindLtEq:   grit.KindPredicateLessEqual,
	grit.KindNeq:    grit.KindPredicateNotEqual,
	grit.KindEq2:    grit.KindPredicateEqual,
	grit.KindMatch:  grit.KindPredicateMatch,
}

// parsePredicate returns false without consuming anything when the current
// token cannot start a predicate.
func (p *Parser) parsePredicate() (CompletedMarker, bool) {
	if p.depth >= p.maxDepth() {
		return p.tooDeep(grit.KindBogusPredicate)
	}
	p.depth++
	defer func() { p.depth-- }()

	switch p.kind() {
	case grit.KindNotKw, grit.KindBang:
		m := p.start()
		p.wrapToken(grit.KindNot)
		p.expectPredicate("'not'")
		return m.complete(p, grit.KindPredicateNot), true
	case grit.KindMaybeKw:
		m := p.start()
		p.advance()
		p.expectPredicate("'maybe'")
		return m.complete(p, grit.KindPredicateMaybe), true
	case grit.KindAndKw, grit.KindLCurly:
		return p.parsePredicateBlock(grit.KindPredicateAnd), true
	case grit.KindOrKw:
		return p.parsePredicateBlock(grit.KindPredicateOr), true
	case grit.KindAnyKw:
		return p.parsePredicateBlock(grit.KindPredicateAny), true
	case grit.KindIfKw:
		return p.parsePredicateIfElse(), true
	case grit.KindReturnKw:
		m := p.start()
		p.advance()
		p.expectPattern("'return'")
		return m.complete(p, grit.KindPredicateReturn), true
	case grit.KindLParen:
		m := p.start()
		open := p.advance().Span
		p.expectPredicate("'('")
		p.expectClose(grit.KindRParen, open)
		return m.complete(p, grit.KindBracketedPredicate), true
	case grit.KindIdent:
		if p.nth(1) == grit.KindLParen {
			return p.parseCall(grit.KindPredicateCall), true
		}
		return CompletedMarker{}, false
	case grit.KindTrueKw, grit.KindFalseKw:
		if p.nth(1) != grit.KindMatch {
			return p.wrapToken(grit.KindBooleanLiteral), true
		}
	case grit.KindDollarIdent:
		left, _ := p.parseContainer()
		return p.parsePredicateTail(left), true
	}

	left, ok := p.parseLiteral()
	if !ok {
		return left, false
	}
	if p.at(grit.KindMatch) {
		return p.parseBinaryPredicate(left, grit.KindPredicateMatch), true
	}
	p.err(diag.SynExpectPredicate, "expected '<:' after the literal, got "+describe(p.peek()))
	return left.precede(p).complete(p, grit.KindBogusPredicate), true
}

func (p *Parser) expectPredicate(after string) bool {
	if _, ok := p.parsePredicate(); ok {
		return true
	}
	p.err(diag.SynExpectPredicate, "expected a predicate after "+after+", got "+describe(p.peek()))
	return false
}

// parsePredicateTail completes a predicate whose left side is a container.
func (p *Parser) parsePredicateTail(left CompletedMarker) CompletedMarker {
	if p.at(grit.KindFatArrow) || (p.at(grit.KindAtIdent) && p.nth(1) == grit.KindFatArrow) {
		if left.Kind() != grit.KindVariable {
			p.err(diag.SynExpectVariable, "only a variable can be rewritten in a predicate")
		}
		m := left.precede(p)
		p.parseAnnotation()
		p.advance() // =>
		p.expectPattern("'=>'")
		return m.complete(p, grit.KindPredicateRewrite)
	}
	if kind, ok := predicateOps[p.kind()]; ok {
		return p.parseBinaryPredicate(left, kind)
	}
	p.err(diag.SynExpectPredicate, "expected a predicate operator such as '<:' or '=', got "+describe(p.peek()))
	return left.precede(p).complete(p, grit.KindBogusPredicate)
}

func (p *Parser) parseBinaryPredicate(left CompletedMarker, kind syntax.Kind) CompletedMarker {
	m := left.precede(p)
	op := p.advance()
	p.expectPattern("'" + op.Text + "'")
	return m.complete(p, kind)
}

// parsePredicateBlock: kw? { predicates }
func (p *Parser) parsePredicateBlock(kind syntax.Kind) CompletedMarker {
	m := p.start()
	if !p.at(grit.KindLCurly) {
		kw := p.advance()
		if !p.at(grit.KindLCurly) {
			p.err(diag.SynExpectToken, "expected '{' after '"+kw.Text+"', got "+describe(p.peek()))
			return m.complete(p, kind)
		}
	}
	open := p.advance().Span
	p.parsePredicateList()
	p.expectClose(grit.KindRCurly, open)
	return m.complete(p, kind)
}

func (p *Parser) parsePredicateList() CompletedMarker {
	return p.parseSeparatedList(listSpec{
		kind:     grit.KindPredicateList,
		bogus:    grit.KindBogusPredicate,
		closer:   grit.KindRCurly,
		recovery: definitionStart,
		what:     "a predicate",
		code:     diag.SynExpectPredicate,
	}, p.parsePredicate)
}

// parsePredicateIfElse: if (predicate) predicate else predicate
func (p *Parser) parsePredicateIfElse() CompletedMarker {
	m := p.start()
	p.advance() // if
	p.parseCondition()
	p.expectPredicate("the condition")
	if p.at(grit.KindElseKw) {
		e := p.start()
		p.advance()
		p.expectPredicate("'else'")
		e.complete(p, grit.KindPredicateElseClause)
	}
	return m.complete(p, grit.KindPredicateIfElse)
}
