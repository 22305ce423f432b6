package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

// parsePattern parses a full pattern:
//
//	unit       = primary accessor* ('as' $var)* (('=' | '+=') pattern)?
//	arithmetic = unit (('*' | '/' | '%') unit)* joined by ('+' | '-')
//	pattern    = arithmetic ('=>' arithmetic | 'limit' int | 'where' predicate)*
//
// It returns false without consuming anything when the current token cannot
// start a pattern.
func (p *Parser) parsePattern() (CompletedMarker, bool) {
	if p.depth >= p.maxDepth() {
		return p.tooDeep(grit.KindBogusPattern)
	}
	p.depth++
	defer func() { p.depth-- }()

	left, ok := p.parseArithmetic(precAdditive)
	if !ok {
		return left, false
	}
	for {
		switch {
		case p.at(grit.KindFatArrow) || (p.at(grit.KindAtIdent) && p.nth(1) == grit.KindFatArrow):
			m := left.precede(p)
			p.parseAnnotation()
			p.advance() // =>
			if _, ok := p.parseArithmetic(precAdditive); !ok {
				p.err(diag.SynExpectPattern, "expected a pattern after '=>', got "+describe(p.peek()))
			}
			left = m.complete(p, grit.KindRewrite)
		case p.at(grit.KindLimitKw):
			m := left.precede(p)
			p.advance()
			if p.at(grit.KindInt) {
				p.wrapToken(grit.KindIntLiteral)
			} else {
				p.err(diag.SynExpectLiteral, "expected an integer after 'limit', got "+describe(p.peek()))
			}
			left = m.complete(p, grit.KindPatternLimit)
		case p.at(grit.KindWhereKw):
			m := left.precede(p)
			p.advance()
			if _, ok := p.parsePredicate(); !ok {
				p.err(diag.SynExpectPredicate, "expected a predicate after 'where', got "+describe(p.peek()))
			}
			left = m.complete(p, grit.KindPatternWhere)
		default:
			return left, true
		}
	}
}

// expectPattern parses a required pattern and reports when there is none.
func (p *Parser) expectPattern(after string) bool {
	if _, ok := p.parsePattern(); ok {
		return true
	}
	p.err(diag.SynExpectPattern, "expected a pattern after "+after+", got "+describe(p.peek()))
	return false
}

func (p *Parser) tooDeep(kind syntax.Kind) (CompletedMarker, bool) {
	p.err(diag.SynTooDeep, "nesting is too deep")
	return p.wrapUntil(kind, syntax.KindSetOf(grit.KindComma))
}

const (
	precAdditive       = 1
	precMultiplicative = 2
)

func binaryOp(k syntax.Kind) (syntax.Kind, int) {
	switch k {
	case grit.KindStar:
		return grit.KindMulOperation, precMultiplicative
	case grit.KindSlash:
		return grit.KindDivOperation, precMultiplicative
	case grit.KindPercent:
		return grit.KindModOperation, precMultiplicative
	case grit.KindPlus:
		return grit.KindAddOperation, precAdditive
	case grit.KindMinus:
		return grit.KindSubOperation, precAdditive
	}
	return syntax.Tombstone, 0
}

// parseArithmetic: precedence climbing; операторы левоассоциативны.
func (p *Parser) parseArithmetic(minPrec int) (CompletedMarker, bool) {
	left, ok := p.parseUnit()
	if !ok {
		return left, false
	}
	for {
		node, prec := binaryOp(p.kind())
		if prec == 0 || prec < minPrec {
			return left, true
		}
		m := left.precede(p)
		op := p.advance()
		if _, ok := p.parseArithmetic(prec + 1); !ok {
			p.err(diag.SynExpectPattern, "expected a pattern after '"+op.Text+"', got "+describe(p.peek()))
		}
		left = m.complete(p, node)
	}
}

func (p *Parser) parseUnit() (CompletedMarker, bool) {
	left, ok := p.parsePrimary()
	if !ok {
		return left, false
	}
	left = p.parseAccessors(left)
	for p.at(grit.KindAsKw) {
		m := left.precede(p)
		p.advance()
		if _, ok := p.parseVariable(); !ok {
			p.err(diag.SynExpectVariable, "expected a variable after 'as', got "+describe(p.peek()))
		}
		left = m.complete(p, grit.KindPatternAs)
	}
	if grit.AnyContainerKinds.Contains(left.Kind()) {
		switch p.kind() {
		case grit.KindEq:
			m := left.precede(p)
			p.advance()
			p.expectPattern("'='")
			left = m.complete(p, grit.KindAssignmentAsPattern)
		case grit.KindPlusEq:
			m := left.precede(p)
			p.advance()
			p.expectPattern("'+='")
			left = m.complete(p, grit.KindPatternAccumulate)
		}
	}
	return left, true
}

// parseAccessors: $x.key, $x[0], [1, 2][0], {a: 1}.a
func (p *Parser) parseAccessors(left CompletedMarker) CompletedMarker {
	for {
		switch {
		case p.at(grit.KindPeriod) && grit.AnyMapAccessorSubjectKinds.Contains(left.Kind()):
			m := left.precede(p)
			p.advance()
			switch {
			case p.at(grit.KindDollarIdent):
				p.parseVariable()
			case p.at(grit.KindIdent) || grit.IsKeyword(p.kind()):
				p.parseNameAllowKeyword()
			default:
				p.err(diag.SynExpectName, "expected a key after '.', got "+describe(p.peek()))
			}
			left = m.complete(p, grit.KindMapAccessor)
		case p.at(grit.KindLBrack) && grit.AnyListAccessorSubjectKinds.Contains(left.Kind()):
			m := left.precede(p)
			open := p.advance().Span
			switch p.kind() {
			case grit.KindInt:
				p.wrapToken(grit.KindIntLiteral)
			case grit.KindNegativeInt:
				p.wrapToken(grit.KindNegativeIntLiteral)
			case grit.KindDollarIdent:
				p.parseContainer()
			default:
				p.err(diag.SynExpectLiteral, "expected an index after '[', got "+describe(p.peek()))
			}
			p.expectClose(grit.KindRBrack, open)
			left = m.complete(p, grit.KindListAccessor)
		default:
			return left
		}
	}
}

// parsePrimary выбирает по первому токену вид паттерна.
func (p *Parser) parsePrimary() (CompletedMarker, bool) {
	switch p.kind() {
	case grit.KindNotKw, grit.KindBang:
		m := p.start()
		p.wrapToken(grit.KindNot)
		p.expectPattern("'not'")
		return m.complete(p, grit.KindPatternNot), true
	case grit.KindOrKw:
		return p.parseKeywordBlock(grit.KindPatternOr), true
	case grit.KindOrelseKw:
		return p.parseKeywordBlock(grit.KindPatternOrElse), true
	case grit.KindAnyKw:
		return p.parseKeywordBlock(grit.KindPatternAny), true
	case grit.KindAndKw:
		return p.parseKeywordBlock(grit.KindPatternAnd), true
	case grit.KindSequentialKw:
		return p.parseKeywordBlock(grit.KindSequential), true
	case grit.KindMultifileKw:
		return p.parseKeywordBlock(grit.KindFiles), true
	case grit.KindMaybeKw:
		return p.parseKeywordMaybeCurly(grit.KindPatternMaybe), true
	case grit.KindSomeKw:
		return p.parseKeywordMaybeCurly(grit.KindSome), true
	case grit.KindEveryKw:
		return p.parseKeywordMaybeCurly(grit.KindEvery), true
	case grit.KindIncludesKw:
		return p.parseKeywordMaybeCurly(grit.KindPatternIncludes), true
	case grit.KindContainsKw:
		m := p.start()
		p.advance()
		p.expectMaybeCurly("'contains'")
		p.parseUntilClause()
		return m.complete(p, grit.KindPatternContains), true
	case grit.KindWithinKw:
		m := p.start()
		p.advance()
		p.expectMaybeCurly("'within'")
		p.parseUntilClause()
		return m.complete(p, grit.KindWithin), true
	case grit.KindAfterKw, grit.KindBeforeKw:
		kind := grit.KindPatternAfter
		if p.at(grit.KindBeforeKw) {
			kind = grit.KindPatternBefore
		}
		m := p.start()
		kw := p.advance()
		p.expectPattern("'" + kw.Text + "'")
		return m.complete(p, kind), true
	case grit.KindIfKw:
		return p.parsePatternIfElse(), true
	case grit.KindBubbleKw:
		return p.parseBubble(), true
	case grit.KindLikeKw:
		return p.parseLike(), true
	case grit.KindPeriod:
		return p.wrapToken(grit.KindDot), true
	case grit.KindDollarUnderscore:
		return p.wrapToken(grit.KindUnderscore), true
	case grit.KindDollarIdent:
		return p.parseVariable()
	case grit.KindRegex, grit.KindSnippetRegex:
		return p.parseRegexPattern(), true
	case grit.KindLParen:
		m := p.start()
		open := p.advance().Span
		p.expectPattern("'('")
		p.expectClose(grit.KindRParen, open)
		return m.complete(p, grit.KindBracketedPattern), true
	case grit.KindIdent:
		switch p.nth(1) {
		case grit.KindLParen:
			return p.parseCall(grit.KindNodeLike), true
		case grit.KindLBrack:
			return p.parseList(), true
		}
		m := p.start()
		p.parseName()
		p.err(diag.SynExpectPattern, "a bare name is not a pattern; expected '(' after it, got "+describe(p.peek()))
		return m.complete(p, grit.KindBogusPattern), true
	}
	return p.parseLiteral()
}

// parseKeywordBlock: kw { p1, p2 }
func (p *Parser) parseKeywordBlock(kind syntax.Kind) CompletedMarker {
	m := p.start()
	kw := p.advance()
	if !p.at(grit.KindLCurly) {
		p.err(diag.SynExpectToken, "expected '{' after '"+kw.Text+"', got "+describe(p.peek()))
		return m.complete(p, kind)
	}
	open := p.advance().Span
	p.parsePatternList(grit.KindPatternList, grit.KindRCurly)
	p.expectClose(grit.KindRCurly, open)
	return m.complete(p, kind)
}

func (p *Parser) parseKeywordMaybeCurly(kind syntax.Kind) CompletedMarker {
	m := p.start()
	kw := p.advance()
	p.expectMaybeCurly("'" + kw.Text + "'")
	return m.complete(p, kind)
}

// parseMaybeCurly: { pattern } | pattern
func (p *Parser) parseMaybeCurly() (CompletedMarker, bool) {
	if !p.at(grit.KindLCurly) {
		return p.parsePattern()
	}
	m := p.start()
	open := p.advance().Span
	p.expectPattern("'{'")
	p.expectClose(grit.KindRCurly, open)
	return m.complete(p, grit.KindCurlyPattern), true
}

func (p *Parser) expectMaybeCurly(after string) bool {
	if _, ok := p.parseMaybeCurly(); ok {
		return true
	}
	p.err(diag.SynExpectPattern, "expected a pattern after "+after+", got "+describe(p.peek()))
	return false
}

func (p *Parser) parseUntilClause() {
	if !p.at(grit.KindUntilKw) {
		return
	}
	m := p.start()
	p.advance()
	p.expectPattern("'until'")
	m.complete(p, grit.KindPatternUntilClause)
}

// parsePatternIfElse: if (predicate) pattern else pattern
func (p *Parser) parsePatternIfElse() CompletedMarker {
	m := p.start()
	p.advance() // if
	p.parseCondition()
	p.expectMaybeCurly("the condition")
	if p.at(grit.KindElseKw) {
		e := p.start()
		p.advance()
		p.expectMaybeCurly("'else'")
		e.complete(p, grit.KindPatternElseClause)
	}
	return m.complete(p, grit.KindPatternIfElse)
}

// parseCondition: '(' predicate ')'
func (p *Parser) parseCondition() {
	if !p.at(grit.KindLParen) {
		p.err(diag.SynExpectToken, "expected '(' after 'if', got "+describe(p.peek()))
		return
	}
	open := p.advance().Span
	if _, ok := p.parsePredicate(); !ok {
		p.err(diag.SynExpectPredicate, "expected a condition, got "+describe(p.peek()))
	}
	p.expectClose(grit.KindRParen, open)
}

// parseBubble: bubble($a, $b)? pattern
func (p *Parser) parseBubble() CompletedMarker {
	m := p.start()
	p.advance() // bubble
	if p.isBubbleScope() {
		s := p.start()
		open := p.advance().Span
		p.parseVariableList(grit.KindVariableList, grit.KindRParen)
		p.expectClose(grit.KindRParen, open)
		s.complete(p, grit.KindBubbleScope)
	}
	p.expectMaybeCurly("'bubble'")
	return m.complete(p, grit.KindBubble)
}

// isBubbleScope отличает bubble($a) pattern от bubble ($a).
func (p *Parser) isBubbleScope() bool {
	if !p.at(grit.KindLParen) {
		return false
	}
	i := 1
	for {
		switch p.nth(i) {
		case grit.KindDollarIdent, grit.KindComma:
			i++
			continue
		case grit.KindRParen:
			next := p.nth(i + 1)
			return next != grit.KindEOF && next != grit.KindComma && !closers.Contains(next) &&
				next != grit.KindFatArrow && next != grit.KindWhereKw && next != grit.KindAsKw
		}
		return false
	}
}

// parseLike: like(0.9)? { pattern }
func (p *Parser) parseLike() CompletedMarker {
	m := p.start()
	p.advance() // like
	if p.at(grit.KindLParen) {
		t := p.start()
		open := p.advance().Span
		p.expectPattern("'('")
		p.expectClose(grit.KindRParen, open)
		t.complete(p, grit.KindLikeThreshold)
	}
	if p.at(grit.KindLCurly) {
		open := p.advance().Span
		p.expectPattern("'{'")
		p.expectClose(grit.KindRCurly, open)
	} else {
		p.err(diag.SynExpectToken, "expected '{' after 'like', got "+describe(p.peek()))
	}
	return m.complete(p, grit.KindLike)
}

// parseRegexPattern: r"a(.+)"($x)
func (p *Parser) parseRegexPattern() CompletedMarker {
	m := p.start()
	if p.at(grit.KindRegex) {
		p.wrapToken(grit.KindRegexLiteral)
	} else {
		p.wrapToken(grit.KindSnippetRegexLiteral)
	}
	if p.at(grit.KindLParen) && (p.nth(1) == grit.KindDollarIdent || p.nth(1) == grit.KindRParen) {
		v := p.start()
		open := p.advance().Span
		p.parseVariableList(grit.KindPatternArgList, grit.KindRParen)
		p.expectClose(grit.KindRParen, open)
		v.complete(p, grit.KindRegexPatternVariables)
	}
	return m.complete(p, grit.KindRegexPattern)
}

// parseCall: name(arg, key = pattern) as NodeLike or PredicateCall.
func (p *Parser) parseCall(kind syntax.Kind) CompletedMarker {
	m := p.start()
	p.parseName()
	open := p.advance().Span // (
	p.parseSeparatedList(listSpec{
		kind:     grit.KindNamedArgList,
		bogus:    grit.KindBogusNamedArg,
		closer:   grit.KindRParen,
		recovery: definitionStart,
		what:     "an argument",
		code:     diag.SynExpectPattern,
	}, p.parseNamedArg)
	p.expectClose(grit.KindRParen, open)
	return m.complete(p, kind)
}

// parseNamedArg: key = pattern | pattern. Keywords may serve as keys.
func (p *Parser) parseNamedArg() (CompletedMarker, bool) {
	if (p.at(grit.KindIdent) || grit.IsKeyword(p.kind())) && p.nth(1) == grit.KindEq {
		m := p.start()
		p.parseNameAllowKeyword()
		p.advance() // =
		p.expectPattern("'='")
		return m.complete(p, grit.KindNamedArg), true
	}
	return p.parsePattern()
}

// parsePatternList parses patterns up to closer.
func (p *Parser) parsePatternList(kind, closer syntax.Kind) CompletedMarker {
	return p.parseSeparatedList(listSpec{
		kind:     kind,
		bogus:    grit.KindBogusPattern,
		closer:   closer,
		recovery: definitionStart,
		what:     "a pattern",
		code:     diag.SynExpectPattern,
	}, p.parsePattern)
}

func (p *Parser) parseAnnotation() {
	if p.at(grit.KindAtIdent) {
		p.wrapToken(grit.KindAnnotation)
	}
}

func (p *Parser) parseVariable() (CompletedMarker, bool) {
	if !p.at(grit.KindDollarIdent) {
		return CompletedMarker{}, false
	}
	return p.wrapToken(grit.KindVariable), true
}

// parseContainer: $x followed by accessors.
func (p *Parser) parseContainer() (CompletedMarker, bool) {
	v, ok := p.parseVariable()
	if !ok {
		return v, false
	}
	return p.parseAccessors(v), true
}

func (p *Parser) parseName() (CompletedMarker, bool) {
	if !p.at(grit.KindIdent) {
		return CompletedMarker{}, false
	}
	return p.wrapToken(grit.KindName), true
}

// parseNameAllowKeyword parses a name where a keyword is read as an identifier.
func (p *Parser) parseNameAllowKeyword() CompletedMarker {
	m := p.start()
	if p.at(grit.KindIdent) {
		p.advance()
	} else {
		p.advanceAs(grit.KindIdent)
	}
	return m.complete(p, grit.KindName)
}
