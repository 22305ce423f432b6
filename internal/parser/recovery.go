package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

var (
	openers = syntax.KindSetOf(grit.KindLParen, grit.KindLCurly, grit.KindLBrack)
	closers = syntax.KindSetOf(grit.KindRParen, grit.KindRCurly, grit.KindRBrack)

	definitionStart = syntax.KindSetOf(grit.KindPatternKw, grit.KindPredicateKw, grit.KindFunctionKw, grit.KindPrivateKw)
	languageNames   = syntax.KindSetOf(grit.KindJsKw, grit.KindCssKw, grit.KindJsonKw, grit.KindGritKw, grit.KindHtmlKw)
	flavorKinds     = syntax.KindSetOf(grit.KindTypescriptKw, grit.KindJsxKw, grit.KindJsDoNotUseKw)
)

// wrapUntil consumes tokens into a node of kind until a token of stop, an
// unbalanced closer or EOF. Nothing is emitted when the current token already
// stops the run.
func (p *Parser) wrapUntil(kind syntax.Kind, stop syntax.KindSet) (CompletedMarker, bool) {
	if p.atEOF() || p.atSet(stop) || p.atSet(closers) {
		return CompletedMarker{}, false
	}
	m := p.start()
	p.skipUntil(stop)
	return m.complete(p, kind), true
}

// skipUntil съедает токены до stop на нулевой глубине скобок; вложенные
// скобки пропускаются целиком.
func (p *Parser) skipUntil(stop syntax.KindSet) {
	depth := 0
	for !p.atEOF() {
		k := p.kind()
		if depth == 0 && (stop.Contains(k) || closers.Contains(k)) {
			return
		}
		switch {
		case openers.Contains(k):
			depth++
		case closers.Contains(k):
			depth--
		}
		p.advance()
	}
}

// wrapToken wraps exactly one token into a node of kind.
func (p *Parser) wrapToken(kind syntax.Kind) CompletedMarker {
	m := p.start()
	p.advance()
	return m.complete(p, kind)
}

// listSpec describes a separated list and how it recovers.
type listSpec struct {
	kind     syntax.Kind    // вид списка
	bogus    syntax.Kind    // bogus-вариант элемента; Tombstone - пустой слот
	closer   syntax.Kind    // закрывающий токен
	recovery syntax.KindSet // не заворачиваем эти токены в bogus
	what     string         // для сообщений: "a pattern", "an argument"
	code     diag.Code
}

// parseSeparatedList parses item (',' item)* ','? up to the closer.
//
// A comma without an item before it becomes an empty bogus item, or an empty
// slot for lists whose element has no bogus variant. Tokens that do not start
// an item are wrapped into the bogus variant up to the next comma or closer.
// Two items without a comma between them merge into one bogus item.
func (p *Parser) parseSeparatedList(spec listSpec, item func() (CompletedMarker, bool)) CompletedMarker {
	m := p.start()
	stop := spec.recovery.Insert(spec.closer).Insert(grit.KindComma)
	for !p.at(spec.closer) && !p.atEOF() {
		if p.at(grit.KindComma) {
			p.missingItem(spec)
			p.advance()
			continue
		}
		last, ok := item()
		if !ok {
			if p.atSet(spec.recovery) {
				break
			}
			p.err(spec.code, "expected "+spec.what+", got "+describe(p.peek()))
			if last, ok = p.wrapUntil(p.bogusOf(spec), stop); !ok {
				break
			}
		}
		if p.eat(grit.KindComma) {
			continue
		}
		if p.at(spec.closer) || p.atEOF() || p.atSet(spec.recovery) || p.atSet(closers) {
			break
		}
		// элементы без запятой: склеиваем хвост с предыдущим элементом
		p.err(diag.SynExpectToken, "expected ',' or '"+grit.TokenText(spec.closer)+"', got "+describe(p.peek()))
		bm := last.precede(p)
		p.skipUntil(stop)
		bm.complete(p, p.bogusOf(spec))
		if !p.eat(grit.KindComma) {
			break
		}
	}
	return m.complete(p, spec.kind)
}

func (p *Parser) bogusOf(spec listSpec) syntax.Kind {
	if spec.bogus == syntax.Tombstone {
		return grit.KindBogus
	}
	return spec.bogus
}

func (p *Parser) missingItem(spec listSpec) {
	p.err(diag.SynMissingListItem, "expected "+spec.what+" before ','")
	if spec.bogus == syntax.Tombstone {
		p.missing()
		return
	}
	p.start().complete(p, spec.bogus)
}
