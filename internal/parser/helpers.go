package parser

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

func (p *Parser) peek() token.Token { return p.toks[p.pos] }

func (p *Parser) kind() syntax.Kind { return p.toks[p.pos].Kind }

// nth: вид токена на n позиций вперёд; за концом всегда EOF
func (p *Parser) nth(n int) syntax.Kind {
	i := p.pos + n
	if i >= len(p.toks) {
		i = len(p.toks) - 1
	}
	return p.toks[i].Kind
}

func (p *Parser) at(k syntax.Kind) bool { return p.kind() == k }

func (p *Parser) atSet(s syntax.KindSet) bool { return s.Contains(p.kind()) }

func (p *Parser) atEOF() bool { return p.at(grit.KindEOF) }

// advance: съедает текущий токен и обновляет lastSpan. EOF съедается только bumpEOF.
func (p *Parser) advance() token.Token {
	tok := p.toks[p.pos]
	if tok.IsEOF() {
		return tok
	}
	p.events = append(p.events, event{kind: evToken})
	p.pos++
	p.lastSpan = tok.Span
	return tok
}

// advanceAs съедает токен с другим видом (ключевое слово в роли имени).
func (p *Parser) advanceAs(kind syntax.Kind) token.Token {
	tok := p.advance()
	if !tok.IsEOF() {
		p.events[len(p.events)-1].remap = kind
	}
	return tok
}

func (p *Parser) bumpEOF() {
	if !p.atEOF() {
		p.wrapUntil(grit.KindBogusDefinition, syntax.KindSet{})
	}
	p.events = append(p.events, event{kind: evToken})
}

func (p *Parser) eat(k syntax.Kind) bool {
	if p.at(k) {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) missing() {
	p.events = append(p.events, event{kind: evMissing})
}

// getDiagnosticSpan: возвращает лучший span для диагностики
// На EOF указываем на позицию сразу после последнего съеденного токена
func (p *Parser) getDiagnosticSpan() source.Span {
	tok := p.peek()
	if tok.IsEOF() && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return tok.Span
}

// expect: ожидаем конкретный токен. Если нет: репортим и возвращаем false.
func (p *Parser) expect(k syntax.Kind, code diag.Code, msg string) bool {
	if p.eat(k) {
		return true
	}
	p.err(code, msg+", got "+describe(p.peek()))
	return false
}

// expectClose is expect for a closing delimiter; the diagnostic points back at
// the opener and offers to insert the closer.
func (p *Parser) expectClose(k syntax.Kind, open source.Span) bool {
	if p.eat(k) {
		return true
	}
	limited := p.opts.Enough()
	p.opts.CurrentErrors++
	if p.opts.Reporter == nil || limited {
		return false
	}
	text := grit.TokenText(k)
	insert := source.Span{File: p.file.ID, Start: p.lastSpan.End, End: p.lastSpan.End}
	diag.ReportError(p.opts.Reporter, diag.SynUnclosedDelimiter, p.getDiagnosticSpan(),
		"expected '"+text+"', got "+describe(p.peek())).
		WithNote(open, "delimiter opened here").
		WithFix("insert '"+text+"'", diag.TextEdit{Span: insert, NewText: text}).
		Emit()
	return false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	limited := p.opts.Enough()
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Reporter == nil || limited {
		return false // нет reporter или достигли максимального количества ошибок
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	return true
}

func describe(tok token.Token) string {
	switch {
	case tok.IsEOF():
		return "end of file"
	case tok.IsError():
		return "invalid token"
	}
	return "'" + tok.Text + "'"
}
