package parser

import (
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

type eventKind uint8

const (
	evTombstone eventKind = iota // брошенный или уже открытый маркер
	evStart
	evToken
	evMissing
	evFinish
)

// event is one step of the flat parse log replayed into syntax.Builder.
type event struct {
	kind eventKind
	node syntax.Kind
	// parent is the distance to the start event of a node created later with
	// precede; 0 means none.
	parent int
	// remap replaces the token kind (contextual keywords used as names).
	remap syntax.Kind
}

// Marker is an open node whose kind is decided when it completes.
type Marker struct {
	pos int
}

// CompletedMarker is a finished node that can still be wrapped with precede.
type CompletedMarker struct {
	pos  int
	kind syntax.Kind
}

func (p *Parser) start() Marker {
	pos := len(p.events)
	p.events = append(p.events, event{kind: evTombstone})
	return Marker{pos: pos}
}

func (m Marker) complete(p *Parser, kind syntax.Kind) CompletedMarker {
	ev := &p.events[m.pos]
	ev.kind = evStart
	ev.node = kind
	p.events = append(p.events, event{kind: evFinish})
	return CompletedMarker{pos: m.pos, kind: kind}
}

// precede opens a node that will become the parent of c.
func (c CompletedMarker) precede(p *Parser) Marker {
	m := p.start()
	p.events[c.pos].parent = m.pos - c.pos
	return m
}

// Kind returns the kind the marker completed with.
func (c CompletedMarker) Kind() syntax.Kind { return c.kind }

// build replays the events into a green tree. Tokens are consumed in order.
func build(b *syntax.Builder, events []event, toks []token.Token) error {
	ti := 0
	var chain []syntax.Kind
	for i := range events {
		ev := events[i]
		switch ev.kind {
		case evTombstone:
		case evStart:
			// поднимаемся по forward-parent ссылкам, затем открываем от внешнего к внутреннему
			chain = append(chain[:0], ev.node)
			idx, fp := i, ev.parent
			for fp != 0 {
				idx += fp
				chain = append(chain, events[idx].node)
				fp = events[idx].parent
				events[idx].kind = evTombstone
			}
			for j := len(chain) - 1; j >= 0; j-- {
				if grit.Registry.IsBogus(chain[j]) {
					b.StartBogus(chain[j])
				} else {
					b.StartNode(chain[j])
				}
			}
		case evFinish:
			b.FinishNode()
		case evMissing:
			b.Missing()
		case evToken:
			tok := toks[ti]
			ti++
			kind := tok.Kind
			if ev.remap != syntax.Tombstone {
				kind = ev.remap
			}
			if err := b.Token(kind, tok.Text, token.Plain(tok.Leading), token.Plain(tok.Trailing)); err != nil {
				return err
			}
		}
	}
	return b.Err()
}
