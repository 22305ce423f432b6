package trace

import "time"

// Kind says what an event marks.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	// KindPoint is an instant inside a span.
	KindPoint
	// KindHeartbeat is the periodic liveness event.
	KindHeartbeat
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point", KindHeartbeat: "heartbeat"}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event; smaller scopes are coarser.
type Scope uint8

const (
	// ScopeDriver covers a whole command run.
	ScopeDriver Scope = iota + 1
	// ScopePhase covers lexing, parsing, checking or printing.
	ScopePhase
	// ScopeFile covers the work on one .grit file.
	ScopeFile
	// ScopeNode covers one tree node.
	ScopeNode
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePhase: "phase", ScopeFile: "file", ScopeNode: "node"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64 // выдаёт трейсер при записи
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 у корневых спанов
	GID      uint64
	Name     string // "parse", "file:rules/a.grit"
	Detail   string
	Extra    map[string]string
}
