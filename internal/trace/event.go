package trace

import "time"

// Kind is what an event marks: the start or end of a span, or an instant.
type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
)

var kindNames = [...]string{KindSpanBegin: "begin", KindSpanEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if k > 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Scope is the granularity of an event. Smaller values are coarser, so a
// Level can filter with a single comparison.
type Scope uint8

const (
	ScopeDriver Scope = iota + 1 // одна команда CLI
	ScopePass                    // load, lex, render по всему запуску
	ScopeUnit                    // одна единица трансляции
	ScopeToken                   // отдельные токены, только LevelDebug
)

var scopeNames = [...]string{ScopeDriver: "driver", ScopePass: "pass", ScopeUnit: "unit", ScopeToken: "token"}

func (s Scope) String() string {
	if s > 0 && int(s) < len(scopeNames) {
		return scopeNames[s]
	}
	return "unknown"
}

// Event is one trace record. Seq is stamped by the tracer that stores it.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64 // 0 у корневых
	GID      uint64 // горутина, в которой открыт span
	Name     string // "tokenize", "lex_unit", имя вида токена
	Detail   string
	Extra    map[string]string
}
