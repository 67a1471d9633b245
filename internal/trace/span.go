package trace

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"
)

var (
	seq    atomic.Uint64
	spanID atomic.Uint64
)

// NextSeq returns the next global sequence number.
func NextSeq() uint64 { return seq.Add(1) }

// NextSpanID returns a process-unique span ID; 0 is never returned.
func NextSpanID() uint64 { return spanID.Add(1) }

// goid reads the goroutine number from the first line of runtime.Stack
// ("goroutine 17 [running]:"). 0 means unknown.
func goid() uint64 {
	var buf [64]byte
	n := runtime.Stack(buf[:], false)
	var id uint64
	if _, err := fmt.Sscanf(string(buf[:n]), "goroutine %d", &id); err != nil {
		return 0
	}
	return id
}

// Span is an open span. A span from a disabled tracer is inert: End returns 0
// and nothing is emitted.
type Span struct {
	tracer  Tracer
	ev      Event // шаблон для события конца
	started time.Time
}

var inert = Span{tracer: Nop}

func live(t Tracer, scope Scope) bool {
	return t != nil && t.Enabled() && t.Level().ShouldEmit(scope)
}

// Begin opens a span under parent (0 for a root span) and emits its begin event.
func Begin(t Tracer, scope Scope, name string, parent uint64) *Span {
	if !live(t, scope) {
		sp := inert
		return &sp
	}
	sp := &Span{
		tracer:  t,
		started: time.Now(),
		ev: Event{
			Scope:    scope,
			SpanID:   NextSpanID(),
			ParentID: parent,
			GID:      goid(),
			Name:     name,
		},
	}
	begin := sp.ev
	begin.Time, begin.Kind = sp.started, KindSpanBegin
	t.Emit(&begin)
	return sp
}

// End emits the end event with detail and returns how long the span was open.
func (s *Span) End(detail string) time.Duration {
	if s == nil || s.ev.SpanID == 0 {
		return 0
	}
	end := s.ev
	end.Time, end.Kind, end.Detail = time.Now(), KindSpanEnd, detail
	s.tracer.Emit(&end)
	return end.Time.Sub(s.started)
}

// WithExtra attaches key=value to the end event.
func (s *Span) WithExtra(key, value string) *Span {
	if s == nil || s.ev.SpanID == 0 {
		return s
	}
	if s.ev.Extra == nil {
		s.ev.Extra = make(map[string]string, 2)
	}
	s.ev.Extra[key] = value
	return s
}

func (s *Span) ID() uint64 {
	if s == nil {
		return 0
	}
	return s.ev.SpanID
}

// Point emits an instant event under parent.
func Point(t Tracer, scope Scope, name, detail string, parent uint64) {
	if !live(t, scope) {
		return
	}
	t.Emit(&Event{
		Time:     time.Now(),
		Kind:     KindPoint,
		Scope:    scope,
		SpanID:   NextSpanID(),
		ParentID: parent,
		GID:      goid(),
		Name:     name,
		Detail:   detail,
	})
}
