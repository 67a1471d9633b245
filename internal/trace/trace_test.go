package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	for _, s := range []string{"off", "error", "phase", "detail", "debug", "DEBUG"} {
		if _, err := ParseLevel(s); err != nil {
			t.Errorf("ParseLevel(%q): %v", s, err)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Error("expected error for unknown level")
	}
}

func TestShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelPhase, ScopePass, true},
		{LevelPhase, ScopeUnit, false},
		{LevelDetail, ScopeUnit, true},
		{LevelDetail, ScopeToken, false},
		{LevelDebug, ScopeToken, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Errorf("%v.ShouldEmit(%v) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestStreamTracer_Text(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatText)

	sp := Begin(tr, ScopePass, "lex", 0)
	Begin(tr, ScopeUnit, "unit:a.c", sp.ID()).WithExtra("tokens", "3").End("ok")
	Point(tr, ScopeToken, "tok", "hidden", sp.ID())
	sp.End("")

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (token point filtered), got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[2], "\u2190 unit:a.c (ok) {tokens=3}") {
		t.Errorf("unexpected unit end line %q", lines[2])
	}
}

func TestStreamTracer_NDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelPhase, FormatNDJSON)
	Begin(tr, ScopeDriver, "tokenize", 0).End("done")

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("bad json %q: %v", line, err)
		}
		if m["name"] != "tokenize" || m["scope"] != "driver" {
			t.Errorf("unexpected event %v", m)
		}
	}
}

func TestRingTracer_Wraps(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for i := 0; i < 5; i++ {
		Point(r, ScopeToken, "p", string(rune('a'+i)), 0)
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("expected 3 events, got %d", len(snap))
	}
	if snap[0].Detail != "c" || snap[2].Detail != "e" {
		t.Errorf("expected oldest-first c..e, got %q..%q", snap[0].Detail, snap[2].Detail)
	}

	var buf bytes.Buffer
	if err := r.Dump(&buf, FormatText); err != nil {
		t.Fatal(err)
	}
	if strings.Count(buf.String(), "\n") != 3 {
		t.Errorf("dump should have 3 lines, got:\n%s", buf.String())
	}
}

func TestNew_ModesAndFindRing(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	ring, ok := FindRing(tr)
	if !ok {
		t.Fatal("both mode should contain a ring")
	}
	Begin(tr, ScopeDriver, "x", 0).End("")
	if len(ring.Snapshot()) != 2 || buf.Len() == 0 {
		t.Errorf("events should reach both ring and stream")
	}

	off, err := New(Config{Level: LevelOff})
	if err != nil || off.Enabled() {
		t.Errorf("off level should yield Nop")
	}
	if _, ok := FindRing(off); ok {
		t.Errorf("Nop has no ring")
	}
}

func TestStartSpan_Parent(t *testing.T) {
	r := NewRingTracer(8, LevelDetail)
	ctx := WithTracer(context.Background(), r)

	ctx, outer := StartSpan(ctx, ScopePass, "lex")
	_, inner := StartSpan(ctx, ScopeUnit, "unit:a.c")
	inner.End("")
	outer.End("")

	snap := r.Snapshot()
	if len(snap) != 4 {
		t.Fatalf("expected 4 events, got %d", len(snap))
	}
	if snap[1].ParentID != outer.ID() {
		t.Errorf("inner span parent = %d, want %d", snap[1].ParentID, outer.ID())
	}

	// без трассировщика span пустой
	_, nop := StartSpan(context.Background(), ScopePass, "lex")
	if nop.ID() != 0 || nop.End("") != 0 {
		t.Errorf("nop span should be inert")
	}
}

func TestRingTracer_PartialAndDefaultSize(t *testing.T) {
	r := NewRingTracer(0, LevelPhase)
	if len(r.buf) != DefaultRingSize {
		t.Fatalf("expected default size %d, got %d", DefaultRingSize, len(r.buf))
	}
	Point(r, ScopePass, "a", "", 0)
	Point(r, ScopeUnit, "filtered", "", 0)
	Point(r, ScopePass, "b", "", 0)
	snap := r.Snapshot()
	if len(snap) != 2 || snap[0].Name != "a" || snap[1].Name != "b" {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if snap[0].Seq >= snap[1].Seq {
		t.Errorf("sequence numbers must grow")
	}
}

func TestSpan_ExtraGoroutineAndNames(t *testing.T) {
	r := NewRingTracer(4, LevelDetail)
	sp := Begin(r, ScopeUnit, "unit", 0).WithExtra("file", "a.c")
	sp.End("done")
	snap := r.Snapshot()
	if len(snap) != 2 {
		t.Fatalf("expected begin and end, got %d", len(snap))
	}
	if snap[0].GID == 0 || snap[0].GID != snap[1].GID {
		t.Errorf("goroutine id should be captured once, got %d/%d", snap[0].GID, snap[1].GID)
	}
	if snap[0].Extra != nil || snap[1].Extra["file"] != "a.c" {
		t.Errorf("extras belong to the end event only: %+v", snap)
	}
	if KindPoint.String() != "point" || Kind(9).String() != "unknown" || ScopeToken.String() != "token" {
		t.Errorf("unexpected names")
	}
	if m, err := ParseMode("RING"); err != nil || m != ModeRing || m.String() != "ring" {
		t.Errorf("ParseMode(RING) = %v, %v", m, err)
	}
	if _, err := ParseMode(""); err == nil {
		t.Errorf("empty mode must be rejected")
	}
}
