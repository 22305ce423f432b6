package trace

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
)

func TestLevelFiltersScopes(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeDriver, false},
		{LevelError, ScopeDriver, false},
		{LevelPhase, ScopePhase, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeNode, false},
		{LevelDebug, ScopeNode, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v", tt.level, tt.scope, got)
		}
	}
	if _, err := ParseLevel("loud"); err == nil {
		t.Fatalf("ParseLevel accepted an unknown level")
	}
}

func TestRingWrapsInOrder(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		r.Emit(&Event{Kind: KindPoint, Scope: ScopeFile, Name: name})
	}
	snap := r.Snapshot()
	if len(snap) != 3 {
		t.Fatalf("snapshot holds %d events", len(snap))
	}
	for i, want := range []string{"c", "d", "e"} {
		if snap[i].Name != want {
			t.Fatalf("snapshot[%d] = %q, want %q", i, snap[i].Name, want)
		}
	}
	if snap[0].Seq >= snap[1].Seq || snap[1].Seq >= snap[2].Seq {
		t.Fatalf("sequence numbers not increasing: %d %d %d", snap[0].Seq, snap[1].Seq, snap[2].Seq)
	}
}

func TestRingAtErrorLevelKeepsPhases(t *testing.T) {
	r := NewRingTracer(8, LevelError)
	r.Emit(&Event{Kind: KindPoint, Scope: ScopePhase, Name: "parse"})
	r.Emit(&Event{Kind: KindPoint, Scope: ScopeNode, Name: "node"})
	if snap := r.Snapshot(); len(snap) != 1 || snap[0].Name != "parse" {
		t.Fatalf("snapshot = %+v", snap)
	}
}

func TestSpansNestThroughContext(t *testing.T) {
	var buf bytes.Buffer
	tr := NewStreamTracer(&buf, LevelDetail, FormatNDJSON)
	ctx := WithTracer(context.Background(), tr)

	run, ctx := StartSpan(ctx, ScopeDriver, "check")
	file, fctx := StartSpan(ctx, ScopeFile, "file:a.grit")
	Point(fctx, ScopeFile, "cache", "hit")
	// узлы отфильтрованы уровнем
	Point(fctx, ScopeNode, "node", "")
	file.WithExtra("tokens", "12").End("")
	run.End("ok")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 5 {
		t.Fatalf("got %d events:\n%s", len(lines), buf.String())
	}
	begin := gjson.Parse(lines[1])
	if begin.Get("name").String() != "file:a.grit" || begin.Get("parent_id").Uint() != run.ID() {
		t.Fatalf("file span = %s", lines[1])
	}
	point := gjson.Parse(lines[2])
	if point.Get("kind").String() != "point" || point.Get("parent_id").Uint() != file.ID() {
		t.Fatalf("point = %s", lines[2])
	}
	end := gjson.Parse(lines[3])
	if end.Get("extra.tokens").String() != "12" || end.Get("scope").String() != "file" {
		t.Fatalf("file end = %s", lines[3])
	}
	if gjson.Parse(lines[4]).Get("detail").String() != "ok" {
		t.Fatalf("driver end = %s", lines[4])
	}
}

func TestNopWhenDisabled(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil || tr.Enabled() {
		t.Fatalf("New(off) = %v, %v", tr, err)
	}
	s, ctx := StartSpan(WithTracer(context.Background(), tr), ScopeDriver, "x")
	if s.ID() != 0 || SpanFromContext(ctx) != nil {
		t.Fatalf("disabled tracer produced a span")
	}
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must give Nop")
	}
}

func TestNewWritesToFs(t *testing.T) {
	mem := afero.NewMemMapFs()
	tr, err := New(Config{Level: LevelPhase, Mode: ModeBoth, OutputPath: "/tmp/run.ndjson", Fs: mem})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	Begin(tr, ScopePhase, "lex", 0).End("")
	if err := tr.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	data, err := afero.ReadFile(mem, "/tmp/run.ndjson")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(string(data), "\n"); n != 2 {
		t.Fatalf("wrote %d events: %s", n, data)
	}
	first, _, _ := strings.Cut(string(data), "\n")
	if gjson.Get(first, "name").String() != "lex" {
		t.Fatalf("first event = %s", data)
	}
	ring, ok := Ring(tr)
	if !ok || len(ring.Snapshot()) != 2 {
		t.Fatalf("ring of ModeBoth missing or empty")
	}
}

func TestTextFormat(t *testing.T) {
	ev := &Event{Kind: KindSpanEnd, Scope: ScopePhase, Name: "parse", Detail: "ok", Extra: map[string]string{"b": "2", "a": "1"}}
	got := string(FormatEvent(ev, FormatText))
	if !strings.Contains(got, "← parse (ok) {a=1, b=2}") {
		t.Fatalf("text = %q", got)
	}
}

func TestSpanEndsOnce(t *testing.T) {
	r := NewRingTracer(8, LevelDebug)
	before := OpenSpans()
	s := Begin(r, ScopeFile, "file:a.grit", 0)
	if OpenSpans() != before+1 {
		t.Fatalf("open spans = %d, want %d", OpenSpans(), before+1)
	}
	s.End("")
	s.End("again")
	if OpenSpans() != before {
		t.Fatalf("open spans after End = %d", OpenSpans())
	}
	if n := len(r.Snapshot()); n != 2 {
		t.Fatalf("ring holds %d events, want begin and one end", n)
	}
}

func TestHeartbeatReportsOpenSpans(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	h := StartHeartbeat(r, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(r.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	h.Stop()
	snap := r.Snapshot()
	if len(snap) == 0 || snap[0].Kind != KindHeartbeat || !strings.Contains(snap[0].Detail, "open") {
		t.Fatalf("heartbeat events = %+v", snap)
	}
	if StartHeartbeat(Nop, time.Second) != nil {
		t.Fatalf("heartbeat on a disabled tracer")
	}
}
