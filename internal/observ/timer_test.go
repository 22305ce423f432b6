package observ

import (
	"strings"
	"sync"
	"testing"
	"time"
)

func TestTimerAccumulates(t *testing.T) {
	tm := NewTimer()
	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			tm.Observe("parse", time.Millisecond)
			tm.Observe("lex", 2*time.Millisecond)
		}()
	}
	wg.Wait()
	tm.Note("lex", "cached")

	rep := tm.Report()
	if len(rep.Phases) != 2 {
		t.Fatalf("phases = %+v", rep.Phases)
	}
	byName := map[string]PhaseReport{}
	for _, p := range rep.Phases {
		byName[p.Name] = p
	}
	if byName["parse"].Count != 8 || byName["parse"].DurationMS != 8 {
		t.Fatalf("parse = %+v", byName["parse"])
	}
	if byName["lex"].Count != 8 || byName["lex"].Note != "cached" {
		t.Fatalf("lex = %+v", byName["lex"])
	}
	if rep.TotalMS != 24 {
		t.Fatalf("total = %v", rep.TotalMS)
	}
	if s := tm.Summary(); !strings.Contains(s, "// cached") || !strings.Contains(s, "total") {
		t.Fatalf("summary = %q", s)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	tm.Observe("x", time.Second)
	if rep := tm.Report(); len(rep.Phases) != 0 {
		t.Fatalf("nil timer reported %+v", rep)
	}
}
