package prof

import (
	"testing"

	"github.com/spf13/afero"
)

func TestHeapProfile(t *testing.T) {
	mem := afero.NewMemMapFs()
	s, err := Start(mem, Options{Mem: "/prof/heap.pprof"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop: %v", err)
	}
	info, err := mem.Stat("/prof/heap.pprof")
	if err != nil {
		t.Fatalf("heap profile missing: %v", err)
	}
	if info.Size() == 0 {
		t.Fatalf("heap profile is empty")
	}
}

func TestNilSession(t *testing.T) {
	var s *Session
	if err := s.Stop(); err != nil {
		t.Fatalf("Stop on nil session: %v", err)
	}
}
