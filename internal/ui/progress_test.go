package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/biomejs/biome-sub001/internal/driver"
)

func TestProgressModelTracksFiles(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("check", []string{"a.grit", "b.grit"}, events).(*progressModel)

	steps := []driver.Event{
		{File: "a.grit", Stage: driver.StageParse, Status: driver.StatusWorking},
		{File: "b.grit", Stage: driver.StageLint, Status: driver.StatusWorking},
		{File: "a.grit", Status: driver.StatusDone, Elapsed: 3 * time.Millisecond},
		{File: "b.grit", Status: driver.StatusError},
		// после завершения статус не меняется
		{File: "a.grit", Stage: driver.StageParse, Status: driver.StatusWorking},
		{File: "unknown.grit", Status: driver.StatusDone},
	}
	for _, ev := range steps {
		m.applyEvent(ev)
	}
	if m.rows[0].status != driver.StatusDone || m.rows[1].status != driver.StatusError {
		t.Fatalf("rows = %+v", m.rows)
	}
	if m.finished != 2 || m.failed != 1 {
		t.Fatalf("finished = %d, failed = %d", m.finished, m.failed)
	}
	if got := m.rows[1].label(); got != "error" {
		t.Fatalf("label of failed row = %q", got)
	}
	m.Update(closedMsg{})
	view := m.View()
	for _, want := range []string{"done: check 2/2, 1 with errors", "a.grit 3ms", "b.grit"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short.grit", 20); got != "short.grit" {
		t.Fatalf("truncate = %q", got)
	}
	if got := truncate("very/long/path/to/file.grit", 10); got != "very/long…" {
		t.Fatalf("truncate = %q", got)
	}
}

func TestRunStageLabel(t *testing.T) {
	m := NewProgressModel("check", []string{"a.grit"}, nil).(*progressModel)
	m.applyEvent(driver.Event{Stage: driver.StageParse, Status: driver.StatusWorking})
	if !strings.Contains(m.header(), "(parsing)") {
		t.Fatalf("header = %q", m.header())
	}
	m.applyEvent(driver.Event{File: "a.grit", Stage: driver.StageLint, Status: driver.StatusWorking})
	if got := m.rows[0].label(); got != "linting" {
		t.Fatalf("row label = %q", got)
	}
}
