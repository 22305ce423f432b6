package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"

	"github.com/biomejs/biome-sub001/internal/config"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/driver"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/grit"
)

func testFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("grit", pflag.ContinueOnError)
	fs.String("color", "auto", "")
	fs.String("path-mode", "auto", "")
	fs.String("trace", "", "")
	fs.String("trace-level", "off", "")
	fs.String("trace-mode", "stream", "")
	fs.Int("max-diagnostics", 100, "")
	if err := fs.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return fs
}

func TestApplyFlags(t *testing.T) {
	cfg := config.Default()
	cfg.Output.PathMode = "basename"
	flags := testFlags(t, "--color=off", "--trace=run.ndjson", "--max-diagnostics=7")
	if err := applyFlags(&cfg, flags); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Output.Color != "off" || cfg.Check.MaxDiagnostics != 7 {
		t.Fatalf("cfg = %+v", cfg)
	}
	// флаг не задан, значение из файла сохраняется
	if cfg.Output.PathMode != "basename" {
		t.Fatalf("path mode = %q", cfg.Output.PathMode)
	}
	if cfg.Trace.Output != "run.ndjson" || cfg.Trace.Level != "phase" {
		t.Fatalf("trace = %+v", cfg.Trace)
	}

	cfg = config.Default()
	if err := applyFlags(&cfg, testFlags(t, "--trace=-", "--trace-level=debug")); err != nil {
		t.Fatalf("applyFlags: %v", err)
	}
	if cfg.Trace.Level != "debug" {
		t.Fatalf("trace level = %q", cfg.Trace.Level)
	}
}

func TestReadUIMode(t *testing.T) {
	for in, want := range map[string]uiMode{"": uiModeAuto, "AUTO": uiModeAuto, "on": uiModeOn, " off ": uiModeOff} {
		got, err := readUIMode(in)
		if err != nil || got != want {
			t.Fatalf("readUIMode(%q) = %q, %v", in, got, err)
		}
	}
	if _, err := readUIMode("always"); err == nil {
		t.Fatalf("readUIMode accepted an unknown mode")
	}
}

func TestWriteDiff(t *testing.T) {
	var buf bytes.Buffer
	changes := []driver.Change{{Path: "a.grit", Old: []byte("$x = (1)\nfoo\n"), New: []byte("$x = 1\nfoo\n")}}
	if err := writeDiff(&buf, changes); err != nil {
		t.Fatalf("writeDiff: %v", err)
	}
	want := "--- a.grit\n+++ a.grit\n-$x = (1)\n+$x = 1\n"
	if got := buf.String(); got != want {
		t.Fatalf("diff = %q, want %q", got, want)
	}
}

func TestDescribeLayout(t *testing.T) {
	kind, ok := grit.Registry.Lookup("EQ")
	if !ok {
		t.Fatalf("no EQ kind")
	}
	info, _ := grit.Registry.Info(kind)
	if got := describeLayout(grit.Registry, info); got != `"=" punct` {
		t.Fatalf("layout = %q", got)
	}
	for _, info := range grit.Registry.Kinds() {
		if info.Family.String() == "list" && !strings.HasSuffix(strings.Fields(describeLayout(grit.Registry, info))[0], "*") {
			t.Fatalf("list %s layout = %q", info.Name, describeLayout(grit.Registry, info))
		}
	}
}

func TestWriteApplyResult(t *testing.T) {
	var buf bytes.Buffer
	res := &fix.ApplyResult{
		Applied: []fix.AppliedFix{{
			ID: "lint.redundant-bracket", Title: "remove brackets", PrimaryPath: "a.grit",
			EditCount: 1, Applicability: diag.FixApplicabilityAlwaysSafe,
		}},
		FileChanges: []fix.FileChange{{Path: "a.grit", EditCount: 1}},
		Skipped:     []fix.SkippedFix{{Title: "other", Reason: "overlaps"}},
	}
	if err := writeApplyResult(&buf, res); err != nil {
		t.Fatalf("writeApplyResult: %v", err)
	}
	for _, want := range []string{
		"Applied 1 fix(es):",
		"remove brackets [lint.redundant-bracket] at a.grit (1 edits, always-safe)",
		"  a.grit (1 edits)",
		"other [(unnamed)]: overlaps",
	} {
		if !strings.Contains(buf.String(), want) {
			t.Fatalf("output lacks %q:\n%s", want, buf.String())
		}
	}
}
