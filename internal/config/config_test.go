package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func writeFile(t *testing.T, fs afero.Fs, path, content string) {
	t.Helper()
	if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestLoadDefaultsWithoutFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg, err := Load(fs, "", "/work/sub")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != "" {
		t.Fatalf("Source = %q", cfg.Source)
	}
	def := Default()
	if cfg.Check != def.Check || cfg.Output != def.Output || cfg.Trace != def.Trace {
		t.Fatalf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadFindsFileUpward(t *testing.T) {
	fs := afero.NewMemMapFs()
	path := filepath.Join("/work", FileName)
	writeFile(t, fs, path, `
[check]
max_diagnostics = 5
invariants = true

[output]
format = "json"

[lint]
rules = ["trailing-commas", "bogus"]
`)
	cfg, err := Load(fs, "", "/work/a/b")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Source != path {
		t.Fatalf("Source = %q, want %q", cfg.Source, path)
	}
	if cfg.Check.MaxDiagnostics != 5 || !cfg.Check.Invariants || cfg.Check.DebugDepth != 16 {
		t.Fatalf("check = %+v", cfg.Check)
	}
	if cfg.Output.Format != "json" || cfg.Output.Color != "auto" {
		t.Fatalf("output = %+v", cfg.Output)
	}
	if strings.Join(cfg.Lint.Rules, ",") != "trailing-commas,bogus" {
		t.Fatalf("rules = %v", cfg.Lint.Rules)
	}
}

func TestLoadRejectsBadFiles(t *testing.T) {
	tests := []struct {
		content string
		want    string
	}{
		{"[check]\njobz = 2\n", "unknown keys: check.jobz"},
		{"[output]\ncolor = \"sometimes\"\n", "output.color"},
		{"[trace]\nlevel = \"loud\"\n", "trace.level"},
		{"[lint]\nrules = [\"nope\"]\n", "lint.rules"},
		{"[check\n", "failed to parse TOML"},
	}
	for _, tt := range tests {
		fs := afero.NewMemMapFs()
		writeFile(t, fs, "/c/grit.toml", tt.content)
		_, err := Load(fs, "/c/grit.toml", "")
		if err == nil || !strings.Contains(err.Error(), tt.want) {
			t.Fatalf("Load(%q) error = %v, want %q", tt.content, err, tt.want)
		}
	}
	if _, err := Load(afero.NewMemMapFs(), "/missing.toml", ""); err == nil {
		t.Fatalf("explicit missing file accepted")
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		"GRIT_JOBS":        "3",
		"GRIT_INVARIANTS":  "true",
		"GRIT_COLOR":       "off",
		"GRIT_TRACE_LEVEL": "phase",
		"GRIT_LINT_RULES":  "bogus, nfc-names",
	}
	cfg := Default()
	cfg.Output.Format = "json"
	if err := cfg.ApplyEnv(func(k string) (string, bool) { v, ok := env[k]; return v, ok }); err != nil {
		t.Fatalf("ApplyEnv: %v", err)
	}
	if cfg.Jobs() != 3 || !cfg.Check.Invariants {
		t.Fatalf("check = %+v", cfg.Check)
	}
	// незаданные переменные не трогают значения
	if cfg.Output.Format != "json" || cfg.Output.Color != "off" || cfg.Check.MaxDiagnostics != 100 {
		t.Fatalf("output = %+v, check = %+v", cfg.Output, cfg.Check)
	}
	if cfg.Trace.Level != "phase" || strings.Join(cfg.Lint.Rules, "|") != "bogus|nfc-names" {
		t.Fatalf("trace = %+v, rules = %v", cfg.Trace, cfg.Lint.Rules)
	}

	bad := Default()
	if err := bad.ApplyEnv(func(k string) (string, bool) { return "x", k == "GRIT_JOBS" }); err == nil {
		t.Fatalf("non-numeric GRIT_JOBS accepted")
	}
}
