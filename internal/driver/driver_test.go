package driver

import (
	"context"
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/tidwall/gjson"
	"go.uber.org/goleak"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/lint"
	"github.com/biomejs/biome-sub001/internal/observ"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func memProject(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fs := afero.NewMemMapFs()
	for path, content := range files {
		if err := afero.WriteFile(fs, path, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", path, err)
		}
	}
	return fs
}

func codes(bag *diag.Bag) []diag.Code {
	var out []diag.Code
	for _, d := range bag.Items() {
		out = append(out, d.Code)
	}
	return out
}

func TestListFiles(t *testing.T) {
	fs := memProject(t, map[string]string{
		"/p/b.grit":        "",
		"/p/a.grit":        "",
		"/p/sub/c.grit":    "",
		"/p/.git/x.grit":   "",
		"/p/readme.md":     "",
		"/other/plain.txt": "",
	})
	got, err := ListFiles(fs, []string{"/p", "/other/plain.txt", "/p/a.grit"})
	if err != nil {
		t.Fatalf("ListFiles: %v", err)
	}
	want := []string{"/other/plain.txt", "/p/a.grit", "/p/b.grit", "/p/sub/c.grit"}
	if !slices.Equal(got, want) {
		t.Fatalf("ListFiles = %v, want %v", got, want)
	}
	if _, err := ListFiles(fs, []string{"/missing"}); err == nil {
		t.Fatalf("missing path accepted")
	}
}

func TestCheckParallel(t *testing.T) {
	fs := memProject(t, map[string]string{
		"/p/a.grit":     "$x = (1)\n",
		"/p/b.grit":     "foo(1,,2)\n",
		"/p/sub/c.grit": "// only a rewrite\n`a` => `b`\n",
	})
	var mu sync.Mutex
	done := map[string]Status{}
	sink := SinkFunc(func(ev Event) {
		mu.Lock()
		defer mu.Unlock()
		if ev.Stage == "" {
			done[ev.File] = ev.Status
		}
	})
	timer := observ.NewTimer()
	res, err := Check(context.Background(), []string{"/p"}, Options{
		Fs:             fs,
		Jobs:           2,
		MaxDiagnostics: 50,
		Lint:           true,
		Rules:          lint.DefaultRules,
		Invariants:     true,
		Timer:          timer,
		Sink:           sink,
	})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(res.Files) != 3 {
		t.Fatalf("files = %d", len(res.Files))
	}
	for _, fr := range res.Files {
		if len(fr.Violations) != 0 {
			t.Fatalf("%s: violations %v", fr.Path, fr.Violations)
		}
		if fr.Root() == nil || fr.Root().Text() != string(fr.File.Content) {
			t.Fatalf("%s: tree does not round-trip", fr.Path)
		}
	}
	if got := codes(res.Files[0].Bag); !slices.Equal(got, []diag.Code{diag.LintRedundantBracket}) {
		t.Fatalf("a.grit codes = %v", got)
	}
	if !slices.Contains(codes(res.Files[1].Bag), diag.LintEmptyListItem) || !res.Files[1].Bag.HasErrors() {
		t.Fatalf("b.grit codes = %v", codes(res.Files[1].Bag))
	}
	if res.Files[2].Bag.Len() != 0 || res.Files[2].Stats.Comments != 1 {
		t.Fatalf("c.grit: %v, stats %+v", codes(res.Files[2].Bag), res.Files[2].Stats)
	}
	if !res.HasErrors() || res.Bag().Len() != res.Files[0].Bag.Len()+res.Files[1].Bag.Len() {
		t.Fatalf("aggregate bag = %v", codes(res.Bag()))
	}
	if done["/p/a.grit"] != StatusDone || done["/p/b.grit"] != StatusError || done["/p/sub/c.grit"] != StatusDone {
		t.Fatalf("final events = %v", done)
	}
	phases := map[string]int{}
	for _, p := range timer.Report().Phases {
		phases[p.Name] = p.Count
	}
	if phases["parse"] != 3 || phases["lint"] != 3 || phases["verify"] != 3 {
		t.Fatalf("phases = %v", phases)
	}
}

func TestCheckReportsLoadErrors(t *testing.T) {
	fs := memProject(t, map[string]string{"/p/a.grit": "$x"})
	res, err := CheckFiles(context.Background(), []string{"/p/a.grit", "/p/gone.grit"}, Options{Fs: fs, MaxDiagnostics: 10})
	if err != nil {
		t.Fatalf("CheckFiles: %v", err)
	}
	if res.Files[1].File != nil || res.Files[1].Root() != nil {
		t.Fatalf("missing file has a tree")
	}
	if got := codes(res.Files[1].Bag); !slices.Equal(got, []diag.Code{diag.IOLoadFileError}) {
		t.Fatalf("codes = %v", got)
	}
}

func TestCheckCancelled(t *testing.T) {
	fs := memProject(t, map[string]string{"/p/a.grit": "$x", "/p/b.grit": "$y"})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Check(ctx, []string{"/p"}, Options{Fs: fs}); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestFixAndFormatWriteThroughFs(t *testing.T) {
	fs := memProject(t, map[string]string{
		"/p/a.grit": "$x = (1)\n",
		"/p/b.grit": "foo(1,,2)\n",
		"/p/c.grit": "[1,2 ,3]\n",
	})
	res, err := Check(context.Background(), []string{"/p"}, Options{Fs: fs, MaxDiagnostics: 50, Lint: true, Rules: lint.DefaultRules})
	if err != nil {
		t.Fatalf("Check: %v", err)
	}

	applied, changes, err := Fix(res, fix.ApplyOptions{Mode: fix.ApplyModeAll, DryRun: true})
	if err != nil {
		t.Fatalf("Fix dry run: %v", err)
	}
	if len(applied.Applied) != 2 || len(changes) != 2 {
		t.Fatalf("applied %d fixes, %d changes", len(applied.Applied), len(changes))
	}
	if data, _ := afero.ReadFile(fs, "/p/a.grit"); string(data) != "$x = (1)\n" {
		t.Fatalf("dry run wrote %q", data)
	}

	if _, _, err := Fix(res, fix.ApplyOptions{Mode: fix.ApplyModeAll}); err != nil {
		t.Fatalf("Fix: %v", err)
	}
	want := map[string]string{"/p/a.grit": "$x = 1\n", "/p/b.grit": "foo(1,2)\n"}
	for path, content := range want {
		if data, _ := afero.ReadFile(fs, path); string(data) != content {
			t.Fatalf("%s = %q, want %q", path, data, content)
		}
	}

	fmtChanges, err := Format(res, true)
	if err != nil {
		t.Fatalf("Format: %v", err)
	}
	// b.grit разобран с ошибкой и не форматируется
	if len(fmtChanges) != 1 || fmtChanges[0].Path != "/p/c.grit" {
		t.Fatalf("format changes = %+v", fmtChanges)
	}
	if data, _ := afero.ReadFile(fs, "/p/c.grit"); string(data) != "[1, 2, 3]\n" {
		t.Fatalf("c.grit = %q", data)
	}
}

func TestTimingsDiagnostic(t *testing.T) {
	timer := observ.NewTimer()
	timer.Begin("parse")()
	d := TimingsDiagnostic("", 4, timer.Report())
	if d.Code != diag.ObsTimings || d.Severity != diag.SevInfo || len(d.Notes) != 1 {
		t.Fatalf("diagnostic = %+v", d)
	}
	if got := gjson.Get(d.Notes[0].Msg, "phases.0.name").String(); got != "parse" {
		t.Fatalf("phase name = %q in %s", got, d.Notes[0].Msg)
	}
	if gjson.Get(d.Notes[0].Msg, "files").Int() != 4 || gjson.Get(d.Notes[0].Msg, "kind").String() != "check" {
		t.Fatalf("payload = %s", d.Notes[0].Msg)
	}
}
