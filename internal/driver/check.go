package driver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"strconv"
	"time"

	"fortio.org/safecast"
	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/lint"
	"github.com/biomejs/biome-sub001/internal/observ"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/testkit"
	"github.com/biomejs/biome-sub001/internal/trace"
)

// Options configures Check.
type Options struct {
	// Fs is the filesystem files are read from; nil means the OS filesystem.
	Fs             afero.Fs
	BaseDir        string
	Jobs           int
	MaxDiagnostics int
	// Lint runs the rules of Rules after parsing.
	Lint  bool
	Rules lint.RuleSet
	// Invariants verifies every tree with testkit.
	Invariants bool
	Timer      *observ.Timer
	Sink       ProgressSink
	// Log receives operational messages; nil discards them.
	Log logrus.FieldLogger
}

// FileStats describes the tree of one file.
type FileStats struct {
	Bytes    int
	Tokens   int
	Nodes    int
	Comments int
	Bogus    int
}

// FileResult is the outcome for one file.
type FileResult struct {
	Path string
	// File is nil when loading failed.
	File       *source.File
	Parse      parser.Result
	Bag        *diag.Bag
	Violations []testkit.Violation
	Stats      FileStats
	Elapsed    time.Duration
}

// Root returns the red root, nil when the file did not load.
func (r *FileResult) Root() *syntax.Node {
	if r.File == nil {
		return nil
	}
	return r.Parse.Syntax()
}

// Result aggregates a Check run.
type Result struct {
	FileSet *source.FileSet
	Files   []FileResult
	Cache   syntax.CacheStats
	Elapsed time.Duration
}

// Bag merges the diagnostics of all files into one sorted bag.
func (r *Result) Bag() *diag.Bag {
	total := 0
	for i := range r.Files {
		total += r.Files[i].Bag.Len()
	}
	out := diag.NewBag(total)
	for i := range r.Files {
		out.Merge(r.Files[i].Bag)
	}
	out.Sort()
	return out
}

// HasErrors reports whether any file has an error diagnostic.
func (r *Result) HasErrors() bool {
	for i := range r.Files {
		if r.Files[i].Bag.HasErrors() {
			return true
		}
	}
	return false
}

// Check loads the files at paths and processes them in parallel.
func Check(ctx context.Context, paths []string, opts Options) (*Result, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	files, err := ListFiles(opts.Fs, paths)
	if err != nil {
		return nil, err
	}
	return CheckFiles(ctx, files, opts)
}

// CheckFiles processes exactly the given files.
func CheckFiles(ctx context.Context, files []string, opts Options) (*Result, error) {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Sink == nil {
		opts.Sink = nopSink
	}
	log := opts.Log
	if log == nil {
		log = discardLogger()
	}
	start := time.Now()
	span, ctx := trace.StartSpan(ctx, trace.ScopeDriver, "check")
	span.WithExtra("files", strconv.Itoa(len(files)))

	fileSet := source.NewFileSetFs(opts.Fs)
	if opts.BaseDir != "" {
		fileSet.SetBaseDir(opts.BaseDir)
	}

	// загрузка последовательная: FileSet не потокобезопасен на запись
	ids := make([]source.FileID, len(files))
	loadErrs := make([]error, len(files))
	stopLoad := opts.Timer.Begin("load")
	for i, path := range files {
		opts.Sink.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusQueued})
		ids[i], loadErrs[i] = fileSet.Load(path)
		if loadErrs[i] != nil {
			log.WithError(loadErrs[i]).WithField("path", path).Warn("cannot load file")
		}
	}
	stopLoad()

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	log.WithFields(logrus.Fields{"files": len(files), "jobs": jobs}).Debug("checking files")

	cache := syntax.NewCache()
	results := make([]FileResult, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(files))))
	for i, path := range files {
		g.Go(func() error {
			// Проверка отмены
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			bag := diag.NewBag(opts.MaxDiagnostics)
			if loadErrs[i] != nil {
				results[i] = FileResult{Path: path, Bag: bag}
				bag.Add(diag.NewError(diag.IOLoadFileError, source.Span{}, "failed to load file: "+loadErrs[i].Error()))
				opts.Sink.OnEvent(Event{File: path, Stage: StageLoad, Status: StatusError, Err: loadErrs[i]})
				return nil
			}
			res, err := checkOne(gctx, path, fileSet.Get(ids[i]), bag, cache, opts)
			if err != nil {
				opts.Sink.OnEvent(Event{File: path, Stage: StageParse, Status: StatusError, Err: err})
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			status := StatusDone
			if bag.HasErrors() {
				status = StatusError
			}
			opts.Sink.OnEvent(Event{File: path, Status: status, Elapsed: res.Elapsed})
			return nil
		})
	}
	err := g.Wait()

	out := &Result{FileSet: fileSet, Files: results, Cache: cache.Stats(), Elapsed: time.Since(start)}
	span.End(fmt.Sprintf("%d files", len(files)))
	return out, err
}

func checkOne(ctx context.Context, path string, sf *source.File, bag *diag.Bag, cache *syntax.Cache, opts Options) (FileResult, error) {
	start := time.Now()
	span, ctx := trace.StartSpan(ctx, trace.ScopeFile, path)
	defer span.End("")

	res := FileResult{Path: path, File: sf, Bag: bag}
	// лексер и линтер могут сообщить об одном и том же месте
	reporter := diag.NewDedupReporter(diag.BagReporter{Bag: bag})

	opts.Sink.OnEvent(Event{File: path, Stage: StageParse, Status: StatusWorking})
	maxErrors, err := safecast.Conv[uint](max(opts.MaxDiagnostics, 0))
	if err != nil {
		return res, err
	}
	stop := opts.Timer.Begin("parse")
	pspan, _ := trace.StartSpan(ctx, trace.ScopePhase, "parse")
	parsed, err := parser.ParseFile(sf, parser.Options{Reporter: reporter, MaxErrors: maxErrors, Cache: cache})
	pspan.End("")
	stop()
	if err != nil {
		return res, err
	}
	res.Parse = parsed
	root := parsed.Syntax()
	res.Stats = statsOf(root, len(sf.Content))

	if opts.Lint {
		opts.Sink.OnEvent(Event{File: path, Stage: StageLint, Status: StatusWorking})
		stop := opts.Timer.Begin("lint")
		n := lint.Run(root, lint.Options{Reporter: reporter, File: sf.ID, Rules: opts.Rules, Cache: cache})
		stop()
		trace.Point(ctx, trace.ScopeFile, "lint", strconv.Itoa(n)+" findings")
	}
	if opts.Invariants {
		opts.Sink.OnEvent(Event{File: path, Stage: StageVerify, Status: StatusWorking})
		stop := opts.Timer.Begin("verify")
		res.Violations = testkit.Check(root, sf.Content)
		stop()
		testkit.Report(reporter, sf.ID, res.Violations)
	}
	res.Elapsed = time.Since(start)
	return res, nil
}

func statsOf(root *syntax.Node, size int) FileStats {
	st := FileStats{Bytes: size}
	reg := root.Registry()
	for n := range root.Descendants() {
		st.Nodes++
		if reg.IsBogus(n.Kind()) {
			st.Bogus++
		}
	}
	for tok := range root.Tokens() {
		st.Tokens++
		st.Comments += len(comments.Of(tok))
	}
	return st
}

// ErrHasErrors is returned by commands that fail on error diagnostics.
var ErrHasErrors = errors.New("errors reported")

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
