package fix

import (
	"cmp"
	"errors"
	"fmt"
	"slices"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

// ErrNoFixes is returned when no fixes were applied.
var ErrNoFixes = errors.New("no applicable fixes found")

// ApplyMode determines selection strategy for fixes.
type ApplyMode uint8

const (
	// ApplyModeOnce applies the first safe fix, or the first fix at all.
	ApplyModeOnce ApplyMode = iota
	// ApplyModeAll applies every always-safe fix that does not conflict.
	ApplyModeAll
	// ApplyModeID applies the fix with ApplyOptions.TargetID.
	ApplyModeID
)

// ApplyOptions configures how fixes are selected.
type ApplyOptions struct {
	Mode     ApplyMode
	TargetID string
	// DryRun computes the new contents without writing files.
	DryRun bool
}

// AppliedFix records a successfully applied fix.
type AppliedFix struct {
	ID            string
	Title         string
	Code          diag.Code
	Message       string
	Applicability diag.FixApplicability
	PrimaryPath   string
	EditCount     int
}

// SkippedFix captures a skipped or failed fix with a reason.
type SkippedFix struct {
	ID     string
	Title  string
	Reason string
}

// FileChange summarises modifications performed on a file.
type FileChange struct {
	File      source.FileID
	Path      string
	EditCount int
	// Content is the new file content.
	Content []byte
}

// ApplyResult aggregates applied fixes, skipped ones, and file changes.
type ApplyResult struct {
	Applied     []AppliedFix
	Skipped     []SkippedFix
	FileChanges []FileChange
}

// Apply collects fixes from diagnostics, selects a subset according to opts
// and applies them. Edits of all accepted fixes are kept in the coordinates of
// the loaded file content, so a later fix never sees text shifted by an
// earlier one.
func Apply(fs *source.FileSet, diagnostics []diag.Diagnostic, opts ApplyOptions) (*ApplyResult, error) {
	res := &ApplyResult{}
	if fs == nil {
		return res, errors.New("fix: FileSet is nil")
	}

	cands, skips := gatherCandidates(diagnostics)
	res.Skipped = append(res.Skipped, skips...)
	sortCandidates(cands)
	picked, skips := selectCandidates(cands, opts)
	res.Skipped = append(res.Skipped, skips...)

	ws := newWorkspace(fs, opts.DryRun)
	for _, c := range picked {
		if reason := ws.accept(c.fix.Edits); reason != "" {
			res.Skipped = append(res.Skipped, c.skip(reason))
			continue
		}
		res.Applied = append(res.Applied, AppliedFix{
			ID:            c.fix.ID,
			Title:         c.fix.Title,
			Code:          c.diag.Code,
			Message:       c.diag.Message,
			Applicability: c.fix.Applicability,
			PrimaryPath:   ws.displayPath(c.diag.Primary.File),
			EditCount:     len(c.fix.Edits),
		})
	}
	if len(res.Applied) == 0 {
		return res, ErrNoFixes
	}

	changes, err := ws.flush()
	res.FileChanges = changes
	return res, err
}

// pendingFile holds the accepted edits of one file and the content they
// produce.
type pendingFile struct {
	file   *source.File
	edits  []diag.TextEdit
	result []byte
}

type workspace struct {
	fs     *source.FileSet
	dryRun bool
	files  map[source.FileID]*pendingFile
}

func newWorkspace(fs *source.FileSet, dryRun bool) *workspace {
	return &workspace{fs: fs, dryRun: dryRun, files: make(map[source.FileID]*pendingFile)}
}

// accept stages the edits of one fix. It returns a skip reason and leaves the
// workspace untouched when any file of the fix rejects them.
func (ws *workspace) accept(edits []diag.TextEdit) string {
	staged := make(map[source.FileID]*pendingFile)
	for _, e := range edits {
		id := e.Span.File
		if _, ok := staged[id]; ok {
			staged[id].edits = append(staged[id].edits, e)
			continue
		}
		file := ws.fs.Get(id)
		if file == nil {
			return fmt.Sprintf("unknown file %d", id)
		}
		if file.Flags&source.FileVirtual != 0 && !ws.dryRun {
			return "target file is virtual"
		}
		next := &pendingFile{file: file}
		if prev := ws.files[id]; prev != nil {
			next.edits = slices.Clone(prev.edits)
			for _, old := range prev.edits {
				if slices.ContainsFunc(edits, func(n diag.TextEdit) bool { return n.Span.File == id && editsOverlap(old, n) }) {
					return "conflicts with previously applied edits in " + ws.displayPath(id)
				}
			}
		}
		next.edits = append(next.edits, e)
		staged[id] = next
	}

	for _, p := range staged {
		out, err := ApplyEdits(p.file.Content, p.edits)
		if err != nil {
			return describeEditError(err)
		}
		p.result = out
	}
	for id, p := range staged {
		ws.files[id] = p
	}
	return ""
}

// flush writes the staged contents and reports them sorted by path.
func (ws *workspace) flush() ([]FileChange, error) {
	changes := make([]FileChange, 0, len(ws.files))
	for id, p := range ws.files {
		changes = append(changes, FileChange{
			File:      id,
			Path:      p.file.FormatPath("relative", ws.fs.BaseDir()),
			EditCount: len(p.edits),
			Content:   p.result,
		})
	}
	slices.SortFunc(changes, func(a, b FileChange) int { return cmp.Compare(a.Path, b.Path) })
	if ws.dryRun {
		return changes, nil
	}
	for _, c := range changes {
		if err := ws.fs.Write(c.File, c.Content); err != nil {
			return changes, fmt.Errorf("write %s: %w", ws.fs.Get(c.File).Path, err)
		}
	}
	return changes, nil
}

func (ws *workspace) displayPath(id source.FileID) string {
	file := ws.fs.Get(id)
	if file == nil {
		return ""
	}
	return file.FormatPath("auto", ws.fs.BaseDir())
}

var (
	errEditOverlap  = errors.New("overlapping edits")
	errEditRange    = errors.New("edit span out of range")
	errEditMismatch = errors.New("existing text does not match expected content")
)

func describeEditError(err error) string {
	for _, known := range []error{errEditOverlap, errEditRange, errEditMismatch} {
		if errors.Is(err, known) {
			return known.Error()
		}
	}
	return err.Error()
}

// editsOverlap treats spans as half-open. Two insertions never overlap; an
// insertion overlaps a span that strictly contains its position or starts
// there.
func editsOverlap(a, b diag.TextEdit) bool {
	as, ae := a.Span.Start, a.Span.End
	bs, be := b.Span.Start, b.Span.End
	switch {
	case as == ae && bs == be:
		return false
	case as == ae:
		return bs <= as && as < be
	case bs == be:
		return as <= bs && bs < ae
	}
	return as < be && bs < ae
}

// ApplyEdits applies disjoint edits to content and returns the new content.
// Edits are checked against their OldText guard.
func ApplyEdits(content []byte, edits []diag.TextEdit) ([]byte, error) {
	sorted := slices.Clone(edits)
	slices.SortStableFunc(sorted, func(a, b diag.TextEdit) int {
		if c := cmp.Compare(a.Span.Start, b.Span.Start); c != 0 {
			return c
		}
		return cmp.Compare(a.Span.End, b.Span.End)
	})
	for i := 1; i < len(sorted); i++ {
		if editsOverlap(sorted[i-1], sorted[i]) {
			return nil, fmt.Errorf("fix: %w at %d and %d", errEditOverlap, sorted[i-1].Span.Start, sorted[i].Span.Start)
		}
	}

	// собираем результат слева направо по исходным координатам
	out := make([]byte, 0, len(content))
	var cursor uint32
	for _, e := range sorted {
		start, end := e.Span.Start, e.Span.End
		if end < start || int(end) > len(content) || start < cursor {
			return nil, fmt.Errorf("fix: %w: [%d,%d)", errEditRange, start, end)
		}
		if e.OldText != "" && string(content[start:end]) != e.OldText {
			return nil, fmt.Errorf("fix: %w: %q is not %q", errEditMismatch, content[start:end], e.OldText)
		}
		out = append(out, content[cursor:start]...)
		out = append(out, e.NewText...)
		cursor = end
	}
	return append(out, content[cursor:]...), nil
}
