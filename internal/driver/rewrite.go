package driver

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/fix"
	"github.com/biomejs/biome-sub001/internal/format"
	"github.com/biomejs/biome-sub001/internal/source"
)

// Change is a rewritten file.
type Change struct {
	Path string
	File source.FileID
	Old  []byte
	New  []byte
}

// Format normalizes comma spacing in every file that parsed without errors.
// With write set the new content is stored through the FileSet filesystem.
func Format(res *Result, write bool) ([]Change, error) {
	var changes []Change
	var errs []error
	for i := range res.Files {
		fr := &res.Files[i]
		if fr.File == nil || fr.Bag.HasErrors() {
			continue
		}
		out := format.NormalizeCommas(fr.Root())
		if bytes.Equal(out, fr.File.Content) {
			continue
		}
		changes = append(changes, Change{Path: fr.Path, File: fr.File.ID, Old: fr.File.Content, New: out})
		if write {
			if err := res.FileSet.Write(fr.File.ID, out); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", fr.Path, err))
			}
		}
	}
	return changes, errors.Join(errs...)
}

// Fix applies the fixes attached to the diagnostics of res.
func Fix(res *Result, opts fix.ApplyOptions) (*fix.ApplyResult, []Change, error) {
	var diags []diag.Diagnostic
	for i := range res.Files {
		diags = append(diags, res.Files[i].Bag.Items()...)
	}
	applied, err := fix.Apply(res.FileSet, diags, opts)
	if applied == nil {
		return nil, nil, err
	}
	changes := make([]Change, 0, len(applied.FileChanges))
	for _, fc := range applied.FileChanges {
		var old []byte
		for i := range res.Files {
			if f := res.Files[i].File; f != nil && f.ID == fc.File {
				old = f.Content
				break
			}
		}
		changes = append(changes, Change{Path: fc.Path, File: fc.File, Old: old, New: fc.Content})
	}
	return applied, changes, err
}
