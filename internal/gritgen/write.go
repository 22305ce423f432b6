package gritgen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"slices"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/afero"
)

// Load reads and parses a schema file.
func Load(fs afero.Fs, path string) (*Grammar, error) {
	src, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, err
	}
	g, err := Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Write stores the generated files in dir and returns the names it changed.
func Write(fs afero.Fs, dir string, files map[string][]byte) ([]string, error) {
	var changed []string
	for _, name := range sortedNames(files) {
		path := filepath.Join(dir, name)
		old, err := afero.ReadFile(fs, path)
		if err == nil && bytes.Equal(old, files[name]) {
			continue
		}
		if err := afero.WriteFile(fs, path, files[name], 0o644); err != nil {
			return changed, err
		}
		changed = append(changed, name)
	}
	return changed, nil
}

// StaleError lists generated files that differ from what is on disk.
type StaleError struct {
	Files map[string]string // имя -> diff
}

func (e *StaleError) Error() string {
	names := make([]string, 0, len(e.Files))
	for name := range e.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return "generated files are stale: " + strings.Join(names, ", ")
}

// Check compares the generated files against dir without writing.
func Check(fs afero.Fs, dir string, files map[string][]byte) error {
	stale := make(map[string]string)
	dmp := diffmatchpatch.New()
	for _, name := range sortedNames(files) {
		old, err := afero.ReadFile(fs, filepath.Join(dir, name))
		if err != nil {
			stale[name] = err.Error()
			continue
		}
		if bytes.Equal(old, files[name]) {
			continue
		}
		a, b, lines := dmp.DiffLinesToChars(string(old), string(files[name]))
		diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)
		stale[name] = dmp.DiffPrettyText(diffs)
	}
	if len(stale) > 0 {
		return &StaleError{Files: stale}
	}
	return nil
}

func sortedNames(files map[string][]byte) []string {
	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
