package config

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

// Find walks up from startDir to locate grit.toml.
func Find(fs afero.Fs, startDir string) (path string, ok bool, err error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, FileName)
		exists, err := afero.Exists(fs, candidate)
		if err != nil {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		if exists {
			return candidate, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}
