package source

import (
	"bytes"
	"path/filepath"
	"sort"
	"strings"

	"fortio.org/safecast"
)

// buildLineIndex records the last byte of every line break: \n, \r\n and a
// lone \r all end a line.
func buildLineIndex(content []byte) []uint32 {
	out := make([]uint32, 0, bytes.Count(content, []byte{'\n'})+1)
	for i := 0; i < len(content); i++ {
		switch content[i] {
		case '\n':
			out = append(out, offset(i))
		case '\r':
			if i+1 < len(content) && content[i+1] == '\n' {
				continue // конец строки отметит \n
			}
			out = append(out, offset(i))
		}
	}
	return out
}

func offset(i int) uint32 {
	v, err := safecast.Conv[uint32](i)
	if err != nil {
		panic(err)
	}
	return v
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строки строго до off
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var start uint32
	if line > 0 {
		start = lineIdx[line-1] + 1
	}
	return LineCol{Line: offset(line) + 1, Col: off - start + 1}
}

func hasCRLF(content []byte) bool {
	return bytes.Contains(content, []byte("\r\n"))
}

func normalizePath(p string) string {
	// единый вид в кроссплатформенных дифах
	return filepath.ToSlash(filepath.Clean(p))
}

// AbsolutePath returns p as an absolute, slash separated path.
func AbsolutePath(p string) (string, error) {
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(abs), nil
}

// RelativePath returns p relative to base.
func RelativePath(p, base string) (string, error) {
	absP, err := filepath.Abs(p)
	if err != nil {
		return "", err
	}
	absBase, err := filepath.Abs(base)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(absBase, absP)
	if err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}

// BaseName returns the last element of p.
func BaseName(p string) string {
	return filepath.Base(filepath.FromSlash(p))
}

func trimLineBreak(s string) string {
	return strings.TrimRight(s, "\r\n")
}
