package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxFuzzInput = 1 << 16  // 64 KiB
	maxSeedBytes = 64 << 10 // ограничение для тестового корпуса
)

// builtinSeeds cover the constructs that stress recovery.
var builtinSeeds = []string{
	"",
	"`a` => `b`",
	"engine marzano(0.1)\nlanguage js\n",
	"pattern p($a, $b) { `f($a)` where { $a <: r\"x.*\", $b += [1, -2, 3.5] } }",
	"or { `a`, `b`, }",
	"foo(1,,2)",
	"$x = (1)",
	"pattern p( { `a`",
	"{ a: 1, b: [ , ] }",
	"// only a comment",
	"\uFEFF#!/usr/bin/env grit\n$x",
	"\"\\u00\" ' # \xff $ @",
	"/* \xff */ `a`",
	"// \xfe\xff\n`a`",
	"((((((((((",
	"} } ] ) => => <:",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range builtinSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.grit файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".grit" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clamp(src))
		return nil
	})
}

func clamp(src []byte) []byte {
	if len(src) > maxSeedBytes {
		src = src[:maxSeedBytes]
	}
	return append([]byte(nil), src...)
}
