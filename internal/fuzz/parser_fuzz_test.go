package fuzztests

import (
	"context"
	"testing"
	"time"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func parse(input []byte) (*parser.Result, error) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("fuzz.grit", input))
	bag := diag.NewBag(128)
	res, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: 128})
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// FuzzParserLossless checks that every input parses into a tree that prints
// back to the input and whose ranges are consistent.
func FuzzParserLossless(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)
		res, err := parse(input)
		if err != nil {
			t.Fatalf("parse %q: %v", input, err)
		}
		root := res.Syntax()
		vs := append(testkit.CheckRoundTrip(root, input), testkit.CheckOffsets(root)...)
		if err := testkit.Err(vs); err != nil {
			t.Fatalf("input %q: %v", input, err)
		}
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	// незакрытые скобки и пустые элементы списков
	f.Add([]byte("pattern p() { or { `a`, "))
	f.Add([]byte("[[[[[[,,,,]]]]"))
	f.Add([]byte("$x <: $y <: $z <:"))
	f.Add([]byte("where where where {"))

	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			_, _ = parse(input)
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
