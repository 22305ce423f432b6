package fuzztests

import (
	"strings"
	"testing"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/lexer"
	"github.com/biomejs/biome-sub001/internal/source"
)

func FuzzLexerTokens(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		input = clampInput(input)

		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.grit", input))

		bag := diag.NewBag(64)
		tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
		if len(tokens) == 0 || !tokens[len(tokens)-1].IsEOF() {
			t.Fatalf("token stream of %q does not end with EOF", input)
		}

		var sb strings.Builder
		for _, tok := range tokens {
			for _, tr := range tok.Leading {
				sb.WriteString(tr.Text)
			}
			sb.WriteString(tok.Text)
			for _, tr := range tok.Trailing {
				sb.WriteString(tr.Text)
			}
		}
		if sb.String() != string(input) {
			t.Fatalf("tokens of %q print as %q", input, sb.String())
		}
	})
}

func clampInput(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
