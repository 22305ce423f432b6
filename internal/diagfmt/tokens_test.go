package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/tidwall/gjson"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/lexer"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
)

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.grit", []byte("$x = 1 // c\n")))
	toks := lexer.Tokenize(sf, lexer.Options{})

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatalf("FormatTokensPretty: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"DOLLAR_IDENT",
		"\"$x\" at 1:1-1:3 (trailing: Whitespace)",
		"(trailing: Whitespace, LineComment)",
		"EOF",
		"(leading: Newline)",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("pretty tokens lack %q:\n%s", want, out)
		}
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatalf("FormatTokensJSON: %v", err)
	}
	data := buf.Bytes()
	if n := gjson.GetBytes(data, "#").Int(); n != 4 {
		t.Fatalf("token count = %d\n%s", n, data)
	}
	if got := gjson.GetBytes(data, "1.kind").String(); got != "EQ" {
		t.Fatalf("second kind = %q", got)
	}
	if got := gjson.GetBytes(data, "2.trailing.1").String(); got != "LineComment" {
		t.Fatalf("trailing of 1 = %q", got)
	}
}

func TestFormatTree(t *testing.T) {
	fs := source.NewFileSet()
	sf := fs.Get(fs.AddVirtual("t.grit", []byte("$x = 1")))
	res, err := parser.ParseFile(sf, parser.Options{Reporter: diag.NopReporter{}})
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	var buf bytes.Buffer
	if err := FormatTree(&buf, res.Syntax(), TreeOpts{}); err != nil {
		t.Fatalf("FormatTree: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "GRIT_ROOT") || !strings.Contains(out, "\"$x\"") {
		t.Fatalf("untyped dump:\n%s", out)
	}

	buf.Reset()
	if err := FormatTree(&buf, res.Syntax(), TreeOpts{Typed: true}); err != nil {
		t.Fatalf("FormatTree typed: %v", err)
	}
	if out := buf.String(); !strings.Contains(out, "GRIT_ROOT {") {
		t.Fatalf("typed dump:\n%s", out)
	}
}
