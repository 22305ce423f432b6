package driver

import (
	"context"

	"fortio.org/safecast"
	"github.com/spf13/afero"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/lexer"
	"github.com/biomejs/biome-sub001/internal/parser"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/token"
	"github.com/biomejs/biome-sub001/internal/trace"
)

type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  []token.Token
	Bag     *diag.Bag
}

type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Parse   parser.Result
	Bag     *diag.Bag
}

func loadOne(fs afero.Fs, path string) (*source.FileSet, *source.File, error) {
	if fs == nil {
		fs = afero.NewOsFs()
	}
	fileSet := source.NewFileSetFs(fs)
	id, err := fileSet.Load(path)
	if err != nil {
		return nil, nil, err
	}
	return fileSet, fileSet.Get(id), nil
}

// Tokenize lexes one file.
func Tokenize(ctx context.Context, fs afero.Fs, path string, maxDiagnostics int) (*TokenizeResult, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopePhase, "tokenize")
	defer span.End(path)

	fileSet, file, err := loadOne(fs, path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	tokens := lexer.Tokenize(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})
	return &TokenizeResult{FileSet: fileSet, File: file, Tokens: tokens, Bag: bag}, nil
}

// Parse parses one file.
func Parse(ctx context.Context, fs afero.Fs, path string, maxDiagnostics int) (*ParseResult, error) {
	span, _ := trace.StartSpan(ctx, trace.ScopePhase, "parse")
	defer span.End(path)

	fileSet, file, err := loadOne(fs, path)
	if err != nil {
		return nil, err
	}
	bag := diag.NewBag(maxDiagnostics)
	maxErrors, err := safecast.Conv[uint](max(maxDiagnostics, 0))
	if err != nil {
		return nil, err
	}
	res, err := parser.ParseFile(file, parser.Options{Reporter: diag.BagReporter{Bag: bag}, MaxErrors: maxErrors})
	if err != nil {
		return nil, err
	}
	return &ParseResult{FileSet: fileSet, File: file, Parse: res, Bag: bag}, nil
}
