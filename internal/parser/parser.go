package parser

import (
	"fmt"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/grit"
	"github.com/biomejs/biome-sub001/internal/lexer"
	"github.com/biomejs/biome-sub001/internal/source"
	"github.com/biomejs/biome-sub001/internal/syntax"
	"github.com/biomejs/biome-sub001/internal/token"
)

// defaultMaxDepth bounds nesting of patterns and predicates.
const defaultMaxDepth = 256

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
	// MaxDepth overrides defaultMaxDepth when positive.
	MaxDepth int
	// MaxTokenLength is passed to the lexer.
	MaxTokenLength int
	// Cache receives the interned green elements; nil gets a fresh cache.
	Cache *syntax.Cache
}

// Enough - проверить, достигли ли мы максимального количества ошибок
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

// Result is the outcome of parsing one file.
type Result struct {
	File   source.FileID
	Green  *syntax.GreenNode
	Root   grit.Root
	Tokens int
	Errors uint
}

// Syntax returns the red root.
func (r Result) Syntax() *syntax.Node { return r.Root.Syntax() }

// Parser: состояние парсера на один файл
type Parser struct {
	file     *source.File
	toks     []token.Token // всегда заканчивается EOF
	pos      int
	events   []event
	opts     Options
	depth    int
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
}

// ParseFile lexes and parses file into a lossless tree. Syntax errors are
// reported as diagnostics and recovered into bogus nodes; the returned error
// is reserved for a broken builder contract.
func ParseFile(file *source.File, opts Options) (Result, error) {
	toks := lexer.Tokenize(file, lexer.Options{
		Reporter:       opts.Reporter,
		MaxTokenLength: opts.MaxTokenLength,
	})
	return ParseTokens(file, toks, opts)
}

// ParseTokens parses an already lexed token stream ending with EOF.
func ParseTokens(file *source.File, toks []token.Token, opts Options) (Result, error) {
	if len(toks) == 0 || !toks[len(toks)-1].IsEOF() {
		return Result{}, fmt.Errorf("parser: token stream of %s does not end with EOF", file.Path)
	}
	p := Parser{
		file:     file,
		toks:     toks,
		opts:     opts,
		events:   make([]event, 0, 2*len(toks)),
		lastSpan: source.Span{File: file.ID},
	}
	p.parseRoot()

	cache := opts.Cache
	if cache == nil {
		cache = syntax.NewCache()
	}
	b := syntax.NewBuilder(cache, grit.Registry)
	if err := build(b, p.events, toks); err != nil {
		return Result{}, fmt.Errorf("parser: %s: %w", file.Path, err)
	}
	green, err := b.Finish()
	if err != nil {
		return Result{}, fmt.Errorf("parser: %s: %w", file.Path, err)
	}
	root, ok := grit.CastRoot(syntax.NewRoot(grit.Registry, green))
	if !ok {
		return Result{}, fmt.Errorf("parser: %s: root demoted to %s", file.Path, grit.Registry.Name(green.Kind()))
	}
	return Result{
		File:   file.ID,
		Green:  green,
		Root:   root,
		Tokens: len(toks),
		Errors: p.opts.CurrentErrors,
	}, nil
}

func (p *Parser) maxDepth() int {
	if p.opts.MaxDepth > 0 {
		return p.opts.MaxDepth
	}
	return defaultMaxDepth
}

// parseRoot: version? language? definitions EOF
func (p *Parser) parseRoot() {
	m := p.start()
	if p.at(grit.KindEngineKw) {
		p.parseVersion()
	}
	if p.at(grit.KindLanguageKw) {
		p.parseLanguageDeclaration()
	}
	p.parseDefinitionList()
	p.bumpEOF()
	m.complete(p, grit.KindRoot)
}
