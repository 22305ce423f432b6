package lexer

import (
	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

// maxTokenLength is the default upper bound of a single token in bytes.
const maxTokenLength = 1 << 20

type Options struct {
	Reporter diag.Reporter // может быть nil - тогда ошибки игнорируем (но продолжаем лексить)
	// MaxTokenLength overrides maxTokenLength when positive.
	MaxTokenLength int
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}

func (lx *Lexer) warnLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportWarning(lx.opts.Reporter, code, sp, msg).Emit()
	}
}

func (lx *Lexer) maxLen() uint32 {
	if lx.opts.MaxTokenLength > 0 {
		return uint32(lx.opts.MaxTokenLength)
	}
	return maxTokenLength
}
