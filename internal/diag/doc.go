// Package diag defines the diagnostic model shared by the lexer, parser,
// tree checks, lint rules and the fix engine.
//
// # Data model
//
// Diagnostic is the central record:
//
//   - Severity: Info, Warning or Error.
//   - Code: compact numeric identifier with a stable string ID (LEX1001, SYN2003).
//   - Message: short human text.
//   - Primary: the source.Span the finding points at.
//   - Notes: optional secondary spans.
//   - Fixes: optional Fix records, each a list of TextEdit values.
//
// A TextEdit replaces a span with new text. OldText is an optional guard that
// the fix engine compares with the current file before applying the edit.
// Fixes built from tree edits (internal/fix.Batch) are lowered to TextEdit
// values before they reach this package.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter. ReportError and ReportWarning
// return a ReportBuilder that chains WithNote and WithFix before Emit.
// BagReporter stores into a Bag, DedupReporter drops repeats and
// MultiReporter fans out.
//
// Rendering lives in internal/diagfmt. FormatGolden here is the one stable
// text form used by golden tests and the CLI short output.
package diag
