// Package ast holds the language-independent part of the typed syntax tree:
// slot accessors with explicit missing-child errors, the generic separated and
// unseparated list wrappers, an ordered serialization model and a depth-limited
// debug printer.
//
// Concrete typed wrappers are generated per language (see internal/grit). Each
// wrapper is a value holding a *syntax.Node; casting never allocates a new red
// node, so a red node keeps its identity through any chain of casts.
package ast
