// Package format prints syntax trees back to text.
//
// Printing is lossless: without edits the output equals the parsed source
// byte for byte. Token edits from internal/comments (removed or replaced
// tokens) are applied while printing, and the comments of removed tokens are
// written next to their surviving neighbours.
//
// Назначение: печать дерева с правками и лёгкие проходы нормализации.
// Не делает: полноценного pretty-print с переносом строк.
// Зависимости: internal/syntax, internal/comments.
package format
