// Package comments is the comment view over the trivia of a syntax tree.
//
// Comments are never nodes. Each one is a trivium owned by exactly one token,
// either in its leading band (before the token text) or in its trailing band
// (after the text, up to the next line break). The package classifies those
// trivia, answers per-node questions formatters ask ("which comments stay
// with this node"), and tracks the Kept / Removed / Replaced state of tokens
// under edits so that a printer can emit every comment exactly once.
//
// Назначение: L4 поверх красного дерева.
// Не делает: вывод текста (см. internal/format) и мутацию дерева (см. internal/fix).
package comments
