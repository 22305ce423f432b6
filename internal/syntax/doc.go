// Package syntax implements the language-agnostic lossless syntax tree.
//
// The tree has two layers:
//
//   - Green layer: immutable, position-free nodes and tokens interned through a
//     Cache. Structurally equal subtrees share one allocation, so green trees are
//     safe to share between goroutines and between edits.
//   - Red layer: a cheap view over a green tree that adds parent links and
//     absolute offsets. Red nodes are created on demand while navigating and are
//     not meant to be shared across goroutines.
//
// Every byte of the input lives in exactly one token: either in the token text
// or in its leading/trailing trivia. Concatenating the full text of all tokens in
// pre-order reproduces the input byte for byte.
//
// Kinds are plain 16-bit values. The mapping from kind to name, token family and
// slot layout is supplied by a language through a Registry.
package syntax
