// Package parser turns Grit source into a lossless syntax tree.
//
// The parser reads the token stream produced by the lexer and records a flat
// log of start, token and finish events. Markers open nodes whose kind is only
// known once they complete; precede wraps an already completed node into a new
// parent, which is how postfix and infix constructs (rewrite, where, as,
// accessors, arithmetic) are built left to right. The log is replayed into
// syntax.Builder, which aligns children to the slot layout of each kind.
//
// Syntax errors never abort the parse. Every recovery reports a diagnostic and
// leaves the offending tokens in the tree:
//
//   - a comma without an item becomes an empty bogus item of the list's
//     category (foo(1,,2) holds a BogusNamedArg between the commas);
//   - tokens that cannot start an item are wrapped into the category's bogus
//     kind up to the next comma, closer or recovery token;
//   - unparsable top-level input becomes BogusDefinition.
//
// The text of the resulting tree is always byte-identical to the input.
package parser
