// Package gritgen turns an ungrammar-style schema into the Go sources of a
// typed syntax layer: node kinds, slot registry, wrappers, unions, lists and a
// green factory.
package gritgen

import (
	"fmt"
	"strings"
	"unicode"
)

type termKind uint8

const (
	termIdent termKind = iota
	termToken
	termLParen
	termRParen
	termPipe
	termQuestion
	termStar
	termColon
)

type term struct {
	kind termKind
	text string
}

func (t term) is(k termKind) bool { return t.kind == k }

// rule is one `Name = body` definition.
type rule struct {
	name  string
	line  int
	terms []term
}

// SchemaError points at a malformed line of the schema.
type SchemaError struct {
	Line int
	Msg  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("grammar:%d: %s", e.Line, e.Msg)
}

// parseRules splits the schema into rules. A rule starts at column zero with
// `Name =` and continues on indented lines.
func parseRules(src string) ([]rule, error) {
	var (
		rules []rule
		cur   *rule
		body  strings.Builder
	)
	flush := func() error {
		if cur == nil {
			return nil
		}
		terms, err := lexBody(body.String(), cur.line)
		if err != nil {
			return err
		}
		cur.terms = terms
		rules = append(rules, *cur)
		cur = nil
		body.Reset()
		return nil
	}

	for i, raw := range strings.Split(src, "\n") {
		lineNo := i + 1
		line := strings.TrimRight(stripComment(raw), " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if raw[0] != ' ' && raw[0] != '\t' {
			name, rest, ok := strings.Cut(line, "=")
			name = strings.TrimSpace(name)
			if !ok || name == "" || !unicode.IsUpper(rune(name[0])) {
				return nil, &SchemaError{Line: lineNo, Msg: "expected `Name =`"}
			}
			if err := flush(); err != nil {
				return nil, err
			}
			cur = &rule{name: name, line: lineNo}
			body.WriteString(rest)
			continue
		}
		if cur == nil {
			return nil, &SchemaError{Line: lineNo, Msg: "continuation outside of a rule"}
		}
		body.WriteByte(' ')
		body.WriteString(line)
	}
	if err := flush(); err != nil {
		return nil, err
	}
	return rules, nil
}

// stripComment drops a `//` comment that starts the line or follows a blank.
func stripComment(line string) string {
	for i := 0; i+1 < len(line); i++ {
		if line[i] == '/' && line[i+1] == '/' && (i == 0 || line[i-1] == ' ' || line[i-1] == '\t') {
			return line[:i]
		}
	}
	return line
}

func lexBody(body string, line int) ([]term, error) {
	var out []term
	for i := 0; i < len(body); {
		c := body[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '\'':
			end := strings.IndexByte(body[i+1:], '\'')
			if end < 0 {
				return nil, &SchemaError{Line: line, Msg: "unterminated token literal"}
			}
			out = append(out, term{termToken, body[i+1 : i+1+end]})
			i += end + 2
		case c == '(':
			out = append(out, term{termLParen, "("})
			i++
		case c == ')':
			out = append(out, term{termRParen, ")"})
			i++
		case c == '|':
			out = append(out, term{termPipe, "|"})
			i++
		case c == '?':
			out = append(out, term{termQuestion, "?"})
			i++
		case c == '*':
			out = append(out, term{termStar, "*"})
			i++
		case c == ':':
			out = append(out, term{termColon, ":"})
			i++
		case isIdentByte(c):
			j := i
			for j < len(body) && isIdentByte(body[j]) {
				j++
			}
			out = append(out, term{termIdent, body[i:j]})
			i = j
		default:
			return nil, &SchemaError{Line: line, Msg: fmt.Sprintf("unexpected %q", c)}
		}
	}
	return out, nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9'
}
