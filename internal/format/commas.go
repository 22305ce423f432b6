package format

import (
	"bytes"
	"sort"

	"github.com/biomejs/biome-sub001/internal/comments"
	"github.com/biomejs/biome-sub001/internal/syntax"
)

type commaEdit struct {
	start int
	end   int
	data  []byte
}

// separator is one separator token of a separated list.
type separator struct {
	tok      *syntax.Token
	trailing bool
}

// separators collects the separator tokens of every separated list under
// root, in source order.
func separators(root *syntax.Node) []separator {
	if root == nil {
		return nil
	}
	reg := root.Registry()
	var out []separator
	for n := range root.Descendants() {
		info, ok := reg.Info(n.Kind())
		if !ok || info.Family != syntax.FamilyList || !info.List.Separated() {
			continue
		}
		count := n.SlotCount()
		for i := 1; i < count; i += 2 {
			tok := n.SlotToken(i)
			if tok == nil {
				continue
			}
			// висящий разделитель: за ним только пустой слот
			last := i == count-2 && n.Slot(count-1) == nil
			out = append(out, separator{tok: tok, trailing: last})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].tok.TextTrimmedRange().Start < out[j].tok.TextTrimmedRange().Start
	})
	return out
}

// NormalizeCommas returns the text of root with whitespace around the
// separators of every separated list normalized. It works on the printed
// bytes and never re-prints whole constructs.
//
// Rules:
//   - tabs/spaces before ',' are removed;
//   - a single space is inserted after ',' unless the next non-space character
//     is a closing bracket, a newline, carriage return, another comma, or the
//     comma is the trailing separator of its list.
//
// Separators touching a comment are left alone.
func NormalizeCommas(root *syntax.Node) []byte {
	if root == nil {
		return nil
	}
	content := []byte(root.Text())
	base := int(root.TextRange().Start)

	var edits []commaEdit
	for _, sep := range separators(root) {
		prev := sep.tok.PrevToken()
		if sep.tok.HasLeadingComments() || sep.tok.HasTrailingComments() || (prev != nil && prev.HasTrailingComments()) {
			continue
		}
		r := sep.tok.TextTrimmedRange()
		addCommaEdit(&edits, content, int(r.Start)-base, int(r.End)-base, sep.trailing)
	}
	if len(edits) == 0 {
		return content
	}

	sort.SliceStable(edits, func(i, j int) bool {
		return edits[i].start > edits[j].start
	})
	for _, e := range edits {
		if e.start < 0 || e.start > e.end || e.end > len(content) {
			continue
		}
		content = append(content[:e.start], append(e.data, content[e.end:]...)...)
	}
	return content
}

func addCommaEdit(out *[]commaEdit, buf []byte, start, end int, trailing bool) {
	if out == nil || start < 0 || end <= start || end > len(buf) {
		return
	}

	i := start - 1
	for i >= 0 && (buf[i] == ' ' || buf[i] == '\t') {
		i--
	}
	left := i + 1

	j := end
	for j < len(buf) && (buf[j] == ' ' || buf[j] == '\t') {
		j++
	}

	wantSpace := !trailing
	if wantSpace {
		if j >= len(buf) {
			wantSpace = false
		} else {
			switch buf[j] {
			case ')', ']', '}', '\n', '\r', ',':
				wantSpace = false
			}
		}
	}

	repl := []byte{','}
	if wantSpace {
		repl = append(repl, ' ')
	}

	if bytes.Equal(buf[left:j], repl) {
		return
	}

	*out = append(*out, commaEdit{
		start: left,
		end:   j,
		data:  repl,
	})
}

// RemoveTrailingCommas marks the trailing separator of every separated list
// as removed and returns how many were marked.
func RemoveTrailingCommas(root *syntax.Node, edits *comments.Edits) (int, error) {
	n := 0
	for _, sep := range separators(root) {
		if !sep.trailing || edits.State(sep.tok).State == comments.Removed {
			continue
		}
		if err := edits.Remove(sep.tok); err != nil {
			return n, err
		}
		n++
	}
	return n, nil
}
