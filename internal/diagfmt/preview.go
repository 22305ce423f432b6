package diagfmt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/biomejs/biome-sub001/internal/diag"
	"github.com/biomejs/biome-sub001/internal/source"
)

// editPreview shows the whole lines an edit touches before and after it.
type editPreview struct {
	before []string
	after  []string
}

func previewEdit(fs *source.FileSet, edit diag.TextEdit) (editPreview, error) {
	var file *source.File
	if fs != nil {
		file = fs.Get(edit.Span.File)
	}
	if file == nil {
		return editPreview{}, fmt.Errorf("no file %d for preview", edit.Span.File)
	}
	content := file.Content
	start, end := int(edit.Span.Start), int(edit.Span.End)
	if start > end || end > len(content) {
		return editPreview{}, fmt.Errorf("edit [%d,%d) outside %s", start, end, file.Path)
	}

	// расширяем до границ строк
	lineStart := bytes.LastIndexByte(content[:start], '\n') + 1
	lineEnd := len(content)
	if i := bytes.IndexByte(content[end:], '\n'); i >= 0 {
		lineEnd = end + i
	}

	before := string(content[lineStart:lineEnd])
	after := string(content[lineStart:start]) + edit.NewText + string(content[end:lineEnd])
	return editPreview{before: previewLines(before), after: previewLines(after)}, nil
}

func previewLines(text string) []string {
	if text == "" {
		return nil
	}
	lines := strings.Split(strings.TrimRight(text, "\r\n"), "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}
	return lines
}
