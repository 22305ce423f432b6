package source

import (
	"fmt"

	"github.com/biomejs/biome-sub001/internal/syntax"
)

type Span struct {
	File  FileID
	Start uint32 // в байтах включительно
	End   uint32 // в байтах не включительно
}

// SpanOf places a tree range into file.
func SpanOf(file FileID, r syntax.TextRange) Span {
	return Span{File: file, Start: r.Start, End: r.End}
}

// Range drops the file and returns the byte range.
func (s Span) Range() syntax.TextRange {
	return syntax.TextRange{Start: s.Start, End: s.End}
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Overlaps reports whether two spans of the same file share a byte.
// An empty span overlaps a span that strictly contains its position.
func (s Span) Overlaps(other Span) bool {
	if s.File != other.File {
		return false
	}
	switch {
	case s.Empty() && other.Empty():
		return false
	case s.Empty():
		return other.Start <= s.Start && s.Start < other.End
	case other.Empty():
		return s.Start <= other.Start && other.Start < s.End
	}
	return s.Start < other.End && other.Start < s.End
}

func (s Span) ShiftRight(n uint32) Span {
	return Span{
		File:  s.File,
		Start: s.Start + n,
		End:   s.End + n,
	}
}
