package syntax

import "fmt"

// TextRange is a half-open byte range [Start, End).
type TextRange struct {
	Start uint32
	End   uint32
}

// RangeAt builds a range from an offset and a length.
func RangeAt(start, length uint32) TextRange {
	return TextRange{Start: start, End: start + length}
}

func (r TextRange) Len() uint32 { return r.End - r.Start }

func (r TextRange) Empty() bool { return r.Start == r.End }

// Contains reports whether off lies inside [Start, End).
func (r TextRange) Contains(off uint32) bool {
	return off >= r.Start && off < r.End
}

// ContainsInclusive also accepts End.
func (r TextRange) ContainsInclusive(off uint32) bool {
	return off >= r.Start && off <= r.End
}

// ContainsRange reports whether other lies inside r.
func (r TextRange) ContainsRange(other TextRange) bool {
	return other.Start >= r.Start && other.End <= r.End
}

// Intersects reports whether the ranges overlap by at least one byte,
// or touch when one of them is empty.
func (r TextRange) Intersects(other TextRange) bool {
	if r.Empty() || other.Empty() {
		return other.Start <= r.End && r.Start <= other.End
	}
	return other.Start < r.End && r.Start < other.End
}

// Cover returns the smallest range containing both.
func (r TextRange) Cover(other TextRange) TextRange {
	return TextRange{Start: min(r.Start, other.Start), End: max(r.End, other.End)}
}

func (r TextRange) String() string {
	return fmt.Sprintf("%d..%d", r.Start, r.End)
}
