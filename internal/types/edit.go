package types

// Range is a half-open span of text, [Start, End).
type Range struct {
	Start Position
	End   Position
}

// NewRange builds a normalized range from two positions in any order.
func NewRange(a, b Position) Range {
	if b.Before(a) {
		a, b = b, a
	}
	return Range{Start: a, End: b}
}

// Empty reports whether the range covers no text.
func (r Range) Empty() bool {
	return r.Start == r.End
}

// Contains checks if pos lies within [Start, End).
func (r Range) Contains(pos Position) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Col < r.Start.Col {
		return false
	}
	// End is exclusive
	if pos.Line == r.End.Line && pos.Col >= r.End.Col {
		return false
	}
	return true
}
