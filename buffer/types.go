package buffer

// Selection is a half-open range of rune offsets [Start, End).
type Selection struct {
	Start int
	End   int
}

// Normalize returns s with Start <= End.
func (s Selection) Normalize() Selection {
	if s.Start <= s.End {
		return s
	}
	return Selection{Start: s.End, End: s.Start}
}

// Clamp limits both ends of s to [0, n].
func (s Selection) Clamp(n int) Selection {
	return Selection{Start: clampInt(s.Start, 0, n), End: clampInt(s.End, 0, n)}
}

func (s Selection) Empty() bool { return s.Start == s.End }

// Len returns the number of runes covered by the normalized selection.
func (s Selection) Len() int {
	n := s.Normalize()
	return n.End - n.Start
}

// Pos is a (row, col) location used for display. Col counts runes from the
// start of the row.
type Pos struct {
	Row int
	Col int
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
