package easyconsole

import "fmt"

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int
	Max int
}

// NewIntRange orders its arguments so Min <= Max.
func NewIntRange(a, b int) IntRange {
	if a <= b {
		return IntRange{Min: a, Max: b}
	}
	return IntRange{Min: b, Max: a}
}

func (r IntRange) IsInside(x int) bool {
	return x >= r.Min && x <= r.Max
}

func (r IntRange) IsOutside(x int) bool {
	return !r.IsInside(x)
}

// Contains reports whether other lies entirely within r.
func (r IntRange) Contains(other IntRange) bool {
	return r.IsInside(other.Min) && r.IsInside(other.Max)
}

func (r IntRange) Overlaps(other IntRange) bool {
	return r.IsInside(other.Min) || r.IsInside(other.Max) ||
		other.IsInside(r.Min) || other.IsInside(r.Max)
}

func (r IntRange) Equal(other IntRange) bool {
	return r.Min == other.Min && r.Max == other.Max
}

func (r IntRange) String() string {
	return fmt.Sprintf("(%d, %d)", r.Min, r.Max)
}
