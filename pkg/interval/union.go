package interval

// joinable reports whether a and b, ordered so that Compare(a, b) <= 0,
// overlap or touch at a bound held by at least one of them. [0, 1] and
// (1, 2] join into [0, 2] so that merged sets stay minimal.
func joinable(a, b Interval) bool {
	switch {
	case a.high > b.low:
		return true
	case a.high < b.low:
		return false
	default:
		return !a.hopen || !b.lopen
	}
}

// join returns the smallest interval covering a and b. a must sort
// before b and the two must be joinable.
func join(a, b Interval) Interval {
	out := a
	switch {
	case b.high > a.high:
		out.high, out.hopen = b.high, b.hopen
	case b.high == a.high:
		out.hopen = a.hopen && b.hopen
	}
	return out
}

func ordered(a, b Interval) (Interval, Interval) {
	if Compare(b, a) < 0 {
		return b, a
	}
	return a, b
}

// Union returns the union of a and b, either as a single interval or as
// the ordered disjoint pair.
//
// A singleton at an open bound of the other operand closes that bound:
//
//	(0, 5) ∪ [5] = (0, 5]
func Union(a, b Interval) []Interval {
	if u, ok := union(a, b); ok {
		return []Interval{u}
	}
	a, b = ordered(a, b)
	return []Interval{a, b}
}

func union(a, b Interval) (Interval, bool) {
	a, b = ordered(a, b)
	if !joinable(a, b) {
		return Interval{}, false
	}
	return join(a, b), true
}

// Intersection returns the points common to a and b. ok is false when a
// and b are disjoint.
func Intersection(a, b Interval) (Interval, bool) {
	switch {
	case a.ContainsInterval(b):
		return b, true
	case b.ContainsInterval(a):
		return a, true
	case a.IsDisjoint(b):
		return Interval{}, false
	}
	out := a
	switch {
	case b.low > a.low:
		out.low, out.lopen = b.low, b.lopen
	case b.low == a.low:
		out.lopen = a.lopen || b.lopen
	}
	switch {
	case b.high < a.high:
		out.high, out.hopen = b.high, b.hopen
	case b.high == a.high:
		out.hopen = a.hopen || b.hopen
	}
	return out, true
}
